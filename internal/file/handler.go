package file

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/people-management/internal/auth"
	"github.com/frahmantamala/people-management/internal/transport"
	"github.com/frahmantamala/people-management/pkg/logger"
)

type ServiceAPI interface {
	Upload(ctx context.Context, userID string, data []byte) (*UploadResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	// Allow some slack over the payload limit so oversized uploads are
	// rejected with a validation error instead of a connection reset.
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	part, _, err := r.FormFile("file")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		h.Logger.Error("read upload body failed", "error", err)
		h.WriteError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	resp, err := h.Service.Upload(r.Context(), user.ID, data)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}
