package department

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/people-management/internal/transport"
	"github.com/frahmantamala/people-management/pkg/logger"
)

type ServiceAPI interface {
	Create(dto CreateDepartmentDTO) (*Department, error)
	List(query ListQuery) (*ListResponse, error)
	Update(departmentID string, dto UpdateDepartmentDTO) (*Department, error)
	Delete(departmentID string) error
}

type Handler struct {
	*transport.BaseHandler
	Service         ServiceAPI
	DefaultPageSize int
	MaxPageSize     int
}

func NewHandler(service ServiceAPI, defaultPageSize, maxPageSize int) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler:     transport.NewBaseHandler(lg),
		Service:         service,
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	department, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, department.ToResponse())
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := ParseListQuery(r.URL.Query(), h.DefaultPageSize, h.MaxPageSize)

	resp, err := h.Service.List(query)
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentId")

	var dto UpdateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	department, err := h.Service.Update(departmentID, dto)
	if err != nil {
		h.Logger.Error("Update: service error", "error", err, "department_id", departmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, department.ToResponse())
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentId")

	if err := h.Service.Delete(departmentID); err != nil {
		h.Logger.Error("Delete: service error", "error", err, "department_id", departmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Department deleted successfully"})
}
