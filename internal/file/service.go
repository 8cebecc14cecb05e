package file

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/frahmantamala/people-management/internal"
	fileDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/file"
)

// StorageGateway is the object-storage collaborator: it takes bytes and a
// content type and returns a stable URI.
type StorageGateway interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type RepositoryAPI interface {
	Create(file *fileDatamodel.File) error
}

type Service struct {
	gateway  StorageGateway
	repo     RepositoryAPI
	maxBytes int64
	logger   *slog.Logger
}

func NewService(gateway StorageGateway, repo RepositoryAPI, maxBytes int64, logger *slog.Logger) *Service {
	if maxBytes <= 0 {
		maxBytes = apperrors.DefaultFileBytes
	}
	return &Service{
		gateway:  gateway,
		repo:     repo,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

var allowedExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// Upload validates size and sniffed content type, stores the bytes under a
// generated key, and records an immutable file row owned by the caller.
func (s *Service) Upload(ctx context.Context, userID string, data []byte) (*UploadResponse, error) {
	if len(data) == 0 {
		return nil, apperrors.NewValidationFieldError("file", "file part is missing", apperrors.ErrCodeInvalidFile)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, apperrors.NewValidationFieldError("file", "file size exceeds limit", apperrors.ErrCodeInvalidFile)
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedExtensions[contentType]
	if !ok {
		return nil, apperrors.NewValidationFieldError("file", "only JPEG and PNG files are allowed", apperrors.ErrCodeInvalidFile)
	}

	fileID := uuid.NewString()
	key := fileID + "." + ext

	uri, err := s.gateway.Upload(ctx, key, contentType, data)
	if err != nil {
		s.logger.Error("upload to storage failed", "key", key, "error", err)
		return nil, apperrors.NewExternalError("failed to upload file", err)
	}

	record := &fileDatamodel.File{
		FileID:    fileID,
		UserID:    userID,
		URI:       uri,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("persist file record failed", "file_id", fileID, "error", err)
		return nil, err
	}

	s.logger.Info("file uploaded", "file_id", fileID, "user_id", userID, "size", len(data))

	return &UploadResponse{URI: uri}, nil
}
