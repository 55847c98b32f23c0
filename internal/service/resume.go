package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

// Resume keeps one resume file per user in object storage.
type Resume struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewResume(storage model.Storage, logger *logger.Logger) *Resume {
	return &Resume{
		storage: storage,
		logger:  logger,
	}
}

func resumeKey(userID uuid.UUID) string {
	return "resumes/" + userID.String()
}

// Upload replaces the user's resume with size bytes from r.
func (s *Resume) Upload(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) error {
	if size <= 0 {
		return apierrors.NewErrValidation("Resume file is required", nil)
	}

	if err := s.storage.Upload(ctx, resumeKey(userID), r, size, contentType); err != nil {
		s.logger.Error("Resume service: failed to upload resume",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to upload resume: %w", err)
	}

	s.logger.Info("Resume service: resume uploaded",
		"user_id", userID,
		"size", size)

	return nil
}

// Download opens the user's resume. The caller closes the reader.
func (s *Resume) Download(ctx context.Context, userID uuid.UUID) (io.ReadCloser, error) {
	rc, err := s.storage.Download(ctx, resumeKey(userID))
	if errors.Is(err, model.ErrNotFound) {
		return nil, apierrors.NewErrResumeNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to download resume: %w", err)
	}

	return rc, nil
}

func (s *Resume) Delete(ctx context.Context, userID uuid.UUID) error {
	key := resumeKey(userID)

	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check resume: %w", err)
	}
	if !exists {
		return apierrors.NewErrResumeNotFound()
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	s.logger.Info("Resume service: resume deleted",
		"user_id", userID)

	return nil
}
