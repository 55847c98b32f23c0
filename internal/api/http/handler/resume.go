package handler

import (
	"bytes"
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

const (
	msgResumeUploaded = "Resume uploaded"
	msgResumeDeleted  = "Resume deleted"
)

// ResumeService stores one resume file per user.
type ResumeService interface {
	Upload(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) error
	Download(ctx context.Context, userID uuid.UUID) (io.ReadCloser, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Resume handles /api/profile/resume for the authenticated user.
type Resume struct {
	resumeService  ResumeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewResume(resumeService ResumeService, contextManager model.ContextManager, logger *logger.Logger) *Resume {
	return &Resume{
		resumeService:  resumeService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Upload stores the raw request body as the caller's resume.
func (h *Resume) Upload(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return apierrors.NewErrMissingAuthorizationToken()
	}

	body := c.Body()
	if len(body) == 0 {
		return apierrors.NewErrValidation("Resume file is required", nil)
	}

	err := h.resumeService.Upload(c.UserContext(), user.ID, bytes.NewReader(body), int64(len(body)), c.Get(fiber.HeaderContentType))
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: msgResumeUploaded})
}

// Download streams the caller's resume.
func (h *Resume) Download(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return apierrors.NewErrMissingAuthorizationToken()
	}

	rc, err := h.resumeService.Download(c.UserContext(), user.ID)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.SendStream(rc)
}

func (h *Resume) Delete(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return apierrors.NewErrMissingAuthorizationToken()
	}

	if err := h.resumeService.Delete(c.UserContext(), user.ID); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: msgResumeDeleted})
}
