package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

// TokenService issues and resolves bearer tokens on top of a TokenManager.
// Tokens are stateless: nothing is persisted and nothing can be revoked.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	token, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		s.logger.Error("Token service: failed to issue access token",
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("issue access: %w", err)
	}

	return token, nil
}

func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(token)
}
