package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
	"github.com/internkaksha/internkaksha-server/internal/password"
)

const msgPasswordTooLong = "Password must be at most 72 bytes"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: NewTokenService(tokenManager, logger),
		logger:       logger,
	}
}

// Register creates a user and returns it with a fresh token.
// An empty role defaults to INTERN.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.Session, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if strings.TrimSpace(params.Name) == "" || strings.TrimSpace(params.Email) == "" || params.Password == "" {
		return model.Session{}, apierrors.NewErrValidation("Name, email and password are required", nil)
	}

	role := model.RoleIntern
	if params.Role != "" {
		parsed, ok := model.ParseRole(string(params.Role))
		if !ok {
			return model.Session{}, apierrors.NewErrValidation("Invalid role", nil)
		}
		role = parsed
	}

	existingUser, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.Session{}, apierrors.NewErrEmailIsTaken()
	}

	hash, err := a.hasher.Hash(params.Password)
	if errors.Is(err, password.ErrPasswordTooLong) {
		return model.Session{}, apierrors.NewErrValidation(msgPasswordTooLong, err)
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:             uuid.New(),
		Name:           params.Name,
		Email:          params.Email,
		PasswordHash:   hash,
		Role:           role,
		InternshipRole: params.InternshipRole,
		Department:     params.Department,
		Duration:       params.Duration,
		StartDate:      params.StartDate,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: concurrent registration lost the race",
			"email", params.Email)
		return model.Session{}, apierrors.NewErrEmailIsTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenService.Issue(user.ID)
	if err != nil {
		return model.Session{}, apierrors.NewErrInternalServerError(err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", user.ID,
		"role", user.Role)

	return model.Session{User: user, Token: token}, nil
}

// Login checks credentials and returns the user with a fresh token.
func (a *Auth) Login(ctx context.Context, email, pass string) (model.Session, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	if strings.TrimSpace(email) == "" || pass == "" {
		return model.Session{}, apierrors.NewErrValidation("Email and password are required", nil)
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	err = a.hasher.Compare(user.PasswordHash, pass)
	if errors.Is(err, password.ErrMismatchedHashAndPassword) {
		a.logger.Info("Auth service: invalid credentials",
			"user_id", user.ID)
		return model.Session{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.Session{}, apierrors.NewErrInternalServerError(fmt.Errorf("failed to verify password: %w", err))
	}

	token, err := a.tokenService.Issue(user.ID)
	if err != nil {
		return model.Session{}, apierrors.NewErrInternalServerError(err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID)

	return model.Session{User: user, Token: token}, nil
}

// ResolveSession verifies token and reloads its subject from the store.
// Role and name always come from the stored user, never from the token.
func (a *Auth) ResolveSession(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, apierrors.NewErrMissingAuthorizationToken()
	}

	userID, err := a.tokenService.GetUserID(ctx, token)
	if err != nil {
		a.logger.Debug("Auth service: token rejected",
			"error", err.Error())
		return model.User{}, apierrors.NewErrInvalidAuthorizationToken(err)
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: token subject no longer exists",
			"user_id", userID)
		return model.User{}, apierrors.NewErrSessionUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
