package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/notify"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error
}

type authService struct {
	repo     *repository.Repository
	cfg      *utils.Config
	notifier notify.Notifier
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, cfg *utils.Config, notifier notify.Notifier, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		cfg:      cfg,
		notifier: notifier,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already registered", req.Email)
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s already taken", req.Username)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Login failed", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return s.issueToken(user)
}

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	expiry := time.Duration(s.cfg.JWT.ExpiryHours) * time.Hour
	token, expiresAt, err := utils.GenerateToken(user.ID.String(), string(user.Role), s.cfg.JWT.Secret, expiry)
	if err != nil {
		return nil, err
	}

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

// ForgotPassword always succeeds from the caller's perspective so the
// endpoint cannot be used to probe which emails are registered.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email")
		return nil
	}

	now := time.Now()
	reset := &entity.PasswordReset{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.cfg.Booking.ResetExpiryMinutes) * time.Minute),
	}

	if err := s.repo.PasswordReset.Create(ctx, reset); err != nil {
		return err
	}

	s.notifier.Enqueue(notify.Message{
		To:      user.Email,
		Subject: "Password reset",
		Body: fmt.Sprintf("Hi %s,\n\nUse this token to reset your password: %s\nIt expires in %d minutes.\n",
			user.Username, reset.Token.String(), s.cfg.Booking.ResetExpiryMinutes),
	})

	s.log.Info("Password reset issued", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	token, err := uuid.Parse(req.Token)
	if err != nil {
		return fmt.Errorf("invalid reset token format: %w", entity.ErrInvalidInput)
	}

	reset, err := s.repo.PasswordReset.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if reset == nil || !reset.IsUsable(time.Now()) {
		return fmt.Errorf("reset token: %w", entity.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, reset.UserID, hash); err != nil {
		return err
	}

	if err := s.repo.PasswordReset.MarkUsed(ctx, reset.ID); err != nil {
		return err
	}

	s.log.Info("Password reset completed", zap.String("user_id", reset.UserID.String()))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, entity.ErrInvalidInput)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, entity.ErrNotFound)
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return fmt.Errorf("old password mismatch: %w", entity.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	s.log.Info("Password changed", zap.String("user_id", userID))
	return nil
}
