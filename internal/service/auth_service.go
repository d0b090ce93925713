package service

import (
	"context"
	"fmt"
	"time"

	apperrors "gin-jobs/internal/errors"
	"gin-jobs/internal/models"
	"gin-jobs/internal/queue"
	"gin-jobs/internal/repository"
	"gin-jobs/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resetTokenTTL is how long a password-reset token stays valid.
const resetTokenTTL = 30 * time.Minute

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager auth.TokenManager
	mailQueue  queue.Queue
	appURL     string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtManager auth.TokenManager, mailQueue queue.Queue, appURL string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		mailQueue:  mailQueue,
		appURL:     appURL,
	}
}

// Register creates a new account and returns a session token.
// The password is hashed before it ever reaches the repository.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// UpdatePassword changes the password after verifying the current one.
func (s *AuthService) UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(req.CurrentPassword, user.Password); err != nil {
		return apperrors.ErrPasswordMismatch
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, hashedPassword)
}

// ForgotPassword stores a hashed reset token and queues the reset email.
// Only the hash is persisted; the plaintext token leaves the process in
// the email alone.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, tokenHash, err := auth.GenerateResetToken()
	if err != nil {
		return err
	}

	expire := time.Now().Add(resetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, tokenHash, expire); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/api/v1/password/reset/%s", s.appURL, token)
	job := queue.EmailJob{
		To:      user.Email,
		Subject: "Password recovery",
		Body: fmt.Sprintf("You requested a password reset. Reset your password with a PUT to:\n\n%s\n\nThe link expires in 30 minutes. If you did not request this, ignore this email.",
			resetURL),
	}

	if err := s.mailQueue.Enqueue(job); err != nil {
		// Do not leave a live token behind when the mail cannot go out.
		_ = s.userRepo.ClearResetToken(ctx, user.ID)
		return apperrors.ErrMailQueueFull
	}

	return nil
}

// ResetPassword completes a reset: the plaintext token is hashed and
// matched against the stored, unexpired hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (*models.AuthResponse, error) {
	tokenHash := auth.HashResetToken(token)

	user, err := s.userRepo.FindByResetToken(ctx, tokenHash)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return nil, err
	}
	if err := s.userRepo.ClearResetToken(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

func (s *AuthService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
