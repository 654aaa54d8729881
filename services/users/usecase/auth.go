package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/kshitijrv/mingle/internal/pkg/jwt"
	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/internal/utils"
	"github.com/kshitijrv/mingle/services/users"
)

// SignUp creates an unverified account and issues the first OTP challenge.
// The returned user never carries the password hash in responses.
func (u *UserUC) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, error) {
	existing, err := u.userRepo.GetUserByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Email == req.Email {
			return nil, users.ErrEmailTaken
		}
		return nil, users.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashedStr := string(hashed)

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: &hashedStr,
		Phone:    req.Phone,
		Provider: models.ProviderLocal,
	}

	// The pre-check above races with concurrent signups; the store's
	// uniqueness constraints are the backstop and surface the same
	// conflict errors.
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	validity := time.Duration(u.cfg.OTP.SignupExpiryMinutes) * time.Minute
	if err := u.issueOTP(ctx, user.Email, validity); err != nil {
		return nil, err
	}

	if err := u.userGW.PublishUserRegistered(ctx, &models.UserRegisteredEvent{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
		Provider: user.Provider,
		At:       time.Now(),
	}); err != nil {
		logger.Warn("Failed to publish user registered event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	logger.Info("User signed up",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(user.Email)))

	return user, nil
}

// SignIn authenticates with email and password. Accounts with 2FA enabled
// or not yet verified get an OTP challenge instead of a session.
func (u *UserUC) SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	// OAuth-only accounts have no password to check
	if user.Password == nil {
		return nil, users.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}

	if user.Is2FAEnabled || !user.IsVerified {
		validity := time.Duration(u.cfg.OTP.SigninExpiryMinutes) * time.Minute
		if err := u.issueOTP(ctx, user.Email, validity); err != nil {
			return nil, err
		}
		return &models.AuthResponse{RequiresOTP: true}, nil
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
	}, nil
}

// ForgotPassword overwrites the password after the security answer check.
// Returns the updated user without exposing the new hash.
func (u *UserUC) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) (*models.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if user.SecurityAnswer != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(*user.SecurityAnswer), []byte(req.Answer)); err != nil {
			return nil, users.ErrInvalidCredentials
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.userRepo.UpdatePassword(ctx, req.Email, string(hashed)); err != nil {
		return nil, err
	}

	logger.Info("Password reset",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(user.Email)))

	user.Password = nil
	return user, nil
}
