package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jwtpkg "github.com/kshitijrv/mingle/internal/pkg/jwt"
	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/internal/utils"
	"github.com/kshitijrv/mingle/services/users"
)

// usernameProbeLimit bounds the suffix search; the store's uniqueness
// constraint remains the final backstop under concurrent signups.
const usernameProbeLimit = 1000

// GoogleLogin completes an externally verified Google sign-in: an existing
// account is logged straight in, otherwise a verified password-less account
// is created with a username derived from the email's local part.
func (u *UserUC) GoogleLogin(ctx context.Context, profile *models.GoogleProfile) (*models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, profile.Email)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		return nil, err
	}

	isNew := false
	if user == nil {
		username, err := u.resolveUsername(ctx, profile.Email)
		if err != nil {
			return nil, err
		}

		user = &models.User{
			Name:       profile.Name,
			Email:      profile.Email,
			Username:   username,
			Picture:    profile.Picture,
			Provider:   models.ProviderGoogle,
			IsVerified: true,
		}

		if err := u.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		isNew = true

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

		logger.Info("Created account from Google profile",
			logger.String("user_id", user.ID.String()),
			logger.String("username", user.Username))
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		User:      user,
		IsNew:     isNew,
	}, nil
}

// resolveUsername probes for the smallest integer suffix that makes the
// email-derived base username unique: a, a1, a2, ...
func (u *UserUC) resolveUsername(ctx context.Context, email string) (string, error) {
	base := utils.UsernameFromEmail(email)
	candidate := base

	for suffix := 1; suffix <= usernameProbeLimit; suffix++ {
		_, err := u.userRepo.GetUserByUsername(ctx, candidate)
		if errors.Is(err, users.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = base + strconv.Itoa(suffix)
	}

	return "", fmt.Errorf("could not derive a unique username for %s", utils.MaskEmail(email))
}
