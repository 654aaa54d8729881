package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

// GetUserByID returns the user without credential material.
func (u *UserUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitizeUser(user)
	return user, nil
}

// GetUserByEmail returns the user without credential material.
func (u *UserUC) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sanitizeUser(user)
	return user, nil
}

func sanitizeUser(user *models.User) {
	if user == nil {
		return
	}
	user.Password = nil
	user.OTP = nil
	user.OTPExpiry = nil
	user.SecurityAnswer = nil
}
