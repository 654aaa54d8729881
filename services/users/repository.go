package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kshitijrv/mingle/services/users UserRepo

// UserRepo represents the credential store interface. Email and username
// uniqueness is enforced by the store; violations surface as ErrEmailTaken
// or ErrUsernameTaken.
type UserRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// OTP challenge state. SetOTP resets the attempt counter; ClearOTP
	// removes the challenge and optionally marks the account verified.
	SetOTP(ctx context.Context, email, code string, expiry time.Time) error
	SetOTPAttempts(ctx context.Context, email string, attempts int) error
	ClearOTP(ctx context.Context, email string, markVerified bool) error

	UpdatePassword(ctx context.Context, email, hashedPassword string) error
}
