package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kshitijrv/mingle/services/users UserUC

// UserUC represents the auth flow controller interface
type UserUC interface {
	// local credential flow
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, error)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) (*models.User, error)

	// OTP verification
	VerifyOTP(ctx context.Context, email, code string) (*models.OTPVerification, error)

	// OAuth flow
	GoogleLogin(ctx context.Context, profile *models.GoogleProfile) (*models.AuthResponse, error)

	// projections
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
