package users

import (
	"context"
	"time"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kshitijrv/mingle/services/users UserGW

// UserGW represents outbound collaborators of the users service: the email
// sender and the event stream.
type UserGW interface {
	SendOTPEmail(ctx context.Context, email, code string, validity time.Duration) error
	PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error
	PublishUserVerified(ctx context.Context, event *models.UserVerifiedEvent) error
}
