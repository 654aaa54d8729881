package usecase

import (
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/services/users"
)

// UserUC implements the auth flow controller
type UserUC struct {
	userRepo users.UserRepo
	userGW   users.UserGW
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		userGW:   userGW,
		cfg:      cfg,
	}
}
