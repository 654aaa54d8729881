package gateway

import (
	"github.com/kshitijrv/mingle/internal/pkg/models"
	natspkg "github.com/kshitijrv/mingle/internal/pkg/nats"
)

// UserGW implements the outbound collaborators of the users service
type UserGW struct {
	natsClient *natspkg.Client
	cfg        *models.Config
}

// NewUserGW creates a new user gateway instance
func NewUserGW(natsClient *natspkg.Client, cfg *models.Config) *UserGW {
	return &UserGW{
		natsClient: natsClient,
		cfg:        cfg,
	}
}
