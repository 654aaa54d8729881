package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kshitijrv/mingle/internal/pkg/constants"
	"github.com/kshitijrv/mingle/internal/pkg/models"
)

// PublishUserRegistered publishes a user registration event
func (g *UserGW) PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error {
	return g.publish(constants.SubjectUserRegistered, event)
}

// PublishUserVerified publishes an account verification event
func (g *UserGW) PublishUserVerified(ctx context.Context, event *models.UserVerifiedEvent) error {
	return g.publish(constants.SubjectUserVerified, event)
}

func (g *UserGW) publish(subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", subject, err)
	}
	return g.natsClient.Publish(subject, data)
}
