package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kshitijrv/mingle/internal/pkg/constants"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	natspkg "github.com/kshitijrv/mingle/internal/pkg/nats"
)

// PostGW implements the outbound collaborators of the posts service
type PostGW struct {
	natsClient *natspkg.Client
}

// NewPostGW creates a new post gateway instance
func NewPostGW(natsClient *natspkg.Client) *PostGW {
	return &PostGW{natsClient: natsClient}
}

// PublishPostCreated publishes a post creation event
func (g *PostGW) PublishPostCreated(ctx context.Context, event *models.PostCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal post created event: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectPostCreated, data)
}
