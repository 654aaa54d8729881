package posts

import (
	"context"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kshitijrv/mingle/services/posts PostGW

// PostGW represents outbound collaborators of the posts service
type PostGW interface {
	PublishPostCreated(ctx context.Context, event *models.PostCreatedEvent) error
}
