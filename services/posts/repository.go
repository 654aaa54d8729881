package posts

import (
	"context"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kshitijrv/mingle/services/posts PostRepo

// PostRepo represents the post store interface. CreatePost persists the post
// and its image rows in one transaction.
type PostRepo interface {
	CreatePost(ctx context.Context, post *models.Post, imageURLs []string) error
	ListPosts(ctx context.Context, take, skip int) ([]*models.Post, error)
}
