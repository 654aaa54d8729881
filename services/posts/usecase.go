package posts

import (
	"context"

	"github.com/google/uuid"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kshitijrv/mingle/services/posts PostUC

// PostUC represents the post flow controller interface. The author id always
// comes from the authenticated session, never from the request body.
type PostUC interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req *models.CreatePostRequest, images []*models.FileUpload, video *models.FileUpload) (*models.Post, error)
	ListPosts(ctx context.Context, take, skip int) ([]*models.Post, error)
}
