package usecase

import (
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/services/posts"
)

// PostUC implements the post flow controller
type PostUC struct {
	postRepo   posts.PostRepo
	mediaStore posts.MediaStore
	postGW     posts.PostGW
	cfg        *models.Config
}

// NewPostUC creates a new post usecase instance
func NewPostUC(
	postRepo posts.PostRepo,
	mediaStore posts.MediaStore,
	postGW posts.PostGW,
	cfg *models.Config,
) *PostUC {
	return &PostUC{
		postRepo:   postRepo,
		mediaStore: mediaStore,
		postGW:     postGW,
		cfg:        cfg,
	}
}
