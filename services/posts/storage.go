package posts

import (
	"context"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/kshitijrv/mingle/services/posts MediaStore

// MediaStore uploads media files to object storage and returns the public
// URL of the stored object.
type MediaStore interface {
	Upload(ctx context.Context, file *models.FileUpload) (string, error)
}
