package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

// PostRepo implements the post store on PostgreSQL
type PostRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewPostRepo creates a new post repository instance
func NewPostRepo(db *sqlx.DB, cfg *models.Config) *PostRepo {
	return &PostRepo{
		db:  db,
		cfg: cfg,
	}
}
