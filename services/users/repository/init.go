package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

// UserRepo implements the credential store on PostgreSQL
type UserRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(db *sqlx.DB, cfg *models.Config) *UserRepo {
	return &UserRepo{
		db:  db,
		cfg: cfg,
	}
}
