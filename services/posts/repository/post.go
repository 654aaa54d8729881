package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

// CreatePost inserts the post and its image rows in one transaction and
// fills post.Images with the created rows.
func (r *PostRepo) CreatePost(ctx context.Context, post *models.Post, imageURLs []string) error {
	post.ID = uuid.New()
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (id, author_id, caption, video_url, created_at, updated_at)
		VALUES (:id, :author_id, :caption, :video_url, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	images := make([]models.Image, 0, len(imageURLs))
	for _, url := range imageURLs {
		image := models.Image{
			ID:     uuid.New(),
			PostID: post.ID,
			URL:    url,
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO images (id, post_id, url) VALUES ($1, $2, $3)`,
			image.ID, image.PostID, image.URL,
		); err != nil {
			return fmt.Errorf("failed to insert image: %w", err)
		}
		images = append(images, image)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	post.Images = images
	return nil
}

// listRow flattens the post/author join for scanning
type listRow struct {
	models.Post
	AuthorName     string `db:"author_name"`
	AuthorUsername string `db:"author_username"`
	AuthorPicture  string `db:"author_picture"`
}

// ListPosts returns newest-first posts with their author and images
func (r *PostRepo) ListPosts(ctx context.Context, take, skip int) ([]*models.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.caption, p.video_url, p.created_at, p.updated_at,
			u.name AS author_name, u.username AS author_username, u.picture AS author_picture
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var rows []listRow
	if err := r.db.SelectContext(ctx, &rows, query, take, skip); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	result := make([]*models.Post, 0, len(rows))
	postIDs := make([]uuid.UUID, 0, len(rows))
	byID := make(map[uuid.UUID]*models.Post, len(rows))
	for i := range rows {
		post := rows[i].Post
		post.Author = &models.User{
			ID:       post.AuthorID,
			Name:     rows[i].AuthorName,
			Username: rows[i].AuthorUsername,
			Picture:  rows[i].AuthorPicture,
		}
		result = append(result, &post)
		postIDs = append(postIDs, post.ID)
		byID[post.ID] = result[len(result)-1]
	}

	if len(postIDs) == 0 {
		return result, nil
	}

	imgQuery, args, err := sqlx.In(`SELECT id, post_id, url FROM images WHERE post_id IN (?)`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build image query: %w", err)
	}

	var images []models.Image
	if err := r.db.SelectContext(ctx, &images, r.db.Rebind(imgQuery), args...); err != nil {
		return nil, fmt.Errorf("failed to list post images: %w", err)
	}

	for _, image := range images {
		if post, ok := byID[image.PostID]; ok {
			post.Images = append(post.Images, image)
		}
	}

	return result, nil
}
