package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a feed entry authored by a user
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Caption   string    `json:"caption" db:"caption"`
	VideoURL  *string   `json:"video_url,omitempty" db:"video_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Author *User   `json:"author,omitempty" db:"-"`
	Images []Image `json:"images,omitempty" db:"-"`
}

// Image represents an uploaded image attached to a post
type Image struct {
	ID     uuid.UUID `json:"id" db:"id"`
	PostID uuid.UUID `json:"post_id" db:"post_id"`
	URL    string    `json:"url" db:"url"`
}

// CreatePostRequest represents the text fields of a post creation request
type CreatePostRequest struct {
	Caption string `json:"caption" form:"caption" validate:"required"`
}

// FileUpload carries one uploaded file from the HTTP layer to the usecase
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// PostCreatedEvent is published when a post is created
type PostCreatedEvent struct {
	PostID   string    `json:"post_id"`
	AuthorID string    `json:"author_id"`
	Images   int       `json:"images"`
	HasVideo bool      `json:"has_video"`
	At       time.Time `json:"at"`
}
