package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/internal/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CreatePost uploads the attached media and persists the post. The video
// upload runs first, then all image uploads fan out concurrently and join
// before anything is written to the store, so a failed upload never leaves
// a half-linked post behind.
func (u *PostUC) CreatePost(
	ctx context.Context,
	authorID uuid.UUID,
	req *models.CreatePostRequest,
	images []*models.FileUpload,
	video *models.FileUpload,
) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Caption:  req.Caption,
	}

	if video != nil {
		url, err := u.mediaStore.Upload(ctx, video)
		if err != nil {
			return nil, fmt.Errorf("failed to upload video: %w", err)
		}
		post.VideoURL = &url
	}

	imageURLs := make([]string, len(images))
	g, gctx := errgroup.WithContext(ctx)
	for i, image := range images {
		i, image := i, image
		g.Go(func() error {
			url, err := u.mediaStore.Upload(gctx, image)
			if err != nil {
				return fmt.Errorf("failed to upload image %s: %w", image.Name, err)
			}
			imageURLs[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := u.postRepo.CreatePost(ctx, post, imageURLs); err != nil {
		return nil, err
	}

	if err := u.postGW.PublishPostCreated(ctx, &models.PostCreatedEvent{
		PostID:   post.ID.String(),
		AuthorID: authorID.String(),
		Images:   len(imageURLs),
		HasVideo: video != nil,
		At:       time.Now(),
	}); err != nil {
		logger.Warn("Failed to publish post created event",
			logger.String("post_id", post.ID.String()),
			logger.Err(err))
	}

	logger.Info("Post created",
		logger.String("post_id", post.ID.String()),
		logger.String("author_id", authorID.String()),
		logger.String("caption", utils.Truncate(post.Caption, 40)),
		logger.Int("images", len(imageURLs)))

	return post, nil
}

// ListPosts returns the newest posts with their author and images. take and
// skip outside sane bounds fall back to defaults.
func (u *PostUC) ListPosts(ctx context.Context, take, skip int) ([]*models.Post, error) {
	if take <= 0 || take > maxPageSize {
		take = defaultPageSize
	}
	if skip < 0 {
		skip = 0
	}
	return u.postRepo.ListPosts(ctx, take, skip)
}
