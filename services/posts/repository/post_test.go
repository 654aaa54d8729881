package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

func setupPostRepoTest(t *testing.T) (*PostRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &PostRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreatePost_WithImages(t *testing.T) {
	repo, mock, cleanup := setupPostRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO posts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO images").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO images").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	post := &models.Post{
		AuthorID: uuid.New(),
		Caption:  "weekend hike",
	}
	err := repo.CreatePost(context.Background(), post, []string{
		"https://bucket.s3.us-east-1.amazonaws.com/a.jpg",
		"https://bucket.s3.us-east-1.amazonaws.com/b.jpg",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, post.ID)
	require.Len(t, post.Images, 2)
	assert.Equal(t, post.ID, post.Images[0].PostID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePost_ImageInsertFailureRollsBack(t *testing.T) {
	repo, mock, cleanup := setupPostRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO posts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO images").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	post := &models.Post{
		AuthorID: uuid.New(),
		Caption:  "weekend hike",
	}
	err := repo.CreatePost(context.Background(), post, []string{
		"https://bucket.s3.us-east-1.amazonaws.com/a.jpg",
	})

	assert.Error(t, err)
	assert.Empty(t, post.Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPosts(t *testing.T) {
	repo, mock, cleanup := setupPostRepoTest(t)
	defer cleanup()

	postID := uuid.New()
	authorID := uuid.New()
	now := time.Now()

	postRows := sqlmock.NewRows([]string{
		"id", "author_id", "caption", "video_url", "created_at", "updated_at",
		"author_name", "author_username", "author_picture",
	}).AddRow(postID, authorID, "weekend hike", nil, now, now, "Jane Doe", "jane", "")
	mock.ExpectQuery("SELECT(.+)FROM posts p(.+)JOIN users u").
		WithArgs(10, 0).
		WillReturnRows(postRows)

	imageRows := sqlmock.NewRows([]string{"id", "post_id", "url"}).
		AddRow(uuid.New(), postID, "https://bucket.s3.us-east-1.amazonaws.com/a.jpg")
	mock.ExpectQuery("SELECT(.+)FROM images WHERE post_id IN").
		WillReturnRows(imageRows)

	result, err := repo.ListPosts(context.Background(), 10, 0)
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "weekend hike", result[0].Caption)
	require.NotNil(t, result[0].Author)
	assert.Equal(t, "jane", result[0].Author.Username)
	require.Len(t, result[0].Images, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPosts_Empty(t *testing.T) {
	repo, mock, cleanup := setupPostRepoTest(t)
	defer cleanup()

	postRows := sqlmock.NewRows([]string{
		"id", "author_id", "caption", "video_url", "created_at", "updated_at",
		"author_name", "author_username", "author_picture",
	})
	mock.ExpectQuery("SELECT(.+)FROM posts p(.+)JOIN users u").
		WithArgs(10, 20).
		WillReturnRows(postRows)

	result, err := repo.ListPosts(context.Background(), 10, 20)
	assert.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
