package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/pkg/middleware"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/internal/pkg/validator"
	"github.com/kshitijrv/mingle/internal/utils"
	"github.com/kshitijrv/mingle/services/posts"
)

const (
	maxImagesPerPost = 10
	maxUploadBytes   = 50 << 20 // 50 MiB per file
)

// PostHandler handles HTTP requests for post operations
type PostHandler struct {
	postUC posts.PostUC
}

// NewPostHandler creates a new post handler
func NewPostHandler(postUC posts.PostUC) *PostHandler {
	return &PostHandler{postUC: postUC}
}

// CreatePost handles multipart post creation. Text fields bind from the
// form, media comes from the images and video file parts, and the author is
// always the authenticated user.
func (h *PostHandler) CreatePost(c echo.Context) error {
	session := middleware.GetSession(c)
	if session == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	form, err := c.MultipartForm()
	if err != nil && err != http.ErrNotMultipart {
		return utils.BadRequestResponse(c, "Invalid multipart form")
	}

	var images []*models.FileUpload
	var video *models.FileUpload
	if form != nil {
		imageHeaders := form.File["images"]
		if len(imageHeaders) > maxImagesPerPost {
			return utils.BadRequestResponse(c, fmt.Sprintf("At most %d images per post", maxImagesPerPost))
		}
		for _, header := range imageHeaders {
			upload, err := readUpload(header)
			if err != nil {
				return utils.BadRequestResponse(c, err.Error())
			}
			images = append(images, upload)
		}

		if videoHeaders := form.File["video"]; len(videoHeaders) > 0 {
			video, err = readUpload(videoHeaders[0])
			if err != nil {
				return utils.BadRequestResponse(c, err.Error())
			}
		}
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), session.UserID, &req, images, video)
	if err != nil {
		logger.Error("Failed to create post",
			logger.Err(err),
			logger.String("author_id", session.UserID.String()))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Post created successfully", post)
}

// ListPosts handles feed retrieval with take/skip pagination
func (h *PostHandler) ListPosts(c echo.Context) error {
	take, _ := strconv.Atoi(c.QueryParam("take"))
	skip, _ := strconv.Atoi(c.QueryParam("skip"))

	result, err := h.postUC.ListPosts(c.Request().Context(), take, skip)
	if err != nil {
		logger.Error("Failed to list posts", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Posts retrieved successfully", result)
}

// readUpload buffers one multipart file into memory, capped at
// maxUploadBytes.
func readUpload(header *multipart.FileHeader) (*models.FileUpload, error) {
	if header.Size > maxUploadBytes {
		return nil, fmt.Errorf("file %s exceeds the upload size limit", header.Filename)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("could not read file %s", header.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("could not read file %s", header.Filename)
	}

	return &models.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
