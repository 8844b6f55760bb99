package rest

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"community-media-api/internal/application/ports"
	domain "community-media-api/internal/domain/media"
	"community-media-api/internal/infrastructure/jwt"
	mediadto "community-media-api/internal/interface/api/rest/dto/media"
	"community-media-api/internal/interface/api/rest/middleware"
	"community-media-api/internal/interface/api/rest/validator"
)

// Hard request cap; the policy limit from settings is enforced by the
// upload pipeline's validator.
const maxRequestFileSize = int64(64 << 20)

type MediaController struct {
	uploadService ports.UploadService
	mediaService  ports.MediaService
	logger        *zap.Logger
}

func NewMediaController(
	r *gin.Engine,
	uploadService ports.UploadService,
	mediaService ports.MediaService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *MediaController {
	mc := &MediaController{
		uploadService: uploadService,
		mediaService:  mediaService,
		logger:        logger,
	}

	r.GET(RouteEntityMedia, mc.GetEntityMediaHandler)
	r.POST(RouteEntityMedia, middleware.AuthMiddleware(jwtService), mc.UploadMediaHandler)
	r.PATCH(RouteMediaItem, middleware.AuthMiddleware(jwtService), mc.UpdateMediaHandler)
	r.DELETE(RouteMediaItem, middleware.AuthMiddleware(jwtService), mc.DeleteMediaHandler)

	return mc
}

func (mc *MediaController) GetEntityMediaHandler(c *gin.Context) {
	entity, err := validator.ValidateEntityRef(c.Param("entity_type"), c.Param("entity_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	ms, err := mc.mediaService.FindForEntity(c.Request.Context(), entity)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get media"},
		)
		mc.logger.Error("FindForEntity() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, mediadto.ResponseData{
		Data: mediadto.ToResponseMediaList(ms),
	})
}

func (mc *MediaController) UploadMediaHandler(c *gin.Context) {
	entity, err := validator.ValidateEntityRef(c.Param("entity_type"), c.Param("entity_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form is required"})
		return
	}
	fhs := form.File["files"]
	if len(fhs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one file is required"})
		return
	}

	sortOrder, err := validator.ValidateSortOrder(c.PostForm("sort_order"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := domain.UploadOptions{
		Entity:    entity,
		SortOrder: sortOrder,
	}
	if caption := strings.TrimSpace(c.PostForm("caption")); caption != "" {
		opts.Caption = &caption
	}
	if altText := strings.TrimSpace(c.PostForm("alt_text")); altText != "" {
		opts.AltText = &altText
	}

	files := make([]domain.File, 0, len(fhs))
	for _, fh := range fhs {
		if fh.Size <= 0 || fh.Size > maxRequestFileSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
			return
		}

		f, oErr := fh.Open()
		if oErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
			return
		}
		data, rErr := io.ReadAll(f)
		f.Close()
		if rErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
			return
		}

		files = append(files, domain.File{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	res := mc.uploadService.UploadMultiple(c.Request.Context(), files, opts, nil)

	for _, f := range res.Failed {
		if errors.Is(f.Err, domain.ErrAuthenticationRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
	}

	status := http.StatusCreated
	if res.TotalUploaded == 0 {
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, mediadto.ToBatchResponse(res))
}

func (mc *MediaController) UpdateMediaHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("media_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "media_id must be a valid UUID"},
		)
		return
	}

	var req mediadto.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	out, err := mc.mediaService.UpdateMedia(c.Request.Context(), id, domain.RecordUpdate{
		Caption:   req.Caption,
		AltText:   req.AltText,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthenticationRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update media"})
			mc.logger.Error("UpdateMedia() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, mediadto.ToResponseMedia(*out))
}

func (mc *MediaController) DeleteMediaHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("media_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "media_id must be a valid UUID"},
		)
		return
	}

	var req mediadto.DeleteRequest
	_ = c.ShouldBindJSON(&req)
	if strings.TrimSpace(req.Reason) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}

	err := mc.mediaService.DeleteMedia(c.Request.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthenticationRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete media"})
			mc.logger.Error("DeleteMedia() error", zap.Error(err))
		}
		return
	}

	c.Status(http.StatusNoContent)
}
