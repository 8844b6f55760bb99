package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"community-media-api/internal/application/ports"
	domain "community-media-api/internal/domain/media"
	"community-media-api/internal/infrastructure/jwt"
	"community-media-api/internal/interface/api/rest/middleware"
	"community-media-api/internal/interface/api/rest/validator"
)

type ComplianceController struct {
	mediaService ports.MediaService
	logger       *zap.Logger
}

func NewComplianceController(
	r *gin.Engine,
	mediaService ports.MediaService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ComplianceController {
	cc := &ComplianceController{
		mediaService: mediaService,
		logger:       logger,
	}

	r.GET(RouteUserMediaExport, middleware.AuthMiddleware(jwtService), cc.ExportUserMediaHandler)
	r.DELETE(RouteUserMedia, middleware.AuthMiddleware(jwtService), cc.DeleteUserMediaHandler)

	return cc
}

func (cc *ComplianceController) ExportUserMediaHandler(c *gin.Context) {
	ok, userID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	manifest, err := cc.mediaService.ExportUserMedia(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to export user media"},
		)
		cc.logger.Error("ExportUserMedia() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, manifest)
}

func (cc *ComplianceController) DeleteUserMediaHandler(c *gin.Context) {
	ok, userID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	count, err := cc.mediaService.DeleteUserMedia(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAuthenticationRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete user media"},
		)
		cc.logger.Error("DeleteUserMedia() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_count": count})
}
