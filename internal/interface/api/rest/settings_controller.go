package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"community-media-api/internal/application/ports"
	"community-media-api/internal/infrastructure/jwt"
	settingsdto "community-media-api/internal/interface/api/rest/dto/settings"
	"community-media-api/internal/interface/api/rest/middleware"
)

type SettingsController struct {
	settingsService ports.SettingsService
	logger          *zap.Logger
}

func NewSettingsController(
	r *gin.Engine,
	settingsService ports.SettingsService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *SettingsController {
	sc := &SettingsController{
		settingsService: settingsService,
		logger:          logger,
	}

	r.GET(RouteMediaSettings, middleware.AuthMiddleware(jwtService), sc.GetSettingsHandler)
	r.PUT(RouteMediaSettings, middleware.AuthMiddleware(jwtService), sc.UpdateSettingsHandler)

	return sc
}

func (sc *SettingsController) GetSettingsHandler(c *gin.Context) {
	s := sc.settingsService.GetSettings(c.Request.Context())

	c.JSON(http.StatusOK, settingsdto.ToResponseSettings(s))
}

func (sc *SettingsController) UpdateSettingsHandler(c *gin.Context) {
	var req settingsdto.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := sc.settingsService.UpdateSettings(c.Request.Context(), settingsdto.ToPartial(req)); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update settings"},
		)
		sc.logger.Error("UpdateSettings() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, settingsdto.ToResponseSettings(sc.settingsService.GetSettings(c.Request.Context())))
}
