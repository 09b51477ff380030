package v1

import (
	"github.com/woundtrack/backend/internal/config"
	"github.com/woundtrack/backend/internal/service"
	"github.com/woundtrack/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Wound Care Tracking API
// @version 1.0
// @description Backend for the wound-care tracking application

// @BasePath /api/v1

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
	h.initUsersRoutes(v1)
	h.initRecordsRoutes(v1)
	h.initRemindersRoutes(v1)
	h.initFamilyRoutes(v1)
	h.initHospitalsRoutes(v1)
}
