package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/woundtrack/backend/internal/domain"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", h.userIdentityMiddleware)

	users.GET("/me", h.getProfile)
	users.GET("/detail", h.getDetail)
	users.PUT("/name", h.updateName)
	users.POST("/verify-password", h.verifyPassword)
	users.PUT("/password", h.updatePassword)
	users.PUT("/picture", h.updatePicture)
}

// @Summary Profile
// @Tags Users
// @Description Get the authenticated user's profile
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /users/me [get]
func (h *Handler) getProfile(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type userDetailResponse struct {
	User    *domain.User    `json:"user"`
	Reports []domain.Report `json:"reports"`
}

// @Summary Profile detail
// @Tags Users
// @Description Get the profile together with all aggregated reports
// @Produce json
// @Success 200 {object} userDetailResponse
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /users/detail [get]
func (h *Handler) getDetail(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	reports, err := h.services.Records.GetReportsWithReminders(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, userDetailResponse{User: user, Reports: reports})
}

type updateNameInput struct {
	Name string `json:"name" binding:"required"`
}

// @Summary Update name
// @Tags Users
// @Description Change the display name
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Security UserAuth
// @Router /users/name [put]
func (h *Handler) updateName(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input updateNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Users.UpdateName(c.Request.Context(), userID, input.Name); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"name updated"})
}

type passwordInput struct {
	Password string `json:"password" binding:"required"`
}

// @Summary Verify password
// @Tags Users
// @Description Check the current password before allowing a change
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Security UserAuth
// @Router /users/verify-password [post]
func (h *Handler) verifyPassword(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input passwordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Users.VerifyPassword(c.Request.Context(), userID, input.Password); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"password correct"})
}

type updatePasswordInput struct {
	Password string `json:"password" binding:"required,min=8"`
}

// @Summary Update password
// @Tags Users
// @Description Replace the current password
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Security UserAuth
// @Router /users/password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input updatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Users.UpdatePassword(c.Request.Context(), userID, input.Password); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"password updated"})
}

type updatePictureResponse struct {
	Path string `json:"path"`
}

// @Summary Update picture
// @Tags Users
// @Description Upload and set a new profile picture
// @Accept mpfd
// @Produce json
// @Success 200 {object} updatePictureResponse
// @Failure 400 {object} Response
// @Failure 401
// @Security UserAuth
// @Router /users/picture [put]
func (h *Handler) updatePicture(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	picture, err := readFormFile(c, "picture")
	if err != nil || len(picture) == 0 {
		newResponse(c, http.StatusBadRequest, "no image uploaded")
		return
	}

	pictureURL, err := h.services.Users.UpdatePicture(c.Request.Context(), userID, picture)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, updatePictureResponse{Path: pictureURL})
}
