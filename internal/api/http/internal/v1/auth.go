package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/woundtrack/backend/internal/service"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")

	auth.POST("/register", h.register)
	auth.POST("/login", h.login)
	auth.POST("/exist", h.exist)
	auth.POST("/send-code", h.sendCode)
	auth.POST("/verify-code", h.verifyCode)
	auth.POST("/reset-password", h.resetPassword)
}

type registerInput struct {
	Name      string `form:"name" binding:"required"`
	Gender    string `form:"gender" binding:"required"`
	Birthday  string `form:"birthday" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required,min=8"`
	Condition string `form:"condition"`
	Frequency string `form:"frequency"`
}

// @Summary Register
// @Tags Auth
// @Description Register a new account, optionally with a profile picture
// @Accept mpfd
// @Produce json
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} Response
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBind(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	picture, err := readFormFile(c, "picture")
	if err != nil {
		newResponse(c, http.StatusBadRequest, "invalid picture upload")
		return
	}

	user, err := h.services.Users.Register(c.Request.Context(), service.RegisterInput{
		Name:      input.Name,
		Gender:    input.Gender,
		Birthday:  input.Birthday,
		Email:     input.Email,
		Password:  input.Password,
		Condition: input.Condition,
		Frequency: input.Frequency,
		Picture:   picture,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// @Summary Login
// @Tags Auth
// @Description Exchange email and password for an access token
// @Accept json
// @Produce json
// @Success 200 {object} loginResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} Response
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	token, err := h.services.Users.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}

type emailInput struct {
	Email string `json:"email" binding:"required,email"`
}

type existResponse struct {
	Exists bool `json:"exists"`
}

// @Summary Account exists
// @Tags Auth
// @Description Check whether an email is already registered
// @Accept json
// @Produce json
// @Success 200 {object} existResponse
// @Failure 400 {object} ValidationErrorStruct
// @Router /auth/exist [post]
func (h *Handler) exist(c *gin.Context) {
	var input emailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	exists, err := h.services.Users.Exists(c.Request.Context(), input.Email)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, existResponse{Exists: exists})
}

// @Summary Send verification code
// @Tags Auth
// @Description Issue a password-reset code and email it to the address
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} ValidationErrorStruct
// @Failure 429 {object} Response
// @Router /auth/send-code [post]
func (h *Handler) sendCode(c *gin.Context) {
	var input emailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Verification.Issue(c.Request.Context(), input.Email); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"verification code sent"})
}

type verifyCodeInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// @Summary Verify code
// @Tags Auth
// @Description Validate a previously issued password-reset code
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} Response
// @Failure 410 {object} Response
// @Router /auth/verify-code [post]
func (h *Handler) verifyCode(c *gin.Context) {
	var input verifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Verification.Validate(c.Request.Context(), input.Email, input.Code); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"verification code valid"})
}

type resetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// @Summary Reset password
// @Tags Auth
// @Description Set a new password after code verification
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} Response
// @Router /auth/reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var input resetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Users.ResetPassword(c.Request.Context(), input.Email, input.NewPassword); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"password reset"})
}

// readFormFile loads an optional multipart file field into memory;
// a missing field is not an error.
func readFormFile(c *gin.Context, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
