package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/service"
	"github.com/woundtrack/backend/pkg/logger"
	"go.uber.org/zap"
)

type response struct {
	Message string `json:"message"`
} // @name Response

func newResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, response{message})
}

// serviceErrorResponse maps the service error taxonomy onto HTTP status
// codes. Anything unknown is a downstream failure and surfaces as 500.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRateLimited):
		newResponse(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, service.ErrCodeExpired):
		newResponse(c, http.StatusGone, err.Error())
	case errors.Is(err, service.ErrCodeMismatch),
		errors.Is(err, service.ErrInvalidCredentials):
		newResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrMemberRoleExists):
		newResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRecordNotFound),
		errors.Is(err, service.ErrReminderNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrHospitalNotFound),
		errors.Is(err, domain.ErrNotFound):
		newResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMissingSelector):
		newResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("internal error", zap.Error(err))
		newResponse(c, http.StatusInternalServerError, "internal server error")
	}
}

type ValidationErrorStruct struct {
	Message string            `json:"message"`
	Errors  []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
			Message: "validation error",
			Errors:  out,
		})
		return
	}

	newResponse(c, http.StatusBadRequest, err.Error())
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "number":
		return "this field must be numeric"
	case "min":
		return fmt.Sprintf("minimum length is %v", value)
	case "max":
		return fmt.Sprintf("maximum length is %v", value)
	case "timeofday":
		return "time must be a 24h HH:MM value"
	}
	return tag
}
