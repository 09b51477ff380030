package v1

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/woundtrack/backend/internal/domain"
)

func (h *Handler) initRemindersRoutes(api *gin.RouterGroup) {
	reminders := api.Group("/reminders", h.userIdentityMiddleware)

	reminders.POST("", h.createReminder)
	reminders.GET("", h.getReminders)
	reminders.PUT("/time", h.updateReminderTime)
	reminders.DELETE("", h.deleteReminders)
}

type createReminderInput struct {
	RecordID  int64  `json:"recordId" binding:"required"`
	MemberID  *int64 `json:"memberId"`
	Day       string `json:"day" binding:"required"`
	Time      string `json:"time" binding:"required,timeofday"`
	Frequency string `json:"frequency" binding:"required"`
}

// @Summary Create reminder
// @Tags Reminders
// @Description Attach a recurring self-care reminder to a record
// @Accept json
// @Produce json
// @Success 201 {object} domain.Reminder
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Security UserAuth
// @Router /reminders [post]
func (h *Handler) createReminder(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input createReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	reminder := &domain.Reminder{
		UserID:    userID,
		RecordID:  input.RecordID,
		Day:       input.Day,
		Time:      input.Time,
		Frequency: input.Frequency,
	}
	if input.MemberID != nil {
		reminder.MemberID = sql.NullInt64{Int64: *input.MemberID, Valid: true}
	}

	if err := h.services.Reminders.Create(c.Request.Context(), reminder); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// @Summary List reminders
// @Tags Reminders
// @Description List all reminders of the authenticated user
// @Produce json
// @Success 200 {object} []domain.Reminder
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /reminders [get]
func (h *Handler) getReminders(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	reminders, err := h.services.Reminders.GetAllByUserID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, reminders)
}

type updateReminderTimeInput struct {
	RecordID int64  `json:"recordId" binding:"required"`
	Time     string `json:"time" binding:"required,timeofday"`
}

// @Summary Update reminder time
// @Tags Reminders
// @Description Change the time of day for all reminders on a record
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /reminders/time [put]
func (h *Handler) updateReminderTime(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input updateReminderTimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Reminders.UpdateTime(c.Request.Context(), userID, input.RecordID, input.Time); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"reminder time updated"})
}

type deleteRemindersInput struct {
	RecordID int64 `json:"recordId" binding:"required"`
}

// @Summary Delete reminders
// @Tags Reminders
// @Description Delete every reminder attached to a record
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /reminders [delete]
func (h *Handler) deleteReminders(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input deleteRemindersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Reminders.Delete(c.Request.Context(), userID, input.RecordID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"reminders deleted"})
}
