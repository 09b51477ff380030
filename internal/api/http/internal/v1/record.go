package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/woundtrack/backend/internal/service"
)

func (h *Handler) initRecordsRoutes(api *gin.RouterGroup) {
	records := api.Group("/records", h.userIdentityMiddleware)

	records.POST("", h.createRecord)
	records.GET("", h.getRecords)
	records.GET("/reports", h.getReports)
	records.GET("/groups", h.listGroups)
	records.GET("/:id/group", h.lookupGroup)
	records.POST("/group", h.assignGroup)
	records.POST("/heal-time", h.updateHealTime)
}

type createRecordInput struct {
	MemberID        *int64 `form:"memberId"`
	Date            string `form:"date" binding:"required"`
	Type            string `form:"type" binding:"required"`
	CareMode        string `form:"careMode" binding:"required"`
	ReminderEnabled bool   `form:"reminderEnabled"`
	ChosenKind      string `form:"chosenKind"`
	Recording       string `form:"recording"`
	DisplayName     string `form:"name"`
}

// @Summary Create record
// @Tags Records
// @Description Submit a diagnosis record with an attached photo
// @Accept mpfd
// @Produce json
// @Success 201 {object} domain.Record
// @Failure 400 {object} Response
// @Failure 401
// @Security UserAuth
// @Router /records [post]
func (h *Handler) createRecord(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input createRecordInput
	if err := c.ShouldBind(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	photo, err := readFormFile(c, "photo")
	if err != nil || len(photo) == 0 {
		newResponse(c, http.StatusBadRequest, "photo is required")
		return
	}

	record, err := h.services.Records.Create(c.Request.Context(), service.CreateRecordInput{
		UserID:          userID,
		MemberID:        input.MemberID,
		Date:            input.Date,
		Photo:           photo,
		Type:            input.Type,
		CareMode:        input.CareMode,
		ReminderEnabled: input.ReminderEnabled,
		ChosenKind:      input.ChosenKind,
		Recording:       input.Recording,
		DisplayName:     input.DisplayName,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// @Summary List records
// @Tags Records
// @Description List all diagnosis records of the authenticated user
// @Produce json
// @Success 200 {object} []domain.Record
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /records [get]
func (h *Handler) getRecords(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	records, err := h.services.Records.GetAllByUserID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// @Summary Aggregated reports
// @Tags Records
// @Description Records joined with their reminders, ordered by record then reminder id
// @Produce json
// @Success 200 {object} []domain.Report
// @Failure 401
// @Security UserAuth
// @Router /records/reports [get]
func (h *Handler) getReports(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	reports, err := h.services.Records.GetReportsWithReminders(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// @Summary List groups
// @Tags Records
// @Description Distinct healing-episode group ids of the user's records
// @Produce json
// @Success 200 {object} []int64
// @Failure 401
// @Security UserAuth
// @Router /records/groups [get]
func (h *Handler) listGroups(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	groups, err := h.services.Records.ListGroups(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// @Summary Lookup group
// @Tags Records
// @Description Group id of a single record, null when ungrouped
// @Produce json
// @Success 200
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /records/{id}/group [get]
func (h *Handler) lookupGroup(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	recordID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newResponse(c, http.StatusBadRequest, "invalid record id")
		return
	}

	groupID, err := h.services.Records.LookupGroup(c.Request.Context(), userID, recordID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if !groupID.Valid {
		c.JSON(http.StatusOK, gin.H{"groupId": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groupId": groupID.Int64})
}

type assignGroupInput struct {
	RecordID1 int64 `json:"recordId1" binding:"required"`
	RecordID2 int64 `json:"recordId2" binding:"required"`
	GroupID   int64 `json:"groupId" binding:"required"`
}

// @Summary Assign group
// @Tags Records
// @Description Link two records into one healing episode
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /records/group [post]
func (h *Handler) assignGroup(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input assignGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Records.AssignGroup(c.Request.Context(), userID, input.RecordID1, input.RecordID2, input.GroupID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"group assigned"})
}

type updateHealTimeInput struct {
	GroupID  *int64 `json:"groupId"`
	RecordID *int64 `json:"recordId"`
	HealTime string `json:"healTime" binding:"required"`
}

// @Summary Update heal time
// @Tags Records
// @Description Set the healing time on one record or cascade over a group
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /records/heal-time [post]
func (h *Handler) updateHealTime(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input updateHealTimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Records.UpdateHealTime(c.Request.Context(), userID, input.GroupID, input.RecordID, input.HealTime); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response{"heal time updated"})
}
