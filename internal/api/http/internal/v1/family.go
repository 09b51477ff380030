package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/woundtrack/backend/internal/domain"
)

func (h *Handler) initFamilyRoutes(api *gin.RouterGroup) {
	family := api.Group("/family", h.userIdentityMiddleware)

	family.GET("", h.getMembers)
	family.POST("", h.addMember)
}

// @Summary List family members
// @Tags Family
// @Description List family members tracked under the authenticated user
// @Produce json
// @Success 200 {object} []domain.Member
// @Failure 401
// @Failure 404 {object} Response
// @Security UserAuth
// @Router /family [get]
func (h *Handler) getMembers(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	members, err := h.services.Families.GetAllByUserID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

type addMemberInput struct {
	Role      string `json:"role" binding:"required"`
	BirthYear int    `json:"birthYear" binding:"required"`
	Condition string `json:"condition" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
}

// @Summary Add family member
// @Tags Family
// @Description Add a family member; roles are unique per account
// @Accept json
// @Produce json
// @Success 201 {object} domain.Member
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Failure 409 {object} Response
// @Security UserAuth
// @Router /family [post]
func (h *Handler) addMember(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input addMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	member, err := h.services.Families.Add(c.Request.Context(), &domain.Member{
		UserID:    userID,
		Role:      input.Role,
		BirthYear: input.BirthYear,
		Condition: input.Condition,
		Frequency: input.Frequency,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}
