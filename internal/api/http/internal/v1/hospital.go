package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initHospitalsRoutes(api *gin.RouterGroup) {
	hospitals := api.Group("/hospitals")

	hospitals.GET("", h.searchHospitals)
	hospitals.GET("/districts", h.getDistricts)
	hospitals.GET("/departments", h.getDepartments)
	hospitals.GET("/nearby", h.getNearbyHospitals)
}

// @Summary Districts
// @Tags Hospitals
// @Description Districts of a city that have hospitals
// @Produce json
// @Success 200 {object} []string
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /hospitals/districts [get]
func (h *Handler) getDistricts(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		newResponse(c, http.StatusBadRequest, "city is required")
		return
	}

	districts, err := h.services.Hospitals.GetDistricts(c.Request.Context(), city)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, districts)
}

// @Summary Departments
// @Tags Hospitals
// @Description Departments available in a city district
// @Produce json
// @Success 200 {object} []string
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /hospitals/departments [get]
func (h *Handler) getDepartments(c *gin.Context) {
	city := c.Query("city")
	district := c.Query("district")
	if city == "" || district == "" {
		newResponse(c, http.StatusBadRequest, "city and district are required")
		return
	}

	departments, err := h.services.Hospitals.GetDepartments(c.Request.Context(), city, district)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

// @Summary Search hospitals
// @Tags Hospitals
// @Description Hospitals by city, optionally filtered by district and department
// @Produce json
// @Success 200 {object} []domain.Hospital
// @Failure 400 {object} Response
// @Router /hospitals [get]
func (h *Handler) searchHospitals(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		newResponse(c, http.StatusBadRequest, "city is required")
		return
	}

	hospitals, err := h.services.Hospitals.Search(c.Request.Context(), city, c.Query("district"), c.Query("dept"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, hospitals)
}

// @Summary Nearby hospitals
// @Tags Hospitals
// @Description Ten closest hospitals to the given coordinates
// @Produce json
// @Success 200 {object} []domain.Hospital
// @Failure 400 {object} Response
// @Router /hospitals/nearby [get]
func (h *Handler) getNearbyHospitals(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		newResponse(c, http.StatusBadRequest, "lat and lng are required")
		return
	}

	hospitals, err := h.services.Hospitals.Nearby(c.Request.Context(), lat, lng)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, hospitals)
}
