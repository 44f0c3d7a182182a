package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saunie/internal/shared/utils/response"
)

// Controller defines the analytics controller interface
type Controller interface {
	GetDashboard(c *gin.Context)
}

// controller implements the Controller interface
type controller struct {
	service Service
}

// NewController creates a new analytics controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetDashboard godoc
// @Summary      Fleet dashboard
// @Description  Totals across trips, patrons and bookings, with upcoming trips
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.StandardApiResponse{data=Dashboard}
// @Router       /dashboard/stats [get]
func (ctrl *controller) GetDashboard(c *gin.Context) {
	dashboard, err := ctrl.service.GetDashboard(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Dashboard stats retrieved successfully", dashboard, nil)
}
