package analytics

import (
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller Controller) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", controller.GetDashboard)
	}

	// path the admin console already calls; gin matches it ahead of /trips/:id
	rg.GET("/trips/dashboard/stats", controller.GetDashboard)
}
