package trips

import "github.com/gin-gonic/gin"

func SetupTripRoutes(rg *gin.RouterGroup, controller Controller) {
	trips := rg.Group("/trips")
	{
		trips.GET("", controller.ListTrips)
		trips.POST("", controller.CreateTrip)
		trips.GET("/:id", controller.GetTrip)
		trips.PUT("/:id", controller.UpdateTrip)
		trips.DELETE("/:id", controller.DeleteTrip)
	}
}
