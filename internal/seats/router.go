package seats

import "github.com/gin-gonic/gin"

func SetupSeatRoutes(rg *gin.RouterGroup, controller Controller) {
	trips := rg.Group("/trips/:id")
	{
		trips.GET("/seats", controller.GetSeatMap)                  // GET /api/v1/trips/:id/seats
		trips.POST("/book", controller.BookSeat)                    // POST /api/v1/trips/:id/book
		trips.DELETE("/book/:seatNumber", controller.CancelBooking) // DELETE /api/v1/trips/:id/book/:seatNumber
	}

	rg.GET("/patrons/:id/bookings", controller.ListPatronBookings) // GET /api/v1/patrons/:id/bookings
}
