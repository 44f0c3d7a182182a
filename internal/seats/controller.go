package seats

import (
	"net/http"

	"saunie/internal/patrons"
	"saunie/internal/shared/apperrors"
	"saunie/internal/shared/utils/response"
	"saunie/internal/trips"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	GetSeatMap(c *gin.Context)
	BookSeat(c *gin.Context)
	CancelBooking(c *gin.Context)
	ListPatronBookings(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetSeatMap godoc
// @Summary  Seat map of a trip
// @Description  One entry per seat from 1 to the bus capacity, with occupancy and revenue
// @Tags     seats
// @Produce  json
// @Param    id   path      string  true  "Trip ID"
// @Success  200  {object}  response.StandardApiResponse{data=SeatMapResponse}
// @Failure  404  {object}  response.StandardApiResponse
// @Router   /trips/{id}/seats [get]
func (ctrl *controller) GetSeatMap(c *gin.Context) {
	tripID, err := trips.ParseTripID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	seatMap, err := ctrl.service.GetSeatMap(c.Request.Context(), tripID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}

// BookSeat godoc
// @Summary  Book a seat for a patron
// @Tags     seats
// @Accept   json
// @Produce  json
// @Param    id       path      string           true  "Trip ID"
// @Param    booking  body      BookSeatRequest  true  "Seat and patron"
// @Success  201      {object}  response.StandardApiResponse{data=BookingResponse}
// @Failure  400      {object}  response.StandardApiResponse
// @Failure  404      {object}  response.StandardApiResponse
// @Failure  409      {object}  response.StandardApiResponse
// @Router   /trips/{id}/book [post]
func (ctrl *controller) BookSeat(c *gin.Context) {
	tripID, err := trips.ParseTripID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	var req BookSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation("invalid request body: %v", err))
		return
	}
	bookingReq, err := req.toBookingRequest()
	if err != nil {
		response.RespondError(c, err)
		return
	}

	booking, err := ctrl.service.BookSeat(c.Request.Context(), tripID, bookingReq)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seat booked successfully", booking, nil)
}

// CancelBooking godoc
// @Summary  Cancel the booking on a seat
// @Tags     seats
// @Produce  json
// @Param    id          path      string  true  "Trip ID"
// @Param    seatNumber  path      int     true  "Seat number"
// @Success  200         {object}  response.StandardApiResponse{data=Booking}
// @Failure  404         {object}  response.StandardApiResponse
// @Router   /trips/{id}/book/{seatNumber} [delete]
func (ctrl *controller) CancelBooking(c *gin.Context) {
	tripID, err := trips.ParseTripID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	seatNumber, err := parseSeatNumber(c.Param("seatNumber"))
	if err != nil {
		response.RespondError(c, err)
		return
	}

	booking, err := ctrl.service.CancelBooking(c.Request.Context(), tripID, seatNumber)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

// ListPatronBookings godoc
// @Summary  Seats a patron holds across trips
// @Tags     patrons
// @Produce  json
// @Param    id   path      string  true  "Patron ID"
// @Success  200  {object}  response.StandardApiResponse{data=[]PatronBooking}
// @Failure  404  {object}  response.StandardApiResponse
// @Router   /patrons/{id}/bookings [get]
func (ctrl *controller) ListPatronBookings(c *gin.Context) {
	patronID, err := patrons.ParsePatronID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	bookings, err := ctrl.service.ListPatronBookings(c.Request.Context(), patronID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Patron bookings retrieved successfully", bookings, nil)
}
