package trips

import (
	"net/http"

	"saunie/internal/shared/apperrors"
	"saunie/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateTrip(c *gin.Context)
	GetTrip(c *gin.Context)
	UpdateTrip(c *gin.Context)
	DeleteTrip(c *gin.Context)
	ListTrips(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// ParseTripID reads the :id path parameter; a malformed id names no trip
func ParseTripID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.New(apperrors.ErrUnknownTrip, "trip %q not found", c.Param("id"))
	}
	return id, nil
}

// CreateTrip godoc
// @Summary  Create a trip
// @Tags     trips
// @Accept   json
// @Produce  json
// @Param    trip  body      CreateTripRequest  true  "Trip"
// @Success  201   {object}  response.StandardApiResponse{data=TripResponse}
// @Failure  400   {object}  response.StandardApiResponse
// @Router   /trips [post]
func (ctrl *controller) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation("invalid request body: %v", err))
		return
	}

	trip, err := ctrl.service.CreateTrip(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Trip created successfully", trip, nil)
}

// GetTrip godoc
// @Summary  Get a trip with its booking figures
// @Tags     trips
// @Produce  json
// @Param    id   path      string  true  "Trip ID"
// @Success  200  {object}  response.StandardApiResponse{data=TripResponse}
// @Failure  404  {object}  response.StandardApiResponse
// @Router   /trips/{id} [get]
func (ctrl *controller) GetTrip(c *gin.Context) {
	tripID, err := ParseTripID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	trip, err := ctrl.service.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Trip retrieved successfully", trip, nil)
}

// UpdateTrip godoc
// @Summary  Update a trip
// @Description  Capacity may not drop below the highest booked seat number
// @Tags     trips
// @Accept   json
// @Produce  json
// @Param    id    path      string             true  "Trip ID"
// @Param    trip  body      UpdateTripRequest  true  "Fields to change"
// @Success  200   {object}  response.StandardApiResponse{data=TripResponse}
// @Failure  400   {object}  response.StandardApiResponse
// @Failure  404   {object}  response.StandardApiResponse
// @Router   /trips/{id} [put]
func (ctrl *controller) UpdateTrip(c *gin.Context) {
	tripID, err := ParseTripID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation("invalid request body: %v", err))
		return
	}

	trip, err := ctrl.service.UpdateTrip(c.Request.Context(), tripID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Trip updated successfully", trip, nil)
}

// DeleteTrip godoc
// @Summary  Delete a trip and its bookings
// @Tags     trips
// @Produce  json
// @Param    id   path      string  true  "Trip ID"
// @Success  200  {object}  response.StandardApiResponse
// @Failure  404  {object}  response.StandardApiResponse
// @Router   /trips/{id} [delete]
func (ctrl *controller) DeleteTrip(c *gin.Context) {
	tripID, err := ParseTripID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	if err := ctrl.service.DeleteTrip(c.Request.Context(), tripID); err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Trip deleted successfully", nil, nil)
}

// ListTrips godoc
// @Summary  List trips
// @Tags     trips
// @Produce  json
// @Param    page    query     int     false  "Page (1-based)"
// @Param    limit   query     int     false  "Page size"
// @Param    search  query     string  false  "Destination or departure substring"
// @Success  200     {object}  response.StandardApiResponse{data=PaginatedTrips}
// @Router   /trips [get]
func (ctrl *controller) ListTrips(c *gin.Context) {
	var query TripListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation("invalid query parameters: %v", err))
		return
	}

	trips, err := ctrl.service.ListTrips(c.Request.Context(), query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Trips retrieved successfully", trips, nil)
}
