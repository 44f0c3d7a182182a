package patrons

import (
	"net/http"

	"saunie/internal/shared/apperrors"
	"saunie/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreatePatron(c *gin.Context)
	GetPatron(c *gin.Context)
	UpdatePatron(c *gin.Context)
	DeletePatron(c *gin.Context)
	ListPatrons(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func ParsePatronID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.New(apperrors.ErrPatronNotFound, "patron %q not found", c.Param("id"))
	}
	return id, nil
}

// CreatePatron godoc
// @Summary  Register a patron
// @Tags     patrons
// @Accept   json
// @Produce  json
// @Param    patron  body      CreatePatronRequest  true  "Patron"
// @Success  201     {object}  response.StandardApiResponse{data=Patron}
// @Failure  400     {object}  response.StandardApiResponse
// @Router   /patrons [post]
func (ctrl *controller) CreatePatron(c *gin.Context) {
	var req CreatePatronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation("invalid request body: %v", err))
		return
	}

	patron, err := ctrl.service.CreatePatron(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Patron created successfully", patron, nil)
}

// GetPatron godoc
// @Summary  Get a patron
// @Tags     patrons
// @Produce  json
// @Param    id   path      string  true  "Patron ID"
// @Success  200  {object}  response.StandardApiResponse{data=Patron}
// @Failure  404  {object}  response.StandardApiResponse
// @Router   /patrons/{id} [get]
func (ctrl *controller) GetPatron(c *gin.Context) {
	patronID, err := ParsePatronID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	patron, err := ctrl.service.GetPatron(c.Request.Context(), patronID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Patron retrieved successfully", patron, nil)
}

// UpdatePatron godoc
// @Summary  Update a patron
// @Tags     patrons
// @Accept   json
// @Produce  json
// @Param    id      path      string               true  "Patron ID"
// @Param    patron  body      UpdatePatronRequest  true  "Fields to change"
// @Success  200     {object}  response.StandardApiResponse{data=Patron}
// @Failure  400     {object}  response.StandardApiResponse
// @Failure  404     {object}  response.StandardApiResponse
// @Router   /patrons/{id} [put]
func (ctrl *controller) UpdatePatron(c *gin.Context) {
	patronID, err := ParsePatronID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	var req UpdatePatronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation("invalid request body: %v", err))
		return
	}

	patron, err := ctrl.service.UpdatePatron(c.Request.Context(), patronID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Patron updated successfully", patron, nil)
}

// DeletePatron godoc
// @Summary  Delete a patron without bookings
// @Tags     patrons
// @Produce  json
// @Param    id   path      string  true  "Patron ID"
// @Success  200  {object}  response.StandardApiResponse
// @Failure  404  {object}  response.StandardApiResponse
// @Failure  409  {object}  response.StandardApiResponse
// @Router   /patrons/{id} [delete]
func (ctrl *controller) DeletePatron(c *gin.Context) {
	patronID, err := ParsePatronID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	if err := ctrl.service.DeletePatron(c.Request.Context(), patronID); err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Patron deleted successfully", nil, nil)
}

// ListPatrons godoc
// @Summary  List patrons
// @Tags     patrons
// @Produce  json
// @Param    page    query     int     false  "Page (1-based)"
// @Param    limit   query     int     false  "Page size"
// @Param    search  query     string  false  "Name, phone or email substring"
// @Success  200     {object}  response.StandardApiResponse{data=PaginatedPatrons}
// @Router   /patrons [get]
func (ctrl *controller) ListPatrons(c *gin.Context) {
	var query PatronListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation("invalid query parameters: %v", err))
		return
	}

	patrons, err := ctrl.service.ListPatrons(c.Request.Context(), query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Patrons retrieved successfully", patrons, nil)
}
