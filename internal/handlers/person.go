package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adrianlim83/person-finder/internal/middleware"
	"github.com/adrianlim83/person-finder/internal/models"
	"github.com/adrianlim83/person-finder/internal/repositories"
	"github.com/adrianlim83/person-finder/internal/services"
	"github.com/adrianlim83/person-finder/pkg/logger"
)

type PersonHandler struct {
	personService   *services.PersonService
	locationService *services.LocationService
}

func NewPersonHandler(personService *services.PersonService, locationService *services.LocationService) *PersonHandler {
	return &PersonHandler{
		personService:   personService,
		locationService: locationService,
	}
}

// SavePerson creates or updates a person and returns the stored record,
// including the freshly generated bio
func (h *PersonHandler) SavePerson(c *gin.Context) {
	// Parse and validate request
	var request models.PersonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	person, err := h.personService.Save(c.Request.Context(), &request)
	if err != nil {
		h.renderError(c, err, "Failed to save person")
		return
	}

	c.JSON(http.StatusOK, person)
}

// GetPerson returns a single person by id
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, ok := h.personID(c)
	if !ok {
		return
	}

	person, err := h.personService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "Failed to get person")
		return
	}

	c.JSON(http.StatusOK, person)
}

// UpdateLocation sets or replaces the location of a person
func (h *PersonHandler) UpdateLocation(c *gin.Context) {
	id, ok := h.personID(c)
	if !ok {
		return
	}

	// Parse and validate request
	var request models.LocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	if err := h.locationService.AddLocation(c.Request.Context(), id, *request.Latitude, *request.Longitude); err != nil {
		h.renderError(c, err, "Failed to update location")
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveLocation clears the location of a person
func (h *PersonHandler) RemoveLocation(c *gin.Context) {
	id, ok := h.personID(c)
	if !ok {
		return
	}

	if err := h.locationService.RemoveLocation(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Failed to remove location")
		return
	}

	c.Status(http.StatusNoContent)
}

// FindNearby returns the persons within a radius of a point, closest first
func (h *PersonHandler) FindNearby(c *gin.Context) {
	// Parse and validate query parameters
	var query models.NearbyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page := 0
	if query.Page != nil {
		page = *query.Page
	}
	limit := 0
	if query.Limit != nil {
		limit = *query.Limit
	}

	results, err := h.locationService.FindAround(c.Request.Context(), *query.Lat, *query.Lon, *query.RadiusInKm, page, limit)
	if err != nil {
		h.renderError(c, err, "Failed to search nearby persons")
		return
	}

	c.JSON(http.StatusOK, results)
}

// personID parses the id path parameter, writing a 400 response when it is
// not a number.
func (h *PersonHandler) personID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID"})
		return 0, false
	}
	return id, true
}

// renderError maps service failures onto the error taxonomy: missing records
// become 404, validation failures 400, everything else a generic 500 with
// the detail kept in the logs.
func (h *PersonHandler) renderError(c *gin.Context, err error, message string) {
	var validationErr *models.ValidationError

	switch {
	case errors.Is(err, repositories.ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).WithError(err).Error(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
