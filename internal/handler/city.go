package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/bcreedon/City-Info/internal/models"
	"github.com/bcreedon/City-Info/internal/view"

	"github.com/gin-gonic/gin"
)

// CityHandler handles city listing and lookup requests
type CityHandler struct {
	service CityService
}

// Service interface for dependency injection
type CityService interface {
	FindByName(ctx context.Context, name string) (*models.City, error)
	ListAll(ctx context.Context) ([]models.City, error)
}

// NewCityHandler creates a new city handler
func NewCityHandler(svc CityService) *CityHandler {
	return &CityHandler{service: svc}
}

// ListCities handles GET /cities requests
//
//	@Summary		List all cities
//	@Description	Returns id, name and state of every known city.
//	@Tags			cities
//	@Produce		json
//	@Success		200	{array}	view.CitySummary
//	@Router			/cities [get]
func (h *CityHandler) ListCities(c *gin.Context) {
	cities, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, view.NewCitySummaries(cities))
}

// GetCity handles GET /cities/:name requests
//
//	@Summary		Get one city by name
//	@Description	Case-insensitive exact match on the city name. The response includes the current local time in the city's time zone.
//	@Tags			cities
//	@Produce		json
//	@Param			name	path		string	true	"City name"
//	@Success		200		{object}	view.CityView
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/cities/{name} [get]
func (h *CityHandler) GetCity(c *gin.Context) {
	name := c.Param("name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city name must not be empty"})
		return
	}

	city, err := h.service.FindByName(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if city == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no city found with the specified name"})
		return
	}

	c.JSON(http.StatusOK, view.NewCityView(*city))
}
