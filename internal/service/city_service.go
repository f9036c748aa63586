package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bcreedon/City-Info/internal/models"
)

// CityService contains the core business logic for city lookups
type CityService struct {
	repo CityRepository
}

// Repository interface for dependency injection
type CityRepository interface {
	ListCities(ctx context.Context) ([]models.City, error)
	FindCityByName(ctx context.Context, name string) (*models.City, error)
}

// NewCityService creates a new city service
func NewCityService(repo CityRepository) *CityService {
	return &CityService{repo: repo}
}

// FindByName returns the first city whose name matches case-insensitively,
// or nil when no city matches
func (s *CityService) FindByName(ctx context.Context, name string) (*models.City, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("service: city name cannot be empty")
	}

	city, err := s.repo.FindCityByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find city: %w", err)
	}

	return city, nil
}

// ListAll returns every known city in source order
func (s *CityService) ListAll(ctx context.Context) ([]models.City, error) {
	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list cities: %w", err)
	}

	return cities, nil
}
