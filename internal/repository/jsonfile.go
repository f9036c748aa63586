package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bcreedon/City-Info/internal/models"

	"github.com/rs/zerolog/log"
)

// Repository serves city records from a JSON source file, read at most once
// per process. A failed load is logged and leaves the store empty; callers
// never see the error.
type Repository struct {
	path string

	// loaded records that a load attempt has completed, success or not.
	// "Attempted with zero records" counts as loaded, so a failed load is
	// never retried on later calls.
	loaded atomic.Bool
	mu     sync.Mutex
	cities []models.City
}

// NewRepository creates a new JSON file repository. The file is not read
// until the first query.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// ensureLoaded performs the one-time load. The fast path is a single atomic
// read; concurrent first callers serialize on the mutex and re-check the flag
// inside it, so exactly one of them reads the file. The flag is set only
// after the attempt completes, which means an attempt that panics out leaves
// the load eligible for retry on a later call.
func (r *Repository) ensureLoaded() {
	if r.loaded.Load() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded.Load() {
		return
	}

	cities, err := loadCities(r.path)
	if err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("failed to load city data, serving an empty store")
		r.cities = nil
	} else {
		r.cities = cities
		log.Info().Int("count", len(cities)).Str("path", r.path).Msg("city data loaded")
	}

	r.loaded.Store(true)
}

func loadCities(path string) ([]models.City, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read city data file: %w", err)
	}

	var cities []models.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("repository: failed to parse city data file: %w", err)
	}

	// A single invalid record invalidates the whole batch.
	for i, city := range cities {
		if err := validateCity(city); err != nil {
			return nil, fmt.Errorf("repository: invalid city record at index %d: %w", i, err)
		}
	}

	return cities, nil
}

func validateCity(city models.City) error {
	switch {
	case city.ID == "":
		return errors.New("missing id")
	case city.Name == "":
		return errors.New("missing name")
	case city.State == "":
		return errors.New("missing state")
	case city.TimeZone == "":
		return errors.New("missing timeZone")
	}
	return nil
}

// ListCities returns every city in source order. The returned slice is a
// copy, so callers cannot mutate the store through it.
func (r *Repository) ListCities(ctx context.Context) ([]models.City, error) {
	r.ensureLoaded()

	cities := make([]models.City, len(r.cities))
	copy(cities, r.cities)
	return cities, nil
}

// FindCityByName returns the first city in source order whose name equals
// name under Unicode case folding, or nil when no city matches. No locale
// rules, whitespace trimming or diacritic normalization are applied.
func (r *Repository) FindCityByName(ctx context.Context, name string) (*models.City, error) {
	r.ensureLoaded()

	for i := range r.cities {
		if strings.EqualFold(r.cities[i].Name, name) {
			city := r.cities[i]
			return &city, nil
		}
	}
	return nil, nil
}
