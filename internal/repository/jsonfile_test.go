package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bcreedon/City-Info/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeCitiesJSON = `[
	{"id": "nyc", "name": "New York City", "state": "New York",
	 "summerHighFahrenheit": 85, "winterLowFahrenheit": 26,
	 "elevationFeet": 33, "population": 8335897, "timeZone": "America/New_York"},
	{"id": "la", "name": "Los Angeles", "state": "California",
	 "summerHighFahrenheit": 84, "winterLowFahrenheit": 48,
	 "elevationFeet": 305, "population": 3822238, "timeZone": "America/Los_Angeles"},
	{"id": "chi", "name": "Chicago", "state": "Illinois",
	 "summerHighFahrenheit": 83, "winterLowFahrenheit": 18,
	 "elevationFeet": 594, "population": 2665039, "timeZone": "America/Chicago"}
]`

func writeDataFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRepository_ListCities_SourceOrder(t *testing.T) {
	repo := NewRepository(writeDataFile(t, threeCitiesJSON))

	cities, err := repo.ListCities(context.Background())

	require.NoError(t, err)
	require.Len(t, cities, 3)
	assert.Equal(t, "nyc", cities[0].ID)
	assert.Equal(t, "la", cities[1].ID)
	assert.Equal(t, "chi", cities[2].ID)
	assert.Equal(t, "New York City", cities[0].Name)
	assert.Equal(t, int64(8335897), cities[0].Population)
}

func TestRepository_ListCities_ReturnsCopy(t *testing.T) {
	repo := NewRepository(writeDataFile(t, threeCitiesJSON))

	first, err := repo.ListCities(context.Background())
	require.NoError(t, err)

	first[0].Name = "Mutated"

	second, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New York City", second[0].Name)
}

func TestRepository_FindCityByName_CaseInsensitive(t *testing.T) {
	repo := NewRepository(writeDataFile(t, threeCitiesJSON))

	tests := []struct {
		name  string
		query string
	}{
		{name: "exact case", query: "New York City"},
		{name: "lower case", query: "new york city"},
		{name: "upper case", query: "NEW YORK CITY"},
		{name: "mixed case", query: "nEw YoRk CiTy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, err := repo.FindCityByName(context.Background(), tt.query)

			require.NoError(t, err)
			require.NotNil(t, city)
			assert.Equal(t, "nyc", city.ID)
		})
	}
}

func TestRepository_FindCityByName_NotFound(t *testing.T) {
	repo := NewRepository(writeDataFile(t, threeCitiesJSON))

	city, err := repo.FindCityByName(context.Background(), "Springfield")

	require.NoError(t, err)
	assert.Nil(t, city)
}

func TestRepository_FindCityByName_NoWhitespaceNormalization(t *testing.T) {
	repo := NewRepository(writeDataFile(t, threeCitiesJSON))

	city, err := repo.FindCityByName(context.Background(), " new york city ")

	require.NoError(t, err)
	assert.Nil(t, city)
}

func TestRepository_FindCityByName_FirstMatchWins(t *testing.T) {
	data := `[
		{"id": "first", "name": "Portland", "state": "Oregon",
		 "population": 635067, "timeZone": "America/Los_Angeles"},
		{"id": "second", "name": "portland", "state": "Maine",
		 "population": 68408, "timeZone": "America/New_York"}
	]`
	repo := NewRepository(writeDataFile(t, data))

	city, err := repo.FindCityByName(context.Background(), "PORTLAND")

	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, "first", city.ID)
}

func TestRepository_MissingFile_YieldsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.json")
	repo := NewRepository(path)

	cities, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cities)

	city, err := repo.FindCityByName(context.Background(), "New York City")
	require.NoError(t, err)
	assert.Nil(t, city)

	// A failed attempt is final: making the file available afterwards must
	// not cause a re-read.
	require.NoError(t, os.WriteFile(path, []byte(threeCitiesJSON), 0o644))

	cities, err = repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestRepository_MalformedJSON_YieldsEmptyStore(t *testing.T) {
	repo := NewRepository(writeDataFile(t, `[{"id": "nyc", "name":`))

	cities, err := repo.ListCities(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestRepository_InvalidRecordInvalidatesBatch(t *testing.T) {
	// One record without a timeZone among otherwise valid ones empties the
	// whole store, it is not skipped individually.
	data := `[
		{"id": "nyc", "name": "New York City", "state": "New York",
		 "population": 8335897, "timeZone": "America/New_York"},
		{"id": "bad", "name": "Nowhere", "state": "Kansas", "population": 1}
	]`
	repo := NewRepository(writeDataFile(t, data))

	cities, err := repo.ListCities(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestRepository_EmptyArray_IsLoadedNotRetried(t *testing.T) {
	path := writeDataFile(t, `[]`)
	repo := NewRepository(path)

	cities, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cities)

	// "Loaded but empty" must be indistinguishable from any other completed
	// load: replacing the file afterwards changes nothing.
	require.NoError(t, os.WriteFile(path, []byte(threeCitiesJSON), 0o644))

	cities, err = repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestRepository_LoadsExactlyOnce(t *testing.T) {
	path := writeDataFile(t, threeCitiesJSON)
	repo := NewRepository(path)

	first, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Corrupt the file after the first load. Every subsequent call must be
	// served from memory, so the corruption must never be observed.
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

	second, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRepository_ConcurrentFirstAccess(t *testing.T) {
	path := writeDataFile(t, threeCitiesJSON)
	repo := NewRepository(path)

	const callers = 32

	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([][]models.City, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			cities, err := repo.ListCities(context.Background())
			assert.NoError(t, err)
			results[i] = cities
		}(i)
	}

	close(start)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.Len(t, results[i], 3)
		assert.Equal(t, results[0], results[i])
	}

	// Exactly one physical load happened: the store is immune to file
	// changes from here on.
	require.NoError(t, os.Remove(path))

	cities, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, results[0], cities)
}

func TestRepository_CaseInsensitiveJSONKeys(t *testing.T) {
	data := `[
		{"ID": "nyc", "NAME": "New York City", "State": "New York",
		 "SummerHighFahrenheit": 85, "WINTERLOWFAHRENHEIT": 26,
		 "ElevationFeet": 33, "Population": 8335897, "TIMEZONE": "America/New_York"}
	]`
	repo := NewRepository(writeDataFile(t, data))

	city, err := repo.FindCityByName(context.Background(), "new york city")

	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, "nyc", city.ID)
	assert.Equal(t, 85, city.SummerHighFahrenheit)
	assert.Equal(t, 26, city.WinterLowFahrenheit)
	assert.Equal(t, "America/New_York", city.TimeZone)
}
