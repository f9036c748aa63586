package view

import (
	"fmt"
	"time"

	"github.com/bcreedon/City-Info/internal/models"
)

// localTimeLayout always renders a numeric UTC offset, never a zone
// abbreviation or "Z".
const localTimeLayout = "2006-01-02 15:04:05-07:00"

// NewCityView builds the presentation of a single city record. The instant
// is captured at mapping time. A time zone that does not resolve against the
// system zone database degrades to a diagnostic value in CurrentTimeLocal;
// mapping itself never fails.
func NewCityView(city models.City) CityView {
	return newCityViewAt(city, time.Now())
}

func newCityViewAt(city models.City, now time.Time) CityView {
	return CityView{
		Name:  city.Name,
		State: city.State,
		Temperatures: Temperatures{
			SummerHighFahrenheit: fmt.Sprintf("%d °F", city.SummerHighFahrenheit),
			WinterLowFahrenheit:  fmt.Sprintf("%d °F", city.WinterLowFahrenheit),
		},
		Elevation:        fmt.Sprintf("%d ft", city.ElevationFeet),
		Population:       city.Population,
		CurrentTimeLocal: localTime(city.TimeZone, now),
	}
}

func localTime(timeZone string, now time.Time) string {
	// time.LoadLocation resolves "" to UTC; the source contract requires a
	// real identifier, so an empty one is reported like any other bad id.
	if timeZone == "" {
		return "Invalid TimeZoneId: "
	}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return fmt.Sprintf("Invalid TimeZoneId: %s", timeZone)
	}

	return now.In(loc).Format(localTimeLayout)
}

// NewCitySummary projects a city record onto its list representation.
func NewCitySummary(city models.City) CitySummary {
	return CitySummary{ID: city.ID, Name: city.Name, State: city.State}
}

// NewCitySummaries projects a whole record set, preserving order. The result
// is non-nil even for empty input so the list endpoint serializes to [].
func NewCitySummaries(cities []models.City) []CitySummary {
	summaries := make([]CitySummary, 0, len(cities))
	for _, city := range cities {
		summaries = append(summaries, NewCitySummary(city))
	}
	return summaries
}
