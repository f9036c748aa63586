package view

// Temperatures groups the formatted seasonal extremes of a city.
type Temperatures struct {
	SummerHighFahrenheit string `json:"summerHighFahrenheit"`
	WinterLowFahrenheit  string `json:"winterLowFahrenheit"`
}

// CityView is the full per-request presentation of a single city, including
// the current wall-clock time in the city's time zone. Instances are built
// fresh for every request and never cached.
type CityView struct {
	Name             string       `json:"name"`
	State            string       `json:"state"`
	Temperatures     Temperatures `json:"temperatures"`
	Elevation        string       `json:"elevation"`
	Population       int64        `json:"population"`
	CurrentTimeLocal string       `json:"currentTimeLocal"`
}

// CitySummary is the list-endpoint projection of a city record.
type CitySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}
