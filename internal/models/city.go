package models

// City is a single reference record about a U.S. city, mirroring the shape of
// the JSON source file. Records are immutable once loaded; JSON key matching
// is case-insensitive per encoding/json.
type City struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	State                string `json:"state"`
	SummerHighFahrenheit int    `json:"summerHighFahrenheit"`
	WinterLowFahrenheit  int    `json:"winterLowFahrenheit"`
	ElevationFeet        int    `json:"elevationFeet"`
	Population           int64  `json:"population"`
	TimeZone             string `json:"timeZone"`
}
