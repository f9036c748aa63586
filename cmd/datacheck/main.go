package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bcreedon/City-Info/internal/models"
)

// datacheck lints a city data file before it is shipped with the API. The
// loader tolerates a bad file at runtime by serving an empty store, and it
// never validates time zone identifiers, so this tool is the place where
// data problems are actually surfaced.
func main() {
	file := flag.String("file", "", "Path to the city JSON file to check")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Checking city data file: %s\n", *file)

	cities, err := parseFile(*file)
	if err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(cities))

	problems := checkCities(cities)
	for _, p := range problems {
		fmt.Printf("Problem: %s\n", p)
	}

	if len(problems) > 0 {
		fmt.Printf("Found %d problems in %d records\n", len(problems), len(cities))
		os.Exit(1)
	}

	fmt.Printf("All %d records are valid\n", len(cities))
}

func parseFile(path string) ([]models.City, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var cities []models.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return cities, nil
}

func checkCities(cities []models.City) []string {
	var problems []string
	seen := make(map[string]int)

	for i, city := range cities {
		if city.ID == "" {
			problems = append(problems, fmt.Sprintf("record %d: missing id", i))
		}
		if strings.TrimSpace(city.Name) == "" {
			problems = append(problems, fmt.Sprintf("record %d: missing name", i))
		}
		if city.State == "" {
			problems = append(problems, fmt.Sprintf("record %d: missing state", i))
		}
		if city.Population < 0 {
			problems = append(problems, fmt.Sprintf("record %d: negative population %d", i, city.Population))
		}

		if city.TimeZone == "" {
			problems = append(problems, fmt.Sprintf("record %d: missing timeZone", i))
		} else if _, err := time.LoadLocation(city.TimeZone); err != nil {
			problems = append(problems, fmt.Sprintf("record %d: unresolvable timeZone %q", i, city.TimeZone))
		}

		if city.ID != "" {
			if prev, dup := seen[city.ID]; dup {
				problems = append(problems, fmt.Sprintf("record %d: duplicate id %q (first seen at record %d)", i, city.ID, prev))
			} else {
				seen[city.ID] = i
			}
		}
	}

	return problems
}
