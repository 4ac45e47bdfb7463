package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/0xT4nj1r0/crowdplex/entities"
)

// ReadSearchAreas loads the caller's search areas from a JSON file.
func ReadSearchAreas(path string) ([]entities.SearchArea, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var areas []entities.SearchArea
	if err := json.Unmarshal(data, &areas); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(areas) == 0 {
		return nil, fmt.Errorf("%s contains no search areas", path)
	}
	return areas, nil
}

func WriteRankingsToFile(rankings []entities.MovieRanking, filename string) error {
	data, err := json.MarshalIndent(rankings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rankings: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write rankings to file: %w", err)
	}
	return nil
}
