package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSearchAreas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "areas.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "center", "latitude": 41.88, "longitude": -87.63, "radiusKm": 15},
		{"name": "north", "latitude": 42.05, "longitude": -87.68, "radiusKm": 10}
	]`), 0644))

	areas, err := ReadSearchAreas(path)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "center", areas[0].Name)
	assert.Equal(t, 15.0, areas[0].RadiusKm)
}

func TestReadSearchAreasRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "areas.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	_, err := ReadSearchAreas(path)
	assert.Error(t, err)
}

func TestReadSearchAreasMissingFile(t *testing.T) {
	_, err := ReadSearchAreas(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
