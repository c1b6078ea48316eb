package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeoPoint(t *testing.T) {
	// Test GeoJSON point construction
	t.Run("Coordinates stored longitude first", func(t *testing.T) {
		point := NewGeoPoint(103.851959, 1.290270)

		assert.Equal(t, "Point", point.Type)
		assert.Equal(t, []float64{103.851959, 1.290270}, point.Coordinates)
	})

	// The accessors hide the coordinate order from callers
	t.Run("Accessors return true latitude and longitude", func(t *testing.T) {
		point := NewGeoPoint(-73.985428, 40.748817)

		assert.Equal(t, 40.748817, point.Latitude())
		assert.Equal(t, -73.985428, point.Longitude())
	})

	t.Run("Zero coordinates are preserved", func(t *testing.T) {
		point := NewGeoPoint(0, 0)

		assert.Equal(t, []float64{0, 0}, point.Coordinates)
		assert.Equal(t, 0.0, point.Latitude())
		assert.Equal(t, 0.0, point.Longitude())
	})
}

func TestGeoPointAccessorsOnMalformedPoint(t *testing.T) {
	// A point decoded from a document without coordinates should not panic
	point := &GeoPoint{Type: "Point"}

	assert.Equal(t, 0.0, point.Latitude())
	assert.Equal(t, 0.0, point.Longitude())
}
