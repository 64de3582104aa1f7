package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

func gridAnnotation(points ...GeoPoint) *Annotation {
	return &Annotation{Swath: "IW1", GridPoints: points}
}

func TestFootprint_Success(t *testing.T) {
	// Mock: a unit square plus an interior point that must not survive
	annotation := gridAnnotation(
		GeoPoint{Longitude: 0, Latitude: 0},
		GeoPoint{Longitude: 1, Latitude: 0},
		GeoPoint{Longitude: 1, Latitude: 1},
		GeoPoint{Longitude: 0, Latitude: 1},
		GeoPoint{Longitude: 0.5, Latitude: 0.5},
	)

	// Tested code
	polygon, bbox, err := Footprint([]*Annotation{annotation})

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, polygon)
	assert.Equal(t, geojson.BoundingBox{0, 0, 1, 1}, bbox)

	ring := polygon.Coordinates[0]
	assert.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[len(ring)-1])
	for _, point := range ring {
		assert.NotEqual(t, []float64{0.5, 0.5}, point)
	}
}

func TestFootprint_MergesAnnotations(t *testing.T) {
	// Mock: two swaths whose grids together span a wider box
	first := gridAnnotation(
		GeoPoint{Longitude: 0, Latitude: 0},
		GeoPoint{Longitude: 1, Latitude: 0},
		GeoPoint{Longitude: 0, Latitude: 1},
	)
	second := gridAnnotation(
		GeoPoint{Longitude: 2, Latitude: 2},
		GeoPoint{Longitude: 2, Latitude: 0},
	)

	// Tested code
	_, bbox, err := Footprint([]*Annotation{first, second})

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, geojson.BoundingBox{0, 0, 2, 2}, bbox)
}

func TestCentroid_Triangle(t *testing.T) {
	// Mock: a right triangle, whose area centroid differs from its bbox
	// midpoint (1, 1)
	polygon := geojson.NewPolygon([][][]float64{{{0, 0}, {2, 0}, {0, 2}, {0, 0}}})

	// Tested code
	centroid := Centroid(polygon)

	// Asserts
	assert.InDelta(t, 2.0/3.0, centroid[0], 1e-9)
	assert.InDelta(t, 2.0/3.0, centroid[1], 1e-9)
}

func TestCentroid_Square(t *testing.T) {
	// Tested code
	centroid := Centroid(geojson.NewPolygon([][][]float64{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}}))

	// Asserts
	assert.InDelta(t, 1.0, centroid[0], 1e-9)
	assert.InDelta(t, 1.0, centroid[1], 1e-9)
}

func TestFootprint_TooFewPoints(t *testing.T) {
	// Tested code
	polygon, _, err := Footprint([]*Annotation{gridAnnotation(
		GeoPoint{Longitude: 0, Latitude: 0},
		GeoPoint{Longitude: 1, Latitude: 1},
	)})

	// Asserts
	assert.NotNil(t, err)
	assert.Nil(t, polygon)
}

func TestFootprint_CollinearPoints(t *testing.T) {
	// Tested code
	polygon, _, err := Footprint([]*Annotation{gridAnnotation(
		GeoPoint{Longitude: 0, Latitude: 0},
		GeoPoint{Longitude: 1, Latitude: 1},
		GeoPoint{Longitude: 2, Latitude: 2},
		GeoPoint{Longitude: 3, Latitude: 3},
	)})

	// Asserts
	assert.NotNil(t, err)
	assert.Nil(t, polygon)
}
