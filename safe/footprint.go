package safe

import (
	"errors"
	"sort"

	"github.com/venicegeo/geojson-go/geojson"
)

// Footprint computes the product footprint as the convex hull of all
// geolocation grid points across the given annotations, in lon/lat order,
// along with its bounding box.
func Footprint(annotations []*Annotation) (*geojson.Polygon, geojson.BoundingBox, error) {
	points := [][]float64{}
	for _, annotation := range annotations {
		for _, gridPoint := range annotation.GridPoints {
			points = append(points, []float64{gridPoint.Longitude, gridPoint.Latitude})
		}
	}

	hull, err := convexHull(points)
	if err != nil {
		return nil, nil, err
	}

	// Close the ring
	ring := append(hull, hull[0])
	polygon := geojson.NewPolygon([][][]float64{ring})

	bbox := geojson.BoundingBox{ring[0][0], ring[0][1], ring[0][0], ring[0][1]}
	for _, point := range ring {
		if point[0] < bbox[0] {
			bbox[0] = point[0]
		}
		if point[1] < bbox[1] {
			bbox[1] = point[1]
		}
		if point[0] > bbox[2] {
			bbox[2] = point[0]
		}
		if point[1] > bbox[3] {
			bbox[3] = point[1]
		}
	}

	return polygon, bbox, nil
}

// Centroid computes the area centroid of the footprint polygon's outer
// ring, returned as lon/lat
func Centroid(polygon *geojson.Polygon) []float64 {
	ring := polygon.Coordinates[0]

	var area, cx, cy float64
	for i := 0; i < len(ring)-1; i++ {
		step := ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
		area += step
		cx += (ring[i][0] + ring[i+1][0]) * step
		cy += (ring[i][1] + ring[i+1][1]) * step
	}
	if area == 0 {
		return []float64{ring[0][0], ring[0][1]}
	}
	area /= 2
	return []float64{cx / (6 * area), cy / (6 * area)}
}

// convexHull is Andrew's monotone chain, returning the hull in
// counter-clockwise order without the closing point
func convexHull(points [][]float64) ([][]float64, error) {
	if len(points) < 3 {
		return nil, errors.New("A footprint needs at least three geolocation grid points")
	}

	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	var lower [][]float64
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper [][]float64
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, errors.New("Geolocation grid points are collinear; no footprint polygon exists")
	}
	return hull, nil
}

func cross(o, a, b []float64) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}
