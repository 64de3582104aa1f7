package stac

import "github.com/venicegeo/geojson-go/geojson"

// SarProperties is a mixin with the item-level SAR extension fields
type SarProperties struct {
	InstrumentMode       string
	FrequencyBand        string
	CenterFrequency      float64
	Polarizations        []string
	ProductType          string
	ObservationDirection string
}

// Apply implements the ItemPropertyMixin interface
func (sp SarProperties) Apply(item *Item) error {
	item.AddExtension(SarSchemaURI)
	item.Properties["sar:instrument_mode"] = sp.InstrumentMode
	item.Properties["sar:frequency_band"] = sp.FrequencyBand
	item.Properties["sar:center_frequency"] = sp.CenterFrequency
	item.Properties["sar:polarizations"] = sp.Polarizations
	item.Properties["sar:product_type"] = sp.ProductType
	item.Properties["sar:observation_direction"] = sp.ObservationDirection
	return nil
}

// SatProperties is a mixin with the satellite extension fields
type SatProperties struct {
	OrbitState    string
	AbsoluteOrbit int
	RelativeOrbit int
}

// Apply implements the ItemPropertyMixin interface
func (sp SatProperties) Apply(item *Item) error {
	item.AddExtension(SatSchemaURI)
	item.Properties["sat:orbit_state"] = sp.OrbitState
	item.Properties["sat:absolute_orbit"] = sp.AbsoluteOrbit
	item.Properties["sat:relative_orbit"] = sp.RelativeOrbit
	return nil
}

// ProjProperties is a mixin with the projection extension fields
type ProjProperties struct {
	EPSG     int
	Bbox     geojson.BoundingBox
	Shape    [2]int    // rows, columns
	Centroid []float64 // lon, lat; bbox midpoint when empty
}

// Apply implements the ItemPropertyMixin interface
func (pp ProjProperties) Apply(item *Item) error {
	item.AddExtension(ProjectionSchemaURI)
	item.Properties["proj:epsg"] = pp.EPSG
	item.Properties["proj:bbox"] = pp.Bbox
	item.Properties["proj:shape"] = []int{pp.Shape[0], pp.Shape[1]}
	item.Properties["proj:transform"] = TransformFromBbox(pp.Bbox, pp.Shape)

	var lon, lat float64
	if len(pp.Centroid) == 2 {
		lon, lat = pp.Centroid[0], pp.Centroid[1]
	} else {
		midpoint := pp.Bbox.Centroid()
		lon, lat = midpoint.Coordinates[0], midpoint.Coordinates[1]
	}
	item.Properties["proj:centroid"] = map[string]float64{
		"lat": roundTo(lat, 5),
		"lon": roundTo(lon, 5),
	}
	return nil
}

// TransformFromBbox computes the affine transform of a north-up raster
// whose extent is the bbox and whose size is shape (rows, columns)
func TransformFromBbox(bbox geojson.BoundingBox, shape [2]int) []float64 {
	xmin, ymin, xmax, ymax := bbox[0], bbox[1], bbox[2], bbox[3]
	rows, cols := float64(shape[0]), float64(shape[1])
	return []float64{
		(xmax - xmin) / cols, 0, xmin,
		0, -(ymax - ymin) / rows, ymax,
	}
}

func roundTo(value float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	if value < 0 {
		return float64(int64(value*scale-0.5)) / scale
	}
	return float64(int64(value*scale+0.5)) / scale
}

// ProcessingProperties is a mixin with the processing extension fields
type ProcessingProperties struct {
	Level           string
	Facility        string
	SoftwareName    string
	SoftwareVersion string
}

// Apply implements the ItemPropertyMixin interface
func (pp ProcessingProperties) Apply(item *Item) error {
	item.AddExtension(ProcessingSchemaURI)
	item.Properties["processing:level"] = pp.Level
	if pp.Facility != "" {
		item.Properties["processing:facility"] = pp.Facility
	}
	if pp.SoftwareName != "" {
		item.Properties["processing:software"] = map[string]string{
			pp.SoftwareName: pp.SoftwareVersion,
		}
	}
	return nil
}
