package safe

import "github.com/lmizzoni/sentinel1/stac"

// Format is an enum type for recognized archive layouts
type Format string

// FormatSAFE is the standard SAFE directory layout with GeoTIFF measurements
const FormatSAFE Format = "safe"

// FormatCOG is the variant layout whose measurements are Cloud-Optimized GeoTIFFs
const FormatCOG Format = "cog"

// MeasurementMediaType returns the media type of measurement image assets
// for this archive layout
func (f Format) MeasurementMediaType() string {
	if f == FormatCOG {
		return stac.MediaTypeCOG
	}
	return stac.MediaTypeGeoTIFF
}
