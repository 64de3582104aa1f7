package slc

import (
	"strings"

	"github.com/lmizzoni/sentinel1/stac"
)

// CollectionID is the identifier of the generated collection
const CollectionID = "sentinel1-slc"

// CollectionTitle is the display title of the generated collection
const CollectionTitle = "Sentinel-1 SLC"

// Constellation is the STAC common-metadata constellation value
const Constellation = "sentinel-1"

// Platforms lists every platform the collection summarizes
var Platforms = []string{"sentinel-1a", "sentinel-1b"}

// Description is the collection description
const Description = "Level-1 Single Look Complex (SLC) products are images in the slant range by azimuth imaging plane, in the image plane of satellite data acquisition. Each image pixel is represented by a complex (I and Q) magnitude value and therefore contains both amplitude and phase information. Each I and Q value " +
	"is 16 bits per pixel. The processing for all SLC products results in a single look in each dimension using the full available signal bandwidth. The imagery is geo-referenced using orbit and attitude data from the satellite. SLC images are produced in a zero Doppler geometry. This convention is common " +
	"with the standard slant range products available from other SAR sensors."

// Keywords are the collection keywords
var Keywords = []string{"ground", "sentinel", "copernicus", "esa", "sar"}

// CollectionStart is when the mission began producing SLC data
const CollectionStart = "2014-10-10T00:00:00Z"

// Provider is ESA, the producer, processor and licensor of every product
var Provider = stac.Provider{
	Name:  "ESA",
	Roles: []string{"producer", "processor", "licensor"},
	URL:   "https://earth.esa.int/web/guest/home",
}

// TechnicalGuideLink points at the mission's SLC technical guide
var TechnicalGuideLink = stac.Link{
	Rel:   "about",
	Href:  "https://sentinels.copernicus.eu/web/sentinel/technical-guides/sentinel-1-sar/products-algorithms/level-1-algorithms/single-look-complex",
	Title: "Sentinel-1 Single Look Complex (SLC) Technical Guide",
}

// LicenseLink points at the Sentinel data license
var LicenseLink = stac.Link{
	Rel:   "license",
	Href:  "https://scihub.copernicus.eu/twiki/do/view/SciHubWebPortal/TermsConditions",
	Title: "Sentinel License",
}

// SAR extension values fixed for the whole mission
const (
	FrequencyBand        = "C"
	CenterFrequency      = 5.405
	ObservationDirection = "right"
	ProductType          = "SLC"
)

// SAR summary value sets for the collection
var (
	SummaryLooksRange           = []int{1}
	SummaryLooksAzimuth         = []int{1}
	SummaryLooksEquivalent      = []int{1}
	SummaryProductType          = []string{ProductType}
	SummaryFrequencyBand        = []string{FrequencyBand}
	SummaryCenterFrequency      = []float64{CenterFrequency}
	SummaryObservationDirection = []string{ObservationDirection}
	SummaryInstrumentMode       = []string{"IW", "EW", "SM", "WV"}
	SummaryOrbitState           = []string{"ascending", "descending"}

	SummaryPolarizations = []interface{}{
		"HH", "VV", "HV", "VH",
		[]string{"HH", "HV"},
		[]string{"VV", "VH"},
	}

	SummaryResolutionRange     = []float64{1.7, 2.0, 2.5, 2.7, 3.1, 3.3, 3.6, 3.5, 7.9, 9.9, 11.6, 13.3, 14.4}
	SummaryResolutionAzimuth   = []float64{3.9, 4.9, 22.5, 22.6, 22.7, 43.7, 44.3, 45.2, 45.6, 44.0}
	SummaryPixelSpacingRange   = []float64{1.5, 1.8, 2.2, 2.3, 2.6, 2.9, 3.1, 5.9}
	SummaryPixelSpacingAzimuth = []float64{3.5, 3.6, 4.1, 4.2, 14.1, 19.9}
)

// swathResolutions holds per-swath SAR figures for asset-level properties:
// range/azimuth resolution and pixel spacing in meters
type swathFigures struct {
	ResolutionRange     float64
	ResolutionAzimuth   float64
	PixelSpacingRange   float64
	PixelSpacingAzimuth float64
}

var swathResolutions = map[string]swathFigures{
	"S1": {1.7, 4.9, 1.5, 3.6},
	"S2": {2.0, 4.9, 1.8, 4.1},
	"S3": {2.5, 4.9, 2.2, 4.2},
	"S4": {3.3, 4.9, 2.6, 4.1},
	"S5": {3.3, 4.9, 2.9, 4.2},
	"S6": {3.6, 4.9, 3.1, 4.2},

	"IW1": {2.7, 22.5, 2.3, 14.1},
	"IW2": {3.1, 22.7, 2.3, 14.1},
	"IW3": {3.5, 22.6, 2.3, 14.1},

	"EW1": {7.9, 43.7, 5.9, 19.9},
	"EW2": {9.9, 44.3, 5.9, 19.9},
	"EW3": {11.6, 45.2, 5.9, 19.9},
	"EW4": {13.3, 45.6, 5.9, 19.9},
	"EW5": {14.4, 44.0, 5.9, 19.9},

	"WV1": {2.0, 3.9, 1.8, 4.1},
	"WV2": {3.1, 3.9, 2.9, 3.5},
}

// relativeOrbitOffsets are the per-platform offsets used to derive the
// relative orbit number from the absolute one
var relativeOrbitOffsets = map[string]int{
	"sentinel-1a": 73,
	"sentinel-1b": 27,
}

// orbitsPerCycle is the repeat cycle length in orbits
const orbitsPerCycle = 175

// polarizationDescriptions are the data asset descriptions per polarization
var polarizationDescriptions = map[string]string{
	"HH": "HH polarization backscattering coefficient, 16-bit DN.",
	"HV": "HV polarization backscattering coefficient, 16-bit DN.",
	"VH": "VH polarization backscattering coefficient, 16-bit DN.",
	"VV": "VV polarization backscattering coefficient, 16-bit DN.",
}

// Asset description boilerplate shared across polarizations
const (
	calibrationDescription = "Calibration metadata including calibration information and the beta nought, " +
		"sigma nought, gamma and digital number look-up tables that can be used for " +
		"absolute product calibration."
	noiseDescription   = "Estimated thermal noise look-up tables"
	productDescription = "Describes the main characteristics corresponding to the band: state of the " +
		"platform during acquisition, image properties, Doppler information, geographic " +
		"location, etc."
	manifestDescription = "General product metadata in XML format. Contains a high-level textual " +
		"description of the product and references to all of product's components, " +
		"the product metadata, including the product identification and the resource " +
		"references, and references to the physical location of each component file " +
		"contained in the product."
	thumbnailDescription = "An averaged, decimated preview image in PNG format. Single polarization " +
		"products are represented with a grey scale image. Dual polarization products " +
		"are represented by a single composite colour image in RGB with the red channel " +
		"(R) representing the  co-polarization VV or HH), the green channel (G) " +
		"represents the cross-polarization (VH or HV) and the blue channel (B) " +
		"represents the ratio of the cross an co-polarizations."
)

// ItemAssetDefinitions is the item-assets map advertised on the collection
var ItemAssetDefinitions = buildItemAssetDefinitions()

func buildItemAssetDefinitions() map[string]stac.AssetDefinition {
	definitions := map[string]stac.AssetDefinition{
		"safe-manifest": {
			Title:       "Manifest File",
			Type:        stac.MediaTypeXML,
			Description: manifestDescription,
			Roles:       []string{"metadata"},
		},
		"thumbnail": {
			Title:       "Preview Image",
			Type:        stac.MediaTypePNG,
			Description: thumbnailDescription,
			Roles:       []string{"thumbnail"},
		},
	}

	for pol, description := range polarizationDescriptions {
		key := strings.ToLower(pol)
		definitions[key] = stac.AssetDefinition{
			Title:       pol + " Data",
			Type:        stac.MediaTypeCOG,
			Description: description,
			Roles:       []string{"data"},
		}
		definitions["schema-calibration-"+key] = stac.AssetDefinition{
			Title:       pol + " Calibration Schema",
			Type:        stac.MediaTypeXML,
			Description: calibrationDescription,
			Roles:       []string{"metadata"},
		}
		definitions["schema-noise-"+key] = stac.AssetDefinition{
			Title:       pol + " Noise Schema",
			Type:        stac.MediaTypeXML,
			Description: noiseDescription,
			Roles:       []string{"metadata"},
		}
		definitions["schema-product-"+key] = stac.AssetDefinition{
			Title:       pol + " Product Schema",
			Type:        stac.MediaTypeXML,
			Description: productDescription,
			Roles:       []string{"metadata"},
		}
	}

	return definitions
}
