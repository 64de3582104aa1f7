package slc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lmizzoni/sentinel1/safe"
	"github.com/lmizzoni/sentinel1/stac"
)

// sarPropertiesFromManifest fills the item-level SAR extension fields from
// the manifest's instrument metadata
func sarPropertiesFromManifest(manifest *safe.Manifest) (*stac.SarProperties, error) {
	mode, err := manifest.RequireText("//s1sarl1:mode")
	if err != nil {
		return nil, err
	}
	productType, err := manifest.RequireText("//s1sarl1:productType")
	if err != nil {
		return nil, err
	}
	polarizations := manifest.FindTextAll("//s1sarl1:transmitterReceiverPolarisation")
	if len(polarizations) == 0 {
		return nil, fmt.Errorf("Manifest lists no transmitter/receiver polarisations")
	}

	return &stac.SarProperties{
		InstrumentMode:       mode,
		FrequencyBand:        FrequencyBand,
		CenterFrequency:      CenterFrequency,
		Polarizations:        polarizations,
		ProductType:          productType,
		ObservationDirection: ObservationDirection,
	}, nil
}

// satPropertiesFromManifest fills the satellite extension fields from the
// manifest's orbit metadata
func satPropertiesFromManifest(manifest *safe.Manifest, platform string) (*stac.SatProperties, error) {
	orbitState, err := manifest.RequireText("//s1:orbitProperties/s1:pass")
	if err != nil {
		return nil, err
	}
	orbitText, err := manifest.RequireText("//safe:orbitReference/safe:orbitNumber")
	if err != nil {
		return nil, err
	}
	absoluteOrbit, err := strconv.Atoi(orbitText)
	if err != nil {
		return nil, fmt.Errorf("Invalid absolute orbit number %q: %v", orbitText, err)
	}
	relativeOrbit, err := RelativeOrbit(absoluteOrbit, platform)
	if err != nil {
		return nil, err
	}

	return &stac.SatProperties{
		OrbitState:    strings.ToLower(orbitState),
		AbsoluteOrbit: absoluteOrbit,
		RelativeOrbit: relativeOrbit,
	}, nil
}

// RelativeOrbit derives the relative orbit number from the absolute orbit
// number and the platform's launch offset
func RelativeOrbit(absoluteOrbit int, platform string) (int, error) {
	offset, ok := relativeOrbitOffsets[platform]
	if !ok {
		return 0, fmt.Errorf("No relative orbit offset known for platform %q", platform)
	}
	relative := (absoluteOrbit-offset)%orbitsPerCycle + 1
	if relative < 1 {
		relative += orbitsPerCycle
	}
	return relative, nil
}

// processingPropertiesFromManifest fills the processing extension fields
// from the manifest's SLC post-processing record
func processingPropertiesFromManifest(manifest *safe.Manifest, level string) *stac.ProcessingProperties {
	properties := stac.ProcessingProperties{Level: "L" + level}
	processingPath := "//safe:processing[@name='SLC Post Processing']"
	properties.Facility = manifest.FindAttr("site", processingPath+"/safe:facility")
	properties.SoftwareName = manifest.FindAttr("name", processingPath+"/safe:facility/safe:software")
	properties.SoftwareVersion = manifest.FindAttr("version", processingPath+"/safe:facility/safe:software")
	return &properties
}

// s1PropertiesFromManifest fills the mission-specific item properties
func s1PropertiesFromManifest(manifest *safe.Manifest, metadata *ProductMetadata, item *stac.Item) error {
	level, err := metadata.ProcessingLevel()
	if err != nil {
		return err
	}

	item.Properties["s1:product_identifier"] = metadata.SceneID
	item.Properties["s1:processing_level"] = level

	if value := manifest.FindText("//s1sarl1:instrumentConfigurationID"); value != "" {
		item.Properties["s1:instrument_configuration_ID"] = value
	}
	if value := manifest.FindText("//s1sarl1:missionDataTakeID"); value != "" {
		item.Properties["s1:datatake_id"] = value
	}
	if value := manifest.FindText("//s1sarl1:productTimelinessCategory"); value != "" {
		item.Properties["s1:product_timeliness"] = value
	}
	if value := manifest.FindText("//s1sarl1:sliceNumber"); value != "" {
		item.Properties["s1:slice_number"] = value
	}
	if value := manifest.FindText("//s1sarl1:totalSlices"); value != "" {
		item.Properties["s1:total_slices"] = value
	}
	if value := manifest.FindText("//s1:orbitProperties/s1:type"); value != "" {
		item.Properties["s1:orbit_source"] = value
	}
	if stop := manifest.FindAttr("stop", "//safe:processing[@name='SLC Post Processing']"); stop != "" {
		item.Properties["s1:processing_datetime"] = stop + "Z"
	}
	return nil
}

// fillSwathSarProperties sets the asset-level SAR fields for one
// swath/polarization measurement
func fillSwathSarProperties(asset *stac.Asset, swath, polarization string) error {
	figures, ok := swathResolutions[swath]
	if !ok {
		return fmt.Errorf("No SAR figures known for swath %q", swath)
	}
	asset.SetExtra("sar:polarizations", []string{polarization})
	asset.SetExtra("sar:resolution_range", figures.ResolutionRange)
	asset.SetExtra("sar:resolution_azimuth", figures.ResolutionAzimuth)
	asset.SetExtra("sar:pixel_spacing_range", figures.PixelSpacingRange)
	asset.SetExtra("sar:pixel_spacing_azimuth", figures.PixelSpacingAzimuth)
	asset.SetExtra("sar:looks_range", 1)
	asset.SetExtra("sar:looks_azimuth", 1)
	asset.SetExtra("sar:looks_equivalent_number", 1)
	return nil
}
