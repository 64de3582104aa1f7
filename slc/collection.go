package slc

import "github.com/lmizzoni/sentinel1/stac"

// CreateCollection builds the STAC Collection for Sentinel-1 SLC. href is
// recorded as the collection's self link.
func CreateCollection(href string) *stac.Collection {
	start := CollectionStart
	extent := stac.Extent{
		Spatial: stac.SpatialExtent{
			Bbox: [][]float64{{-180.0, -90.0, 180.0, 90.0}},
		},
		Temporal: stac.TemporalExtent{
			Interval: [][]*string{{&start, nil}},
		},
	}

	collection := stac.NewCollection(CollectionID, Description, extent)
	collection.Title = CollectionTitle
	collection.Keywords = Keywords
	collection.Providers = []stac.Provider{Provider}

	collection.AddExtension(stac.SarSchemaURI)
	collection.AddExtension(stac.SatSchemaURI)
	collection.AddExtension(stac.EOSchemaURI)
	collection.AddExtension(stac.ItemAssetsSchemaURI)

	collection.Summaries["constellation"] = []string{Constellation}
	collection.Summaries["platform"] = Platforms
	collection.Summaries["sar:looks_range"] = SummaryLooksRange
	collection.Summaries["sar:product_type"] = SummaryProductType
	collection.Summaries["sar:looks_azimuth"] = SummaryLooksAzimuth
	collection.Summaries["sar:polarizations"] = SummaryPolarizations
	collection.Summaries["sar:frequency_band"] = SummaryFrequencyBand
	collection.Summaries["sar:instrument_mode"] = SummaryInstrumentMode
	collection.Summaries["sar:center_frequency"] = SummaryCenterFrequency
	collection.Summaries["sar:resolution_range"] = SummaryResolutionRange
	collection.Summaries["sar:resolution_azimuth"] = SummaryResolutionAzimuth
	collection.Summaries["sar:pixel_spacing_range"] = SummaryPixelSpacingRange
	collection.Summaries["sar:observation_direction"] = SummaryObservationDirection
	collection.Summaries["sar:pixel_spacing_azimuth"] = SummaryPixelSpacingAzimuth
	collection.Summaries["sar:looks_equivalent_number"] = SummaryLooksEquivalent
	collection.Summaries["sat:orbit_state"] = SummaryOrbitState

	collection.ItemAssets = ItemAssetDefinitions

	if href != "" {
		collection.AddLink(stac.Link{Rel: "self", Href: href, Type: stac.MediaTypeJSON})
	}
	collection.AddLink(LicenseLink)
	collection.AddLink(TechnicalGuideLink)

	return collection
}
