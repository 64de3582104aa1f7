package slc

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lmizzoni/sentinel1/safe"
	"github.com/lmizzoni/sentinel1/stac"
)

// CreateItem builds the STAC Item for a single SLC granule. granulePath is
// the path of the SAFE directory; assetBaseURL, when non-empty, replaces
// the local granule path in asset hrefs.
func CreateItem(granulePath string, format safe.Format, assetBaseURL string) (*stac.Item, error) {
	links, err := safe.NewMetadataLinks(granulePath, format)
	if err != nil {
		return nil, err
	}
	return createItemFromLinks(links, assetBaseURL)
}

func createItemFromLinks(links *safe.MetadataLinks, assetBaseURL string) (*stac.Item, error) {
	metadata, err := NewProductMetadata(links)
	if err != nil {
		return nil, err
	}

	itemID, err := metadata.ItemID()
	if err != nil {
		return nil, err
	}
	platform, err := metadata.Platform()
	if err != nil {
		return nil, err
	}

	item := stac.NewItem(itemID, metadata.Geometry, metadata.Bbox, metadata.MidDatetime())
	item.Collection = CollectionID

	manifest := links.Manifest

	sarProperties, err := sarPropertiesFromManifest(manifest)
	if err != nil {
		return nil, err
	}
	if err = sarProperties.Apply(item); err != nil {
		return nil, err
	}

	satProperties, err := satPropertiesFromManifest(manifest, platform)
	if err != nil {
		return nil, err
	}
	if err = satProperties.Apply(item); err != nil {
		return nil, err
	}

	item.AddExtension(stac.EOSchemaURI)

	level, err := metadata.ProcessingLevel()
	if err != nil {
		return nil, err
	}
	if err = processingPropertiesFromManifest(manifest, level).Apply(item); err != nil {
		return nil, err
	}

	projProperties := stac.ProjProperties{
		EPSG:     4326,
		Bbox:     metadata.Bbox,
		Shape:    metadata.Shape,
		Centroid: safe.Centroid(metadata.Geometry),
	}
	if err = projProperties.Apply(item); err != nil {
		return nil, err
	}

	// Common metadata
	item.Properties["constellation"] = Constellation
	item.Properties["platform"] = platform
	item.Properties["providers"] = []stac.Provider{Provider}
	item.Properties["start_datetime"] = stac.FormatTime(metadata.Start)
	item.Properties["end_datetime"] = stac.FormatTime(metadata.Stop)

	if err = s1PropertiesFromManifest(manifest, metadata, item); err != nil {
		return nil, err
	}

	if err = addAssets(item, links, assetBaseURL); err != nil {
		return nil, err
	}

	item.AddLink(LicenseLink)
	item.AddLink(TechnicalGuideLink)

	return item, nil
}

// assetHref resolves a manifest-relative href into the item's asset href
func assetHref(links *safe.MetadataLinks, href, assetBaseURL string) string {
	if assetBaseURL != "" {
		return strings.TrimRight(assetBaseURL, "/") + "/" + filepath.Base(links.GranulePath) + "/" + href
	}
	return links.LocalPath(href)
}

func addAssets(item *stac.Item, links *safe.MetadataLinks, assetBaseURL string) error {
	manifestAsset := &stac.Asset{
		Href:        assetHref(links, safe.ManifestFilename, assetBaseURL),
		Title:       "Manifest File",
		Description: manifestDescription,
		MediaType:   stac.MediaTypeXML,
		Roles:       []string{"metadata"},
	}
	if err := item.AddAsset("safe-manifest", manifestAsset); err != nil {
		return err
	}

	schemaGroups := []struct {
		kind        string
		title       string
		description string
		hrefs       []string
	}{
		{"product", "Product Schema", productDescription, links.Annotations},
		{"calibration", "Calibration Schema", calibrationDescription, links.Calibrations},
		{"noise", "Noise Schema", noiseDescription, links.Noises},
	}
	for _, group := range schemaGroups {
		for _, href := range group.hrefs {
			fields, err := safe.ParseImageFields(href)
			if err != nil {
				return err
			}
			key := fmt.Sprintf("schema-%s-%s-%s", group.kind, fields.Swath, fields.Polarisation)
			title := fmt.Sprintf("%s %s %s", strings.ToUpper(fields.Swath), strings.ToUpper(fields.Polarisation), group.title)
			asset := &stac.Asset{
				Href:        assetHref(links, href, assetBaseURL),
				Title:       title,
				Description: group.description,
				MediaType:   stac.MediaTypeXML,
				Roles:       []string{"metadata"},
			}
			if err := item.AddAsset(key, asset); err != nil {
				return err
			}
		}
	}

	if links.Thumbnail != "" {
		thumbnail := &stac.Asset{
			Href:        assetHref(links, links.Thumbnail, assetBaseURL),
			Title:       "Preview Image",
			Description: thumbnailDescription,
			MediaType:   stac.MediaTypePNG,
			Roles:       []string{"thumbnail"},
		}
		if err := item.AddAsset("thumbnail", thumbnail); err != nil {
			return err
		}
	}

	for _, href := range links.Measurements {
		fields, err := safe.ParseImageFields(href)
		if err != nil {
			return err
		}
		swath := strings.ToUpper(fields.Swath)
		polarization := strings.ToUpper(fields.Polarisation)
		asset := &stac.Asset{
			Href:        assetHref(links, href, assetBaseURL),
			Title:       fmt.Sprintf("%s %s Data", swath, polarization),
			Description: polarizationDescriptions[polarization],
			MediaType:   links.Format.MeasurementMediaType(),
			Roles:       []string{"data"},
		}
		if err := fillSwathSarProperties(asset, swath, polarization); err != nil {
			return err
		}
		key := fmt.Sprintf("%s-%s", fields.Swath, fields.Polarisation)
		if err := item.AddAsset(key, asset); err != nil {
			return err
		}
	}

	return nil
}
