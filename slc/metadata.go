package slc

import (
	"fmt"
	"strings"
	"time"

	"github.com/venicegeo/geojson-go/geojson"

	"github.com/lmizzoni/sentinel1/safe"
)

// ProductMetadata is the acquisition metadata assembled from a granule's
// manifest and product annotations
type ProductMetadata struct {
	Links       *safe.MetadataLinks
	Annotations []*safe.Annotation
	SceneID     string
	Geometry    *geojson.Polygon
	Bbox        geojson.BoundingBox
	Start       time.Time
	Stop        time.Time
	Shape       [2]int // rows, columns
}

// NewProductMetadata reads every annotation referenced by the manifest and
// computes the product footprint and timing
func NewProductMetadata(links *safe.MetadataLinks) (*ProductMetadata, error) {
	annotations, err := links.OpenAnnotations()
	if err != nil {
		return nil, err
	}

	geometry, bbox, err := safe.Footprint(annotations)
	if err != nil {
		return nil, err
	}

	startText, err := links.Manifest.RequireText("//safe:acquisitionPeriod/safe:startTime")
	if err != nil {
		return nil, err
	}
	start, err := safe.ParseSafeTime(startText)
	if err != nil {
		return nil, err
	}
	stopText, err := links.Manifest.RequireText("//safe:acquisitionPeriod/safe:stopTime")
	if err != nil {
		return nil, err
	}
	stop, err := safe.ParseSafeTime(stopText)
	if err != nil {
		return nil, err
	}

	return &ProductMetadata{
		Links:       links,
		Annotations: annotations,
		SceneID:     links.SceneID(),
		Geometry:    geometry,
		Bbox:        bbox,
		Start:       start,
		Stop:        stop,
		Shape:       [2]int{annotations[0].NumberOfLines, annotations[0].NumberOfSamples},
	}, nil
}

// MidDatetime returns the midpoint of the acquisition window, used as the
// item's nominal datetime
func (pm *ProductMetadata) MidDatetime() time.Time {
	return pm.Start.Add(pm.Stop.Sub(pm.Start) / 2)
}

// Platform returns the platform name, e.g. "sentinel-1a"
func (pm *ProductMetadata) Platform() (string, error) {
	family, err := pm.Links.Manifest.RequireText("//safe:platform/safe:familyName")
	if err != nil {
		return "", err
	}
	number, err := pm.Links.Manifest.RequireText("//safe:platform/safe:number")
	if err != nil {
		return "", err
	}
	return strings.ToLower(family + number), nil
}

// ItemID returns the item identifier: the scene id minus its trailing
// unique-number segment, so the same scene reprocessed at different times
// keeps the same ID
func (pm *ProductMetadata) ItemID() (string, error) {
	if len(pm.SceneID) <= 5 {
		return "", fmt.Errorf("Scene ID too short to derive an item ID: %q", pm.SceneID)
	}
	return pm.SceneID[:len(pm.SceneID)-5], nil
}

// ProcessingLevel returns the processing level digit from the scene ID
func (pm *ProductMetadata) ProcessingLevel() (string, error) {
	parts := strings.Split(pm.SceneID, "_")
	// S1A_IW_SLC__1SDV_...: the level digit leads the product class segment
	if len(parts) < 5 || len(parts[4]) < 1 {
		return "", fmt.Errorf("Scene ID does not carry a processing level: %q", pm.SceneID)
	}
	return parts[4][:1], nil
}
