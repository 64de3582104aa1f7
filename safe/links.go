package safe

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// MetadataLinks groups the file hrefs bundled in a granule by role, as
// listed in the manifest's data object section
type MetadataLinks struct {
	GranulePath  string
	Format       Format
	Manifest     *Manifest
	Annotations  []string
	Calibrations []string
	Noises       []string
	Measurements []string
	Thumbnail    string
}

// NewMetadataLinks opens a granule's manifest and groups its file hrefs
func NewMetadataLinks(granulePath string, format Format) (*MetadataLinks, error) {
	manifest, err := OpenManifest(granulePath)
	if err != nil {
		return nil, err
	}
	return newMetadataLinksFromManifest(granulePath, format, manifest)
}

func newMetadataLinksFromManifest(granulePath string, format Format, manifest *Manifest) (*MetadataLinks, error) {
	links := &MetadataLinks{
		GranulePath: granulePath,
		Format:      format,
		Manifest:    manifest,
	}

	for _, href := range manifest.FileHrefs() {
		switch {
		case strings.Contains(href, "calibration/calibration-"):
			links.Calibrations = append(links.Calibrations, href)
		case strings.Contains(href, "calibration/noise-"):
			links.Noises = append(links.Noises, href)
		case strings.HasPrefix(href, "annotation/") && strings.HasSuffix(href, ".xml"):
			links.Annotations = append(links.Annotations, href)
		case strings.HasPrefix(href, "measurement/"):
			links.Measurements = append(links.Measurements, href)
		case strings.HasSuffix(href, "quick-look.png"):
			links.Thumbnail = href
		}
	}

	if len(links.Annotations) == 0 {
		return nil, fmt.Errorf("Manifest lists no product annotations: %s", granulePath)
	}
	if len(links.Measurements) == 0 {
		return nil, fmt.Errorf("Manifest lists no measurement images: %s", granulePath)
	}

	// Manifest order is not guaranteed; keep swath-polarization order stable
	sort.Strings(links.Annotations)
	sort.Strings(links.Calibrations)
	sort.Strings(links.Noises)
	sort.Strings(links.Measurements)

	return links, nil
}

// SceneID returns the scene identifier, the granule directory name minus
// its .SAFE extension
func (links *MetadataLinks) SceneID() string {
	base := filepath.Base(strings.TrimRight(links.GranulePath, "/\\"))
	return strings.TrimSuffix(base, ".SAFE")
}

// LocalPath resolves a manifest-relative href against the granule root
func (links *MetadataLinks) LocalPath(href string) string {
	return filepath.Join(links.GranulePath, filepath.FromSlash(href))
}

// OpenAnnotations parses every product annotation in the granule
func (links *MetadataLinks) OpenAnnotations() ([]*Annotation, error) {
	annotations := make([]*Annotation, 0, len(links.Annotations))
	for _, href := range links.Annotations {
		annotation, err := OpenAnnotation(links.LocalPath(href))
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, annotation)
	}
	return annotations, nil
}
