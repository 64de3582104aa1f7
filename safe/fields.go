package safe

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// https://sentinels.copernicus.eu/web/sentinel/user-guides/sentinel-1-sar/naming-conventions
var imageFilenamePattern = regexp.MustCompile(
	`^(s1[abcd])-(s[1-6]|iw[1-3]?|ew[1-5]?|wv[12]?|n[1-6])-(slc|grd|ocn)-(hh|hv|vh|vv)-([0-9t]{15})-([0-9t]{15})-([0-9]{6})-([0-9a-f]{6})-([0-9]{3})\.(tiff|xml)$`)

// ImageFields holds the fields encoded in a measurement or annotation
// filename, e.g. s1a-iw1-slc-vh-20220412t054533-20220412t054558-042718-05187d-001.tiff
type ImageFields struct {
	Platform      string
	Swath         string
	ProductType   string
	Polarisation  string
	Start         time.Time
	Stop          time.Time
	AbsoluteOrbit int
	DataTakeID    string
	ImageNumber   string
}

// ParseImageFields extracts the encoded fields from a product filename.
// The href may be a full path; only the base name is examined. Calibration
// and noise annotations prepend their role to the conventional name
// (calibration-s1a-..., noise-s1a-...), so that prefix is stripped first.
func ParseImageFields(href string) (*ImageFields, error) {
	filename := strings.ToLower(path.Base(strings.ReplaceAll(href, "\\", "/")))
	filename = strings.TrimPrefix(filename, "calibration-")
	filename = strings.TrimPrefix(filename, "noise-")
	m := imageFilenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return nil, fmt.Errorf("Filename does not match the Sentinel-1 naming convention: %s", filename)
	}

	start, err := ParseSafeTime(m[5])
	if err != nil {
		return nil, err
	}
	stop, err := ParseSafeTime(m[6])
	if err != nil {
		return nil, err
	}
	orbit, err := strconv.Atoi(m[7])
	if err != nil {
		return nil, err
	}

	return &ImageFields{
		Platform:      m[1],
		Swath:         m[2],
		ProductType:   m[3],
		Polarisation:  m[4],
		Start:         start,
		Stop:          stop,
		AbsoluteOrbit: orbit,
		DataTakeID:    m[8],
		ImageNumber:   m[9],
	}, nil
}
