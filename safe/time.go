package safe

import (
	"fmt"
	"time"
)

// Sentinel-1 product files carry datetimes in several close-but-different
// shapes: manifest acquisition times have no zone designator, processing
// stop attributes sometimes do, and filenames use a compact lowercase
// form. We need lenient multi-format parsing, implemented here.

var safeTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"20060102t150405",
}

// ParseSafeTime is a drop-in replacement for time.Parse, matching against
// the datetime formats found across a SAFE archive
func ParseSafeTime(value string) (time.Time, error) {
	for _, layout := range safeTimeLayouts {
		if output, err := time.Parse(layout, value); err == nil {
			return output.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", value)
}
