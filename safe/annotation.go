package safe

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// GeoPoint is one geolocation grid point from a product annotation
type GeoPoint struct {
	Latitude  float64
	Longitude float64
	Line      int
	Pixel     int
}

// Annotation is a parsed product annotation: the per-swath, per-polarization
// description of the acquisition
type Annotation struct {
	MissionID           string
	ProductType         string
	Polarisation        string
	Mode                string
	Swath               string
	StartTime           time.Time
	StopTime            time.Time
	AbsoluteOrbitNumber int
	MissionDataTakeID   string
	NumberOfSamples     int
	NumberOfLines       int
	RangePixelSpacing   float64
	AzimuthPixelSpacing float64
	GridPoints          []GeoPoint
	BurstAnxTimes       []float64
}

// OpenAnnotation reads and parses a product annotation file
func OpenAnnotation(path string) (*Annotation, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("Could not read annotation %s: %v", path, err)
	}
	return annotationFromDocument(doc)
}

// ParseAnnotation parses a product annotation from a reader
func ParseAnnotation(r io.Reader) (*Annotation, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return annotationFromDocument(doc)
}

func annotationFromDocument(doc *etree.Document) (*Annotation, error) {
	annotation := Annotation{}
	var err error

	if annotation.MissionID, err = requireText(doc, "//adsHeader/missionId"); err != nil {
		return nil, err
	}
	if annotation.ProductType, err = requireText(doc, "//adsHeader/productType"); err != nil {
		return nil, err
	}
	if annotation.Polarisation, err = requireText(doc, "//adsHeader/polarisation"); err != nil {
		return nil, err
	}
	if annotation.Mode, err = requireText(doc, "//adsHeader/mode"); err != nil {
		return nil, err
	}
	if annotation.Swath, err = requireText(doc, "//adsHeader/swath"); err != nil {
		return nil, err
	}
	annotation.MissionDataTakeID = findText(doc, "//adsHeader/missionDataTakeId")

	startText, err := requireText(doc, "//adsHeader/startTime")
	if err != nil {
		return nil, err
	}
	if annotation.StartTime, err = ParseSafeTime(startText); err != nil {
		return nil, err
	}
	stopText, err := requireText(doc, "//adsHeader/stopTime")
	if err != nil {
		return nil, err
	}
	if annotation.StopTime, err = ParseSafeTime(stopText); err != nil {
		return nil, err
	}

	orbitText, err := requireText(doc, "//adsHeader/absoluteOrbitNumber")
	if err != nil {
		return nil, err
	}
	if annotation.AbsoluteOrbitNumber, err = strconv.Atoi(orbitText); err != nil {
		return nil, fmt.Errorf("Invalid absolute orbit number %q: %v", orbitText, err)
	}

	samplesText, err := requireText(doc, "//imageAnnotation/imageInformation/numberOfSamples")
	if err != nil {
		return nil, err
	}
	if annotation.NumberOfSamples, err = strconv.Atoi(samplesText); err != nil {
		return nil, fmt.Errorf("Invalid numberOfSamples %q: %v", samplesText, err)
	}
	linesText, err := requireText(doc, "//imageAnnotation/imageInformation/numberOfLines")
	if err != nil {
		return nil, err
	}
	if annotation.NumberOfLines, err = strconv.Atoi(linesText); err != nil {
		return nil, fmt.Errorf("Invalid numberOfLines %q: %v", linesText, err)
	}

	annotation.RangePixelSpacing, _ = strconv.ParseFloat(findText(doc, "//imageAnnotation/imageInformation/rangePixelSpacing"), 64)
	annotation.AzimuthPixelSpacing, _ = strconv.ParseFloat(findText(doc, "//imageAnnotation/imageInformation/azimuthPixelSpacing"), 64)

	for _, point := range doc.FindElements("//geolocationGrid/geolocationGridPointList/geolocationGridPoint") {
		gridPoint := GeoPoint{}
		lat, latErr := strconv.ParseFloat(elementText(point, "latitude"), 64)
		lon, lonErr := strconv.ParseFloat(elementText(point, "longitude"), 64)
		if latErr != nil || lonErr != nil {
			return nil, fmt.Errorf("Geolocation grid point with unparseable coordinates in swath %s", annotation.Swath)
		}
		gridPoint.Latitude = lat
		gridPoint.Longitude = lon
		gridPoint.Line, _ = strconv.Atoi(elementText(point, "line"))
		gridPoint.Pixel, _ = strconv.Atoi(elementText(point, "pixel"))
		annotation.GridPoints = append(annotation.GridPoints, gridPoint)
	}
	if len(annotation.GridPoints) == 0 {
		return nil, fmt.Errorf("Annotation for swath %s has no geolocation grid points", annotation.Swath)
	}

	for _, burst := range doc.FindElements("//swathTiming/burstList/burst") {
		anxTime, anxErr := strconv.ParseFloat(elementText(burst, "azimuthAnxTime"), 64)
		if anxErr == nil {
			annotation.BurstAnxTimes = append(annotation.BurstAnxTimes, anxTime)
		}
	}

	return &annotation, nil
}

func findText(doc *etree.Document, path string) string {
	element := doc.FindElement(path)
	if element == nil {
		return ""
	}
	return strings.TrimSpace(element.Text())
}

func requireText(doc *etree.Document, path string) (string, error) {
	text := findText(doc, path)
	if text == "" {
		return "", fmt.Errorf("Annotation is missing required element: %s", path)
	}
	return text, nil
}

func elementText(parent *etree.Element, child string) string {
	element := parent.SelectElement(child)
	if element == nil {
		return ""
	}
	return strings.TrimSpace(element.Text())
}
