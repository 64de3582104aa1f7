package safe

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleAnnotation = `<?xml version="1.0" encoding="UTF-8"?>
<product>
  <adsHeader>
    <missionId>S1A</missionId>
    <productType>SLC</productType>
    <polarisation>VH</polarisation>
    <mode>IW</mode>
    <swath>IW1</swath>
    <startTime>2022-04-12T05:45:33.328855</startTime>
    <stopTime>2022-04-12T05:45:58.396994</stopTime>
    <absoluteOrbitNumber>42718</absoluteOrbitNumber>
    <missionDataTakeId>334973</missionDataTakeId>
    <imageNumber>001</imageNumber>
  </adsHeader>
  <imageAnnotation>
    <imageInformation>
      <rangePixelSpacing>2.329562e+00</rangePixelSpacing>
      <azimuthPixelSpacing>1.386702e+01</azimuthPixelSpacing>
      <numberOfSamples>22605</numberOfSamples>
      <numberOfLines>13680</numberOfLines>
    </imageInformation>
  </imageAnnotation>
  <swathTiming>
    <burstList count="2">
      <burst>
        <azimuthAnxTime>2.210634e+03</azimuthAnxTime>
      </burst>
      <burst>
        <azimuthAnxTime>2.213392e+03</azimuthAnxTime>
      </burst>
    </burstList>
  </swathTiming>
  <geolocationGrid>
    <geolocationGridPointList count="4">
      <geolocationGridPoint>
        <line>0</line>
        <pixel>0</pixel>
        <latitude>4.971335e+01</latitude>
        <longitude>1.087545e+01</longitude>
      </geolocationGridPoint>
      <geolocationGridPoint>
        <line>0</line>
        <pixel>22604</pixel>
        <latitude>4.989418e+01</latitude>
        <longitude>1.199174e+01</longitude>
      </geolocationGridPoint>
      <geolocationGridPoint>
        <line>13679</line>
        <pixel>0</pixel>
        <latitude>5.139925e+01</latitude>
        <longitude>1.037542e+01</longitude>
      </geolocationGridPoint>
      <geolocationGridPoint>
        <line>13679</line>
        <pixel>22604</pixel>
        <latitude>5.158072e+01</latitude>
        <longitude>1.151234e+01</longitude>
      </geolocationGridPoint>
    </geolocationGridPointList>
  </geolocationGrid>
</product>`

func TestParseAnnotation_Success(t *testing.T) {
	// Tested code
	annotation, err := ParseAnnotation(strings.NewReader(sampleAnnotation))

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, annotation)
	assert.Equal(t, "S1A", annotation.MissionID)
	assert.Equal(t, "SLC", annotation.ProductType)
	assert.Equal(t, "VH", annotation.Polarisation)
	assert.Equal(t, "IW", annotation.Mode)
	assert.Equal(t, "IW1", annotation.Swath)
	assert.Equal(t, time.Date(2022, 4, 12, 5, 45, 33, 328855000, time.UTC), annotation.StartTime)
	assert.Equal(t, time.Date(2022, 4, 12, 5, 45, 58, 396994000, time.UTC), annotation.StopTime)
	assert.Equal(t, 42718, annotation.AbsoluteOrbitNumber)
	assert.Equal(t, "334973", annotation.MissionDataTakeID)
	assert.Equal(t, 22605, annotation.NumberOfSamples)
	assert.Equal(t, 13680, annotation.NumberOfLines)
	assert.InDelta(t, 2.329562, annotation.RangePixelSpacing, 1e-9)
	assert.InDelta(t, 13.86702, annotation.AzimuthPixelSpacing, 1e-9)

	assert.Len(t, annotation.GridPoints, 4)
	assert.InDelta(t, 49.71335, annotation.GridPoints[0].Latitude, 1e-9)
	assert.InDelta(t, 10.87545, annotation.GridPoints[0].Longitude, 1e-9)
	assert.Equal(t, 13679, annotation.GridPoints[3].Line)
	assert.Equal(t, 22604, annotation.GridPoints[3].Pixel)

	assert.Len(t, annotation.BurstAnxTimes, 2)
	assert.InDelta(t, 2210.634, annotation.BurstAnxTimes[0], 1e-9)
}

func TestParseAnnotation_MissingRequiredElement(t *testing.T) {
	// Mock: drop the swath element
	broken := strings.Replace(sampleAnnotation, "<swath>IW1</swath>", "", 1)

	// Tested code
	annotation, err := ParseAnnotation(strings.NewReader(broken))

	// Asserts
	assert.NotNil(t, err)
	assert.Nil(t, annotation)
	assert.Contains(t, err.Error(), "adsHeader/swath")
}

func TestParseAnnotation_NoGridPoints(t *testing.T) {
	// Mock: empty the geolocation grid
	start := strings.Index(sampleAnnotation, "<geolocationGridPointList")
	stop := strings.Index(sampleAnnotation, "</geolocationGridPointList>") + len("</geolocationGridPointList>")
	broken := sampleAnnotation[:start] + "<geolocationGridPointList count=\"0\"/>" + sampleAnnotation[stop:]

	// Tested code
	annotation, err := ParseAnnotation(strings.NewReader(broken))

	// Asserts
	assert.NotNil(t, err)
	assert.Nil(t, annotation)
	assert.Contains(t, err.Error(), "geolocation grid")
}
