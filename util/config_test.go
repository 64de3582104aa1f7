package util

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetAssetBaseURL(t *testing.T) {
	// Mock
	os.Unsetenv(ASSET_BASE_URL)

	// Tested code & Asserts
	assert.Equal(t, "", GetAssetBaseURL())

	os.Setenv(ASSET_BASE_URL, "https://example.localdomain/sentinel1")
	defer os.Unsetenv(ASSET_BASE_URL)
	assert.Equal(t, "https://example.localdomain/sentinel1", GetAssetBaseURL())
}

func TestGetCollectionHref_Default(t *testing.T) {
	// Mock
	os.Unsetenv(COLLECTION_HREF)

	// Tested code & Asserts
	assert.Equal(t, "./collection.json", GetCollectionHref())

	os.Setenv(COLLECTION_HREF, "https://example.localdomain/collection.json")
	defer os.Unsetenv(COLLECTION_HREF)
	assert.Equal(t, "https://example.localdomain/collection.json", GetCollectionHref())
}

func TestGetIngestFrequency(t *testing.T) {
	// Mock
	defaultFrequency := 24 * time.Hour

	// Tested code & Asserts
	os.Unsetenv(INGEST_FREQUENCY)
	assert.Equal(t, defaultFrequency, GetIngestFrequency(defaultFrequency))

	os.Setenv(INGEST_FREQUENCY, "2h")
	defer os.Unsetenv(INGEST_FREQUENCY)
	assert.Equal(t, 2*time.Hour, GetIngestFrequency(defaultFrequency))

	// Sub-minute frequencies fall back to the default
	os.Setenv(INGEST_FREQUENCY, "5s")
	assert.Equal(t, defaultFrequency, GetIngestFrequency(defaultFrequency))
}
