// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"os"
	"time"
)

// Environment variables
const (
	ASSET_BASE_URL   = "S1_ASSET_BASE_URL"
	INGEST_PATH      = "S1_INGEST_PATH"
	INGEST_FREQUENCY = "S1_INGEST_FREQUENCY"
	COLLECTION_HREF  = "S1_COLLECTION_HREF"
)

// GetAssetBaseURL returns the base URL substituted for the local granule
// path when building asset hrefs, or an empty string to keep local paths
func GetAssetBaseURL() string {
	baseURL, ok := os.LookupEnv(ASSET_BASE_URL)
	if !ok {
		LogInfo(&BasicLogContext{}, "No asset base URL in environment. Asset hrefs will use granule paths as-is.")
	}
	return baseURL
}

// GetIngestPath returns the root directory scanned for granules during ingest
func GetIngestPath() string {
	path, ok := os.LookupEnv(INGEST_PATH)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get an ingest path from the environment. Ingest will not be available.")
	}
	return path
}

// GetCollectionHref returns the self href recorded on generated collections
func GetCollectionHref() string {
	href, ok := os.LookupEnv(COLLECTION_HREF)
	if !ok {
		LogInfo(&BasicLogContext{}, "No collection href in environment. Using a relative href.")
		href = "./collection.json"
	}
	return href
}

// GetIngestFrequency returns how often the ingest loop re-scans, clamped
// to a sane minimum
func GetIngestFrequency(defaultFrequency time.Duration) time.Duration {
	duration, _ := time.ParseDuration(os.Getenv(INGEST_FREQUENCY))
	if duration < time.Minute {
		return defaultFrequency
	}
	return duration
}
