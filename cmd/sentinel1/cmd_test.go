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

package main

import (
	"encoding/json"
	"io/ioutil"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/lmizzoni/sentinel1/safe"
)

func TestParseFormatFlag(t *testing.T) {
	// Tested code & Asserts
	format, err := parseFormatFlag("")
	assert.Nil(t, err)
	assert.Equal(t, safe.FormatSAFE, format)

	format, err = parseFormatFlag("safe")
	assert.Nil(t, err)
	assert.Equal(t, safe.FormatSAFE, format)

	format, err = parseFormatFlag("COG")
	assert.Nil(t, err)
	assert.Equal(t, safe.FormatCOG, format)

	_, err = parseFormatFlag("netcdf")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "netcdf")
}

func TestGetPortStr(t *testing.T) {
	// Tested code & Asserts
	os.Unsetenv("PORT")
	assert.Equal(t, ":8080", getPortStr())

	os.Setenv("PORT", "9000")
	defer os.Unsetenv("PORT")
	assert.Equal(t, ":9000", getPortStr())
}

func TestServe_CallsLaunchServer(t *testing.T) {
	success := make(chan bool)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		success <- true
	}
	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case <-success:
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestServe_BaseHealthCheckEndpoint(t *testing.T) {
	success := make(chan bool)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		req := httptest.NewRequest("GET", "/", strings.NewReader(""))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, req)
		responseBody, _ := ioutil.ReadAll(response.Result().Body)
		success <- (string(responseBody) == "OK")
	}

	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case result := <-success:
		assert.True(t, result, "health check endpoint did not answer OK")
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestServe_ConvertEndpointRequiresGranule(t *testing.T) {
	statusCode := make(chan int)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		req := httptest.NewRequest("GET", "/convert", strings.NewReader(""))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, req)
		statusCode <- response.Result().StatusCode
	}

	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case code := <-statusCode:
		assert.Equal(t, 400, code)
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestServe_CollectionEndpoint(t *testing.T) {
	body := make(chan []byte)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		req := httptest.NewRequest("GET", "/stac/collection", strings.NewReader(""))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, req)
		responseBody, _ := ioutil.ReadAll(response.Result().Body)
		body <- responseBody
	}

	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case responseBody := <-body:
		collection := map[string]interface{}{}
		assert.Nil(t, json.Unmarshal(responseBody, &collection))
		assert.Equal(t, "sentinel1-slc", collection["id"])
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestCreateCliApp_HasCommands(t *testing.T) {
	// Tested code
	app := createCliApp()

	// Asserts
	names := []string{}
	for _, command := range app.Commands {
		names = append(names, command.Name)
	}
	assert.Contains(t, names, "convert")
	assert.Contains(t, names, "collection")
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "ingest")
	assert.Contains(t, names, "migrate")
	assert.Contains(t, names, "version")
}
