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
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/lmizzoni/sentinel1/localindex"
	"github.com/lmizzoni/sentinel1/slc"
	"github.com/lmizzoni/sentinel1/util"
)

var (
	conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentinel1_conversions_total",
		Help: "Granule conversion requests by outcome",
	}, []string{"outcome"})
	conversionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentinel1_conversion_duration_seconds",
		Help:    "Time spent converting a granule to a STAC item",
		Buckets: prometheus.DefBuckets,
	})
)

func getPortStr() string {
	if port, ok := os.LookupEnv("PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func convertHandler(w http.ResponseWriter, r *http.Request) {
	ctx := &util.BasicLogContext{}

	granulePath := r.FormValue("granule")
	if granulePath == "" {
		util.HTTPError(r, w, ctx, "A granule query parameter is required", http.StatusBadRequest)
		return
	}
	format, err := parseFormatFlag(r.FormValue("format"))
	if err != nil {
		util.HTTPError(r, w, ctx, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	item, err := slc.CreateItem(granulePath, format, util.GetAssetBaseURL())
	conversionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		conversionsTotal.WithLabelValues("failure").Inc()
		message := fmt.Sprintf("Failed to convert granule %s: %v", granulePath, err)
		util.LogSimpleErr(ctx, message, err)
		util.HTTPError(r, w, ctx, message, http.StatusUnprocessableEntity)
		return
	}
	conversionsTotal.WithLabelValues("success").Inc()

	w.Header().Set("Content-Type", "application/geo+json")
	w.Write([]byte(item.String()))
}

func collectionHandler(w http.ResponseWriter, r *http.Request) {
	collection := slc.CreateCollection(util.GetCollectionHref())
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(collection.String()))
}

func createRouter(ctx util.LogContext) (*mux.Router, error) {
	router := mux.NewRouter()
	router.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("OK"))
	})
	router.HandleFunc("/convert", convertHandler)
	router.HandleFunc("/stac/collection", collectionHandler)
	router.Handle("/metrics", promhttp.Handler())

	if discoverHandler, err := localindex.NewDiscoverHandler(getDbConnectionFunc); err == nil {
		router.Handle("/localindex/discover", discoverHandler)
	} else {
		util.LogAlert(ctx, fmt.Sprintf("Local index unavailable, not serving discover endpoint: %v", err))
	}

	if itemHandler, err := localindex.NewItemHandler(getDbConnectionFunc); err == nil {
		router.Handle("/localindex/items/{id}", itemHandler)
	} else {
		util.LogAlert(ctx, fmt.Sprintf("Local index unavailable, not serving item endpoint: %v", err))
	}

	return router, nil
}

func serveAction(*cli.Context) {
	logContext := &(util.BasicLogContext{})

	portStr := getPortStr()

	if router, err := createRouter(logContext); err == nil {
		launchServerFunc(portStr, router)
	} else {
		util.LogSimpleErr(logContext, "Failed to create router: ", err)
	}
}

var launchServerFunc = launchServer

func launchServer(portStr string, router *mux.Router) {
	server := http.Server{
		Addr:    portStr,
		Handler: router,
	}

	log.Fatal(server.ListenAndServe())
}
