package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	db "github.com/lmizzoni/sentinel1/localindex/db"
	"github.com/lmizzoni/sentinel1/util"

	_ "github.com/lib/pq"
	cli "gopkg.in/urfave/cli.v1"
)

const defaultIngestFrequency = 24 * time.Hour

// ingestAction starts the worker process and an http server for
// controlling it
func ingestAction(c *cli.Context) error {
	portStr := getPortStr()

	ingestPath := util.GetIngestPath()
	if ingestPath == "" {
		return cli.NewExitError("No ingest path configured; set "+util.INGEST_PATH, 1)
	}
	format, err := parseFormatFlag(c.String("format"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	importer := db.NewImporter(ingestPath, format, util.GetAssetBaseURL(), getDbConnectionFunc)

	// The channel that sends start/stop messages to the Importer.
	messageChan := make(chan string, 5) // small buffer.

	// Start the sleep/ingest loop.
	go importer.ImportWhile(messageChan, util.GetIngestFrequency(defaultIngestFrequency))

	// Set up an http router
	router := mux.NewRouter()
	router.HandleFunc("/ingest/", func(resp http.ResponseWriter, req *http.Request) {
		handleImportStatus(importer, resp, req)
	})
	router.HandleFunc("/ingest/start", func(resp http.ResponseWriter, req *http.Request) {
		handleForceStartIngest(importer, messageChan, resp, req)
	})
	router.HandleFunc("/ingest/cancel", func(resp http.ResponseWriter, req *http.Request) {
		handleCancel(importer, messageChan, resp, req)
	})

	log.Println("Listening on port", portStr)
	log.Fatal(http.ListenAndServe(portStr, router))
	return nil
}

// handleImportStatus requests the status from the importer and writes it out.
func handleImportStatus(imp *db.Importer, writer http.ResponseWriter, req *http.Request) {
	fmt.Fprintln(writer, imp.GetStatus())
}

// handleForceStartIngest sends a "begin" message to the importer and returns the new status to the user.
func handleForceStartIngest(imp *db.Importer, messageChan chan<- string, writer http.ResponseWriter, req *http.Request) {
	select {
	case messageChan <- db.BeginIngestJobMessage:
		fmt.Fprintln(writer, "Begin job request submitted.")
	default:
		fmt.Fprintln(writer, "Error submitting request.")
	}
	fmt.Fprintln(writer, imp.GetStatus())
}

// handleCancel sends a "cancel" message to the importer and returns the new status to the user.
func handleCancel(imp *db.Importer, cancelChan chan<- string, writer http.ResponseWriter, req *http.Request) {
	select {
	case cancelChan <- db.AbortIngestJobMessage:
		fmt.Fprintln(writer, "Cancel request submitted.")
	default:
		fmt.Fprintln(writer, "Error submitting cancel request.")
	}
	fmt.Fprintln(writer, imp.GetStatus())
}
