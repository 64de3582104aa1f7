package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lmizzoni/sentinel1/safe"
	"github.com/lmizzoni/sentinel1/slc"
	"github.com/lmizzoni/sentinel1/util"
)

// BeginIngestJobMessage asks the import loop to start a job now
const BeginIngestJobMessage = "begin"

// AbortIngestJobMessage asks the import loop to stop the current job
const AbortIngestJobMessage = "abort"

var (
	itemsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel1_items_ingested_total",
		Help: "Granules converted and written to the local index",
	})
	ingestFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel1_ingest_failures_total",
		Help: "Granules that failed conversion or indexing",
	})
)

// Importer manages the state for an ingest job: scanning a root directory
// for granules, converting each and upserting it into the index.
type Importer struct {
	rootPath       string
	format         safe.Format
	assetBaseURL   string
	dbConnProvider ConnectionProvider
	statusChan     chan chan string
}

// NewImporter initializes a new importer.
func NewImporter(rootPath string, format safe.Format, assetBaseURL string, dbConnProvider ConnectionProvider) *Importer {
	return &Importer{
		rootPath:       rootPath,
		format:         format,
		assetBaseURL:   assetBaseURL,
		dbConnProvider: dbConnProvider,
		statusChan:     make(chan chan string, 10),
	}
}

// ImportWhile performs the Import() task on a schedule and waits for a channel.
// Note: this is blocking.
// The function exits when messageChan is closed and any in-progress job completes.
func (imp *Importer) ImportWhile(messageChan <-chan string, maxTimeBetweenJobs time.Duration) {
	ctx := &util.BasicLogContext{}
	util.LogInfo(ctx, fmt.Sprintf("Ingest loop started with frequency %v", maxTimeBetweenJobs))

	previousStatus := "\tNone"

	scheduleTimer := time.NewTimer(maxTimeBetweenJobs)
	nextScheduledStartTime := time.Now().Add(maxTimeBetweenJobs)

	var startJob bool
	for {
		startJob = false

		// Status is reported cooperatively, so deal with any requests
		// while waiting for a start signal.
		select {
		case <-scheduleTimer.C:
			util.LogInfo(ctx, "Maximum time between ingest jobs elapsed.")
			startJob = true
		case msg, ok := <-messageChan:
			if !ok {
				return
			}
			if msg == BeginIngestJobMessage {
				util.LogInfo(ctx, "User requested ingest job start.")
				startJob = true
			}
		case respChan := <-imp.statusChan:
			select {
			case respChan <- fmt.Sprintf("%v\nStatus: Sleeping until %v\nPrevious job:\n%v",
				time.Now().Format("Mon Jan _2 15:04:05 2006"),
				nextScheduledStartTime.Format("Mon Jan _2 15:04:05 2006"),
				previousStatus):
			default:
				// Could not send immediately; drop it.
			}
		}

		if startJob {
			previousStatus = imp.Import(messageChan)

			scheduleTimer.Stop()
		TimerDrainLoop:
			for {
				select {
				case <-scheduleTimer.C:
				default:
					break TimerDrainLoop
				}
			}
			scheduleTimer.Reset(maxTimeBetweenJobs)
			nextScheduledStartTime = time.Now().Add(maxTimeBetweenJobs)
		}
	}
}

// GetStatus is a thread safe way to get information about the import operation.
func (imp *Importer) GetStatus() string {
	responseChan := make(chan string, 1) // must have a buffer; the loop won't wait to send
	imp.statusChan <- responseChan
	return <-responseChan
}

// Import scans the granule root once and indexes everything it finds,
// returning a status summary. An abort message on messageChan stops the
// scan between granules.
func (imp *Importer) Import(messageChan <-chan string) string {
	ctx := &util.BasicLogContext{}

	granules, err := FindGranules(imp.rootPath)
	if err != nil {
		util.LogSimpleErr(ctx, "Could not scan the granule root.", err)
		return fmt.Sprintf("Scan failed: %v", err)
	}

	database, err := imp.dbConnProvider(ctx)
	if err != nil {
		util.LogSimpleErr(ctx, "Could not open database connection.", err)
		return fmt.Sprintf("DB connection failed: %v", err)
	}
	defer database.Close()

	ingested, failed := 0, 0
	for _, granulePath := range granules {
		select {
		case msg := <-messageChan:
			if msg == AbortIngestJobMessage {
				return fmt.Sprintf("Aborted after %d granules (%d failed)", ingested, failed)
			}
		default:
		}

		if err = imp.ingestOne(database, granulePath); err != nil {
			util.LogSimpleErr(ctx, fmt.Sprintf("Failed to ingest granule %s.", granulePath), err)
			ingestFailures.Inc()
			failed++
			continue
		}
		itemsIngested.Inc()
		ingested++
	}

	status := fmt.Sprintf("Ingested %d granules, %d failed, at %v",
		ingested, failed, time.Now().Format("Mon Jan _2 15:04:05 2006"))
	util.LogInfo(ctx, status)
	return status
}

func (imp *Importer) ingestOne(database *sql.DB, granulePath string) error {
	item, err := slc.CreateItem(granulePath, imp.format, imp.assetBaseURL)
	if err != nil {
		return err
	}

	acquired, err := safe.ParseSafeTime(item.Properties["start_datetime"].(string))
	if err != nil {
		return err
	}

	tx, err := database.Begin()
	if err != nil {
		return err
	}
	if err = UpsertItem(tx, item, acquired); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// FindGranules lists the SAFE granule directories under a root directory
func FindGranules(rootPath string) ([]string, error) {
	granules := []string{}
	err := filepath.Walk(filepath.Clean(rootPath), func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() && strings.HasSuffix(info.Name(), ".SAFE") {
			granules = append(granules, path)
			return filepath.SkipDir
		}
		return nil
	})
	return granules, err
}
