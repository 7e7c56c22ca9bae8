// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package csv2parquet

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/BrunoReboul/crmpipe/utilities/bkt"
	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/ffo"
	"github.com/BrunoReboul/crmpipe/utilities/gcf"
	"github.com/BrunoReboul/crmpipe/utilities/gcs"
	"github.com/BrunoReboul/crmpipe/utilities/gfs"
	"github.com/BrunoReboul/crmpipe/utilities/gps"
	"github.com/BrunoReboul/crmpipe/utilities/logging"
	"github.com/BrunoReboul/crmpipe/utilities/obs"
	"github.com/BrunoReboul/crmpipe/utilities/pqt"
	"github.com/BrunoReboul/crmpipe/utilities/solution"
	"github.com/BrunoReboul/crmpipe/utilities/validater"
	"github.com/google/uuid"
)

// Settings explicit configuration of the conversion pipeline
type Settings struct {
	MicroserviceName string
	InstanceName     string
	Environment      string
	ProjectID        string
	// RawBucket gs://bucket, s3://bucket or bucket, checked on each event
	RawBucket             string `valid:"isLocation"`
	Partitioned           bool
	Compression           string `valid:"isCompression"`
	RetryTimeOutSeconds   int64
	LedgerCollectionID    string
	NotificationTopicName string
}

// Recorder records a conversion
type Recorder interface {
	Record(ctx context.Context, conversion gfs.Conversion) error
}

// Publisher publishes a raw object ready notification
type Publisher interface {
	Publish(ctx context.Context, notification gps.RawObjectReady) (id string, err error)
}

// Dependencies clients used by the pipeline
type Dependencies struct {
	// Source reads the landing objects
	Source obs.Store
	// Destination writes the raw objects, defaults to Source
	Destination obs.Store
	// Ledger required when Settings.LedgerCollectionID is set
	Ledger Recorder
	// Notifier required when Settings.NotificationTopicName is set
	Notifier Publisher
	// Now defaults to time.Now
	Now func() time.Time
	// Println defaults to log.Println
	Println func(v ...interface{})
}

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	settings    Settings
	rawLocation obs.Location
	encoder     pqt.Encoder
	source      obs.Store
	destination obs.Store
	ledger      Recorder
	notifier    Publisher
	now         func() time.Time
	logger      logging.Logger
}

// NewGlobal checks the settings and dependencies and returns a ready to use Global
// A missing raw bucket is not an error here: each event fails with erm.ErrConfiguration before any storage access
func NewGlobal(ctx context.Context, settings Settings, dependencies Dependencies) (*Global, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validater.ValidateStruct(settings, "csv2parquet.Settings"); err != nil {
		return nil, err
	}
	if dependencies.Source == nil {
		return nil, fmt.Errorf("%w: missing source store", erm.ErrConfiguration)
	}
	if settings.LedgerCollectionID != "" && dependencies.Ledger == nil {
		return nil, fmt.Errorf("%w: ledger collection '%s' set without a ledger", erm.ErrConfiguration, settings.LedgerCollectionID)
	}
	if settings.NotificationTopicName != "" && dependencies.Notifier == nil {
		return nil, fmt.Errorf("%w: notification topic '%s' set without a notifier", erm.ErrConfiguration, settings.NotificationTopicName)
	}
	global := &Global{
		settings:    settings,
		encoder:     pqt.Encoder{Compression: settings.Compression},
		source:      dependencies.Source,
		destination: dependencies.Destination,
		ledger:      dependencies.Ledger,
		notifier:    dependencies.Notifier,
		now:         dependencies.Now,
		logger: logging.Logger{
			MicroserviceName: settings.MicroserviceName,
			InstanceName:     settings.InstanceName,
			Environment:      settings.Environment,
			Println:          dependencies.Println,
		},
	}
	if settings.RawBucket != "" {
		var err error
		global.rawLocation, err = obs.ParseLocation(settings.RawBucket)
		if err != nil {
			return nil, err
		}
	}
	if global.destination == nil {
		global.destination = global.source
	}
	if global.now == nil {
		global.now = time.Now
	}
	return global, nil
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	initID := fmt.Sprintf("%v", uuid.New())

	instanceDeployment := newInstanceDeployment()
	settingsPath := solution.PathToFunctionCode + solution.SettingsFileName
	if _, statErr := os.Stat(settingsPath); statErr == nil {
		err = ffo.ReadUnmarshalYAML(settingsPath, &instanceDeployment)
		if err != nil {
			log.Println(logging.Entry{
				Severity:    "CRITICAL",
				Message:     "init_failed",
				Description: fmt.Sprintf("ReadUnmarshalYAML %s %v", solution.SettingsFileName, err),
				InitID:      initID,
			})
			return fmt.Errorf("%w: %v", erm.ErrConfiguration, err)
		}
	}
	settings := instanceDeployment.Situate()
	if rawBucket := os.Getenv(rawBucketEnvVar); rawBucket != "" {
		settings.RawBucket = rawBucket
	}
	logger := logging.Logger{
		MicroserviceName: settings.MicroserviceName,
		InstanceName:     settings.InstanceName,
		Environment:      settings.Environment,
	}
	logger.Log(logging.Entry{
		Severity:    "NOTICE",
		Message:     "coldstart",
		Description: fmt.Sprintf("raw bucket '%s' partitioned %v compression '%s'", settings.RawBucket, settings.Partitioned, settings.Compression),
		InitID:      initID,
	})

	var dependencies Dependencies
	initFailed := func(description string, err error) error {
		closeDependencies(dependencies)
		logger.Log(logging.Entry{
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("%s %v", description, err),
			InitID:      initID,
		})
		return err
	}

	gcsStore, err := gcs.NewStore(ctx)
	if err != nil {
		return initFailed("gcs.NewStore", err)
	}
	dependencies.Source = gcsStore
	if settings.RawBucket != "" {
		location, err := obs.ParseLocation(settings.RawBucket)
		if err != nil {
			return initFailed("obs.ParseLocation", err)
		}
		if location.Provider != obs.ProviderGCS {
			dependencies.Destination, err = bkt.Open(ctx, location.Provider)
			if err != nil {
				return initFailed("bkt.Open", err)
			}
		}
	}
	if settings.LedgerCollectionID != "" {
		dependencies.Ledger, err = gfs.NewLedger(ctx, settings.ProjectID, settings.LedgerCollectionID)
		if err != nil {
			return initFailed("gfs.NewLedger", err)
		}
	}
	if settings.NotificationTopicName != "" {
		dependencies.Notifier, err = gps.NewNotifier(ctx, settings.ProjectID, settings.NotificationTopicName)
		if err != nil {
			return initFailed("gps.NewNotifier", err)
		}
	}
	g, err := NewGlobal(ctx, settings, dependencies)
	if err != nil {
		return initFailed("NewGlobal", err)
	}
	*global = *g
	return nil
}

// closeDependencies releases the clients opened before a cold start failure
func closeDependencies(dependencies Dependencies) {
	for _, dependency := range []interface{}{dependencies.Source, dependencies.Destination, dependencies.Ledger, dependencies.Notifier} {
		if closer, ok := dependency.(io.Closer); ok {
			_ = closer.Close()
		}
	}
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, gcsEvent gcs.Event, global *Global) error {
	check, err := gcf.InitialRetryCheck(ctxEvent, global.settings.RetryTimeOutSeconds, global.now())
	if err != nil {
		global.logger.Log(logging.Entry{
			Severity:    "CRITICAL",
			Message:     "redo_on_transient",
			Description: fmt.Sprintf("gcf.InitialRetryCheck %v", err),
			ObjectName:  gcsEvent.Name,
		})
		return err
	}
	now := global.now()
	global.logger.Log(logging.Entry{
		Severity:                  "NOTICE",
		Message:                   "start",
		TriggeringEventID:         check.EventID,
		TriggeringEventTimestamp:  &check.Timestamp,
		TriggeringEventAgeSeconds: check.AgeSeconds,
		Now:                       &now,
		BucketName:                gcsEvent.Bucket,
		ObjectName:                gcsEvent.Name,
	})
	if check.Expired {
		global.logger.Log(logging.Entry{
			Severity:                  "CRITICAL",
			Message:                   "noretry",
			Description:               "event too old",
			TriggeringEventID:         check.EventID,
			TriggeringEventTimestamp:  &check.Timestamp,
			TriggeringEventAgeSeconds: check.AgeSeconds,
			Now:                       &now,
			ObjectName:                gcsEvent.Name,
		})
		return nil
	}
	if gcsEvent.ResourceState == "not_exists" {
		global.logger.Log(logging.Entry{
			Severity:          "NOTICE",
			Message:           "cancel",
			Description:       fmt.Sprintf("deleted object %v", gcsEvent.Name),
			TriggeringEventID: check.EventID,
			ObjectName:        gcsEvent.Name,
		})
		return nil
	}
	if !isCSV(gcsEvent.Name) {
		global.logger.Log(logging.Entry{
			Severity:          "NOTICE",
			Message:           "cancel",
			Description:       fmt.Sprintf("not a csv file %v", gcsEvent.Name),
			TriggeringEventID: check.EventID,
			ObjectName:        gcsEvent.Name,
		})
		return nil
	}

	failed := func(description string, err error) error {
		global.logger.Log(logging.Entry{
			Severity:          "CRITICAL",
			Message:           erm.LogMessage(err),
			Description:       fmt.Sprintf("%s %v", description, err),
			TriggeringEventID: check.EventID,
			BucketName:        gcsEvent.Bucket,
			ObjectName:        gcsEvent.Name,
		})
		return err
	}

	if global.rawLocation.Bucket == "" {
		return failed("raw bucket", fmt.Errorf("%w: raw bucket not set, use settings or %s", erm.ErrConfiguration, rawBucketEnvVar))
	}
	destinationPath, err := makeDestinationPath(gcsEvent.Name, gcsEvent.TimeCreated, global.settings.Partitioned, global.encoder.FileExtension())
	if err != nil {
		return failed("makeDestinationPath", err)
	}
	destinationURI := global.rawLocation.URI(destinationPath)

	csvContent, err := global.source.Read(ctxEvent, gcsEvent.Bucket, gcsEvent.Name)
	if err != nil {
		return failed("source.Read", err)
	}
	data, table, err := Convert(ctxEvent, csvContent, global.encoder)
	if err != nil {
		return failed("Convert", err)
	}
	err = global.destination.Write(ctxEvent, global.rawLocation.Bucket, destinationPath, data, global.encoder.ContentType())
	if err != nil {
		return failed("destination.Write", err)
	}

	sourceURI := fmt.Sprintf("gs://%s/%s", gcsEvent.Bucket, gcsEvent.Name)
	if global.ledger != nil {
		err = global.ledger.Record(ctxEvent, gfs.Conversion{
			SourceURI:        sourceURI,
			SourceGeneration: gcsEvent.Generation,
			DestinationURI:   destinationURI,
			EventID:          check.EventID,
			MicroserviceName: global.settings.MicroserviceName,
			InstanceName:     global.settings.InstanceName,
			RowCount:         int64(table.NumRows()),
			ColumnNames:      table.ColumnNames(),
			Compression:      global.settings.Compression,
			SizeBytes:        int64(len(data)),
			ConvertedAt:      global.now().UTC(),
		})
		if err != nil {
			return failed("ledger.Record", err)
		}
	}
	if global.notifier != nil {
		_, err = global.notifier.Publish(ctxEvent, gps.RawObjectReady{
			SourceURI:      sourceURI,
			DestinationURI: destinationURI,
			RowCount:       int64(table.NumRows()),
			ColumnNames:    table.ColumnNames(),
			EventID:        check.EventID,
		})
		if err != nil {
			return failed("notifier.Publish", err)
		}
	}

	now = global.now()
	global.logger.Log(logging.Entry{
		Severity:          "NOTICE",
		Message:           "finish",
		Description:       fmt.Sprintf("converted %s to %s", sourceURI, destinationURI),
		TriggeringEventID: check.EventID,
		Now:               &now,
		BucketName:        gcsEvent.Bucket,
		ObjectName:        gcsEvent.Name,
		Destination:       destinationURI,
		RowCount:          int64(table.NumRows()),
		ColumnCount:       table.NumColumns(),
		LatencySeconds:    now.Sub(check.Timestamp).Seconds(),
	})
	return nil
}
