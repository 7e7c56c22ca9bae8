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
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/functions/metadata"
	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/gcs"
	"github.com/BrunoReboul/crmpipe/utilities/gfs"
	"github.com/BrunoReboul/crmpipe/utilities/gps"
	"github.com/BrunoReboul/crmpipe/utilities/obs"
	"github.com/BrunoReboul/crmpipe/utilities/pqt"
)

const sampleCSV = `id_cliente,consumo_datos_gb,score_crediticio,fecha_registro,event_uuid
cust1000,12.5,300,2023-01-15,7c9e6679-7425-40de-944b-e07fc1f90ae7
cust1001,,850,2022-06-01,1b4e28ba-2fa1-41d2-883f-0016d3cca427
cust1002,150,NA,2021-11-30,6fa459ea-ee8a-4ca4-894e-db77e160355e
`

var eventTime = time.Date(2024, 3, 7, 14, 22, 5, 0, time.UTC)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	reads   int
	writes  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Read(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	data, ok := f.objects[bucketName+"/"+objectName]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", obs.ErrObjectNotFound, bucketName, objectName)
	}
	return data, nil
}

func (f *fakeStore) Write(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	f.objects[bucketName+"/"+objectName] = append([]byte(nil), data...)
	return nil
}

type fakeLedger struct {
	conversions []gfs.Conversion
	err         error
}

func (f *fakeLedger) Record(ctx context.Context, conversion gfs.Conversion) error {
	f.conversions = append(f.conversions, conversion)
	return f.err
}

type fakeNotifier struct {
	notifications []gps.RawObjectReady
}

func (f *fakeNotifier) Publish(ctx context.Context, notification gps.RawObjectReady) (string, error) {
	f.notifications = append(f.notifications, notification)
	return fmt.Sprintf("%d", len(f.notifications)), nil
}

type logCapture struct {
	mu    sync.Mutex
	lines []string
}

func (l *logCapture) Println(v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprint(v...))
}

func (l *logCapture) contains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func eventContext(timestamp time.Time) context.Context {
	return metadata.NewContext(context.Background(), &metadata.Metadata{
		EventID:   "4242",
		Timestamp: timestamp,
		EventType: "google.storage.object.finalize",
	})
}

func sampleEvent(name string) gcs.Event {
	return gcs.Event{
		Bucket:         "crm-landing-dev",
		Name:           name,
		TimeCreated:    "2024-03-07T14:22:05.000Z",
		Generation:     "1709821325123456",
		Metageneration: "1",
	}
}

func newTestGlobal(t *testing.T, settings Settings, dependencies Dependencies) *Global {
	t.Helper()
	if dependencies.Now == nil {
		dependencies.Now = func() time.Time { return eventTime.Add(5 * time.Second) }
	}
	global, err := NewGlobal(context.Background(), settings, dependencies)
	if err != nil {
		t.Fatalf("NewGlobal %v", err)
	}
	return global
}

func TestUnitEntryPointConverts(t *testing.T) {
	source := newFakeStore()
	source.objects["crm-landing-dev/data/eventos.csv"] = []byte(sampleCSV)
	destination := newFakeStore()
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{}
	logs := &logCapture{}
	global := newTestGlobal(t, Settings{
		MicroserviceName:      "csv2parquet",
		RawBucket:             "crm-raw-dev",
		Partitioned:           true,
		Compression:           "snappy",
		RetryTimeOutSeconds:   600,
		LedgerCollectionID:    "conversions",
		NotificationTopicName: "rawReady",
	}, Dependencies{
		Source:      source,
		Destination: destination,
		Ledger:      ledger,
		Notifier:    notifier,
		Println:     logs.Println,
	})

	err := EntryPoint(eventContext(eventTime), sampleEvent("data/eventos.csv"), global)
	if err != nil {
		t.Fatalf("EntryPoint %v", err)
	}
	data, ok := destination.objects["crm-raw-dev/year=2024/month=03/day=07/hour=14/eventos.parquet"]
	if !ok {
		t.Fatalf("Want the parquet object in the raw bucket, got %d objects", len(destination.objects))
	}
	table, err := pqt.Decode(data)
	if err != nil {
		t.Fatalf("pqt.Decode %v", err)
	}
	wantColumns := []string{"id_cliente", "consumo_datos_gb", "score_crediticio", "fecha_registro", "event_uuid"}
	if !reflect.DeepEqual(table.ColumnNames(), wantColumns) {
		t.Errorf("Want columns %v got %v", wantColumns, table.ColumnNames())
	}
	if table.NumRows() != 3 {
		t.Errorf("Want 3 rows got %d", table.NumRows())
	}
	if table.Columns[0].Values[2] != "cust1002" {
		t.Errorf("Want row order preserved, got %v", table.Columns[0].Values)
	}
	if table.Columns[1].Values[1] != nil || table.Columns[2].Values[2] != nil {
		t.Errorf("Want nulls preserved, got %v %v", table.Columns[1].Values, table.Columns[2].Values)
	}
	if len(ledger.conversions) != 1 {
		t.Fatalf("Want 1 conversion recorded got %d", len(ledger.conversions))
	}
	conversion := ledger.conversions[0]
	if conversion.DestinationURI != "gs://crm-raw-dev/year=2024/month=03/day=07/hour=14/eventos.parquet" {
		t.Errorf("Unexpected destination URI %s", conversion.DestinationURI)
	}
	if conversion.SourceURI != "gs://crm-landing-dev/data/eventos.csv" {
		t.Errorf("Unexpected source URI %s", conversion.SourceURI)
	}
	if conversion.RowCount != 3 || conversion.EventID != "4242" {
		t.Errorf("Unexpected conversion %+v", conversion)
	}
	if len(notifier.notifications) != 1 {
		t.Errorf("Want 1 notification got %d", len(notifier.notifications))
	}
	if !logs.contains(`"message":"finish"`) {
		t.Errorf("Want a finish log entry, got %v", logs.lines)
	}
}

func TestUnitEntryPointIsIdempotent(t *testing.T) {
	source := newFakeStore()
	source.objects["crm-landing-dev/eventos.csv"] = []byte(sampleCSV)
	destination := newFakeStore()
	global := newTestGlobal(t, Settings{
		RawBucket:   "s3://crm-raw-dev",
		Partitioned: true,
		Compression: "snappy",
	}, Dependencies{
		Source:      source,
		Destination: destination,
		Println:     (&logCapture{}).Println,
	})
	key := "crm-raw-dev/year=2024/month=03/day=07/hour=14/eventos.parquet"
	var outputs [][]byte
	for i := 0; i < 2; i++ {
		if err := EntryPoint(eventContext(eventTime), sampleEvent("eventos.csv"), global); err != nil {
			t.Fatalf("EntryPoint run %d %v", i, err)
		}
		outputs = append(outputs, destination.objects[key])
	}
	if destination.writes != 2 {
		t.Errorf("Want 2 writes got %d", destination.writes)
	}
	if len(destination.objects) != 1 {
		t.Errorf("Want the same destination object overwritten, got %d objects", len(destination.objects))
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Errorf("Want byte identical outputs")
	}
}

func TestUnitEntryPointFlat(t *testing.T) {
	source := newFakeStore()
	source.objects["crm-landing-dev/data/eventos.csv"] = []byte(sampleCSV)
	global := newTestGlobal(t, Settings{RawBucket: "crm-raw-dev"}, Dependencies{
		Source:  source,
		Println: (&logCapture{}).Println,
	})
	if err := EntryPoint(eventContext(eventTime), sampleEvent("data/eventos.csv"), global); err != nil {
		t.Fatalf("EntryPoint %v", err)
	}
	if _, ok := source.objects["crm-raw-dev/data/eventos.parquet"]; !ok {
		t.Errorf("Want data/eventos.parquet written with the source store as destination")
	}
}

func TestUnitEntryPointNoWork(t *testing.T) {
	var testCases = []struct {
		name      string
		event     gcs.Event
		timestamp time.Time
		wantLog   string
	}{
		{
			name:      "notCSV",
			event:     sampleEvent("foo.txt"),
			timestamp: eventTime,
			wantLog:   "not a csv file foo.txt",
		},
		{
			name: "deletedObject",
			event: func() gcs.Event {
				event := sampleEvent("eventos.csv")
				event.ResourceState = "not_exists"
				return event
			}(),
			timestamp: eventTime,
			wantLog:   "deleted object",
		},
		{
			name:      "expiredEvent",
			event:     sampleEvent("eventos.csv"),
			timestamp: eventTime.Add(-time.Hour),
			wantLog:   `"message":"noretry"`,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			source := newFakeStore()
			source.objects["crm-landing-dev/eventos.csv"] = []byte(sampleCSV)
			logs := &logCapture{}
			global := newTestGlobal(t, Settings{
				RawBucket:           "crm-raw-dev",
				Partitioned:         true,
				RetryTimeOutSeconds: 600,
			}, Dependencies{Source: source, Println: logs.Println})
			if err := EntryPoint(eventContext(tc.timestamp), tc.event, global); err != nil {
				t.Fatalf("Want no error got %v", err)
			}
			if source.reads != 0 || source.writes != 0 {
				t.Errorf("Want no storage access got %d reads %d writes", source.reads, source.writes)
			}
			if !logs.contains(tc.wantLog) {
				t.Errorf("Want log containing '%s' got %v", tc.wantLog, logs.lines)
			}
		})
	}
}

func TestUnitEntryPointErrors(t *testing.T) {
	var testCases = []struct {
		name       string
		settings   Settings
		objects    map[string]string
		event      gcs.Event
		wantErr    error
		wantReads  int
		wantWrites int
	}{
		{
			name:     "missingRawBucket",
			settings: Settings{Partitioned: true},
			objects:  map[string]string{"crm-landing-dev/eventos.csv": sampleCSV},
			event:    sampleEvent("eventos.csv"),
			wantErr:  erm.ErrConfiguration,
		},
		{
			name:     "badTimeCreated",
			settings: Settings{RawBucket: "crm-raw-dev", Partitioned: true},
			objects:  map[string]string{"crm-landing-dev/eventos.csv": sampleCSV},
			event: func() gcs.Event {
				event := sampleEvent("eventos.csv")
				event.TimeCreated = ""
				return event
			}(),
			wantErr: erm.ErrEvent,
		},
		{
			name:      "missingSourceObject",
			settings:  Settings{RawBucket: "crm-raw-dev", Partitioned: true},
			event:     sampleEvent("eventos.csv"),
			wantErr:   obs.ErrObjectNotFound,
			wantReads: 1,
		},
		{
			name:      "emptyFile",
			settings:  Settings{RawBucket: "crm-raw-dev", Partitioned: true},
			objects:   map[string]string{"crm-landing-dev/eventos.csv": ""},
			event:     sampleEvent("eventos.csv"),
			wantErr:   erm.ErrParse,
			wantReads: 1,
		},
		{
			name:      "raggedFile",
			settings:  Settings{RawBucket: "crm-raw-dev", Partitioned: true},
			objects:   map[string]string{"crm-landing-dev/eventos.csv": "a,b\n1,2,3\n"},
			event:     sampleEvent("eventos.csv"),
			wantErr:   erm.ErrParse,
			wantReads: 1,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := newFakeStore()
			for key, content := range tc.objects {
				store.objects[key] = []byte(content)
			}
			logs := &logCapture{}
			global := newTestGlobal(t, tc.settings, Dependencies{Source: store, Println: logs.Println})
			err := EntryPoint(eventContext(eventTime), tc.event, global)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Want error %v got %v", tc.wantErr, err)
			}
			if store.reads != tc.wantReads || store.writes != tc.wantWrites {
				t.Errorf("Want %d reads %d writes got %d reads %d writes", tc.wantReads, tc.wantWrites, store.reads, store.writes)
			}
			if !logs.contains(`"severity":"CRITICAL"`) || !logs.contains(tc.event.Name) {
				t.Errorf("Want a critical log entry naming the object got %v", logs.lines)
			}
		})
	}
}

func TestUnitEntryPointLedgerFailureIsReturned(t *testing.T) {
	source := newFakeStore()
	source.objects["crm-landing-dev/eventos.csv"] = []byte(sampleCSV)
	boom := errors.New("firestore unavailable")
	global := newTestGlobal(t, Settings{RawBucket: "crm-raw-dev", LedgerCollectionID: "conversions"}, Dependencies{
		Source:  source,
		Ledger:  &fakeLedger{err: boom},
		Println: (&logCapture{}).Println,
	})
	if err := EntryPoint(eventContext(eventTime), sampleEvent("eventos.csv"), global); !errors.Is(err, boom) {
		t.Errorf("Want the ledger error got %v", err)
	}
}

func TestUnitEntryPointNoMetadata(t *testing.T) {
	store := newFakeStore()
	global := newTestGlobal(t, Settings{RawBucket: "crm-raw-dev"}, Dependencies{Source: store, Println: (&logCapture{}).Println})
	if err := EntryPoint(context.Background(), sampleEvent("eventos.csv"), global); err == nil {
		t.Errorf("Want an error when the event has no metadata")
	}
	if store.reads != 0 {
		t.Errorf("Want no storage access got %d reads", store.reads)
	}
}

func TestUnitNewGlobalErrors(t *testing.T) {
	var testCases = []struct {
		name         string
		settings     Settings
		dependencies Dependencies
	}{
		{
			name:     "missingSource",
			settings: Settings{RawBucket: "crm-raw-dev"},
		},
		{
			name:         "invalidRawBucket",
			settings:     Settings{RawBucket: "ftp://crm-raw-dev"},
			dependencies: Dependencies{Source: newFakeStore()},
		},
		{
			name:         "invalidCompression",
			settings:     Settings{RawBucket: "crm-raw-dev", Compression: "lz4"},
			dependencies: Dependencies{Source: newFakeStore()},
		},
		{
			name:         "ledgerCollectionWithoutLedger",
			settings:     Settings{RawBucket: "crm-raw-dev", LedgerCollectionID: "conversions"},
			dependencies: Dependencies{Source: newFakeStore()},
		},
		{
			name:         "topicWithoutNotifier",
			settings:     Settings{RawBucket: "crm-raw-dev", NotificationTopicName: "rawReady"},
			dependencies: Dependencies{Source: newFakeStore()},
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewGlobal(context.Background(), tc.settings, tc.dependencies)
			if !errors.Is(err, erm.ErrConfiguration) {
				t.Errorf("Want erm.ErrConfiguration got %v", err)
			}
		})
	}
}
