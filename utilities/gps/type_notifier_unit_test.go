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

package gps

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestUnitMakeMessage(t *testing.T) {
	notification := RawObjectReady{
		SourceURI:      "gs://crm-landing-dev/eventos_clientes_20240307_142205.csv",
		DestinationURI: "gs://crm-raw-dev/year=2024/month=03/day=07/hour=14/eventos_clientes_20240307_142205.parquet",
		RowCount:       5000,
		ColumnNames:    []string{"id_cliente", "event_uuid"},
		EventID:        "1234567890",
	}
	message, err := MakeMessage(notification)
	if err != nil {
		t.Fatalf("MakeMessage %v", err)
	}
	wantAttributes := map[string]string{
		"sourceURI":      notification.SourceURI,
		"destinationURI": notification.DestinationURI,
		"rowCount":       "5000",
	}
	if !reflect.DeepEqual(message.Attributes, wantAttributes) {
		t.Errorf("Want attributes %v got %v", wantAttributes, message.Attributes)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(message.Data, &payload); err != nil {
		t.Fatalf("json.Unmarshal %v", err)
	}
	for _, key := range []string{"source_uri", "destination_uri", "row_count", "column_names", "event_id"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("Want key '%s' in payload %s", key, string(message.Data))
		}
	}
}
