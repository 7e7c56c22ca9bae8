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
	"errors"
	"reflect"
	"testing"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/pqt"
)

func TestUnitConvert(t *testing.T) {
	data, table, err := Convert(context.Background(), []byte(sampleCSV), pqt.Encoder{Compression: "snappy"})
	if err != nil {
		t.Fatalf("Convert %v", err)
	}
	if table.NumRows() != 3 || table.NumColumns() != 5 {
		t.Errorf("Want 3 rows 5 columns got %d rows %d columns", table.NumRows(), table.NumColumns())
	}
	decoded, err := pqt.Decode(data)
	if err != nil {
		t.Fatalf("pqt.Decode %v", err)
	}
	if decoded.NumRows() != table.NumRows() {
		t.Errorf("Want %d rows got %d", table.NumRows(), decoded.NumRows())
	}

	_, _, err = Convert(context.Background(), []byte("a,b\n1,2,3\n"), pqt.Encoder{})
	if !errors.Is(err, erm.ErrParse) {
		t.Errorf("Want erm.ErrParse got %v", err)
	}
	_, _, err = Convert(context.Background(), []byte(sampleCSV), pqt.Encoder{Compression: "brotli"})
	if !errors.Is(err, erm.ErrEncode) {
		t.Errorf("Want erm.ErrEncode got %v", err)
	}
}

func TestUnitConvertKeepsQuotedHeaders(t *testing.T) {
	data, _, err := Convert(context.Background(), []byte("\"a,b\",c,-\n1,2,3\n"), pqt.Encoder{Compression: "snappy"})
	if err != nil {
		t.Fatalf("Convert %v", err)
	}
	decoded, err := pqt.Decode(data)
	if err != nil {
		t.Fatalf("pqt.Decode %v", err)
	}
	want := []string{"a,b", "c", "-"}
	if !reflect.DeepEqual(decoded.ColumnNames(), want) {
		t.Errorf("Want columns %q got %q", want, decoded.ColumnNames())
	}
	if decoded.NumRows() != 1 || decoded.Columns[0].Values[0] != int64(1) {
		t.Errorf("Want one row starting with 1 got %v", decoded.Columns)
	}
}

func TestUnitConvertCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Convert(ctx, []byte(sampleCSV), pqt.Encoder{Compression: "snappy"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Want context.Canceled got %v", err)
	}
}
