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
	"fmt"

	"github.com/BrunoReboul/crmpipe/utilities/pqt"
	"github.com/BrunoReboul/crmpipe/utilities/tbl"
)

// Convert parses the CSV content and encodes it to Parquet
func Convert(ctx context.Context, csvContent []byte, encoder pqt.Encoder) (data []byte, table tbl.Table, err error) {
	table, err = tbl.ParseCSV(bytes.NewReader(csvContent))
	if err != nil {
		return nil, table, fmt.Errorf("tbl.ParseCSV %w", err)
	}
	data, err = encoder.Encode(ctx, table)
	if err != nil {
		return nil, table, fmt.Errorf("encoder.Encode %w", err)
	}
	return data, table, nil
}
