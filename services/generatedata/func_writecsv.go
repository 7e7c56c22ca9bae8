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

package generatedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// MakeFileName returns <prefix>_YYYYMMDD_HHMMSS.csv
func MakeFileName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, t.Format(fileNameTimeFormat))
}

// WriteCSV writes the header and one line per record
func WriteCSV(w io.Writer, records []Record) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(Columns); err != nil {
		return fmt.Errorf("csvWriter.Write header %w", err)
	}
	for i, record := range records {
		if err := csvWriter.Write(record.Strings()); err != nil {
			return fmt.Errorf("csvWriter.Write record %d %w", i, err)
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("csvWriter.Flush %w", err)
	}
	return nil
}
