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

const (
	// DefaultRowCount rows per batch file
	DefaultRowCount = 5000
	// DefaultPrefix batch file name prefix
	DefaultPrefix = "eventos_clientes"

	eventTimeZone       = "America/Lima"
	dateFormat          = "2006-01-02"
	eventTimeFormat     = "2006-01-02T15:04:05.000000-07:00"
	eventTimeFormatSec  = "2006-01-02T15:04:05-07:00"
	ingestionTimeFormat = "2006-01-02T15:04:05.000000Z"
	fileNameTimeFormat  = "20060102_150405"
	registrationDays    = 3 * 365
	sampleRowCount      = 5
	csvContentType      = "text/csv"
)
