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
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/pqt"
)

// GetDestinationPath derives the raw object name from the landing object name
// flat: same relative path, extension replaced by .parquet
// partitioned: year=YYYY/month=MM/day=DD/hour=HH/<basename>.parquet using timeCreated in UTC
func GetDestinationPath(objectName string, timeCreated string, partitioned bool) (string, error) {
	return makeDestinationPath(objectName, timeCreated, partitioned, pqt.Encoder{}.FileExtension())
}

func makeDestinationPath(objectName string, timeCreated string, partitioned bool, extension string) (string, error) {
	if strings.TrimSpace(objectName) == "" || strings.HasSuffix(objectName, "/") {
		return "", fmt.Errorf("%w: object name '%s' is not a file", erm.ErrEvent, objectName)
	}
	destination := strings.TrimSuffix(objectName, path.Ext(objectName)) + extension
	if !partitioned {
		return destination, nil
	}
	created, err := time.Parse(time.RFC3339Nano, timeCreated)
	if err != nil {
		return "", fmt.Errorf("%w: timeCreated '%s' %v", erm.ErrEvent, timeCreated, err)
	}
	created = created.UTC()
	return fmt.Sprintf("year=%04d/month=%02d/day=%02d/hour=%02d/%s",
		created.Year(), created.Month(), created.Day(), created.Hour(), path.Base(destination)), nil
}

// isCSV true when the object name extension is .csv whatever the case
func isCSV(objectName string) bool {
	return strings.EqualFold(path.Ext(objectName), csvExtension)
}
