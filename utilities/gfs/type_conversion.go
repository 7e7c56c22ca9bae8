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

package gfs

import (
	"strings"
	"time"
)

// Conversion ledger document
type Conversion struct {
	SourceURI        string    `firestore:"sourceURI"`
	SourceGeneration string    `firestore:"sourceGeneration,omitempty"`
	DestinationURI   string    `firestore:"destinationURI"`
	EventID          string    `firestore:"eventID,omitempty"`
	MicroserviceName string    `firestore:"microserviceName,omitempty"`
	InstanceName     string    `firestore:"instanceName,omitempty"`
	RowCount         int64     `firestore:"rowCount"`
	ColumnNames      []string  `firestore:"columnNames"`
	Compression      string    `firestore:"compression,omitempty"`
	SizeBytes        int64     `firestore:"sizeBytes"`
	ConvertedAt      time.Time `firestore:"convertedAt"`
}

// DocumentID derives the document ID from the source URI, document IDs cannot contain a slash
func DocumentID(sourceURI string) string {
	id := strings.Replace(sourceURI, "://", "_", 1)
	return strings.Replace(id, "/", "|", -1)
}
