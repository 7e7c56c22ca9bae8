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
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// Ledger records conversions in a Firestore collection
type Ledger struct {
	client       *firestore.Client
	collectionID string
}

// NewLedger creates the firestore client, to be done once at cold start
func NewLedger(ctx context.Context, projectID string, collectionID string, opts ...option.ClientOption) (*Ledger, error) {
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient %w", err)
	}
	return &Ledger{client: client, collectionID: collectionID}, nil
}

// Record sets the conversion document, a reprocessed source overwrites its document
func (l *Ledger) Record(ctx context.Context, conversion Conversion) error {
	documentPath := fmt.Sprintf("%s/%s", l.collectionID, DocumentID(conversion.SourceURI))
	if _, err := l.client.Doc(documentPath).Set(ctx, conversion); err != nil {
		return fmt.Errorf("firestoreClient.Doc(documentPath).Set %s %w", documentPath, err)
	}
	return nil
}

// Close releases the client
func (l *Ledger) Close() error {
	return l.client.Close()
}
