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

package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/crmpipe/utilities/obs"
	"google.golang.org/api/option"
)

// Store reads and writes whole objects in Google Cloud Storage buckets
type Store struct {
	client *storage.Client
}

// NewStore creates a storage client, to be done once at cold start
func NewStore(ctx context.Context, opts ...option.ClientOption) (*Store, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient %w", err)
	}
	return &Store{client: client}, nil
}

// Read returns the full content of an object
func (s *Store) Read(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	reader, err := s.client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, fmt.Errorf("%w: gs://%s/%s", obs.ErrObjectNotFound, bucketName, objectName)
		}
		return nil, fmt.Errorf("storageObject.NewReader gs://%s/%s %w", bucketName, objectName, err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll gs://%s/%s %w", bucketName, objectName, err)
	}
	return data, nil
}

// Write uploads data, the object is committed on writer close only
func (s *Store) Write(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	writer := s.client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := writer.Write(data); err != nil {
		// cancelling the context aborts the upload
		cancel()
		_ = writer.Close()
		return fmt.Errorf("storageObject.NewWriter.Write gs://%s/%s %w", bucketName, objectName, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("storageObject.NewWriter.Close gs://%s/%s %w", bucketName, objectName, err)
	}
	return nil
}

// Close releases the client
func (s *Store) Close() error {
	return s.client.Close()
}
