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

package s3s

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BrunoReboul/crmpipe/utilities/obs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store reads and writes whole objects in S3 buckets
type Store struct {
	client s3API
}

// New wraps an s3 client
func New(client s3API) *Store {
	return &Store{client: client}
}

// NewStore loads the default AWS configuration (env, shared config, instance role) and creates an s3 client
func NewStore(ctx context.Context) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("config.LoadDefaultConfig %w", err)
	}
	return New(s3.NewFromConfig(cfg)), nil
}

// Read returns the full content of an object
func (s *Store) Read(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	key := strings.TrimLeft(objectName, "/")
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: s3://%s/%s", obs.ErrObjectNotFound, bucketName, key)
		}
		return nil, fmt.Errorf("s3.GetObject s3://%s/%s %w", bucketName, key, err)
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll s3://%s/%s %w", bucketName, key, err)
	}
	return data, nil
}

// Write puts the object in one request
func (s *Store) Write(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) error {
	key := strings.TrimLeft(objectName, "/")
	if key == "" {
		return fmt.Errorf("empty key")
	}
	in := &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3.PutObject s3://%s/%s %w", bucketName, key, err)
	}
	return nil
}
