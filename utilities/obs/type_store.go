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

package obs

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned by Read when the object does not exist
var ErrObjectNotFound = errors.New("object not found")

// Store reads and writes whole objects.
// Write is a single put of the full content: the object is either fully written or not written.
type Store interface {
	Read(ctx context.Context, bucketName string, objectName string) ([]byte, error)
	Write(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) error
}
