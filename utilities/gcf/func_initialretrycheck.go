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

package gcf

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/functions/metadata"
)

// EventCheck result of the initial check of a triggering event
type EventCheck struct {
	EventID    string
	Timestamp  time.Time
	AgeSeconds float64
	Expired    bool
}

// InitialRetryCheck reads the event metadata and tells if the event expired
// retryTimeOutSeconds <= 0 means events never expire
func InitialRetryCheck(ctxEvent context.Context, retryTimeOutSeconds int64, now time.Time) (check EventCheck, err error) {
	meta, err := metadata.FromContext(ctxEvent)
	if err != nil {
		// Assume an error on the function invoker and try again.
		return check, fmt.Errorf("metadata.FromContext: %w", err)
	}
	check.EventID = meta.EventID
	check.Timestamp = meta.Timestamp
	check.AgeSeconds = now.Sub(meta.Timestamp).Seconds()
	if retryTimeOutSeconds > 0 {
		expiration := meta.Timestamp.Add(time.Duration(retryTimeOutSeconds) * time.Second)
		check.Expired = now.After(expiration)
	}
	return check, nil
}
