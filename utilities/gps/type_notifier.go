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

package gps

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// RawObjectReady notification payload
type RawObjectReady struct {
	SourceURI      string   `json:"source_uri"`
	DestinationURI string   `json:"destination_uri"`
	RowCount       int64    `json:"row_count"`
	ColumnNames    []string `json:"column_names"`
	EventID        string   `json:"event_id,omitempty"`
}

// Notifier publishes notifications on a topic
type Notifier struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewNotifier creates the pubsub client, to be done once at cold start
func NewNotifier(ctx context.Context, projectID string, topicName string, opts ...option.ClientOption) (*Notifier, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("pubsub.NewClient %w", err)
	}
	return &Notifier{client: client, topic: client.Topic(topicName)}, nil
}

// MakeMessage builds the pubsub message, attributes allow subscription filters
func MakeMessage(notification RawObjectReady) (*pubsub.Message, error) {
	data, err := json.Marshal(notification)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal %w", err)
	}
	return &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"sourceURI":      notification.SourceURI,
			"destinationURI": notification.DestinationURI,
			"rowCount":       strconv.FormatInt(notification.RowCount, 10),
		},
	}, nil
}

// Publish publishes and waits for the server ID, no retry on pubsub publish as already implemented in the GO client
func (n *Notifier) Publish(ctx context.Context, notification RawObjectReady) (id string, err error) {
	message, err := MakeMessage(notification)
	if err != nil {
		return "", err
	}
	id, err = n.topic.Publish(ctx, message).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("topic.Publish %s %w", n.topic.ID(), err)
	}
	return id, nil
}

// Close flushes pending messages and releases the client
func (n *Notifier) Close() error {
	n.topic.Stop()
	return n.client.Close()
}
