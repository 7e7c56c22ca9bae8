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

/*
Package services structure

All service packages share a consistent structure

## Two functions and one type for event driven services

### `Initialize` function

- Goal
  - Optimize cloud function performance by reducing the invocation latency
- Implementation
  - Is executed once per cloud function instance as a cold start.
  - Cache objects expensive to create, like storage, firestore and pubsub clients
  - Retrieve settings once, from the settings file then from environment variables
  - Cached objects and retrieved settings are exposed in one global variable

### `Global` type

- A `struct` carrying cached objects and retrieved settings built by the `Initialize` function and used by the `EntryPoint` function

### `EntryPoint` function

- Goal
  - Execute operations to be performed each time the cloud function is invoked
- Implementation
  - Is executed on every event triggering the cloud function
  - Uses cached objects and retrieved settings carried by the `Global` variable
  - Logs one JSON entry per step: coldstart, start, cancel, noretry, finish
  - Returns an error only when a retry may succeed

## One `Run` function for command line services

- The command in `cmd/` parses flags, opens the bucket store, then calls `Run`
- `Run` receives its dependencies as arguments so it is tested without cloud access

## Services

- `csv2parquet` converts a CSV object landed in the landing bucket into a Parquet object in the raw bucket
- `generatedata` generates synthetic CRM event records as a CSV file and uploads it to the landing bucket

*/
package services
