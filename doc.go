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
Package crmpipe CRM landing to raw pipeline

## What

Two pieces of glue code between a CRM source and a data lake:

1. generatedata fabricates customer telecom events and uploads them as a CSV batch file to the landing bucket
2. csv2parquet, a Cloud Function triggered by the landing bucket, converts each CSV file to Parquet and writes it to the raw bucket, partitioned by the object creation hour

## Why

- Parquet is columnar, typed and compressed: downstream queries read less
- Partitioning by year/month/day/hour lets downstream jobs pick only the new files

## How

- cmd/generatedata: the generator command line
- functions/csv2parquet: the cloud function wrapper
- services: generatedata and csv2parquet logic
- utilities: storage (gcs, s3s, obs, bkt), table and parquet codecs (tbl, pqt), settings (solution, ffo, validater), logging, errors (erm), Firestore ledger (gfs), Pub/Sub notification (gps), Cloud Functions helpers (gcf)
*/
package crmpipe
