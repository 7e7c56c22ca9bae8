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
Package csv2parquet converts CSV files landing in a bucket to Parquet files in the raw bucket

Triggered by GCS
- Object finalize events on the landing bucket.

Instances
- One per landing bucket.

Output
- One Parquet object per CSV object, written to the raw bucket (gs:// or s3://)
- Path partitioned by the object creation time year=YYYY/month=MM/day=DD/hour=HH/<name>.parquet, or the same relative path when not partitioned.
- Optional: a conversion document in Firestore, a notification on a Pub/Sub topic.

Cardinality
- One to one: one CSV object, one Parquet object. Reprocessing an object overwrites the same destination with the same bytes.

Automatic retrying
- No internal retry: failures are returned so the platform redelivers the event. Expired events are dropped.

Implementation notes
- Objects are read and written in full, no streaming.
- Column kinds are inferred from the CSV content, all Parquet columns are optional.
*/
package csv2parquet
