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
Package tbl in-memory table parsed from a CSV file

Column kinds are inferred over the non null cells of each column, trying in order int64, float64, bool and falling back to string.
Header names are made unique: blank names become "Unnamed: <index>", duplicates get a ".1", ".2" suffix.
*/
package tbl
