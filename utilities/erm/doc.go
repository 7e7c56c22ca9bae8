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
Package erm error management: error categories shared by the services and the transient error classification

Categories

- ErrConfiguration missing or invalid settings, fatal, raised before any storage access.

- ErrInvalidArgument caller provided an unusable argument.

- ErrEvent the triggering event payload cannot be used.

- ErrParse the source content cannot be parsed.

- ErrEncode the table cannot be encoded.

Errors are wrapped with fmt.Errorf %w so errors.Is works on the returned error.

Transient

IsTransient tells a server side 5xx from other errors. It only changes the logged message, the caller owns the retry policy.
*/
package erm
