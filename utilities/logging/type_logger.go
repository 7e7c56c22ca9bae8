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

package logging

import "log"

// Logger stamps the microservice identity on each entry
type Logger struct {
	MicroserviceName string
	InstanceName     string
	Environment      string
	// Println defaults to log.Println
	Println func(v ...interface{})
}

// Log prints one entry completed with the logger identity
func (l Logger) Log(entry Entry) {
	entry.MicroserviceName = l.MicroserviceName
	entry.InstanceName = l.InstanceName
	entry.Environment = l.Environment
	if l.Println == nil {
		log.Println(entry)
		return
	}
	l.Println(entry)
}
