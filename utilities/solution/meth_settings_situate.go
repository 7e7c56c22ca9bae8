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

package solution

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: projectID, landing and raw bucket names
// A value missing for the environment leaves the current value unchanged
func (settings *Settings) Situate(environmentName string) {
	if projectID, ok := settings.Hosting.ProjectIDs[environmentName]; ok {
		settings.Hosting.ProjectID = projectID
	}
	if name, ok := settings.Hosting.Buckets.Landing.Names[environmentName]; ok {
		settings.Hosting.Buckets.Landing.Name = name
	}
	if name, ok := settings.Hosting.Buckets.Raw.Names[environmentName]; ok {
		settings.Hosting.Buckets.Raw.Name = name
	}
}
