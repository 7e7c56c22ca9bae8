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

import (
	"log"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitSituate(t *testing.T) {
	type testcases []struct {
		Name        string
		Settings    Settings
		Environment string
		Want        map[string]string
	}
	var testCases testcases

	yamlBytes := []byte(`---
- name: set1
  settings:
    hosting:
      projectIDs:
        dev: crm-data-dev
        prd: crm-data-prd
      buckets:
        landing:
          names:
            dev: crm-landing-dev
            prd: crm-landing-prd
        raw:
          names:
            dev: gs://crm-raw-dev
            prd: s3://crm-raw-prd
  environment: dev
  want:
    projectID: crm-data-dev
    landingBucketName: crm-landing-dev
    rawBucketName: gs://crm-raw-dev
- name: set2
  settings:
    hosting:
      projectID: crm-data-shared
      buckets:
        raw:
          name: crm-raw-shared
          names:
            prd: s3://crm-raw-prd
  environment: prd
  want:
    projectID: crm-data-shared
    landingBucketName: ""
    rawBucketName: s3://crm-raw-prd
- name: set3
  settings:
    hosting:
      buckets:
        raw:
          name: crm-raw-shared
          names:
            prd: s3://crm-raw-prd
  environment: dev
  want:
    rawBucketName: crm-raw-shared`)

	err := yaml.Unmarshal(yamlBytes, &testCases)
	if err != nil {
		log.Fatalf("Unable to unmarshal yaml test data %v", err)
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		tc.Settings.Situate(tc.Environment)
		for key, wantedValue := range tc.Want {
			key := key
			wantedValue := wantedValue
			testName := tc.Name + "-" + key
			t.Run(testName, func(t *testing.T) {
				t.Parallel()
				switch key {
				case "projectID":
					if wantedValue != tc.Settings.Hosting.ProjectID {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.Hosting.ProjectID)
					}
				case "landingBucketName":
					if wantedValue != tc.Settings.Hosting.Buckets.Landing.Name {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.Hosting.Buckets.Landing.Name)
					}
				case "rawBucketName":
					if wantedValue != tc.Settings.Hosting.Buckets.Raw.Name {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.Hosting.Buckets.Raw.Name)
					}
				default:
					t.Errorf("Unmanaged key '%s'", key)
				}
			})
		}
	}
}
