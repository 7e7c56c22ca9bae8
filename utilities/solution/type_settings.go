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

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		ProjectID  string            `yaml:"projectID,omitempty"`
		ProjectIDs map[string]string `yaml:"projectIDs"`
		GCF        struct {
			Region string
		}
		Buckets struct {
			Landing struct {
				Name  string `yaml:",omitempty" valid:"isLocation"`
				Names map[string]string
			}
			Raw struct {
				Name  string `yaml:",omitempty" valid:"isLocation"`
				Names map[string]string
			}
		}
		Pubsub struct {
			TopicNames struct {
				RawReady string `yaml:"rawReady"`
			} `yaml:"topicNames"`
		}
		FireStore struct {
			CollectionIDs struct {
				Conversions string
			} `yaml:"collectionIDs"`
		}
	}
}
