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

package csv2parquet

import (
	"github.com/BrunoReboul/crmpipe/utilities/solution"
)

// InstanceDeployment settings file deployed with a csv2parquet function instance
type InstanceDeployment struct {
	Core struct {
		EnvironmentName  string            `yaml:"environmentName"`
		InstanceName     string            `yaml:"instanceName"`
		ServiceName      string            `yaml:"serviceName"`
		SolutionSettings solution.Settings `yaml:"solutionSettings"`
	}
	Settings struct {
		Service struct {
			GCF struct {
				RetryTimeOutSeconds int64 `yaml:"retryTimeOutSeconds"`
			}
		}
		Instance struct {
			Partitioned bool
			Compression string
		}
	}
}

// newInstanceDeployment returns the defaults applied when the settings file omits a value
func newInstanceDeployment() (instanceDeployment InstanceDeployment) {
	instanceDeployment.Core.ServiceName = "csv2parquet"
	instanceDeployment.Core.EnvironmentName = "dev"
	instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds = 600
	instanceDeployment.Settings.Instance.Partitioned = true
	instanceDeployment.Settings.Instance.Compression = defaultCompression
	return instanceDeployment
}

// Situate resolves the environment dependent values and returns the pipeline settings
func (instanceDeployment *InstanceDeployment) Situate() Settings {
	instanceDeployment.Core.SolutionSettings.Situate(instanceDeployment.Core.EnvironmentName)
	hosting := instanceDeployment.Core.SolutionSettings.Hosting
	return Settings{
		MicroserviceName:      instanceDeployment.Core.ServiceName,
		InstanceName:          instanceDeployment.Core.InstanceName,
		Environment:           instanceDeployment.Core.EnvironmentName,
		ProjectID:             hosting.ProjectID,
		RawBucket:             hosting.Buckets.Raw.Name,
		Partitioned:           instanceDeployment.Settings.Instance.Partitioned,
		Compression:           instanceDeployment.Settings.Instance.Compression,
		RetryTimeOutSeconds:   instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds,
		LedgerCollectionID:    hosting.FireStore.CollectionIDs.Conversions,
		NotificationTopicName: hosting.Pubsub.TopicNames.RawReady,
	}
}
