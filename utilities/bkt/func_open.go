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

package bkt

import (
	"context"
	"fmt"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/gcs"
	"github.com/BrunoReboul/crmpipe/utilities/obs"
	"github.com/BrunoReboul/crmpipe/utilities/s3s"
	"google.golang.org/api/option"
)

// Open creates the store for a provider, client options apply to Google Cloud Storage only
func Open(ctx context.Context, provider obs.Provider, opts ...option.ClientOption) (obs.Store, error) {
	switch provider {
	case obs.ProviderGCS:
		store, err := gcs.NewStore(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	case obs.ProviderS3:
		store, err := s3s.NewStore(ctx)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: unsupported storage provider '%s'", erm.ErrConfiguration, provider)
	}
}
