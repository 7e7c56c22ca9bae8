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

package obs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
)

// Provider object storage provider
type Provider string

// Supported providers, the value is the URI scheme
const (
	ProviderGCS Provider = "gs"
	ProviderS3  Provider = "s3"
)

var bucketNameRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{1,220}[a-z0-9]$`)

// Location a bucket on a given provider
type Location struct {
	Provider Provider
	Bucket   string
}

// ParseLocation parses gs://bucket, s3://bucket or a bare bucket name
func ParseLocation(s string) (location Location, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return location, fmt.Errorf("%w: empty bucket location", erm.ErrConfiguration)
	}
	location.Provider = ProviderGCS
	if i := strings.Index(s, "://"); i >= 0 {
		location.Provider = Provider(strings.ToLower(s[:i]))
		s = s[i+3:]
	}
	switch location.Provider {
	case ProviderGCS, ProviderS3:
	default:
		return Location{}, fmt.Errorf("%w: unsupported storage provider '%s'", erm.ErrConfiguration, location.Provider)
	}
	location.Bucket = strings.TrimSuffix(s, "/")
	if !bucketNameRegexp.MatchString(location.Bucket) {
		return Location{}, fmt.Errorf("%w: invalid bucket name '%s'", erm.ErrConfiguration, location.Bucket)
	}
	return location, nil
}

// String returns the location URI, e.g. gs://bucket
func (location Location) String() string {
	return fmt.Sprintf("%s://%s", location.Provider, location.Bucket)
}

// URI returns the URI of an object in this location
func (location Location) URI(objectName string) string {
	return fmt.Sprintf("%s/%s", location.String(), objectName)
}
