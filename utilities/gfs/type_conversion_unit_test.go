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

package gfs

import (
	"strings"
	"testing"
)

func TestUnitDocumentID(t *testing.T) {
	var testCases = []struct {
		sourceURI string
		want      string
	}{
		{
			sourceURI: "gs://crm-landing-dev/eventos_clientes_20240307_142205.csv",
			want:      "gs_crm-landing-dev|eventos_clientes_20240307_142205.csv",
		},
		{
			sourceURI: "gs://crm-landing-dev/data/2024/eventos.csv",
			want:      "gs_crm-landing-dev|data|2024|eventos.csv",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.sourceURI, func(t *testing.T) {
			t.Parallel()
			got := DocumentID(tc.sourceURI)
			if got != tc.want {
				t.Errorf("Want '%s' got '%s'", tc.want, got)
			}
			if strings.Contains(got, "/") {
				t.Errorf("Document ID should not contain a slash '%s'", got)
			}
		})
	}
}
