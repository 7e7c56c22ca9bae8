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

package generatedata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/ffo"
	"github.com/BrunoReboul/crmpipe/utilities/obs"
)

// RunSettings settings of one generator run
type RunSettings struct {
	RowCount int
	Prefix   string
	// Landing gs://bucket, s3://bucket or bucket, required unless DryRun
	Landing string
	// LocalFolder keeps a local copy of the file when not empty
	LocalFolder string
	DryRun      bool
	Seed        int64
	// Now defaults to time.Now
	Now func() time.Time
}

// Summary outcome of a run
type Summary struct {
	FileName  string
	RowCount  int
	SizeBytes int
	LocalPath string
	URI       string
}

// Run generates one batch file, optionally keeps a local copy, uploads it once to the landing bucket and prints a summary with a sample
func Run(ctx context.Context, settings RunSettings, store obs.Store, out io.Writer) (summary Summary, err error) {
	var landing obs.Location
	if !settings.DryRun {
		landing, err = obs.ParseLocation(settings.Landing)
		if err != nil {
			return summary, err
		}
		if store == nil {
			return summary, fmt.Errorf("%w: no store to upload to %s", erm.ErrConfiguration, landing)
		}
	}
	if settings.Prefix == "" {
		settings.Prefix = DefaultPrefix
	}
	now := settings.Now
	if now == nil {
		now = time.Now
	}

	summary.FileName = MakeFileName(settings.Prefix, now())
	fmt.Fprintln(out, "Generating test data...")
	records, err := NewGenerator(settings.Seed, now).Generate(settings.RowCount, summary.FileName)
	if err != nil {
		return summary, err
	}
	var buffer bytes.Buffer
	if err = WriteCSV(&buffer, records); err != nil {
		return summary, err
	}
	summary.RowCount = len(records)
	summary.SizeBytes = buffer.Len()
	fmt.Fprintf(out, "Generated %d rows, %d bytes, file %s\n", summary.RowCount, summary.SizeBytes, summary.FileName)

	if settings.LocalFolder != "" {
		summary.LocalPath, err = ffo.WriteLocalCopy(settings.LocalFolder, summary.FileName, buffer.Bytes())
		if err != nil {
			return summary, fmt.Errorf("ffo.WriteLocalCopy %w", err)
		}
		fmt.Fprintf(out, "Local copy %s\n", summary.LocalPath)
	}

	sampleSize := sampleRowCount
	if len(records) < sampleSize {
		sampleSize = len(records)
	}
	fmt.Fprintln(out, "\nSample of the generated data:")
	if err = WriteCSV(out, records[:sampleSize]); err != nil {
		return summary, err
	}

	if settings.DryRun {
		fmt.Fprintln(out, "\nDry run, no upload")
		return summary, nil
	}
	fmt.Fprintf(out, "\nUploading to %s...\n", landing)
	if err = store.Write(ctx, landing.Bucket, summary.FileName, buffer.Bytes(), csvContentType); err != nil {
		return summary, fmt.Errorf("upload %s %w", landing.URI(summary.FileName), err)
	}
	summary.URI = landing.URI(summary.FileName)
	fmt.Fprintf(out, "Uploaded %s, the pipeline should now be triggered\n", summary.URI)
	return summary, nil
}
