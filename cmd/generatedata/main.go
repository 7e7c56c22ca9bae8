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

// Command generatedata generates a batch of customer events and uploads it as a CSV file to the landing bucket
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/crmpipe/services/generatedata"
	"github.com/BrunoReboul/crmpipe/utilities/bkt"
	"github.com/BrunoReboul/crmpipe/utilities/ffo"
	"github.com/BrunoReboul/crmpipe/utilities/obs"
	"github.com/BrunoReboul/crmpipe/utilities/solution"
	"github.com/BrunoReboul/crmpipe/utilities/validater"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

func main() {
	var runSettings generatedata.RunSettings
	flag.IntVar(&runSettings.RowCount, "rows", generatedata.DefaultRowCount, "Number of rows to generate")
	flag.StringVar(&runSettings.Prefix, "prefix", generatedata.DefaultPrefix, "File name prefix, the file is named <prefix>_YYYYMMDD_HHMMSS.csv")
	flag.StringVar(&runSettings.Landing, "landing", "", "Landing bucket e.g. gs://bucket or s3://bucket, default to the landing bucket of the settings file")
	flag.StringVar(&runSettings.LocalFolder, "local", "", "Folder where to keep a local copy of the file, empty for none")
	flag.Int64Var(&runSettings.Seed, "seed", 0, "Random seed, 0 for time based")
	flag.BoolVar(&runSettings.DryRun, "dryrun", false, "Generate without uploading")
	var settingsPath = flag.String("settings", "", "Path to the solution settings YAML file")
	var environmentName = flag.String("environment", "dev", "Environment name")
	flag.Parse()
	log.SetFlags(0)

	ctx := context.Background()
	if runSettings.Landing == "" && *settingsPath != "" {
		var solutionSettings solution.Settings
		if err := ffo.ReadUnmarshalYAML(*settingsPath, &solutionSettings); err != nil {
			log.Fatalf("ERROR - ffo.ReadUnmarshalYAML %s %v", *settingsPath, err)
		}
		solutionSettings.Situate(*environmentName)
		if err := validater.ValidateStruct(solutionSettings, "solutionSettings"); err != nil {
			log.Fatalf("ERROR - %v", err)
		}
		runSettings.Landing = solutionSettings.Hosting.Buckets.Landing.Name
	}
	if runSettings.Seed == 0 {
		runSettings.Seed = time.Now().UnixNano()
	}

	var store obs.Store
	if !runSettings.DryRun {
		location, err := obs.ParseLocation(runSettings.Landing)
		if err != nil {
			log.Fatalf("ERROR - landing bucket %v", err)
		}
		var opts []option.ClientOption
		if location.Provider == obs.ProviderGCS {
			creds, err := google.FindDefaultCredentials(ctx, storage.ScopeReadWrite)
			if err != nil {
				log.Fatalf("ERROR - google.FindDefaultCredentials %v", err)
			}
			opts = append(opts, option.WithCredentials(creds))
		}
		store, err = bkt.Open(ctx, location.Provider, opts...)
		if err != nil {
			log.Fatalf("ERROR - bkt.Open %v", err)
		}
	}

	summary, err := generatedata.Run(ctx, runSettings, store, os.Stdout)
	if closeErr := bkt.Close(store); closeErr != nil {
		log.Printf("WARNING - bkt.Close %v", closeErr)
	}
	if err != nil {
		log.Fatalf("ERROR - generatedata.Run %v", err)
	}
	log.Printf("Done %s %d rows", summary.FileName, summary.RowCount)
}
