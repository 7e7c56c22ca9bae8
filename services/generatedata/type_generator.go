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
	"fmt"
	"math"
	"strings"
	"time"
	_ "time/tzdata" // America/Lima on hosts without a zoneinfo database

	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Generator fabricates records
type Generator struct {
	faker    *gofakeit.Faker
	now      func() time.Time
	location *time.Location
}

// fakerReader feeds uuid generation from the seeded faker
type fakerReader struct {
	faker *gofakeit.Faker
}

func (r fakerReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.faker.Uint8()
	}
	return len(p), nil
}

// NewGenerator returns a generator, same seed and clock same records. now defaults to time.Now
func NewGenerator(seed int64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	location, err := time.LoadLocation(eventTimeZone)
	if err != nil {
		location = time.FixedZone("-05", -5*3600)
	}
	return &Generator{
		faker:    gofakeit.New(uint64(seed)),
		now:      now,
		location: location,
	}
}

// Generate returns rowCount records, all tagged with sourceFileName
func (g *Generator) Generate(rowCount int, sourceFileName string) ([]Record, error) {
	if rowCount < 0 {
		return nil, fmt.Errorf("%w: row count %d is negative", erm.ErrInvalidArgument, rowCount)
	}
	records := make([]Record, rowCount)
	for i := range records {
		records[i] = g.makeRecord(i, sourceFileName)
	}
	return records, nil
}

func (g *Generator) makeRecord(i int, sourceFileName string) Record {
	now := g.now()
	today := civilDate(now)
	fechaRegistro := today.AddDate(0, 0, -g.faker.IntRange(0, registrationDays))
	fechaEvento := g.faker.DateRange(now.Add(-24*time.Hour), now).In(g.location).Truncate(time.Microsecond)
	eventUUID, err := uuid.NewRandomFromReader(fakerReader{faker: g.faker})
	if err != nil {
		eventUUID = uuid.New()
	}
	return Record{
		IDCliente:              fmt.Sprintf("cust%d", 1000+i),
		NumeroTelefono:         fmt.Sprintf("519%d", g.faker.IntRange(10000000, 99999999)),
		NombreCliente:          g.faker.Name(),
		Direccion:              strings.ReplaceAll(g.faker.Address().Address, "\n", ", "),
		TipoPlan:               g.faker.RandomString(tiposDePlan),
		ConsumoDatosGB:         math.Round(g.faker.Float64Range(0.5, 150.0)*100) / 100,
		EstadoCuenta:           g.faker.RandomString(estadosDeCuenta),
		FechaRegistro:          fechaRegistro,
		FechaEvento:            fechaEvento,
		TipoEvento:             g.faker.RandomString(tiposDeEvento),
		IDDispositivo:          fmt.Sprintf("%d%d%d", g.faker.IntRange(100000, 999999), g.faker.IntRange(100000, 999999), g.faker.IntRange(100, 999)),
		MarcaDispositivo:       g.faker.RandomString(marcasDispositivo),
		AntiguedadClienteMeses: int(today.Sub(fechaRegistro).Hours()/24) / 30,
		ScoreCrediticio:        g.faker.IntRange(300, 850),
		OrigenCaptacion:        g.faker.RandomString(origenesCaptacion),
		IngestionTS:            now.UTC().Truncate(time.Microsecond),
		EventUUID:              eventUUID.String(),
		SourceFile:             sourceFileName,
	}
}

// civilDate midnight UTC of the clock date, days are then exact multiples of 24h
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
