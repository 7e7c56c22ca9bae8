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
	"strconv"
	"time"
)

// Record one customer event
type Record struct {
	IDCliente              string
	NumeroTelefono         string
	NombreCliente          string
	Direccion              string
	TipoPlan               string
	ConsumoDatosGB         float64
	EstadoCuenta           string
	FechaRegistro          time.Time
	FechaEvento            time.Time
	TipoEvento             string
	IDDispositivo          string
	MarcaDispositivo       string
	AntiguedadClienteMeses int
	ScoreCrediticio        int
	OrigenCaptacion        string
	IngestionTS            time.Time
	EventUUID              string
	SourceFile             string
}

// Strings returns the CSV fields in Columns order
func (r Record) Strings() []string {
	return []string{
		r.IDCliente,
		r.NumeroTelefono,
		r.NombreCliente,
		r.Direccion,
		r.TipoPlan,
		strconv.FormatFloat(r.ConsumoDatosGB, 'f', -1, 64),
		r.EstadoCuenta,
		r.FechaRegistro.Format(dateFormat),
		formatEventTime(r.FechaEvento),
		r.TipoEvento,
		r.IDDispositivo,
		r.MarcaDispositivo,
		strconv.Itoa(r.AntiguedadClienteMeses),
		strconv.Itoa(r.ScoreCrediticio),
		r.OrigenCaptacion,
		r.IngestionTS.UTC().Format(ingestionTimeFormat),
		r.EventUUID,
		r.SourceFile,
	}
}

// formatEventTime ISO-8601 with offset, microseconds only when not zero
func formatEventTime(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(eventTimeFormatSec)
	}
	return t.Format(eventTimeFormat)
}
