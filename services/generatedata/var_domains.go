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

// Columns CSV header, in file order
var Columns = []string{
	"id_cliente",
	"numero_telefono",
	"nombre_cliente",
	"direccion",
	"tipo_plan",
	"consumo_datos_gb",
	"estado_cuenta",
	"fecha_registro",
	"fecha_evento",
	"tipo_evento",
	"id_dispositivo",
	"marca_dispositivo",
	"antiguedad_cliente_meses",
	"score_crediticio",
	"origen_captacion",
	"ingestion_ts",
	"event_uuid",
	"source_file",
}

var tiposDePlan = []string{"Prepago", "Plan 50GB", "Plan 100GB", "Plan Ilimitado"}

// Activo is repeated to weight it
var estadosDeCuenta = []string{"Activo", "Activo", "Activo", "Suspendido por deuda", "Cancelado"}

var tiposDeEvento = []string{"actualizacion_consumo", "cambio_plan", "cambio_direccion", "actualizacion_estado"}

var marcasDispositivo = []string{"Samsung", "Apple", "Xiaomi", "Motorola", "Huawei"}

var origenesCaptacion = []string{"Tienda Fisica", "Venta Web", "Call Center", "Distribuidor Autorizado"}
