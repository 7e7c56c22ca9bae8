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

package tbl

import (
	"fmt"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
)

// Kind column data kind
type Kind string

// Column kinds
const (
	KindString  Kind = "string"
	KindInt64   Kind = "int64"
	KindFloat64 Kind = "float64"
	KindBool    Kind = "bool"
)

// Column one value per row: nil for null, else int64, float64, bool or string matching the kind
type Column struct {
	Name   string
	Kind   Kind
	Values []interface{}
}

// Table ordered columns of equal length
type Table struct {
	Columns []Column
}

// NewTable checks all columns have the same number of values and unique names
func NewTable(columns []Column) (Table, error) {
	names := make(map[string]bool, len(columns))
	for i, column := range columns {
		if names[column.Name] {
			return Table{}, fmt.Errorf("%w: duplicate column name '%s'", erm.ErrParse, column.Name)
		}
		names[column.Name] = true
		if len(column.Values) != len(columns[0].Values) {
			return Table{}, fmt.Errorf("%w: column %d '%s' has %d values, want %d", erm.ErrParse, i, column.Name, len(column.Values), len(columns[0].Values))
		}
	}
	return Table{Columns: columns}, nil
}

// NumRows number of rows
func (t Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// NumColumns number of columns
func (t Table) NumColumns() int {
	return len(t.Columns)
}

// ColumnNames column names in order
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, column := range t.Columns {
		names[i] = column.Name
	}
	return names
}
