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

package pqt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/tbl"
	"github.com/parquet-go/parquet-go"
)

// Decode reads a flat Parquet file back into a table
func Decode(data []byte) (tbl.Table, error) {
	file, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return tbl.Table{}, fmt.Errorf("%w: parquet.OpenFile %v", erm.ErrParse, err)
	}
	fields := file.Schema().Fields()
	columns := make([]tbl.Column, len(fields))
	for i, field := range fields {
		if !field.Leaf() {
			return tbl.Table{}, fmt.Errorf("%w: nested field %q", erm.ErrParse, field.Name())
		}
		kind, err := kindOf(field.Type().Kind())
		if err != nil {
			return tbl.Table{}, fmt.Errorf("%w: field %q %v", erm.ErrParse, field.Name(), err)
		}
		columns[i] = tbl.Column{
			Name:   field.Name(),
			Kind:   kind,
			Values: make([]interface{}, 0, file.NumRows()),
		}
	}

	buffer := make([]parquet.Row, 64)
	for _, rowGroup := range file.RowGroups() {
		if err := readRowGroup(rowGroup, columns, buffer); err != nil {
			return tbl.Table{}, err
		}
	}
	return tbl.NewTable(columns)
}

func readRowGroup(rowGroup parquet.RowGroup, columns []tbl.Column, buffer []parquet.Row) error {
	rows := rowGroup.Rows()
	defer rows.Close()
	for {
		n, err := rows.ReadRows(buffer)
		for _, row := range buffer[:n] {
			values := make([]interface{}, len(columns))
			for _, value := range row {
				columnIndex := value.Column()
				if columnIndex < 0 || columnIndex >= len(columns) {
					return fmt.Errorf("%w: column index %d out of range", erm.ErrParse, columnIndex)
				}
				values[columnIndex] = valueOf(value, columns[columnIndex].Kind)
			}
			for i := range columns {
				columns[i].Values = append(columns[i].Values, values[i])
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: rows.ReadRows %v", erm.ErrParse, err)
		}
	}
}

func kindOf(kind parquet.Kind) (tbl.Kind, error) {
	switch kind {
	case parquet.Int32, parquet.Int64:
		return tbl.KindInt64, nil
	case parquet.Float, parquet.Double:
		return tbl.KindFloat64, nil
	case parquet.Boolean:
		return tbl.KindBool, nil
	case parquet.ByteArray:
		return tbl.KindString, nil
	default:
		return "", fmt.Errorf("unsupported physical type %s", kind)
	}
}

func valueOf(value parquet.Value, kind tbl.Kind) interface{} {
	if value.IsNull() {
		return nil
	}
	switch kind {
	case tbl.KindInt64:
		if value.Kind() == parquet.Int32 {
			return int64(value.Int32())
		}
		return value.Int64()
	case tbl.KindFloat64:
		if value.Kind() == parquet.Float {
			return float64(value.Float())
		}
		return value.Double()
	case tbl.KindBool:
		return value.Boolean()
	default:
		return string(value.ByteArray())
	}
}
