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
	"context"
	"fmt"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/tbl"
	"github.com/parquet-go/parquet-go"
)

// Encoder Parquet encoder
type Encoder struct {
	// Compression (optional): "", "none", "snappy", "gzip", "zstd"
	Compression string
}

const schemaName = "crm"

// FileExtension of the encoded artifact
func (e Encoder) FileExtension() string { return ".parquet" }

// ContentType of the encoded artifact
func (e Encoder) ContentType() string { return "application/vnd.apache.parquet" }

func (e Encoder) writerOptions() ([]parquet.WriterOption, error) {
	options := make([]parquet.WriterOption, 0, 1)
	switch e.Compression {
	case "":
		// no compression
	case "none":
		options = append(options, parquet.Compression(&parquet.Uncompressed))
	case "snappy":
		options = append(options, parquet.Compression(&parquet.Snappy))
	case "gzip":
		options = append(options, parquet.Compression(&parquet.Gzip))
	case "zstd":
		options = append(options, parquet.Compression(&parquet.Zstd))
	default:
		return nil, fmt.Errorf("%w: unsupported parquet compression: %q", erm.ErrEncode, e.Compression)
	}
	return options, nil
}

// Encode writes the table in one Parquet file
func (e Encoder) Encode(ctx context.Context, table tbl.Table) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	options, err := e.writerOptions()
	if err != nil {
		return nil, err
	}
	root, err := makeColumnGroup(table)
	if err != nil {
		return nil, err
	}
	schema := parquet.NewSchema(schemaName, root)

	output := &bytes.Buffer{}
	w := parquet.NewWriter(output, append([]parquet.WriterOption{schema}, options...)...)
	rows := make([]parquet.Row, 1)
	for i := 0; i < table.NumRows(); i++ {
		rows[0], err = makeRow(rows[0][:0], table, i)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		if _, err := w.WriteRows(rows); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("%w: row %d %v", erm.ErrEncode, i, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", erm.ErrEncode, err)
	}
	return output.Bytes(), nil
}

var leafTypes = map[tbl.Kind]parquet.Node{
	tbl.KindInt64:   parquet.Leaf(parquet.Int64Type),
	tbl.KindFloat64: parquet.Leaf(parquet.DoubleType),
	tbl.KindBool:    parquet.Leaf(parquet.BooleanType),
	tbl.KindString:  parquet.String(),
}

// makeColumnGroup one optional leaf per column, in table order
func makeColumnGroup(table tbl.Table) (columnGroup, error) {
	if table.NumColumns() == 0 {
		return nil, fmt.Errorf("%w: table has no column", erm.ErrEncode)
	}
	group := make(columnGroup, table.NumColumns())
	for i, column := range table.Columns {
		if column.Name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", erm.ErrEncode, i)
		}
		leaf, ok := leafTypes[column.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: column %q unsupported kind %q", erm.ErrEncode, column.Name, column.Kind)
		}
		group[i] = &columnField{Node: parquet.Optional(leaf), name: column.Name, index: i}
	}
	return group, nil
}

// makeRow appends the values of one table row, definition level 0 is null
func makeRow(row parquet.Row, table tbl.Table, rowIndex int) (parquet.Row, error) {
	for i, column := range table.Columns {
		value, err := valueOfCell(column, rowIndex)
		if err != nil {
			return row, err
		}
		definitionLevel := 1
		if value.IsNull() {
			definitionLevel = 0
		}
		row = append(row, value.Level(0, definitionLevel, i))
	}
	return row, nil
}

func valueOfCell(column tbl.Column, rowIndex int) (parquet.Value, error) {
	cell := column.Values[rowIndex]
	if cell == nil {
		return parquet.NullValue(), nil
	}
	var ok bool
	var value parquet.Value
	switch column.Kind {
	case tbl.KindInt64:
		var v int64
		v, ok = cell.(int64)
		value = parquet.Int64Value(v)
	case tbl.KindFloat64:
		var v float64
		v, ok = cell.(float64)
		value = parquet.DoubleValue(v)
	case tbl.KindBool:
		var v bool
		v, ok = cell.(bool)
		value = parquet.BooleanValue(v)
	case tbl.KindString:
		var v string
		v, ok = cell.(string)
		value = parquet.ByteArrayValue([]byte(v))
	}
	if !ok {
		return parquet.Value{}, fmt.Errorf("%w: column %q row %d value %v is not %s", erm.ErrEncode, column.Name, rowIndex, cell, column.Kind)
	}
	return value, nil
}
