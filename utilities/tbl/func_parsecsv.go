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
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var nullTokens = map[string]bool{
	"":         true,
	"NA":       true,
	"N/A":      true,
	"n/a":      true,
	"NaN":      true,
	"nan":      true,
	"-NaN":     true,
	"-nan":     true,
	"NULL":     true,
	"null":     true,
	"None":     true,
	"<NA>":     true,
	"#N/A":     true,
	"#NA":      true,
	"#N/A N/A": true,
	"1.#IND":   true,
	"-1.#IND":  true,
	"1.#QNAN":  true,
	"-1.#QNAN": true,
}

var boolTokens = map[string]bool{
	"True":  true,
	"TRUE":  true,
	"true":  true,
	"False": false,
	"FALSE": false,
	"false": false,
}

// ParseCSV reads a CSV file with a header row and infers the kind of each column
func ParseCSV(r io.Reader) (Table, error) {
	reader := bufio.NewReader(r)
	if head, err := reader.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = reader.Discard(len(utf8BOM))
	}
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("%w: empty file, no header", erm.ErrParse)
		}
		return Table{}, fmt.Errorf("%w: header %v", erm.ErrParse, err)
	}
	names := uniqueNames(header)

	cells := make([][]string, len(names))
	nulls := make([][]bool, len(names))
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: %v", erm.ErrParse, err)
		}
		if len(record) > len(names) {
			line, _ := csvReader.FieldPos(0)
			return Table{}, fmt.Errorf("%w: line %d has %d fields, header has %d", erm.ErrParse, line, len(record), len(names))
		}
		for i := range names {
			if i < len(record) && !nullTokens[record[i]] {
				cells[i] = append(cells[i], record[i])
				nulls[i] = append(nulls[i], false)
				continue
			}
			cells[i] = append(cells[i], "")
			nulls[i] = append(nulls[i], true)
		}
	}

	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = makeColumn(name, cells[i], nulls[i])
	}
	return NewTable(columns)
}

// uniqueNames names blank headers and suffixes duplicates
func uniqueNames(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		count := counts[name]
		for count > 0 {
			counts[name] = count + 1
			name = fmt.Sprintf("%s.%d", name, count)
			count = counts[name]
		}
		names[i] = name
		counts[name] = count + 1
	}
	return names
}

func makeColumn(name string, cells []string, nulls []bool) Column {
	column := Column{
		Name:   name,
		Kind:   inferKind(cells, nulls),
		Values: make([]interface{}, len(cells)),
	}
	for i, cell := range cells {
		if nulls[i] {
			continue
		}
		switch column.Kind {
		case KindInt64:
			column.Values[i], _ = strconv.ParseInt(cell, 10, 64)
		case KindFloat64:
			column.Values[i], _ = strconv.ParseFloat(cell, 64)
		case KindBool:
			column.Values[i] = boolTokens[cell]
		default:
			column.Values[i] = cell
		}
	}
	return column
}

// inferKind all null is string
func inferKind(cells []string, nulls []bool) Kind {
	isInt, isFloat, isBool := true, true, true
	hasValue := false
	for i, cell := range cells {
		if nulls[i] {
			continue
		}
		hasValue = true
		if isInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			if _, ok := boolTokens[cell]; !ok {
				isBool = false
			}
		}
		if !isInt && !isFloat && !isBool {
			return KindString
		}
	}
	switch {
	case !hasValue:
		return KindString
	case isInt:
		return KindInt64
	case isFloat:
		return KindFloat64
	case isBool:
		return KindBool
	default:
		return KindString
	}
}
