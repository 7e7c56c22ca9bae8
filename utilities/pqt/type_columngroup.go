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
	"fmt"
	"reflect"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
	"github.com/parquet-go/parquet-go/encoding"
)

// columnGroup root node listing the table columns in source order
// parquet.Group sorts fields by name and struct tags cannot carry every column name
type columnGroup []parquet.Field

func (g columnGroup) ID() int { return 0 }

func (g columnGroup) String() string {
	s := new(strings.Builder)
	_ = parquet.PrintSchema(s, schemaName, g)
	return s.String()
}

func (g columnGroup) Type() parquet.Type { return parquet.Group{}.Type() }

func (g columnGroup) Optional() bool { return false }

func (g columnGroup) Repeated() bool { return false }

func (g columnGroup) Required() bool { return true }

func (g columnGroup) Leaf() bool { return false }

func (g columnGroup) Fields() []parquet.Field { return g }

func (g columnGroup) Encoding() encoding.Encoding { return nil }

func (g columnGroup) Compression() compress.Codec { return nil }

// GoType positional struct, column names are not always Go identifiers
func (g columnGroup) GoType() reflect.Type {
	fields := make([]reflect.StructField, len(g))
	for i, field := range g {
		fields[i] = reflect.StructField{
			Name: fmt.Sprintf("C%d", i),
			Type: field.GoType(),
		}
	}
	return reflect.StructOf(fields)
}

type columnField struct {
	parquet.Node
	name  string
	index int
}

func (f *columnField) Name() string { return f.name }

func (f *columnField) Value(base reflect.Value) reflect.Value {
	if base.Kind() == reflect.Pointer {
		if base.IsNil() {
			return reflect.Value{}
		}
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct || f.index >= base.NumField() {
		return reflect.Value{}
	}
	return base.Field(f.index)
}
