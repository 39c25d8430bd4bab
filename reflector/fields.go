// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reflector

import (
	"reflect"
	"strings"
)

// TagKey is the struct tag key consulted for field names and options.
const TagKey = "beanz"

// Field is a struct field visible to property resolution.
type Field struct {
	// Name is the property name: the tag name when one is given, otherwise
	// the field name passed through PropertyName.
	Name string

	// StructField is the underlying reflect description.
	StructField reflect.StructField

	// Index is the index sequence for reflect.Value.FieldByIndex, relative
	// to the described type.
	Index []int

	// Type is the field type.
	Type reflect.Type

	// Static marks fields without instance identity (the blank field "_").
	Static bool

	// Mutable is false for fields tagged readonly.
	Mutable bool

	// Exported reports whether every step of Index is an exported field.
	Exported bool

	// Depth is the embedding level: 0 for declared fields.
	Depth int
}

// String returns the field name as declared.
func (f Field) String() string {
	return f.StructField.Name
}

// tagOptions holds the parsed beanz tag.
type tagOptions struct {
	name     string
	skip     bool
	readonly bool
}

func parseTag(tag string) tagOptions {
	if tag == "-" {
		return tagOptions{skip: true}
	}
	name, rest, _ := strings.Cut(tag, ",")
	opts := tagOptions{name: strings.TrimSpace(name)}
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if strings.TrimSpace(opt) == "readonly" {
			opts.readonly = true
		}
	}

	return opts
}

// Fields lists the fields of t: declared fields first, then the fields of
// value-embedded structs level by level. Embedded structs are traversed, not
// listed. Unexported fields declared outside the package of t are omitted.
func Fields(t reflect.Type) []Field {
	t = Indirect(t)
	if t == nil {
		return nil
	}

	type level struct {
		typ      reflect.Type
		index    []int
		exported bool
	}

	var out []Field
	visited := map[reflect.Type]bool{t: true}
	current := []level{{typ: t, exported: true}}
	for depth := 0; len(current) > 0; depth++ {
		var next []level
		for _, lv := range current {
			for i := range lv.typ.NumField() {
				sf := lv.typ.Field(i)
				index := append(append(make([]int, 0, len(lv.index)+1), lv.index...), i)
				exported := lv.exported && sf.IsExported()
				opts := parseTag(sf.Tag.Get(TagKey))
				if opts.skip {
					continue
				}

				if isAncestor(sf, opts) {
					if !visited[sf.Type] {
						visited[sf.Type] = true
						next = append(next, level{typ: sf.Type, index: index, exported: exported})
					}
					continue
				}
				if !sf.IsExported() && sf.PkgPath != t.PkgPath() {
					continue
				}

				name := opts.name
				if name == "" {
					name = PropertyName(sf.Name)
				}
				out = append(out, Field{
					Name:        name,
					StructField: sf,
					Index:       index,
					Type:        sf.Type,
					Static:      sf.Name == "_",
					Mutable:     !opts.readonly && sf.Name != "_",
					Exported:    exported,
					Depth:       depth,
				})
			}
		}
		current = next
	}

	return out
}

// FindField returns the first non-static field named name in [Fields] order.
func FindField(t reflect.Type, name string) (Field, bool) {
	for _, f := range Fields(t) {
		if !f.Static && f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// isAncestor reports whether sf embeds a struct by value whose fields are
// promoted into the enclosing type.
func isAncestor(sf reflect.StructField, opts tagOptions) bool {
	if !sf.Anonymous || sf.Type.Kind() != reflect.Struct || opts.name != "" {
		return false
	}

	return !IsTextual(sf.Type)
}
