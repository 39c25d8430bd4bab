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

package codec

import (
	"fmt"
	"reflect"
)

// Method names of the enumeration convention.
const (
	parseMethod   = "Parse"
	isValidMethod = "IsValid"
)

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	stringType   = reflect.TypeFor[string]()
	boolType     = reflect.TypeFor[bool]()
	errorType    = reflect.TypeFor[error]()
)

// enumCodec encodes an enumerated type by its constant names.
//
// A type is enumerated when it is a named integer or string type with a
// String method and a Parse method callable on its zero value:
//
//	type Level int
//
//	func (l Level) String() string                 { ... }
//	func (Level) Parse(s string) (Level, error)     { ... }
//	func (l Level) IsValid() bool                   { ... } // optional
type enumCodec struct {
	typ     reflect.Type
	parse   reflect.Value
	isValid reflect.Value
}

// enumFor returns an enum codec when t follows the enumeration convention.
func enumFor(t reflect.Type) (Codec, bool) {
	if t.Name() == "" || t.PkgPath() == "" || !isEnumKind(t.Kind()) || !t.Implements(stringerType) {
		return nil, false
	}

	parse, ok := t.MethodByName(parseMethod)
	if !ok {
		return nil, false
	}
	pt := parse.Type
	if pt.NumIn() != 2 || pt.In(1) != stringType || pt.NumOut() != 2 || pt.Out(0) != t || pt.Out(1) != errorType {
		return nil, false
	}

	c := &enumCodec{typ: t, parse: parse.Func}
	if m, ok := t.MethodByName(isValidMethod); ok {
		if mt := m.Type; mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0) == boolType {
			c.isValid = m.Func
		}
	}

	return c, true
}

func isEnumKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return true
	default:
		return false
	}
}

func (c *enumCodec) Type() reflect.Type { return c.typ }

func (c *enumCodec) Encode(v reflect.Value) (string, error) {
	if IsNull(v) {
		return "", fmt.Errorf("encode %v: %w", c.typ, ErrNull)
	}
	v, err := coerce(v, c.typ)
	if err != nil {
		return "", err
	}
	if !c.valid(v) {
		return "", fmt.Errorf("encode %v: %w: %v", c.typ, ErrInvalidValue, v.Interface())
	}

	return v.Interface().(fmt.Stringer).String(), nil
}

func (c *enumCodec) Decode(s string) (reflect.Value, error) {
	if s == "" {
		return reflect.Value{}, fmt.Errorf("decode %v: %w", c.typ, ErrEmptyValue)
	}

	out := c.parse.Call([]reflect.Value{reflect.Zero(c.typ), reflect.ValueOf(s)})
	if err, _ := out[1].Interface().(error); err != nil {
		return reflect.Value{}, fmt.Errorf("decode %q as %v: %w", s, c.typ, err)
	}
	if !c.valid(out[0]) {
		return reflect.Value{}, fmt.Errorf("decode %q as %v: %w", s, c.typ, ErrInvalidValue)
	}

	return out[0], nil
}

func (c *enumCodec) valid(v reflect.Value) bool {
	if !c.isValid.IsValid() {
		return true
	}

	return c.isValid.Call([]reflect.Value{v})[0].Bool()
}

func (c *enumCodec) String() string {
	return fmt.Sprintf("%v codec: enum", c.typ)
}
