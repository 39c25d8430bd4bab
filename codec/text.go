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
	"encoding"
	"fmt"
	"reflect"

	"rivaas.dev/beanz/reflector"
)

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// textCodec delegates to encoding.TextMarshaler and encoding.TextUnmarshaler.
type textCodec struct {
	typ reflect.Type
}

// textFor returns a text codec when t declares MarshalText and UnmarshalText
// itself. Methods promoted from an embedded field do not count: they would
// encode only the embedded part of the value.
func textFor(t reflect.Type) (Codec, bool) {
	if !reflector.IsTextual(t) || promotesText(t) {
		return nil, false
	}

	return &textCodec{typ: t}, true
}

func promotesText(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.Anonymous {
			continue
		}
		ft := sf.Type
		if ft.Kind() != reflect.Ptr {
			ft = reflect.PointerTo(ft)
		}
		if ft.Implements(textMarshalerType) || ft.Implements(textUnmarshalerType) {
			return true
		}
	}

	return false
}

func (c *textCodec) Type() reflect.Type { return c.typ }

func (c *textCodec) Encode(v reflect.Value) (string, error) {
	if IsNull(v) {
		if Nullable(c.typ) {
			return "", nil
		}
		return "", fmt.Errorf("encode %v: %w", c.typ, ErrNull)
	}
	v, err := coerce(v, c.typ)
	if err != nil {
		return "", err
	}

	m, ok := v.Interface().(encoding.TextMarshaler)
	if !ok {
		p := reflect.New(c.typ)
		p.Elem().Set(v)
		m = p.Interface().(encoding.TextMarshaler)
	}
	b, err := m.MarshalText()
	if err != nil {
		return "", fmt.Errorf("encode %v: %w", c.typ, err)
	}

	return string(b), nil
}

func (c *textCodec) Decode(s string) (reflect.Value, error) {
	p := reflect.New(c.typ)
	if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
		return reflect.Value{}, fmt.Errorf("decode %q as %v: %w", s, c.typ, err)
	}

	return p.Elem(), nil
}

func (c *textCodec) String() string {
	return fmt.Sprintf("%v codec: text", c.typ)
}
