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

// pointerCodec boxes the values of an element codec. A nil pointer is handed
// to the element codec as the null object, so on its own it only tolerates
// null input when the element codec does; wrap it with [Safe].
type pointerCodec struct {
	typ  reflect.Type
	elem Codec
}

// NewPointer returns a codec for the pointer type t that delegates to elem.
// The result is not null-safe; [Registry.Resolve] wraps it with [Safe].
func NewPointer(t reflect.Type, elem Codec) (Codec, error) {
	if t == nil || t.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("%w: %v is not a pointer", ErrUnsupportedShape, t)
	}
	if elem == nil {
		return nil, fmt.Errorf("%w for %v", ErrNoCodec, t.Elem())
	}
	if elem.Type() != t.Elem() {
		return nil, fmt.Errorf("%w: codec for %v used with %v", ErrTypeMismatch, elem.Type(), t)
	}

	return &pointerCodec{typ: t, elem: elem}, nil
}

func (c *pointerCodec) Type() reflect.Type { return c.typ }

func (c *pointerCodec) Encode(v reflect.Value) (string, error) {
	if !v.IsValid() {
		return c.elem.Encode(v)
	}
	v, err := coerce(v, c.typ)
	if err != nil {
		return "", err
	}
	if v.IsNil() {
		return c.elem.Encode(reflect.Value{})
	}

	return c.elem.Encode(v.Elem())
}

func (c *pointerCodec) Decode(s string) (reflect.Value, error) {
	ev, err := c.elem.Decode(s)
	if err != nil {
		return reflect.Value{}, err
	}
	if IsNull(ev) {
		return reflect.Zero(c.typ), nil
	}
	if ev, err = coerce(ev, c.typ.Elem()); err != nil {
		return reflect.Value{}, err
	}

	p := reflect.New(c.typ.Elem())
	p.Elem().Set(ev)

	return p, nil
}

func (c *pointerCodec) String() string {
	return fmt.Sprintf("%v codec: via %s", c.typ, Describe(c.elem))
}
