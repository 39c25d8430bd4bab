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

// listCodec encodes arrays and slices element by element.
type listCodec struct {
	typ   reflect.Type
	elem  Codec
	fixed bool
}

// NewArray returns a codec for the array type t. Decoding accepts up to
// t.Len() elements and leaves the remaining ones zero.
func NewArray(t reflect.Type, elem Codec) (ListCodec, error) {
	if t == nil || t.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %v is not an array", ErrUnsupportedShape, t)
	}
	c, err := newList(t, elem, true)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewCollection returns a codec for the slice type t.
func NewCollection(t reflect.Type, elem Codec) (ListCodec, error) {
	if t == nil || t.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %v is not a slice", ErrUnsupportedShape, t)
	}
	c, err := newList(t, elem, false)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func newList(t reflect.Type, elem Codec, fixed bool) (*listCodec, error) {
	if elem == nil {
		return nil, fmt.Errorf("%w for %v", ErrNoCodec, t.Elem())
	}
	if elem.Type() != t.Elem() {
		return nil, fmt.Errorf("%w: element codec for %v used with %v", ErrTypeMismatch, elem.Type(), t)
	}

	return &listCodec{typ: t, elem: elem, fixed: fixed}, nil
}

func (c *listCodec) Type() reflect.Type        { return c.typ }
func (c *listCodec) ElementType() reflect.Type { return c.typ.Elem() }
func (c *listCodec) ElementCodec() Codec       { return c.elem }

func (c *listCodec) Encode(v reflect.Value) (string, error) {
	items, err := c.EncodeStrings(v)
	if err != nil || items == nil {
		return "", err
	}

	return JoinList(items), nil
}

func (c *listCodec) Decode(s string) (reflect.Value, error) {
	items, ok, err := SplitList(s)
	if err != nil {
		return reflect.Value{}, err
	}
	if !ok {
		return c.null(), nil
	}

	return c.decode(s, items)
}

func (c *listCodec) EncodeStrings(v reflect.Value) ([]string, error) {
	if IsNull(v) {
		return nil, nil
	}
	v, err := coerce(v, c.typ)
	if err != nil {
		return nil, err
	}

	items := make([]string, v.Len())
	for i := range items {
		if items[i], err = c.elem.Encode(v.Index(i)); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	return items, nil
}

func (c *listCodec) DecodeStrings(items []string) (reflect.Value, error) {
	if items == nil {
		return c.null(), nil
	}

	return c.decode(JoinList(items), items)
}

func (c *listCodec) decode(input string, items []string) (reflect.Value, error) {
	var out reflect.Value
	if c.fixed {
		if len(items) > c.typ.Len() {
			return reflect.Value{}, malformed(input, "%d elements exceed %v", len(items), c.typ)
		}
		out = reflect.New(c.typ).Elem()
	} else {
		out = reflect.MakeSlice(c.typ, len(items), len(items))
	}

	for i, item := range items {
		ev, err := c.elem.Decode(item)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		if !ev.IsValid() {
			continue
		}
		if ev, err = coerce(ev, c.typ.Elem()); err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(ev)
	}

	return out, nil
}

// null is a nil slice for collections and the invalid value for arrays,
// which have no nil form.
func (c *listCodec) null() reflect.Value {
	if c.fixed {
		return reflect.Value{}
	}

	return reflect.Zero(c.typ)
}

func (c *listCodec) String() string {
	return fmt.Sprintf("%v codec: via %s", c.typ, Describe(c.elem))
}
