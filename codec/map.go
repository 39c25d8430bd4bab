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

// mapCodec encodes maps entry by entry.
type mapCodec struct {
	typ   reflect.Type
	key   Codec
	value Codec
}

// NewMap returns a codec for the map type t.
func NewMap(t reflect.Type, key, value Codec) (MapCodec, error) {
	if t == nil || t.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: %v is not a map", ErrUnsupportedShape, t)
	}
	if key == nil || value == nil {
		return nil, fmt.Errorf("%w for %v", ErrNoCodec, t)
	}
	if key.Type() != t.Key() || value.Type() != t.Elem() {
		return nil, fmt.Errorf("%w: map[%v]%v codecs used with %v", ErrTypeMismatch, key.Type(), value.Type(), t)
	}

	return &mapCodec{typ: t, key: key, value: value}, nil
}

func (c *mapCodec) Type() reflect.Type      { return c.typ }
func (c *mapCodec) KeyType() reflect.Type   { return c.typ.Key() }
func (c *mapCodec) ValueType() reflect.Type { return c.typ.Elem() }
func (c *mapCodec) KeyCodec() Codec         { return c.key }
func (c *mapCodec) ValueCodec() Codec       { return c.value }

func (c *mapCodec) Encode(v reflect.Value) (string, error) {
	entries, err := c.EncodeStrings(v)
	if err != nil || entries == nil {
		return "", err
	}

	return JoinMap(entries), nil
}

func (c *mapCodec) Decode(s string) (reflect.Value, error) {
	entries, ok, err := SplitMap(s)
	if err != nil {
		return reflect.Value{}, err
	}
	if !ok {
		return reflect.Zero(c.typ), nil
	}

	return c.DecodeStrings(entries)
}

func (c *mapCodec) EncodeStrings(v reflect.Value) (map[string]string, error) {
	if IsNull(v) {
		return nil, nil
	}
	v, err := coerce(v, c.typ)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := c.key.Encode(iter.Key())
		if err != nil {
			return nil, fmt.Errorf("key %v: %w", iter.Key(), err)
		}
		if out[k], err = c.value.Encode(iter.Value()); err != nil {
			return nil, fmt.Errorf("value for key %q: %w", k, err)
		}
	}

	return out, nil
}

func (c *mapCodec) DecodeStrings(entries map[string]string) (reflect.Value, error) {
	if entries == nil {
		return reflect.Zero(c.typ), nil
	}

	out := reflect.MakeMapWithSize(c.typ, len(entries))
	for ks, vs := range entries {
		k, err := decodeEntry(c.key, ks)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %q: %w", ks, err)
		}
		v, err := decodeEntry(c.value, vs)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("value for key %q: %w", ks, err)
		}
		out.SetMapIndex(k, v)
	}

	return out, nil
}

// decodeEntry decodes one key or value; the null object becomes the zero
// value of the codec type.
func decodeEntry(with Codec, s string) (reflect.Value, error) {
	v, err := with.Decode(s)
	if err != nil {
		return reflect.Value{}, err
	}
	if !v.IsValid() {
		return reflect.Zero(with.Type()), nil
	}

	return coerce(v, with.Type())
}

func (c *mapCodec) String() string {
	return fmt.Sprintf("%v codec: keys via %s, values via %s", c.typ, Describe(c.key), Describe(c.value))
}
