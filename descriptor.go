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

package beanz

import (
	"fmt"
	"reflect"

	"rivaas.dev/beanz/codec"
	"rivaas.dev/beanz/reflector"
)

// PropertyDescriptor describes one property of a struct type: its name,
// value type, shape, access strategy and codec. Descriptors are immutable
// and safe for concurrent use; the targets they operate on are not.
//
// Operations take the target as a pointer to a struct of the described
// type. Errors are returned as [*PropertyError].
type PropertyDescriptor struct {
	name   string
	typ    reflect.Type
	shape  reflector.Shape
	access access
	owner  *BeanDescriptor
}

// Name returns the property name.
func (d *PropertyDescriptor) Name() string { return d.name }

// Type returns the value type.
func (d *PropertyDescriptor) Type() reflect.Type { return d.typ }

// Shape returns the structural shape of the value type.
func (d *PropertyDescriptor) Shape() reflector.Shape { return d.shape }

// Access returns the access strategy.
func (d *PropertyDescriptor) Access() Access { return d.access.kind() }

// Readable reports whether the property can be read.
func (d *PropertyDescriptor) Readable() bool { return d.access.readable() }

// Writable reports whether the property can be written.
func (d *PropertyDescriptor) Writable() bool { return d.access.writable() }

// Bean returns the descriptor of the owning struct type.
func (d *PropertyDescriptor) Bean() *BeanDescriptor { return d.owner }

// Codec returns the codec of the value type, or nil when none could be
// resolved.
func (d *PropertyDescriptor) Codec() codec.Codec {
	c, _ := d.owner.Codec(d.typ)
	return c
}

// Tag returns the struct tag value for key of the backing field.
// Accessor-backed properties have no tags.
func (d *PropertyDescriptor) Tag(key string) (string, bool) {
	return d.access.tag(key)
}

// ElementType returns the element type of an array or collection property,
// or the value type of a map property.
func (d *PropertyDescriptor) ElementType() (reflect.Type, error) {
	fn := d.ops().elementType
	if fn == nil {
		return nil, d.fail("element type", d.mismatch())
	}
	t, err := fn(d.typ)

	return t, d.fail("element type", err)
}

// KeyType returns the key type of a map property.
func (d *PropertyDescriptor) KeyType() (reflect.Type, error) {
	fn := d.ops().keyType
	if fn == nil {
		return nil, d.fail("key type", d.mismatch())
	}
	t, err := fn(d.typ)

	return t, d.fail("key type", err)
}

// Get returns the property value of target.
func (d *PropertyDescriptor) Get(target any) (any, error) {
	tv, err := d.owner.target(target)
	if err != nil {
		return nil, d.fail("get", err)
	}
	v, err := d.get(tv)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// Set sets the property value of target. A nil value sets the zero value;
// values of a different type with the same kind are converted.
func (d *PropertyDescriptor) Set(target, value any) error {
	tv, err := d.owner.target(target)
	if err != nil {
		return d.fail("set", err)
	}

	return d.setAny(tv, value)
}

// GetString returns the property value of target encoded by its codec.
func (d *PropertyDescriptor) GetString(target any) (string, error) {
	tv, err := d.owner.target(target)
	if err != nil {
		return "", d.fail("encode", err)
	}

	return d.getString(tv)
}

// SetString decodes s with the property codec and sets the result on
// target. Blank text sets the null or zero value.
func (d *PropertyDescriptor) SetString(target any, s string) error {
	tv, err := d.owner.target(target)
	if err != nil {
		return d.fail("decode", err)
	}

	return d.setString(tv, s)
}

// Strings returns the encoded elements of an array or collection property.
// A nil collection yields nil.
func (d *PropertyDescriptor) Strings(target any) ([]string, error) {
	tv, err := d.owner.target(target)
	if err != nil {
		return nil, d.fail("strings", err)
	}

	return d.strings(tv)
}

// SetStrings decodes each element and sets the result on target. A nil
// slice sets the null value.
func (d *PropertyDescriptor) SetStrings(target any, items []string) error {
	tv, err := d.owner.target(target)
	if err != nil {
		return d.fail("set strings", err)
	}

	return d.setStrings(tv, items)
}

// Values returns the elements of an array or collection property.
func (d *PropertyDescriptor) Values(target any) ([]any, error) {
	tv, err := d.owner.target(target)
	if err != nil {
		return nil, d.fail("values", err)
	}

	return d.values(tv)
}

// StringMap returns the encoded entries of a map property.
// A nil map yields nil.
func (d *PropertyDescriptor) StringMap(target any) (map[string]string, error) {
	tv, err := d.owner.target(target)
	if err != nil {
		return nil, d.fail("string map", err)
	}

	return d.stringMap(tv)
}

// SetStringMap decodes each entry and sets the result on target. A nil map
// sets the null value.
func (d *PropertyDescriptor) SetStringMap(target any, entries map[string]string) error {
	tv, err := d.owner.target(target)
	if err != nil {
		return d.fail("set string map", err)
	}

	return d.setStringMap(tv, entries)
}

// String returns a description such as "int count: Count() / SetCount(count)".
func (d *PropertyDescriptor) String() string {
	return fmt.Sprintf("%v %s: %v", d.typ, d.name, d.access)
}

func (d *PropertyDescriptor) fail(op string, err error) error {
	return propertyError(d.owner.typ, d.name, op, err)
}

func (d *PropertyDescriptor) mismatch() error {
	return fmt.Errorf("%w: %s property", ErrShapeMismatch, d.shape)
}

func (d *PropertyDescriptor) ops() *shapeOps {
	return &shapeTable[d.shape]
}

func (d *PropertyDescriptor) get(tv reflect.Value) (reflect.Value, error) {
	if !d.access.readable() {
		return reflect.Value{}, d.fail("get", ErrNotReadable)
	}
	v, err := d.access.get(tv)
	if err != nil {
		return reflect.Value{}, d.fail("get", err)
	}

	return v, nil
}

func (d *PropertyDescriptor) set(tv, v reflect.Value) error {
	if !d.access.writable() {
		return d.fail("set", ErrNotWritable)
	}

	return d.fail("set", d.access.set(tv, v))
}

func (d *PropertyDescriptor) setAny(tv reflect.Value, value any) error {
	v, err := convert(value, d.typ)
	if err != nil {
		return d.fail("set", err)
	}

	return d.set(tv, v)
}

// codecFor returns the property codec or fails op with ErrNoCodec.
func (d *PropertyDescriptor) codecFor(op string) (codec.Codec, error) {
	c, ok := d.owner.Codec(d.typ)
	if !ok {
		return nil, d.fail(op, fmt.Errorf("%w for %v", ErrNoCodec, d.typ))
	}

	return c, nil
}

func (d *PropertyDescriptor) getString(tv reflect.Value) (string, error) {
	c, err := d.codecFor("encode")
	if err != nil {
		return "", err
	}
	v, err := d.get(tv)
	if err != nil {
		return "", err
	}
	s, err := c.Encode(v)
	if err != nil {
		return "", d.fail("encode", err)
	}

	return s, nil
}

func (d *PropertyDescriptor) setString(tv reflect.Value, s string) error {
	if !d.access.writable() {
		return d.fail("decode", ErrNotWritable)
	}
	c, err := d.codecFor("decode")
	if err != nil {
		return err
	}
	v, err := c.Decode(s)
	if err != nil {
		return d.fail("decode", err)
	}

	return d.set(tv, orZero(v, d.typ))
}

func (d *PropertyDescriptor) strings(tv reflect.Value) ([]string, error) {
	fn := d.ops().strings
	if fn == nil {
		return nil, d.fail("strings", d.mismatch())
	}
	c, err := d.codecFor("strings")
	if err != nil {
		return nil, err
	}
	v, err := d.get(tv)
	if err != nil {
		return nil, err
	}
	items, err := fn(c, v)
	if err != nil {
		return nil, d.fail("strings", err)
	}

	return items, nil
}

func (d *PropertyDescriptor) setStrings(tv reflect.Value, items []string) error {
	fn := d.ops().setStrings
	if fn == nil {
		return d.fail("set strings", d.mismatch())
	}
	if !d.access.writable() {
		return d.fail("set strings", ErrNotWritable)
	}
	c, err := d.codecFor("set strings")
	if err != nil {
		return err
	}
	v, err := fn(c, items)
	if err != nil {
		return d.fail("set strings", err)
	}

	return d.set(tv, orZero(v, d.typ))
}

func (d *PropertyDescriptor) values(tv reflect.Value) ([]any, error) {
	fn := d.ops().values
	if fn == nil {
		return nil, d.fail("values", d.mismatch())
	}
	v, err := d.get(tv)
	if err != nil {
		return nil, err
	}

	return fn(v), nil
}

func (d *PropertyDescriptor) stringMap(tv reflect.Value) (map[string]string, error) {
	fn := d.ops().stringMap
	if fn == nil {
		return nil, d.fail("string map", d.mismatch())
	}
	c, err := d.codecFor("string map")
	if err != nil {
		return nil, err
	}
	v, err := d.get(tv)
	if err != nil {
		return nil, err
	}
	entries, err := fn(c, v)
	if err != nil {
		return nil, d.fail("string map", err)
	}

	return entries, nil
}

func (d *PropertyDescriptor) setStringMap(tv reflect.Value, entries map[string]string) error {
	fn := d.ops().setStringMap
	if fn == nil {
		return d.fail("set string map", d.mismatch())
	}
	if !d.access.writable() {
		return d.fail("set string map", ErrNotWritable)
	}
	c, err := d.codecFor("set string map")
	if err != nil {
		return err
	}
	v, err := fn(c, entries)
	if err != nil {
		return d.fail("set string map", err)
	}

	return d.set(tv, orZero(v, d.typ))
}

// shapeOps holds the operations that only apply to some shapes. A nil
// function means the operation does not apply.
type shapeOps struct {
	elementType  func(t reflect.Type) (reflect.Type, error)
	keyType      func(t reflect.Type) (reflect.Type, error)
	strings      func(c codec.Codec, v reflect.Value) ([]string, error)
	setStrings   func(c codec.Codec, items []string) (reflect.Value, error)
	values       func(v reflect.Value) []any
	stringMap    func(c codec.Codec, v reflect.Value) (map[string]string, error)
	setStringMap func(c codec.Codec, entries map[string]string) (reflect.Value, error)
}

var listOps = shapeOps{
	elementType: reflector.ElementType,
	strings: func(c codec.Codec, v reflect.Value) ([]string, error) {
		lc, err := asList(c)
		if err != nil {
			return nil, err
		}

		return lc.EncodeStrings(v)
	},
	setStrings: func(c codec.Codec, items []string) (reflect.Value, error) {
		lc, err := asList(c)
		if err != nil {
			return reflect.Value{}, err
		}

		return lc.DecodeStrings(items)
	},
	values: func(v reflect.Value) []any {
		if codec.IsNull(v) {
			return nil
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}

		return out
	},
}

var shapeTable = [...]shapeOps{
	reflector.Scalar:     {},
	reflector.Array:      listOps,
	reflector.Collection: listOps,
	reflector.Map: {
		elementType: reflector.ElementType,
		keyType:     reflector.KeyType,
		stringMap: func(c codec.Codec, v reflect.Value) (map[string]string, error) {
			mc, err := asMap(c)
			if err != nil {
				return nil, err
			}

			return mc.EncodeStrings(v)
		},
		setStringMap: func(c codec.Codec, entries map[string]string) (reflect.Value, error) {
			mc, err := asMap(c)
			if err != nil {
				return reflect.Value{}, err
			}

			return mc.DecodeStrings(entries)
		},
	},
}

func asList(c codec.Codec) (codec.ListCodec, error) {
	lc, ok := c.(codec.ListCodec)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not split elements", ErrNoCodec, codec.Describe(c))
	}

	return lc, nil
}

func asMap(c codec.Codec) (codec.MapCodec, error) {
	mc, ok := c.(codec.MapCodec)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not split entries", ErrNoCodec, codec.Describe(c))
	}

	return mc, nil
}

// convert returns x as a value of t. Nil becomes the zero value.
func convert(x any, t reflect.Type) (reflect.Value, error) {
	if x == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(x)
	switch {
	case v.Type().AssignableTo(t):
		return v, nil
	case v.Kind() == t.Kind() && v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: have %v, want %v", ErrTypeMismatch, v.Type(), t)
	}
}

// orZero maps the null object to the zero value of t.
func orZero(v reflect.Value, t reflect.Type) reflect.Value {
	if !v.IsValid() {
		return reflect.Zero(t)
	}

	return v
}
