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

// Codec converts values of one type to and from text.
//
// Implementations must be stateless and safe for concurrent use. Decode
// returns a value of exactly Type(), or the null object. Encode accepts
// values of Type() and values whose type has Type() as its underlying type.
type Codec interface {
	// Type returns the value type handled by the codec.
	Type() reflect.Type

	// Encode converts v to text.
	Encode(v reflect.Value) (string, error)

	// Decode converts text to a value.
	Decode(s string) (reflect.Value, error)
}

// ListCodec is a codec for arrays and collections. Besides the bracket text
// form it converts from and to already split element strings.
type ListCodec interface {
	Codec

	// ElementType returns the element type.
	ElementType() reflect.Type

	// ElementCodec returns the codec used for every element.
	ElementCodec() Codec

	// EncodeStrings encodes each element. A null value yields nil.
	EncodeStrings(v reflect.Value) ([]string, error)

	// DecodeStrings decodes each element. A nil slice yields the null
	// object, an empty one an empty value.
	DecodeStrings(items []string) (reflect.Value, error)
}

// MapCodec is a codec for maps. Besides the bracket text form it converts
// from and to maps of already split key and value strings.
type MapCodec interface {
	Codec

	// KeyType returns the map key type.
	KeyType() reflect.Type

	// ValueType returns the map value type.
	ValueType() reflect.Type

	// KeyCodec returns the codec used for keys.
	KeyCodec() Codec

	// ValueCodec returns the codec used for values.
	ValueCodec() Codec

	// EncodeStrings encodes every entry. A null value yields nil.
	EncodeStrings(v reflect.Value) (map[string]string, error)

	// DecodeStrings decodes every entry. A nil map yields the null object.
	DecodeStrings(entries map[string]string) (reflect.Value, error)
}

// IsNull reports whether v is the null object: the zero reflect.Value or a
// nil pointer, interface, slice or map.
func IsNull(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return false
	}
}

// Nullable reports whether values of t have a null object.
func Nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return true
	default:
		return false
	}
}

// Describe returns the description of c used in codec and descriptor
// strings, e.g. "[]int codec: via int codec".
func Describe(c Codec) string {
	if c == nil {
		return "no codec"
	}
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%v codec", c.Type())
}

// coerce returns v as a value of t. Interfaces are unwrapped and values of
// the same kind are converted. v must be valid.
func coerce(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch {
	case v.Type() == t:
		return v, nil
	case t.Kind() == reflect.Interface && v.Type().Implements(t):
		return v, nil
	case v.Kind() == t.Kind() && v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: have %v, want %v", ErrTypeMismatch, v.Type(), t)
	}
}

// Value returns x as a reflect.Value, mapping nil to the null object.
func Value(x any) reflect.Value {
	if x == nil {
		return reflect.Value{}
	}

	return reflect.ValueOf(x)
}

// EncodeValue encodes x with c.
func EncodeValue(c Codec, x any) (string, error) {
	return c.Encode(Value(x))
}

// DecodeValue decodes s with c and returns the result as an interface
// value. An invalid result is returned as nil, typed nil pointers, slices
// and maps keep their type.
func DecodeValue(c Codec, s string) (any, error) {
	v, err := c.Decode(s)
	if err != nil {
		return nil, err
	}
	if !v.IsValid() {
		return nil, nil
	}

	return v.Interface(), nil
}
