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
	"encoding"
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedShape is returned when a type's structure cannot be used for
// the requested operation, e.g. asking a scalar for its element type.
var ErrUnsupportedShape = errors.New("unsupported shape")

// Shape classifies the structural kind of a value type.
type Shape int

const (
	// Scalar is any single value: numbers, strings, bools, text-encoded
	// types, pointers and structs.
	Scalar Shape = iota

	// Array is a fixed-length array [N]T.
	Array

	// Collection is an ordered, growable collection []T.
	Collection

	// Map is a key/value map map[K]V.
	Map
)

// String returns the string representation of the shape.
func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	case Collection:
		return "collection"
	case Map:
		return "map"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// IsList reports whether the shape holds an ordered sequence of elements.
func (s Shape) IsList() bool {
	return s == Array || s == Collection
}

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Classify returns the shape of t.
//
// Types that encode themselves as text (a MarshalText method on T or *T and an
// UnmarshalText method on *T) are scalars whatever their kind, so net.IP is a
// scalar and not a collection of bytes.
func Classify(t reflect.Type) Shape {
	if t == nil || IsTextual(t) {
		return Scalar
	}

	switch t.Kind() {
	case reflect.Array:
		return Array
	case reflect.Slice:
		return Collection
	case reflect.Map:
		return Map
	default:
		return Scalar
	}
}

// IsTextual reports whether t round-trips through encoding.TextMarshaler and
// encoding.TextUnmarshaler.
func IsTextual(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Interface || t.Kind() == reflect.Ptr {
		return false
	}
	pt := reflect.PointerTo(t)
	marshals := t.Implements(textMarshalerType) || pt.Implements(textMarshalerType)

	return marshals && pt.Implements(textUnmarshalerType)
}

// ElementType returns the element type of an array or collection, or the
// value type of a map.
func ElementType(t reflect.Type) (reflect.Type, error) {
	switch Classify(t) {
	case Array, Collection, Map:
		return t.Elem(), nil
	default:
		return nil, fmt.Errorf("%w: %v has no element type", ErrUnsupportedShape, t)
	}
}

// KeyType returns the key type of a map.
func KeyType(t reflect.Type) (reflect.Type, error) {
	if Classify(t) != Map {
		return nil, fmt.Errorf("%w: %v has no key type", ErrUnsupportedShape, t)
	}

	return t.Key(), nil
}

// IsOpaque reports whether values of t carry no statically known structure
// that a text codec could be derived from: interfaces, channels, functions and
// unsafe pointers.
func IsOpaque(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Invalid:
		return true
	default:
		return false
	}
}
