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
	"fmt"
	"reflect"
	"sort"
)

var errorType = reflect.TypeFor[error]()

// AccessorKind distinguishes getters from setters.
type AccessorKind int

const (
	// Getter reads a property value.
	Getter AccessorKind = iota

	// Setter writes a property value.
	Setter
)

// String returns the string representation of the accessor kind.
func (k AccessorKind) String() string {
	switch k {
	case Getter:
		return "getter"
	case Setter:
		return "setter"
	default:
		return fmt.Sprintf("AccessorKind(%d)", int(k))
	}
}

// Accessor is a method recognised as a property getter or setter.
type Accessor struct {
	// Name is the property name derived from the method name.
	Name string

	// Method is the method of *T. Method.Func takes the receiver as its
	// first argument.
	Method reflect.Method

	// Kind is Getter or Setter.
	Kind AccessorKind

	// Type is the getter result type or the setter parameter type.
	Type reflect.Type

	// ReturnsError reports whether the method's last result is an error.
	ReturnsError bool
}

// String returns the method signature, e.g. "GetName()" or "SetName(name)".
func (a Accessor) String() string {
	if a.Kind == Setter {
		return a.Method.Name + "(" + a.Name + ")"
	}

	return a.Method.Name + "()"
}

// Accessors lists the getters and setters of t, sorted by method name.
// Bare getters such as Name() are not listed; use [FindGetter].
// A pointer type is described by its element type.
func Accessors(t reflect.Type) []Accessor {
	t = Indirect(t)
	if t == nil {
		return nil
	}

	pt := reflect.PointerTo(t)
	out := make([]Accessor, 0, pt.NumMethod())
	for i := range pt.NumMethod() {
		if a, ok := prefixed(pt.Method(i)); ok {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Method.Name < out[j].Method.Name
	})

	return out
}

// FindGetter returns the getter for the named property. GetX wins over IsX,
// which wins over the bare form X.
func FindGetter(t reflect.Type, name string) (Accessor, bool) {
	t = Indirect(t)
	if t == nil {
		return Accessor{}, false
	}

	pt := reflect.PointerTo(t)
	var is, bare *Accessor
	for i := range pt.NumMethod() {
		m := pt.Method(i)
		if a, ok := prefixed(m); ok {
			if a.Kind != Getter || a.Name != name {
				continue
			}
			if _, get := suffix(m.Name, prefixGet); get {
				return a, true
			}
			is = &a

			continue
		}
		if bare == nil && PropertyName(m.Name) == name {
			if typ, returnsErr, ok := getterSignature(m.Type); ok {
				bare = &Accessor{Name: name, Method: m, Kind: Getter, Type: typ, ReturnsError: returnsErr}
			}
		}
	}

	switch {
	case is != nil:
		return *is, true
	case bare != nil:
		return *bare, true
	default:
		return Accessor{}, false
	}
}

// FindSetter returns the setter for the named property.
func FindSetter(t reflect.Type, name string) (Accessor, bool) {
	t = Indirect(t)
	if t == nil {
		return Accessor{}, false
	}

	pt := reflect.PointerTo(t)
	for i := range pt.NumMethod() {
		if a, ok := prefixed(pt.Method(i)); ok && a.Kind == Setter && a.Name == name {
			return a, true
		}
	}

	return Accessor{}, false
}

// prefixed recognises Get, Is and Set accessors.
func prefixed(m reflect.Method) (Accessor, bool) {
	if rest, ok := suffix(m.Name, prefixGet); ok {
		if typ, returnsErr, ok := getterSignature(m.Type); ok {
			return Accessor{Name: PropertyName(rest), Method: m, Kind: Getter, Type: typ, ReturnsError: returnsErr}, true
		}
	}
	if rest, ok := suffix(m.Name, prefixIs); ok {
		if typ, returnsErr, ok := getterSignature(m.Type); ok && typ.Kind() == reflect.Bool {
			return Accessor{Name: PropertyName(rest), Method: m, Kind: Getter, Type: typ, ReturnsError: returnsErr}, true
		}
	}
	if rest, ok := suffix(m.Name, prefixSet); ok {
		if typ, returnsErr, ok := setterSignature(m.Type); ok {
			return Accessor{Name: PropertyName(rest), Method: m, Kind: Setter, Type: typ, ReturnsError: returnsErr}, true
		}
	}

	return Accessor{}, false
}

// getterSignature matches func(recv) V and func(recv) (V, error).
func getterSignature(ft reflect.Type) (reflect.Type, bool, bool) {
	if ft.NumIn() != 1 || ft.IsVariadic() {
		return nil, false, false
	}
	switch ft.NumOut() {
	case 1:
		if ft.Out(0) == errorType {
			return nil, false, false
		}
		return ft.Out(0), false, true
	case 2:
		if ft.Out(1) != errorType {
			return nil, false, false
		}
		return ft.Out(0), true, true
	default:
		return nil, false, false
	}
}

// setterSignature matches func(recv, V) and func(recv, V) error.
func setterSignature(ft reflect.Type) (reflect.Type, bool, bool) {
	if ft.NumIn() != 2 || ft.IsVariadic() {
		return nil, false, false
	}
	switch ft.NumOut() {
	case 0:
		return ft.In(1), false, true
	case 1:
		if ft.Out(0) != errorType {
			return nil, false, false
		}
		return ft.In(1), true, true
	default:
		return nil, false, false
	}
}

// Indirect returns the struct type behind t, dereferencing pointers. It
// returns nil when t does not describe a struct.
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	return t
}
