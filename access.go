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
	"strings"
	"unsafe"

	"rivaas.dev/beanz/reflector"
)

// Access identifies how a property reaches its value.
type Access int

const (
	// FieldAccess reads and writes a struct field directly.
	FieldAccess Access = iota

	// AccessorAccess calls getter and setter methods.
	AccessorAccess

	// CompositeAccess combines accessors with the field of the same name.
	// Reads and writes use the first delegate able to perform them,
	// accessors before the field.
	CompositeAccess
)

// String returns the string representation of the access strategy.
func (a Access) String() string {
	switch a {
	case FieldAccess:
		return "field"
	case AccessorAccess:
		return "accessor"
	case CompositeAccess:
		return "composite"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

// access is the strategy behind a property. Targets passed to get and set
// are addressable struct values of the described type.
type access interface {
	kind() Access
	valueType() reflect.Type
	readable() bool
	writable() bool
	get(target reflect.Value) (reflect.Value, error)
	set(target, v reflect.Value) error
	tag(key string) (string, bool)
	String() string
}

// fieldAccess reaches a field by its index path. Unexported fields are
// reached through reflect.NewAt.
type fieldAccess struct {
	field reflector.Field
}

func (a *fieldAccess) kind() Access            { return FieldAccess }
func (a *fieldAccess) valueType() reflect.Type { return a.field.Type }
func (a *fieldAccess) readable() bool          { return true }
func (a *fieldAccess) writable() bool          { return a.field.Mutable }

func (a *fieldAccess) value(target reflect.Value) reflect.Value {
	v := target
	for _, i := range a.field.Index {
		v = v.Field(i)
		if !v.CanSet() {
			v = reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
		}
	}

	return v
}

func (a *fieldAccess) get(target reflect.Value) (reflect.Value, error) {
	return a.value(target), nil
}

func (a *fieldAccess) set(target, v reflect.Value) error {
	if !a.field.Mutable {
		return ErrNotWritable
	}
	a.value(target).Set(v)

	return nil
}

func (a *fieldAccess) tag(key string) (string, bool) {
	return a.field.StructField.Tag.Lookup(key)
}

func (a *fieldAccess) String() string {
	s := "field " + a.field.String()
	if !a.field.Mutable {
		s += " (readonly)"
	}

	return s
}

// accessorAccess calls a getter, a setter, or both. At least one is set.
type accessorAccess struct {
	getter *reflector.Accessor
	setter *reflector.Accessor
}

func (a *accessorAccess) kind() Access { return AccessorAccess }

func (a *accessorAccess) valueType() reflect.Type {
	if a.getter != nil {
		return a.getter.Type
	}

	return a.setter.Type
}

func (a *accessorAccess) readable() bool { return a.getter != nil }
func (a *accessorAccess) writable() bool { return a.setter != nil }

func (a *accessorAccess) get(target reflect.Value) (reflect.Value, error) {
	if a.getter == nil {
		return reflect.Value{}, ErrNotReadable
	}
	out := a.getter.Method.Func.Call([]reflect.Value{target.Addr()})
	if a.getter.ReturnsError {
		if err, _ := out[1].Interface().(error); err != nil {
			return reflect.Value{}, err
		}
	}

	return out[0], nil
}

func (a *accessorAccess) set(target, v reflect.Value) error {
	if a.setter == nil {
		return ErrNotWritable
	}
	out := a.setter.Method.Func.Call([]reflect.Value{target.Addr(), v})
	if a.setter.ReturnsError {
		if err, _ := out[0].Interface().(error); err != nil {
			return err
		}
	}

	return nil
}

func (a *accessorAccess) tag(string) (string, bool) { return "", false }

func (a *accessorAccess) String() string {
	var parts []string
	if a.getter != nil {
		parts = append(parts, a.getter.String())
	}
	if a.setter != nil {
		parts = append(parts, a.setter.String())
	}

	return strings.Join(parts, " / ")
}

// compositeAccess delegates to the first capable strategy.
type compositeAccess struct {
	delegates []access
}

// newComposite combines delegates that agree on the value type.
func newComposite(delegates ...access) (*compositeAccess, error) {
	if len(delegates) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDelegates, len(delegates))
	}
	typ := delegates[0].valueType()
	for _, d := range delegates[1:] {
		if d.valueType() != typ {
			return nil, fmt.Errorf("%w: %v and %v", ErrInvalidDelegates, typ, d.valueType())
		}
	}

	return &compositeAccess{delegates: delegates}, nil
}

func (a *compositeAccess) kind() Access            { return CompositeAccess }
func (a *compositeAccess) valueType() reflect.Type { return a.delegates[0].valueType() }

func (a *compositeAccess) readable() bool {
	for _, d := range a.delegates {
		if d.readable() {
			return true
		}
	}

	return false
}

func (a *compositeAccess) writable() bool {
	for _, d := range a.delegates {
		if d.writable() {
			return true
		}
	}

	return false
}

func (a *compositeAccess) get(target reflect.Value) (reflect.Value, error) {
	for _, d := range a.delegates {
		if d.readable() {
			return d.get(target)
		}
	}

	return reflect.Value{}, ErrNotReadable
}

func (a *compositeAccess) set(target, v reflect.Value) error {
	for _, d := range a.delegates {
		if d.writable() {
			return d.set(target, v)
		}
	}

	return ErrNotWritable
}

func (a *compositeAccess) tag(key string) (string, bool) {
	for _, d := range a.delegates {
		if v, ok := d.tag(key); ok {
			return v, true
		}
	}

	return "", false
}

func (a *compositeAccess) String() string {
	parts := make([]string, len(a.delegates))
	for i, d := range a.delegates {
		parts[i] = d.String()
	}

	return strings.Join(parts, " / ")
}
