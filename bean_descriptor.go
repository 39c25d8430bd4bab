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
	"slices"
	"strings"

	"rivaas.dev/beanz/codec"
)

// BeanDescriptor is the property map of a struct type together with the
// codecs resolved while building it. It is immutable and safe for
// concurrent use.
type BeanDescriptor struct {
	typ     reflect.Type
	props   map[string]*PropertyDescriptor
	sorted  []*PropertyDescriptor
	codecs  *codec.Frozen
	dropped []*AmbiguousPropertyError
}

// Type returns the described struct type.
func (b *BeanDescriptor) Type() reflect.Type { return b.typ }

// Property returns the property with the given name.
func (b *BeanDescriptor) Property(name string) (*PropertyDescriptor, bool) {
	p, ok := b.props[name]
	return p, ok
}

// Properties returns all properties sorted by name.
func (b *BeanDescriptor) Properties() []*PropertyDescriptor {
	return slices.Clone(b.sorted)
}

// Names returns the property names in sorted order.
func (b *BeanDescriptor) Names() []string {
	names := make([]string, len(b.sorted))
	for i, p := range b.sorted {
		names[i] = p.name
	}

	return names
}

// Len returns the number of properties.
func (b *BeanDescriptor) Len() int { return len(b.sorted) }

// Codec returns the codec resolved for t while building the descriptor.
// Property value types and the types they are built from are present.
func (b *BeanDescriptor) Codec(t reflect.Type) (codec.Codec, bool) {
	return b.codecs.Lookup(t)
}

// Codecs returns the codecs resolved while building the descriptor.
func (b *BeanDescriptor) Codecs() *codec.Frozen { return b.codecs }

// Dropped returns the names left out because their members disagree about
// the value type, in discovery order.
func (b *BeanDescriptor) Dropped() []*AmbiguousPropertyError {
	return slices.Clone(b.dropped)
}

// Bind returns a view of ptr, which must be a non-nil pointer to a struct of
// the described type.
//
// The view reads and writes ptr through the descriptor's properties and
// holds no copy of the struct. Views are cheap; bind once per value. A view
// is not safe for concurrent writes to the same value.
//
// Parameters:
//   - ptr: Pointer to the struct value to view (e.g. &cfg)
//
// Returns [ErrNilDescriptor] on a nil descriptor and [ErrTargetType] when
// ptr is nil, not a pointer, or points to another type.
//
// Example:
//
//	desc, _ := beanz.Describe(reflect.TypeFor[Config]())
//	bean, err := desc.Bind(&cfg)
//	if err != nil {
//	    return err
//	}
//	err = bean.SetString("timeout", "5s")
func (b *BeanDescriptor) Bind(ptr any) (*Bean, error) {
	if b == nil {
		return nil, ErrNilDescriptor
	}
	tv, err := b.target(ptr)
	if err != nil {
		return nil, err
	}

	return newBean(b, ptr, tv), nil
}

// String lists the type and its properties, one per line.
func (b *BeanDescriptor) String() string {
	var sb strings.Builder
	sb.WriteString(b.typ.String())
	for _, p := range b.sorted {
		sb.WriteString("\n  ")
		sb.WriteString(p.String())
	}

	return sb.String()
}

// target returns the struct value ptr points to.
func (b *BeanDescriptor) target(ptr any) (reflect.Value, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Type().Elem() != b.typ {
		return reflect.Value{}, fmt.Errorf("%w: have %T, want *%v", ErrTargetType, ptr, b.typ)
	}

	return rv.Elem(), nil
}
