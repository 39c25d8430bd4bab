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
	"reflect"
	"slices"
)

// Bean is a view of one struct value through its [BeanDescriptor]. It holds
// a [Property] handle per property, bound to the value.
//
// A Bean is not safe for concurrent mutation; the underlying value is shared
// with the caller.
type Bean struct {
	desc   *BeanDescriptor
	ptr    any
	target reflect.Value
	props  map[string]*Property
	sorted []*Property
}

func newBean(desc *BeanDescriptor, ptr any, target reflect.Value) *Bean {
	b := &Bean{
		desc:   desc,
		ptr:    ptr,
		target: target,
		props:  make(map[string]*Property, len(desc.sorted)),
		sorted: make([]*Property, len(desc.sorted)),
	}
	for i, pd := range desc.sorted {
		p := &Property{bean: b, desc: pd}
		b.props[pd.name] = p
		b.sorted[i] = p
	}

	return b
}

// Descriptor returns the descriptor the bean was bound with.
func (b *Bean) Descriptor() *BeanDescriptor { return b.desc }

// Target returns the pointer the bean was bound to.
func (b *Bean) Target() any { return b.ptr }

// Property returns the handle of the named property.
func (b *Bean) Property(name string) (*Property, bool) {
	p, ok := b.props[name]
	return p, ok
}

// Properties returns all property handles sorted by name.
func (b *Bean) Properties() []*Property {
	return slices.Clone(b.sorted)
}

// Get returns the value of the named property.
func (b *Bean) Get(name string) (any, error) {
	p, err := b.lookup(name, "get")
	if err != nil {
		return nil, err
	}

	return p.Get()
}

// Set sets the value of the named property.
func (b *Bean) Set(name string, value any) error {
	p, err := b.lookup(name, "set")
	if err != nil {
		return err
	}

	return p.Set(value)
}

// GetString returns the encoded value of the named property.
func (b *Bean) GetString(name string) (string, error) {
	p, err := b.lookup(name, "encode")
	if err != nil {
		return "", err
	}

	return p.GetString()
}

// SetString decodes s and sets the named property.
func (b *Bean) SetString(name, s string) error {
	p, err := b.lookup(name, "decode")
	if err != nil {
		return err
	}

	return p.SetString(s)
}

// SetValue sets the property p, which must be a handle of this bean.
// Handles of other beans fail with [ErrForeignProperty], even when they
// describe the same type.
func (b *Bean) SetValue(p *Property, value any) error {
	if err := b.own(p, "set"); err != nil {
		return err
	}

	return p.Set(value)
}

// SetText decodes s and sets the property p, which must be a handle of
// this bean.
func (b *Bean) SetText(p *Property, s string) error {
	if err := b.own(p, "decode"); err != nil {
		return err
	}

	return p.SetString(s)
}

func (b *Bean) lookup(name, op string) (*Property, error) {
	p, ok := b.props[name]
	if !ok {
		return nil, propertyError(b.desc.typ, name, op, ErrUnknownProperty)
	}

	return p, nil
}

func (b *Bean) own(p *Property, op string) error {
	if p == nil {
		return propertyError(b.desc.typ, "", op, ErrForeignProperty)
	}
	if p.bean != b {
		return propertyError(b.desc.typ, p.Name(), op, ErrForeignProperty)
	}

	return nil
}
