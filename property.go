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

	"rivaas.dev/beanz/codec"
	"rivaas.dev/beanz/reflector"
)

// Property is a property of one bound struct value.
type Property struct {
	bean *Bean
	desc *PropertyDescriptor
}

// Name returns the property name.
func (p *Property) Name() string { return p.desc.name }

// Descriptor returns the property descriptor.
func (p *Property) Descriptor() *PropertyDescriptor { return p.desc }

// Bean returns the bean the handle belongs to.
func (p *Property) Bean() *Bean { return p.bean }

// Shape returns the structural shape of the value type.
func (p *Property) Shape() reflector.Shape { return p.desc.shape }

// Type returns the value type.
func (p *Property) Type() reflect.Type { return p.desc.typ }

// Readable reports whether the property can be read.
func (p *Property) Readable() bool { return p.desc.Readable() }

// Writable reports whether the property can be written.
func (p *Property) Writable() bool { return p.desc.Writable() }

// Codec returns the codec of the value type, or nil.
func (p *Property) Codec() codec.Codec { return p.desc.Codec() }

// Get returns the current value.
func (p *Property) Get() (any, error) {
	v, err := p.desc.get(p.bean.target)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// Set sets the value. A nil value sets the zero value.
func (p *Property) Set(value any) error {
	return p.desc.setAny(p.bean.target, value)
}

// GetString returns the encoded value.
func (p *Property) GetString() (string, error) {
	return p.desc.getString(p.bean.target)
}

// SetString decodes s and sets the result.
func (p *Property) SetString(s string) error {
	return p.desc.setString(p.bean.target, s)
}

// Strings returns the encoded elements of an array or collection.
func (p *Property) Strings() ([]string, error) {
	return p.desc.strings(p.bean.target)
}

// SetStrings decodes each element and sets the result.
func (p *Property) SetStrings(items []string) error {
	return p.desc.setStrings(p.bean.target, items)
}

// Values returns the elements of an array or collection.
func (p *Property) Values() ([]any, error) {
	return p.desc.values(p.bean.target)
}

// StringMap returns the encoded entries of a map.
func (p *Property) StringMap() (map[string]string, error) {
	return p.desc.stringMap(p.bean.target)
}

// SetStringMap decodes each entry and sets the result.
func (p *Property) SetStringMap(entries map[string]string) error {
	return p.desc.setStringMap(p.bean.target, entries)
}

// String returns the descriptor string.
func (p *Property) String() string { return p.desc.String() }
