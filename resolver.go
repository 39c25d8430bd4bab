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
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"rivaas.dev/beanz/codec"
	"rivaas.dev/beanz/reflector"
)

// resolver builds the property descriptors of one struct type.
// It is used by a single goroutine for a single build.
type resolver struct {
	cfg   *config
	typ   reflect.Type
	reg   *codec.Registry
	owner *BeanDescriptor
}

// candidates returns the names to try, in order: accessor-derived names
// sorted, then field names in field order. Each name appears once.
func (r *resolver) candidates() []string {
	seen := make(map[string]bool)
	var fromAccessors []string
	for _, a := range reflector.Accessors(r.typ) {
		if !seen[a.Name] {
			seen[a.Name] = true
			fromAccessors = append(fromAccessors, a.Name)
		}
	}
	slices.Sort(fromAccessors)

	names := fromAccessors
	for _, f := range reflector.Fields(r.typ) {
		if f.Static || seen[f.Name] || !r.fieldVisible(f) {
			continue
		}
		seen[f.Name] = true
		names = append(names, f.Name)
	}

	return names
}

func (r *resolver) fieldVisible(f reflector.Field) bool {
	return f.Exported || !r.cfg.exportedOnly
}

// build resolves every candidate and collects the results into owner.
func (r *resolver) build() {
	owner := r.owner
	owner.props = make(map[string]*PropertyDescriptor)
	for _, name := range r.candidates() {
		if r.cfg.ignored[name] {
			continue
		}
		p, err := r.resolve(name)
		var ambiguous *AmbiguousPropertyError
		switch {
		case errors.As(err, &ambiguous):
			owner.dropped = append(owner.dropped, ambiguous)
			r.cfg.emit(EventWarning, "property dropped",
				"type", r.typ.String(), "property", name, "reason", ambiguous.Reason)
		case err != nil:
			r.cfg.emit(EventError, "property resolution failed",
				"type", r.typ.String(), "property", name, "error", err)
		case p != nil:
			owner.props[name] = p
			owner.sorted = append(owner.sorted, p)
		}
	}
	slices.SortFunc(owner.sorted, func(a, b *PropertyDescriptor) int {
		return cmp.Compare(a.name, b.name)
	})
	owner.codecs = r.reg.Freeze()
}

// resolve builds the descriptor for name. It returns nil without error when
// the type has no member of that name.
func (r *resolver) resolve(name string) (*PropertyDescriptor, error) {
	getter, hasGetter := reflector.FindGetter(r.typ, name)
	setter, hasSetter := reflector.FindSetter(r.typ, name)
	field, hasField := reflector.FindField(r.typ, name)
	if hasField && !r.fieldVisible(field) {
		hasField = false
	}
	if !hasGetter && !hasSetter && !hasField {
		return nil, nil
	}

	var accessors *accessorAccess
	if hasGetter || hasSetter {
		accessors = &accessorAccess{}
		if hasGetter {
			accessors.getter = &getter
		}
		if hasSetter {
			accessors.setter = &setter
		}
		if hasGetter && hasSetter && getter.Type != setter.Type {
			return nil, r.ambiguous(name, "%s returns %v, %s takes %v",
				getter.Method.Name, getter.Type, setter.Method.Name, setter.Type)
		}
	}

	// A full accessor pair defines the type; a field of another type is ignored.
	if hasGetter && hasSetter && hasField && field.Type != getter.Type {
		hasField = false
	}

	var strategy access
	switch {
	case accessors != nil && hasField:
		if accessors.valueType() != field.Type {
			return nil, r.ambiguous(name, "accessors use %v, field %s is %v",
				accessors.valueType(), field, field.Type)
		}
		composite, err := newComposite(accessors, &fieldAccess{field: field})
		if err != nil {
			return nil, err
		}
		strategy = composite
	case accessors != nil:
		strategy = accessors
	default:
		strategy = &fieldAccess{field: field}
	}

	typ := strategy.valueType()
	if _, err := r.reg.Resolve(typ); err != nil {
		r.cfg.emit(EventDebug, "property has no codec",
			"type", r.typ.String(), "property", name, "value_type", typ.String(), "error", err)
	}

	return &PropertyDescriptor{
		name:   name,
		typ:    typ,
		shape:  reflector.Classify(typ),
		access: strategy,
		owner:  r.owner,
	}, nil
}

func (r *resolver) ambiguous(name, format string, args ...any) error {
	return &AmbiguousPropertyError{Type: r.typ, Property: name, Reason: fmt.Sprintf(format, args...)}
}
