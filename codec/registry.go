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
	"maps"
	"net"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"sync"
	"time"

	"rivaas.dev/beanz/reflector"
)

// builtIns is the process-wide built-in codec set. It is never handed out;
// [BuiltIns] returns copies.
var builtIns = sync.OnceValue(func() map[reflect.Type]Codec {
	m := make(map[reflect.Type]Codec)
	add := func(c Codec) {
		m[c.Type()] = c
		p, err := NewPointer(reflect.PointerTo(c.Type()), c)
		if err != nil {
			panic(fmt.Sprintf("codec: built-in %v: %v", c.Type(), err))
		}
		m[p.Type()] = MustSafe(p)
	}

	for _, t := range []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[string](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[uintptr](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[complex64](),
		reflect.TypeFor[complex128](),
	} {
		c, _ := kindCodec(t)
		add(c)
	}

	add(newScalar(reflect.TypeFor[time.Duration](), parseDuration, formatDuration))
	add(Time())
	add(newScalar(reflect.TypeFor[url.URL](), parseURL, formatURL))
	add(newScalar(reflect.TypeFor[net.IP](), parseIP, formatIP))
	add(newScalar(reflect.TypeFor[net.IPNet](), parseIPNet, formatIPNet))
	add(newScalar(reflect.TypeFor[regexp.Regexp](), parseRegexp, formatRegexp))

	return m
})

// BuiltIns returns a fresh copy of the built-in codecs: every predeclared
// boolean, numeric and string type, time.Duration, time.Time, url.URL,
// net.IP, net.IPNet and regexp.Regexp, and a null-safe pointer codec for
// each of them.
func BuiltIns() map[reflect.Type]Codec {
	return maps.Clone(builtIns())
}

// Registry maps value types to codecs and derives codecs for types it does
// not hold yet. A Registry is not safe for concurrent use; [Registry.Freeze]
// publishes an immutable snapshot.
type Registry struct {
	codecs    map[reflect.Type]Codec
	resolving map[reflect.Type]bool
}

// NewRegistry returns a registry seeded with a copy of seed. A nil seed
// yields an empty registry; pass [BuiltIns] for the default set.
func NewRegistry(seed map[reflect.Type]Codec) *Registry {
	codecs := maps.Clone(seed)
	if codecs == nil {
		codecs = make(map[reflect.Type]Codec)
	}

	return &Registry{codecs: codecs, resolving: make(map[reflect.Type]bool)}
}

// Lookup returns the codec held for exactly t.
func (r *Registry) Lookup(t reflect.Type) (Codec, bool) {
	c, ok := r.codecs[t]
	return c, ok
}

// Register stores c for t, replacing any codec held for t. It fails with
// [ErrTypeMismatch] when c handles a different type.
func (r *Registry) Register(t reflect.Type, c Codec) error {
	if c == nil {
		return fmt.Errorf("%w for %v", ErrNoCodec, t)
	}
	if c.Type() != t {
		return fmt.Errorf("%w: codec for %v registered as %v", ErrTypeMismatch, c.Type(), t)
	}
	r.codecs[t] = c

	return nil
}

// Len returns the number of codecs held.
func (r *Registry) Len() int {
	return len(r.codecs)
}

// Resolve returns a codec for t, building and storing it if needed.
//
// Resolution order:
//  1. a codec held for exactly t
//  2. arrays and slices: a list codec over the element codec
//  3. maps: a map codec over the key and value codecs
//  4. enumerated types (String plus Parse, see the package docs)
//  5. types declaring MarshalText and UnmarshalText
//  6. named boolean, numeric and string types, by kind
//  7. pointers: a null-safe pointer codec over the element codec
//
// Interface, channel, function and unsafe pointer types fail with
// [ErrUnsupportedShape], anywhere in t. Other failures return [ErrNoCodec].
// Failures are not stored.
//
// Codecs built for composite types are stored together with the codecs of
// their parts, so later properties of the same types share one instance. A
// type that refers to itself resolves to [ErrNoCodec] instead of recursing.
//
// Parameters:
//   - t: The value type to convert
//
// Returns the codec for t, or an error wrapping [ErrUnsupportedShape] or
// [ErrNoCodec].
func (r *Registry) Resolve(t reflect.Type) (Codec, error) {
	if t == nil {
		return nil, fmt.Errorf("%w for nil type", ErrNoCodec)
	}
	if c, ok := r.codecs[t]; ok {
		return c, nil
	}
	if r.resolving[t] {
		return nil, fmt.Errorf("%w for recursive type %v", ErrNoCodec, t)
	}

	r.resolving[t] = true
	c, err := r.build(t)
	delete(r.resolving, t)
	if err != nil {
		return nil, err
	}
	r.codecs[t] = c

	return c, nil
}

func (r *Registry) build(t reflect.Type) (Codec, error) {
	if reflector.IsOpaque(t) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedShape, t)
	}

	switch reflector.Classify(t) {
	case reflector.Array:
		elem, err := r.Resolve(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("%v element: %w", t, err)
		}
		return NewArray(t, elem)

	case reflector.Collection:
		elem, err := r.Resolve(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("%v element: %w", t, err)
		}
		return NewCollection(t, elem)

	case reflector.Map:
		key, err := r.Resolve(t.Key())
		if err != nil {
			return nil, fmt.Errorf("%v key: %w", t, err)
		}
		value, err := r.Resolve(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("%v value: %w", t, err)
		}
		return NewMap(t, key, value)
	}

	if c, ok := enumFor(t); ok {
		return c, nil
	}
	if c, ok := textFor(t); ok {
		return c, nil
	}
	if c, ok := kindCodec(t); ok {
		return c, nil
	}
	if t.Kind() == reflect.Ptr {
		elem, err := r.Resolve(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("%v element: %w", t, err)
		}
		p, err := NewPointer(t, elem)
		if err != nil {
			return nil, err
		}
		return Safe(p)
	}

	return nil, fmt.Errorf("%w for %v", ErrNoCodec, t)
}

// Freeze returns an immutable snapshot of the registry.
func (r *Registry) Freeze() *Frozen {
	return &Frozen{codecs: maps.Clone(r.codecs)}
}

// Frozen is a read-only codec table, safe for concurrent use.
type Frozen struct {
	codecs map[reflect.Type]Codec
}

// Lookup returns the codec held for exactly t.
func (f *Frozen) Lookup(t reflect.Type) (Codec, bool) {
	if f == nil {
		return nil, false
	}
	c, ok := f.codecs[t]

	return c, ok
}

// Len returns the number of codecs held.
func (f *Frozen) Len() int {
	if f == nil {
		return 0
	}

	return len(f.codecs)
}

// Types returns the types with a codec, ordered by their string form.
func (f *Frozen) Types() []reflect.Type {
	if f == nil {
		return nil
	}
	out := make([]reflect.Type, 0, len(f.codecs))
	for t := range f.codecs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})

	return out
}
