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
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"rivaas.dev/beanz/codec"
	"rivaas.dev/beanz/reflector"
)

// Describer builds bean descriptors with a fixed configuration and caches
// them per struct type.
//
// Use [New] or [MustNew] to create a configured Describer, or use the
// package-level functions ([Describe], [Wrap]) for the defaults.
//
// Describer is safe for concurrent use by multiple goroutines.
//
// Example:
//
//	describer := beanz.MustNew(
//	    beanz.WithConverter(uuid.Parse, uuid.UUID.String),
//	    beanz.WithTimeLayouts("02.01.2006"),
//	    beanz.WithLogger(slog.Default()),
//	)
//
//	desc, err := describer.Describe(reflect.TypeFor[Config]())
type Describer struct {
	cfg       *config
	cache     *descriptorCache
	telemetry *telemetry
}

// New creates a [Describer] with the given options.
//
// Options are applied in order over the defaults: the ignore set {"_"},
// unexported fields included, built-in codecs only, no event handler, and
// the global otel tracer and meter providers. Every invalid option is
// reported, joined into one error.
//
// Parameters:
//   - opts: Functional options such as [WithCodec], [WithIgnored] or [WithLogger]
//
// Returns an error if configuration is invalid or a counter cannot be
// created from the meter provider.
//
// Example:
//
//	describer, err := beanz.New(beanz.WithExportedFieldsOnly())
//	if err != nil {
//	    return fmt.Errorf("failed to create describer: %w", err)
//	}
func New(opts ...Option) (*Describer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tel, err := newTelemetry(cfg)
	if err != nil {
		return nil, err
	}

	return &Describer{cfg: cfg, cache: newDescriptorCache(), telemetry: tel}, nil
}

// MustNew creates a [Describer] with the given options.
// Panics if configuration is invalid.
//
// Use in main() or init() where panic on startup is acceptable.
func MustNew(opts ...Option) *Describer {
	d, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("beanz.MustNew: %v", err))
	}

	return d
}

// Describe returns the descriptor of t, which must be a struct type or a
// pointer to one.
//
// The first call for a type resolves every property and its codec and
// caches the result; later calls return the same descriptor. Ambiguous
// properties are dropped from the result and reported by
// [BeanDescriptor.Dropped], never as an error.
//
// Parameters:
//   - t: The struct type to describe; pointers are dereferenced
//
// Returns [ErrNotStruct] when t does not lead to a struct type.
func (d *Describer) Describe(t reflect.Type) (*BeanDescriptor, error) {
	return d.DescribeContext(context.Background(), t)
}

// DescribeContext is like [Describer.Describe] and parents the describe
// span to ctx.
func (d *Describer) DescribeContext(ctx context.Context, t reflect.Type) (*BeanDescriptor, error) {
	st := reflector.Indirect(t)
	if st == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}

	bd, hit, err := d.cache.loadOrBuild(st, func() (*BeanDescriptor, error) {
		return d.build(ctx, st)
	})
	if hit {
		d.telemetry.recordHit(ctx, st)
	}

	return bd, err
}

// build resolves the properties of t with a fresh registry seeded from
// the built-in and configured codecs.
func (d *Describer) build(ctx context.Context, t reflect.Type) (bd *BeanDescriptor, err error) {
	ctx, span := d.telemetry.startDescribe(ctx, t)
	defer func() {
		d.telemetry.finishDescribe(ctx, span, t, bd, err)
		span.End()
	}()

	reg := codec.NewRegistry(d.cfg.seed())
	bd = &BeanDescriptor{typ: t}
	r := &resolver{cfg: d.cfg, typ: t, reg: reg, owner: bd}
	r.build()

	d.cfg.emit(EventDebug, "descriptor built",
		"type", t.String(), "properties", bd.Len(), "dropped", len(bd.dropped), "codecs", bd.codecs.Len())

	return bd, nil
}

// Wrap describes the type ptr points to and binds ptr.
func (d *Describer) Wrap(ptr any) (*Bean, error) {
	t := reflect.TypeOf(ptr)
	if t == nil || t.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("%w: have %T", ErrTargetType, ptr)
	}
	bd, err := d.Describe(t)
	if err != nil {
		return nil, err
	}

	return bd.Bind(ptr)
}

// Warmup describes the types of the given values so later calls are served
// from the cache. Values may be structs or pointers to structs. All errors
// are returned together.
//
// Example:
//
//	err := describer.Warmup(Config{}, &Server{})
func (d *Describer) Warmup(values ...any) error {
	var errs []error
	for _, v := range values {
		if _, err := d.Describe(reflect.TypeOf(v)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Cached returns the number of descriptors in the cache.
func (d *Describer) Cached() int {
	return d.cache.len()
}

var defaultDescriber = sync.OnceValue(func() *Describer {
	return MustNew()
})

// Describe returns the descriptor of t. Without options the result comes
// from a shared cache; with options a new [Describer] is built for the call,
// so repeated calls with options should use [New] instead.
//
// Parameters:
//   - t: The struct type to describe (or a pointer to it)
//   - opts: Options for a one-off [Describer]; none uses the shared default
//
// Returns [ErrNotStruct] for non-struct types, or the option errors of [New].
//
// Example:
//
//	desc, err := beanz.Describe(reflect.TypeFor[Config]())
//	if err != nil {
//	    return err
//	}
//	for _, p := range desc.Properties() {
//	    fmt.Println(p)
//	}
func Describe(t reflect.Type, opts ...Option) (*BeanDescriptor, error) {
	if len(opts) == 0 {
		return defaultDescriber().Describe(t)
	}
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return d.Describe(t)
}

// DescribeOf returns the descriptor of T. See [Describe].
func DescribeOf[T any](opts ...Option) (*BeanDescriptor, error) {
	return Describe(reflect.TypeFor[T](), opts...)
}

// Wrap describes the type ptr points to and binds ptr, using the shared
// default [Describer].
//
// Example:
//
//	bean, err := beanz.Wrap(&cfg)
//	if err != nil {
//	    return err
//	}
//	port, err := bean.GetString("port")
func Wrap(ptr any) (*Bean, error) {
	return defaultDescriber().Wrap(ptr)
}

// MustWrap is like [Wrap] but panics on error.
func MustWrap(ptr any) *Bean {
	b, err := Wrap(ptr)
	if err != nil {
		panic(fmt.Sprintf("beanz.MustWrap: %v", err))
	}

	return b
}
