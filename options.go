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
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/beanz/codec"
)

// DefaultIgnored is the member name skipped during discovery unless
// [WithoutDefaultIgnored] is given. It matches blank fields, which carry
// struct layout rather than instance data.
const DefaultIgnored = "_"

// Option configures a [Describer].
type Option func(*config)

// config holds the settings shared by every descriptor a Describer builds.
type config struct {
	ignored        map[string]bool
	exportedOnly   bool
	codecs         []codec.Codec
	timeLayouts    []string
	eventHandler   EventHandler
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider

	// errs collects option errors reported by validate.
	errs []error
}

// defaultConfig returns a configuration with default values.
func defaultConfig() *config {
	return &config{
		ignored:        map[string]bool{DefaultIgnored: true},
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
}

// validate checks the configuration and returns all problems at once.
func (c *config) validate() error {
	errs := append([]error(nil), c.errs...)
	if c.tracerProvider == nil {
		errs = append(errs, errors.New("tracer provider must not be nil"))
	}
	if c.meterProvider == nil {
		errs = append(errs, errors.New("meter provider must not be nil"))
	}
	seen := make(map[reflect.Type]bool, len(c.codecs))
	for _, cd := range c.codecs {
		if seen[cd.Type()] {
			errs = append(errs, fmt.Errorf("duplicate codec for %v", cd.Type()))
		}
		seen[cd.Type()] = true
	}

	return errors.Join(errs...)
}

// seed returns the codec map a new registry starts from: the built-ins,
// then the time layouts, then the custom codecs. Pointer codecs derived from
// an overridden type are removed so they are re-derived from the override.
func (c *config) seed() map[reflect.Type]codec.Codec {
	seed := codec.BuiltIns()
	override := func(cd codec.Codec) {
		seed[cd.Type()] = cd
		delete(seed, reflect.PointerTo(cd.Type()))
	}
	if len(c.timeLayouts) > 0 {
		override(codec.Time(c.timeLayouts...))
	}
	for _, cd := range c.codecs {
		override(cd)
	}

	return seed
}

// WithIgnored adds member names that are never turned into properties.
//
// Example:
//
//	beanz.MustNew(beanz.WithIgnored("password", "internalState"))
func WithIgnored(names ...string) Option {
	return func(c *config) {
		for _, name := range names {
			c.ignored[name] = true
		}
	}
}

// WithoutDefaultIgnored removes [DefaultIgnored] from the ignore set.
// Blank fields are static and are skipped either way; the option only
// matters for an accessor pair named like the ignored member.
func WithoutDefaultIgnored() Option {
	return func(c *config) {
		delete(c.ignored, DefaultIgnored)
	}
}

// WithExportedFieldsOnly restricts field-backed properties to exported
// fields. Without it, unexported fields of the described type's package are
// read and written directly.
func WithExportedFieldsOnly() Option {
	return func(c *config) {
		c.exportedOnly = true
	}
}

// WithCodec registers a codec that takes priority over the built-in codec
// for its type. Codecs for composite types built from that type use it too:
// a codec for T also serves []T, map[string]T and *T.
//
// Parameters:
//   - cd: The codec; its Type method selects the type it serves
//
// Registering two codecs for one type, or a nil codec, makes [New] fail.
//
// Example:
//
//	beanz.WithCodec(codec.Char())
func WithCodec(cd codec.Codec) Option {
	return func(c *config) {
		if cd == nil || cd.Type() == nil {
			c.errs = append(c.errs, fmt.Errorf("WithCodec: %w", codec.ErrNoCodec))
			return
		}
		c.codecs = append(c.codecs, cd)
	}
}

// WithConverter registers a codec for T built from a decode function and an
// optional encode function. A nil encode formats values with fmt.Sprint.
//
// Parameters:
//   - decode: Parses text into T; must not be nil
//   - encode: Formats T as text; nil uses fmt.Sprint
//
// Example:
//
//	beanz.WithConverter(uuid.Parse, uuid.UUID.String)
func WithConverter[T any](decode func(string) (T, error), encode func(T) string) Option {
	if decode == nil {
		return func(c *config) {
			c.errs = append(c.errs, fmt.Errorf("WithConverter[%v]: decode function must not be nil", reflect.TypeFor[T]()))
		}
	}

	return WithCodec(codec.Func(decode, encode))
}

// WithEnum registers a codec for T that accepts only the given values,
// matched case-insensitively by their fmt.Sprint form.
//
// Example:
//
//	type Status string
//
//	beanz.WithEnum(StatusActive, StatusPending, StatusDisabled)
func WithEnum[T comparable](values ...T) Option {
	if len(values) == 0 {
		return func(c *config) {
			c.errs = append(c.errs, fmt.Errorf("WithEnum[%v]: at least one value is required", reflect.TypeFor[T]()))
		}
	}

	return WithCodec(codec.Values(values...))
}

// WithTimeLayouts sets the layouts tried when decoding time.Time values,
// after RFC3339 and the other defaults in [codec.DefaultTimeLayouts].
func WithTimeLayouts(layouts ...string) Option {
	return func(c *config) {
		c.timeLayouts = append(c.timeLayouts, layouts...)
	}
}

// WithEventHandler sets a handler for internal events such as dropped
// properties. By default events are discarded.
func WithEventHandler(handler EventHandler) Option {
	return func(c *config) {
		c.eventHandler = handler
	}
}

// WithLogger sets a logger for internal events.
// It is shorthand for WithEventHandler(DefaultEventHandler(logger)).
func WithLogger(logger *slog.Logger) Option {
	return WithEventHandler(DefaultEventHandler(logger))
}

// WithTracerProvider sets the provider for describe spans.
// Defaults to the global provider from otel.GetTracerProvider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = provider
	}
}

// WithMeterProvider sets the provider for describe counters.
// Defaults to the global provider from otel.GetMeterProvider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = provider
	}
}
