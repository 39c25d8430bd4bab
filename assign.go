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
	"reflect"
	"slices"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Assign sets the property from a loosely typed value, such as one decoded
// from JSON, YAML or environment variables. Nil and values assignable to
// the property type are set as with [Property.Set]. Other values are
// converted: strings are decoded with the property codec when one exists,
// and numbers, booleans, slices and maps are converted with weak typing.
//
// Example:
//
//	p, _ := bean.Property("ports")
//	err := p.Assign([]any{"80", 443})
func (p *Property) Assign(value any) error {
	if !p.desc.Writable() {
		return p.desc.fail("assign", ErrNotWritable)
	}
	if value == nil || reflect.TypeOf(value).AssignableTo(p.desc.typ) {
		return p.desc.setAny(p.bean.target, value)
	}

	out := reflect.New(p.desc.typ)
	dec, err := mapstructure.NewDecoder(p.bean.decoderConfig(out.Interface()))
	if err != nil {
		return p.desc.fail("assign", fmt.Errorf("failed to create decoder: %w", err))
	}
	if err = dec.Decode(value); err != nil {
		return p.desc.fail("assign", err)
	}

	return p.desc.set(p.bean.target, out.Elem())
}

// Assign sets every named property from values, in name order. Failures do
// not stop the remaining assignments; they are returned joined.
//
// Example:
//
//	err := bean.Assign(map[string]any{
//	    "host":    "localhost",
//	    "port":    "8080",
//	    "timeout": "5s",
//	})
func (b *Bean) Assign(values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []error
	for _, name := range names {
		p, err := b.lookup(name, "assign")
		if err == nil {
			err = p.Assign(values[name])
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// decoderConfig returns the mapstructure configuration decoding into result.
// String inputs go through the bean's codecs first so list and map text use
// the same grammar as [Property.SetString].
func (b *Bean) decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "beanz",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			b.codecHook(),
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToURLHookFunc(),
		),
	}
}

// codecHook decodes strings into types the descriptor holds a codec for.
func (b *Bean) codecHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || from == to {
			return data, nil
		}
		c, ok := b.desc.Codec(to)
		if !ok {
			return data, nil
		}
		v, err := c.Decode(reflect.ValueOf(data).String())
		if err != nil {
			return nil, err
		}
		if !v.IsValid() {
			return reflect.Zero(to).Interface(), nil
		}

		return v.Interface(), nil
	}
}
