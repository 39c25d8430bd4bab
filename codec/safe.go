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
	"reflect"
	"strings"
)

// safeCodec maps the empty string to the null object and back for a codec
// that does not tolerate one or both on its own.
type safeCodec struct {
	inner      Codec
	nullDecode bool
	nullEncode bool
}

// Safe adapts a codec of a nullable type so that decoding blank text yields
// the null object and encoding the null object yields the empty string.
//
// Safe probes c by calling Decode("") and Encode with the null object,
// recovering panics, and only interposes handling for the probes that
// failed. When both succeed, c is returned unchanged. Codecs of types without
// a null object are rejected with [ErrNotNullable].
func Safe(c Codec) (Codec, error) {
	if c == nil {
		return nil, ErrNoCodec
	}
	if !Nullable(c.Type()) {
		return nil, fmt.Errorf("%w: %v", ErrNotNullable, c.Type())
	}
	if _, ok := c.(*safeCodec); ok {
		return c, nil
	}

	decodes := probe(func() error {
		_, err := c.Decode("")
		return err
	})
	encodes := probe(func() error {
		_, err := c.Encode(reflect.Zero(c.Type()))
		return err
	})
	if decodes && encodes {
		return c, nil
	}

	return &safeCodec{inner: c, nullDecode: !decodes, nullEncode: !encodes}, nil
}

// MustSafe is like [Safe] but panics on error.
func MustSafe(c Codec) Codec {
	s, err := Safe(c)
	if err != nil {
		panic(fmt.Sprintf("codec.MustSafe: %v", err))
	}

	return s
}

// probe reports whether fn completes without error or panic.
func probe(fn func() error) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return fn() == nil
}

func (c *safeCodec) Type() reflect.Type { return c.inner.Type() }

func (c *safeCodec) Encode(v reflect.Value) (string, error) {
	if c.nullEncode && IsNull(v) {
		return "", nil
	}

	return c.inner.Encode(v)
}

func (c *safeCodec) Decode(s string) (reflect.Value, error) {
	if c.nullDecode && strings.TrimSpace(s) == "" {
		return reflect.Zero(c.inner.Type()), nil
	}

	return c.inner.Decode(s)
}

// Unwrap returns the adapted codec.
func (c *safeCodec) Unwrap() Codec { return c.inner }

func (c *safeCodec) String() string {
	return "safe " + Describe(c.inner)
}
