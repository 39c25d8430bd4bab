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
	"net"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// scalarCodec converts single values. parse writes into a settable value of
// typ and format reads a non-null value of typ.
//
// Nullable scalars (net.IP) map the empty string and the null object onto
// each other; all other scalars reject both.
type scalarCodec struct {
	typ      reflect.Type
	nullable bool
	parse    func(s string, out reflect.Value) error
	format   func(v reflect.Value) (string, error)
}

func newScalar(t reflect.Type, parse func(string, reflect.Value) error, format func(reflect.Value) (string, error)) *scalarCodec {
	return &scalarCodec{typ: t, nullable: Nullable(t), parse: parse, format: format}
}

func (c *scalarCodec) Type() reflect.Type { return c.typ }

func (c *scalarCodec) Encode(v reflect.Value) (string, error) {
	if IsNull(v) {
		if c.nullable {
			return "", nil
		}
		return "", fmt.Errorf("encode %v: %w", c.typ, ErrNull)
	}
	v, err := coerce(v, c.typ)
	if err != nil {
		return "", err
	}

	return c.format(v)
}

func (c *scalarCodec) Decode(s string) (reflect.Value, error) {
	if c.nullable && strings.TrimSpace(s) == "" {
		return reflect.Zero(c.typ), nil
	}
	out := reflect.New(c.typ).Elem()
	if err := c.parse(s, out); err != nil {
		return reflect.Value{}, fmt.Errorf("decode %q as %v: %w", s, c.typ, err)
	}

	return out, nil
}

func (c *scalarCodec) String() string {
	return fmt.Sprintf("%v codec", c.typ)
}

// kindCodec returns a codec for t built from its kind. It covers the
// predeclared types and every named type defined on top of them.
func kindCodec(t reflect.Type) (Codec, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return newScalar(t, parseBool, formatBool), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return newScalar(t, parseInt, formatInt), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return newScalar(t, parseUint, formatUint), true
	case reflect.Float32, reflect.Float64:
		return newScalar(t, parseFloat, formatFloat), true
	case reflect.Complex64, reflect.Complex128:
		return newScalar(t, parseComplex, formatComplex), true
	case reflect.String:
		return newScalar(t, parseString, formatString), true
	default:
		return nil, false
	}
}

func parseBool(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	b, err := cast.ToBoolE(s)
	if err != nil {
		return err
	}
	out.SetBool(b)

	return nil
}

func formatBool(v reflect.Value) (string, error) {
	return cast.ToStringE(v.Bool())
}

func parseInt(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer: %w", err)
	}
	if out.OverflowInt(n) {
		return fmt.Errorf("%w: %d overflows %v", ErrOutOfRange, n, out.Type())
	}
	out.SetInt(n)

	return nil
}

func formatInt(v reflect.Value) (string, error) {
	return cast.ToStringE(v.Int())
}

func parseUint(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer: %w", err)
	}
	if out.OverflowUint(n) {
		return fmt.Errorf("%w: %d overflows %v", ErrOutOfRange, n, out.Type())
	}
	out.SetUint(n)

	return nil
}

func formatUint(v reflect.Value) (string, error) {
	return cast.ToStringE(v.Uint())
}

func parseFloat(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	if out.Kind() == reflect.Float32 {
		f, err := cast.ToFloat32E(s)
		if err != nil {
			return err
		}
		out.SetFloat(float64(f))

		return nil
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return err
	}
	out.SetFloat(f)

	return nil
}

func formatFloat(v reflect.Value) (string, error) {
	if v.Kind() == reflect.Float32 {
		return cast.ToStringE(float32(v.Float()))
	}

	return cast.ToStringE(v.Float())
}

// cast has no complex support.
func parseComplex(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	c, err := strconv.ParseComplex(s, out.Type().Bits())
	if err != nil {
		return err
	}
	out.SetComplex(c)

	return nil
}

func formatComplex(v reflect.Value) (string, error) {
	return strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()), nil
}

func parseString(s string, out reflect.Value) error {
	out.SetString(s)
	return nil
}

func formatString(v reflect.Value) (string, error) {
	return v.String(), nil
}

func parseDuration(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	d, err := cast.ToDurationE(s)
	if err != nil {
		return err
	}
	out.SetInt(int64(d))

	return nil
}

func formatDuration(v reflect.Value) (string, error) {
	return time.Duration(v.Int()).String(), nil
}

func parseURL(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	out.Set(reflect.ValueOf(*u))

	return nil
}

func formatURL(v reflect.Value) (string, error) {
	u := v.Interface().(url.URL)
	return u.String(), nil
}

func parseIP(s string, out reflect.Value) error {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return fmt.Errorf("%w: invalid IP address", ErrInvalidValue)
	}
	out.Set(reflect.ValueOf(ip))

	return nil
}

func formatIP(v reflect.Value) (string, error) {
	return v.Interface().(net.IP).String(), nil
}

func parseIPNet(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	_, n, err := net.ParseCIDR(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	out.Set(reflect.ValueOf(*n))

	return nil
}

func formatIPNet(v reflect.Value) (string, error) {
	n := v.Interface().(net.IPNet)
	return n.String(), nil
}

func parseRegexp(s string, out reflect.Value) error {
	if s == "" {
		return ErrEmptyValue
	}
	re, err := regexp.Compile(s)
	if err != nil {
		return err
	}
	out.Set(reflect.ValueOf(re).Elem())

	return nil
}

func formatRegexp(v reflect.Value) (string, error) {
	re := v.Interface().(regexp.Regexp)
	return re.String(), nil
}
