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
	"time"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// funcCodec adapts a pair of typed functions to [Codec].
type funcCodec[T any] struct {
	typ    reflect.Type
	desc   string
	decode func(string) (T, error)
	encode func(T) (string, error)
}

// Func returns a codec for T built from a decode and an encode function.
// A nil encode formats values with fmt.Sprint.
//
// Example:
//
//	type Celsius float64
//
//	c := codec.Func(
//	    func(s string) (Celsius, error) {
//	        f, err := strconv.ParseFloat(strings.TrimSuffix(s, "C"), 64)
//	        return Celsius(f), err
//	    },
//	    func(c Celsius) string { return fmt.Sprintf("%gC", float64(c)) },
//	)
func Func[T any](decode func(string) (T, error), encode func(T) string) Codec {
	if encode == nil {
		encode = func(v T) string { return fmt.Sprint(v) }
	}

	return newFunc("", decode, func(v T) (string, error) { return encode(v), nil })
}

func newFunc[T any](desc string, decode func(string) (T, error), encode func(T) (string, error)) *funcCodec[T] {
	typ := reflect.TypeFor[T]()
	if desc == "" {
		desc = fmt.Sprintf("%v codec", typ)
	}

	return &funcCodec[T]{typ: typ, desc: desc, decode: decode, encode: encode}
}

func (c *funcCodec[T]) Type() reflect.Type { return c.typ }

func (c *funcCodec[T]) Encode(v reflect.Value) (string, error) {
	if IsNull(v) {
		if Nullable(c.typ) {
			return "", nil
		}
		return "", fmt.Errorf("encode %v: %w", c.typ, ErrNull)
	}
	v, err := coerce(v, c.typ)
	if err != nil {
		return "", err
	}

	return c.encode(v.Interface().(T))
}

func (c *funcCodec[T]) Decode(s string) (reflect.Value, error) {
	if Nullable(c.typ) && strings.TrimSpace(s) == "" {
		return reflect.Zero(c.typ), nil
	}
	x, err := c.decode(s)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("decode %q as %v: %w", s, c.typ, err)
	}

	return reflect.ValueOf(&x).Elem(), nil
}

func (c *funcCodec[T]) String() string { return c.desc }

// DefaultTimeLayouts are tried in order when decoding time.Time.
var DefaultTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateOnly,
	time.DateTime,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	"2006-01-02T15:04:05",
}

// Time returns a codec for time.Time. Decoding tries [DefaultTimeLayouts],
// then the given layouts, then the formats known to cast. Encoding always
// uses RFC 3339 with nanoseconds.
//
// Example:
//
//	c := codec.Time(
//	    "01/02/2006",       // US format
//	    "02/01/2006",       // European format
//	    "2006-01-02 15:04", // Custom datetime
//	)
func Time(layouts ...string) Codec {
	all := append(append(make([]string, 0, len(DefaultTimeLayouts)+len(layouts)), DefaultTimeLayouts...), layouts...)

	return newFunc("time.Time codec", func(s string) (time.Time, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, ErrEmptyValue
		}
		for _, layout := range all {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		t, err := cast.ToTimeE(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("unable to parse time (tried %d layouts): %w", len(all), err)
		}

		return t, nil
	}, func(t time.Time) (string, error) {
		return t.Format(time.RFC3339Nano), nil
	})
}

// Duration returns a codec for time.Duration that also accepts aliases.
// Aliases are matched case-insensitively before Go duration syntax; encoding
// always uses Go duration syntax.
//
// Example:
//
//	c := codec.Duration(map[string]time.Duration{
//	    "fast":    100 * time.Millisecond,
//	    "normal":  1 * time.Second,
//	    "slow":    5 * time.Second,
//	})
func Duration(aliases map[string]time.Duration) Codec {
	lower := make(map[string]time.Duration, len(aliases))
	for alias, d := range aliases {
		lower[strings.ToLower(alias)] = d
	}

	return newFunc("time.Duration codec", func(s string) (time.Duration, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, ErrEmptyValue
		}
		if d, ok := lower[strings.ToLower(s)]; ok {
			return d, nil
		}

		return cast.ToDurationE(s)
	}, func(d time.Duration) (string, error) {
		return d.String(), nil
	})
}

// Bool returns a codec for bool with custom truthy and falsy words in
// addition to "true" and "false". Matching is case-insensitive.
//
// Example:
//
//	c := codec.Bool(
//	    []string{"enabled", "active", "on"},
//	    []string{"disabled", "inactive", "off"},
//	)
func Bool(truthy, falsy []string) Codec {
	words := make(map[string]bool, len(truthy)+len(falsy)+2)
	words["true"], words["false"] = true, false
	for _, w := range truthy {
		words[strings.ToLower(w)] = true
	}
	for _, w := range falsy {
		words[strings.ToLower(w)] = false
	}

	return newFunc("bool codec", func(s string) (bool, error) {
		s = strings.TrimSpace(s)
		if b, ok := words[strings.ToLower(s)]; ok {
			return b, nil
		}
		if s == "" {
			return false, ErrEmptyValue
		}

		return false, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}, func(b bool) (string, error) {
		return cast.ToStringE(b)
	})
}

// Values returns a codec for a closed set of values, each named by
// fmt.Sprint. Decoding matches names exactly, then case-insensitively.
// Encoding a value outside the set fails with [ErrInvalidValue].
//
// Example:
//
//	type Status string
//
//	const (
//	    StatusActive   Status = "active"
//	    StatusPending  Status = "pending"
//	)
//
//	c := codec.Values(StatusActive, StatusPending)
func Values[T comparable](values ...T) Codec {
	names := make(map[T]string, len(values))
	exact := make(map[string]T, len(values))
	folded := make(map[string]T, len(values))
	allowed := make([]string, 0, len(values))
	for _, v := range values {
		name := fmt.Sprint(v)
		names[v] = name
		exact[name] = v
		folded[strings.ToLower(name)] = v
		allowed = append(allowed, name)
	}

	return newFunc(fmt.Sprintf("%v codec: one of %s", reflect.TypeFor[T](), strings.Join(allowed, ", ")),
		func(s string) (T, error) {
			var zero T
			s = strings.TrimSpace(s)
			if s == "" {
				return zero, ErrEmptyValue
			}
			if v, ok := exact[s]; ok {
				return v, nil
			}
			if v, ok := folded[strings.ToLower(s)]; ok {
				return v, nil
			}

			return zero, fmt.Errorf("%w: %q must be one of: %s", ErrInvalidValue, s, strings.Join(allowed, ", "))
		}, func(v T) (string, error) {
			name, ok := names[v]
			if !ok {
				return "", fmt.Errorf("%w: %v", ErrInvalidValue, v)
			}

			return name, nil
		})
}

// Char returns a codec that encodes a rune as the single character it
// represents instead of its code point. Runes are int32 values and decode
// as numbers unless this codec is registered.
func Char() Codec {
	return newFunc("rune codec: char", func(s string) (rune, error) {
		if s == "" {
			return 0, ErrEmptyValue
		}
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return 0, fmt.Errorf("%w: invalid UTF-8", ErrInvalidValue)
		}
		if size != len(s) {
			return 0, fmt.Errorf("%w: %q is not a single character", ErrInvalidValue, s)
		}

		return r, nil
	}, func(r rune) (string, error) {
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: %U", ErrInvalidValue, r)
		}

		return string(r), nil
	})
}
