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
	"errors"
	"fmt"

	"rivaas.dev/beanz/reflector"
)

// Static errors for codec operations.
var (
	// ErrNoCodec is returned when no codec can be resolved for a type.
	ErrNoCodec = errors.New("no codec")

	// ErrUnsupportedShape is returned when a type's structure cannot be
	// encoded as text, e.g. an interface or channel element type.
	ErrUnsupportedShape = reflector.ErrUnsupportedShape

	// ErrMalformed is wrapped by every [FormatError].
	ErrMalformed = errors.New("malformed text")

	// ErrNull is returned when a codec for a non-nullable type is asked to
	// encode the null object.
	ErrNull = errors.New("null value")

	// ErrEmptyValue is returned when a codec for a non-nullable type is asked
	// to decode the empty string.
	ErrEmptyValue = errors.New("empty value")

	// ErrOutOfRange is returned when decoded text overflows the target type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidValue is returned when a value is outside the set accepted by
	// an enumerated codec.
	ErrInvalidValue = errors.New("invalid value")

	// ErrTypeMismatch is returned when a codec is handed a value or a
	// delegate of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotNullable is returned by [Safe] for codecs of value types that
	// have no null object.
	ErrNotNullable = errors.New("type is not nullable")
)

// FormatError reports composite text that does not follow the bracket
// grammar. It wraps [ErrMalformed].
//
// Use [errors.As] to check for FormatError:
//
//	var fe *codec.FormatError
//	if errors.As(err, &fe) {
//	    fmt.Println(fe.Input, fe.Reason)
//	}
type FormatError struct {
	Input  string // Text that failed to decode
	Reason string // What was wrong with it
}

// Error returns a formatted error message.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrMalformed, e.Input, e.Reason)
}

// Unwrap returns ErrMalformed for errors.Is compatibility.
func (e *FormatError) Unwrap() error {
	return ErrMalformed
}

func malformed(input, format string, args ...any) *FormatError {
	return &FormatError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
