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

	"rivaas.dev/beanz/codec"
)

// Static errors for property resolution and access.
var (
	ErrAmbiguousProperty = errors.New("ambiguous property")
	ErrNotReadable       = errors.New("property is not readable")
	ErrNotWritable       = errors.New("property is not writable")
	ErrShapeMismatch     = errors.New("operation does not apply to the property shape")
	ErrUnknownProperty   = errors.New("unknown property")
	ErrForeignProperty   = errors.New("property belongs to another bean")
	ErrNotStruct         = errors.New("type is not a struct")
	ErrTargetType        = errors.New("target is not a pointer to the described type")
	ErrNilDescriptor     = errors.New("nil descriptor")
	ErrInvalidDelegates  = errors.New("composite property needs at least two delegates of the same type")
)

// Errors shared with the codec package, re-exported for errors.Is checks
// against values returned from this package.
var (
	ErrNoCodec          = codec.ErrNoCodec
	ErrUnsupportedShape = codec.ErrUnsupportedShape
	ErrMalformed        = codec.ErrMalformed
	ErrTypeMismatch     = codec.ErrTypeMismatch
)

// FormatError reports malformed list or map text.
type FormatError = codec.FormatError

// AmbiguousPropertyError reports a property name whose accessors and field
// disagree about the value type. The property is left out of the descriptor;
// the error is available from [BeanDescriptor.Dropped].
//
// Use [errors.As] to check for AmbiguousPropertyError:
//
//	var ambiguous *beanz.AmbiguousPropertyError
//	if errors.As(err, &ambiguous) {
//	    fmt.Println(ambiguous.Property, ambiguous.Reason)
//	}
type AmbiguousPropertyError struct {
	Type     reflect.Type // Described struct type
	Property string       // Property name
	Reason   string       // Which members disagree
}

// Error returns a formatted error message.
func (e *AmbiguousPropertyError) Error() string {
	return fmt.Sprintf("%v: property %q of %v: %s", ErrAmbiguousProperty, e.Property, e.Type, e.Reason)
}

// Unwrap returns ErrAmbiguousProperty for errors.Is compatibility.
func (e *AmbiguousPropertyError) Unwrap() error {
	return ErrAmbiguousProperty
}

// PropertyError reports a failed operation on a property. It wraps the
// cause, which is one of the static errors of this package or an error
// returned by an accessor or codec.
//
// Use [errors.As] to check for PropertyError:
//
//	var pe *beanz.PropertyError
//	if errors.As(err, &pe) {
//	    fmt.Printf("Property: %s, Op: %s\n", pe.Property, pe.Op)
//	}
type PropertyError struct {
	Type     reflect.Type // Described struct type
	Property string       // Property name
	Op       string       // Operation that failed, e.g. "get" or "decode"
	Err      error        // Underlying error
}

// Error returns a formatted error message with a hint for common mistakes.
func (e *PropertyError) Error() string {
	msg := fmt.Sprintf("%s property %q of %v: %v", e.Op, e.Property, e.Type, e.Err)
	if hint := e.hint(); hint != "" {
		msg += " (hint: " + hint + ")"
	}

	return msg
}

// hint suggests a fix for errors users commonly run into.
func (e *PropertyError) hint() string {
	switch {
	case errors.Is(e.Err, ErrNoCodec):
		return "register one with WithCodec or WithConverter"
	case errors.Is(e.Err, ErrMalformed):
		return `use "[a, b]" for lists and "{k=v}" for maps`
	case errors.Is(e.Err, ErrForeignProperty):
		return "look the property up on the same bean"
	default:
		return ""
	}
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

func propertyError(t reflect.Type, name, op string, err error) error {
	if err == nil {
		return nil
	}

	return &PropertyError{Type: t, Property: name, Op: op, Err: err}
}
