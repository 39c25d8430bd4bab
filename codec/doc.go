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

// Package codec converts values to and from text.
//
// A [Codec] is a stateless, bidirectional converter for one Go type. The
// [Registry] holds codecs by type and derives new ones on demand: lists and
// maps are composed from their element, key and value codecs, pointers from
// the codec of the pointed-to type.
//
// # Text forms
//
// Scalars use their natural text form: decimal numbers, "true"/"false",
// RFC 3339 timestamps, Go duration syntax. Arrays and slices use brackets,
// maps use braces:
//
//	[1, 2, 3]
//	{a=1, b=2}
//
// Blank text decodes to the null object and the null object encodes to
// the empty string, so a nil slice encodes to "" and an empty one to "[]".
// Malformed brackets fail with a [*FormatError].
//
// Elements are split on every comma and map entries on their first "=".
// Brackets inside elements are not matched, so nested lists and lists of
// text that contains commas do not round-trip.
//
// # Null handling
//
// Codecs for value types such as int never accept the empty string or the
// null object. Codecs for pointer types accept both; [Safe] adds that
// handling to codecs that lack it, after probing what they already support.
//
// # Enumerations
//
// A named integer or string type is encoded by name when it has a String
// method and a Parse method callable on its zero value:
//
//	type Level int
//
//	func (l Level) String() string             { return levelNames[l] }
//	func (Level) Parse(s string) (Level, error) { ... }
//
// An optional IsValid() bool method rejects values outside the set.
package codec
