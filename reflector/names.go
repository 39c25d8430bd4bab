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

package reflector

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Accessor method prefixes.
const (
	prefixGet = "Get"
	prefixIs  = "Is"
	prefixSet = "Set"
)

// PropertyName converts an identifier into a property name by lowercasing its
// leading upper-case run. The last letter of a run followed by a lower-case
// letter starts the next word and is kept.
//
//	Name    -> name
//	URL     -> url
//	URLPath -> urlPath
//	ID2     -> id2
//	name    -> name
func PropertyName(s string) string {
	rs := []rune(s)
	n := 0
	for n < len(rs) && unicode.IsUpper(rs[n]) {
		n++
	}
	if n == 0 {
		return s
	}
	if n > 1 && n < len(rs) && unicode.IsLower(rs[n]) {
		n--
	}
	for i := range n {
		rs[i] = unicode.ToLower(rs[i])
	}

	return string(rs)
}

// suffix returns the part of a method name after prefix when the remainder
// starts a new word, e.g. "Name" for ("GetName", "Get") but not for
// ("Getaway", "Get").
func suffix(name, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	if unicode.IsLower(r) {
		return "", false
	}

	return rest, true
}
