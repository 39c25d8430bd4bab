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
	"sort"
	"strings"
)

// Bracket text grammar:
//
//	LIST := "[" (elem ("," elem)*)? "]"
//	MAP  := "{" (key "=" value ("," key "=" value)*)? "}"
//
// Whitespace around the whole text and around every element, key and value
// is ignored. Splitting is flat: brackets inside elements are not matched,
// so a list of lists does not survive a round trip.
const (
	listOpen   = "["
	listClose  = "]"
	mapOpen    = "{"
	mapClose   = "}"
	separator  = ","
	assignment = "="
	joiner     = ", "
)

// SplitList splits list text into element strings. Blank text yields
// (nil, false), "[]" yields an empty non-nil slice.
func SplitList(s string) ([]string, bool, error) {
	inner, ok, err := unwrap(s, listOpen, listClose)
	if err != nil || !ok {
		return nil, false, err
	}
	if inner == "" {
		return []string{}, true, nil
	}

	parts := strings.Split(inner, separator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts, true, nil
}

// SplitMap splits map text into key and value strings. Entries are split on
// their first "="; a later entry overrides an earlier one with the same key.
// Blank text yields (nil, false), "{}" yields an empty non-nil map.
func SplitMap(s string) (map[string]string, bool, error) {
	inner, ok, err := unwrap(s, mapOpen, mapClose)
	if err != nil || !ok {
		return nil, false, err
	}
	if inner == "" {
		return map[string]string{}, true, nil
	}

	parts := strings.Split(inner, separator)
	out := make(map[string]string, len(parts))
	for _, p := range parts {
		key, value, found := strings.Cut(p, assignment)
		if !found {
			return nil, false, malformed(s, "map entry %q has no %q", strings.TrimSpace(p), assignment)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return out, true, nil
}

// JoinList formats element strings as list text.
func JoinList(items []string) string {
	return listOpen + strings.Join(items, joiner) + listClose
}

// JoinMap formats entries as map text, ordered by key.
func JoinMap(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(mapOpen)
	for i, k := range keys {
		if i > 0 {
			b.WriteString(joiner)
		}
		b.WriteString(k)
		b.WriteString(assignment)
		b.WriteString(entries[k])
	}
	b.WriteString(mapClose)

	return b.String()
}

// unwrap trims s and strips its delimiters. Blank text reports ok=false.
func unwrap(s, open, closing string) (string, bool, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false, nil
	}
	if !strings.HasPrefix(trimmed, open) {
		return "", false, malformed(s, "missing opening %q", open)
	}
	if len(trimmed) < len(open)+len(closing) || !strings.HasSuffix(trimmed, closing) {
		return "", false, malformed(s, "missing closing %q", closing)
	}

	return strings.TrimSpace(trimmed[len(open) : len(trimmed)-len(closing)]), true, nil
}
