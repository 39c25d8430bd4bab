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

// Package beanz describes struct types as maps of named properties and
// converts property values to and from text.
//
// A property is backed by accessor methods, by a struct field, or by both.
// Getters are GetX, IsX (bool only) or X; setters are SetX. Accessor and
// field names meet through a shared naming rule: the leading upper-case run
// is lowered, so the field count, the getter Count and the setter SetCount
// all describe the property "count". When accessors and a field share a
// name, reads and writes prefer the accessors and fall back to the field.
//
// Each property carries a codec from the [codec] package. Scalars use the
// built-in codecs; lists and maps use a bracket grammar:
//
//	[a, b, c]       // arrays and slices
//	{k1=v1, k2=v2}  // maps
//
// # Quick Start
//
//	type Server struct {
//	    Host    string
//	    Port    int
//	    Tags    []string
//	    Timeout time.Duration
//	}
//
//	var srv Server
//	bean, err := beanz.Wrap(&srv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = bean.SetString("port", "8080")
//	_ = bean.SetString("tags", "[edge, eu]")
//	_ = bean.SetString("timeout", "5s")
//
// # Configured Describers
//
// A [Describer] holds options and caches descriptors per type:
//
//	describer := beanz.MustNew(
//	    beanz.WithEnum(StatusActive, StatusPending),
//	    beanz.WithExportedFieldsOnly(),
//	    beanz.WithLogger(slog.Default()),
//	)
//	desc, err := describer.Describe(reflect.TypeFor[Server]())
//
// # Ambiguity
//
// A name whose getter, setter and field disagree about the value type is
// not a property. It is reported by [BeanDescriptor.Dropped] and as a
// warning event; the remaining properties are unaffected.
//
// # Struct Tags
//
// The "beanz" tag renames a field, excludes it, or makes it read-only:
//
//	type Account struct {
//	    ID       string `beanz:"id,readonly"`
//	    Password string `beanz:"-"`
//	    Display  string `beanz:"displayName"`
//	}
package beanz
