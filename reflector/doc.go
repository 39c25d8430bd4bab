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

// Package reflector enumerates the named, typed members of a struct type.
//
// It is the structural layer underneath rivaas.dev/beanz: it lists accessor
// methods and raw fields, classifies value types into shapes and extracts
// element and key types. It never touches instances, so every function is a
// pure function of the type.
//
// # Accessors
//
// Accessors are looked up in the method set of *T:
//
//	GetName() string          // getter
//	IsEnabled() bool          // getter, bool results only
//	Name() string             // getter, found by name lookup only
//	SetName(v string)         // setter
//	SetName(v string) error   // setter returning an error
//
// Getters may also return (V, error).
//
// # Fields
//
// Fields are listed in declaration order, followed by the fields of
// value-embedded structs, one embedding level at a time. Unexported fields
// are only listed when they are declared in the package of the described
// type. The struct tag key "beanz" controls field handling:
//
//	Secret string `beanz:"-"`          // not listed
//	ID     int    `beanz:",readonly"`  // listed, not mutable
//	Addr   string `beanz:"address"`    // listed as property "address"
//
// # Names
//
// Property names are derived with [PropertyName], which lowercases the leading
// upper-case run of an identifier, so the field "name", the getter "Name" and
// the setter "SetName" all describe the property "name".
package reflector
