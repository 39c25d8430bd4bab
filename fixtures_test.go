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

//go:build !integration

package beanz_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rivaas.dev/beanz"
)

var errNameRequired = errors.New("name required")

// Person mixes every access strategy: name is a composite of accessors and
// a field, greeting is read-only, password write-only, the rest are fields.
type Person struct {
	name   string
	Age    int
	Email  string `beanz:"mail"`
	ID     string `beanz:",readonly" json:"id"`
	Secret string `beanz:"-"`
	Tags   []string
	Scores map[string]int
	Pair   [2]int
	calls  int
	hash   string
}

func (p *Person) Name() string {
	p.calls++
	return p.name
}

func (p *Person) SetName(name string) error {
	if name == "" {
		return errNameRequired
	}
	p.calls++
	p.name = name

	return nil
}

func (p *Person) GetGreeting() string { return "hello " + p.name }

func (p *Person) SetPassword(pw string) { p.hash = strings.Repeat("*", len(pw)) }

// Mixed has two names whose members disagree about the value type.
type Mixed struct {
	level string
	Size  int
}

func (m *Mixed) Level() int { return len(m.level) }

func (m *Mixed) GetWidth() int { return m.Size }

func (m *Mixed) SetWidth(string) {}

// Counter keeps its count narrower than the accessor pair exposes it.
type Counter struct {
	count int32
}

func (c *Counter) Count() int { return int(c.count) }

func (c *Counter) SetCount(n int) { c.count = int32(n) }

type Audit struct {
	ID      int
	Created time.Time
}

// Document shadows the embedded Audit.ID with its own ID.
type Document struct {
	Audit
	ID    string
	Title string
}

type Padded struct {
	_ int
	N int
}

type Opaque struct {
	Callback func()
	Inner    struct{ A int }
	Count    int
}

type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
)

type Server struct {
	Host    string
	Port    int
	Ports   []int
	Timeout time.Duration
	Labels  map[string]string
	Started time.Time
	Status  Status
	Initial rune
}

type years int

func describe[T any](t *testing.T, opts ...beanz.Option) *beanz.BeanDescriptor {
	t.Helper()

	desc, err := beanz.Describe(reflect.TypeFor[T](), opts...)
	require.NoError(t, err)

	return desc
}

func property(t *testing.T, desc *beanz.BeanDescriptor, name string) *beanz.PropertyDescriptor {
	t.Helper()

	p, ok := desc.Property(name)
	require.True(t, ok, "property %q", name)

	return p
}

func wrap(t *testing.T, ptr any, opts ...beanz.Option) *beanz.Bean {
	t.Helper()

	d, err := beanz.New(opts...)
	require.NoError(t, err)
	bean, err := d.Wrap(ptr)
	require.NoError(t, err)

	return bean
}
