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

package beanz

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/beanz/reflector"
)

type gauge struct {
	value int
	unit  string
}

func (g *gauge) Value() int { return g.value * 10 }

func fieldOf(t *testing.T, typ reflect.Type, name string) *fieldAccess {
	t.Helper()

	f, ok := reflector.FindField(typ, name)
	require.True(t, ok)

	return &fieldAccess{field: f}
}

func TestNewComposite(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeFor[gauge]()
	getter, ok := reflector.FindGetter(typ, "value")
	require.True(t, ok)
	accessors := &accessorAccess{getter: &getter}
	value := fieldOf(t, typ, "value")
	unit := fieldOf(t, typ, "unit")

	_, err := newComposite(accessors)
	require.ErrorIs(t, err, ErrInvalidDelegates)

	_, err = newComposite()
	require.ErrorIs(t, err, ErrInvalidDelegates)

	_, err = newComposite(accessors, unit)
	require.ErrorIs(t, err, ErrInvalidDelegates)

	c, err := newComposite(accessors, value)
	require.NoError(t, err)
	assert.Equal(t, CompositeAccess, c.kind())
	assert.Equal(t, reflect.TypeFor[int](), c.valueType())
	assert.True(t, c.readable())
	assert.True(t, c.writable())
	assert.Equal(t, "Value() / field value", c.String())

	g := &gauge{value: 4}
	target := reflect.ValueOf(g).Elem()
	v, err := c.get(target)
	require.NoError(t, err)
	assert.Equal(t, 40, int(v.Int()), "reads use the getter")

	require.NoError(t, c.set(target, reflect.ValueOf(7)))
	assert.Equal(t, 7, g.value, "writes fall back to the field")
}

func TestAccessWithoutCapability(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeFor[gauge]()
	getter, _ := reflector.FindGetter(typ, "value")
	target := reflect.ValueOf(&gauge{}).Elem()

	readOnly := &accessorAccess{getter: &getter}
	require.ErrorIs(t, readOnly.set(target, reflect.ValueOf(1)), ErrNotWritable)

	f := fieldOf(t, typ, "value")
	f.field.Mutable = false
	require.ErrorIs(t, f.set(target, reflect.ValueOf(1)), ErrNotWritable)

	both, err := newComposite(readOnly, f)
	require.NoError(t, err)
	assert.False(t, both.writable())
	require.ErrorIs(t, both.set(target, reflect.ValueOf(1)), ErrNotWritable)
}

func TestAccessString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "field", FieldAccess.String())
	assert.Equal(t, "accessor", AccessorAccess.String())
	assert.Equal(t, "composite", CompositeAccess.String())
	assert.Equal(t, "Access(9)", Access(9).String())
}

func TestConfigSeed(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	WithTimeLayouts("02.01.2006")(cfg)
	seed := cfg.seed()

	_, ok := seed[reflect.TypeFor[*int]()]
	assert.True(t, ok, "untouched pointer codecs stay seeded")
	_, ok = seed[reflect.TypeFor[*time.Time]()]
	assert.False(t, ok, "pointer codecs of overridden types are derived again")
}
