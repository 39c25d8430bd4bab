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

package codec_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/beanz/codec"
)

// fragile is a *int codec that panics on blank text and nil pointers.
type fragile struct{}

func (fragile) Type() reflect.Type { return reflect.TypeFor[*int]() }

func (fragile) Encode(v reflect.Value) (string, error) {
	return strconv.Itoa(int(v.Elem().Int())), nil
}

func (fragile) Decode(s string) (reflect.Value, error) {
	if s == "" {
		panic("blank")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return reflect.Value{}, err
	}

	return reflect.ValueOf(&n), nil
}

func TestSafe(t *testing.T) {
	t.Parallel()

	t.Run("adapts panicking codec", func(t *testing.T) {
		t.Parallel()

		c, err := codec.Safe(fragile{})
		require.NoError(t, err)
		assert.Equal(t, "safe *int codec", codec.Describe(c))

		v, err := c.Decode(" ")
		require.NoError(t, err)
		assert.True(t, codec.IsNull(v))

		text, err := c.Encode(reflect.Zero(reflect.TypeFor[*int]()))
		require.NoError(t, err)
		assert.Empty(t, text)

		v, err = c.Decode("12")
		require.NoError(t, err)
		assert.Equal(t, 12, *v.Interface().(*int))
	})

	t.Run("leaves tolerant codec alone", func(t *testing.T) {
		t.Parallel()

		inner := resolve[[]int](t)
		c, err := codec.Safe(inner)
		require.NoError(t, err)
		assert.Same(t, inner, c)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := codec.MustSafe(fragile{})
		twice, err := codec.Safe(once)
		require.NoError(t, err)
		assert.Same(t, once, twice)
	})

	t.Run("rejects value types", func(t *testing.T) {
		t.Parallel()

		_, err := codec.Safe(resolve[int](t))
		require.ErrorIs(t, err, codec.ErrNotNullable)

		assert.Panics(t, func() {
			codec.MustSafe(resolve[[2]int](t))
		})
	})

	t.Run("rejects nil", func(t *testing.T) {
		t.Parallel()

		_, err := codec.Safe(nil)
		require.ErrorIs(t, err, codec.ErrNoCodec)
	})
}

func TestNewPointer(t *testing.T) {
	t.Parallel()

	raw, err := codec.NewPointer(reflect.TypeFor[*int](), resolve[int](t))
	require.NoError(t, err)

	_, err = raw.Decode("")
	require.ErrorIs(t, err, codec.ErrEmptyValue, "raw pointer codecs are not null-safe")

	_, err = raw.Encode(reflect.Zero(reflect.TypeFor[*int]()))
	require.ErrorIs(t, err, codec.ErrNull)

	_, err = codec.NewPointer(reflect.TypeFor[int](), resolve[int](t))
	require.ErrorIs(t, err, codec.ErrUnsupportedShape)

	_, err = codec.NewPointer(reflect.TypeFor[*int](), resolve[string](t))
	require.ErrorIs(t, err, codec.ErrTypeMismatch)
}

func TestConstructorsValidate(t *testing.T) {
	t.Parallel()

	_, err := codec.NewArray(reflect.TypeFor[[]int](), resolve[int](t))
	require.ErrorIs(t, err, codec.ErrUnsupportedShape)

	_, err = codec.NewCollection(reflect.TypeFor[[2]int](), resolve[int](t))
	require.ErrorIs(t, err, codec.ErrUnsupportedShape)

	_, err = codec.NewCollection(reflect.TypeFor[[]int](), resolve[string](t))
	require.ErrorIs(t, err, codec.ErrTypeMismatch)

	_, err = codec.NewCollection(reflect.TypeFor[[]int](), nil)
	require.ErrorIs(t, err, codec.ErrNoCodec)

	_, err = codec.NewMap(reflect.TypeFor[map[string]int](), resolve[int](t), resolve[int](t))
	require.ErrorIs(t, err, codec.ErrTypeMismatch)

	_, err = codec.NewMap(reflect.TypeFor[[]int](), resolve[int](t), resolve[int](t))
	require.ErrorIs(t, err, codec.ErrUnsupportedShape)

	c, err := codec.NewCollection(reflect.TypeFor[[]int](), resolve[int](t))
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[int](), c.ElementType())
}
