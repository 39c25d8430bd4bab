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
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/beanz/codec"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusDisabled Status = "disabled"
)

type Celsius float64

func TestFunc(t *testing.T) {
	t.Parallel()

	c := codec.Func(
		func(s string) (Celsius, error) {
			f, err := strconv.ParseFloat(strings.TrimSuffix(s, "C"), 64)
			return Celsius(f), err
		},
		func(c Celsius) string { return fmt.Sprintf("%gC", float64(c)) },
	)
	assert.Equal(t, "codec_test.Celsius codec", codec.Describe(c))

	text, err := codec.EncodeValue(c, Celsius(21.5))
	require.NoError(t, err)
	assert.Equal(t, "21.5C", text)

	got, err := codec.DecodeValue(c, "-3C")
	require.NoError(t, err)
	assert.Equal(t, Celsius(-3), got)

	_, err = c.Decode("warm")
	require.Error(t, err)

	_, err = c.Encode(codec.Value(nil))
	require.ErrorIs(t, err, codec.ErrNull)
}

func TestFuncDefaultEncode(t *testing.T) {
	t.Parallel()

	c := codec.Func(func(s string) (Status, error) { return Status(s), nil }, nil)

	text, err := codec.EncodeValue(c, StatusPending)
	require.NoError(t, err)
	assert.Equal(t, "pending", text)
}

func TestTimeLayouts(t *testing.T) {
	t.Parallel()

	c := codec.Time("01/02/2006", "02.01.2006")

	tests := []struct {
		text string
		want time.Time
	}{
		{"01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15.01.2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{" 2024-01-15T08:00:00Z ", time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			got, err := codec.DecodeValue(c, tt.text)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.(time.Time)), "got %v", got)
		})
	}

	_, err := c.Decode("not a time")
	require.Error(t, err)

	_, err = c.Decode("  ")
	require.ErrorIs(t, err, codec.ErrEmptyValue)
}

func TestDuration(t *testing.T) {
	t.Parallel()

	c := codec.Duration(map[string]time.Duration{
		"fast": 100 * time.Millisecond,
		"Slow": 5 * time.Second,
	})

	tests := []struct {
		text string
		want time.Duration
	}{
		{"fast", 100 * time.Millisecond},
		{"FAST", 100 * time.Millisecond},
		{"slow", 5 * time.Second},
		{"1h30m", 90 * time.Minute},
	}
	for _, tt := range tests {
		got, err := codec.DecodeValue(c, tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}

	text, err := codec.EncodeValue(c, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "100ms", text)

	_, err = c.Decode("sometime")
	require.Error(t, err)
}

func TestBool(t *testing.T) {
	t.Parallel()

	c := codec.Bool([]string{"enabled", "On"}, []string{"disabled", "off"})

	tests := []struct {
		text string
		want bool
	}{
		{"enabled", true},
		{"ON", true},
		{"true", true},
		{"Disabled", false},
		{"off", false},
		{"false", false},
	}
	for _, tt := range tests {
		got, err := codec.DecodeValue(c, tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}

	_, err := c.Decode("maybe")
	require.ErrorIs(t, err, codec.ErrInvalidValue)

	_, err = c.Decode("")
	require.ErrorIs(t, err, codec.ErrEmptyValue)

	text, err := codec.EncodeValue(c, true)
	require.NoError(t, err)
	assert.Equal(t, "true", text)
}

func TestValues(t *testing.T) {
	t.Parallel()

	c := codec.Values(StatusActive, StatusPending, StatusDisabled)
	assert.Equal(t, "codec_test.Status codec: one of active, pending, disabled", codec.Describe(c))

	got, err := codec.DecodeValue(c, "pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got)

	got, err = codec.DecodeValue(c, " ACTIVE ")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, got)

	_, err = c.Decode("archived")
	require.ErrorIs(t, err, codec.ErrInvalidValue)
	assert.Contains(t, err.Error(), "active, pending, disabled")

	text, err := codec.EncodeValue(c, StatusDisabled)
	require.NoError(t, err)
	assert.Equal(t, "disabled", text)

	_, err = codec.EncodeValue(c, Status("archived"))
	require.ErrorIs(t, err, codec.ErrInvalidValue)
}

func TestValuesIntegers(t *testing.T) {
	t.Parallel()

	c := codec.Values(1, 2, 4, 8)

	got, err := codec.DecodeValue(c, "4")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = c.Decode("3")
	require.ErrorIs(t, err, codec.ErrInvalidValue)
}

func TestChar(t *testing.T) {
	t.Parallel()

	c := codec.Char()

	for _, r := range []rune{'a', 'é', '世', '🙂'} {
		text, err := codec.EncodeValue(c, r)
		require.NoError(t, err)
		assert.Equal(t, string(r), text)

		got, err := codec.DecodeValue(c, text)
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := c.Decode("ab")
	require.ErrorIs(t, err, codec.ErrInvalidValue)

	_, err = c.Decode("")
	require.ErrorIs(t, err, codec.ErrEmptyValue)

	_, err = c.Decode("\xff")
	require.ErrorIs(t, err, codec.ErrInvalidValue)

	_, err = codec.EncodeValue(c, rune(-1))
	require.ErrorIs(t, err, codec.ErrInvalidValue)
}
