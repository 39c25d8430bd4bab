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
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/beanz"
	"rivaas.dev/beanz/reflector"
)

func TestBind(t *testing.T) {
	t.Parallel()

	desc := describe[Person](t)
	p := &Person{Age: 3}

	bean, err := desc.Bind(p)
	require.NoError(t, err)
	assert.Same(t, desc, bean.Descriptor())
	assert.Same(t, p, bean.Target())
	require.Len(t, bean.Properties(), desc.Len())

	age, ok := bean.Property("age")
	require.True(t, ok)
	assert.Equal(t, "age", age.Name())
	assert.Same(t, bean, age.Bean())
	assert.Same(t, property(t, desc, "age"), age.Descriptor())
	assert.Equal(t, reflector.Scalar, age.Shape())
	assert.Equal(t, reflect.TypeFor[int](), age.Type())
	assert.True(t, age.Readable())
	assert.True(t, age.Writable())
	assert.NotNil(t, age.Codec())
	assert.Equal(t, "int age: field Age", age.String())

	_, ok = bean.Property("missing")
	assert.False(t, ok)

	for _, target := range []any{nil, *p, &Mixed{}, (*Person)(nil)} {
		_, err = desc.Bind(target)
		require.ErrorIs(t, err, beanz.ErrTargetType)
	}

	var none *beanz.BeanDescriptor
	_, err = none.Bind(p)
	require.ErrorIs(t, err, beanz.ErrNilDescriptor)
}

func TestBeanAccess(t *testing.T) {
	t.Parallel()

	p := &Person{}
	bean := wrap(t, p)

	require.NoError(t, bean.Set("age", 33))
	require.NoError(t, bean.SetString("tags", "[a, b]"))
	require.NoError(t, bean.SetString("name", "ada"))
	assert.Equal(t, 33, p.Age)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
	assert.Equal(t, "ada", p.name)

	got, err := bean.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello ada", got)

	text, err := bean.GetString("age")
	require.NoError(t, err)
	assert.Equal(t, "33", text)

	_, err = bean.Get("missing")
	require.ErrorIs(t, err, beanz.ErrUnknownProperty)
	require.ErrorIs(t, bean.Set("missing", 1), beanz.ErrUnknownProperty)
	require.ErrorIs(t, bean.SetString("missing", "1"), beanz.ErrUnknownProperty)
	_, err = bean.GetString("missing")
	require.ErrorIs(t, err, beanz.ErrUnknownProperty)

	var pe *beanz.PropertyError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "missing", pe.Property)
	assert.Equal(t, reflect.TypeFor[Person](), pe.Type)
}

func TestPropertyHandle(t *testing.T) {
	t.Parallel()

	p := &Person{}
	bean := wrap(t, p)

	tags, _ := bean.Property("tags")
	require.NoError(t, tags.SetStrings([]string{"x", "y"}))
	items, err := tags.Strings()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, items)
	values, err := tags.Values()
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, values)

	scores, _ := bean.Property("scores")
	require.NoError(t, scores.SetStringMap(map[string]string{"k": "5"}))
	entries, err := scores.StringMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "5"}, entries)

	require.NoError(t, scores.Set(map[string]int{"j": 1}))
	got, err := scores.Get()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"j": 1}, got)

	text, err := scores.GetString()
	require.NoError(t, err)
	assert.Equal(t, "{j=1}", text)
}

func TestSetValueRejectsForeignHandles(t *testing.T) {
	t.Parallel()

	desc := describe[Person](t)
	first, err := desc.Bind(&Person{})
	require.NoError(t, err)
	second, err := desc.Bind(&Person{})
	require.NoError(t, err)

	own, _ := first.Property("age")
	foreign, _ := second.Property("age")

	require.NoError(t, first.SetValue(own, 1))
	require.NoError(t, first.SetText(own, "2"))
	got, err := own.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	require.ErrorIs(t, first.SetValue(foreign, 3), beanz.ErrForeignProperty)
	require.ErrorIs(t, first.SetText(foreign, "3"), beanz.ErrForeignProperty)
	require.ErrorIs(t, first.SetValue(nil, 3), beanz.ErrForeignProperty)

	got, err = foreign.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, got, "the other bean is untouched")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	var srv Server
	bean, err := beanz.Wrap(&srv)
	require.NoError(t, err)
	require.NoError(t, bean.SetString("timeout", "1m30s"))
	assert.Equal(t, 90*time.Second, srv.Timeout)

	_, err = beanz.Wrap(srv)
	require.ErrorIs(t, err, beanz.ErrTargetType)
	_, err = beanz.Wrap(nil)
	require.ErrorIs(t, err, beanz.ErrTargetType)
	_, err = beanz.Wrap(new(int))
	require.ErrorIs(t, err, beanz.ErrNotStruct)

	assert.Panics(t, func() { beanz.MustWrap(42) })
	assert.NotPanics(t, func() { beanz.MustWrap(&srv) })
}

func TestAssign(t *testing.T) {
	t.Parallel()

	var srv Server
	bean := wrap(t, &srv, beanz.WithEnum(StatusActive, StatusPending))

	err := bean.Assign(map[string]any{
		"host":    "localhost",
		"port":    "8080",
		"ports":   []any{"80", 443},
		"timeout": "5s",
		"labels":  map[string]any{"env": "prod"},
		"started": "2024-01-15T08:00:00Z",
		"status":  "pending",
		"initial": 65,
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", srv.Host)
	assert.Equal(t, 8080, srv.Port)
	assert.Equal(t, []int{80, 443}, srv.Ports)
	assert.Equal(t, 5*time.Second, srv.Timeout)
	assert.Equal(t, map[string]string{"env": "prod"}, srv.Labels)
	assert.True(t, time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC).Equal(srv.Started))
	assert.Equal(t, StatusPending, srv.Status)
	assert.Equal(t, 'A', srv.Initial)
}

func TestAssignUsesCodecGrammar(t *testing.T) {
	t.Parallel()

	var srv Server
	bean := wrap(t, &srv)
	ports, _ := bean.Property("ports")

	require.NoError(t, ports.Assign("[1, 2]"))
	assert.Equal(t, []int{1, 2}, srv.Ports)

	require.NoError(t, ports.Assign([]int{3}))
	assert.Equal(t, []int{3}, srv.Ports)

	require.NoError(t, ports.Assign(nil))
	assert.Nil(t, srv.Ports)

	labels, _ := bean.Property("labels")
	require.NoError(t, labels.Assign("{a=1, b=2}"))
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, srv.Labels)
}

func TestAssignErrors(t *testing.T) {
	t.Parallel()

	var srv Server
	bean := wrap(t, &srv, beanz.WithEnum(StatusActive, StatusPending))

	err := bean.Assign(map[string]any{
		"bogus":  1,
		"status": "archived",
		"port":   "eighty",
		"host":   "example.org",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, beanz.ErrUnknownProperty)
	assert.Contains(t, err.Error(), `assign property "status"`)
	assert.Contains(t, err.Error(), `assign property "port"`)
	assert.Equal(t, "example.org", srv.Host, "failures do not stop other assignments")
	assert.Zero(t, srv.Port)

	p := &Person{}
	greeting, _ := wrap(t, p).Property("greeting")
	require.ErrorIs(t, greeting.Assign("hi"), beanz.ErrNotWritable)
}
