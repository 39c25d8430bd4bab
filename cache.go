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

package beanz

import (
	"errors"
	"maps"
	"reflect"
	"sync"
	"sync/atomic"
)

// errBuildPanicked is seen by waiters when a build panics.
var errBuildPanicked = errors.New("beanz: descriptor build panicked")

// descriptorCache maps struct types to their descriptors using a
// read-copy-update scheme: reads are lock-free loads of an immutable map,
// writes copy the map under a mutex and swap it in. Builds run outside the
// mutex; concurrent requests for one type wait for a single build.
type descriptorCache struct {
	ptr      atomic.Pointer[map[reflect.Type]*BeanDescriptor]
	mu       sync.Mutex
	inflight map[reflect.Type]*buildCall
}

// buildCall is a descriptor build in progress. done is closed once bd and
// err are set.
type buildCall struct {
	done chan struct{}
	bd   *BeanDescriptor
	err  error
}

func newDescriptorCache() *descriptorCache {
	c := &descriptorCache{inflight: make(map[reflect.Type]*buildCall)}
	m := make(map[reflect.Type]*BeanDescriptor)
	c.ptr.Store(&m)

	return c
}

// load returns the cached descriptor for t.
func (c *descriptorCache) load(t reflect.Type) (*BeanDescriptor, bool) {
	bd, ok := (*c.ptr.Load())[t]
	return bd, ok
}

// loadOrBuild returns the cached descriptor for t, calling build on a miss.
// Builds of different types run concurrently; callers for a type already
// being built wait for that build and share its result. Build failures are
// not cached. hit reports whether the descriptor was built by another call.
//
// Parameters:
//   - t: The struct type (not a pointer)
//   - build: Builds the descriptor of t; called without holding the mutex
func (c *descriptorCache) loadOrBuild(t reflect.Type, build func() (*BeanDescriptor, error)) (bd *BeanDescriptor, hit bool, err error) {
	if bd, ok := c.load(t); ok {
		return bd, true, nil
	}

	c.mu.Lock()
	// Double-check: another goroutine might have populated it
	if bd, ok := (*c.ptr.Load())[t]; ok {
		c.mu.Unlock()
		return bd, true, nil
	}
	if call, ok := c.inflight[t]; ok {
		c.mu.Unlock()
		<-call.done

		return call.bd, call.err == nil, call.err
	}
	call := &buildCall{done: make(chan struct{})}
	c.inflight[t] = call
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if call.err == nil && call.bd != nil {
			m := c.ptr.Load()
			next := make(map[reflect.Type]*BeanDescriptor, len(*m)+1)
			maps.Copy(next, *m)
			next[t] = call.bd
			c.ptr.Store(&next)
		}
		delete(c.inflight, t)
		c.mu.Unlock()
		close(call.done)
	}()

	call.err = errBuildPanicked
	call.bd, call.err = build()

	return call.bd, false, call.err
}

// len returns the number of cached descriptors.
func (c *descriptorCache) len() int {
	return len(*c.ptr.Load())
}
