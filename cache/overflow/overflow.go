/*
 * Copyright 2026 the poolalloc Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package overflow layers a heap fallback over a fixed pool allocator.
//
// The fixed arena gives deterministic reuse for the common block sizes;
// when it cannot serve a request (too large for the largest class, or
// every capable class exhausted) the request falls through to mcache's
// size-classed sync.Pool buffers instead of failing. Free routes each
// buffer back to wherever it came from.
//
// Like the underlying fixedpool.Allocator, an Allocator is not safe for
// concurrent use.
package overflow

import (
	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/memfit/poolalloc/fixedpool"
)

// Allocator serves from fixed pools first and mcache second.
type Allocator struct {
	fixed     *fixedpool.Allocator
	fallbacks uint64
}

// New wraps an existing fixed pool allocator.
func New(fixed *fixedpool.Allocator) *Allocator {
	return &Allocator{fixed: fixed}
}

// Malloc returns a buffer of length size. Buffers from the fixed pools
// have capacity equal to the serving class's block size; fallback buffers
// have whatever capacity mcache's size class provides. Returns nil for
// non-positive sizes.
func (a *Allocator) Malloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	if buf := a.fixed.Alloc(size); buf != nil {
		return buf
	}
	a.fallbacks++
	return mcache.Malloc(size)
}

// Free returns a buffer obtained from Malloc. Buffers pointing into the
// fixed arena go back to their pool; everything else goes back to mcache.
// Do not reuse buf after the call.
func (a *Allocator) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	if a.fixed.Contains(buf) {
		a.fixed.Free(buf)
		return
	}
	mcache.Free(buf)
}

// Fallbacks returns how many Malloc calls fell through to mcache.
func (a *Allocator) Fallbacks() uint64 {
	return a.fallbacks
}
