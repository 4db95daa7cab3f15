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

// Package fixedpool implements a fixed-capacity memory pool allocator
// backed by a single byte arena.
//
// The arena is partitioned at construction into up to MaxClasses
// equal-width regions, one per size class. Each region hands out fixed
// sized blocks through a bump-pointer/free-list hybrid: virgin memory is
// consumed front to back, freed blocks are chained LIFO and reused before
// fresh memory. Alloc and Free are O(1) in the arena size (bounded by the
// class count).
//
// Internal fragmentation is the price for the O(1) bound: a request is
// served whole blocks from the first class large enough to hold it, and
// freed blocks are never split or merged.
//
// An Allocator is NOT safe for concurrent use. Callers that share one
// across goroutines must serialize every method behind their own lock.
package fixedpool

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

const (
	// ArenaSize is the arena size used by New.
	ArenaSize = 64 * 1024

	// MaxClasses caps the number of size classes per allocator.
	MaxClasses = 4

	// linkSize is the number of leading bytes of a free block that hold
	// its chain link. Block sizes below this cannot carry a link without
	// overrunning the neighbouring block.
	linkSize = 8
)

// pool describes one size class: a disjoint sub-range of the arena sliced
// into equal blocks. Offsets are byte offsets from the arena start; end is
// the offset of the last block, not one past it. cursor > end means the
// class has no virgin blocks left and serves only from its free chain.
type pool struct {
	start     int
	end       int
	cursor    int
	blockSize int
	capacity  int // whole blocks in the region
	live      int // blocks currently handed out
}

// Allocator owns an arena and its pool table. Create one with New or
// NewWithArena; the zero value is not usable.
type Allocator struct {
	arena      []byte
	arenaStart unsafe.Pointer
	pools      [MaxClasses]pool
	classes    int
	stats      Stats
}

// New creates an allocator over a fresh ArenaSize arena, partitioned into
// one region per entry of blockSizes.
//
// blockSizes must hold 1 to MaxClasses entries in non-decreasing order;
// every entry must be at least 8 bytes and small enough that its region
// (arena size divided by the class count) fits at least one block.
func New(blockSizes []int) (*Allocator, error) {
	return NewWithArena(make([]byte, ArenaSize), blockSizes)
}

// NewWithArena creates an allocator over a caller-supplied arena. The
// arena is zeroed during construction; any prior contents are lost. The
// same blockSizes rules as New apply, with the region width derived from
// len(arena).
func NewWithArena(arena []byte, blockSizes []int) (*Allocator, error) {
	if len(blockSizes) == 0 {
		return nil, fmt.Errorf("fixedpool: need 1..%d block sizes, got none", MaxClasses)
	}
	if len(blockSizes) > MaxClasses {
		return nil, fmt.Errorf("fixedpool: need 1..%d block sizes, got %d", MaxClasses, len(blockSizes))
	}
	if len(arena) == 0 {
		return nil, fmt.Errorf("fixedpool: empty arena")
	}

	region := len(arena) / len(blockSizes)
	prev := 0
	for i, size := range blockSizes {
		if size < linkSize {
			return nil, fmt.Errorf("fixedpool: block size must be >= %d, got %d", linkSize, size)
		}
		if size < prev {
			return nil, fmt.Errorf("fixedpool: block sizes must be non-decreasing, got %d after %d", size, prev)
		}
		if region/size < 1 {
			return nil, fmt.Errorf("fixedpool: block size %d does not fit in its %d byte region (class %d of %d)",
				size, region, i, len(blockSizes))
		}
		prev = size
	}

	a := &Allocator{
		arena:      arena,
		arenaStart: unsafe.Pointer(&arena[0]),
		classes:    len(blockSizes),
	}

	// The free-chain encoding depends on the arena starting zero-filled:
	// a zero link word is the "never touched" sentinel.
	for i := range arena {
		arena[i] = 0
	}

	offset := 0
	for i, size := range blockSizes {
		count := region / size
		a.pools[i] = pool{
			start:     offset,
			end:       offset + (count-1)*size,
			cursor:    offset,
			blockSize: size,
			capacity:  count,
		}
		// Bytes past the last whole block are wasted; the next region
		// starts at a fixed stride regardless.
		offset += region
	}
	return a, nil
}

// Alloc returns a block of at least n bytes, or nil if n is out of range
// or every class large enough is exhausted. The slice has length n and
// capacity equal to the serving class's block size.
//
// The two failures are indistinguishable on purpose; use Stats to tell
// them apart.
func (a *Allocator) Alloc(n int) []byte {
	off, blockSize, ok := a.alloc(n)
	if !ok {
		return nil
	}
	return a.arena[off : off+n : off+blockSize]
}

// AllocOffset is Alloc returning the block's byte offset from the arena
// start instead of a slice. Useful when blocks are referenced by index
// rather than by pointer.
func (a *Allocator) AllocOffset(n int) (int, bool) {
	off, _, ok := a.alloc(n)
	return off, ok
}

func (a *Allocator) alloc(n int) (off, blockSize int, ok bool) {
	// Fast-path guard on the largest class; the per-class checks below
	// still apply.
	if n < 1 || n > a.pools[a.classes-1].blockSize {
		a.stats.FailedAllocs++
		return 0, 0, false
	}
	for i := 0; i < a.classes; i++ {
		p := &a.pools[i]
		if p.blockSize < n || p.cursor > p.end {
			continue
		}
		off = p.cursor
		p.cursor = a.nextCursor(off, p.blockSize)
		p.live++
		a.stats.Allocs++
		return off, p.blockSize, true
	}
	a.stats.FailedAllocs++
	return 0, 0, false
}

// nextCursor computes the cursor value after taking the block at off. A
// zero link word means the block is virgin and the pool bumps forward by
// one block; otherwise the block was freed before and the link holds the
// encoded cursor to restore.
func (a *Allocator) nextCursor(off, blockSize int) int {
	link := binary.LittleEndian.Uint64(a.arena[off:])
	if link == 0 {
		return off + blockSize
	}
	return int(link - 1)
}

// Free returns a block obtained from Alloc to its owning class. The block
// becomes the next one that class hands out (LIFO).
//
// A nil slice, or one pointing outside the arena, is ignored. An address
// inside the arena that was never returned by Alloc (an interior pointer,
// or a double free) is NOT detected and silently corrupts the free chain;
// see Stats.IgnoredFrees for the frees that were recognisably invalid.
func (a *Allocator) Free(block []byte) {
	if cap(block) == 0 {
		return
	}
	ptr := *(*uintptr)(unsafe.Pointer(&block))
	start := uintptr(a.arenaStart)
	if ptr < start || ptr >= start+uintptr(len(a.arena)) {
		a.stats.IgnoredFrees++
		return
	}
	a.freeAt(int(ptr - start))
}

// FreeOffset is Free for an offset previously returned by AllocOffset.
// Out-of-range offsets are ignored.
func (a *Allocator) FreeOffset(off int) {
	if off < 0 || off >= len(a.arena) {
		a.stats.IgnoredFrees++
		return
	}
	a.freeAt(off)
}

func (a *Allocator) freeAt(off int) {
	if off > a.pools[a.classes-1].end {
		a.stats.IgnoredFrees++
		return
	}
	for i := 0; i < a.classes; i++ {
		p := &a.pools[i]
		if off < p.start || off > p.end {
			continue
		}
		// Head insertion: the freed block links to whatever the cursor
		// pointed at, and becomes the cursor itself. Links are stored
		// biased by one so that offset 0 stays distinct from the virgin
		// sentinel.
		binary.LittleEndian.PutUint64(a.arena[off:], uint64(p.cursor)+1)
		p.cursor = off
		p.live--
		a.stats.Frees++
		return
	}
	// Inside the arena but in a region's trailing waste.
	a.stats.IgnoredFrees++
}

// Contains reports whether block points into this allocator's arena.
func (a *Allocator) Contains(block []byte) bool {
	if cap(block) == 0 {
		return false
	}
	ptr := *(*uintptr)(unsafe.Pointer(&block))
	start := uintptr(a.arenaStart)
	return ptr >= start && ptr < start+uintptr(len(a.arena))
}

// Available returns the free bytes across all classes, counting whole
// blocks not currently handed out. Accurate only under correct usage;
// misuse that corrupts a free chain also skews this figure.
func (a *Allocator) Available() int {
	total := 0
	for i := 0; i < a.classes; i++ {
		p := &a.pools[i]
		total += (p.capacity - p.live) * p.blockSize
	}
	return total
}

// Reset re-zeroes the arena and returns every class to its initial state,
// discarding the statistics.
//
// Every previously returned block becomes invalid without warning; call
// only when no allocations are outstanding.
func (a *Allocator) Reset() {
	for i := range a.arena {
		a.arena[i] = 0
	}
	for i := 0; i < a.classes; i++ {
		p := &a.pools[i]
		p.cursor = p.start
		p.live = 0
	}
	a.stats = Stats{}
}
