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

package fixedpool

// Stats are cumulative operation counters for one allocator. Alloc failure
// is reported the same way for an out-of-range request and for exhaustion;
// FailedAllocs covers both. IgnoredFrees counts frees that were dropped as
// recognisably invalid (nil, outside the arena, or in a region's waste).
type Stats struct {
	Allocs       uint64
	Frees        uint64
	FailedAllocs uint64
	IgnoredFrees uint64
}

// PoolStats describes one size class.
type PoolStats struct {
	BlockSize int // bytes per block
	Capacity  int // whole blocks in the region
	Live      int // blocks currently handed out
}

// Stats returns the allocator's operation counters.
func (a *Allocator) Stats() Stats {
	return a.stats
}

// PoolStats returns a per-class snapshot, in table order.
func (a *Allocator) PoolStats() []PoolStats {
	out := make([]PoolStats, a.classes)
	for i := 0; i < a.classes; i++ {
		p := &a.pools[i]
		out[i] = PoolStats{BlockSize: p.blockSize, Capacity: p.capacity, Live: p.live}
	}
	return out
}
