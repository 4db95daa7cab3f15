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

// Package arena provides zero-filled backing buffers for allocators.
// Allocators in this module require their arena to start zeroed; both
// constructors here guarantee that (make zeroes, anonymous mappings are
// zero pages).
package arena

// New returns a zero-filled, heap-backed buffer of the given size.
// Returns nil when size is not positive.
func New(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}
