//go:build !unix

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

package arena

import "fmt"

// Mmap falls back to a heap-backed buffer on platforms without mmap.
func Mmap(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: size must be positive, got %d", size)
	}
	return New(size), nil
}

// Munmap is a no-op for heap-backed buffers.
func Munmap(buf []byte) error {
	return nil
}
