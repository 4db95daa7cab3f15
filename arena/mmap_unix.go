//go:build unix

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

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap returns a zero-filled buffer backed by an anonymous private
// mapping, outside the Go heap. The kernel zero-fills the pages lazily,
// so a large arena costs no memory until it is touched. Release with
// Munmap when done.
func Mmap(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: size must be positive, got %d", size)
	}
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Munmap releases a buffer returned by Mmap. A nil buffer is ignored.
// The buffer must not be used after the call.
func Munmap(buf []byte) error {
	if buf == nil {
		return nil
	}
	return unix.Munmap(buf)
}
