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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memfit/poolalloc/fixedpool"
)

func TestNew(t *testing.T) {
	assert.Nil(t, New(0))
	assert.Nil(t, New(-1))

	buf := New(4096)
	require.Len(t, buf, 4096)
	for i, b := range buf {
		require.Zero(t, b, "byte %d", i)
	}
}

func TestMmap(t *testing.T) {
	_, err := Mmap(0)
	assert.Error(t, err)
	_, err = Mmap(-1)
	assert.Error(t, err)

	buf, err := Mmap(64 * 1024)
	require.NoError(t, err)
	require.Len(t, buf, 64*1024)
	for i, b := range buf {
		require.Zero(t, b, "byte %d", i)
	}

	buf[0] = 0xff
	buf[len(buf)-1] = 0xff

	require.NoError(t, Munmap(buf))
	assert.NoError(t, Munmap(nil))
}

func TestMmapBackedAllocator(t *testing.T) {
	buf, err := Mmap(64 * 1024)
	require.NoError(t, err)
	defer func() { require.NoError(t, Munmap(buf)) }()

	a, err := fixedpool.NewWithArena(buf, []int{32, 64, 547, 1238})
	require.NoError(t, err)

	b := a.Alloc(500)
	require.NotNil(t, b)
	assert.Equal(t, 547, cap(b))
	for i := range b {
		b[i] = byte(i)
	}
	for i := range b {
		require.Equal(t, byte(i), b[i])
	}
	a.Free(b)
}
