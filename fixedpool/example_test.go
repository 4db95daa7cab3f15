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

import "fmt"

func Example() {
	a, _ := New([]int{32, 64, 547, 1238})

	b1 := a.Alloc(24)  // served by the 32-byte class
	b2 := a.Alloc(600) // too big for 547, lands in the 1238 class

	fmt.Printf("b1: len=%d cap=%d\n", len(b1), cap(b1))
	fmt.Printf("b2: len=%d cap=%d\n", len(b2), cap(b2))

	a.Free(b2)
	a.Free(b1)

	// Output:
	// b1: len=24 cap=32
	// b2: len=600 cap=1238
}
