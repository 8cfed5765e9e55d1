// Copyright 2025 The rocPRIM Go Authors
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

package block

// FlagHeads marks the elements of keys that start a new run. flags[i] is
// true when i == 0 and predecessor is absent, or when same(prev, keys[i])
// reports false. If hasPredecessor is set, predecessor is treated as the
// element preceding keys[0], so a run continuing across the tile boundary is
// not flagged as a head.
func FlagHeads[K any](flags []bool, keys []K, predecessor K, hasPredecessor bool, same func(a, b K) bool) {
	prev := predecessor
	havePrev := hasPredecessor
	for i, k := range keys {
		flags[i] = !havePrev || !same(prev, k)
		prev = k
		havePrev = true
	}
}

// FlagTails marks the elements of keys that end a run. flags[i] is true when
// i is the last element and successor is absent, or when same(keys[i], next)
// reports false. If hasSuccessor is set, successor is treated as the element
// following the tile's last key.
func FlagTails[K any](flags []bool, keys []K, successor K, hasSuccessor bool, same func(a, b K) bool) {
	n := len(keys)
	for i := 0; i < n-1; i++ {
		flags[i] = !same(keys[i], keys[i+1])
	}
	if n > 0 {
		if hasSuccessor {
			flags[n-1] = !same(keys[n-1], successor)
		} else {
			flags[n-1] = true
		}
	}
}
