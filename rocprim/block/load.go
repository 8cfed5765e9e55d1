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

import "github.com/aaronenyeshi/rocPRIM/rocprim"

// Load copies tile elements [offset, offset+len(tile)) from in.
func Load[T any](tile []T, in rocprim.Iter[T], offset int) {
	for i := range tile {
		tile[i] = in.At(offset + i)
	}
}

// Store copies the tile to out starting at offset.
func Store[T any](tile []T, out rocprim.MutIter[T], offset int) {
	for i, v := range tile {
		out.Set(offset+i, v)
	}
}
