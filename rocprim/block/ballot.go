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

import (
	"math/bits"

	"github.com/aaronenyeshi/rocPRIM/rocprim"
)

// CountFlags counts the set flags by balloting them into wavefront-wide bit
// masks and popcounting each mask.
func CountFlags(flags []bool) int {
	total := 0
	for base := 0; base < len(flags); base += rocprim.WavefrontSize {
		end := base + rocprim.WavefrontSize
		if end > len(flags) {
			end = len(flags)
		}
		var mask uint64
		for lane, f := range flags[base:end] {
			if f {
				mask |= 1 << uint(lane)
			}
		}
		total += bits.OnesCount64(mask)
	}
	return total
}

// RanksOfFlags writes, for each set flag, its zero-based rank among the set
// flags (a prefix popcount). Unset positions receive the count of set flags
// strictly before them as well, so ranks[i] is usable as an exclusive scan
// of the flags. It returns the total number of set flags.
func RanksOfFlags(ranks []int, flags []bool) int {
	count := 0
	for i, f := range flags {
		ranks[i] = count
		if f {
			count++
		}
	}
	return count
}
