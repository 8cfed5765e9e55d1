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

package device_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aaronenyeshi/rocPRIM/rocprim"
	"github.com/aaronenyeshi/rocPRIM/rocprim/device"
)

func runReduceByKey(t *testing.T, keys, values []int) ([]int, []int, int) {
	t.Helper()
	n := len(keys)
	uniques := make([]int, n)
	aggregates := make([]int, n)
	count := []int{-1}
	runOp(t, func(tmp []byte, sz *int) error {
		return device.ReduceByKey(tmp, sz, rocprim.Slice[int](keys), rocprim.Slice[int](values), n,
			rocprim.Slice[int](uniques), rocprim.Slice[int](aggregates), rocprim.Slice[int](count),
			rocprim.Plus[int](), rocprim.EqualTo[int](), nil)
	})
	return uniques, aggregates, count[0]
}

func referenceReduceByKey(keys, values []int) (uniques, aggregates []int) {
	for i := range keys {
		if i == 0 || keys[i] != keys[i-1] {
			uniques = append(uniques, keys[i])
			aggregates = append(aggregates, values[i])
		} else {
			aggregates[len(aggregates)-1] += values[i]
		}
	}
	return
}

func TestReduceByKeySmall(t *testing.T) {
	keys := []int{1, 1, 1, 2, 3, 3, 4, 4}
	values := []int{2, 0, 1, 4, 2, 3, 1, 5}
	uniques, aggregates, count := runReduceByKey(t, keys, values)
	require.Equal(t, 4, count)
	if diff := cmp.Diff([]int{1, 2, 3, 4}, uniques[:count]); diff != "" {
		t.Errorf("unique keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 4, 5, 6}, aggregates[:count]); diff != "" {
		t.Errorf("aggregates mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceByKeyNonAdjacentEqualKeys(t *testing.T) {
	// Equal keys separated by a different key form separate runs.
	keys := []int{5, 5, 9, 5, 5}
	values := []int{1, 2, 3, 4, 5}
	uniques, aggregates, count := runReduceByKey(t, keys, values)
	require.Equal(t, 3, count)
	require.Equal(t, []int{5, 9, 5}, uniques[:count])
	require.Equal(t, []int{3, 3, 9}, aggregates[:count])
}

func TestReduceByKeySizes(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			keys := make([]int, n)
			values := make([]int, n)
			k := 0
			for i := range keys {
				if rng.Intn(3) == 0 {
					k++
				}
				keys[i] = k
				values[i] = rng.Intn(100)
			}
			uniques, aggregates, count := runReduceByKey(t, keys, values)
			wantK, wantA := referenceReduceByKey(keys, values)
			require.Equal(t, len(wantK), count)
			if count > 0 {
				require.Equal(t, wantK, uniques[:count])
				require.Equal(t, wantA, aggregates[:count])
			}
		})
	}
}

func TestReduceByKeyRunsSpanningBlocks(t *testing.T) {
	// A handful of very long runs: most tiles contain no run head at all
	// and contribute only carries.
	const n = 200000
	keys := make([]int, n)
	values := make([]int, n)
	for i := range keys {
		keys[i] = i / 50000
		values[i] = 1
	}
	uniques, aggregates, count := runReduceByKey(t, keys, values)
	require.Equal(t, 4, count)
	require.Equal(t, []int{0, 1, 2, 3}, uniques[:count])
	require.Equal(t, []int{50000, 50000, 50000, 50000}, aggregates[:count])
}

func TestReduceByKeyNonCommutative(t *testing.T) {
	const n = 30000
	keys := make([]int, n)
	values := make([]string, n)
	for i := range keys {
		keys[i] = i / 7000
		values[i] = string(rune('a' + i%26))
	}
	concat := func(a, b string) string { return a + b }

	uniques := make([]int, n)
	aggregates := make([]string, n)
	count := []int{-1}
	runOp(t, func(tmp []byte, sz *int) error {
		return device.ReduceByKey(tmp, sz, rocprim.Slice[int](keys), rocprim.Slice[string](values), n,
			rocprim.Slice[int](uniques), rocprim.Slice[string](aggregates), rocprim.Slice[int](count),
			concat, rocprim.EqualTo[int](), nil)
	})

	var wantA []string
	for i := range keys {
		if i == 0 || keys[i] != keys[i-1] {
			wantA = append(wantA, values[i])
		} else {
			wantA[len(wantA)-1] += values[i]
		}
	}
	require.Equal(t, len(wantA), count[0])
	for r, w := range wantA {
		if aggregates[r] != w {
			t.Fatalf("aggregate %d has length %d, want %d", r, len(aggregates[r]), len(w))
		}
	}
}

func TestReduceByKeyEmpty(t *testing.T) {
	count := []int{-1}
	runOp(t, func(tmp []byte, sz *int) error {
		return device.ReduceByKey(tmp, sz, rocprim.Slice[int](nil), rocprim.Slice[int](nil), 0,
			rocprim.Slice[int](nil), rocprim.Slice[int](nil), rocprim.Slice[int](count),
			rocprim.Plus[int](), rocprim.EqualTo[int](), nil)
	})
	require.Equal(t, 0, count[0])
}
