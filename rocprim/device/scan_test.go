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

func TestInclusiveSumSmall(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := make([]int, len(in))
	runOp(t, func(tmp []byte, sz *int) error {
		return device.InclusiveScan(tmp, sz, rocprim.Slice[int](in), rocprim.Slice[int](out), len(in), rocprim.Plus[int](), nil)
	})
	want := []int{1, 3, 6, 10, 15, 21, 28, 36}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("inclusive sum mismatch (-want +got):\n%s", diff)
	}
}

func TestExclusiveMinSmall(t *testing.T) {
	in := []int{3, 5, 2, 8}
	out := make([]int, len(in))
	runOp(t, func(tmp []byte, sz *int) error {
		return device.ExclusiveScan(tmp, sz, rocprim.Slice[int](in), rocprim.Slice[int](out), len(in), 9, rocprim.Minimum[int](), nil)
	})
	want := []int{9, 3, 3, 2}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("exclusive min mismatch (-want +got):\n%s", diff)
	}
}

func TestInclusiveScanSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := randomInts(rng, n, 100)
			out := make([]int, n)
			runOp(t, func(tmp []byte, sz *int) error {
				return device.InclusiveScan(tmp, sz, rocprim.Slice[int](in), rocprim.Slice[int](out), n, rocprim.Plus[int](), nil)
			})
			acc := 0
			for i, v := range in {
				acc += v
				if out[i] != acc {
					t.Fatalf("out[%d] = %d, want %d", i, out[i], acc)
				}
			}
		})
	}
}

func TestExclusiveScanSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const initial = 1000
	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := randomInts(rng, n, 100)
			out := make([]int, n)
			runOp(t, func(tmp []byte, sz *int) error {
				return device.ExclusiveScan(tmp, sz, rocprim.Slice[int](in), rocprim.Slice[int](out), n, initial, rocprim.Plus[int](), nil)
			})
			acc := initial
			for i, v := range in {
				if out[i] != acc {
					t.Fatalf("out[%d] = %d, want %d", i, out[i], acc)
				}
				acc += v
			}
		})
	}
}

// Concatenation is associative but not commutative, so any engine that
// reorders operands or misorders the look-back composition fails here.
func TestInclusiveScanNonCommutative(t *testing.T) {
	const n = 10000
	in := make([]string, n)
	for i := range in {
		in[i] = string(rune('a' + i%26))
	}
	concat := func(a, b string) string { return a + b }
	out := make([]string, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.InclusiveScan(tmp, sz, rocprim.Slice[string](in), rocprim.Slice[string](out), n, concat, nil)
	})
	acc := ""
	for i, v := range in {
		acc += v
		// Comparing every prefix is quadratic in output bytes; sample
		// around the kilobyte marks and check the final prefix.
		if i%1024 < 2 || i == n-1 {
			if out[i] != acc {
				t.Fatalf("out[%d] has length %d, want %d", i, len(out[i]), len(acc))
			}
		}
	}
}

func TestInclusiveScanInPlace(t *testing.T) {
	const n = 5000
	data := make([]int, n)
	for i := range data {
		data[i] = 1
	}
	runOp(t, func(tmp []byte, sz *int) error {
		return device.InclusiveScan(tmp, sz, rocprim.Slice[int](data), rocprim.Slice[int](data), n, rocprim.Plus[int](), nil)
	})
	for i, v := range data {
		if v != i+1 {
			t.Fatalf("data[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestScanCountingIterator(t *testing.T) {
	const n = 3000
	out := make([]int, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.InclusiveScan[int](tmp, sz, rocprim.Counting[int]{Base: 1}, rocprim.Slice[int](out), n, rocprim.Plus[int](), nil)
	})
	for i, v := range out {
		want := (i + 1) * (i + 2) / 2
		if v != want {
			t.Fatalf("out[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestScanTwoPassMatchesSinglePass(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, n := range testSizes {
		in := randomInts(rng, n, 1000)
		single := make([]int, n)
		double := make([]int, n)
		runOp(t, func(tmp []byte, sz *int) error {
			return device.InclusiveScan(tmp, sz, rocprim.Slice[int](in), rocprim.Slice[int](single), n, rocprim.Plus[int](), nil)
		})
		runOp(t, func(tmp []byte, sz *int) error {
			return device.InclusiveScanTwoPass(tmp, sz, rocprim.Slice[int](in), rocprim.Slice[int](double), n, rocprim.Plus[int](), nil)
		})
		if diff := cmp.Diff(single, double); diff != "" {
			t.Fatalf("n=%d: engines disagree (-single +two-pass):\n%s", n, diff)
		}
	}
}

func TestExclusiveScanTwoPass(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	const n = 54321
	in := randomInts(rng, n, 50)
	out := make([]int, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.ExclusiveScanTwoPass(tmp, sz, rocprim.Slice[int](in), rocprim.Slice[int](out), n, 7, rocprim.Plus[int](), nil)
	})
	acc := 7
	for i, v := range in {
		if out[i] != acc {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], acc)
		}
		acc += v
	}
}

func TestScanErrors(t *testing.T) {
	out := make([]int, 8)
	err := device.InclusiveScan[int](nil, nil, rocprim.Slice[int](out), rocprim.Slice[int](out), 8, rocprim.Plus[int](), nil)
	require.ErrorIs(t, err, rocprim.ErrNilRequiredOutput)

	var size int
	require.NoError(t, device.InclusiveScan[int](nil, &size, rocprim.Slice[int](out), rocprim.Slice[int](out), 8, rocprim.Plus[int](), nil))
	err = device.InclusiveScan(make([]byte, 1), &size, rocprim.Slice[int](out), rocprim.Slice[int](out), 8, rocprim.Plus[int](), nil)
	require.ErrorIs(t, err, rocprim.ErrInsufficientStorage)
}
