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
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aaronenyeshi/rocPRIM/rocprim"
	"github.com/aaronenyeshi/rocPRIM/rocprim/device"
)

func TestSortKeysUint32(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := make([]uint32, n)
			for i := range in {
				in[i] = rng.Uint32()
			}
			out := make([]uint32, n)
			runOp(t, func(tmp []byte, sz *int) error {
				return device.SortKeys(tmp, sz, in, out, n, 0, 32, nil)
			})
			want := append([]uint32(nil), in...)
			sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
			if diff := cmp.Diff(want, out); diff != "" {
				t.Fatalf("sort mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortKeysInt64Negative(t *testing.T) {
	const n = 20000
	rng := rand.New(rand.NewSource(52))
	in := make([]int64, n)
	for i := range in {
		in[i] = rng.Int63() - 1<<62
	}
	out := make([]int64, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.SortKeys(tmp, sz, in, out, n, 0, 64, nil)
	})
	for i := 1; i < n; i++ {
		if out[i-1] > out[i] {
			t.Fatalf("out[%d]=%d > out[%d]=%d", i-1, out[i-1], i, out[i])
		}
	}
}

func TestSortKeysFloat(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	in := []float32{0.5, -1.25, 0, negZero, 3.5, -2}
	n := len(in)
	out := make([]float32, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.SortKeys(tmp, sz, in, out, n, 0, 32, nil)
	})
	want := []float32{-2, -1.25, negZero, 0, 0.5, 3.5}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("float sort mismatch (-want +got):\n%s", diff)
	}
	// -0.0 sorts before +0.0: the sign bits must have survived in order.
	require.True(t, math.Signbit(float64(out[2])))
	require.False(t, math.Signbit(float64(out[3])))
}

func TestSortKeysFloat64Random(t *testing.T) {
	const n = 30000
	rng := rand.New(rand.NewSource(53))
	in := make([]float64, n)
	for i := range in {
		in[i] = (rng.Float64() - 0.5) * 1e6
	}
	out := make([]float64, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.SortKeys(tmp, sz, in, out, n, 0, 64, nil)
	})
	for i := 1; i < n; i++ {
		if out[i-1] > out[i] {
			t.Fatalf("out[%d]=%v > out[%d]=%v", i-1, out[i-1], i, out[i])
		}
	}
}

func TestSortKeysDescending(t *testing.T) {
	const n = 12345
	rng := rand.New(rand.NewSource(54))
	in := make([]int32, n)
	for i := range in {
		in[i] = rng.Int31() - 1<<30
	}
	out := make([]int32, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.SortKeysDescending(tmp, sz, in, out, n, 0, 32, nil)
	})
	for i := 1; i < n; i++ {
		if out[i-1] < out[i] {
			t.Fatalf("out[%d]=%d < out[%d]=%d", i-1, out[i-1], i, out[i])
		}
	}
}

func TestSortPairsStable(t *testing.T) {
	// Sorting on the low byte only: entries with equal low bytes must keep
	// their source order, observable through the carried values.
	const n = 50000
	rng := rand.New(rand.NewSource(55))
	keys := make([]uint32, n)
	values := make([]int, n)
	for i := range keys {
		keys[i] = rng.Uint32()
		values[i] = i
	}
	keysOut := make([]uint32, n)
	valuesOut := make([]int, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.SortPairs(tmp, sz, keys, keysOut, values, valuesOut, n, 0, 8, nil)
	})
	for i := 1; i < n; i++ {
		a, b := keysOut[i-1]&0xff, keysOut[i]&0xff
		if a > b {
			t.Fatalf("low byte order violated at %d", i)
		}
		if a == b && valuesOut[i-1] > valuesOut[i] {
			t.Fatalf("stability violated at %d: %d before %d", i, valuesOut[i-1], valuesOut[i])
		}
	}
	// Bits outside [0, 8) must not influence placement, but every key must
	// survive with its value.
	for i, v := range valuesOut {
		if keysOut[i] != keys[v] {
			t.Fatalf("pair %d: key %d does not match origin %d", i, keysOut[i], v)
		}
	}
}

func TestSortKeysBitRange(t *testing.T) {
	// Sorting bits [8, 16) groups by the second byte and keeps source
	// order within each group.
	const n = 4096
	rng := rand.New(rand.NewSource(56))
	keys := make([]uint32, n)
	values := make([]int, n)
	for i := range keys {
		keys[i] = rng.Uint32()
		values[i] = i
	}
	keysOut := make([]uint32, n)
	valuesOut := make([]int, n)
	runOp(t, func(tmp []byte, sz *int) error {
		return device.SortPairs(tmp, sz, keys, keysOut, values, valuesOut, n, 8, 16, nil)
	})
	for i := 1; i < n; i++ {
		a := (keysOut[i-1] >> 8) & 0xff
		b := (keysOut[i] >> 8) & 0xff
		if a > b || (a == b && valuesOut[i-1] > valuesOut[i]) {
			t.Fatalf("bit-range sort violated at %d", i)
		}
	}
}

func TestSortKeysDoubleBuffer(t *testing.T) {
	const n = 23456
	rng := rand.New(rand.NewSource(57))
	cur := make([]uint64, n)
	for i := range cur {
		cur[i] = rng.Uint64()
	}
	want := append([]uint64(nil), cur...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	db := rocprim.NewDoubleBuffer(cur, make([]uint64, n))
	runOp(t, func(tmp []byte, sz *int) error {
		return device.SortKeysDoubleBuffer(tmp, sz, db, n, 0, 64, nil)
	})
	if diff := cmp.Diff(want, db.Current()); diff != "" {
		t.Fatalf("double-buffer sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortPairsDoubleBuffer(t *testing.T) {
	const n = 10000
	rng := rand.New(rand.NewSource(58))
	keys := make([]uint16, n)
	values := make([]int, n)
	for i := range keys {
		keys[i] = uint16(rng.Intn(1 << 16))
		values[i] = i
	}
	kdb := rocprim.NewDoubleBuffer(keys, make([]uint16, n))
	vdb := rocprim.NewDoubleBuffer(values, make([]int, n))
	runOp(t, func(tmp []byte, sz *int) error {
		return device.SortPairsDoubleBuffer(tmp, sz, kdb, vdb, n, 0, 16, nil)
	})
	require.Equal(t, kdb.Selector(), vdb.Selector())
	k, v := kdb.Current(), vdb.Current()
	for i := 1; i < n; i++ {
		if k[i-1] > k[i] || (k[i-1] == k[i] && v[i-1] > v[i]) {
			t.Fatalf("pair order violated at %d", i)
		}
	}
}

func TestSortBitRangeValidation(t *testing.T) {
	keys := []uint32{3, 1, 2}
	out := make([]uint32, 3)
	var size int
	for _, br := range [][2]int{{-1, 32}, {0, 33}, {5, 5}, {8, 4}} {
		err := device.SortKeys(nil, &size, keys, out, 3, br[0], br[1], nil)
		require.ErrorIs(t, err, rocprim.ErrInvalidBitRange, "range %v", br)
	}
}

func TestSortInsufficientStorage(t *testing.T) {
	keys := make([]uint64, 1000)
	out := make([]uint64, 1000)
	var size int
	require.NoError(t, device.SortKeys(nil, &size, keys, out, 1000, 0, 64, nil))
	err := device.SortKeys(make([]byte, size/2), &size, keys, out, 1000, 0, 64, nil)
	require.ErrorIs(t, err, rocprim.ErrInsufficientStorage)
}
