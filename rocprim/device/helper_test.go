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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aaronenyeshi/rocPRIM/rocprim"
)

// testSizes covers the degenerate cases, sizes around the wavefront width,
// and sizes large enough to span many blocks.
var testSizes = []int{0, 1, 7, 8, 63, 64, 65, 100, 1000, 4096, 10000, 123456}

// runOp drives the two-call protocol: size the scratch, allocate it, enqueue
// and wait for the default stream.
func runOp(t *testing.T, op func(temporaryStorage []byte, storageSize *int) error) {
	t.Helper()
	var size int
	require.NoError(t, op(nil, &size))
	require.GreaterOrEqual(t, size, 4)
	tmp := make([]byte, size)
	require.NoError(t, op(tmp, &size))
	rocprim.DefaultStream().Synchronize()
}

func randomInts(rng *rand.Rand, n, bound int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(bound)
	}
	return out
}
