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

package hipcub

import (
	"github.com/aaronenyeshi/rocPRIM/rocprim"
	"github.com/aaronenyeshi/rocPRIM/rocprim/device"
)

// InclusiveSum computes the inclusive prefix sum of input.
func InclusiveSum[T rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, stream *rocprim.Stream) error {
	return device.InclusiveScanTwoPass(temporaryStorage, storageSize, input, output, size, rocprim.Plus[T](), stream)
}

// ExclusiveSum computes the exclusive prefix sum of input, seeded with zero.
func ExclusiveSum[T rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, stream *rocprim.Stream) error {
	var zero T
	return device.ExclusiveScanTwoPass(temporaryStorage, storageSize, input, output, size, zero, rocprim.Plus[T](), stream)
}

// InclusiveScan computes the inclusive prefix scan of input under scanOp.
func InclusiveScan[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, scanOp rocprim.BinaryOp[T], stream *rocprim.Stream) error {
	return device.InclusiveScanTwoPass(temporaryStorage, storageSize, input, output, size, scanOp, stream)
}

// ExclusiveScan computes the exclusive prefix scan of input under scanOp,
// seeded with initialValue.
func ExclusiveScan[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, initialValue T, scanOp rocprim.BinaryOp[T], stream *rocprim.Stream) error {
	return device.ExclusiveScanTwoPass(temporaryStorage, storageSize, input, output, size, initialValue, scanOp, stream)
}
