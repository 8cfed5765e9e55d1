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

// Sum writes the sum of input to output index 0.
func Sum[T rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, stream *rocprim.Stream) error {
	var zero T
	return device.ReduceWithInit(temporaryStorage, storageSize, input, output, size, zero, rocprim.Plus[T](), stream)
}

// Min writes the smallest input element to output index 0. size must be at
// least one.
func Min[T rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, stream *rocprim.Stream) error {
	return device.Reduce(temporaryStorage, storageSize, input, output, size, rocprim.Minimum[T](), stream)
}

// Max writes the largest input element to output index 0. size must be at
// least one.
func Max[T rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, stream *rocprim.Stream) error {
	return device.Reduce(temporaryStorage, storageSize, input, output, size, rocprim.Maximum[T](), stream)
}

// Reduce combines input under reduceOp, seeded with initialValue, and
// writes the result to output index 0.
func Reduce[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, reduceOp rocprim.BinaryOp[T], initialValue T, stream *rocprim.Stream) error {
	return device.ReduceWithInit(temporaryStorage, storageSize, input, output, size, initialValue, reduceOp, stream)
}

// ReduceByKey reduces runs of consecutive equal keys; see the device
// package for the full contract.
func ReduceByKey[K comparable, V any](temporaryStorage []byte, storageSize *int, keysInput rocprim.Iter[K], valuesInput rocprim.Iter[V], uniqueOut rocprim.MutIter[K], aggregatesOut rocprim.MutIter[V], uniqueCount rocprim.MutIter[int], reduceOp rocprim.BinaryOp[V], size int, stream *rocprim.Stream) error {
	return device.ReduceByKey(temporaryStorage, storageSize, keysInput, valuesInput, size, uniqueOut, aggregatesOut, uniqueCount, reduceOp, rocprim.EqualTo[K](), stream)
}
