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

// SelectIf compacts input down to the elements predicate accepts.
func SelectIf[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, predicate func(T) bool, stream *rocprim.Stream) error {
	return device.SelectIf(temporaryStorage, storageSize, input, output, selectedCount, size, predicate, stream)
}

// SelectFlagged compacts input down to the elements whose flag is set.
func SelectFlagged[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], flags rocprim.Iter[bool], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, stream *rocprim.Stream) error {
	return device.SelectFlagged(temporaryStorage, storageSize, input, flags, output, selectedCount, size, stream)
}

// Unique drops every element equal to its predecessor.
func Unique[T comparable](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, stream *rocprim.Stream) error {
	return device.Unique(temporaryStorage, storageSize, input, output, selectedCount, size, rocprim.EqualTo[T](), stream)
}

// PartitionIf splits input into accepted elements at the front of output
// and rejected elements, reversed, at the back.
func PartitionIf[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, predicate func(T) bool, stream *rocprim.Stream) error {
	return device.PartitionIf(temporaryStorage, storageSize, input, output, selectedCount, size, predicate, stream)
}

// PartitionFlagged is PartitionIf driven by a parallel range of flags.
func PartitionFlagged[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], flags rocprim.Iter[bool], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, stream *rocprim.Stream) error {
	return device.PartitionFlagged(temporaryStorage, storageSize, input, flags, output, selectedCount, size, stream)
}
