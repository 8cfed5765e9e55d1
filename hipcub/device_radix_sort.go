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

// SortKeys sorts keysInput ascending into keysOutput over the whole key
// width.
func SortKeys[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, size int, stream *rocprim.Stream) error {
	return device.SortKeys(temporaryStorage, storageSize, keysInput, keysOutput, size, 0, device.KeyBits[K](), stream)
}

// SortKeysDescending sorts keysInput descending into keysOutput.
func SortKeysDescending[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, size int, stream *rocprim.Stream) error {
	return device.SortKeysDescending(temporaryStorage, storageSize, keysInput, keysOutput, size, 0, device.KeyBits[K](), stream)
}

// SortPairs sorts keysInput ascending and moves valuesInput along with the
// keys.
func SortPairs[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, stream *rocprim.Stream) error {
	return device.SortPairs(temporaryStorage, storageSize, keysInput, keysOutput, valuesInput, valuesOutput, size, 0, device.KeyBits[K](), stream)
}

// SortPairsDescending is SortPairs with the order reversed.
func SortPairsDescending[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, stream *rocprim.Stream) error {
	return device.SortPairsDescending(temporaryStorage, storageSize, keysInput, keysOutput, valuesInput, valuesOutput, size, 0, device.KeyBits[K](), stream)
}

// SegmentedSortKeys independently sorts the segments of keysInput
// ascending.
func SegmentedSortKeys[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], stream *rocprim.Stream) error {
	return device.SegmentedSortKeys(temporaryStorage, storageSize, keysInput, keysOutput, size, numSegments, beginOffsets, endOffsets, 0, device.KeyBits[K](), stream)
}

// SegmentedSortPairs independently sorts the segments of keysInput
// ascending, moving values along.
func SegmentedSortPairs[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], stream *rocprim.Stream) error {
	return device.SegmentedSortPairs(temporaryStorage, storageSize, keysInput, keysOutput, valuesInput, valuesOutput, size, numSegments, beginOffsets, endOffsets, 0, device.KeyBits[K](), stream)
}
