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

package device

import (
	"github.com/aaronenyeshi/rocPRIM/rocprim"
)

// SortKeys sorts keysInput ascending into keysOutput with a least
// significant digit radix sort. The sort is stable. Only bits in
// [beginBit, endBit) participate; pass 0 and KeyBits[K]() to sort on whole
// keys. keysInput is not modified.
func SortKeys[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, size int, beginBit, endBit int, stream *rocprim.Stream) error {
	return radixSortSlices[K, struct{}](temporaryStorage, storageSize, keysInput, keysOutput, nil, nil, size, beginBit, endBit, false, stream)
}

// SortKeysDescending is SortKeys with the order reversed.
func SortKeysDescending[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, size int, beginBit, endBit int, stream *rocprim.Stream) error {
	return radixSortSlices[K, struct{}](temporaryStorage, storageSize, keysInput, keysOutput, nil, nil, size, beginBit, endBit, true, stream)
}

// SortPairs sorts keysInput ascending into keysOutput and moves
// valuesInput along with the keys into valuesOutput. Values of equal keys
// keep their source order.
func SortPairs[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, beginBit, endBit int, stream *rocprim.Stream) error {
	return radixSortSlices(temporaryStorage, storageSize, keysInput, keysOutput, valuesInput, valuesOutput, size, beginBit, endBit, false, stream)
}

// SortPairsDescending is SortPairs with the order reversed.
func SortPairsDescending[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, beginBit, endBit int, stream *rocprim.Stream) error {
	return radixSortSlices(temporaryStorage, storageSize, keysInput, keysOutput, valuesInput, valuesOutput, size, beginBit, endBit, true, stream)
}

// SortKeysDoubleBuffer sorts keys.Current() ascending, ping-ponging the
// digit passes between the buffer pair instead of allocating key scratch.
// After the stream synchronizes, keys.Current() holds the sorted data;
// which underlying slice that is depends on the number of passes.
func SortKeysDoubleBuffer[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keys *rocprim.DoubleBuffer[K], size int, beginBit, endBit int, stream *rocprim.Stream) error {
	return radixSortDoubleBuffer[K, struct{}](temporaryStorage, storageSize, keys, nil, size, beginBit, endBit, false, stream)
}

// SortKeysDescendingDoubleBuffer is SortKeysDoubleBuffer with the order
// reversed.
func SortKeysDescendingDoubleBuffer[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keys *rocprim.DoubleBuffer[K], size int, beginBit, endBit int, stream *rocprim.Stream) error {
	return radixSortDoubleBuffer[K, struct{}](temporaryStorage, storageSize, keys, nil, size, beginBit, endBit, true, stream)
}

// SortPairsDoubleBuffer sorts keys.Current() ascending and moves
// values.Current() along with the keys. Both buffer pairs end on the same
// selector.
func SortPairsDoubleBuffer[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keys *rocprim.DoubleBuffer[K], values *rocprim.DoubleBuffer[V], size int, beginBit, endBit int, stream *rocprim.Stream) error {
	return radixSortDoubleBuffer(temporaryStorage, storageSize, keys, values, size, beginBit, endBit, false, stream)
}

// SortPairsDescendingDoubleBuffer is SortPairsDoubleBuffer with the order
// reversed.
func SortPairsDescendingDoubleBuffer[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keys *rocprim.DoubleBuffer[K], values *rocprim.DoubleBuffer[V], size int, beginBit, endBit int, stream *rocprim.Stream) error {
	return radixSortDoubleBuffer(temporaryStorage, storageSize, keys, values, size, beginBit, endBit, true, stream)
}

func validBitRange[K rocprim.Arithmetic](beginBit, endBit int) bool {
	return beginBit >= 0 && beginBit < endBit && endBit <= KeyBits[K]()
}

func radixSortSlices[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, beginBit, endBit int, descending bool, stream *rocprim.Stream) error {
	if !validBitRange[K](beginBit, endBit) {
		return rocprim.ErrInvalidBitRange
	}
	if keysOutput == nil || (valuesInput != nil && valuesOutput == nil) {
		return rocprim.ErrNilRequiredOutput
	}
	cfg := rocprim.DefaultConfig()
	numBlocks := ceilDiv(size, cfg.TileSize())
	hasValues := valuesInput != nil

	a := newArena(temporaryStorage)
	counts := arenaSlice[int](a, numBlocks<<cfg.RadixBits)
	scratchKeys := arenaSlice[K](a, size)
	var scratchValues []V
	if hasValues {
		scratchValues = arenaSlice[V](a, size)
	}
	if done, err := sizing(temporaryStorage, storageSize, a.size()); done {
		return err
	}
	if size == 0 {
		return nil
	}

	enc := radixEncoder[K](descending)
	iterations := ceilDiv(endBit-beginBit, cfg.RadixBits)

	return stream.SubmitNamed(sortName("radix_sort", hasValues, descending), size, func() {
		srcKeys, srcValues := keysInput, valuesInput
		for it := 0; it < iterations; it++ {
			// Alternate destinations so the last pass lands in the
			// caller's output.
			dstKeys, dstValues := keysOutput, valuesOutput
			if (iterations-1-it)%2 != 0 {
				dstKeys, dstValues = scratchKeys, scratchValues
			}
			bit := beginBit + it*cfg.RadixBits
			passBits := min(cfg.RadixBits, endBit-bit)
			radixPass(cfg, counts, srcKeys, dstKeys, srcValues, dstValues, size, enc, uint(bit), passBits)
			srcKeys, srcValues = dstKeys, dstValues
		}
	})
}

func radixSortDoubleBuffer[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keys *rocprim.DoubleBuffer[K], values *rocprim.DoubleBuffer[V], size int, beginBit, endBit int, descending bool, stream *rocprim.Stream) error {
	if !validBitRange[K](beginBit, endBit) {
		return rocprim.ErrInvalidBitRange
	}
	if keys == nil {
		return rocprim.ErrNilRequiredOutput
	}
	cfg := rocprim.DefaultConfig()
	numBlocks := ceilDiv(size, cfg.TileSize())
	hasValues := values != nil

	a := newArena(temporaryStorage)
	counts := arenaSlice[int](a, numBlocks<<cfg.RadixBits)
	if done, err := sizing(temporaryStorage, storageSize, a.size()); done {
		return err
	}
	if size == 0 {
		return nil
	}

	enc := radixEncoder[K](descending)
	iterations := ceilDiv(endBit-beginBit, cfg.RadixBits)

	return stream.SubmitNamed(sortName("radix_sort", hasValues, descending), size, func() {
		for it := 0; it < iterations; it++ {
			bit := beginBit + it*cfg.RadixBits
			passBits := min(cfg.RadixBits, endBit-bit)
			var srcValues, dstValues []V
			if hasValues {
				srcValues, dstValues = values.Current(), values.Alternate()
			}
			radixPass(cfg, counts, keys.Current(), keys.Alternate(), srcValues, dstValues, size, enc, uint(bit), passBits)
			keys.Swap()
			if hasValues {
				values.Swap()
			}
		}
	})
}

func sortName(base string, hasValues, descending bool) string {
	name := base + "_keys"
	if hasValues {
		name = base + "_pairs"
	}
	if descending {
		name += "_desc"
	}
	return name
}

// radixPass performs one stable counting sort on the digit at shift. A grid
// histograms per-block digit counts, the host turns the counts into
// per-block scatter offsets in digit-major order, and a second grid
// scatters. Blocks own disjoint destination ranges per digit, so the
// scatter needs no further coordination.
func radixPass[K rocprim.Arithmetic, V any](cfg rocprim.Config, counts []int, srcKeys, dstKeys []K, srcValues, dstValues []V, size int, enc func(K) uint64, shift uint, passBits int) {
	tileSize := cfg.TileSize()
	numBlocks := ceilDiv(size, tileSize)
	radix := 1 << passBits
	mask := uint64(radix - 1)
	hasValues := srcValues != nil

	launchGrid(cfg.Workers, numBlocks, nil, func(b int) {
		row := counts[b*radix : (b+1)*radix]
		clear(row)
		offset := b * tileSize
		end := min(offset+tileSize, size)
		for _, k := range srcKeys[offset:end] {
			row[(enc(k)>>shift)&mask]++
		}
	})

	running := 0
	for d := 0; d < radix; d++ {
		for b := 0; b < numBlocks; b++ {
			c := counts[b*radix+d]
			counts[b*radix+d] = running
			running += c
		}
	}

	launchGrid(cfg.Workers, numBlocks, nil, func(b int) {
		local := make([]int, radix)
		copy(local, counts[b*radix:(b+1)*radix])
		offset := b * tileSize
		end := min(offset+tileSize, size)
		for i := offset; i < end; i++ {
			d := (enc(srcKeys[i]) >> shift) & mask
			p := local[d]
			local[d]++
			dstKeys[p] = srcKeys[i]
			if hasValues {
				dstValues[p] = srcValues[i]
			}
		}
	})
}
