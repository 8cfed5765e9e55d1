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

// SegmentedSortKeys independently sorts numSegments slices of keysInput
// ascending into keysOutput. Segment s covers indices
// [beginOffsets.At(s), endOffsets.At(s)). Segments must not overlap;
// elements outside every segment are left undefined in keysOutput. Each
// segment is handled by one block per digit pass, so there is no
// coordination between segments.
func SegmentedSortKeys[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], beginBit, endBit int, stream *rocprim.Stream) error {
	return segmentedSortSlices[K, struct{}](temporaryStorage, storageSize, keysInput, keysOutput, nil, nil, size, numSegments, beginOffsets, endOffsets, beginBit, endBit, false, stream)
}

// SegmentedSortKeysDescending is SegmentedSortKeys with the order reversed
// within every segment.
func SegmentedSortKeysDescending[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], beginBit, endBit int, stream *rocprim.Stream) error {
	return segmentedSortSlices[K, struct{}](temporaryStorage, storageSize, keysInput, keysOutput, nil, nil, size, numSegments, beginOffsets, endOffsets, beginBit, endBit, true, stream)
}

// SegmentedSortPairs independently sorts the segments of keysInput
// ascending and moves valuesInput along with the keys.
func SegmentedSortPairs[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], beginBit, endBit int, stream *rocprim.Stream) error {
	return segmentedSortSlices(temporaryStorage, storageSize, keysInput, keysOutput, valuesInput, valuesOutput, size, numSegments, beginOffsets, endOffsets, beginBit, endBit, false, stream)
}

// SegmentedSortPairsDescending is SegmentedSortPairs with the order
// reversed within every segment.
func SegmentedSortPairsDescending[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], beginBit, endBit int, stream *rocprim.Stream) error {
	return segmentedSortSlices(temporaryStorage, storageSize, keysInput, keysOutput, valuesInput, valuesOutput, size, numSegments, beginOffsets, endOffsets, beginBit, endBit, true, stream)
}

// SegmentedSortKeysDoubleBuffer is SegmentedSortKeys ping-ponging between
// the buffer pair instead of allocating key scratch.
func SegmentedSortKeysDoubleBuffer[K rocprim.Arithmetic](temporaryStorage []byte, storageSize *int, keys *rocprim.DoubleBuffer[K], size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], beginBit, endBit int, stream *rocprim.Stream) error {
	return segmentedSortDoubleBuffer[K, struct{}](temporaryStorage, storageSize, keys, nil, size, numSegments, beginOffsets, endOffsets, beginBit, endBit, false, stream)
}

// SegmentedSortPairsDoubleBuffer is SegmentedSortPairs on double buffers;
// both pairs end on the same selector.
func SegmentedSortPairsDoubleBuffer[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keys *rocprim.DoubleBuffer[K], values *rocprim.DoubleBuffer[V], size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], beginBit, endBit int, stream *rocprim.Stream) error {
	return segmentedSortDoubleBuffer(temporaryStorage, storageSize, keys, values, size, numSegments, beginOffsets, endOffsets, beginBit, endBit, false, stream)
}

func segmentedSortSlices[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keysInput, keysOutput []K, valuesInput, valuesOutput []V, size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], beginBit, endBit int, descending bool, stream *rocprim.Stream) error {
	if !validBitRange[K](beginBit, endBit) {
		return rocprim.ErrInvalidBitRange
	}
	if keysOutput == nil || beginOffsets == nil || endOffsets == nil || (valuesInput != nil && valuesOutput == nil) {
		return rocprim.ErrNilRequiredOutput
	}
	cfg := rocprim.DefaultConfig()
	hasValues := valuesInput != nil

	a := newArena(temporaryStorage)
	scratchKeys := arenaSlice[K](a, size)
	var scratchValues []V
	if hasValues {
		scratchValues = arenaSlice[V](a, size)
	}
	if done, err := sizing(temporaryStorage, storageSize, a.size()); done {
		return err
	}
	if size == 0 || numSegments == 0 {
		return nil
	}

	enc := radixEncoder[K](descending)
	iterations := ceilDiv(endBit-beginBit, cfg.RadixBits)

	return stream.SubmitNamed(sortName("segmented_radix_sort", hasValues, descending), size, func() {
		srcKeys, srcValues := keysInput, valuesInput
		for it := 0; it < iterations; it++ {
			dstKeys, dstValues := keysOutput, valuesOutput
			if (iterations-1-it)%2 != 0 {
				dstKeys, dstValues = scratchKeys, scratchValues
			}
			bit := beginBit + it*cfg.RadixBits
			passBits := min(cfg.RadixBits, endBit-bit)
			launchGrid(cfg.Workers, numSegments, nil, func(s int) {
				segmentedPass(srcKeys, dstKeys, srcValues, dstValues, beginOffsets.At(s), endOffsets.At(s), enc, uint(bit), passBits)
			})
			srcKeys, srcValues = dstKeys, dstValues
		}
	})
}

func segmentedSortDoubleBuffer[K rocprim.Arithmetic, V any](temporaryStorage []byte, storageSize *int, keys *rocprim.DoubleBuffer[K], values *rocprim.DoubleBuffer[V], size int, numSegments int, beginOffsets, endOffsets rocprim.Iter[int], beginBit, endBit int, descending bool, stream *rocprim.Stream) error {
	if !validBitRange[K](beginBit, endBit) {
		return rocprim.ErrInvalidBitRange
	}
	if keys == nil || beginOffsets == nil || endOffsets == nil {
		return rocprim.ErrNilRequiredOutput
	}
	cfg := rocprim.DefaultConfig()
	hasValues := values != nil

	if done, err := sizing(temporaryStorage, storageSize, 0); done {
		return err
	}
	if size == 0 || numSegments == 0 {
		return nil
	}

	enc := radixEncoder[K](descending)
	iterations := ceilDiv(endBit-beginBit, cfg.RadixBits)

	return stream.SubmitNamed(sortName("segmented_radix_sort", hasValues, descending), size, func() {
		for it := 0; it < iterations; it++ {
			bit := beginBit + it*cfg.RadixBits
			passBits := min(cfg.RadixBits, endBit-bit)
			var srcValues, dstValues []V
			if hasValues {
				srcValues, dstValues = values.Current(), values.Alternate()
			}
			srcKeys, dstKeys := keys.Current(), keys.Alternate()
			launchGrid(cfg.Workers, numSegments, nil, func(s int) {
				segmentedPass(srcKeys, dstKeys, srcValues, dstValues, beginOffsets.At(s), endOffsets.At(s), enc, uint(bit), passBits)
			})
			keys.Swap()
			if hasValues {
				values.Swap()
			}
		}
	})
}

// segmentedPass counting-sorts one segment's digit in place within the
// segment's index range. The whole segment fits one block, so the histogram
// and scatter are tile local.
func segmentedPass[K rocprim.Arithmetic, V any](srcKeys, dstKeys []K, srcValues, dstValues []V, lo, hi int, enc func(K) uint64, shift uint, passBits int) {
	n := hi - lo
	if n <= 0 {
		return
	}
	if n == 1 {
		dstKeys[lo] = srcKeys[lo]
		if srcValues != nil {
			dstValues[lo] = srcValues[lo]
		}
		return
	}
	radix := 1 << passBits
	mask := uint64(radix - 1)
	hist := make([]int, radix)
	for _, k := range srcKeys[lo:hi] {
		hist[(enc(k)>>shift)&mask]++
	}
	running := lo
	for d, c := range hist {
		hist[d] = running
		running += c
	}
	for i := lo; i < hi; i++ {
		d := (enc(srcKeys[i]) >> shift) & mask
		p := hist[d]
		hist[d]++
		dstKeys[p] = srcKeys[i]
		if srcValues != nil {
			dstValues[p] = srcValues[i]
		}
	}
}
