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
	"github.com/aaronenyeshi/rocPRIM/rocprim/block"
)

// PartitionIf splits input by predicate. Elements for which predicate
// reports true are written to the front of output in their source order;
// the remaining elements fill the back of output in reverse source order,
// so output[size-1] is the first rejected element. The number of selected
// elements is written to selectedCount index 0.
func PartitionIf[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, predicate func(T) bool, stream *rocprim.Stream) error {
	return selectImpl(temporaryStorage, storageSize, "partition", input, output, selectedCount, size, stream, true,
		func(_ int, v T) bool { return predicate(v) })
}

// PartitionFlagged is PartitionIf with the selection read from a parallel
// range of flags instead of a predicate.
func PartitionFlagged[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], flags rocprim.Iter[bool], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, stream *rocprim.Stream) error {
	if flags == nil {
		return rocprim.ErrNilRequiredOutput
	}
	return selectImpl(temporaryStorage, storageSize, "partition", input, output, selectedCount, size, stream, true,
		func(i int, _ T) bool { return flags.At(i) })
}

// SelectIf compacts input: elements for which predicate reports true are
// written to the front of output in source order, everything else is
// dropped. The number kept is written to selectedCount index 0. Only the
// first selectedCount elements of output are defined afterwards.
func SelectIf[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, predicate func(T) bool, stream *rocprim.Stream) error {
	return selectImpl(temporaryStorage, storageSize, "select", input, output, selectedCount, size, stream, false,
		func(_ int, v T) bool { return predicate(v) })
}

// SelectFlagged is SelectIf with the selection read from a parallel range of
// flags.
func SelectFlagged[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], flags rocprim.Iter[bool], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, stream *rocprim.Stream) error {
	if flags == nil {
		return rocprim.ErrNilRequiredOutput
	}
	return selectImpl(temporaryStorage, storageSize, "select", input, output, selectedCount, size, stream, false,
		func(i int, _ T) bool { return flags.At(i) })
}

// Unique compacts runs of consecutive equal elements down to their first
// element, like the classic unique algorithm on sorted or grouped data. The
// number of survivors is written to selectedCount index 0.
func Unique[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, equalOp rocprim.CompareOp[T], stream *rocprim.Stream) error {
	return selectImpl(temporaryStorage, storageSize, "unique", input, output, selectedCount, size, stream, false,
		func(i int, v T) bool { return i == 0 || !equalOp(input.At(i-1), v) })
}

// selectImpl is the shared single-pass engine behind partition, select and
// unique. Each block flags its tile, publishes its selected count, resolves
// the number of selected elements before its tile through the look-back
// chain, and scatters. Selected elements go to the next free front slots;
// with keepRejected set, rejected element number r (in source order) goes to
// output[size-1-r].
func selectImpl[T any](temporaryStorage []byte, storageSize *int, name string, input rocprim.Iter[T], output rocprim.MutIter[T], selectedCount rocprim.MutIter[int], size int, stream *rocprim.Stream, keepRejected bool, flagOf func(i int, v T) bool) error {
	if input == nil || output == nil || selectedCount == nil {
		return rocprim.ErrNilRequiredOutput
	}
	cfg := rocprim.DefaultConfig()
	tileSize := cfg.TileSize()
	numBlocks := ceilDiv(size, tileSize)

	a := newArena(temporaryStorage)
	state := scanStateFromArena[int](a, numBlocks)
	if done, err := sizing(temporaryStorage, storageSize, a.size()); done {
		return err
	}
	if size == 0 {
		return stream.SubmitNamed(name, 0, func() {
			selectedCount.Set(0, 0)
		})
	}

	plus := func(a, b int) int { return a + b }
	return stream.SubmitNamed(name, size, func() {
		state.reset()
		launchGrid(cfg.Workers, numBlocks, state.ticket, func(b int) {
			offset := b * tileSize
			count := min(tileSize, size-offset)
			tile := make([]T, count)
			block.Load(tile, input, offset)

			flags := make([]bool, count)
			for i, v := range tile {
				flags[i] = flagOf(offset+i, v)
			}
			ranks := make([]int, count)
			tileSelected := block.RanksOfFlags(ranks, flags)

			cell := &state.cells[b]
			var prefix int
			if b == 0 {
				cell.publishInclusive(tileSelected)
			} else {
				cell.publishPartial(tileSelected)
				prefix = lookBack(state.cells, b, plus)
				cell.publishInclusive(prefix + tileSelected)
			}

			for i, v := range tile {
				if flags[i] {
					output.Set(prefix+ranks[i], v)
				} else if keepRejected {
					rejectedRank := (offset + i) - (prefix + ranks[i])
					output.Set(size-1-rejectedRank, v)
				}
			}
			if b == numBlocks-1 {
				selectedCount.Set(0, prefix+tileSelected)
			}
		})
	})
}
