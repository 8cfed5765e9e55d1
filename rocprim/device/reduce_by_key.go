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

// runCarry is a block's pending contribution to a run that started in an
// earlier block: the reduction of the block's leading elements, destined for
// the aggregate slot the run's owner wrote.
type runCarry[V any] struct {
	value V
	dst   int
	has   bool
}

// ReduceByKey reduces runs of consecutive equal keys. For each run, the key
// is written once to uniqueOut and the reduction of the run's values under
// reduceOp, in source order, to the matching index of aggregatesOut. The
// number of runs is written to uniqueCount index 0. keyCompareOp decides
// whether two adjacent keys belong to the same run; keys in different runs
// may still compare equal if they are not adjacent.
//
// The engine works in four steps: a grid counts the run heads in every
// tile, the per-tile counts are scanned into output offsets, a second grid
// scatters keys and per-tile value reductions (recording a carry for a tile
// whose leading elements continue an earlier run), and a final fix-up folds
// the carries into the aggregates in block order.
func ReduceByKey[K, V any](temporaryStorage []byte, storageSize *int, keysInput rocprim.Iter[K], valuesInput rocprim.Iter[V], size int, uniqueOut rocprim.MutIter[K], aggregatesOut rocprim.MutIter[V], uniqueCount rocprim.MutIter[int], reduceOp rocprim.BinaryOp[V], keyCompareOp rocprim.CompareOp[K], stream *rocprim.Stream) error {
	if keysInput == nil || valuesInput == nil || uniqueOut == nil || aggregatesOut == nil || uniqueCount == nil {
		return rocprim.ErrNilRequiredOutput
	}
	cfg := rocprim.DefaultConfig()
	tileSize := cfg.TileSize()
	numBlocks := ceilDiv(size, tileSize)

	a := newArena(temporaryStorage)
	counts := arenaSlice[int](a, numBlocks)
	carries := arenaSlice[runCarry[V]](a, numBlocks)
	if done, err := sizing(temporaryStorage, storageSize, a.size()); done {
		return err
	}
	if size == 0 {
		return stream.SubmitNamed("reduce_by_key", 0, func() {
			uniqueCount.Set(0, 0)
		})
	}

	headFlags := func(b int) ([]bool, int, int) {
		offset := b * tileSize
		count := min(tileSize, size-offset)
		keysTile := make([]K, count)
		block.Load(keysTile, keysInput, offset)
		flags := make([]bool, count)
		var pred K
		hasPred := offset > 0
		if hasPred {
			pred = keysInput.At(offset - 1)
		}
		block.FlagHeads(flags, keysTile, pred, hasPred, keyCompareOp)
		return flags, offset, count
	}

	return stream.SubmitNamed("reduce_by_key", size, func() {
		launchGrid(cfg.Workers, numBlocks, nil, func(b int) {
			flags, _, _ := headFlags(b)
			counts[b] = block.CountFlags(flags)
			carries[b] = runCarry[V]{}
		})

		// counts becomes, in place, the output index of each tile's first
		// run head.
		total := 0
		for b, c := range counts {
			counts[b] = total
			total += c
		}
		uniqueCount.Set(0, total)

		launchGrid(cfg.Workers, numBlocks, nil, func(b int) {
			flags, offset, count := headFlags(b)
			start := counts[b]
			dest := start - 1
			var acc V
			open := false
			flush := func() {
				if !open {
					return
				}
				if dest >= start {
					aggregatesOut.Set(dest, acc)
				} else {
					carries[b] = runCarry[V]{value: acc, dst: dest, has: true}
				}
			}
			for i := range count {
				g := offset + i
				if flags[i] {
					flush()
					dest++
					uniqueOut.Set(dest, keysInput.At(g))
					acc = valuesInput.At(g)
					open = true
					continue
				}
				if open {
					acc = reduceOp(acc, valuesInput.At(g))
				} else {
					acc = valuesInput.At(g)
					open = true
				}
			}
			flush()
		})

		// Fix-up in ascending block order: a run spanning several tiles
		// gets its contributions composed in source order.
		for b := 1; b < numBlocks; b++ {
			if c := carries[b]; c.has {
				aggregatesOut.Set(c.dst, reduceOp(aggregatesOut.At(c.dst), c.value))
			}
		}
	})
}
