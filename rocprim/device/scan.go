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

// InclusiveScan computes the inclusive prefix scan of input under scanOp and
// writes it to output. output[i] is the combination of input[0..i] in source
// order; scanOp must be associative but need not be commutative. Input and
// output may be the same range (scanning in place is supported); tiles run
// concurrently, so output must not overlap input at a shifted position.
//
// The first call with nil temporaryStorage writes the required scratch size
// to *storageSize; the second call enqueues the scan on stream.
func InclusiveScan[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, scanOp rocprim.BinaryOp[T], stream *rocprim.Stream) error {
	return scanImpl(temporaryStorage, storageSize, "inclusive_scan", input, output, size, scanOp, stream,
		func(tile []T, b int, prefix T, hasPrefix bool, offset int) {
			block.InclusiveScan(tile, scanOp)
			if !hasPrefix {
				block.Store(tile, output, offset)
				return
			}
			for i, v := range tile {
				output.Set(offset+i, scanOp(prefix, v))
			}
		})
}

// ExclusiveScan computes the exclusive prefix scan of input under scanOp,
// seeded by initialValue: output[0] is initialValue and output[i] is the
// combination of initialValue with input[0..i-1].
func ExclusiveScan[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, initialValue T, scanOp rocprim.BinaryOp[T], stream *rocprim.Stream) error {
	// The status cells hold pure reductions of the input; initialValue is
	// folded in only at the output writes. This keeps the look-back chain
	// independent of the seed, which matters for operators without an
	// identity element.
	return scanImpl(temporaryStorage, storageSize, "exclusive_scan", input, output, size, scanOp, stream,
		func(tile []T, b int, prefix T, hasPrefix bool, offset int) {
			block.InclusiveScan(tile, scanOp)
			base := initialValue
			if hasPrefix {
				base = scanOp(initialValue, prefix)
			}
			output.Set(offset, base)
			for i := 1; i < len(tile); i++ {
				output.Set(offset+i, scanOp(base, tile[i-1]))
			}
		})
}

// scanImpl is the shared single-pass engine. Each block loads its tile,
// publishes its tile aggregate, resolves its exclusive prefix through the
// look-back chain, then hands tile, prefix and offset to finish for the
// output writes.
func scanImpl[T any](temporaryStorage []byte, storageSize *int, name string, input rocprim.Iter[T], output rocprim.MutIter[T], size int, scanOp rocprim.BinaryOp[T], stream *rocprim.Stream,
	finish func(tile []T, b int, prefix T, hasPrefix bool, offset int)) error {
	if input == nil || output == nil {
		return rocprim.ErrNilRequiredOutput
	}
	cfg := rocprim.DefaultConfig()
	tileSize := cfg.TileSize()
	numBlocks := ceilDiv(size, tileSize)

	a := newArena(temporaryStorage)
	state := scanStateFromArena[T](a, numBlocks)
	if done, err := sizing(temporaryStorage, storageSize, a.size()); done {
		return err
	}
	if size == 0 {
		return nil
	}

	return stream.SubmitNamed(name, size, func() {
		state.reset()
		launchGrid(cfg.Workers, numBlocks, state.ticket, func(b int) {
			offset := b * tileSize
			count := min(tileSize, size-offset)
			tile := make([]T, count)
			block.Load(tile, input, offset)

			agg := block.Reduce(tile, scanOp)
			cell := &state.cells[b]
			if b == 0 {
				cell.publishInclusive(agg)
				finish(tile, b, *new(T), false, offset)
				return
			}
			cell.publishPartial(agg)
			prefix := lookBack(state.cells, b, scanOp)
			cell.publishInclusive(scanOp(prefix, agg))
			finish(tile, b, prefix, true, offset)
		})
	})
}
