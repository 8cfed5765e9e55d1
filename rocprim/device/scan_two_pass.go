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

// InclusiveScanTwoPass is InclusiveScan on the iterative reduce-then-scan
// engine: a first grid reduces every tile, the tile aggregates are scanned,
// and a second grid rescans the tiles seeded with their prefixes. It trades
// a second read of the input for the absence of inter-block spinning, which
// can win when the worker pool is heavily oversubscribed.
func InclusiveScanTwoPass[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, scanOp rocprim.BinaryOp[T], stream *rocprim.Stream) error {
	return scanTwoPassImpl(temporaryStorage, storageSize, "inclusive_scan_two_pass", input, size, scanOp, stream,
		func(tile []T, prefix T, hasPrefix bool, offset int) {
			if hasPrefix {
				block.InclusiveScanSeeded(tile, prefix, scanOp)
			} else {
				block.InclusiveScan(tile, scanOp)
			}
			block.Store(tile, output, offset)
		})
}

// ExclusiveScanTwoPass is ExclusiveScan on the iterative reduce-then-scan
// engine.
func ExclusiveScanTwoPass[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, initialValue T, scanOp rocprim.BinaryOp[T], stream *rocprim.Stream) error {
	return scanTwoPassImpl(temporaryStorage, storageSize, "exclusive_scan_two_pass", input, size, scanOp, stream,
		func(tile []T, prefix T, hasPrefix bool, offset int) {
			base := initialValue
			if hasPrefix {
				base = scanOp(initialValue, prefix)
			}
			block.ExclusiveScan(tile, base, scanOp)
			block.Store(tile, output, offset)
		})
}

func scanTwoPassImpl[T any](temporaryStorage []byte, storageSize *int, name string, input rocprim.Iter[T], size int, scanOp rocprim.BinaryOp[T], stream *rocprim.Stream,
	finish func(tile []T, prefix T, hasPrefix bool, offset int)) error {
	if input == nil {
		return rocprim.ErrNilRequiredOutput
	}
	cfg := rocprim.DefaultConfig()
	tileSize := cfg.TileSize()
	numBlocks := ceilDiv(size, tileSize)

	a := newArena(temporaryStorage)
	blockSums := arenaSlice[T](a, numBlocks)
	if done, err := sizing(temporaryStorage, storageSize, a.size()); done {
		return err
	}
	if size == 0 {
		return nil
	}

	return stream.SubmitNamed(name, size, func() {
		launchGrid(cfg.Workers, numBlocks, nil, func(b int) {
			offset := b * tileSize
			count := min(tileSize, size-offset)
			tile := make([]T, count)
			block.Load(tile, input, offset)
			blockSums[b] = block.Reduce(tile, scanOp)
		})

		// Scan the tile aggregates into exclusive prefixes. numBlocks is
		// small, one pass on the host side is enough.
		var carry T
		for b := range blockSums {
			next := blockSums[b]
			if b > 0 {
				next = scanOp(carry, next)
				blockSums[b] = carry
			}
			carry = next
		}

		launchGrid(cfg.Workers, numBlocks, nil, func(b int) {
			offset := b * tileSize
			count := min(tileSize, size-offset)
			tile := make([]T, count)
			block.Load(tile, input, offset)
			finish(tile, blockSums[b], b > 0, offset)
		})
	})
}
