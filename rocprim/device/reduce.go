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

// Reduce combines input[0..size) under reduceOp, in source order, and writes
// the result to output index 0. size must be at least one; with an empty
// input there is no value to produce and nothing is written.
func Reduce[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, reduceOp rocprim.BinaryOp[T], stream *rocprim.Stream) error {
	return reduceImpl(temporaryStorage, storageSize, input, output, size, reduceOp, stream, *new(T), false)
}

// ReduceWithInit is Reduce seeded with initialValue: the result is
// initialValue combined with the reduction of the input. An empty input
// yields initialValue.
func ReduceWithInit[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, initialValue T, reduceOp rocprim.BinaryOp[T], stream *rocprim.Stream) error {
	return reduceImpl(temporaryStorage, storageSize, input, output, size, reduceOp, stream, initialValue, true)
}

func reduceImpl[T any](temporaryStorage []byte, storageSize *int, input rocprim.Iter[T], output rocprim.MutIter[T], size int, reduceOp rocprim.BinaryOp[T], stream *rocprim.Stream, initialValue T, hasInit bool) error {
	if input == nil || output == nil {
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
		if hasInit {
			return stream.SubmitNamed("reduce", 0, func() {
				output.Set(0, initialValue)
			})
		}
		return nil
	}

	return stream.SubmitNamed("reduce", size, func() {
		launchGrid(cfg.Workers, numBlocks, nil, func(b int) {
			offset := b * tileSize
			count := min(tileSize, size-offset)
			tile := make([]T, count)
			block.Load(tile, input, offset)
			blockSums[b] = block.Reduce(tile, reduceOp)
		})

		acc := blockSums[0]
		for _, s := range blockSums[1:] {
			acc = reduceOp(acc, s)
		}
		if hasInit {
			acc = reduceOp(initialValue, acc)
		}
		output.Set(0, acc)
	})
}
