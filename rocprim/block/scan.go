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

// Package block provides the intra-block building blocks the device engines
// are assembled from: tile-local scans, discontinuity flagging, ballot
// counting and guarded loads and stores. A block executes as a single
// goroutine, so "threads" cooperate by iterating the tile in order; the
// operations here keep the semantics of their lock-step counterparts while
// running sequentially.
package block

import "github.com/aaronenyeshi/rocPRIM/rocprim"

// InclusiveScan replaces tile with its inclusive prefix scan under op and
// returns the tile aggregate (the last element). The tile must be non-empty.
// op is applied strictly in ascending index order.
func InclusiveScan[T any](tile []T, op rocprim.BinaryOp[T]) T {
	acc := tile[0]
	for i := 1; i < len(tile); i++ {
		acc = op(acc, tile[i])
		tile[i] = acc
	}
	return acc
}

// ExclusiveScan replaces tile with its exclusive prefix scan seeded by init
// and returns the tile aggregate, the combination of init with every tile
// element. The tile must be non-empty.
func ExclusiveScan[T any](tile []T, init T, op rocprim.BinaryOp[T]) T {
	acc := init
	for i := range tile {
		v := tile[i]
		tile[i] = acc
		acc = op(acc, v)
	}
	return acc
}

// InclusiveScanSeeded is InclusiveScan with a carry-in prefix folded into
// every element. It returns the tile aggregate including the prefix.
func InclusiveScanSeeded[T any](tile []T, prefix T, op rocprim.BinaryOp[T]) T {
	acc := prefix
	for i := range tile {
		acc = op(acc, tile[i])
		tile[i] = acc
	}
	return acc
}

// Reduce combines the tile under op without writing back, in ascending index
// order. The tile must be non-empty.
func Reduce[T any](tile []T, op rocprim.BinaryOp[T]) T {
	acc := tile[0]
	for i := 1; i < len(tile); i++ {
		acc = op(acc, tile[i])
	}
	return acc
}
