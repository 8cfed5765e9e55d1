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
	"runtime"
	"sync/atomic"

	"github.com/aaronenyeshi/rocPRIM/rocprim"
)

// Per-block scan status. A cell moves EMPTY -> PARTIAL -> INCLUSIVE and each
// payload field is written exactly once, before the flag transition that
// publishes it.
const (
	statusEmpty uint32 = iota
	statusPartial
	statusInclusive
)

// scanCell is one block's slot in the decoupled look-back chain. partial
// holds the block's own tile aggregate; inclusive holds the running total up
// to and including the block. The two live in separate fields so a reader
// combining a PARTIAL payload never races the owner publishing INCLUSIVE.
type scanCell[T any] struct {
	flag      atomic.Uint32
	partial   T
	inclusive T
}

func (c *scanCell[T]) publishPartial(v T) {
	c.partial = v
	c.flag.Store(statusPartial)
}

func (c *scanCell[T]) publishInclusive(v T) {
	c.inclusive = v
	c.flag.Store(statusInclusive)
}

// waitStatus spins until the cell leaves EMPTY. The grid's ascending ticket
// order guarantees the owner of any cell we wait on is already running.
func (c *scanCell[T]) waitStatus() uint32 {
	for spin := 0; ; spin++ {
		if f := c.flag.Load(); f != statusEmpty {
			return f
		}
		if spin > 16 {
			runtime.Gosched()
		}
	}
}

// lookBack computes the exclusive prefix of block: the combination of every
// preceding block's tile aggregate, in ascending block order. It walks the
// cells from block-1 downward, prepending PARTIAL payloads until it meets an
// INCLUSIVE one, which caps the walk. block must be greater than zero.
func lookBack[T any](cells []scanCell[T], block int, op rocprim.BinaryOp[T]) T {
	var acc T
	haveAcc := false
	for i := block - 1; ; i-- {
		c := &cells[i]
		status := c.waitStatus()
		if status == statusInclusive {
			if !haveAcc {
				return c.inclusive
			}
			return op(c.inclusive, acc)
		}
		if !haveAcc {
			acc = c.partial
			haveAcc = true
		} else {
			acc = op(c.partial, acc)
		}
	}
}

// scanState is the inter-block coordination area for a single-pass scan
// launch: one cell per block plus the ordered ticket counter the grid
// workers claim block ids from.
type scanState[T any] struct {
	cells  []scanCell[T]
	ticket *atomic.Uint64
}

func scanStateFromArena[T any](a *arena, numBlocks int) scanState[T] {
	cells := arenaSlice[scanCell[T]](a, numBlocks)
	ticket := arenaSlice[atomic.Uint64](a, 1)
	if cells == nil {
		return scanState[T]{}
	}
	return scanState[T]{cells: cells, ticket: &ticket[0]}
}

// reset returns every cell to EMPTY and rewinds the ticket counter. The
// scratch bytes arrive with arbitrary contents, so this must run before the
// grid launch that uses them.
func (s scanState[T]) reset() {
	for i := range s.cells {
		s.cells[i].flag.Store(statusEmpty)
	}
	s.ticket.Store(0)
}
