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

package rocprim

// DoubleBuffer is a pair of equally sized buffers with a selector marking
// which one currently holds valid data. The multi-pass sorts accept one to
// avoid allocating a second ping-pong array: after the sort returns, Current
// points at the sorted data, which may be either of the two slices passed in.
type DoubleBuffer[T any] struct {
	bufs     [2][]T
	selector int
}

// NewDoubleBuffer returns a DoubleBuffer whose current buffer is current.
// Both slices must have the same length.
func NewDoubleBuffer[T any](current, alternate []T) *DoubleBuffer[T] {
	return &DoubleBuffer[T]{bufs: [2][]T{current, alternate}}
}

// Current returns the buffer holding valid data.
func (d *DoubleBuffer[T]) Current() []T { return d.bufs[d.selector] }

// Alternate returns the scratch buffer.
func (d *DoubleBuffer[T]) Alternate() []T { return d.bufs[d.selector^1] }

// Selector reports which of the two buffers is current: 0 for the first
// slice passed to NewDoubleBuffer, 1 for the second.
func (d *DoubleBuffer[T]) Selector() int { return d.selector }

// Swap flips the selector, exchanging the roles of the two buffers.
func (d *DoubleBuffer[T]) Swap() { d.selector ^= 1 }
