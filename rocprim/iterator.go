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

// Iter is a random-access input range. The device engines read through this
// interface and never assume contiguous storage, so adapters like Counting or
// Transform can stand in for real arrays.
type Iter[T any] interface {
	At(i int) T
}

// MutIter is a random-access output range.
type MutIter[T any] interface {
	Iter[T]
	Set(i int, v T)
}

// Slice adapts a Go slice to the iterator interfaces.
type Slice[T any] []T

// At returns the i-th element.
func (s Slice[T]) At(i int) T { return s[i] }

// Set stores v at index i.
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Counting is a virtual range yielding Base, Base+1, Base+2, ...
type Counting[T Integers] struct {
	Base T
}

// At returns Base + i.
func (c Counting[T]) At(i int) T { return c.Base + T(i) }

// Constant is a virtual range yielding the same value at every index.
type Constant[T any] struct {
	Value T
}

// At returns the constant value regardless of index.
func (c Constant[T]) At(int) T { return c.Value }

// Transform applies a function to every element of an underlying range.
type Transform[T, U any] struct {
	It Iter[T]
	Fn func(T) U
}

// At returns Fn applied to the i-th element of the underlying range.
func (t Transform[T, U]) At(i int) U { return t.Fn(t.It.At(i)) }

// Discard is an output range that drops everything written to it. Useful for
// operations where only one of the outputs is of interest.
type Discard[T any] struct{}

// At returns the zero value.
func (Discard[T]) At(int) T { var zero T; return zero }

// Set drops the value.
func (Discard[T]) Set(int, T) {}
