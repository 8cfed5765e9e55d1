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

// BinaryOp combines two values. Scan, reduce and reduce-by-key require it to
// be associative; it does not have to be commutative, and the engines compose
// operands strictly in source order.
type BinaryOp[T any] func(a, b T) T

// CompareOp reports whether two keys belong to the same segment.
type CompareOp[K any] func(a, b K) bool

// Plus returns an addition operator.
func Plus[T Arithmetic]() BinaryOp[T] {
	return func(a, b T) T { return a + b }
}

// Minimum returns a min operator.
func Minimum[T Arithmetic]() BinaryOp[T] {
	return func(a, b T) T {
		if b < a {
			return b
		}
		return a
	}
}

// Maximum returns a max operator.
func Maximum[T Arithmetic]() BinaryOp[T] {
	return func(a, b T) T {
		if b > a {
			return b
		}
		return a
	}
}

// EqualTo returns the equality comparison used by reduce-by-key to delimit
// runs of matching keys.
func EqualTo[K comparable]() CompareOp[K] {
	return func(a, b K) bool { return a == b }
}
