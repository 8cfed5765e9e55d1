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

// Floats covers the floating-point element types supported by the device
// primitives.
type Floats interface {
	~float32 | ~float64
}

// SignedInts covers the signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts covers the unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers covers the signed and unsigned integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Arithmetic covers every integer and floating-point type. Radix sort keys must
// satisfy this constraint; their bit patterns are what the digit passes
// operate on.
type Arithmetic interface {
	Integers | Floats
}

// WavefrontSize is the width of a lock-step lane group. Ballot and bit-count
// operations in the block layer work on groups of this size.
const WavefrontSize = 64
