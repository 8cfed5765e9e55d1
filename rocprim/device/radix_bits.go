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
	"reflect"
	"unsafe"

	"github.com/aaronenyeshi/rocPRIM/rocprim"
)

// KeyBits returns the width of K in bits, the default end of a radix sort's
// bit range.
func KeyBits[K rocprim.Arithmetic]() int {
	var k K
	return int(unsafe.Sizeof(k)) * 8
}

func rawBits[K rocprim.Arithmetic](k K) uint64 {
	switch unsafe.Sizeof(k) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&k)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&k)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&k)))
	default:
		return *(*uint64)(unsafe.Pointer(&k))
	}
}

// radixEncoder maps keys to bit patterns whose unsigned order matches the
// key order. Unsigned keys pass through; signed keys get the sign bit
// flipped; floats get the sign bit flipped when positive and every bit
// flipped when negative, which orders negatives below positives and puts
// -0.0 before +0.0. For a descending sort the pattern is complemented,
// which also keeps the digit passes stable.
func radixEncoder[K rocprim.Arithmetic](descending bool) func(K) uint64 {
	var k K
	signMask := uint64(1) << (uint(unsafe.Sizeof(k))*8 - 1)

	var enc func(K) uint64
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Float32, reflect.Float64:
		enc = func(k K) uint64 {
			raw := rawBits(k)
			if raw&signMask != 0 {
				return ^raw
			}
			return raw | signMask
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		enc = func(k K) uint64 { return rawBits(k) ^ signMask }
	default:
		enc = rawBits[K]
	}
	if descending {
		asc := enc
		// Bits at and above the key width are never examined by a
		// digit pass, so complementing the full word is safe.
		enc = func(k K) uint64 { return ^asc(k) }
	}
	return enc
}
