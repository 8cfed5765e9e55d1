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

// Package device implements the device-wide primitives: reduce, inclusive and
// exclusive scan, partition and select, reduce-by-key, and radix sort over
// whole arrays and over segments.
//
// Every entry point follows the same two-call protocol. Call it once with a
// nil temporaryStorage to learn the scratch size, allocate that many bytes,
// then call it again with the storage to enqueue the work:
//
//	var size int
//	if err := device.InclusiveScan[int](nil, &size, in, out, n, op, nil); err != nil {
//		return err
//	}
//	tmp := make([]byte, size)
//	if err := device.InclusiveScan[int](tmp, &size, in, out, n, op, nil); err != nil {
//		return err
//	}
//	rocprim.DefaultStream().Synchronize()
//
// Work is enqueued on a rocprim.Stream and runs asynchronously; a nil stream
// means the default stream. Results are defined only after the stream has
// been synchronized.
package device

import "github.com/aaronenyeshi/rocPRIM/rocprim"

// minStorageSize keeps zero-scratch operations from reporting a zero-byte
// allocation, which some allocators reject.
const minStorageSize = 4

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// sizing implements the first half of the two-call protocol. When
// temporaryStorage is nil it writes the required size and reports done. When
// storage is present it validates the size.
func sizing(temporaryStorage []byte, storageSize *int, required int) (done bool, err error) {
	if required < minStorageSize {
		required = minStorageSize
	}
	if storageSize == nil {
		return true, rocprim.ErrNilRequiredOutput
	}
	if temporaryStorage == nil {
		*storageSize = required
		return true, nil
	}
	if len(temporaryStorage) < required {
		return true, rocprim.ErrInsufficientStorage
	}
	return false, nil
}
