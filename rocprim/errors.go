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

import "errors"

// Sentinel errors returned by device operations.
var (
	// ErrInvalidBitRange is returned by the radix sort entry points when
	// begin/end bit bounds fall outside [0, 8*sizeof(key)] or are not
	// strictly ordered.
	ErrInvalidBitRange = errors.New("rocprim: invalid radix bit range")

	// ErrNilRequiredOutput is returned when a required output range or
	// scalar destination is nil.
	ErrNilRequiredOutput = errors.New("rocprim: nil required output")

	// ErrInsufficientStorage is returned when the provided temporary
	// storage is smaller than the size reported by the sizing call.
	ErrInsufficientStorage = errors.New("rocprim: temporary storage too small")

	// ErrClosedStream is returned when work is enqueued on a closed stream.
	ErrClosedStream = errors.New("rocprim: stream is closed")
)
