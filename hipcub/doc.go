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

// Package hipcub mirrors the CUB-flavored device API on top of the native
// engines, for callers porting code written against that naming scheme:
// InclusiveSum instead of a scan with a plus operator, Sum/Min/Max instead
// of a reduce with an explicit operator, and radix sorts that always cover
// the whole key width.
//
// The scan entry points run on the iterative reduce-then-scan engine rather
// than the single-pass one, matching the engine split CUB makes between the
// two code paths.
package hipcub
