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
)

// arena carves typed views out of the caller-provided temporary storage.
// The same sequence of arenaSlice calls is made in both halves of the
// two-call protocol: with a nil buffer the arena only accumulates the
// required size, with a real buffer it hands out the views. Keeping one
// code path for both guarantees the sizes always agree.
type arena struct {
	buf  []byte
	off  int
	base uintptr
}

func newArena(buf []byte) *arena {
	a := &arena{buf: buf}
	if buf != nil {
		a.base = uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	}
	return a
}

// size returns the number of bytes consumed so far.
func (a *arena) size() int { return a.off }

// arenaSlice reserves space for n values of T, aligned for T, and returns
// the typed view (nil in sizing mode). The view aliases the caller's bytes;
// it is not zeroed. Element types containing Go pointers cannot live in a
// raw byte buffer, since the collector would not scan them there; those get
// a fresh heap slice instead, while still consuming arena bytes so the two
// protocol calls stay in agreement.
func arenaSlice[T any](a *arena, n int) []T {
	var zero T
	align := int(unsafe.Alignof(zero))
	sz := int(unsafe.Sizeof(zero))

	// Align the absolute address, not just the offset, since the caller's
	// byte slice carries no alignment guarantee beyond 1. The sizing pass
	// has no address yet, so it reserves worst-case padding; the real pass
	// then consumes at most what was reported.
	if a.buf == nil {
		a.off += align - 1
	} else if rem := int(a.base+uintptr(a.off)) % align; rem != 0 {
		a.off += align - rem
	}
	start := a.off
	a.off += n * sz

	if a.buf == nil {
		return nil
	}
	if n == 0 {
		return []T{}
	}
	if hasPointers(reflect.TypeFor[T]()) {
		return make([]T, n)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.buf[start])), n)
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
