// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package typedesc

import (
	"hash/fnv"
	"sync"
)

// StringHandle is the fixed-width handle that stands in for a string
// inside a blind buffer. Its value is the 64-bit FNV-1a hash of the
// string contents, so a handle is stable across processes; resolving a
// handle back to its text requires the string to have been interned in
// this process. The UStringHash base type stores the same handle
// without implying the text is resolvable.
type StringHandle uint64

var internPool = struct {
	sync.RWMutex
	byHash map[StringHandle]string
}{byHash: make(map[StringHandle]string)}

// Intern records s in the process-wide string pool and returns its
// handle. Interning the same string always yields the same handle.
// Safe for concurrent use.
func Intern(s string) StringHandle {
	h := hashString(s)
	internPool.RLock()
	_, ok := internPool.byHash[h]
	internPool.RUnlock()
	if !ok {
		internPool.Lock()
		internPool.byHash[h] = s
		internPool.Unlock()
	}
	return h
}

// Lookup resolves a handle to its interned string. The second result is
// false if no string with this handle has been interned.
func (h StringHandle) Lookup() (string, bool) {
	internPool.RLock()
	s, ok := internPool.byHash[h]
	internPool.RUnlock()
	return s, ok
}

// String resolves the handle, returning "" if it is not interned.
func (h StringHandle) String() string {
	s, _ := h.Lookup()
	return s
}

// Hash returns the raw hash value, suitable for storing in a buffer of
// UStringHash elements.
func (h StringHandle) Hash() uint64 { return uint64(h) }

func hashString(s string) StringHandle {
	f := fnv.New64a()
	f.Write([]byte(s))
	return StringHandle(f.Sum64())
}
