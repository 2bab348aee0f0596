package universe

import (
	"reflect"
	"unsafe"
)

// eface mirrors the runtime layout of an empty interface value. The data
// word is swapped to point at a resolved type descriptor, which turns a
// raw typelink entry back into a reflect.Type.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typelinks returns, for each loaded module, the base pointer of its
// read-only data section and the offsets of every type descriptor the
// compiler emitted into that module.
//
//go:linkname typelinks reflect.typelinks
func typelinks() (sections []unsafe.Pointer, offsets [][]int32)

//go:linkname resolveTypeOff reflect.resolveTypeOff
func resolveTypeOff(base unsafe.Pointer, off int32) unsafe.Pointer

// typeAt resolves one typelink entry to a reflect.Type. The placeholder
// interface starts out holding a real *rtype so that the itab produced by
// the final assertion is the one the reflect package itself uses.
func typeAt(section unsafe.Pointer, off int32) reflect.Type {
	var placeholder any = reflect.TypeOf(int64(0))
	(*eface)(unsafe.Pointer(&placeholder)).data = resolveTypeOff(section, off)
	return placeholder.(reflect.Type)
}
