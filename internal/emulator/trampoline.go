package emulator

/*
#include <unicorn/unicorn.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/loqix/unicorn-net/emulator"
)

// The exported functions below are the native-callable trampolines. Each
// forwards to a dispatcher that unwraps its hookEntry from the engine's
// opaque user pointer, verifies the invoking engine is the one the hook was
// registered against, translates the native access kind, and invokes the Go
// callback. They live in their own file because a file with //export
// directives may not define C functions in its preamble.

//export ucGoInterruptHook
func ucGoInterruptHook(uc *C.uc_engine, intno C.uint32_t, user unsafe.Pointer) {
	dispatchInterrupt(unsafe.Pointer(uc), uint64(intno), uintptr(user))
}

//export ucGoInvalidInsnHook
func ucGoInvalidInsnHook(uc *C.uc_engine, user unsafe.Pointer) C.bool {
	return C.bool(dispatchInvalidInsn(unsafe.Pointer(uc), uintptr(user)))
}

//export ucGoCodeHook
func ucGoCodeHook(uc *C.uc_engine, addr C.uint64_t, size C.uint32_t, user unsafe.Pointer) {
	dispatchCode(unsafe.Pointer(uc), uint64(addr), uint64(size), uintptr(user))
}

//export ucGoMemHook
func ucGoMemHook(uc *C.uc_engine, typ C.uc_mem_type, addr C.uint64_t, size C.int, value C.int64_t, user unsafe.Pointer) {
	dispatchMem(unsafe.Pointer(uc), emulator.MemAccess(typ), uint64(addr), uint64(size), uint64(value), uintptr(user))
}

//export ucGoMemEventHook
func ucGoMemEventHook(uc *C.uc_engine, typ C.uc_mem_type, addr C.uint64_t, size C.int, value C.int64_t, user unsafe.Pointer) C.bool {
	return C.bool(dispatchMemEvent(unsafe.Pointer(uc), emulator.MemAccess(typ), uint64(addr), uint64(size), uint64(value), uintptr(user)))
}

func dispatchInterrupt(uc unsafe.Pointer, intno uint64, user uintptr) {
	ent := entryOf(user)
	if unsafe.Pointer(ent.emu.uc) != uc {
		return
	}
	ent.callback.(emulator.InterruptCallback)(intno, ent.data)
}

func dispatchInvalidInsn(uc unsafe.Pointer, user uintptr) bool {
	ent := entryOf(user)
	if unsafe.Pointer(ent.emu.uc) != uc {
		return false
	}
	return ent.callback.(emulator.InvalidCallback)(ent.data)
}

func dispatchCode(uc unsafe.Pointer, addr, size uint64, user uintptr) {
	ent := entryOf(user)
	if unsafe.Pointer(ent.emu.uc) != uc {
		return
	}
	ent.callback.(emulator.CodeCallback)(addr, size, ent.data)
}

func dispatchMem(uc unsafe.Pointer, access emulator.MemAccess, addr, size, value uint64, user uintptr) {
	ent := entryOf(user)
	if unsafe.Pointer(ent.emu.uc) != uc {
		return
	}
	ent.callback.(emulator.MemoryCallback)(access, addr, size, value, ent.data)
}

func dispatchMemEvent(uc unsafe.Pointer, access emulator.MemAccess, addr, size, value uint64, user uintptr) bool {
	ent := entryOf(user)
	if unsafe.Pointer(ent.emu.uc) != uc {
		return false
	}
	return ent.callback.(emulator.MemoryEventCallback)(access, addr, size, value, ent.data)
}

func entryOf(user uintptr) *hookEntry {
	return cgo.Handle(user).Value().(*hookEntry)
}
