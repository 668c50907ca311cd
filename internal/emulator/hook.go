package emulator

/*
#include <unicorn/unicorn.h>
#include <stdint.h>
#include <stdbool.h>

extern void ucGoInterruptHook(uc_engine *uc, uint32_t intno, void *user);
extern bool ucGoInvalidInsnHook(uc_engine *uc, void *user);
extern void ucGoCodeHook(uc_engine *uc, uint64_t addr, uint32_t size, void *user);
extern void ucGoMemHook(uc_engine *uc, uc_mem_type type, uint64_t addr, int size, int64_t value, void *user);
extern bool ucGoMemEventHook(uc_engine *uc, uc_mem_type type, uint64_t addr, int size, int64_t value, void *user);

// uc_hook_add is variadic, which cgo cannot call, and the trampoline is
// selected per hook category here so no function pointer crosses into Go.
// The shims are static, so they must live in this file's preamble where
// they are called.
static uc_err uc_hook_add_intr(uc_engine *uc, uc_hook *hh, int type, uintptr_t user, uint64_t begin, uint64_t end) {
	return uc_hook_add(uc, hh, type, ucGoInterruptHook, (void *)user, begin, end);
}

static uc_err uc_hook_add_insn_invalid(uc_engine *uc, uc_hook *hh, int type, uintptr_t user, uint64_t begin, uint64_t end) {
	return uc_hook_add(uc, hh, type, ucGoInvalidInsnHook, (void *)user, begin, end);
}

static uc_err uc_hook_add_code(uc_engine *uc, uc_hook *hh, int type, uintptr_t user, uint64_t begin, uint64_t end) {
	return uc_hook_add(uc, hh, type, ucGoCodeHook, (void *)user, begin, end);
}

static uc_err uc_hook_add_mem(uc_engine *uc, uc_hook *hh, int type, uintptr_t user, uint64_t begin, uint64_t end) {
	return uc_hook_add(uc, hh, type, ucGoMemHook, (void *)user, begin, end);
}

static uc_err uc_hook_add_mem_event(uc_engine *uc, uc_hook *hh, int type, uintptr_t user, uint64_t begin, uint64_t end) {
	return uc_hook_add(uc, hh, type, ucGoMemEventHook, (void *)user, begin, end);
}
*/
import "C"

import (
	"runtime/cgo"
	"sync/atomic"

	"github.com/loqix/unicorn-net/emulator"
)

// hookEntry owns everything the native engine may call back into: the Go
// callback, its user data, and the cgo handle passed through the engine's
// opaque user pointer. The entry stays in the emulator's hook table until
// Close, so the trampoline state is reachable for exactly as long as the
// engine may invoke it.
type hookEntry struct {
	emu      *Emu
	typ      emulator.HookType
	callback any
	data     any
	handle   cgo.Handle
	hh       C.uc_hook
	released atomic.Bool
}

type hookAdd = func(uc *C.uc_engine, hh *C.uc_hook, typ C.int, user C.uintptr_t, begin, end C.uint64_t) C.uc_err

func (e *Emu) Hook(typ emulator.HookType, callback any, data any, begin, end uint64) (emulator.Hook, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	if callback == nil {
		return nil, emulator.ErrNilCallback
	}
	add, err := hookAdder(typ, callback)
	if err != nil {
		return nil, err
	}
	ent := &hookEntry{emu: e, typ: typ, callback: callback, data: data}
	ent.handle = cgo.NewHandle(ent)
	code := add(e.uc, &ent.hh, C.int(typ), C.uintptr_t(ent.handle), C.uint64_t(begin), C.uint64_t(end))
	if err := errOf(code); err != nil {
		ent.handle.Delete()
		return nil, err
	}
	e.hooks.Store(ent, struct{}{})
	return ent, nil
}

// hookAdder validates the callback's dynamic type against the hook category
// and selects the matching native trampoline registration.
func hookAdder(typ emulator.HookType, callback any) (hookAdd, error) {
	switch {
	case typ == 0:
		return nil, emulator.ErrHookType
	case typ == emulator.HOOK_TYPE_INTR:
		if _, ok := callback.(emulator.InterruptCallback); !ok {
			return nil, emulator.ErrHookCallbackType
		}
		return func(uc *C.uc_engine, hh *C.uc_hook, typ C.int, user C.uintptr_t, begin, end C.uint64_t) C.uc_err {
			return C.uc_hook_add_intr(uc, hh, typ, user, begin, end)
		}, nil
	case typ == emulator.HOOK_TYPE_INSN_INVALID:
		if _, ok := callback.(emulator.InvalidCallback); !ok {
			return nil, emulator.ErrHookCallbackType
		}
		return func(uc *C.uc_engine, hh *C.uc_hook, typ C.int, user C.uintptr_t, begin, end C.uint64_t) C.uc_err {
			return C.uc_hook_add_insn_invalid(uc, hh, typ, user, begin, end)
		}, nil
	case typ&^(emulator.HOOK_TYPE_CODE|emulator.HOOK_TYPE_BLOCK) == 0:
		if _, ok := callback.(emulator.CodeCallback); !ok {
			return nil, emulator.ErrHookCallbackType
		}
		return func(uc *C.uc_engine, hh *C.uc_hook, typ C.int, user C.uintptr_t, begin, end C.uint64_t) C.uc_err {
			return C.uc_hook_add_code(uc, hh, typ, user, begin, end)
		}, nil
	case typ&^emulator.HOOK_TYPE_MEM_ALL == 0:
		if _, ok := callback.(emulator.MemoryCallback); !ok {
			return nil, emulator.ErrHookCallbackType
		}
		return func(uc *C.uc_engine, hh *C.uc_hook, typ C.int, user C.uintptr_t, begin, end C.uint64_t) C.uc_err {
			return C.uc_hook_add_mem(uc, hh, typ, user, begin, end)
		}, nil
	case typ&^emulator.HOOK_TYPE_MEM_INVALID == 0:
		if _, ok := callback.(emulator.MemoryEventCallback); !ok {
			return nil, emulator.ErrHookCallbackType
		}
		return func(uc *C.uc_engine, hh *C.uc_hook, typ C.int, user C.uintptr_t, begin, end C.uint64_t) C.uc_err {
			return C.uc_hook_add_mem_event(uc, hh, typ, user, begin, end)
		}, nil
	}
	return nil, emulator.ErrHookType
}

func (ent *hookEntry) Close() error {
	ent.emu.hooks.Delete(ent)
	return ent.release(true)
}

func (ent *hookEntry) Type() emulator.HookType {
	return ent.typ
}

// release drops the native hook and frees the trampoline state exactly
// once. del is false when the engine itself is being closed, which frees
// its hook table wholesale.
func (ent *hookEntry) release(del bool) error {
	if ent.released.Swap(true) {
		return nil
	}
	var err error
	if del && !ent.emu.closed.Load() {
		err = errOf(C.uc_hook_del(ent.emu.uc, ent.hh))
	}
	ent.handle.Delete()
	return err
}
