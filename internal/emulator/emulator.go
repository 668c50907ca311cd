package emulator

/*
#include <unicorn/unicorn.h>
*/
import "C"

import (
	"sync"
	"sync/atomic"

	"github.com/loqix/unicorn-net/emulator"
)

// Emu binds a native engine instance to the emulator.Emulator surface.
type Emu struct {
	uc       *C.uc_engine
	arch     emulator.Arch
	order    emulator.ByteOrder
	pageSize uint64
	closed   atomic.Bool
	hooks    sync.Map // *hookEntry -> struct{}
	hostMu   sync.Mutex
	host     map[uint64][]byte
}

func New(arch emulator.Arch) (*Emu, error) {
	var ucArch C.uc_arch
	var ucMode C.uc_mode
	switch arch {
	case emulator.ARCH_ARM:
		ucArch, ucMode = C.UC_ARCH_ARM, C.UC_MODE_ARM
	case emulator.ARCH_ARM64:
		ucArch, ucMode = C.UC_ARCH_ARM64, C.UC_MODE_ARM
	case emulator.ARCH_X86:
		ucArch, ucMode = C.UC_ARCH_X86, C.UC_MODE_32
	case emulator.ARCH_X86_64:
		ucArch, ucMode = C.UC_ARCH_X86, C.UC_MODE_64
	default:
		return nil, emulator.ErrArchUnsupported
	}
	var uc *C.uc_engine
	if err := errOf(C.uc_open(ucArch, ucMode, &uc)); err != nil {
		return nil, err
	}
	e := &Emu{
		uc:    uc,
		arch:  arch,
		order: emulator.BO_LITTLE_ENDIAN,
		host:  make(map[uint64][]byte),
	}
	var ps C.size_t
	if err := errOf(C.uc_query(uc, C.UC_QUERY_PAGE_SIZE, &ps)); err != nil {
		C.uc_close(uc)
		return nil, err
	}
	e.pageSize = uint64(ps)
	return e, nil
}

// check is the shared disposed guard; every operation calls it before
// touching the native handle.
func (e *Emu) check() error {
	if e.closed.Load() {
		return emulator.ErrEmulatorClosed
	}
	return nil
}

func (e *Emu) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	for hook := range e.hooks.Range {
		hook.(*hookEntry).release(false)
	}
	e.hooks.Clear()
	err := errOf(C.uc_close(e.uc))
	e.freeHostPages()
	return err
}

func (e *Emu) Arch() emulator.Arch {
	return e.arch
}

func (e *Emu) ByteOrder() emulator.ByteOrder {
	return e.order
}

func (e *Emu) PageSize() uint64 {
	return e.pageSize
}

func (e *Emu) Start(begin, until uint64) error {
	if err := e.check(); err != nil {
		return err
	}
	return errOf(C.uc_emu_start(e.uc, C.uint64_t(begin), C.uint64_t(until), 0, 0))
}

func (e *Emu) Stop() error {
	if err := e.check(); err != nil {
		return err
	}
	return errOf(C.uc_emu_stop(e.uc))
}
