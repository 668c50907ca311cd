package emulator

/*
#include <unicorn/unicorn.h>
*/
import "C"

import (
	"unsafe"

	"github.com/loqix/unicorn-net/emulator"
)

func (e *Emu) MemMap(addr, size uint64, prot emulator.MemProt) error {
	if err := e.check(); err != nil {
		return err
	}
	return errOf(C.uc_mem_map(e.uc, C.uint64_t(addr), C.size_t(size), C.uint32_t(prot)))
}

func (e *Emu) MemMapPtr(addr, size uint64, prot emulator.MemProt, ptr unsafe.Pointer) error {
	if err := e.check(); err != nil {
		return err
	}
	return errOf(C.uc_mem_map_ptr(e.uc, C.uint64_t(addr), C.size_t(size), C.uint32_t(prot), ptr))
}

func (e *Emu) MemUnmap(addr, size uint64) error {
	if err := e.check(); err != nil {
		return err
	}
	err := errOf(C.uc_mem_unmap(e.uc, C.uint64_t(addr), C.size_t(size)))
	if err == nil {
		e.freeHostRegion(addr)
	}
	return err
}

func (e *Emu) MemProtect(addr, size uint64, prot emulator.MemProt) error {
	if err := e.check(); err != nil {
		return err
	}
	return errOf(C.uc_mem_protect(e.uc, C.uint64_t(addr), C.size_t(size), C.uint32_t(prot)))
}

func (e *Emu) MemRegions() ([]emulator.MemRegion, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	var raw *C.uc_mem_region
	var count C.uint32_t
	if err := errOf(C.uc_mem_regions(e.uc, &raw, &count)); err != nil {
		return nil, err
	}
	defer C.uc_free(unsafe.Pointer(raw))
	regions := make([]emulator.MemRegion, count)
	for i, r := range unsafe.Slice(raw, int(count)) {
		regions[i] = emulator.MemRegion{
			Addr: uint64(r.begin),
			Size: uint64(r.end-r.begin) + 1,
			Prot: emulator.MemProt(r.perms),
		}
	}
	return regions, nil
}

func (e *Emu) MemRead(addr, size uint64) ([]byte, error) {
	data := make([]byte, size)
	err := e.MemReadPtr(addr, size, unsafe.Pointer(unsafe.SliceData(data)))
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (e *Emu) MemWrite(addr uint64, data []byte) error {
	return e.MemWritePtr(addr, uint64(len(data)), unsafe.Pointer(unsafe.SliceData(data)))
}

func (e *Emu) MemReadPtr(addr, size uint64, ptr unsafe.Pointer) error {
	if err := e.check(); err != nil {
		return err
	}
	return errOf(C.uc_mem_read(e.uc, C.uint64_t(addr), ptr, C.size_t(size)))
}

func (e *Emu) MemWritePtr(addr, size uint64, ptr unsafe.Pointer) error {
	if err := e.check(); err != nil {
		return err
	}
	return errOf(C.uc_mem_write(e.uc, C.uint64_t(addr), ptr, C.size_t(size)))
}
