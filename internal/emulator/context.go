package emulator

/*
#include <string.h>
#include <unicorn/unicorn.h>
*/
import "C"

import (
	"unsafe"

	"github.com/loqix/unicorn-net/emulator"
)

type ucContext struct {
	emu *Emu
	ctx *C.uc_context
}

func (e *Emu) ContextAlloc() (emulator.Context, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	ctx := &ucContext{emu: e}
	if err := errOf(C.uc_context_alloc(e.uc, &ctx.ctx)); err != nil {
		return nil, err
	}
	return ctx, nil
}

func (c *ucContext) Close() error {
	if c.ctx == nil {
		return nil
	}
	err := errOf(C.uc_context_free(c.ctx))
	c.ctx = nil
	return err
}

func (c *ucContext) Save() error {
	if err := c.emu.check(); err != nil {
		return err
	}
	return errOf(C.uc_context_save(c.emu.uc, c.ctx))
}

func (c *ucContext) Restore() error {
	if err := c.emu.check(); err != nil {
		return err
	}
	return errOf(C.uc_context_restore(c.emu.uc, c.ctx))
}

func (c *ucContext) Clone() (emulator.Context, error) {
	clone, err := c.emu.ContextAlloc()
	if err != nil {
		return nil, err
	}
	size := C.uc_context_size(c.emu.uc)
	C.memcpy(unsafe.Pointer(clone.(*ucContext).ctx), unsafe.Pointer(c.ctx), size)
	return clone, nil
}

func (c *ucContext) RegRead(reg emulator.Reg) (uint64, error) {
	var value uint64
	err := c.RegReadPtr(reg, unsafe.Pointer(&value))
	return value, err
}

func (c *ucContext) RegWrite(reg emulator.Reg, value uint64) error {
	return c.RegWritePtr(reg, unsafe.Pointer(&value))
}

func (c *ucContext) RegReadPtr(reg emulator.Reg, ptr unsafe.Pointer) error {
	if err := c.emu.check(); err != nil {
		return err
	}
	id, err := regID(c.emu.arch, reg)
	if err != nil {
		return err
	}
	return errOf(C.uc_context_reg_read(c.ctx, id, ptr))
}

func (c *ucContext) RegWritePtr(reg emulator.Reg, ptr unsafe.Pointer) error {
	if err := c.emu.check(); err != nil {
		return err
	}
	id, err := regID(c.emu.arch, reg)
	if err != nil {
		return err
	}
	return errOf(C.uc_context_reg_write(c.ctx, id, ptr))
}

func (c *ucContext) RegReadBatch(regs ...emulator.Reg) ([]uint64, error) {
	vals := make([]uint64, len(regs))
	for i, reg := range regs {
		value, err := c.RegRead(reg)
		if err != nil {
			return nil, err
		}
		vals[i] = value
	}
	return vals, nil
}

func (c *ucContext) RegWriteBatch(regs []emulator.Reg, vals []uint64) error {
	for i, reg := range regs {
		if err := c.RegWrite(reg, vals[i]); err != nil {
			return err
		}
	}
	return nil
}
