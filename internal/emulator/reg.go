package emulator

/*
#include <unicorn/unicorn.h>
*/
import "C"

import (
	"unsafe"

	"github.com/loqix/unicorn-net/emulator"
)

func (e *Emu) RegRead(reg emulator.Reg) (uint64, error) {
	var value uint64
	err := e.RegReadPtr(reg, unsafe.Pointer(&value))
	return value, err
}

func (e *Emu) RegWrite(reg emulator.Reg, value uint64) error {
	return e.RegWritePtr(reg, unsafe.Pointer(&value))
}

func (e *Emu) RegReadPtr(reg emulator.Reg, ptr unsafe.Pointer) error {
	if err := e.check(); err != nil {
		return err
	}
	id, err := regID(e.arch, reg)
	if err != nil {
		return err
	}
	return errOf(C.uc_reg_read(e.uc, id, ptr))
}

func (e *Emu) RegWritePtr(reg emulator.Reg, ptr unsafe.Pointer) error {
	if err := e.check(); err != nil {
		return err
	}
	id, err := regID(e.arch, reg)
	if err != nil {
		return err
	}
	return errOf(C.uc_reg_write(e.uc, id, ptr))
}

func (e *Emu) RegReadBatch(regs ...emulator.Reg) ([]uint64, error) {
	vals := make([]uint64, len(regs))
	for i, reg := range regs {
		value, err := e.RegRead(reg)
		if err != nil {
			return nil, err
		}
		vals[i] = value
	}
	return vals, nil
}

func (e *Emu) RegWriteBatch(regs []emulator.Reg, vals []uint64) error {
	for i, reg := range regs {
		if err := e.RegWrite(reg, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

var armRegs = map[emulator.Reg]C.int{
	emulator.REG_ARM_SP:   C.UC_ARM_REG_SP,
	emulator.REG_ARM_LR:   C.UC_ARM_REG_LR,
	emulator.REG_ARM_PC:   C.UC_ARM_REG_PC,
	emulator.REG_ARM_CPSR: C.UC_ARM_REG_CPSR,
}

var arm64Regs = map[emulator.Reg]C.int{
	emulator.REG_ARM64_X29:  C.UC_ARM64_REG_X29,
	emulator.REG_ARM64_X30:  C.UC_ARM64_REG_X30,
	emulator.REG_ARM64_SP:   C.UC_ARM64_REG_SP,
	emulator.REG_ARM64_PC:   C.UC_ARM64_REG_PC,
	emulator.REG_ARM64_NZCV: C.UC_ARM64_REG_NZCV,
}

var x86Regs = map[emulator.Reg]C.int{
	emulator.REG_X86_EAX:    C.UC_X86_REG_EAX,
	emulator.REG_X86_EBX:    C.UC_X86_REG_EBX,
	emulator.REG_X86_ECX:    C.UC_X86_REG_ECX,
	emulator.REG_X86_EDX:    C.UC_X86_REG_EDX,
	emulator.REG_X86_ESI:    C.UC_X86_REG_ESI,
	emulator.REG_X86_EDI:    C.UC_X86_REG_EDI,
	emulator.REG_X86_EBP:    C.UC_X86_REG_EBP,
	emulator.REG_X86_ESP:    C.UC_X86_REG_ESP,
	emulator.REG_X86_EIP:    C.UC_X86_REG_EIP,
	emulator.REG_X86_EFLAGS: C.UC_X86_REG_EFLAGS,
}

var x8664Regs = map[emulator.Reg]C.int{
	emulator.REG_X86_64_RAX: C.UC_X86_REG_RAX,
	emulator.REG_X86_64_RBX: C.UC_X86_REG_RBX,
	emulator.REG_X86_64_RCX: C.UC_X86_REG_RCX,
	emulator.REG_X86_64_RDX: C.UC_X86_REG_RDX,
	emulator.REG_X86_64_RSI: C.UC_X86_REG_RSI,
	emulator.REG_X86_64_RDI: C.UC_X86_REG_RDI,
	emulator.REG_X86_64_RBP: C.UC_X86_REG_RBP,
	emulator.REG_X86_64_RSP: C.UC_X86_REG_RSP,
	emulator.REG_X86_64_RIP: C.UC_X86_REG_RIP,
	// The engine header names the flags register EFLAGS for every mode and
	// reads/writes it at the mode's width; there is no separate RFLAGS id.
	emulator.REG_X86_64_RFLAGS: C.UC_X86_REG_EFLAGS,
	emulator.REG_X86_64_R8:     C.UC_X86_REG_R8,
	emulator.REG_X86_64_R9:     C.UC_X86_REG_R9,
	emulator.REG_X86_64_R10:    C.UC_X86_REG_R10,
	emulator.REG_X86_64_R11:    C.UC_X86_REG_R11,
	emulator.REG_X86_64_R12:    C.UC_X86_REG_R12,
	emulator.REG_X86_64_R13:    C.UC_X86_REG_R13,
	emulator.REG_X86_64_R14:    C.UC_X86_REG_R14,
	emulator.REG_X86_64_R15:    C.UC_X86_REG_R15,
}

// regID maps the engine-neutral register names onto the native engine's
// constants. The numeric values come from the engine header, never from
// hand-copied literals.
func regID(arch emulator.Arch, reg emulator.Reg) (C.int, error) {
	switch arch {
	case emulator.ARCH_ARM:
		if reg >= emulator.REG_ARM_R0 && reg <= emulator.REG_ARM_R12 {
			return C.int(C.UC_ARM_REG_R0) + C.int(reg-emulator.REG_ARM_R0), nil
		}
		if id, ok := armRegs[reg]; ok {
			return id, nil
		}
	case emulator.ARCH_ARM64:
		if reg >= emulator.REG_ARM64_X0 && reg <= emulator.REG_ARM64_X28 {
			return C.int(C.UC_ARM64_REG_X0) + C.int(reg-emulator.REG_ARM64_X0), nil
		}
		if id, ok := arm64Regs[reg]; ok {
			return id, nil
		}
	case emulator.ARCH_X86:
		if id, ok := x86Regs[reg]; ok {
			return id, nil
		}
	case emulator.ARCH_X86_64:
		if id, ok := x8664Regs[reg]; ok {
			return id, nil
		}
	}
	return 0, emulator.ErrRegUnsupported
}
