package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqix/unicorn-net/emulator"
)

const (
	testBase uint64 = 0x1000000
	testSize uint64 = 0x200000
)

// mov dword [0x1001000], ecx ; inc ecx ; dec edx
var codeStore = []byte{0x89, 0x0D, 0x00, 0x10, 0x00, 0x01, 0x41, 0x4A}

// mov ecx, dword [0x1001000] ; inc ecx ; dec edx
var codeLoad = []byte{0x8B, 0x0D, 0x00, 0x10, 0x00, 0x01, 0x41, 0x4A}

// mov ecx, dword [0x200000] — outside the mapped range
var codeLoadUnmapped = []byte{0x8B, 0x0D, 0x00, 0x00, 0x20, 0x00}

func newX86(t *testing.T, code []byte) *Emu {
	t.Helper()
	e, err := New(emulator.ARCH_X86)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	require.NoError(t, e.MemMap(testBase, testSize, emulator.MEM_PROT_ALL))
	require.NoError(t, e.MemWrite(testBase, code))
	return e
}

func TestOpenClose(t *testing.T) {
	e, err := New(emulator.ARCH_X86)
	require.NoError(t, err)
	assert.Equal(t, emulator.ARCH_X86, e.Arch())
	assert.Equal(t, emulator.BO_LITTLE_ENDIAN, e.ByteOrder())
	assert.NotZero(t, e.PageSize())

	require.NoError(t, e.Close())
	assert.NoError(t, e.Close())

	assert.ErrorIs(t, e.MemMap(testBase, testSize, emulator.MEM_PROT_ALL), emulator.ErrEmulatorClosed)
	assert.ErrorIs(t, e.Start(testBase, testBase+1), emulator.ErrEmulatorClosed)
	_, err = e.Hook(emulator.HOOK_TYPE_MEM_READ, func(access emulator.MemAccess, addr, size, value uint64, data any) {}, nil, 1, 0)
	assert.ErrorIs(t, err, emulator.ErrEmulatorClosed)
	_, err = e.RegRead(emulator.REG_X86_ECX)
	assert.ErrorIs(t, err, emulator.ErrEmulatorClosed)
}

func TestArchUnsupported(t *testing.T) {
	_, err := New(emulator.ARCH_UNKNOWN)
	assert.ErrorIs(t, err, emulator.ErrArchUnsupported)
}

func TestMemReadWrite(t *testing.T) {
	e := newX86(t, codeStore)

	data, err := e.MemRead(testBase, uint64(len(codeStore)))
	require.NoError(t, err)
	assert.Equal(t, codeStore, data)

	regions, err := e.MemRegions()
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, testBase, regions[0].Addr)
	assert.Equal(t, testSize, regions[0].Size)
	assert.Equal(t, emulator.MEM_PROT_ALL, regions[0].Prot)

	require.NoError(t, e.MemProtect(testBase+0x1000, 0x1000, emulator.MEM_PROT_READ))
	require.NoError(t, e.MemUnmap(testBase, testSize))
	_, err = e.MemRead(testBase, 4)
	assert.Error(t, err)
}

func TestRegReadWrite(t *testing.T) {
	e := newX86(t, codeStore)

	require.NoError(t, e.RegWrite(emulator.REG_X86_ECX, 0x1234))
	value, err := e.RegRead(emulator.REG_X86_ECX)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1234), value)

	regs := []emulator.Reg{emulator.REG_X86_EAX, emulator.REG_X86_EDX}
	require.NoError(t, e.RegWriteBatch(regs, []uint64{7, 9}))
	vals, err := e.RegReadBatch(regs...)
	require.NoError(t, err)
	assert.Equal(t, []uint64{7, 9}, vals)

	_, err = e.RegRead(emulator.REG_ARM_R0)
	assert.ErrorIs(t, err, emulator.ErrRegUnsupported)
}

func TestInformationalMemHook(t *testing.T) {
	e := newX86(t, codeStore)
	require.NoError(t, e.RegWrite(emulator.REG_X86_ECX, 0x1234))

	type event struct {
		access            emulator.MemAccess
		addr, size, value uint64
	}
	var events []event
	userData := "store trace"
	hook, err := emulator.MemoryHooks(e).Add(emulator.HOOK_TYPE_MEM_WRITE, func(access emulator.MemAccess, addr, size, value uint64, data any) {
		assert.Equal(t, userData, data)
		events = append(events, event{access, addr, size, value})
	}, userData)
	require.NoError(t, err)
	defer hook.Close()

	require.NoError(t, e.Start(testBase, testBase+uint64(len(codeStore))))

	require.Len(t, events, 1)
	assert.Equal(t, emulator.MEM_ACCESS_WRITE, events[0].access)
	assert.Equal(t, testBase+0x1000, events[0].addr)
	assert.Equal(t, uint64(4), events[0].size)
	assert.Equal(t, uint64(0x1234), events[0].value)

	stored, err := e.MemRead(testBase+0x1000, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x34, 0x12, 0x00, 0x00}, stored)
}

func TestInformationalReadHook(t *testing.T) {
	e := newX86(t, codeLoad)
	require.NoError(t, e.MemWrite(testBase+0x1000, []byte{0x78, 0x56, 0x34, 0x12}))

	var reads []emulator.MemAccess
	hook, err := emulator.MemoryHooks(e).Add(emulator.HOOK_TYPE_MEM_READ|emulator.HOOK_TYPE_MEM_READ_AFTER, func(access emulator.MemAccess, addr, size, value uint64, data any) {
		if addr == testBase+0x1000 {
			reads = append(reads, access)
		}
	}, nil)
	require.NoError(t, err)
	defer hook.Close()

	require.NoError(t, e.Start(testBase, testBase+uint64(len(codeLoad))))
	require.NotEmpty(t, reads)
	assert.Equal(t, emulator.MEM_ACCESS_READ, reads[0])

	value, err := e.RegRead(emulator.REG_X86_ECX)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x12345678+1), value)
}

func TestDefaultRangeMatchesSentinel(t *testing.T) {
	for name, register := range map[string]func(emulator.MemoryHookContainer, emulator.MemoryCallback) (emulator.Hook, error){
		"default": func(hooks emulator.MemoryHookContainer, cb emulator.MemoryCallback) (emulator.Hook, error) {
			return hooks.Add(emulator.HOOK_TYPE_MEM_WRITE, cb, nil)
		},
		"sentinel": func(hooks emulator.MemoryHookContainer, cb emulator.MemoryCallback) (emulator.Hook, error) {
			return hooks.AddRange(emulator.HOOK_TYPE_MEM_WRITE, cb, nil, emulator.HOOK_RANGE_ALL_BEGIN, emulator.HOOK_RANGE_ALL_END)
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := newX86(t, codeStore)
			require.NoError(t, e.RegWrite(emulator.REG_X86_ECX, 0x1234))
			count := 0
			hook, err := register(emulator.MemoryHooks(e), func(access emulator.MemAccess, addr, size, value uint64, data any) {
				count++
			})
			require.NoError(t, err)
			defer hook.Close()
			require.NoError(t, e.Start(testBase, testBase+uint64(len(codeStore))))
			assert.Equal(t, 1, count)
		})
	}
}

func TestMemHookRange(t *testing.T) {
	e := newX86(t, codeStore)
	require.NoError(t, e.RegWrite(emulator.REG_X86_ECX, 0x1234))

	count := 0
	// The store at base+0x1000 lies outside the hooked window.
	hook, err := emulator.MemoryHooks(e).AddRange(emulator.HOOK_TYPE_MEM_WRITE, func(access emulator.MemAccess, addr, size, value uint64, data any) {
		count++
	}, nil, testBase+0x2000, testBase+0x3000)
	require.NoError(t, err)
	defer hook.Close()

	require.NoError(t, e.Start(testBase, testBase+uint64(len(codeStore))))
	assert.Zero(t, count)
}

func TestEventHookUnresolved(t *testing.T) {
	e := newX86(t, codeLoadUnmapped)

	count := 0
	hook, err := emulator.MemoryHooks(e).AddEvent(emulator.HOOK_TYPE_MEM_UNMAPPED, func(access emulator.MemAccess, addr, size, value uint64, data any) bool {
		count++
		assert.Equal(t, emulator.MEM_ACCESS_READ_UNMAPPED, access)
		assert.Equal(t, uint64(0x200000), addr)
		return false
	}, nil)
	require.NoError(t, err)
	defer hook.Close()

	err = e.Start(testBase, testBase+uint64(len(codeLoadUnmapped)))
	require.Error(t, err)
	var ucErr Error
	require.True(t, errors.As(err, &ucErr))
	assert.NotZero(t, ucErr.Code())
	assert.Equal(t, 1, count)
}

func TestEventHookResolved(t *testing.T) {
	e := newX86(t, codeLoadUnmapped)

	hook, err := emulator.MemoryHooks(e).AddEvent(emulator.HOOK_TYPE_MEM_UNMAPPED, func(access emulator.MemAccess, addr, size, value uint64, data any) bool {
		if err := e.MemMap(addr&^(e.PageSize()-1), e.PageSize(), emulator.MEM_PROT_ALL); err != nil {
			return false
		}
		if err := e.MemWrite(addr, []byte{0x41, 0x42, 0x43, 0x44}); err != nil {
			return false
		}
		return true
	}, nil)
	require.NoError(t, err)
	defer hook.Close()

	require.NoError(t, e.Start(testBase, testBase+uint64(len(codeLoadUnmapped))))
	value, err := e.RegRead(emulator.REG_X86_ECX)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x44434241), value)
}

func TestHookClose(t *testing.T) {
	e := newX86(t, codeStore)
	require.NoError(t, e.RegWrite(emulator.REG_X86_ECX, 0x1234))

	count := 0
	hook, err := emulator.MemoryHooks(e).Add(emulator.HOOK_TYPE_MEM_WRITE, func(access emulator.MemAccess, addr, size, value uint64, data any) {
		count++
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, emulator.HOOK_TYPE_MEM_WRITE, hook.Type())

	require.NoError(t, hook.Close())
	assert.NoError(t, hook.Close())

	require.NoError(t, e.Start(testBase, testBase+uint64(len(codeStore))))
	assert.Zero(t, count, "closed hook must not fire")
}

func TestHookCallbackType(t *testing.T) {
	e := newX86(t, codeStore)

	_, err := e.Hook(emulator.HOOK_TYPE_MEM_READ, func() {}, nil, 1, 0)
	assert.ErrorIs(t, err, emulator.ErrHookCallbackType)
	_, err = e.Hook(emulator.HOOK_TYPE_MEM_READ|emulator.HOOK_TYPE_MEM_READ_UNMAPPED, func(access emulator.MemAccess, addr, size, value uint64, data any) {}, nil, 1, 0)
	assert.ErrorIs(t, err, emulator.ErrHookType)
	_, err = e.Hook(emulator.HOOK_TYPE_MEM_READ, nil, nil, 1, 0)
	assert.ErrorIs(t, err, emulator.ErrNilCallback)
}

func TestCodeAndInterruptHooks(t *testing.T) {
	// int 0x80 ; inc ecx
	code := []byte{0xCD, 0x80, 0x41}
	e := newX86(t, code)

	insns := 0
	codeHook, err := e.Hook(emulator.HOOK_TYPE_CODE, emulator.CodeCallback(func(addr, size uint64, data any) {
		insns++
	}), nil, 1, 0)
	require.NoError(t, err)
	defer codeHook.Close()

	var intno uint64
	intrHook, err := e.Hook(emulator.HOOK_TYPE_INTR, emulator.InterruptCallback(func(n uint64, data any) {
		intno = n
	}), nil, 1, 0)
	require.NoError(t, err)
	defer intrHook.Close()

	require.NoError(t, e.Start(testBase, testBase+uint64(len(code))))
	assert.Equal(t, uint64(0x80), intno)
	assert.Equal(t, 2, insns)
}

func TestContextSaveRestore(t *testing.T) {
	e := newX86(t, codeStore)

	require.NoError(t, e.RegWrite(emulator.REG_X86_ECX, 1))
	ctx, err := e.ContextAlloc()
	require.NoError(t, err)
	defer ctx.Close()
	require.NoError(t, ctx.Save())

	require.NoError(t, e.RegWrite(emulator.REG_X86_ECX, 2))
	require.NoError(t, ctx.Restore())
	value, err := e.RegRead(emulator.REG_X86_ECX)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), value)

	clone, err := ctx.Clone()
	require.NoError(t, err)
	defer clone.Close()
	value, err = clone.RegRead(emulator.REG_X86_ECX)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), value)
}

func TestMemMapHost(t *testing.T) {
	e, err := New(emulator.ARCH_X86)
	require.NoError(t, err)
	defer e.Close()

	buf, err := e.MemMapHost(testBase, 0x1000, emulator.MEM_PROT_ALL)
	require.NoError(t, err)
	buf[0] = 0xAA

	data, err := e.MemRead(testBase, 1)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), data[0])

	require.NoError(t, e.MemWrite(testBase+1, []byte{0xBB}))
	assert.Equal(t, byte(0xBB), buf[1])
}
