package emulator

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqix/unicorn-net/emulator"
)

// A hook invoked through an engine other than the one it was registered
// against must not reach the Go callback; event dispatch reports the access
// unhandled.
func TestDispatchEngineMismatch(t *testing.T) {
	owner, err := New(emulator.ARCH_X86)
	require.NoError(t, err)
	t.Cleanup(func() { owner.Close() })
	other, err := New(emulator.ARCH_X86)
	require.NoError(t, err)
	t.Cleanup(func() { other.Close() })

	count := 0
	hook, err := owner.Hook(emulator.HOOK_TYPE_MEM_WRITE, emulator.MemoryCallback(func(access emulator.MemAccess, addr, size, value uint64, data any) {
		count++
	}), nil, 1, 0)
	require.NoError(t, err)
	defer hook.Close()
	user := uintptr(hook.(*hookEntry).handle)

	dispatchMem(unsafe.Pointer(other.uc), emulator.MEM_ACCESS_WRITE, 0x1000, 4, 1, user)
	assert.Zero(t, count)
	dispatchMem(unsafe.Pointer(owner.uc), emulator.MEM_ACCESS_WRITE, 0x1000, 4, 1, user)
	assert.Equal(t, 1, count)

	events := 0
	eventHook, err := owner.Hook(emulator.HOOK_TYPE_MEM_READ_UNMAPPED, emulator.MemoryEventCallback(func(access emulator.MemAccess, addr, size, value uint64, data any) bool {
		events++
		return true
	}), nil, 1, 0)
	require.NoError(t, err)
	defer eventHook.Close()
	eventUser := uintptr(eventHook.(*hookEntry).handle)

	assert.False(t, dispatchMemEvent(unsafe.Pointer(other.uc), emulator.MEM_ACCESS_READ_UNMAPPED, 0x2000, 4, 0, eventUser))
	assert.Zero(t, events)
	assert.True(t, dispatchMemEvent(unsafe.Pointer(owner.uc), emulator.MEM_ACCESS_READ_UNMAPPED, 0x2000, 4, 0, eventUser))
	assert.Equal(t, 1, events)
}

func TestDispatchEngineMismatchVoidHooks(t *testing.T) {
	owner, err := New(emulator.ARCH_X86)
	require.NoError(t, err)
	t.Cleanup(func() { owner.Close() })
	other, err := New(emulator.ARCH_X86)
	require.NoError(t, err)
	t.Cleanup(func() { other.Close() })

	interrupts := 0
	intrHook, err := owner.Hook(emulator.HOOK_TYPE_INTR, emulator.InterruptCallback(func(intno uint64, data any) {
		interrupts++
	}), nil, 1, 0)
	require.NoError(t, err)
	defer intrHook.Close()
	dispatchInterrupt(unsafe.Pointer(other.uc), 0x80, uintptr(intrHook.(*hookEntry).handle))
	assert.Zero(t, interrupts)

	insns := 0
	codeHook, err := owner.Hook(emulator.HOOK_TYPE_CODE, emulator.CodeCallback(func(addr, size uint64, data any) {
		insns++
	}), nil, 1, 0)
	require.NoError(t, err)
	defer codeHook.Close()
	dispatchCode(unsafe.Pointer(other.uc), 0x1000, 1, uintptr(codeHook.(*hookEntry).handle))
	assert.Zero(t, insns)

	invalid := 0
	invalidHook, err := owner.Hook(emulator.HOOK_TYPE_INSN_INVALID, emulator.InvalidCallback(func(data any) bool {
		invalid++
		return true
	}), nil, 1, 0)
	require.NoError(t, err)
	defer invalidHook.Close()
	assert.False(t, dispatchInvalidInsn(unsafe.Pointer(other.uc), uintptr(invalidHook.(*hookEntry).handle)))
	assert.Zero(t, invalid)
}
