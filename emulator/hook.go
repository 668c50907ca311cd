package emulator

import "io"

// HookType selects which engine events a hook observes. The values cross the
// native boundary as raw bits and must stay numerically equal to the engine's
// own hook-type constants.
type HookType int

const (
	HOOK_TYPE_INTR HookType = 1 << iota
	HOOK_TYPE_INSN
	HOOK_TYPE_CODE
	HOOK_TYPE_BLOCK
	HOOK_TYPE_MEM_READ_UNMAPPED
	HOOK_TYPE_MEM_WRITE_UNMAPPED
	HOOK_TYPE_MEM_FETCH_UNMAPPED
	HOOK_TYPE_MEM_READ_PROT
	HOOK_TYPE_MEM_WRITE_PROT
	HOOK_TYPE_MEM_FETCH_PROT
	HOOK_TYPE_MEM_READ
	HOOK_TYPE_MEM_WRITE
	HOOK_TYPE_MEM_FETCH
	HOOK_TYPE_MEM_READ_AFTER
	HOOK_TYPE_INSN_INVALID

	HOOK_TYPE_MEM_UNMAPPED      = HOOK_TYPE_MEM_READ_UNMAPPED | HOOK_TYPE_MEM_WRITE_UNMAPPED | HOOK_TYPE_MEM_FETCH_UNMAPPED
	HOOK_TYPE_MEM_PROT          = HOOK_TYPE_MEM_READ_PROT | HOOK_TYPE_MEM_WRITE_PROT | HOOK_TYPE_MEM_FETCH_PROT
	HOOK_TYPE_MEM_READ_INVALID  = HOOK_TYPE_MEM_READ_UNMAPPED | HOOK_TYPE_MEM_READ_PROT
	HOOK_TYPE_MEM_WRITE_INVALID = HOOK_TYPE_MEM_WRITE_UNMAPPED | HOOK_TYPE_MEM_WRITE_PROT
	HOOK_TYPE_MEM_FETCH_INVALID = HOOK_TYPE_MEM_FETCH_UNMAPPED | HOOK_TYPE_MEM_FETCH_PROT
	HOOK_TYPE_MEM_INVALID       = HOOK_TYPE_MEM_UNMAPPED | HOOK_TYPE_MEM_PROT
	HOOK_TYPE_MEM_VALID         = HOOK_TYPE_MEM_READ | HOOK_TYPE_MEM_WRITE | HOOK_TYPE_MEM_FETCH
	HOOK_TYPE_MEM_ALL           = HOOK_TYPE_MEM_VALID | HOOK_TYPE_MEM_READ_AFTER
)

// MemAccess is the access kind delivered in memory-hook payloads. The values
// must stay numerically equal to the engine's memory-access constants.
type MemAccess int

const (
	MEM_ACCESS_READ MemAccess = iota + 16
	MEM_ACCESS_WRITE
	MEM_ACCESS_FETCH
	MEM_ACCESS_READ_UNMAPPED
	MEM_ACCESS_WRITE_UNMAPPED
	MEM_ACCESS_FETCH_UNMAPPED
	MEM_ACCESS_WRITE_PROT
	MEM_ACCESS_READ_PROT
	MEM_ACCESS_FETCH_PROT
	MEM_ACCESS_READ_AFTER
)

type InterruptCallback = func(intno uint64, data any)
type InvalidCallback = func(data any) bool
type CodeCallback = func(addr, size uint64, data any)
type MemoryCallback = func(access MemAccess, addr, size, value uint64, data any)

// MemoryEventCallback observes an invalid or protected access. Returning
// true tells the engine the access was resolved and emulation may continue;
// returning false leaves the fault to abort emulation. The distinction is
// the engine's contract, not this binding's.
type MemoryEventCallback = func(access MemAccess, addr, size, value uint64, data any) bool

// Hook is the opaque handle of a registered hook. Close removes the hook
// from the engine and releases the native trampoline exactly once.
type Hook interface {
	io.Closer
	Type() HookType
}

// Valid reports whether the access kind is one of the ordinary kinds, as
// opposed to an unmapped or protected fault.
func (a MemAccess) Valid() bool {
	switch a {
	case MEM_ACCESS_READ, MEM_ACCESS_WRITE, MEM_ACCESS_FETCH, MEM_ACCESS_READ_AFTER:
		return true
	}
	return false
}

func (a MemAccess) String() string {
	switch a {
	case MEM_ACCESS_READ:
		return "read"
	case MEM_ACCESS_WRITE:
		return "write"
	case MEM_ACCESS_FETCH:
		return "fetch"
	case MEM_ACCESS_READ_UNMAPPED:
		return "read unmapped"
	case MEM_ACCESS_WRITE_UNMAPPED:
		return "write unmapped"
	case MEM_ACCESS_FETCH_UNMAPPED:
		return "fetch unmapped"
	case MEM_ACCESS_WRITE_PROT:
		return "write protected"
	case MEM_ACCESS_READ_PROT:
		return "read protected"
	case MEM_ACCESS_FETCH_PROT:
		return "fetch protected"
	case MEM_ACCESS_READ_AFTER:
		return "read after"
	}
	return "unknown"
}
