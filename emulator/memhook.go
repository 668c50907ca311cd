package emulator

// Hooking the entire address space is encoded as begin > end; the engine
// treats the pair (1, 0) as unbounded rather than as a literal range.
const (
	HOOK_RANGE_ALL_BEGIN uint64 = 1
	HOOK_RANGE_ALL_END   uint64 = 0
)

// MemoryHookContainer registers memory-access hooks on an owning emulator.
// It validates arguments and forwards to the emulator's generic Hook
// primitive; the returned handle removes the hook via Close.
type MemoryHookContainer struct {
	emu Emulator
}

func MemoryHooks(emu Emulator) MemoryHookContainer {
	return MemoryHookContainer{emu}
}

// Add registers an informational hook over the entire address space. typ
// selects the access kinds observed and must stay within HOOK_TYPE_MEM_ALL.
func (c MemoryHookContainer) Add(typ HookType, callback MemoryCallback, data any) (Hook, error) {
	return c.AddRange(typ, callback, data, HOOK_RANGE_ALL_BEGIN, HOOK_RANGE_ALL_END)
}

// AddRange registers an informational hook for accesses whose address lies
// in [begin, end].
func (c MemoryHookContainer) AddRange(typ HookType, callback MemoryCallback, data any, begin, end uint64) (Hook, error) {
	if callback == nil {
		return nil, ErrNilCallback
	}
	if typ == 0 || typ&^HOOK_TYPE_MEM_ALL != 0 {
		return nil, ErrHookType
	}
	return c.emu.Hook(typ, callback, data, begin, end)
}

// AddEvent registers an event hook for invalid or protected accesses over
// the entire address space. typ must stay within HOOK_TYPE_MEM_INVALID. The
// callback's result decides whether the engine resumes the access.
func (c MemoryHookContainer) AddEvent(typ HookType, callback MemoryEventCallback, data any) (Hook, error) {
	return c.AddEventRange(typ, callback, data, HOOK_RANGE_ALL_BEGIN, HOOK_RANGE_ALL_END)
}

// AddEventRange registers an event hook for invalid or protected accesses
// whose address lies in [begin, end].
func (c MemoryHookContainer) AddEventRange(typ HookType, callback MemoryEventCallback, data any, begin, end uint64) (Hook, error) {
	if callback == nil {
		return nil, ErrNilCallback
	}
	if typ == 0 || typ&^HOOK_TYPE_MEM_INVALID != 0 {
		return nil, ErrHookType
	}
	return c.emu.Hook(typ, callback, data, begin, end)
}
