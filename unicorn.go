// Package unicorn binds the Unicorn CPU-emulation engine to the emulator
// surface. The engine performs all emulation, memory management, and hook
// dispatch; this module only marshals calls and callbacks across the native
// boundary.
package unicorn

import (
	"github.com/loqix/unicorn-net/emulator"
	internal "github.com/loqix/unicorn-net/internal/emulator"
)

// New opens a native engine instance for the architecture.
func New(arch emulator.Arch) (emulator.Emulator, error) {
	return internal.New(arch)
}
