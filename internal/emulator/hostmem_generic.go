//go:build !unix

package emulator

import (
	"errors"

	"github.com/loqix/unicorn-net/emulator"
)

func (e *Emu) MemMapHost(addr, size uint64, prot emulator.MemProt) ([]byte, error) {
	return nil, errors.ErrUnsupported
}

func (e *Emu) freeHostRegion(addr uint64) {}

func (e *Emu) freeHostPages() {}
