//go:build unix

package emulator

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/loqix/unicorn-net/emulator"
)

// MemMapHost maps size bytes of guest memory at addr backed by anonymous
// host pages and returns the host view. The region is released when it is
// unmapped or the emulator closes.
func (e *Emu) MemMapHost(addr, size uint64, prot emulator.MemProt) ([]byte, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	size = Align(size, e.pageSize)
	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	err = e.MemMapPtr(addr, size, prot, unsafe.Pointer(unsafe.SliceData(buf)))
	if err != nil {
		unix.Munmap(buf)
		return nil, err
	}
	e.hostMu.Lock()
	e.host[addr] = buf
	e.hostMu.Unlock()
	return buf, nil
}

func (e *Emu) freeHostRegion(addr uint64) {
	e.hostMu.Lock()
	buf, ok := e.host[addr]
	delete(e.host, addr)
	e.hostMu.Unlock()
	if ok {
		unix.Munmap(buf)
	}
}

func (e *Emu) freeHostPages() {
	e.hostMu.Lock()
	defer e.hostMu.Unlock()
	for _, buf := range e.host {
		unix.Munmap(buf)
	}
	clear(e.host)
}
