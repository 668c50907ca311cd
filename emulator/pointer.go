package emulator

import (
	"encoding/binary"
	"slices"
	"unsafe"

	"github.com/loqix/unicorn-net/encoding"
)

type Uintptr32 = uint32
type Uintptr64 = uint64

// Pointer is a typed guest address bound to its emulator.
type Pointer struct {
	emu  Emulator
	addr uint64
}

func ToPointer(emu Emulator, addr uint64) Pointer {
	return Pointer{emu, addr}
}

func (p Pointer) IsNil() bool {
	return p.addr == 0
}

func (p Pointer) Address() uint64 {
	return p.addr
}

func (p Pointer) Add(offset uint64) Pointer {
	return Pointer{p.emu, p.addr + offset}
}

func (p Pointer) Sub(offset uint64) Pointer {
	return Pointer{p.emu, p.addr - offset}
}

func (p Pointer) MemRead(size uint64) ([]byte, error) {
	return p.emu.MemRead(p.addr, size)
}

func (p Pointer) MemWrite(data []byte) error {
	return p.emu.MemWrite(p.addr, data)
}

func (p Pointer) MemReadPtr(size uint64, ptr unsafe.Pointer) error {
	return p.emu.MemReadPtr(p.addr, size, ptr)
}

func (p Pointer) MemWritePtr(size uint64, ptr unsafe.Pointer) error {
	return p.emu.MemWritePtr(p.addr, size, ptr)
}

func (p Pointer) MemReadString() (string, error) {
	var data []byte
	var buf [0x10]byte
	size := uint64(len(buf))
	for begin := p.addr; ; begin += size {
		err := p.emu.MemReadPtr(begin, size, unsafe.Pointer(unsafe.SliceData(buf[:])))
		if err != nil {
			return "", err
		}
		i := slices.Index(buf[:], 0)
		if i == -1 {
			data = append(data, buf[:]...)
		} else {
			data = append(data, buf[:i]...)
			break
		}
	}
	return string(data), nil
}

func (p Pointer) MemReadPointer() (ptr Pointer, err error) {
	size, err := p.emu.Arch().PointerSize()
	if err != nil {
		return
	}
	var addr uint64
	err = p.MemReadPtr(size, unsafe.Pointer(&addr))
	if err != nil {
		return
	}
	ptr.emu, ptr.addr = p.emu, addr
	return
}

// ReadValue decodes a Go value from guest memory at the pointer, honoring
// the guest's pointer width and byte order. val must be a pointer.
func (p Pointer) ReadValue(val any) error {
	s, err := p.stream()
	if err != nil {
		return err
	}
	return encoding.Decode(s, val)
}

// WriteValue encodes a Go value into guest memory at the pointer.
func (p Pointer) WriteValue(val any) error {
	s, err := p.stream()
	if err != nil {
		return err
	}
	return encoding.Encode(s, val)
}

func (p Pointer) ReadAt(b []byte, off int64) (n int, err error) {
	return len(b), p.emu.MemReadPtr(p.addr+uint64(off), uint64(len(b)), unsafe.Pointer(unsafe.SliceData(b)))
}

func (p Pointer) WriteAt(b []byte, off int64) (n int, err error) {
	return len(b), p.emu.MemWritePtr(p.addr+uint64(off), uint64(len(b)), unsafe.Pointer(unsafe.SliceData(b)))
}

func (p Pointer) stream() (*pointerStream, error) {
	bs, err := p.emu.Arch().PointerSize()
	if err != nil {
		return nil, err
	}
	var order binary.ByteOrder = binary.LittleEndian
	if p.emu.ByteOrder() == BO_BIG_ENDIAN {
		order = binary.BigEndian
	}
	return &pointerStream{p: p, bs: int(bs), order: order}, nil
}

// pointerStream adapts guest memory behind a Pointer to encoding.Stream.
type pointerStream struct {
	p     Pointer
	off   uint64
	bs    int
	order binary.ByteOrder
}

func (s *pointerStream) BlockSize() int {
	return s.bs
}

func (s *pointerStream) Order() binary.ByteOrder {
	return s.order
}

func (s *pointerStream) Skip(n int) error {
	s.off += uint64(n)
	return nil
}

func (s *pointerStream) Read(b []byte) (int, error) {
	err := s.p.emu.MemReadPtr(s.p.addr+s.off, uint64(len(b)), unsafe.Pointer(unsafe.SliceData(b)))
	if err != nil {
		return 0, err
	}
	s.off += uint64(len(b))
	return len(b), nil
}

func (s *pointerStream) Write(b []byte) (int, error) {
	err := s.p.emu.MemWritePtr(s.p.addr+s.off, uint64(len(b)), unsafe.Pointer(unsafe.SliceData(b)))
	if err != nil {
		return 0, err
	}
	s.off += uint64(len(b))
	return len(b), nil
}
