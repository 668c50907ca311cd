package encoding

import "encoding/binary"

// Stream is a cursor over guest memory. BlockSize is the guest pointer
// width in bytes and decides how host-sized integers are laid out.
type Stream interface {
	BlockSize() int
	Order() binary.ByteOrder
	Skip(int) error
	Read([]byte) (int, error)
	Write([]byte) (int, error)
}

func putUint(b []byte, order binary.ByteOrder, v uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, v)
	}
}

func getUint(b []byte, order binary.ByteOrder) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	}
	return 0
}

func signExtend(v uint64, width int) uint64 {
	shift := 64 - width*8
	return uint64(int64(v<<shift) >> shift)
}
