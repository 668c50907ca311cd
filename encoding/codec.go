package encoding

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

var ErrNilValue = errors.New("nil value")

type handler = func(Stream, unsafe.Pointer) error

type codec struct {
	encode handler
	decode handler
	size   int
}

var codecs sync.Map

// SizeOf returns the guest footprint in bytes of val for the given guest
// pointer width.
func SizeOf(blockSize int, val any) (int, error) {
	typ := reflect.TypeOf(val)
	if typ == nil {
		return 0, ErrNilValue
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	c, err := codecFor(reflect2.Type2(typ), blockSize)
	if err != nil {
		return 0, err
	}
	return c.size, nil
}

// Encode writes val into the stream using the guest layout. val may be the
// value itself or a pointer to it.
func Encode(stream Stream, val any) error {
	typ := reflect.TypeOf(val)
	if typ == nil {
		return ErrNilValue
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	ptr := reflect2.PtrOf(val)
	if ptr == nil {
		return ErrNilValue
	}
	c, err := codecFor(reflect2.Type2(typ), stream.BlockSize())
	if err != nil {
		return err
	}
	return c.encode(stream, ptr)
}

// Decode reads a value in the guest layout from the stream into val, which
// must be a non-nil pointer.
func Decode(stream Stream, val any) error {
	typ := reflect.TypeOf(val)
	if typ == nil || typ.Kind() != reflect.Pointer {
		return fmt.Errorf("encoding: decode into %v", typ)
	}
	ptr := reflect2.PtrOf(val)
	if ptr == nil {
		return ErrNilValue
	}
	c, err := codecFor(reflect2.Type2(typ.Elem()), stream.BlockSize())
	if err != nil {
		return err
	}
	return c.decode(stream, ptr)
}

func codecFor(typ reflect2.Type, bs int) (*codec, error) {
	key := [2]uintptr{uintptr(bs), typ.RType()}
	if v, ok := codecs.Load(key); ok {
		return v.(*codec), nil
	}
	c, err := build(typ.Type1(), bs)
	if err != nil {
		return nil, err
	}
	codecs.Store(key, c)
	return c, nil
}

func build(typ reflect.Type, bs int) (*codec, error) {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return fixed(1), nil
	case reflect.Int16, reflect.Uint16:
		return fixed(2), nil
	case reflect.Int32, reflect.Uint32:
		return fixed(4), nil
	case reflect.Int64, reflect.Uint64:
		return fixed(8), nil
	case reflect.Float32:
		return floatCodec(4), nil
	case reflect.Float64:
		return floatCodec(8), nil
	case reflect.Int, reflect.Uint, reflect.Uintptr, reflect.UnsafePointer:
		return blockSized(int(typ.Size()), bs, typ.Kind() == reflect.Int), nil
	case reflect.Array:
		return buildArray(typ, bs)
	case reflect.Struct:
		return buildStruct(typ, bs)
	}
	return nil, fmt.Errorf("encoding: unsupported type %v", typ)
}

// fixed handles scalars whose guest and host widths agree.
func fixed(width int) *codec {
	return &codec{
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			var buf [8]byte
			b := buf[:width]
			putUint(b, stream.Order(), loadUint(ptr, width))
			_, err := stream.Write(b)
			return err
		},
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			var buf [8]byte
			b := buf[:width]
			if _, err := stream.Read(b); err != nil {
				return err
			}
			storeUint(ptr, width, getUint(b, stream.Order()))
			return nil
		},
		size: width,
	}
}

func floatCodec(width int) *codec {
	return &codec{
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			var buf [8]byte
			b := buf[:width]
			var v uint64
			if width == 4 {
				v = uint64(math.Float32bits(*(*float32)(ptr)))
			} else {
				v = math.Float64bits(*(*float64)(ptr))
			}
			putUint(b, stream.Order(), v)
			_, err := stream.Write(b)
			return err
		},
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			var buf [8]byte
			b := buf[:width]
			if _, err := stream.Read(b); err != nil {
				return err
			}
			v := getUint(b, stream.Order())
			if width == 4 {
				*(*float32)(ptr) = math.Float32frombits(uint32(v))
			} else {
				*(*float64)(ptr) = math.Float64frombits(v)
			}
			return nil
		},
		size: width,
	}
}

// blockSized handles host-width integers, truncated or extended to the
// guest pointer width.
func blockSized(hostWidth, bs int, signed bool) *codec {
	return &codec{
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			var buf [8]byte
			b := buf[:bs]
			putUint(b, stream.Order(), loadUint(ptr, hostWidth))
			_, err := stream.Write(b)
			return err
		},
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			var buf [8]byte
			b := buf[:bs]
			if _, err := stream.Read(b); err != nil {
				return err
			}
			v := getUint(b, stream.Order())
			if signed && bs < 8 {
				v = signExtend(v, bs)
			}
			storeUint(ptr, hostWidth, v)
			return nil
		},
		size: bs,
	}
}

func buildArray(typ reflect.Type, bs int) (*codec, error) {
	elem, err := build(typ.Elem(), bs)
	if err != nil {
		return nil, err
	}
	count := typ.Len()
	stride := typ.Elem().Size()
	return &codec{
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			for i := 0; i < count; i++ {
				if err := elem.encode(stream, unsafe.Add(ptr, uintptr(i)*stride)); err != nil {
					return err
				}
			}
			return nil
		},
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			for i := 0; i < count; i++ {
				if err := elem.decode(stream, unsafe.Add(ptr, uintptr(i)*stride)); err != nil {
					return err
				}
			}
			return nil
		},
		size: elem.size * count,
	}, nil
}

type fieldCodec struct {
	*codec
	offset uintptr
}

func buildStruct(typ reflect.Type, bs int) (*codec, error) {
	count := typ.NumField()
	fields := make([]fieldCodec, 0, count)
	var size int
	for i := 0; i < count; i++ {
		field := typ.Field(i)
		if field.Tag.Get("encoding") == "ignore" {
			continue
		}
		c, err := build(field.Type, bs)
		if err != nil {
			return nil, err
		}
		fields = append(fields, fieldCodec{c, field.Offset})
		size += c.size
	}
	return &codec{
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			for _, f := range fields {
				if err := f.encode(stream, unsafe.Add(ptr, f.offset)); err != nil {
					return err
				}
			}
			return nil
		},
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			for _, f := range fields {
				if err := f.decode(stream, unsafe.Add(ptr, f.offset)); err != nil {
					return err
				}
			}
			return nil
		},
		size: size,
	}, nil
}

func loadUint(ptr unsafe.Pointer, width int) uint64 {
	switch width {
	case 1:
		return uint64(*(*uint8)(ptr))
	case 2:
		return uint64(*(*uint16)(ptr))
	case 4:
		return uint64(*(*uint32)(ptr))
	}
	return *(*uint64)(ptr)
}

func storeUint(ptr unsafe.Pointer, width int, v uint64) {
	switch width {
	case 1:
		*(*uint8)(ptr) = uint8(v)
	case 2:
		*(*uint16)(ptr) = uint16(v)
	case 4:
		*(*uint32)(ptr) = uint32(v)
	default:
		*(*uint64)(ptr) = v
	}
}
