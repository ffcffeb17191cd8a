package wideint

import (
	"encoding/binary"
)

// FromLEBytes creates a Uint from exactly BytesOf[W]() little-endian bytes.
// It panics if the length is wrong or the value does not fit.
func FromLEBytes[W Width](b []byte) Uint[W] {
	if len(b) != layoutOf[W]().bytes {
		panic("wideint: byte length does not match width")
	}
	u, ok := TryFromLESlice[W](b)
	if !ok {
		panic("wideint: bytes exceed width")
	}
	return u
}

// FromBEBytes creates a Uint from exactly BytesOf[W]() big-endian bytes.
// It panics if the length is wrong or the value does not fit.
func FromBEBytes[W Width](b []byte) Uint[W] {
	if len(b) != layoutOf[W]().bytes {
		panic("wideint: byte length does not match width")
	}
	u, ok := TryFromBESlice[W](b)
	if !ok {
		panic("wideint: bytes exceed width")
	}
	return u
}

// TryFromLESlice creates a Uint from up to BytesOf[W]() little-endian bytes.
// It reports false if the slice is longer than that or the value does not
// fit.
func TryFromLESlice[W Width](b []byte) (u Uint[W], ok bool) {
	l := layoutOf[W]()
	if len(b) > l.bytes {
		return u, false
	}
	x := u.words()
	if len(b) == 8*l.limbs {
		for i := range x {
			x[i] = binary.LittleEndian.Uint64(b[8*i:])
		}
	} else {
		for i, c := range b {
			x[i/8] |= uint64(c) << (8 * (i % 8))
		}
	}
	if u.masked() {
		return Uint[W]{}, false
	}
	return u, true
}

// TryFromBESlice creates a Uint from up to BytesOf[W]() big-endian bytes.
// It reports false if the slice is longer than that or the value does not
// fit.
func TryFromBESlice[W Width](b []byte) (u Uint[W], ok bool) {
	l := layoutOf[W]()
	if len(b) > l.bytes {
		return u, false
	}
	x := u.words()
	if len(b) == 8*l.limbs {
		for i := range x {
			x[i] = binary.BigEndian.Uint64(b[len(b)-8*(i+1):])
		}
	} else {
		for i := range b {
			x[i/8] |= uint64(b[len(b)-1-i]) << (8 * (i % 8))
		}
	}
	if u.masked() {
		return Uint[W]{}, false
	}
	return u, true
}

// FromLESlice is TryFromLESlice, panicking if the value does not fit.
func FromLESlice[W Width](b []byte) Uint[W] {
	u, ok := TryFromLESlice[W](b)
	if !ok {
		panic("wideint: bytes exceed width")
	}
	return u
}

// FromBESlice is TryFromBESlice, panicking if the value does not fit.
func FromBESlice[W Width](b []byte) Uint[W] {
	u, ok := TryFromBESlice[W](b)
	if !ok {
		panic("wideint: bytes exceed width")
	}
	return u
}

// CopyLEBytesTo writes the BytesOf[W]() little-endian bytes of u into buf and
// returns the number written. It panics if buf is too short.
func (u Uint[W]) CopyLEBytesTo(buf []byte) int {
	l := layoutOf[W]()
	if len(buf) < l.bytes {
		panic("wideint: buffer too short")
	}
	x := u.words()
	if l.bytes == 8*l.limbs {
		for i, w := range x {
			binary.LittleEndian.PutUint64(buf[8*i:], w)
		}
		return l.bytes
	}
	for i := 0; i < l.bytes; i++ {
		buf[i] = byte(x[i/8] >> (8 * (i % 8)))
	}
	return l.bytes
}

// CopyBEBytesTo writes the BytesOf[W]() big-endian bytes of u into buf and
// returns the number written. It panics if buf is too short.
func (u Uint[W]) CopyBEBytesTo(buf []byte) int {
	l := layoutOf[W]()
	if len(buf) < l.bytes {
		panic("wideint: buffer too short")
	}
	x := u.words()
	if l.bytes == 8*l.limbs {
		for i, w := range x {
			binary.BigEndian.PutUint64(buf[l.bytes-8*(i+1):], w)
		}
		return l.bytes
	}
	for i := 0; i < l.bytes; i++ {
		buf[l.bytes-1-i] = byte(x[i/8] >> (8 * (i % 8)))
	}
	return l.bytes
}

// ToLEBytes returns the BytesOf[W]() little-endian bytes of u.
func (u Uint[W]) ToLEBytes() []byte {
	b := make([]byte, layoutOf[W]().bytes)
	u.CopyLEBytesTo(b)
	return b
}

// ToBEBytes returns the BytesOf[W]() big-endian bytes of u, zero-padded on
// the left.
func (u Uint[W]) ToBEBytes() []byte {
	b := make([]byte, layoutOf[W]().bytes)
	u.CopyBEBytesTo(b)
	return b
}

// ToLEBytesTrimmed returns the little-endian bytes of u without trailing
// zero bytes. Zero encodes as an empty slice.
func (u Uint[W]) ToLEBytesTrimmed() []byte {
	b := u.ToLEBytes()
	return b[:u.ByteLen()]
}

// ToBEBytesTrimmed returns the big-endian bytes of u without leading zero
// bytes. Zero encodes as an empty slice.
func (u Uint[W]) ToBEBytesTrimmed() []byte {
	b := u.ToBEBytes()
	return b[len(b)-u.ByteLen():]
}
