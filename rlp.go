package wideint

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

var (
	_ rlp.Encoder = Uint[W256]{}
	_ rlp.Decoder = (*Uint[W256])(nil)
)

// EncodeRLP writes u as an RLP string holding its trimmed big-endian bytes,
// the same form go-ethereum uses for *big.Int. Zero encodes as 0x80.
func (u Uint[W]) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer(w)
	buf.WriteBytes(u.ToBEBytesTrimmed())
	return buf.Flush()
}

// DecodeRLP reads a canonical RLP integer. Leading zero bytes are rejected
// with rlp.ErrCanonInt, values wider than W with an *OverflowError.
func (u *Uint[W]) DecodeRLP(s *rlp.Stream) error {
	b, err := s.Bytes()
	if err != nil {
		return err
	}
	if len(b) > 0 && b[0] == 0 {
		return rlp.ErrCanonInt
	}
	v, ok := TryFromBESlice[W](b)
	if !ok {
		return errors.Wrapf(overflowError[W](), "wideint: RLP integer of %d bytes", len(b))
	}
	*u = v
	return nil
}

// RLPBytes returns the RLP encoding of u.
func (u Uint[W]) RLPBytes() []byte {
	b, err := rlp.EncodeToBytes(u)
	if err != nil {
		// EncodeRLP writes to an in-memory buffer and cannot fail.
		panic(err)
	}
	return b
}

// FromRLPBytes decodes an RLP encoded integer produced by RLPBytes. The
// encoding must be canonical and must consume the whole input.
func FromRLPBytes[W Width](b []byte) (u Uint[W], err error) {
	if err := rlp.DecodeBytes(b, &u); err != nil {
		return Uint[W]{}, errors.Wrap(err, "wideint: decode RLP")
	}
	return u, nil
}
