package wideint

import (
	"strings"

	"github.com/pkg/errors"
)

// MarshalText implements encoding.TextMarshaler, producing "0x"-prefixed
// lowercase hex.
func (u Uint[W]) MarshalText() ([]byte, error) {
	return []byte("0x" + u.Text(16)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts hex with or
// without a "0x" prefix, and rejects input with more digits than the width
// can hold.
func (u *Uint[W]) UnmarshalText(bts []byte) error {
	v, err := parseHex[W](string(bts))
	if err != nil {
		return errors.Wrapf(err, "wideint: unmarshal text %q", bts)
	}
	*u = v
	return nil
}

// MarshalJSON implements json.Marshaler. Values are encoded as quoted
// "0x"-prefixed hex strings.
func (u Uint[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"0x` + u.Text(16) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Strings are parsed as hex with
// or without a "0x" prefix; bare JSON numbers are parsed as decimal.
func (u *Uint[W]) UnmarshalJSON(bts []byte) error {
	s := string(bts)
	if s == "null" {
		return nil
	}

	var v Uint[W]
	var err error
	if len(s) > 0 && s[0] == '"' {
		if len(s) < 2 || s[len(s)-1] != '"' {
			return errors.Errorf("wideint: invalid JSON %q", s)
		}
		v, err = parseHex[W](s[1 : len(s)-1])
	} else {
		if s == "" || strings.ContainsAny(s, ".eE+-_") {
			return errors.Errorf("wideint: invalid JSON number %q", s)
		}
		v, err = FromStrRadix[W](s, 10)
	}
	if err != nil {
		return errors.Wrapf(err, "wideint: unmarshal JSON %s", s)
	}
	*u = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the fixed-length
// big-endian encoding.
func (u Uint[W]) MarshalBinary() ([]byte, error) {
	return u.ToBEBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It accepts any
// big-endian encoding up to BytesOf[W]() bytes long.
func (u *Uint[W]) UnmarshalBinary(data []byte) error {
	v, ok := TryFromBESlice[W](data)
	if !ok {
		return errors.Wrapf(overflowError[W](), "wideint: unmarshal %d bytes", len(data))
	}
	*u = v
	return nil
}

func parseHex[W Width](s string) (Uint[W], error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if s == "" {
		return Uint[W]{}, errors.New("wideint: empty hex string")
	}
	// Zero needs a digit even at width 0.
	if len(s) > max(int(layoutOf[W]().bits+3)/4, 1) {
		return Uint[W]{}, overflowError[W]()
	}
	for _, c := range s {
		if c == '_' {
			return Uint[W]{}, &InvalidDigitError{Base: 16, Char: c}
		}
	}
	return FromStrRadix[W](s, 16)
}
