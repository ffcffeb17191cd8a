package wideint

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrOverflow      = errors.New("wideint: value too large")
	ErrValueNegative = errors.New("wideint: value is negative")
	ErrNotANumber    = errors.New("wideint: value is not a number")
	ErrInvalidBase   = errors.New("wideint: invalid base")
	ErrInvalidDigit  = errors.New("wideint: invalid digit")
)

// OverflowError is returned when a value does not fit in the target width.
// It matches ErrOverflow.
type OverflowError struct {
	Bits uint
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("wideint: value does not fit in %d bits", e.Bits)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

func overflowError[W Width]() error {
	return &OverflowError{Bits: BitsOf[W]()}
}

// InvalidBaseError is returned for a base below 2, or above 64 when parsing.
// It matches ErrInvalidBase.
type InvalidBaseError struct {
	Base uint64
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("wideint: invalid base %d", e.Base)
}

func (e *InvalidBaseError) Is(target error) bool { return target == ErrInvalidBase }

// InvalidDigitError is returned for a digit that is not valid in its base.
// When the digit came from a string, Char holds the offending character.
// It matches ErrInvalidDigit.
type InvalidDigitError struct {
	Digit uint64
	Base  uint64
	Char  rune
}

func (e *InvalidDigitError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("wideint: invalid digit %q for base %d", e.Char, e.Base)
	}
	return fmt.Sprintf("wideint: invalid digit %d for base %d", e.Digit, e.Base)
}

func (e *InvalidDigitError) Is(target error) bool { return target == ErrInvalidDigit }
