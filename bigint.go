// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigint implements arbitrary-precision signed decimal integers.
// A value is stored as a sign flag and a sequence of decimal digits,
// the least significant digit first, so its magnitude is limited by memory only.
// Methods never mutate their receiver or arguments, every operation
// returns its result as a new value.
package bigint

import (
	"fmt"
	"math"

	mu "github.com/avdva/bigint/internal/mathutil"
)

const base = 10

var (
	zero Int
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Int is an arbitrary-precision signed decimal integer.
// The zero value of the type is ready to use and represents 0.
type Int struct {
	neg    bool
	digits []byte
}

// FromInt64 returns a value for given int64 number.
func FromInt64(v int64) Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	res := fromUint64(u)
	res.neg = neg && len(res.digits) > 0
	return res
}

// FromUint64 returns a value for given uint64 number.
func FromUint64(v uint64) Int {
	return fromUint64(v)
}

func fromUint64(v uint64) Int {
	if v == 0 {
		return zero
	}
	digits := make([]byte, 0, mu.DecimalDigits(v))
	for v > 0 {
		digits = append(digits, byte(v%base))
		v /= base
	}
	return Int{digits: digits}
}

// Copy returns an independent copy of x.
func (x Int) Copy() Int {
	if len(x.digits) == 0 {
		return zero
	}
	digits := make([]byte, len(x.digits))
	copy(digits, x.digits)
	return Int{neg: x.neg, digits: digits}
}

// Int64 converts x back to a native integer.
// exact is false, if the value does not fit into an int64.
func (x Int) Int64() (value int64, exact bool) {
	if len(x.digits) > mu.DecimalDigits(math.MaxInt64) {
		return 0, false
	}
	var u uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		u = u*base + uint64(x.digits[i])
	}
	limit := uint64(math.MaxInt64)
	if x.neg {
		limit++
	}
	if u > limit {
		return 0, false
	}
	if x.neg {
		return -int64(u), true
	}
	return int64(u), true
}

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Int) Sign() int {
	if len(x.digits) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero returns true, if x == 0.
func (x Int) IsZero() bool {
	return len(x.digits) == 0
}

// Neg returns -x.
func (x Int) Neg() Int {
	res := x.Copy()
	res.negate()
	return res
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	res := x.Copy()
	res.neg = false
	return res
}

func (x *Int) negate() {
	if len(x.digits) > 0 {
		x.neg = !x.neg
	}
}

func (x *Int) count() int {
	return len(x.digits)
}

// digit returns the digit at position pos, position 0 being the least
// significant one. A position beyond the stored length reads as 0, which
// the arithmetic loops rely on for operands of different lengths.
func (x *Int) digit(pos int) int {
	if pos >= 0 && pos < len(x.digits) {
		return int(x.digits[pos])
	}
	return 0
}

// setDigit overwrites the digit at position pos.
// Unlike digit, a write past the stored length is a programming error,
// so setDigit panics with the offending position.
func (x *Int) setDigit(pos, val int) {
	if pos < 0 || pos >= len(x.digits) {
		panic(newPosError("invalid position", pos))
	}
	x.digits[pos] = byte(val)
}

func (x *Int) pushDigit(val int) {
	x.digits = append(x.digits, byte(val))
}

// normalize strips the most significant zero digits and resets the sign
// and the storage of an empty sequence, so that zero has a single
// representation, the zero value of the type.
func (x *Int) normalize() {
	i := len(x.digits)
	for i > 0 && x.digits[i-1] == 0 {
		i--
	}
	if i == 0 {
		x.setZero()
		return
	}
	x.digits = x.digits[:i]
}

func (x *Int) setZero() {
	x.digits = nil
	x.neg = false
}
