// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertNormalized checks the invariants every public value must hold:
// no leading zero digits, and the canonical form of zero.
func assertNormalized(a *assert.Assertions, v Int) {
	if len(v.digits) == 0 {
		a.False(v.neg)
		a.Nil(v.digits)
		return
	}
	a.NotZero(v.digits[len(v.digits)-1])
	for _, d := range v.digits {
		a.True(d <= 9)
	}
}

func TestFromInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v int64
		s string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{10, "10"},
		{-10, "-10"},
		{105, "105"},
		{-12345678, "-12345678"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := FromInt64(test.v)
			a.Equal(test.s, v.String())
			assertNormalized(a, v)
			back, exact := v.Int64()
			a.True(exact)
			a.Equal(test.v, back)
		})
	}
}

func TestFromUint64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v uint64
		s string
	}{
		{0, "0"},
		{7, "7"},
		{1000, "1000"},
		{math.MaxUint64, "18446744073709551615"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := FromUint64(test.v)
			a.Equal(test.s, v.String())
			assertNormalized(a, v)
		})
	}
}

func TestInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v     Int
		value int64
		exact bool
	}{
		{zero, 0, true},
		{FromInt64(42), 42, true},
		{FromInt64(-42), -42, true},
		{MustFromString("9223372036854775807"), math.MaxInt64, true},
		{MustFromString("-9223372036854775808"), math.MinInt64, true},
		{MustFromString("9223372036854775808"), 0, false},
		{MustFromString("-9223372036854775809"), 0, false},
		{MustFromString("123456789012345678901234567890"), 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			value, exact := test.v.Int64()
			a.Equal(test.exact, exact)
			a.Equal(test.value, value)
		})
	}
}

func TestCopy(t *testing.T) {
	a := assert.New(t)
	v := MustFromString("-100200100")
	c := v.Copy()
	a.Equal(v, c)
	// the copy owns its digits exclusively.
	c.setDigit(0, 9)
	a.Equal("-100200109", c.String())
	a.Equal("-100200100", v.String())

	z := zero.Copy()
	a.Equal(zero, z)
	a.True(z.IsZero())
}

func TestSign(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    Int
		sign int
	}{
		{zero, 0},
		{MustFromString("-0"), 0},
		{FromInt64(3), 1},
		{FromInt64(-3), -1},
		{MustFromString("123456789012345678901234567890"), 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.sign, test.v.Sign())
			a.Equal(test.sign == 0, test.v.IsZero())
		})
	}
}

func TestNegAbs(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        Int
		neg, abs string
	}{
		{zero, "0", "0"},
		{FromInt64(5), "-5", "5"},
		{FromInt64(-5), "5", "5"},
		{MustFromString("-100200100"), "100200100", "100200100"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.neg, test.v.Neg().String())
			a.Equal(test.abs, test.v.Abs().String())
			assertNormalized(a, test.v.Neg())
		})
	}
	// negation of zero stays the canonical zero.
	a.Equal(zero, zero.Neg())
}

func TestDigitAccessors(t *testing.T) {
	a := assert.New(t)
	v := FromInt64(105) // stored as [5 0 1]
	a.Equal(3, v.count())
	a.Equal(5, v.digit(0))
	a.Equal(0, v.digit(1))
	a.Equal(1, v.digit(2))
	// a read past the stored length is an implicit zero, not an error.
	a.Equal(0, v.digit(3))
	a.Equal(0, v.digit(-1))

	v.setDigit(1, 7)
	a.Equal("175", v.String())
}

func TestSetDigitPanics(t *testing.T) {
	a := assert.New(t)
	v := FromInt64(5)
	a.Panics(func() {
		v.setDigit(1, 3)
	})
	a.Panics(func() {
		v.setDigit(-1, 3)
	})

	defer func() {
		pe, ok := recover().(*posError)
		if a.True(ok) {
			a.Equal(5, pe.pos)
			a.EqualError(pe, "invalid position at pos 5")
		}
	}()
	v.setDigit(5, 1)
}

func TestNormalize(t *testing.T) {
	a := assert.New(t)
	v := Int{digits: []byte{1, 2, 0, 0}}
	v.normalize()
	a.Equal("21", v.String())

	v = Int{neg: true, digits: []byte{0, 0}}
	v.normalize()
	a.Equal(zero, v)
}
