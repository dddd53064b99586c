// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"fmt"
	"strings"
	"unicode"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"-1234"`.
	JSONModeString = iota
	// JSONModeNumber marshals values as plain json numbers, like `-1234`.
	// Consumers must be prepared for numbers of any length.
	JSONModeNumber
)

const (
	minusByte = '-'
	groupByte = '_'
)

// FromString parses a string into a value.
// The input is an optional leading '-' followed by decimal digits.
// A '_' groups digits for readability, like "100_200_100", and is ignored.
// Any other symbol fails the parsing.
func FromString(s string) (Int, error) {
	res, err := parseString(s)
	if err != nil {
		return zero, fmt.Errorf("parsing failed: %w", err)
	}
	return res, nil
}

// MustFromString parses a string into a value, panics on a bad input.
func MustFromString(s string) Int {
	res, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return res
}

func parseString(s string) (Int, error) {
	if len(s) == 0 {
		return zero, fmt.Errorf("empty input")
	}
	var res Int
	start := 0
	if s[0] == minusByte {
		res.neg = true
		start = 1
	}
	digits := make([]byte, 0, len(s)-start)
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digits = append(digits, c-'0')
		case c == groupByte: // digit group separator, ignore
		default:
			return zero, newPosError(fmt.Sprintf("unexpected symbol %q", c), i)
		}
	}
	if len(digits) == 0 {
		return zero, fmt.Errorf("no digits in input")
	}
	// the textual form starts with the most significant digit, the storage is reversed.
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	res.digits = digits
	res.normalize()
	return res, nil
}

// String returns a string representation of the value.
func (x Int) String() string {
	if len(x.digits) == 0 {
		return "0"
	}
	var builder strings.Builder
	x.toStringsBuilder(&builder)
	return builder.String()
}

// GoString returns debug string representation.
func (x Int) GoString() string {
	return x.String() + fmt.Sprintf(" {%v, %v}", x.digits, x.neg)
}

func (x Int) toStringsBuilder(builder *strings.Builder) {
	builder.Grow(len(x.digits) + 1)
	if x.neg {
		builder.WriteByte(minusByte)
	}
	if len(x.digits) == 0 {
		builder.WriteByte('0')
		return
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		builder.WriteByte('0' + x.digits[i])
	}
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(data []byte) error {
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*x = value
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (x Int) MarshalJSON() ([]byte, error) {
	var builder strings.Builder
	if JSONMode == JSONModeNumber {
		x.toStringsBuilder(&builder)
	} else {
		builder.WriteRune('"')
		x.toStringsBuilder(&builder)
		builder.WriteRune('"')
	}
	return []byte(builder.String()), nil
}

// UnmarshalJSON unmarshals a string or a number into a value.
func (x *Int) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	s := string(data)
	if s[0] == '"' {
		if len(s) < 2 || s[len(s)-1] != '"' {
			return fmt.Errorf("unterminated json string")
		}
		s = s[1 : len(s)-1]
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*x = value
	return nil
}

// Scan implements fmt.Scanner, so that values can be read
// from a whitespace-delimited token with fmt.Fscan and friends.
func (x *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("unsupported verb %q", verb)
	}
	token, err := state.Token(true, func(r rune) bool {
		return r == minusByte || r == groupByte || unicode.IsDigit(r)
	})
	if err != nil {
		return err
	}
	value, err := FromString(string(token))
	if err != nil {
		return err
	}
	*x = value
	return nil
}
