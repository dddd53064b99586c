// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

// Cmp compares two values.
// Returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.less(&y):
		return -1
	case y.less(&x):
		return 1
	default:
		return 0
	}
}

// Eq returns true, if both values represent the same number.
func (x Int) Eq(y Int) bool {
	if x.neg != y.neg || len(x.digits) != len(y.digits) {
		return false
	}
	for i, d := range x.digits {
		if d != y.digits[i] {
			return false
		}
	}
	return true
}

// Neq returns x != y.
func (x Int) Neq(y Int) bool {
	return !x.Eq(y)
}

// Less returns x < y.
func (x Int) Less(y Int) bool {
	return x.less(&y)
}

// LessEq returns x <= y.
func (x Int) LessEq(y Int) bool {
	return !y.less(&x)
}

// Greater returns x > y.
func (x Int) Greater(y Int) bool {
	return y.less(&x)
}

// GreaterEq returns x >= y.
func (x Int) GreaterEq(y Int) bool {
	return !x.less(&y)
}

// less reports x < y in signed-magnitude order.
// For equal signs a longer sequence means a bigger magnitude,
// which for negatives inverts into "more negative, hence less".
func (x *Int) less(y *Int) bool {
	if x.neg != y.neg {
		return x.neg
	}
	lSize, rSize := x.count(), y.count()
	if lSize != rSize {
		if x.neg {
			return lSize > rSize
		}
		return lSize < rSize
	}
	for i := lSize - 1; i >= 0; i-- {
		ld, rd := x.digit(i), y.digit(i)
		if ld == rd {
			continue
		}
		if x.neg {
			return ld > rd
		}
		return ld < rd
	}
	return false
}
