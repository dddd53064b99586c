// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

// Add returns x + y.
func (x Int) Add(y Int) Int {
	res := x.Copy()
	res.add(&y)
	return res
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	res := x.Copy()
	res.sub(&y)
	return res
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	res := x.Copy()
	res.mul(&y)
	return res
}

// MulInt64 returns x * n.
// For a single-digit n it avoids promoting n to a full value.
func (x Int) MulInt64(n int64) Int {
	res := x.Copy()
	res.mulInt64(n)
	return res
}

// add implements x += rhs.
func (x *Int) add(rhs *Int) {
	if x == rhs { // x + x is just a doubling
		x.mulInt64(2)
		return
	}
	if x.neg != rhs.neg { // x + (-y) = x - y
		neg := rhs.Neg()
		x.sub(&neg)
		return
	}
	lSize, rSize := x.count(), rhs.count()
	carry := 0
	for i := 0; i < lSize || i < rSize; i++ {
		sum := x.digit(i) + rhs.digit(i) + carry
		carry = sum / base
		sum %= base
		if i < lSize {
			x.setDigit(i, sum)
		} else {
			x.pushDigit(sum)
		}
	}
	if carry > 0 {
		x.pushDigit(carry)
	}
}

// sub implements x -= rhs.
func (x *Int) sub(rhs *Int) {
	if x == rhs { // x - x is exactly zero
		x.setZero()
		return
	}
	if x.neg != rhs.neg { // x - (-y) = x + y
		neg := rhs.Neg()
		x.add(&neg)
		return
	}
	// Signs are equal here. If the plain digit loop would underflow,
	// restate x - rhs as -(rhs - x).
	if (!x.neg && x.less(rhs)) || (x.neg && rhs.less(x)) {
		res := rhs.Copy()
		res.sub(x)
		res.negate()
		*x = res
		return
	}
	borrow := 0
	for i := 0; i < x.count(); i++ {
		diff := x.digit(i) - rhs.digit(i) - borrow
		borrow = 0
		if diff < 0 {
			diff += base
			borrow = 1
		}
		x.setDigit(i, diff)
	}
	x.normalize()
}

// mul implements x *= rhs with schoolbook long multiplication.
// The magnitudes are multiplied first, the sign goes on at the very end,
// so that a product of two negatives ends up positive.
func (x *Int) mul(rhs *Int) {
	neg := x.neg != rhs.neg && !x.IsZero() && !rhs.IsZero()
	shifted := x.Copy()
	shifted.neg = false
	var sum Int
	for i, size := 0, rhs.count(); i < size; i++ {
		part := shifted.Copy()
		part.mulInt64(int64(rhs.digit(i)))
		sum.add(&part)
		shifted.mulInt64(base)
	}
	sum.neg = neg
	*x = sum
}

// mulInt64 implements x *= n.
// A multiplier within the base takes the direct scalar loop below,
// everything else is promoted to a full multiplication.
func (x *Int) mulInt64(n int64) {
	if n == 0 {
		x.setZero()
		return
	}
	if n == 1 {
		return
	}
	if n < 0 || n > base {
		promoted := FromInt64(n)
		x.mul(&promoted)
		return
	}
	carry := 0
	for i, size := 0, x.count(); i < size; i++ {
		product := int(n)*x.digit(i) + carry
		carry = product / base
		x.setDigit(i, product%base)
	}
	for carry > 0 { // a single push is not enough, if the carry itself is >= base
		x.pushDigit(carry % base)
		carry /= base
	}
}
