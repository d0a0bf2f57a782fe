package bigint

// mulBooth returns the exact signed product of x and y using Booth's
// recoding: one add of +x, -x or nothing per bit of y, followed by an
// arithmetic shift of the accumulator.
//
// Accumulator layout, low to high:
//
//	[ guard byte | y (len(y) bytes) | high part (len(x)+1 bytes) ]
//
// Bit 7 of the guard byte is the look-behind bit. x is widened by one byte
// before being negated so that -x never wraps.
func mulBooth(x, y buffer) buffer {
	width := len(x) + 1 + len(y) + 1

	add := make(buffer, width)
	sub := make(buffer, width)
	acc := make(buffer, width)

	multiplicand := extend(x, len(x)+1)
	copy(add[len(y)+1:], multiplicand)
	multiplicand.negate()
	copy(sub[len(y)+1:], multiplicand)
	copy(acc[1:], y)

	for step := 0; step < len(y)*8; step++ {
		cur, prev := acc[1]&0x01 != 0, acc[0]&0x80 != 0
		if !cur && prev {
			acc.fixedAdd(add)
		} else if cur && !prev {
			acc.fixedAdd(sub)
		}
		acc.rsh1()
	}

	product := acc[1:]
	product.strip()
	return product
}

// quoRemAbs divides |dividend| by |divisor| with restoring bit-serial long
// division and returns the canonical magnitudes of the quotient and the
// remainder. Both magnitudes are computed in the same pass.
func quoRemAbs(dividend, divisor buffer) (q, r buffer, err error) {
	if divisor.isZero() {
		return nil, nil, newError(DivisionByZero, "")
	}

	absDividend := extend(dividend, len(dividend)+1)
	absDivisor := extend(divisor, len(divisor)+1)
	negDivisor := extend(absDivisor, len(absDivisor))

	if absDividend.negative() {
		absDividend.negate()
	}
	if absDivisor.negative() {
		absDivisor.negate()
	} else {
		negDivisor.negate()
	}

	q = make(buffer, len(absDividend))
	r = make(buffer, len(absDividend))

	for i := len(absDividend) - 1; i >= 0; i-- {
		for bit := 7; bit >= 0; bit-- {
			r.lsh1()
			r[0] |= (absDividend[i] >> uint(bit)) & 0x01

			// r never exceeds |dividend|, which is non-negative at this
			// width, so the signed comparison is a magnitude comparison.
			if compare(r, absDivisor) >= 0 {
				r.fixedAdd(negDivisor)
				q[i] |= 1 << uint(bit)
			}
		}
	}

	q.strip()
	r.strip()
	return q, r, nil
}
