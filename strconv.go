package bigint

// IntFromString creates an Int from a decimal string matching [+-]?[0-9]+.
// Anything else, including the empty string or a lone sign, is an
// InvalidStringLiteral error. Only decimal strings are supported.
func IntFromString(s string) (out Int, err error) {
	if len(s) == 0 {
		return out, newError(InvalidStringLiteral, "empty string")
	}

	neg := s[0] == '-'
	digits := s
	if s[0] == '-' || s[0] == '+' {
		digits = s[1:]
	}
	if len(digits) == 0 {
		return out, newError(InvalidStringLiteral, "%q has no digits", s)
	}

	// Four bits per digit plus a spare byte is always enough headroom for
	// the magnitude and its sign bit.
	acc := make(buffer, len(digits)/2+1)

	for idx := 0; idx < len(digits); idx++ {
		c := digits[idx]
		if c < '0' || c > '9' {
			return out, newError(InvalidStringLiteral, "%q contains invalid character %q", s, c)
		}

		acc.fixedAdd(buffer{c - '0'})
		if idx != len(digits)-1 {
			acc.fixedUnsignedMul(buffer{10})
		}
	}

	if neg {
		acc.negate()
	}
	return fromBuffer(acc), nil
}

// MustIntFromString is like IntFromString but panics if s is not a valid
// decimal integer. It simplifies safe initialization of global variables.
func MustIntFromString(s string) Int {
	i, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return i
}

// decimalChunk is 10^decimalChunkDigits, the largest power of ten that fits
// in an int64. String peels off one chunk per division.
var decimalChunk = IntFrom64(1e18).raw()

const decimalChunkDigits = 18

// String returns the decimal representation of i, with a leading '-' for
// negative values and no leading zeros.
//
// Each division is bit-serial over the whole value, so the cost is
// quadratic in the size of i.
func (i Int) String() string {
	r := i.raw()
	if r.isZero() {
		return "0"
	}

	var digits []byte
	cur := r
	for !cur.isZero() {
		q, rem, err := quoRemAbs(cur, decimalChunk)
		if err != nil {
			panic(err) // unreachable: the divisor is 10^18
		}

		var chunk uint64
		for idx := len(rem) - 1; idx >= 0; idx-- {
			chunk = chunk<<8 | uint64(rem[idx])
		}

		// Inner chunks keep their leading zeros; the most significant one
		// stops at its last non-zero digit.
		last := q.isZero()
		for n := 0; n < decimalChunkDigits && (!last || chunk != 0); n++ {
			digits = append(digits, '0'+byte(chunk%10))
			chunk /= 10
		}
		cur = q
	}
	if r.negative() {
		digits = append(digits, '-')
	}

	for lo, hi := 0, len(digits)-1; lo < hi; lo, hi = lo+1, hi-1 {
		digits[lo], digits[hi] = digits[hi], digits[lo]
	}
	return string(digits)
}

// BinaryString returns every bit of the canonical representation of i,
// most significant first. It is a dump of the two's complement encoding, not
// a minimal binary numeral: 1 is "00000001" and -1 is "11111111".
func (i Int) BinaryString() string {
	r := i.raw()
	out := make([]byte, 0, len(r)*8)
	for idx := len(r) - 1; idx >= 0; idx-- {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if r[idx]&mask != 0 {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
		}
	}
	return string(out)
}
