package bigint

// buffer is a little-endian two's complement scratch value. Methods mutate
// the receiver in place and never grow it unless they say so; callers widen
// first with extend or resize.
type buffer []byte

// extend returns a fresh copy of src sign-extended (or truncated) to exactly
// size bytes.
func extend(src buffer, size int) buffer {
	if size <= 0 {
		panic(newError(InvalidArgument, "buffer size %d", size))
	}
	out := make(buffer, size)
	n := copy(out, src)
	if n < size {
		f := src.fill()
		for i := n; i < size; i++ {
			out[i] = f
		}
	}
	return out
}

func (b buffer) negative() bool { return b[len(b)-1]&0x80 != 0 }

func (b buffer) isZero() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// fill is the sign-extension byte for b.
func (b buffer) fill() byte {
	if b.negative() {
		return 0xFF
	}
	return 0x00
}

func (b *buffer) resize(size int) {
	if size <= 0 {
		panic(newError(InvalidArgument, "resize to %d bytes", size))
	}
	if size == len(*b) {
		return
	} else if size < len(*b) {
		b.truncate(size)
		return
	}
	*b = extend(*b, size)
}

func (b *buffer) truncate(size int) {
	if size < 0 {
		panic(newError(InvalidArgument, "truncate to %d bytes", size))
	}
	if size >= len(*b) {
		return
	}
	*b = (*b)[:size:size]
}

// strip removes redundant sign-extension bytes from the most significant end,
// leaving at least one byte.
func (b *buffer) strip() {
	s := *b
	n := len(s)
	if s.negative() {
		for n > 1 && s[n-1] == 0xFF && s[n-2]&0x80 != 0 {
			n--
		}
	} else {
		for n > 1 && s[n-1] == 0x00 && s[n-2]&0x80 == 0 {
			n--
		}
	}
	b.truncate(n)
}

func (b buffer) invert() {
	for i := range b {
		b[i] = ^b[i]
	}
}

func (b buffer) increment() {
	for i := range b {
		b[i]++
		if b[i] != 0 {
			break
		}
	}
}

// negate is the two's complement negation at b's current width. The most
// negative value of that width negates to itself; callers widen first.
func (b buffer) negate() {
	b.invert()
	b.increment()
}

func (b buffer) zero() {
	for i := range b {
		b[i] = 0
	}
}

// lsh1 shifts left by one bit. The top bit is lost.
func (b buffer) lsh1() {
	var carry byte
	for i := range b {
		next := b[i] >> 7
		b[i] = b[i]<<1 | carry
		carry = next
	}
}

// rsh1 is an arithmetic right shift by one bit.
func (b buffer) rsh1() {
	sign := b[len(b)-1] & 0x80
	var carry byte
	for i := len(b) - 1; i >= 0; i-- {
		next := b[i] & 1
		b[i] = b[i]>>1 | carry<<7
		carry = next
	}
	b[len(b)-1] |= sign
}

// fixedAdd adds n into b at b's width. n is sign-extended if it is shorter
// than b; any carry out of the top byte is dropped.
func (b buffer) fixedAdd(n buffer) {
	f := n.fill()
	var carry uint
	for i := range b {
		x := f
		if i < len(n) {
			x = n[i]
		}
		sum := uint(b[i]) + uint(x) + carry
		b[i] = byte(sum)
		carry = sum >> 8
	}
}

// fixedUnsignedMul multiplies b by m at b's width by shift-and-add. Both
// operands must be non-negative and b must be wide enough for the product.
func (b buffer) fixedUnsignedMul(m buffer) {
	multiplicand := extend(b, len(b))
	b.zero()

	for i := range m {
		for bit := uint(0); bit < 8; bit++ {
			if m[i]&(1<<bit) != 0 {
				b.fixedAdd(multiplicand)
			}
			multiplicand.lsh1()
		}
	}
}

// compare orders two buffers as signed values.
func compare(x, y buffer) int {
	xn, yn := x.negative(), y.negative()
	if xn != yn {
		if xn {
			return -1
		}
		return 1
	}

	xf, yf := x.fill(), y.fill()
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	for i := n - 1; i >= 0; i-- {
		xb, yb := xf, yf
		if i < len(x) {
			xb = x[i]
		}
		if i < len(y) {
			yb = y[i]
		}
		if xb < yb {
			return -1
		} else if xb > yb {
			return 1
		}
	}
	return 0
}
