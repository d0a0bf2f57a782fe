package bigint

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Int is an arbitrary-precision signed integer, stored as a canonical
// little-endian two's complement byte sequence.
//
// Int is a value type; all operations return new values and never modify
// their operands. The zero value is 0.
type Int struct {
	b []byte
}

// IntFrom64 creates an Int from an int64.
func IntFrom64(v int64) Int {
	b := make(buffer, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return fromBuffer(b)
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int  { return IntFrom64(int64(v)) }

// IntFromU64 creates an Int from a uint64. An extra zero byte keeps values
// above math.MaxInt64 positive.
func IntFromU64(v uint64) Int {
	b := make(buffer, 9)
	binary.LittleEndian.PutUint64(b, v)
	return fromBuffer(b)
}

// IntFromBigInt creates an Int from a big.Int. The conversion is always
// exact.
func IntFromBigInt(v *big.Int) Int {
	be := v.Bytes()
	b := make(buffer, len(be)+1)
	for i, c := range be {
		b[len(be)-1-i] = c
	}
	if v.Sign() < 0 {
		b.negate()
	}
	return fromBuffer(b)
}

// IntFromBytes creates an Int from a little-endian two's complement byte
// sequence. The sign is taken from the high bit of the last byte. The input
// is copied; an empty slice is an InvalidArgument error.
func IntFromBytes(data []byte) (out Int, err error) {
	if len(data) == 0 {
		return out, newError(InvalidArgument, "empty byte representation")
	}
	return fromBuffer(extend(data, len(data))), nil
}

// fromBuffer takes ownership of b and canonicalizes it.
func fromBuffer(b buffer) Int {
	b.strip()
	return Int{b: b}
}

// raw returns the canonical buffer. It must not be modified.
func (i Int) raw() buffer {
	if len(i.b) == 0 {
		return buffer{0}
	}
	return i.b
}

// Size returns the number of bytes in the canonical representation of i.
func (i Int) Size() int { return len(i.raw()) }

// Bytes returns a copy of the canonical little-endian two's complement
// representation of i. The result is never empty.
func (i Int) Bytes() []byte {
	r := i.raw()
	return []byte(extend(r, len(r)))
}

// FillBytes returns i as a little-endian two's complement byte slice of
// exactly size bytes, sign-extending as needed. It returns an InvalidArgument
// error if size is not positive or is too small to hold i.
func (i Int) FillBytes(size int) ([]byte, error) {
	r := i.raw()
	if size <= 0 {
		return nil, newError(InvalidArgument, "fill size %d", size)
	} else if size < len(r) {
		return nil, newError(InvalidArgument, "fill size %d < %d bytes required", size, len(r))
	}
	b := extend(r, len(r))
	b.resize(size)
	return []byte(b), nil
}

func (i Int) IsZero() bool { return i.raw().isZero() }

// IsNeg reports whether i < 0.
func (i Int) IsNeg() bool { return i.raw().negative() }

// Sign returns -1, 0 or +1 as i is negative, zero or positive.
func (i Int) Sign() int {
	r := i.raw()
	if r.negative() {
		return -1
	} else if r.isZero() {
		return 0
	}
	return 1
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	r := i.raw()
	mag := extend(r, len(r)+1)
	neg := mag.negative()
	if neg {
		mag.negate()
	}
	be := make([]byte, len(mag))
	for idx, c := range mag {
		be[len(mag)-1-idx] = c
	}
	b.SetBytes(be)
	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 truncates the Int to fit in an int64. Values outside the range
// wrap around, as a Go integer conversion would. See IsInt64() if you want
// to check before you convert.
func (i Int) AsInt64() int64 {
	var out [8]byte
	r := i.raw()
	f := r.fill()
	for idx := range out {
		if idx < len(r) {
			out[idx] = r[idx]
		} else {
			out[idx] = f
		}
	}
	return int64(binary.LittleEndian.Uint64(out[:]))
}

// AsInt32 truncates the Int to fit in an int32. See AsInt64.
func (i Int) AsInt32() int32 { return int32(i.AsInt64()) }

// AsInt truncates the Int to fit in an int. See AsInt64.
func (i Int) AsInt() int { return int(i.AsInt64()) }

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool { return len(i.raw()) <= 8 }

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
//
func (i Int) Cmp(n Int) int {
	return compare(i.raw(), n.raw())
}

func (i Int) Equal(n Int) bool       { return i.Cmp(n) == 0 }
func (i Int) LessThan(n Int) bool    { return i.Cmp(n) < 0 }
func (i Int) GreaterThan(n Int) bool { return n.LessThan(i) }

// LessOrEqualTo is defined as !i.GreaterThan(n) so that it can never
// disagree with GreaterThan.
func (i Int) LessOrEqualTo(n Int) bool { return !i.GreaterThan(n) }

// GreaterOrEqualTo is defined as !i.LessThan(n).
func (i Int) GreaterOrEqualTo(n Int) bool { return !i.LessThan(n) }

// Neg returns -i. Unlike a fixed-width integer, negating the most negative
// value of a given width grows the result by a byte instead of wrapping.
func (i Int) Neg() Int {
	r := i.raw()
	b := extend(r, len(r)+1)
	b.negate()
	return fromBuffer(b)
}

func (i Int) Abs() Int {
	if i.IsNeg() {
		return i.Neg()
	}
	return i
}

// Add returns i + n. The result grows as needed and never wraps.
func (i Int) Add(n Int) Int {
	x, y := i.raw(), n.raw()
	size := len(x)
	if len(y) > size {
		size = len(y)
	}
	b := extend(x, size+1)
	b.fixedAdd(y)
	return fromBuffer(b)
}

func (i Int) Sub(n Int) Int { return i.Add(n.Neg()) }

func (i Int) Inc() Int { return i.Add(IntFrom8(1)) }
func (i Int) Dec() Int { return i.Add(IntFrom8(-1)) }

// Mul returns the product of i and n. The product is exact for every
// combination of signs and sizes.
func (i Int) Mul(n Int) Int {
	return Int{b: mulBooth(i.raw(), n.raw())}
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// DivisionByZero error is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so r has the sign of x and |r| < |y|. Int does not support
// big.Int.DivMod()-style Euclidean division.
//
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	x, y := i.raw(), by.raw()
	qu, ru, err := quoRemAbs(x, y)
	if err != nil {
		return q, r, err
	}

	q, r = Int{b: qu}, Int{b: ru}
	if x.negative() != y.negative() {
		q = q.Neg()
	}
	if x.negative() {
		r = r.Neg()
	}
	return q, r, nil
}

// Quo returns the quotient x/y for y != 0. If y == 0, a DivisionByZero error
// is returned. Quo implements truncated division (like Go); see QuoRem for
// more details.
func (i Int) Quo(by Int) (q Int, err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a DivisionByZero
// error is returned. Rem implements truncated modulus (like Go); see QuoRem
// for more details.
func (i Int) Rem(by Int) (r Int, err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}

// Lsh returns i << n. The result grows as needed and is always exact.
func (i Int) Lsh(n uint) Int {
	if n == 0 {
		return i
	}
	r := i.raw()
	shift := int(n / 8)

	b := make(buffer, len(r)+shift+1)
	copy(b[shift:], r)
	b[len(b)-1] = r.fill()
	for bit := uint(0); bit < n%8; bit++ {
		b.lsh1()
	}
	return fromBuffer(b)
}

// Rsh returns i >> n. The shift is arithmetic, so negative values round
// towards negative infinity, as with Go's signed integers.
func (i Int) Rsh(n uint) Int {
	if n == 0 {
		return i
	}
	r := i.raw()
	shift := n / 8
	if shift >= uint(len(r)) {
		return Int{b: buffer{r.fill()}}
	}

	b := extend(r[shift:], len(r)-int(shift))
	for bit := uint(0); bit < n%8; bit++ {
		b.rsh1()
	}
	return fromBuffer(b)
}

// Format implements fmt.Formatter. %b prints BinaryString(), honouring the
// width and '-' flags; every other verb, with all of its flags, is handled by
// big.Int.
func (i Int) Format(s fmt.State, c rune) {
	if c != 'b' {
		i.AsBigInt().Format(s, c)
		return
	}

	w, _ := s.Width()
	if s.Flag('-') {
		fmt.Fprintf(s, "%-*s", w, i.BinaryString())
	} else {
		fmt.Fprintf(s, "%*s", w, i.BinaryString())
	}
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return newError(InvalidStringLiteral, "invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// canonical little-endian two's complement representation returned by
// Bytes.
func (i Int) MarshalBinary() (data []byte, err error) {
	return i.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Non-canonical input
// is accepted and canonicalized.
func (i *Int) UnmarshalBinary(data []byte) (err error) {
	v, err := IntFromBytes(data)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
