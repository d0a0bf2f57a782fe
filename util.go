package bigint

// RandSource is the subset of *math/rand.Rand used by RandInt.
type RandSource interface {
	Uint64() uint64
}

// RandInt generates a random signed integer of at most size bytes from an
// external source. Non-positive sizes yield zero.
func RandInt(source RandSource, size int) Int {
	if size <= 0 {
		return Int{}
	}
	b := make(buffer, size)
	for i := 0; i < size; i += 8 {
		v := source.Uint64()
		for j := i; j < size && j < i+8; j++ {
			b[j] = byte(v)
			v >>= 8
		}
	}
	return fromBuffer(b)
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// Larger returns the greater of a and b.
func Larger(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

// Smaller returns the lesser of a and b.
func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
