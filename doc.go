/*
Package bigint provides an arbitrary-precision signed integer (Int) stored as a
variable-length, little-endian two's complement byte sequence.

Int is a value type; all operations return new values. Every result is
canonical: it uses the fewest bytes that still carry the value and its sign,
so 127 is one byte (0x7F), 128 is two (0x80 0x00) and -128 is one (0x80).

Simple example:

	a := MustIntFromString("340282366920938463463374607431768211456")
	fmt.Println(a.Mul(IntFrom64(-1)))
	// Output: -340282366920938463463374607431768211456

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFrom16(v int16) Int
	IntFrom8(v int8) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int
	IntFromBytes(data []byte) (out Int, err error)

Division and parsing report failures as errors of the Error class; use
errors.Is with DivisionByZero, InvalidStringLiteral or InvalidArgument, or
Kind(err), to tell them apart.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter (%b prints the raw two's complement bits)
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

*/
package bigint
