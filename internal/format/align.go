package format

// RIFF chunks are word aligned: a body of odd length is followed by one zero
// byte that is not counted in the chunk's own size field.

// PadLen returns the number of pad bytes that follow a chunk body of n bytes.
//
//	PadLen(4) = 0
//	PadLen(5) = 1
func PadLen[T ~int | ~int64 | ~uint32](n T) T {
	return n & 1
}

// AlignEven returns n rounded up to the next even value.
//
//	AlignEven(7) = 8
//	AlignEven(8) = 8
func AlignEven[T ~int | ~int64 | ~uint32](n T) T {
	return n + PadLen(n)
}
