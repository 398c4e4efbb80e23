// Package vecsim computes cosine similarity between packed float32 vectors.
// It is wired into SQLite as the cosine_similarity scalar function and runs
// once per row during ranking queries, so the hot path is a single pass over
// both buffers with a width-tiered kernel selected at process startup.
package vecsim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrMisaligned reports a buffer whose byte length is not a whole number of
// float32 elements. Truncating such a buffer would silently corrupt the
// score, so the call fails instead.
var ErrMisaligned = errors.New("vecsim: byte length is not a multiple of 4")

// minNormal is the smallest positive normal float32. Magnitudes at or below
// it are treated as zero vectors rather than divided by.
const minNormal = 0x1p-126

// Cosine computes the cosine similarity of two buffers of packed
// native-endian float32 values.
//
// A nil buffer means the caller had no vector; the result is null, not an
// error. When the buffers declare different element counts the shorter one
// decides how many elements are compared, which keeps mixed-dimension
// embedding models comparable. A zero-length overlap is null. A zero-magnitude
// vector has no direction, so its similarity to anything is defined as 0.
func Cosine(a, b []byte) (score float64, null bool, err error) {
	if a == nil || b == nil {
		return 0, true, nil
	}
	if len(a)%4 != 0 {
		return 0, false, fmt.Errorf("%w: first argument is %d bytes", ErrMisaligned, len(a))
	}
	if len(b)%4 != 0 {
		return 0, false, fmt.Errorf("%w: second argument is %d bytes", ErrMisaligned, len(b))
	}

	n := min(len(a), len(b)) / 4
	if n == 0 {
		return 0, true, nil
	}

	// Same backing memory: identical vectors, skip the pass entirely.
	if len(a) == len(b) && &a[0] == &b[0] {
		return 1, false, nil
	}

	dot, sqA, sqB := kernelImpl(view(a, n), view(b, n))
	if sqA <= minNormal || sqB <= minNormal {
		return 0, false, nil
	}
	// One sqrt over the product instead of two.
	return dot / math.Sqrt(sqA*sqB), false, nil
}

// view reinterprets the first n elements of b as a float32 slice. The cast
// is free when the buffer happens to be 4-byte aligned; SQLite hands out
// arbitrary heap bytes, so the unaligned case decodes into a fresh slice.
func view(b []byte, n int) []float32 {
	p := unsafe.SliceData(b)
	if uintptr(unsafe.Pointer(p))%unsafe.Alignof(float32(0)) == 0 {
		return unsafe.Slice((*float32)(unsafe.Pointer(p)), n)
	}
	v := make([]float32, n)
	for i := range v {
		v[i] = math.Float32frombits(binary.NativeEndian.Uint32(b[i*4:]))
	}
	return v
}
