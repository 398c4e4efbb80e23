package embedding

import (
	"encoding/binary"
	"math"
)

// Float32sToBytes packs a float32 slice into the tightly-packed native-endian
// layout the similarity engine reads.
func Float32sToBytes(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.NativeEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// BytesToFloat32s unpacks a stored vector.
func BytesToFloat32s(b []byte) []float32 {
	n := len(b) / 4
	v := make([]float32, n)
	for i := range n {
		v[i] = math.Float32frombits(binary.NativeEndian.Uint32(b[i*4:]))
	}
	return v
}
