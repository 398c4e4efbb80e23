package embedding

import "math"

// MeanPool averages a set of equal-dimension vectors into one. Vectors
// shorter than the first are ignored past their length; in practice all
// chunks of a document share the provider's dimension.
func MeanPool(vecs [][]float32) []float32 {
	if len(vecs) == 0 {
		return nil
	}
	dim := len(vecs[0])
	sum := make([]float64, dim)
	for _, v := range vecs {
		for i := 0; i < dim && i < len(v); i++ {
			sum[i] += float64(v[i])
		}
	}
	out := make([]float32, dim)
	inv := 1.0 / float64(len(vecs))
	for i, s := range sum {
		out[i] = float32(s * inv)
	}
	return out
}

// NormalizeL2 scales v to unit length in place and returns it. Near-zero
// norms are clamped so a degenerate vector stays finite instead of blowing
// up to Inf.
func NormalizeL2(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	norm = math.Sqrt(norm)
	if norm < 1e-9 {
		norm = 1e-9
	}
	inv := 1.0 / norm
	for i, x := range v {
		v[i] = float32(float64(x) * inv)
	}
	return v
}
