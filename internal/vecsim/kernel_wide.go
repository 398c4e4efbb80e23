package vecsim

// dotNorms8 is the wide tier: 8 elements per iteration, three sets of lane
// accumulators, one reduction per set. The inner lane loop has a constant
// bound so the compiler can unroll and vectorize it.
func dotNorms8(a, b []float32) (dot, sqA, sqB float64) {
	var accDot, accA, accB [8]float32
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		for l := 0; l < 8; l++ {
			x := a[i+l]
			y := b[i+l]
			accDot[l] += x * y
			accA[l] += x * x
			accB[l] += y * y
		}
	}
	dot = reduce8(&accDot)
	sqA = reduce8(&accA)
	sqB = reduce8(&accB)
	for ; i < n; i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		sqA += x * x
		sqB += y * y
	}
	return dot, sqA, sqB
}

// reduce8 collapses eight lanes into one scalar, adding opposite halves
// pairwise the way a SIMD horizontal sum would.
func reduce8(v *[8]float32) float64 {
	s0 := v[0] + v[4]
	s1 := v[1] + v[5]
	s2 := v[2] + v[6]
	s3 := v[3] + v[7]
	return float64((s0 + s2) + (s1 + s3))
}
