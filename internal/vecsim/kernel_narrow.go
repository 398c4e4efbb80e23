package vecsim

// dotNorms4 is the narrow tier: 4 elements per iteration.
func dotNorms4(a, b []float32) (dot, sqA, sqB float64) {
	var accDot, accA, accB [4]float32
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		x0, x1, x2, x3 := a[i], a[i+1], a[i+2], a[i+3]
		y0, y1, y2, y3 := b[i], b[i+1], b[i+2], b[i+3]
		accDot[0] += x0 * y0
		accDot[1] += x1 * y1
		accDot[2] += x2 * y2
		accDot[3] += x3 * y3
		accA[0] += x0 * x0
		accA[1] += x1 * x1
		accA[2] += x2 * x2
		accA[3] += x3 * x3
		accB[0] += y0 * y0
		accB[1] += y1 * y1
		accB[2] += y2 * y2
		accB[3] += y3 * y3
	}
	dot = reduce4(&accDot)
	sqA = reduce4(&accA)
	sqB = reduce4(&accB)
	for ; i < n; i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		sqA += x * x
		sqB += y * y
	}
	return dot, sqA, sqB
}

func reduce4(v *[4]float32) float64 {
	return float64((v[0] + v[2]) + (v[1] + v[3]))
}
