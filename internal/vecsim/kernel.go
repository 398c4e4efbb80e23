package vecsim

// kernel computes, in a single pass, the dot product of a and b and the
// squared magnitude of each. Callers guarantee len(a) == len(b) >= 1.
type kernel func(a, b []float32) (dot, sqA, sqB float64)

// Selected once at startup; the dispatch files override per GOARCH after
// probing CPU features. Read-only after init, safe for concurrent callers.
var (
	kernelImpl kernel = dotNormsScalar
	kernelDesc        = "scalar"
)

// Implementation returns a description of the selected compute tier, for
// startup logging.
func Implementation() string {
	return kernelDesc
}

// dotNormsScalar is the universal fallback tier.
func dotNormsScalar(a, b []float32) (dot, sqA, sqB float64) {
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		sqA += x * x
		sqB += y * y
	}
	return dot, sqA, sqB
}
