package vecsim

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Lengths chosen to cover empty tails, tail-only inputs, and both lane widths.
var kernelLengths = []int{1, 3, 4, 7, 8, 9, 16, 31, 384, 1000}

func TestKernelTierAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range kernelLengths {
		a := randVec(r, n)
		b := randVec(r, n)

		dotS, sqAS, sqBS := dotNormsScalar(a, b)
		// Relative tolerance with an absolute floor, since a random dot
		// product can land arbitrarily close to zero.
		tol := func(want float64) float64 { return 1e-4 * (1 + math.Abs(want)) }
		for name, k := range map[string]kernel{"wide": dotNorms8, "narrow": dotNorms4} {
			dot, sqA, sqB := k(a, b)
			assert.InDelta(t, dotS, dot, tol(dotS), "%s dot n=%d", name, n)
			assert.InDelta(t, sqAS, sqA, tol(sqAS), "%s sqA n=%d", name, n)
			assert.InDelta(t, sqBS, sqB, tol(sqBS), "%s sqB n=%d", name, n)
		}
	}
}

func TestKernelSingleElement(t *testing.T) {
	for _, k := range []kernel{dotNormsScalar, dotNorms4, dotNorms8} {
		dot, sqA, sqB := k([]float32{3}, []float32{-2})
		require.InDelta(t, -6.0, dot, 1e-9)
		require.InDelta(t, 9.0, sqA, 1e-9)
		require.InDelta(t, 4.0, sqB, 1e-9)
	}
}

func TestKernelTailNotSkipped(t *testing.T) {
	// 9 elements: one wide iteration plus a single tail element that flips
	// the sign of the dot product if and only if the tail is processed.
	a := []float32{1, 1, 1, 1, 1, 1, 1, 1, -100}
	b := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1}
	for _, k := range []kernel{dotNormsScalar, dotNorms4, dotNorms8} {
		dot, _, _ := k(a, b)
		require.InDelta(t, -92.0, dot, 1e-6)
	}
}

func BenchmarkKernel(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{384, 1536} {
		va := randVec(r, n)
		vb := randVec(r, n)
		for name, k := range map[string]kernel{
			"scalar": dotNormsScalar,
			"narrow": dotNorms4,
			"wide":   dotNorms8,
		} {
			b.Run(name+"/"+strconv.Itoa(n), func(b *testing.B) {
				for b.Loop() {
					k(va, vb)
				}
			})
		}
	}
}

func BenchmarkCosine(b *testing.B) {
	r := rand.New(rand.NewSource(8))
	va := pack(randVec(r, 384))
	vb := pack(randVec(r, 384))
	b.Run("selected/"+Implementation(), func(b *testing.B) {
		for b.Loop() {
			Cosine(va, vb)
		}
	})
}
