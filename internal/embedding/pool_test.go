package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanPool(t *testing.T) {
	got := MeanPool([][]float32{
		{1, 2, 3},
		{3, 2, 1},
		{2, 2, 2},
	})
	assert.Equal(t, []float32{2, 2, 2}, got)

	assert.Nil(t, MeanPool(nil))
	assert.Equal(t, []float32{1, 5}, MeanPool([][]float32{{1, 5}}))
}

func TestNormalizeL2(t *testing.T) {
	v := NormalizeL2([]float32{3, 4})
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)

	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestNormalizeL2ZeroVector(t *testing.T) {
	v := NormalizeL2([]float32{0, 0, 0})
	for _, x := range v {
		require.False(t, math.IsNaN(float64(x)))
		require.False(t, math.IsInf(float64(x), 0))
	}
}

func TestVectorCodecRoundTrip(t *testing.T) {
	in := []float32{0.5, -1.25, 3e7, math.SmallestNonzeroFloat32}
	assert.Equal(t, in, BytesToFloat32s(Float32sToBytes(in)))
}
