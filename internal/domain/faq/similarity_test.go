package faq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCosineSelfSimilarityIsOne(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0.1, -0.2, 0.3, 0.4},
		{3, 4},
	}
	for _, v := range vectors {
		require.InDelta(t, 1.0, Cosine(v, v), 1e-9)
	}
}

func TestCosineEdgeCases(t *testing.T) {
	require.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-2, 0}), 1e-9)
	require.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 5}), 1e-9)
	require.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
	require.Equal(t, 0.0, Cosine([]float32{1, 2}, []float32{1, 2, 3}))
	require.Equal(t, 0.0, Cosine(nil, nil))
	require.False(t, math.IsNaN(Cosine([]float32{0}, []float32{0})))
}

func TestClassifyBoundaries(t *testing.T) {
	cfg := testConfig()

	require.Equal(t, BandHigh, cfg.Classify(1.0))
	require.Equal(t, BandHigh, cfg.Classify(0.80))
	require.Equal(t, BandLow, cfg.Classify(0.7999999))
	require.Equal(t, BandLow, cfg.Classify(0.70))
	require.Equal(t, BandNone, cfg.Classify(0.6999999))
	require.Equal(t, BandNone, cfg.Classify(-1))
}
