package spectral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreqWidthsUniform(t *testing.T) {
	s := constantSpectrum(t, 1.0)
	df := s.FreqWidths()
	require.Len(t, df, s.Nf())

	// End bins take the full step, interior bins the centered half sum.
	require.InDelta(t, 0.01, df[0], 1e-12)
	require.InDelta(t, 0.01, df[s.Nf()-1], 1e-12)
	for i := 1; i < s.Nf()-1; i++ {
		require.InDelta(t, 0.01, df[i], 1e-12)
	}
}

func TestFreqWidthsNonUniform(t *testing.T) {
	freq := []float64{0.05, 0.06, 0.08, 0.12}
	energy := make([][]float64, 4)
	for i := range energy {
		energy[i] = make([]float64, 2)
	}
	s, err := New(freq, []float64{0, 180}, energy)
	require.NoError(t, err)

	df := s.FreqWidths()
	require.InDelta(t, 0.01, df[0], 1e-12)
	require.InDelta(t, 0.015, df[1], 1e-12) // 0.5*(0.08-0.05)
	require.InDelta(t, 0.03, df[2], 1e-12)  // 0.5*(0.12-0.06)
	require.InDelta(t, 0.04, df[3], 1e-12)
}

func TestFreqWidthsSingleBin(t *testing.T) {
	s, err := New([]float64{0.1}, []float64{0, 90}, [][]float64{{1, 2}})
	require.NoError(t, err)
	require.Equal(t, []float64{1.0}, s.FreqWidths())
}

func TestDirWidth(t *testing.T) {
	s := constantSpectrum(t, 1.0)
	require.InDelta(t, 10.0, s.DirWidth(), 1e-12)

	single, err := New([]float64{0.1, 0.2}, []float64{90}, [][]float64{{1}, {2}})
	require.NoError(t, err)
	require.Equal(t, 1.0, single.DirWidth())
}
