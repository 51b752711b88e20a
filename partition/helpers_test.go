package partition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oceanwaves/wavespec/spectral"
)

// testGrid returns a typical wave model grid: 25 frequencies from 0.04 to
// 0.4 Hz and 24 directions every 15 degrees.
func testGrid() (freq, dir []float64) {
	freq = make([]float64, 25)
	for i := range freq {
		freq[i] = 0.04 + 0.015*float64(i)
	}
	dir = make([]float64, 24)
	for j := range dir {
		dir[j] = 15.0 * float64(j)
	}
	return freq, dir
}

// wrapDegrees returns the absolute circular difference between two
// directions, in [0, 180].
func wrapDegrees(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360.0)
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

// gaussianPeak adds a 2D Gaussian bump to the energy array, centered at
// (fp, dp) with spreads fw (Hz) and dw (degrees) and amplitude amp.
func gaussianPeak(energy [][]float64, freq, dir []float64, fp, dp, fw, dw, amp float64) {
	for i, f := range freq {
		for j, d := range dir {
			df := (f - fp) / fw
			dd := wrapDegrees(d, dp) / dw
			energy[i][j] += amp * math.Exp(-df*df-dd*dd)
		}
	}
}

// newSpectrum builds a spectrum with the given Gaussian bumps, described
// as {fp, dp, fw, dw, amp} tuples.
func newSpectrum(t *testing.T, bumps ...[5]float64) *spectral.Spectrum {
	t.Helper()
	freq, dir := testGrid()
	energy := make([][]float64, len(freq))
	for i := range energy {
		energy[i] = make([]float64, len(dir))
	}
	for _, b := range bumps {
		gaussianPeak(energy, freq, dir, b[0], b[1], b[2], b[3], b[4])
	}
	spec, err := spectral.New(freq, dir, energy)
	require.NoError(t, err)
	return spec
}

// sumParts accumulates a list of partitions into one spectrum.
func sumParts(parts []*spectral.Spectrum) *spectral.Spectrum {
	total := parts[0].ZerosLike()
	for _, p := range parts {
		total.AddInPlace(p)
	}
	return total
}

// requireSameEnergy asserts two spectra are bin-for-bin equal.
func requireSameEnergy(t *testing.T, want, got *spectral.Spectrum) {
	t.Helper()
	for i := range want.Energy {
		for j := range want.Energy[i] {
			require.InDelta(t, want.Energy[i][j], got.Energy[i][j], 1e-12,
				"energy mismatch at freq %d dir %d", i, j)
		}
	}
}
