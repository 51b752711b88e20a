package spectral

import "math"

// Integration weights for the spectral grid. Frequency bins may be
// non-uniform (wave model grids are typically logarithmic), direction bins
// are assumed uniform.

// FreqWidths returns the frequency-bin integration widths. End bins take
// the full one-sided difference, interior bins half the centered
// difference. A single-frequency grid gets unit width.
func (s *Spectrum) FreqWidths() []float64 {
	nf := s.Nf()
	df := make([]float64, nf)
	if nf == 1 {
		df[0] = 1.0
		return df
	}
	df[0] = s.Freq[1] - s.Freq[0]
	df[nf-1] = s.Freq[nf-1] - s.Freq[nf-2]
	for i := 1; i < nf-1; i++ {
		df[i] = 0.5 * (s.Freq[i+1] - s.Freq[i-1])
	}
	return df
}

// DirWidth returns the uniform direction-bin width in degrees, 1 for a
// single-direction grid.
func (s *Spectrum) DirWidth() float64 {
	if s.Nd() < 2 {
		return 1.0
	}
	return math.Abs(s.Dir[1] - s.Dir[0])
}
