package spectral

import (
	"fmt"
	"math"
	"sort"
)

// interpRow linearly interpolates every direction bin at frequency f,
// which must lie strictly inside the frequency range.
func (s *Spectrum) interpRow(f float64) []float64 {
	i := sort.SearchFloat64s(s.Freq, f)
	// Caller guarantees freq[0] < f < freq[nf-1] and f not on the grid,
	// so 0 < i < nf.
	f0, f1 := s.Freq[i-1], s.Freq[i]
	t := (f - f0) / (f1 - f0)
	row := make([]float64, s.Nd())
	for j := 0; j < s.Nd(); j++ {
		row[j] = s.Energy[i-1][j] + t*(s.Energy[i][j]-s.Energy[i-1][j])
	}
	return row
}

// hasFreq reports whether f is an existing frequency bin.
func (s *Spectrum) hasFreq(f float64) bool {
	i := sort.SearchFloat64s(s.Freq, f)
	return i < s.Nf() && s.Freq[i] == f
}

// InsertFreq returns a spectrum regridded to include frequency f as a new
// bin, with every direction linearly interpolated at f and all other bins
// untouched. If f is already on the grid or outside the frequency range a
// clone is returned unchanged.
func (s *Spectrum) InsertFreq(f float64) *Spectrum {
	if s.hasFreq(f) || f <= s.Freq[0] || f >= s.Freq[s.Nf()-1] {
		return s.Clone()
	}

	i := sort.SearchFloat64s(s.Freq, f)
	row := s.interpRow(f)

	freq := make([]float64, 0, s.Nf()+1)
	freq = append(freq, s.Freq[:i]...)
	freq = append(freq, f)
	freq = append(freq, s.Freq[i:]...)

	energy := make([][]float64, 0, s.Nf()+1)
	for k := 0; k < i; k++ {
		r := make([]float64, s.Nd())
		copy(r, s.Energy[k])
		energy = append(energy, r)
	}
	energy = append(energy, row)
	for k := i; k < s.Nf(); k++ {
		r := make([]float64, s.Nd())
		copy(r, s.Energy[k])
		energy = append(energy, r)
	}

	return &Spectrum{Freq: freq, Dir: append([]float64(nil), s.Dir...), Energy: energy}
}

// Split returns the sub-spectrum between the given frequency and direction
// cutoffs. NaN cutoffs leave the corresponding side unbounded. Frequency
// cutoffs falling between grid points are interpolated in; direction
// cutoffs select existing bins only. Rejects fmax <= fmin and dmax <= dmin.
func (s *Spectrum) Split(fmin, fmax, dmin, dmax float64) (*Spectrum, error) {
	if !math.IsNaN(fmin) && !math.IsNaN(fmax) && fmax <= fmin {
		return nil, fmt.Errorf("%w: fmax %v must be greater than fmin %v",
			ErrInvalidParameter, fmax, fmin)
	}
	if !math.IsNaN(dmin) && !math.IsNaN(dmax) && dmax <= dmin {
		return nil, fmt.Errorf("%w: dmax %v must be greater than dmin %v",
			ErrInvalidParameter, dmax, dmin)
	}

	out := s.Clone()
	if !math.IsNaN(fmin) {
		out = out.InsertFreq(fmin)
	}
	if !math.IsNaN(fmax) {
		out = out.InsertFreq(fmax)
	}

	// Select frequency rows inside the band.
	lo, hi := 0, out.Nf()
	if !math.IsNaN(fmin) {
		lo = sort.SearchFloat64s(out.Freq, fmin)
	}
	if !math.IsNaN(fmax) {
		hi = sort.Search(out.Nf(), func(i int) bool { return out.Freq[i] > fmax })
	}
	if lo >= hi {
		return nil, fmt.Errorf("%w: no frequencies between %v and %v",
			ErrInvalidParameter, fmin, fmax)
	}

	// Select direction columns inside the sector.
	cols := make([]int, 0, out.Nd())
	for j, d := range out.Dir {
		if !math.IsNaN(dmin) && d < dmin {
			continue
		}
		if !math.IsNaN(dmax) && d > dmax {
			continue
		}
		cols = append(cols, j)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no directions between %v and %v",
			ErrInvalidParameter, dmin, dmax)
	}

	freq := append([]float64(nil), out.Freq[lo:hi]...)
	dir := make([]float64, len(cols))
	energy := make([][]float64, hi-lo)
	for i := lo; i < hi; i++ {
		row := make([]float64, len(cols))
		for jj, j := range cols {
			row[jj] = out.Energy[i][j]
		}
		energy[i-lo] = row
	}
	for jj, j := range cols {
		dir[jj] = out.Dir[j]
	}

	return New(freq, dir, energy)
}
