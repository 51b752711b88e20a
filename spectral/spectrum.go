// Package spectral implements the data model and summary statistics for
// 2D (frequency x direction) ocean wave energy spectra.
//
// References:
//   - Holthuijsen, L.H. (2007). "Waves in Oceanic and Coastal Waters"
//   - Hanson, J.L., et al. (2009). "Pacific hindcast performance of three
//     numerical wave models." JTECH 26.8: 1614-1633
package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Spectrum holds wave energy density E(f, theta) on a rectilinear grid.
// Freq is in Hz, strictly ascending. Dir is in degrees on the closed
// circular domain [0, 360), using the "coming from" convention.
// Energy is indexed [freq][dir] in m2/Hz/degree.
type Spectrum struct {
	Freq   []float64   `json:"freq"`
	Dir    []float64   `json:"dir"`
	Energy [][]float64 `json:"energy"`
}

// New creates a Spectrum after validating the coordinate and energy shapes.
func New(freq, dir []float64, energy [][]float64) (*Spectrum, error) {
	if len(freq) == 0 {
		return nil, fmt.Errorf("%w: empty frequency array", ErrInvalidGrid)
	}
	if len(dir) == 0 {
		return nil, fmt.Errorf("%w: empty direction array", ErrInvalidGrid)
	}
	for i := 1; i < len(freq); i++ {
		if freq[i] <= freq[i-1] {
			return nil, fmt.Errorf(
				"%w: frequencies must be strictly ascending, freq[%d]=%v <= freq[%d]=%v",
				ErrInvalidGrid, i, freq[i], i-1, freq[i-1])
		}
	}
	if len(energy) != len(freq) {
		return nil, fmt.Errorf("%w: energy has %d frequency rows, want %d",
			ErrInvalidGrid, len(energy), len(freq))
	}
	for i, row := range energy {
		if len(row) != len(dir) {
			return nil, fmt.Errorf("%w: energy row %d has %d directions, want %d",
				ErrInvalidGrid, i, len(row), len(dir))
		}
	}
	return &Spectrum{Freq: freq, Dir: dir, Energy: energy}, nil
}

// Nf returns the number of frequency bins.
func (s *Spectrum) Nf() int { return len(s.Freq) }

// Nd returns the number of direction bins.
func (s *Spectrum) Nd() int { return len(s.Dir) }

// Clone returns a deep copy of the spectrum.
func (s *Spectrum) Clone() *Spectrum {
	energy := make([][]float64, len(s.Energy))
	for i, row := range s.Energy {
		energy[i] = make([]float64, len(row))
		copy(energy[i], row)
	}
	freq := make([]float64, len(s.Freq))
	copy(freq, s.Freq)
	dir := make([]float64, len(s.Dir))
	copy(dir, s.Dir)
	return &Spectrum{Freq: freq, Dir: dir, Energy: energy}
}

// ZerosLike returns a zero-energy spectrum on the same grid. The coordinate
// slices are shared, the energy buffer is fresh.
func (s *Spectrum) ZerosLike() *Spectrum {
	energy := make([][]float64, s.Nf())
	for i := range energy {
		energy[i] = make([]float64, s.Nd())
	}
	return &Spectrum{Freq: s.Freq, Dir: s.Dir, Energy: energy}
}

// AddInPlace accumulates other's energy into s. Grids must match in shape.
func (s *Spectrum) AddInPlace(other *Spectrum) {
	for i := range s.Energy {
		floats.Add(s.Energy[i], other.Energy[i])
	}
}

// Total returns the plain (unweighted) sum of all energy bins. NaN bins
// count as zero.
func (s *Spectrum) Total() float64 {
	total := 0.0
	for _, row := range s.Energy {
		for _, e := range row {
			if !math.IsNaN(e) {
				total += e
			}
		}
	}
	return total
}

// PeakBin returns the indices of the highest-energy bin. Ties resolve to
// the lowest row-major index so the result is deterministic.
func (s *Spectrum) PeakBin() (ifreq, idir int) {
	best := math.Inf(-1)
	for i, row := range s.Energy {
		for j, e := range row {
			if e > best {
				best = e
				ifreq, idir = i, j
			}
		}
	}
	return ifreq, idir
}

// MaxEnergy returns the largest energy density in the spectrum.
func (s *Spectrum) MaxEnergy() float64 {
	best := math.Inf(-1)
	for _, row := range s.Energy {
		if m := floats.Max(row); m > best {
			best = m
		}
	}
	return best
}
