// Package fit builds parametric 1D frequency spectra E(f) used to model
// or reconstruct wave systems.
//
// References:
//   - Pierson, W.J., Moskowitz, L. (1964). "A proposed spectral form for
//     fully developed wind seas based on the similarity theory of
//     S.A. Kitaigorodskii." JGR 69.24: 5181-5190
//   - Bunney, C., Saulter, A., Palmer, T. (2014). "Reconstruction of
//     complex 2D wave spectra for rapid deployment of nearshore wave
//     models." From Sea to Shore: 1050-1059
package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidParameter flags out-of-range fitting arguments.
var ErrInvalidParameter = errors.New("fit: invalid parameter")

// tailFreq matches the integrated-statistics convention for adding the
// parametric high-frequency tail.
const tailFreq = 0.333

func checkFreq(freq []float64) error {
	if len(freq) < 2 {
		return fmt.Errorf("%w: need at least 2 frequencies, got %d",
			ErrInvalidParameter, len(freq))
	}
	for i := 1; i < len(freq); i++ {
		if freq[i] <= freq[i-1] {
			return fmt.Errorf("%w: frequencies must be strictly ascending",
				ErrInvalidParameter)
		}
	}
	if freq[0] <= 0 {
		return fmt.Errorf("%w: frequencies must be positive", ErrInvalidParameter)
	}
	return nil
}

// hs1d returns the significant wave height of a 1D frequency spectrum by
// trapezoidal integration plus the high-frequency tail term.
func hs1d(freq, ef []float64) float64 {
	etot := 0.0
	for i := 0; i < len(freq)-1; i++ {
		etot += 0.5 * (freq[i+1] - freq[i]) * (ef[i+1] + ef[i])
	}
	if freq[len(freq)-1] > tailFreq {
		etot += 0.25 * ef[len(ef)-1] * freq[len(freq)-1]
	}
	return 4.0 * math.Sqrt(math.Max(etot, 0))
}

// scale rescales the spectrum in place so its integrated Hs matches the
// target exactly.
func scale(freq, ef []float64, hs float64) {
	current := hs1d(freq, ef)
	if current == 0 {
		return
	}
	k := hs / current
	floats.Scale(k*k, ef)
}

// PiersonMoskowitz returns the Pierson-Moskowitz spectrum for fully
// developed seas, E(f) = a f^-5 exp(-b f^-4) with b = (tp/1.057)^-4 and
// a = b (hs/2)^2, rescaled so the integrated Hs matches exactly.
func PiersonMoskowitz(freq []float64, hs, tp float64) ([]float64, error) {
	if err := checkFreq(freq); err != nil {
		return nil, err
	}
	if hs <= 0 || tp <= 0 {
		return nil, fmt.Errorf("%w: hs and tp must be positive, got hs=%v tp=%v",
			ErrInvalidParameter, hs, tp)
	}

	b := math.Pow(tp/1.057, -4)
	a := b * (hs / 2) * (hs / 2)

	ef := make([]float64, len(freq))
	for i, f := range freq {
		ef[i] = a * math.Pow(f, -5) * math.Exp(-b*math.Pow(f, -4))
	}
	scale(freq, ef, hs)
	return ef, nil
}

// GaussianWidth returns the Gaussian frequency spread of a swell
// partition from its mean periods, gw = sqrt(m0/tm02^2 - m0^2/tm01^2)
// (Bunney et al. 2014).
func GaussianWidth(hs, tm01, tm02 float64) float64 {
	m0 := (hs / 4) * (hs / 4)
	return math.Sqrt(m0/(tm02*tm02) - m0*m0/(tm01*tm01))
}

// Gaussian returns a narrow Gaussian swell spectrum centered at peak
// frequency fp with spread gw, rescaled so the integrated Hs matches
// exactly.
func Gaussian(freq []float64, hs, fp, gw float64) ([]float64, error) {
	if err := checkFreq(freq); err != nil {
		return nil, err
	}
	if hs <= 0 || fp <= 0 || gw <= 0 || math.IsNaN(gw) {
		return nil, fmt.Errorf("%w: hs, fp and gw must be positive, got hs=%v fp=%v gw=%v",
			ErrInvalidParameter, hs, fp, gw)
	}

	m0 := (hs / 4) * (hs / 4)
	norm := m0 / (gw * math.Sqrt(2*math.Pi))

	ef := make([]float64, len(freq))
	for i, f := range freq {
		d := f - fp
		ef[i] = norm * math.Exp(-d*d/(2*gw*gw))
	}
	scale(freq, ef, hs)
	return ef, nil
}
