package spectral

import "math"

// Integrated summary statistics. All integrals treat NaN energy bins as
// zero so that masked partitions never poison a ranking.
//
// References:
//   - Cartwright, D.E., Longuet-Higgins, M.S. (1956). "The statistical
//     distribution of the maxima of a random function." Proc. R. Soc.
//     Lond. A 237: 212-232
//   - Bunney, C., Saulter, A., Palmer, T. (2014). "Reconstruction of
//     complex 2D wave spectra for rapid deployment of nearshore wave
//     models." From Sea to Shore: 1050-1059

// tailFreq is the frequency above which the parametric f^-5 high-frequency
// tail contribution is added to integrated energies.
const tailFreq = 0.333

// hmaxFactor assumes N = 3*3600/10.8 waves in a sea state.
const hmaxFactor = 1.86

// Oned integrates the spectrum over directions, returning the 1D frequency
// spectrum E(f) = dd * sum_dir E(f, theta).
func (s *Spectrum) Oned() []float64 {
	dd := s.DirWidth()
	ef := make([]float64, s.Nf())
	for i, row := range s.Energy {
		sum := 0.0
		for _, e := range row {
			if !math.IsNaN(e) {
				sum += e
			}
		}
		ef[i] = dd * sum
	}
	return ef
}

// m0 returns the zeroth frequency moment via trapezoidal integration of
// the 1D spectrum, optionally adding the high-frequency tail term.
func (s *Spectrum) m0(tail bool) float64 {
	ef := s.Oned()
	nf := s.Nf()
	etot := 0.0
	for i := 0; i < nf-1; i++ {
		etot += 0.5 * (s.Freq[i+1] - s.Freq[i]) * (ef[i+1] + ef[i])
	}
	if tail && s.Freq[nf-1] > tailFreq {
		etot += 0.25 * ef[nf-1] * s.Freq[nf-1]
	}
	return etot
}

// Hs returns the significant wave height Hm0 = 4 sqrt(m0).
//
// Args mirror the frequency-domain definition: when tail is true and the
// grid extends past 0.333 Hz, a parametric tail is added before
// integrating.
func (s *Spectrum) Hs(tail bool) float64 {
	return 4.0 * math.Sqrt(math.Max(s.m0(tail), 0))
}

// Hrms returns the root mean square wave height sqrt(8 m0).
func (s *Spectrum) Hrms(tail bool) float64 {
	return math.Sqrt(8.0 * math.Max(s.m0(tail), 0))
}

// Hmax returns the most probable maximum individual wave height for the
// sea state, 1.86 Hs for a typical 3-hour record.
func (s *Spectrum) Hmax() float64 {
	return hmaxFactor * s.Hs(true)
}

// FreqMoment returns the nth frequency moment of the direction-integrated
// spectrum, m_n = sum df * f^n * E(f).
func (s *Spectrum) FreqMoment(n int) float64 {
	ef := s.Oned()
	df := s.FreqWidths()
	m := 0.0
	for i := range ef {
		m += df[i] * math.Pow(s.Freq[i], float64(n)) * ef[i]
	}
	return m
}

// Tm01 returns the mean absolute wave period m0/m1.
func (s *Spectrum) Tm01() float64 {
	m1 := s.FreqMoment(1)
	if m1 == 0 {
		return math.NaN()
	}
	return s.FreqMoment(0) / m1
}

// Tm02 returns the zero up-crossing period sqrt(m0/m2).
func (s *Spectrum) Tm02() float64 {
	m2 := s.FreqMoment(2)
	if m2 == 0 {
		return math.NaN()
	}
	return math.Sqrt(s.FreqMoment(0) / m2)
}

// peakIndex returns the index of the highest interior peak of the 1D
// spectrum. A peak requires E[i-1] < E[i] > E[i+1], so boundary bins and
// flat plateaus never qualify. Returns -1 when no peak exists.
func (s *Spectrum) peakIndex() int {
	ef := s.Oned()
	ipeak := -1
	best := 0.0
	for i := 1; i < len(ef)-1; i++ {
		if ef[i] > ef[i-1] && ef[i] > ef[i+1] && ef[i] > best {
			best = ef[i]
			ipeak = i
		}
	}
	return ipeak
}

// Tp returns the peak wave period.
//
// With smooth true the discrete peak is refined by a parabolic fit through
// the peak bin and its neighbors, otherwise the discrete bin period is
// returned. NaN when the spectrum has no interior peak.
func (s *Spectrum) Tp(smooth bool) float64 {
	ipeak := s.peakIndex()
	if ipeak < 0 {
		return math.NaN()
	}
	if !smooth {
		return 1.0 / s.Freq[ipeak]
	}
	ef := s.Oned()
	fp := parabolicVertex(
		s.Freq[ipeak-1], ef[ipeak-1],
		s.Freq[ipeak], ef[ipeak],
		s.Freq[ipeak+1], ef[ipeak+1],
	)
	if fp <= 0 || math.IsNaN(fp) {
		return 1.0 / s.Freq[ipeak]
	}
	return 1.0 / fp
}

// Fp returns the peak wave frequency 1/Tp.
func (s *Spectrum) Fp(smooth bool) float64 {
	return 1.0 / s.Tp(smooth)
}

// parabolicVertex returns the abscissa of the vertex of the parabola
// through three points.
func parabolicVertex(x0, y0, x1, y1, x2, y2 float64) float64 {
	d0 := (y1 - y0) / (x1 - x0)
	d1 := (y2 - y1) / (x2 - x1)
	a := (d1 - d0) / (x2 - x0)
	if a == 0 {
		return x1
	}
	b := d0 - a*(x0+x1)
	return -b / (2.0 * a)
}

// momd returns the sin and cos components of the first directional moment
// for each frequency, using the coming-from convention with a 90 degree
// angle offset.
func (s *Spectrum) momd() (msin, mcos []float64) {
	dd := s.DirWidth()
	msin = make([]float64, s.Nf())
	mcos = make([]float64, s.Nf())
	for j, d := range s.Dir {
		cp := math.Cos(D2R * (270.0 - d))
		sp := math.Sin(D2R * (270.0 - d))
		for i := range s.Energy {
			e := s.Energy[i][j]
			if math.IsNaN(e) {
				continue
			}
			msin[i] += dd * e * sp
			mcos[i] += dd * e * cp
		}
	}
	return msin, mcos
}

// Dm returns the mean wave direction from the first directional moment, in
// degrees coming-from.
func (s *Spectrum) Dm() float64 {
	msin, mcos := s.momd()
	df := s.FreqWidths()
	a, b := 0.0, 0.0
	for i := range df {
		a += msin[i] * df[i]
		b += mcos[i] * df[i]
	}
	return math.Mod(270.0-R2D*math.Atan2(a, b)+720.0, 360.0)
}

// Dpm returns the peak wave direction, defined like the mean direction but
// using only the frequency bin holding the spectral peak. NaN when the
// spectrum has no interior peak.
func (s *Spectrum) Dpm() float64 {
	ipeak := s.peakIndex()
	if ipeak < 0 {
		return math.NaN()
	}
	msin, mcos := s.momd()
	return math.Mod(270.0-R2D*math.Atan2(msin[ipeak], mcos[ipeak])+720.0, 360.0)
}

// Dspr returns the one-sided mean directional spread in degrees.
func (s *Spectrum) Dspr() float64 {
	msin, mcos := s.momd()
	df := s.FreqWidths()
	ef := s.Oned()
	a, b, e := 0.0, 0.0, 0.0
	for i := range df {
		a += msin[i] * df[i]
		b += mcos[i] * df[i]
		e += ef[i] * df[i]
	}
	if e == 0 {
		return math.NaN()
	}
	return math.Sqrt(2.0 * R2D * R2D * (1.0 - math.Hypot(a, b)/e))
}
