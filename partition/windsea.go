package partition

import (
	"math"

	"github.com/oceanwaves/wavespec/spectral"
)

// Wave-age criterion separating actively wind-forced energy from freely
// propagating swell: a bin is wind-forced when the directional component
// of the (age-scaled) wind speed exceeds the wave phase speed.

// windSeaMask returns the per-bin wind-forcing mask for the given grid and
// local wind/depth scalars, indexed [freq][dir].
func windSeaMask(freq, dir []float64, wspd, wdir, dpt, agefac float64) [][]bool {
	up := make([]float64, len(dir))
	for j, d := range dir {
		up[j] = agefac * wspd * math.Cos(spectral.D2R*(d-wdir))
	}

	mask := make([][]bool, len(freq))
	for i, f := range freq {
		c := spectral.Celerity(f, dpt)
		row := make([]bool, len(dir))
		for j := range dir {
			row[j] = up[j] > c
		}
		mask[i] = row
	}
	return mask
}

// windSeaFraction returns the fraction of the partition's energy lying in
// wind-forced bins. An all-zero partition resolves to 0 rather than 0/0,
// so degenerate slices never poison the classification.
func windSeaFraction(part *spectral.Spectrum, mask [][]bool) float64 {
	total, forced := 0.0, 0.0
	for i, row := range part.Energy {
		for j, e := range row {
			if math.IsNaN(e) {
				continue
			}
			total += e
			if mask[i][j] {
				forced += e
			}
		}
	}
	if total == 0 {
		return 0
	}
	return forced / total
}
