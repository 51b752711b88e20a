package partition

import (
	"math"
	"sort"

	"github.com/oceanwaves/wavespec/spectral"
)

// Merging of excess partitions down to a fixed partition count.
// Spectral variance is conserved: merging only ever sums energy.

// peakDistance measures how far apart the spectral peaks of two partitions
// sit in the polar spectral plane: radial frequency separation plus the
// arc length between the peak directions at the mean peak frequency, so
// both terms share units of Hz.
func peakDistance(a, b *spectral.Spectrum) float64 {
	ia, ja := a.PeakBin()
	ib, jb := b.PeakBin()

	df := a.Freq[ia] - b.Freq[ib]

	dd := math.Abs(a.Dir[ja] - b.Dir[jb])
	dd = math.Mod(dd, 360.0)
	if dd > 180.0 {
		dd = 360.0 - dd
	}
	fmean := 0.5 * (a.Freq[ia] + b.Freq[ib])

	return math.Hypot(df, fmean*dd*spectral.D2R)
}

// combinePartitions repeatedly merges the pair of partitions whose peaks
// are closest until keep partitions remain, then re-ranks the result by Hs
// in descending order. The input slice is consumed. With keep == 0 there
// is nothing left to merge into, so everything is dropped.
func combinePartitions(parts []*spectral.Spectrum, keep int, tail bool) []*spectral.Spectrum {
	if keep <= 0 {
		return parts[:0]
	}
	for len(parts) > keep && len(parts) > 1 {
		// Closest pair among the remaining partitions; ties keep the
		// first pair found in index order.
		bestA, bestB := 0, 1
		bestDist := math.Inf(1)
		for a := 0; a < len(parts); a++ {
			for b := a + 1; b < len(parts); b++ {
				if d := peakDistance(parts[a], parts[b]); d < bestDist {
					bestDist = d
					bestA, bestB = a, b
				}
			}
		}

		parts[bestA].AddInPlace(parts[bestB])
		parts = append(parts[:bestB], parts[bestB+1:]...)
	}

	sortByHs(parts, tail)
	return parts
}

// sortByHs stably orders partitions by descending significant wave height.
func sortByHs(parts []*spectral.Spectrum, tail bool) {
	hs := make([]float64, len(parts))
	for i, p := range parts {
		hs[i] = p.Hs(tail)
	}
	idx := make([]int, len(parts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return hs[idx[a]] > hs[idx[b]] })

	sorted := make([]*spectral.Spectrum, len(parts))
	for rank, i := range idx {
		sorted[rank] = parts[i]
	}
	copy(parts, sorted)
}
