// Package partition decomposes 2D wave energy spectra into sub-spectra
// attributed to distinct wave systems (wind sea and swell trains) using a
// topographic watershed transform and rule-based classification.
//
// References:
//   - Hanson, J.L., Phillips, O.M. (2001). "Automated analysis of ocean
//     surface directional wave spectra." JTECH 18.2: 277-293
//   - Hanson, J.L., et al. (2009). "Pacific hindcast performance of three
//     numerical wave models." JTECH 26.8: 1614-1633
package partition

import (
	"math"
	"sort"
)

// Segment labels the catchment basins of a 2D energy surface indexed
// [freq][dir]. Basins flood outward from each local energy maximum in
// decreasing order of energy. The direction axis wraps around, the
// frequency axis does not.
//
// Returned labels use 0 for background (zero or NaN energy) and 1..n for
// basins, ids assigned in decreasing order of their maximum. The input is
// never modified and any finite non-negative field segments successfully.
//
// Determinism: bins are visited in strictly decreasing energy with ties
// broken by ascending row-major index, and a bin adjacent to more than one
// existing basin joins the one with the lowest id.
func Segment(field [][]float64) (labels [][]int, n int) {
	nf := len(field)
	if nf == 0 {
		return nil, 0
	}
	nd := len(field[0])

	labels = make([][]int, nf)
	for i := range labels {
		labels[i] = make([]int, nd)
	}
	if nd == 0 {
		return labels, 0
	}

	// Worklist of bins carrying energy, highest first.
	type bin struct {
		i, j int
		e    float64
	}
	work := make([]bin, 0, nf*nd)
	for i := 0; i < nf; i++ {
		for j := 0; j < nd; j++ {
			e := field[i][j]
			if e > 0 && !math.IsNaN(e) {
				work = append(work, bin{i: i, j: j, e: e})
			}
		}
	}
	sort.SliceStable(work, func(a, b int) bool {
		if work[a].e != work[b].e {
			return work[a].e > work[b].e
		}
		// Stable flat-index order on plateaus.
		return work[a].i*nd+work[a].j < work[b].i*nd+work[b].j
	})

	for _, w := range work {
		// Lowest already-labeled 8-neighbor wins; direction wraps.
		best := 0
		for di := -1; di <= 1; di++ {
			ii := w.i + di
			if ii < 0 || ii >= nf {
				continue
			}
			for dj := -1; dj <= 1; dj++ {
				if di == 0 && dj == 0 {
					continue
				}
				jj := ((w.j+dj)%nd + nd) % nd
				if l := labels[ii][jj]; l > 0 && (best == 0 || l < best) {
					best = l
				}
			}
		}
		if best == 0 {
			// No labeled neighbor: this bin is a local maximum of the
			// remaining surface and founds a new basin.
			n++
			best = n
		}
		labels[w.i][w.j] = best
	}

	return labels, n
}
