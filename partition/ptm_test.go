package partition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oceanwaves/wavespec/spectral"
)

func TestPTM1UnimodalWeakWind(t *testing.T) {
	// One narrow Gaussian system and no wind: wind sea empty, swell slot 1
	// carries all the energy, slots 2-3 zero-filled.
	spec := newSpectrum(t, [5]float64{0.1, 180, 0.02, 20, 1.0})

	parts, err := NewPTM1().Partition(spec, 0, 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 4)

	require.Equal(t, 0.0, parts[0].Total())
	require.InDelta(t, spec.Total(), parts[1].Total(), 1e-9)
	require.Equal(t, 0.0, parts[2].Total())
	require.Equal(t, 0.0, parts[3].Total())
}

func TestPTM1EnergyConservation(t *testing.T) {
	// Without combine or truncation the output partitions sum back to the
	// input bin for bin.
	spec := newSpectrum(t,
		[5]float64{0.08, 90, 0.02, 20, 1.0},
		[5]float64{0.3, 270, 0.02, 20, 0.5},
	)

	parts, err := NewPTM1().Partition(spec, 10, 90, 50)
	require.NoError(t, err)
	require.Len(t, parts, 4)
	requireSameEnergy(t, spec, sumParts(parts))
}

func TestPTM1SmoothedBoundariesConserveEnergy(t *testing.T) {
	// Boundaries computed on the smoothed copy, energy taken from the raw
	// field: conservation must still hold bin for bin.
	spec := newSpectrum(t,
		[5]float64{0.08, 90, 0.02, 20, 1.0},
		[5]float64{0.3, 270, 0.02, 20, 0.5},
	)

	p := NewPTM1WithParams(PTM1Params{
		AgeFac:        DefaultAgeFac,
		WindSeaCutoff: DefaultWindSeaCutoff,
		Swells:        3,
		Smooth:        true,
		WindowFreq:    5,
		WindowDir:     5,
		Kernel:        spectral.Hann,
		Tail:          true,
	})
	parts, err := p.Partition(spec, 10, 90, 50)
	require.NoError(t, err)
	requireSameEnergy(t, spec, sumParts(parts))
}

func TestPTM1StrongWindAssignsWindSea(t *testing.T) {
	// A high-frequency system dead downwind of a strong wind is entirely
	// wind-forced.
	spec := newSpectrum(t, [5]float64{0.35, 90, 0.02, 20, 1.0})

	parts, err := NewPTM1().Partition(spec, 20, 90, 0)
	require.NoError(t, err)
	require.Len(t, parts, 4)

	require.InDelta(t, spec.Total(), parts[0].Total(), 1e-9)
	for _, swell := range parts[1:] {
		require.Equal(t, 0.0, swell.Total())
	}
}

func TestPTM1SwellOrdering(t *testing.T) {
	spec := newSpectrum(t,
		[5]float64{0.08, 90, 0.02, 15, 0.4},
		[5]float64{0.15, 200, 0.02, 15, 1.0},
		[5]float64{0.3, 300, 0.02, 15, 0.7},
	)

	parts, err := NewPTM1().Partition(spec, 0, 0, 0)
	require.NoError(t, err)
	for i := 2; i < len(parts); i++ {
		require.GreaterOrEqual(t, parts[i-1].Hs(true), parts[i].Hs(true))
	}
}

func TestPTM1WindSeaCutoffMonotonic(t *testing.T) {
	// Raising the cutoff toward 1 can only move energy from the wind-sea
	// slot to the swell slots, never the other way.
	spec := newSpectrum(t,
		[5]float64{0.1, 90, 0.02, 20, 1.0},
		[5]float64{0.3, 100, 0.02, 20, 0.6},
	)

	swellEnergy := func(wscut float64) float64 {
		p := NewPTM1WithParams(PTM1Params{
			AgeFac:        DefaultAgeFac,
			WindSeaCutoff: wscut,
			Swells:        5,
			Tail:          true,
		})
		parts, err := p.Partition(spec, 12, 90, 0)
		require.NoError(t, err)
		total := 0.0
		for _, swell := range parts[1:] {
			total += swell.Total()
		}
		return total
	}

	prev := -1.0
	for _, wscut := range []float64{0.1, 0.3333, 0.6, 0.9, 0.999} {
		cur := swellEnergy(wscut)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestPTM1CombineConservation(t *testing.T) {
	spec := newSpectrum(t,
		[5]float64{0.07, 30, 0.015, 15, 0.8},
		[5]float64{0.12, 120, 0.015, 15, 1.0},
		[5]float64{0.2, 210, 0.015, 15, 0.6},
		[5]float64{0.32, 300, 0.015, 15, 0.4},
	)

	p := NewPTM1WithParams(PTM1Params{
		AgeFac:        DefaultAgeFac,
		WindSeaCutoff: DefaultWindSeaCutoff,
		Swells:        2,
		Combine:       true,
		Tail:          true,
	})
	parts, err := p.Partition(spec, 0, 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	require.InDelta(t, spec.Total(), sumParts(parts).Total(), 1e-9)
}

func TestPTM1TruncationLosesEnergy(t *testing.T) {
	spec := newSpectrum(t,
		[5]float64{0.07, 30, 0.015, 15, 1.0},
		[5]float64{0.2, 210, 0.015, 15, 0.6},
	)

	p := NewPTM1WithParams(PTM1Params{
		AgeFac:        DefaultAgeFac,
		WindSeaCutoff: DefaultWindSeaCutoff,
		Swells:        1,
		Tail:          true,
	})
	parts, err := p.Partition(spec, 0, 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	require.Less(t, sumParts(parts).Total(), spec.Total())
}

func TestPTM1ZeroSwellsCombine(t *testing.T) {
	// With no swell slot to merge into, combining folds every candidate
	// back into the wind-sea slot: the output is still Swells+1 long and
	// loses no energy.
	spec := newSpectrum(t,
		[5]float64{0.08, 90, 0.02, 15, 1.0},
		[5]float64{0.3, 270, 0.02, 15, 0.5},
	)

	p := NewPTM1WithParams(PTM1Params{
		AgeFac:        DefaultAgeFac,
		WindSeaCutoff: DefaultWindSeaCutoff,
		Swells:        0,
		Combine:       true,
		Tail:          true,
	})
	parts, err := p.Partition(spec, 0, 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	requireSameEnergy(t, spec, parts[0])
}

func TestPTM1ZeroSwellsTruncate(t *testing.T) {
	spec := newSpectrum(t,
		[5]float64{0.08, 90, 0.02, 15, 1.0},
		[5]float64{0.3, 270, 0.02, 15, 0.5},
	)

	p := NewPTM1WithParams(PTM1Params{
		AgeFac:        DefaultAgeFac,
		WindSeaCutoff: DefaultWindSeaCutoff,
		Swells:        0,
		Tail:          true,
	})
	parts, err := p.Partition(spec, 0, 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	// Without combine the swell candidates are simply discarded.
	require.Equal(t, 0.0, parts[0].Total())
}

func TestPTM1NegativeSwells(t *testing.T) {
	spec := newSpectrum(t, [5]float64{0.1, 180, 0.02, 20, 1.0})

	p := NewPTM1WithParams(PTM1Params{Swells: -1})
	_, err := p.Partition(spec, 0, 0, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPTM2Unimplemented(t *testing.T) {
	require.ErrorIs(t, PTM2(), ErrUnimplemented)
}

func TestPTM3Bimodal(t *testing.T) {
	// Two separated systems of different heights: exactly two nonzero
	// partitions, ordered by Hs, energy conserved bin for bin.
	spec := newSpectrum(t,
		[5]float64{0.08, 90, 0.02, 15, 1.0},
		[5]float64{0.3, 270, 0.02, 15, 0.5},
	)

	p := NewPTM3WithParams(PTM3Params{Parts: 2, Tail: true})
	parts, err := p.Partition(spec)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	require.Greater(t, parts[0].Total(), 0.0)
	require.Greater(t, parts[1].Total(), 0.0)
	require.GreaterOrEqual(t, parts[0].Hs(true), parts[1].Hs(true))
	requireSameEnergy(t, spec, sumParts(parts))
}

func TestPTM3SinglePeakRegionCount(t *testing.T) {
	spec := newSpectrum(t, [5]float64{0.1, 180, 0.02, 20, 1.0})

	p := NewPTM3WithParams(PTM3Params{Parts: 4, Tail: true})
	parts, err := p.Partition(spec)
	require.NoError(t, err)
	require.Len(t, parts, 4)

	// K=1: one nonzero partition, the rest zero-padded.
	require.InDelta(t, spec.Total(), parts[0].Total(), 1e-9)
	for _, part := range parts[1:] {
		require.Equal(t, 0.0, part.Total())
	}
}

func TestPTM3CombineConservation(t *testing.T) {
	spec := newSpectrum(t,
		[5]float64{0.07, 30, 0.015, 15, 0.8},
		[5]float64{0.12, 120, 0.015, 15, 1.0},
		[5]float64{0.25, 250, 0.015, 15, 0.6},
	)

	p := NewPTM3WithParams(PTM3Params{Parts: 2, Combine: true, Tail: true})
	parts, err := p.Partition(spec)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	require.InDelta(t, spec.Total(), sumParts(parts).Total(), 1e-9)
}

func TestPTM3ZeroPartsCombine(t *testing.T) {
	// Parts == 0 leaves nothing to merge into, so the output is empty
	// whether or not combining is requested.
	spec := newSpectrum(t,
		[5]float64{0.08, 90, 0.02, 15, 1.0},
		[5]float64{0.3, 270, 0.02, 15, 0.5},
	)

	parts, err := NewPTM3WithParams(PTM3Params{Parts: 0, Combine: true, Tail: true}).Partition(spec)
	require.NoError(t, err)
	require.Len(t, parts, 0)

	parts, err = NewPTM3WithParams(PTM3Params{Parts: 0, Tail: true}).Partition(spec)
	require.NoError(t, err)
	require.Len(t, parts, 0)
}

func TestPTM3NegativeParts(t *testing.T) {
	spec := newSpectrum(t, [5]float64{0.1, 180, 0.02, 20, 1.0})

	p := NewPTM3WithParams(PTM3Params{Parts: -2})
	_, err := p.Partition(spec)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPTM4Complementary(t *testing.T) {
	spec := newSpectrum(t,
		[5]float64{0.1, 90, 0.03, 30, 1.0},
		[5]float64{0.35, 90, 0.02, 20, 0.5},
	)

	parts, err := NewPTM4().Partition(spec, 15, 90, 0)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	// Sea and swell are complementary masks of the original.
	requireSameEnergy(t, spec, sumParts(parts))
	require.Greater(t, parts[0].Total(), 0.0)
	require.Greater(t, parts[1].Total(), 0.0)
}

func TestPTM4NoWind(t *testing.T) {
	spec := newSpectrum(t, [5]float64{0.1, 90, 0.03, 30, 1.0})

	parts, err := NewPTM4().Partition(spec, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, parts[0].Total())
	require.InDelta(t, spec.Total(), parts[1].Total(), 1e-9)
}

func TestPTM5OnGridCutoff(t *testing.T) {
	spec := newSpectrum(t, [5]float64{0.15, 180, 0.05, 40, 1.0})
	fcut := spec.Freq[10]

	parts, err := NewPTM5(fcut).Partition(spec)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	hf, lf := parts[0], parts[1]
	require.Equal(t, spec.Nf(), hf.Nf())

	for i, f := range spec.Freq {
		for j := range spec.Dir {
			if f > fcut {
				require.Equal(t, spec.Energy[i][j], hf.Energy[i][j])
				require.Equal(t, 0.0, lf.Energy[i][j])
			} else if f < fcut {
				require.Equal(t, 0.0, hf.Energy[i][j])
				require.Equal(t, spec.Energy[i][j], lf.Energy[i][j])
			} else {
				// Both components keep the cutoff bin.
				require.Equal(t, spec.Energy[i][j], hf.Energy[i][j])
				require.Equal(t, spec.Energy[i][j], lf.Energy[i][j])
			}
		}
	}
}

func TestPTM5InterpolatedCutoff(t *testing.T) {
	spec := newSpectrum(t, [5]float64{0.15, 180, 0.05, 40, 1.0})
	fcut := 0.5 * (spec.Freq[9] + spec.Freq[10])

	parts, err := NewPTM5(fcut).Partition(spec)
	require.NoError(t, err)

	// The cutoff was inserted as a new bin.
	require.Equal(t, spec.Nf()+1, parts[0].Nf())
	require.Contains(t, parts[0].Freq, fcut)

	// Away from the cutoff the split is exact.
	require.InDelta(t, spec.Energy[9][12], parts[1].Energy[9][12], 1e-12)
	require.InDelta(t, spec.Energy[10][12], parts[0].Energy[11][12], 1e-12)
}

func TestPTM5NoInterpolation(t *testing.T) {
	spec := newSpectrum(t, [5]float64{0.15, 180, 0.05, 40, 1.0})
	fcut := 0.5 * (spec.Freq[9] + spec.Freq[10])

	p := NewPTM5WithParams(PTM5Params{Fcut: fcut, Interpolate: false})
	parts, err := p.Partition(spec)
	require.NoError(t, err)
	require.Equal(t, spec.Nf(), parts[0].Nf())
	requireSameEnergy(t, spec, sumParts(parts))
}

func TestPTM5InvalidCutoff(t *testing.T) {
	spec := newSpectrum(t, [5]float64{0.15, 180, 0.05, 40, 1.0})

	_, err := NewPTM5(0).Partition(spec)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewPTM5(-0.1).Partition(spec)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
