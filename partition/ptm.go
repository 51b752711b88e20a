package partition

import (
	"fmt"

	"github.com/oceanwaves/wavespec/logging"
	"github.com/oceanwaves/wavespec/spectral"
)

// Default parameters shared by the watershed policies.
const (
	// DefaultAgeFac is the wave age factor scaling the wind speed in the
	// wind-forcing criterion.
	DefaultAgeFac = 1.7

	// DefaultWindSeaCutoff is the wind-sea energy fraction above which a
	// watershed region is folded into the wind-sea partition.
	DefaultWindSeaCutoff = 0.3333

	// DefaultWindow is the running-window size in bins for pre-watershed
	// smoothing.
	DefaultWindow = 3
)

// maskRegion extracts the sub-spectrum of spec covered by region id in the
// label map, zero elsewhere. Boundaries may come from a smoothed field but
// energy is always taken from the raw spectrum, so summing all regions
// reproduces it bin for bin.
func maskRegion(spec *spectral.Spectrum, labels [][]int, id int) *spectral.Spectrum {
	part := spec.ZerosLike()
	for i, row := range labels {
		for j, l := range row {
			if l == id {
				part.Energy[i][j] = spec.Energy[i][j]
			}
		}
	}
	return part
}

// PTM1Params configures PTM1 partitioning.
type PTM1Params struct {
	AgeFac        float64         `json:"age_factor"`      // Wave age factor
	WindSeaCutoff float64         `json:"wind_sea_cutoff"` // Wind-sea fraction cutoff
	Swells        int             `json:"swells"`          // Number of swell partitions to keep
	Combine       bool            `json:"combine"`         // Merge excess partitions instead of discarding
	Smooth        bool            `json:"smooth"`          // Compute watershed boundaries on a smoothed copy
	WindowFreq    int             `json:"window_freq"`     // Smoothing window over frequency, in bins
	WindowDir     int             `json:"window_dir"`      // Smoothing window over direction, in bins
	Kernel        spectral.Kernel `json:"kernel"`          // Smoothing kernel shape
	Tail          bool            `json:"tail"`            // Add high-frequency tail when ranking by Hs
}

// PTM1 implements watershed partitioning with wind-sea/swell
// classification. Topographic regions whose wind-sea energy fraction
// exceeds the cutoff are aggregated into the wind-sea partition (slot 0);
// the remaining regions become swell partitions in decreasing order of
// wave height.
//
// References:
//   - Hanson et al. (2009).
type PTM1 struct {
	params PTM1Params
	logger logging.Logger
}

// NewPTM1 creates a PTM1 partitioner with default parameters.
func NewPTM1() *PTM1 {
	return NewPTM1WithParams(PTM1Params{
		AgeFac:        DefaultAgeFac,
		WindSeaCutoff: DefaultWindSeaCutoff,
		Swells:        3,
		WindowFreq:    DefaultWindow,
		WindowDir:     DefaultWindow,
		Kernel:        spectral.Boxcar,
		Tail:          true,
	})
}

// NewPTM1WithParams creates a PTM1 partitioner with custom parameters.
func NewPTM1WithParams(params PTM1Params) *PTM1 {
	return &PTM1{
		params: params,
		logger: logging.WithFields(logging.Fields{
			"component": "ptm1",
			"swells":    params.Swells,
		}),
	}
}

// Params returns the current parameters.
func (p *PTM1) Params() PTM1Params { return p.params }

func (p *PTM1) validate() error {
	if p.params.Swells < 0 {
		return fmt.Errorf("%w: swells must be non-negative, got %d",
			ErrInvalidParameter, p.params.Swells)
	}
	return nil
}

// Partition decomposes one spectrum given the local wind speed (m/s),
// wind direction (deg, coming from) and water depth (m). The result has
// exactly Swells+1 entries with the wind sea in slot 0 and swells ranked
// by descending Hs; missing slots are zero-filled.
func (p *PTM1) Partition(spec *spectral.Spectrum, wspd, wdir, dpt float64) ([]*spectral.Spectrum, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	boundaries := spec
	if p.params.Smooth {
		var err error
		boundaries, err = spec.Smooth(p.params.WindowFreq, p.params.WindowDir, p.params.Kernel)
		if err != nil {
			return nil, err
		}
	}

	labels, nparts := Segment(boundaries.Energy)
	mask := windSeaMask(spec.Freq, spec.Dir, wspd, wdir, dpt, p.params.AgeFac)

	wsea := spec.ZerosLike()
	swells := make([]*spectral.Spectrum, 0, nparts)
	for id := 1; id <= nparts; id++ {
		part := maskRegion(spec, labels, id)
		if windSeaFraction(part, mask) > p.params.WindSeaCutoff {
			wsea.AddInPlace(part)
		} else {
			swells = append(swells, part)
		}
	}
	sortByHs(swells, p.params.Tail)

	p.logger.Debug("watershed classification complete", logging.Fields{
		"regions":          nparts,
		"swell_candidates": len(swells),
	})

	swells = p.reconcile(spec, wsea, swells)

	out := make([]*spectral.Spectrum, 0, p.params.Swells+1)
	out = append(out, wsea)
	out = append(out, swells...)
	return out, nil
}

// reconcile adjusts the ranked swell candidates to exactly Swells entries:
// merge or discard the excess, zero-pad the shortfall.
func (p *PTM1) reconcile(spec, wsea *spectral.Spectrum, swells []*spectral.Spectrum) []*spectral.Spectrum {
	want := p.params.Swells
	switch {
	case len(swells) > want && p.params.Combine && want == 0:
		// No swell slot to merge into: fold the candidates back into the
		// wind-sea slot so the output keeps its length and its energy.
		for _, swell := range swells {
			wsea.AddInPlace(swell)
		}
		swells = swells[:0]
	case len(swells) > want && p.params.Combine:
		swells = combinePartitions(swells, want, p.params.Tail)
	case len(swells) > want:
		// Discarded energy is lost from the output, by contract.
		p.logger.Debug("discarding excess swell partitions", logging.Fields{
			"discarded": len(swells) - want,
		})
		swells = swells[:want]
	default:
		for len(swells) < want {
			swells = append(swells, spec.ZerosLike())
		}
	}
	return swells
}

// PTM3Params configures PTM3 partitioning.
type PTM3Params struct {
	Parts      int             `json:"parts"`       // Number of partitions to keep
	Combine    bool            `json:"combine"`     // Merge excess partitions instead of discarding
	Smooth     bool            `json:"smooth"`      // Compute watershed boundaries on a smoothed copy
	WindowFreq int             `json:"window_freq"` // Smoothing window over frequency, in bins
	WindowDir  int             `json:"window_dir"`  // Smoothing window over direction, in bins
	Kernel     spectral.Kernel `json:"kernel"`      // Smoothing kernel shape
	Tail       bool            `json:"tail"`        // Add high-frequency tail when ranking by Hs
}

// PTM3 implements watershed partitioning with no wind-sea or swell
// classification: topographic regions are simply ordered by wave height.
// Useful for spectral reconstruction from a limited number of partitions.
type PTM3 struct {
	params PTM3Params
	logger logging.Logger
}

// NewPTM3 creates a PTM3 partitioner with default parameters.
func NewPTM3() *PTM3 {
	return NewPTM3WithParams(PTM3Params{
		Parts:      3,
		WindowFreq: DefaultWindow,
		WindowDir:  DefaultWindow,
		Kernel:     spectral.Boxcar,
		Tail:       true,
	})
}

// NewPTM3WithParams creates a PTM3 partitioner with custom parameters.
func NewPTM3WithParams(params PTM3Params) *PTM3 {
	return &PTM3{
		params: params,
		logger: logging.WithFields(logging.Fields{
			"component": "ptm3",
			"parts":     params.Parts,
		}),
	}
}

// Params returns the current parameters.
func (p *PTM3) Params() PTM3Params { return p.params }

func (p *PTM3) validate() error {
	if p.params.Parts < 0 {
		return fmt.Errorf("%w: parts must be non-negative, got %d",
			ErrInvalidParameter, p.params.Parts)
	}
	return nil
}

// Partition decomposes one spectrum into exactly Parts partitions ranked
// by descending Hs; missing slots are zero-filled.
func (p *PTM3) Partition(spec *spectral.Spectrum) ([]*spectral.Spectrum, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	boundaries := spec
	if p.params.Smooth {
		var err error
		boundaries, err = spec.Smooth(p.params.WindowFreq, p.params.WindowDir, p.params.Kernel)
		if err != nil {
			return nil, err
		}
	}

	labels, nparts := Segment(boundaries.Energy)

	parts := make([]*spectral.Spectrum, 0, nparts)
	for id := 1; id <= nparts; id++ {
		parts = append(parts, maskRegion(spec, labels, id))
	}
	sortByHs(parts, p.params.Tail)

	p.logger.Debug("watershed segmentation complete", logging.Fields{
		"regions": nparts,
	})

	want := p.params.Parts
	switch {
	case len(parts) > want && p.params.Combine:
		parts = combinePartitions(parts, want, p.params.Tail)
	case len(parts) > want:
		parts = parts[:want]
	default:
		for len(parts) < want {
			parts = append(parts, spec.ZerosLike())
		}
	}

	return parts, nil
}

// PTM2 is declared by the partitioning interface but intentionally carries
// no implementation; its secondary wind-sea reassignment semantics are an
// open item and are not approximated here.
func PTM2() error {
	return fmt.Errorf("%w: PTM2", ErrUnimplemented)
}

// PTM4Params configures PTM4 partitioning.
type PTM4Params struct {
	AgeFac float64 `json:"age_factor"` // Wave age factor
}

// PTM4 implements WAM-style sea/swell splitting from the wave age
// criterion alone: bins whose celerity exceeds the directional wind speed
// component are freely propagating swell, the rest are wind sea. No
// watershed is involved.
type PTM4 struct {
	params PTM4Params
	logger logging.Logger
}

// NewPTM4 creates a PTM4 partitioner with default parameters.
func NewPTM4() *PTM4 {
	return NewPTM4WithParams(PTM4Params{AgeFac: DefaultAgeFac})
}

// NewPTM4WithParams creates a PTM4 partitioner with custom parameters.
func NewPTM4WithParams(params PTM4Params) *PTM4 {
	return &PTM4{
		params: params,
		logger: logging.WithFields(logging.Fields{"component": "ptm4"}),
	}
}

// Params returns the current parameters.
func (p *PTM4) Params() PTM4Params { return p.params }

// Partition splits one spectrum into exactly [sea, swell].
func (p *PTM4) Partition(spec *spectral.Spectrum, wspd, wdir, dpt float64) ([]*spectral.Spectrum, error) {
	mask := windSeaMask(spec.Freq, spec.Dir, wspd, wdir, dpt, p.params.AgeFac)

	sea := spec.ZerosLike()
	swell := spec.ZerosLike()
	for i, row := range spec.Energy {
		for j, e := range row {
			if mask[i][j] {
				sea.Energy[i][j] = e
			} else {
				swell.Energy[i][j] = e
			}
		}
	}

	return []*spectral.Spectrum{sea, swell}, nil
}

// PTM5Params configures PTM5 partitioning.
type PTM5Params struct {
	Fcut        float64 `json:"fcut"`        // Frequency cutoff in Hz
	Interpolate bool    `json:"interpolate"` // Insert the cutoff as a grid frequency when absent
}

// PTM5 implements SWAN-style sea/swell splitting at a user-defined static
// frequency cutoff. When Interpolate is set and the cutoff is not an
// existing bin, the spectrum is first regridded to include it.
type PTM5 struct {
	params PTM5Params
	logger logging.Logger
}

// NewPTM5 creates a PTM5 partitioner splitting at the given cutoff (Hz).
func NewPTM5(fcut float64) *PTM5 {
	return NewPTM5WithParams(PTM5Params{Fcut: fcut, Interpolate: true})
}

// NewPTM5WithParams creates a PTM5 partitioner with custom parameters.
func NewPTM5WithParams(params PTM5Params) *PTM5 {
	return &PTM5{
		params: params,
		logger: logging.WithFields(logging.Fields{
			"component": "ptm5",
			"fcut":      params.Fcut,
		}),
	}
}

// Params returns the current parameters.
func (p *PTM5) Params() PTM5Params { return p.params }

// Partition splits one spectrum into exactly [high-frequency,
// low-frequency] components at the cutoff. Both components keep the
// cutoff bin itself. Note the output grid gains a bin when the cutoff is
// interpolated in.
func (p *PTM5) Partition(spec *spectral.Spectrum) ([]*spectral.Spectrum, error) {
	if p.params.Fcut <= 0 {
		return nil, fmt.Errorf("%w: fcut must be positive, got %v",
			ErrInvalidParameter, p.params.Fcut)
	}

	src := spec
	if p.params.Interpolate {
		src = spec.InsertFreq(p.params.Fcut)
	}

	hf := src.ZerosLike()
	lf := src.ZerosLike()
	for i, f := range src.Freq {
		for j, e := range src.Energy[i] {
			if f >= p.params.Fcut {
				hf.Energy[i][j] = e
			}
			if f <= p.params.Fcut {
				lf.Energy[i][j] = e
			}
		}
	}

	return []*spectral.Spectrum{hf, lf}, nil
}
