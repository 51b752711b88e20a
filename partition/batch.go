package partition

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/oceanwaves/wavespec/spectral"
)

// Explicit fan-out layer vectorizing the pure per-slice partitioners over
// non-spectral dimensions (time, site, ensemble member). Slices are fully
// independent, so the fan-out is embarrassingly parallel. Shape and
// parameter contracts are checked eagerly, before any slice computes.

// BatchInput carries one 2D spectrum per non-spectral point plus the
// auxiliary scalar fields sharing that outer structure. WindSpeed and
// WindDir are required by the wind-aware policies; Depth may be nil for
// deep water everywhere.
type BatchInput struct {
	Spectra   []*spectral.Spectrum
	WindSpeed []float64
	WindDir   []float64
	Depth     []float64
}

// validateWind checks the wind and depth fields against the spectra.
func (in *BatchInput) validateWind() error {
	n := len(in.Spectra)
	if len(in.WindSpeed) != n {
		return fmt.Errorf("%w: wind speed has %d points, want %d",
			ErrShapeMismatch, len(in.WindSpeed), n)
	}
	if len(in.WindDir) != n {
		return fmt.Errorf("%w: wind direction has %d points, want %d",
			ErrShapeMismatch, len(in.WindDir), n)
	}
	if in.Depth != nil && len(in.Depth) != n {
		return fmt.Errorf("%w: depth has %d points, want %d",
			ErrShapeMismatch, len(in.Depth), n)
	}
	return nil
}

// depthAt returns the depth for slice i, deep water when Depth is nil.
func (in *BatchInput) depthAt(i int) float64 {
	if in.Depth == nil {
		return 0
	}
	return in.Depth[i]
}

// fanOut runs fn over n independent slices with bounded parallelism. The
// first error stops scheduling and is returned.
func fanOut(ctx context.Context, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	return g.Wait()
}

// PartitionBatch partitions every slice of the batch independently,
// returning results indexed [slice][part].
func (p *PTM1) PartitionBatch(ctx context.Context, in *BatchInput) ([][]*spectral.Spectrum, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := in.validateWind(); err != nil {
		return nil, err
	}

	out := make([][]*spectral.Spectrum, len(in.Spectra))
	err := fanOut(ctx, len(in.Spectra), func(i int) error {
		parts, err := p.Partition(in.Spectra[i], in.WindSpeed[i], in.WindDir[i], in.depthAt(i))
		if err != nil {
			return fmt.Errorf("slice %d: %w", i, err)
		}
		out[i] = parts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PartitionBatch partitions every spectrum independently, returning
// results indexed [slice][part].
func (p *PTM3) PartitionBatch(ctx context.Context, spectra []*spectral.Spectrum) ([][]*spectral.Spectrum, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	out := make([][]*spectral.Spectrum, len(spectra))
	err := fanOut(ctx, len(spectra), func(i int) error {
		parts, err := p.Partition(spectra[i])
		if err != nil {
			return fmt.Errorf("slice %d: %w", i, err)
		}
		out[i] = parts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PartitionBatch splits every slice of the batch independently, returning
// results indexed [slice][part].
func (p *PTM4) PartitionBatch(ctx context.Context, in *BatchInput) ([][]*spectral.Spectrum, error) {
	if err := in.validateWind(); err != nil {
		return nil, err
	}

	out := make([][]*spectral.Spectrum, len(in.Spectra))
	err := fanOut(ctx, len(in.Spectra), func(i int) error {
		parts, err := p.Partition(in.Spectra[i], in.WindSpeed[i], in.WindDir[i], in.depthAt(i))
		if err != nil {
			return fmt.Errorf("slice %d: %w", i, err)
		}
		out[i] = parts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PartitionBatch splits every spectrum independently, returning results
// indexed [slice][part].
func (p *PTM5) PartitionBatch(ctx context.Context, spectra []*spectral.Spectrum) ([][]*spectral.Spectrum, error) {
	if p.params.Fcut <= 0 {
		return nil, fmt.Errorf("%w: fcut must be positive, got %v",
			ErrInvalidParameter, p.params.Fcut)
	}

	out := make([][]*spectral.Spectrum, len(spectra))
	err := fanOut(ctx, len(spectra), func(i int) error {
		parts, err := p.Partition(spectra[i])
		if err != nil {
			return fmt.Errorf("slice %d: %w", i, err)
		}
		out[i] = parts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
