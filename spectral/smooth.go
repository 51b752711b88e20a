package spectral

import (
	"fmt"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
)

// Running-window smoothing of the 2D spectrum, used to stabilize watershed
// boundaries before segmentation. The direction axis is circular, the
// frequency axis is bounded with the kernel renormalized at the edges.

// Kernel selects the smoothing window shape.
type Kernel string

const (
	// Boxcar is a plain running mean, the default.
	Boxcar Kernel = "boxcar"
	// Hann, Hamming and Blackman taper the window toward its edges.
	Hann     Kernel = "hann"
	Hamming  Kernel = "hamming"
	Blackman Kernel = "blackman"
)

// kernelWeights returns normalized weights of odd length size.
func kernelWeights(kernel Kernel, size int) ([]float64, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: smoothing window must be odd and positive, got %d",
			ErrInvalidParameter, size)
	}
	var w []float64
	switch kernel {
	case Boxcar, "":
		w = make([]float64, size)
		for i := range w {
			w[i] = 1.0
		}
	case Hann:
		w = window.Hann(size)
	case Hamming:
		w = window.Hamming(size)
	case Blackman:
		w = window.Blackman(size)
	default:
		return nil, fmt.Errorf("%w: unknown smoothing kernel %q", ErrInvalidParameter, kernel)
	}
	if sum := floats.Sum(w); sum > 0 {
		floats.Scale(1.0/sum, w)
	}
	return w, nil
}

// Smooth returns a smoothed copy of the spectrum using separable running
// windows of sizes windowFreq and windowDir (odd, in bins). A size of 1
// leaves the corresponding axis untouched. The input is never modified.
func (s *Spectrum) Smooth(windowFreq, windowDir int, kernel Kernel) (*Spectrum, error) {
	wf, err := kernelWeights(kernel, windowFreq)
	if err != nil {
		return nil, err
	}
	wd, err := kernelWeights(kernel, windowDir)
	if err != nil {
		return nil, err
	}

	out := s.Clone()

	// Direction axis: circular convolution along each frequency row.
	if windowDir > 1 && s.Nd() > 1 {
		half := windowDir / 2
		nd := s.Nd()
		row := make([]float64, nd)
		for i := range out.Energy {
			copy(row, out.Energy[i])
			for j := 0; j < nd; j++ {
				acc := 0.0
				for k := -half; k <= half; k++ {
					jj := ((j+k)%nd + nd) % nd
					acc += wd[k+half] * row[jj]
				}
				out.Energy[i][j] = acc
			}
		}
	}

	// Frequency axis: bounded, kernel renormalized where it overhangs.
	if windowFreq > 1 && s.Nf() > 1 {
		half := windowFreq / 2
		nf := s.Nf()
		col := make([]float64, nf)
		for j := 0; j < s.Nd(); j++ {
			for i := 0; i < nf; i++ {
				col[i] = out.Energy[i][j]
			}
			for i := 0; i < nf; i++ {
				acc, wsum := 0.0, 0.0
				for k := -half; k <= half; k++ {
					ii := i + k
					if ii < 0 || ii >= nf {
						continue
					}
					acc += wf[k+half] * col[ii]
					wsum += wf[k+half]
				}
				if wsum > 0 {
					out.Energy[i][j] = acc / wsum
				}
			}
		}
	}

	return out, nil
}
