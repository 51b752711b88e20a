package spectral

import (
	"fmt"
	"sort"
)

// StatFunc computes one scalar statistic from a spectrum.
type StatFunc func(*Spectrum) (float64, error)

// statRegistry maps statistic names to their implementations. Built once
// at init so unknown names fail with a typed error instead of a runtime
// method lookup.
var statRegistry map[string]StatFunc

func init() {
	statRegistry = map[string]StatFunc{
		"hs":   func(s *Spectrum) (float64, error) { return s.Hs(true), nil },
		"hrms": func(s *Spectrum) (float64, error) { return s.Hrms(true), nil },
		"hmax": func(s *Spectrum) (float64, error) { return s.Hmax(), nil },
		"tm01": func(s *Spectrum) (float64, error) { return s.Tm01(), nil },
		"tm02": func(s *Spectrum) (float64, error) { return s.Tm02(), nil },
		"tp":   func(s *Spectrum) (float64, error) { return s.Tp(true), nil },
		"fp":   func(s *Spectrum) (float64, error) { return s.Fp(true), nil },
		"dm":   func(s *Spectrum) (float64, error) { return s.Dm(), nil },
		"dpm":  func(s *Spectrum) (float64, error) { return s.Dpm(), nil },
		"dspr": func(s *Spectrum) (float64, error) { return s.Dspr(), nil },
	}
}

// StatNames returns the sorted list of registered statistic names.
func StatNames() []string {
	names := make([]string, 0, len(statRegistry))
	for name := range statRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stat looks up a single statistic by name.
func Stat(name string) (StatFunc, error) {
	fn, ok := statRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q, available: %v", ErrUnknownStat, name, StatNames())
	}
	return fn, nil
}

// Stats evaluates multiple named statistics over the spectrum. Unknown
// names are rejected before anything is computed.
func (s *Spectrum) Stats(names []string) (map[string]float64, error) {
	funcs := make([]StatFunc, len(names))
	for i, name := range names {
		fn, err := Stat(name)
		if err != nil {
			return nil, err
		}
		funcs[i] = fn
	}

	out := make(map[string]float64, len(names))
	for i, name := range names {
		val, err := funcs[i](s)
		if err != nil {
			return nil, fmt.Errorf("computing %q: %w", name, err)
		}
		out[name] = val
	}
	return out, nil
}
