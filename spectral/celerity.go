package spectral

import "math"

// Wave kinematics from linear theory.
//
// References:
//   - Hunt, J.N. (1979). "Direct solution of wave dispersion equation."
//     Journal of the Waterway, Port, Coastal and Ocean Division 105.4: 457-459

const (
	// Grav is the gravitational acceleration in m/s2.
	Grav = 9.81

	// D2R converts degrees to radians.
	D2R = math.Pi / 180.0

	// R2D converts radians to degrees.
	R2D = 180.0 / math.Pi
)

// hunt polynomial coefficients for the dispersion approximation.
var huntCoeffs = [...]float64{0.6522, 0.4622, 0.0, 0.0864, 0.0675}

// Wavenumber returns the wavenumber k (rad/m) at frequency freq (Hz) and
// water depth (m) using Hunt's direct approximation of the linear
// dispersion relation.
func Wavenumber(freq, depth float64) float64 {
	if freq <= 0 || depth <= 0 {
		return math.NaN()
	}
	ang := 2.0 * math.Pi * freq
	k0h := ang * ang * depth / Grav
	a := 1.0
	term := 1.0
	for _, c := range huntCoeffs {
		term *= k0h
		a += c * term
	}
	return k0h * math.Sqrt(1.0+1.0/(k0h*a)) / depth
}

// Celerity returns the wave phase speed (m/s) at frequency freq (Hz).
// With a positive finite depth the dispersion relation is used, otherwise
// the deep-water approximation g / (4 pi f) applies. Pass depth <= 0, NaN
// or +Inf for deep water.
func Celerity(freq, depth float64) float64 {
	if freq <= 0 {
		return math.Inf(1)
	}
	if depth > 0 && !math.IsInf(depth, 1) && !math.IsNaN(depth) {
		return 2.0 * math.Pi * freq / Wavenumber(freq, depth)
	}
	return Grav / (4.0 * math.Pi * freq)
}

// Wavelen returns the wavelength (m) at frequency freq (Hz).
func Wavelen(freq, depth float64) float64 {
	if freq <= 0 {
		return math.Inf(1)
	}
	if depth > 0 && !math.IsInf(depth, 1) && !math.IsNaN(depth) {
		return 2.0 * math.Pi / Wavenumber(freq, depth)
	}
	return Celerity(freq, depth) / freq
}
