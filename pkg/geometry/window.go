package geometry

import "fmt"

// A Window is an axis-aligned rectangle in the complex plane, the
// region that gets rendered. It is distinct from the escape radius of
// the iterated map; the two just happen to be similar sizes for the
// classic Buddhabrot crop.
type Window struct {
	// Min and Max are opposite corners of the rectangle.
	// Min.real < Max.real and Min.imag < Max.imag.
	Min, Max complex128
}

// Buddhabrot is the classic full-set crop.
var Buddhabrot = Window{
	Min: complex(-2.0, -2.0),
	Max: complex(1.0, 2.0),
}

func (w Window) Validate() error {
	if real(w.Min) >= real(w.Max) {
		return fmt.Errorf("window real span is not positive: [%v, %v]", real(w.Min), real(w.Max))
	}
	if imag(w.Min) >= imag(w.Max) {
		return fmt.Errorf("window imaginary span is not positive: [%v, %v]", imag(w.Min), imag(w.Max))
	}
	return nil
}

// Contains reports whether z lies within the window, inclusive on all
// four bounds.
func (w Window) Contains(z complex128) bool {
	return real(z) >= real(w.Min) && real(z) <= real(w.Max) &&
		imag(z) >= imag(w.Min) && imag(z) <= imag(w.Max)
}

// Index linearly rescales value from [min, max] onto [0, length).
//
// Callers must exclude values outside [min, max] themselves; a value at
// or above max maps to an index at or past length.
func Index(value, min, max float64, length int) int {
	return int((value - min) * (float64(length) / (max - min)))
}

// Row maps the real part of z to a grid row.
func (w Window) Row(z complex128, height int) int {
	return Index(real(z), real(w.Min), real(w.Max), height)
}

// Col maps the imaginary part of z to a grid column.
func (w Window) Col(z complex128, width int) int {
	return Index(imag(z), imag(w.Min), imag(w.Max), width)
}
