package orbit

// EscapeThreshold is the squared magnitude beyond which an orbit is
// classified as escaping. Any z with |z| > 2 grows without bound under
// z ← z² + c, so comparing |z|² against a constant avoids the square
// root entirely.
const EscapeThreshold = 2.0

// SqMagnitude returns |z|² without taking a square root.
func SqMagnitude(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Points iterates z ← z² + c from z = 0, recording each iterate, until
// the orbit escapes or iterations steps have been taken.
//
// A point that never escapes is (numerically) inside the Mandelbrot
// set and contributes nothing to the Buddhabrot; its orbit is
// discarded and Points returns nil. For an escaping point the full
// visited sequence is returned, ending with the iterate that crossed
// the threshold. Its length is always strictly less than iterations.
func Points(c complex128, iterations int) []complex128 {
	return AppendPoints(nil, c, iterations)
}

// AppendPoints is Points, appending into dst. Sampling loops call this
// with a reused buffer so the per-sample allocation disappears.
func AppendPoints(dst []complex128, c complex128, iterations int) []complex128 {
	z := complex(0, 0)
	mark := len(dst)

	n := 0
	for n < iterations && SqMagnitude(z) <= EscapeThreshold {
		z = z*z + c
		n++

		dst = append(dst, z)
	}

	if n == iterations {
		return dst[:mark]
	}
	return dst
}
