package orbit

import (
	"testing"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name       string
		c          complex128
		iterations int
		want       []complex128
	}{
		{
			name:       "origin is a fixed point and never escapes",
			c:          complex(0, 0),
			iterations: 50,
			want:       nil,
		},
		{
			name:       "bounded point on the real axis",
			c:          complex(-1, 0),
			iterations: 50,
			want:       nil,
		},
		{
			name:       "point outside the escape radius leaves immediately",
			c:          complex(3, 0),
			iterations: 50,
			want:       []complex128{complex(3, 0)},
		},
		{
			name:       "escape after two iterations",
			c:          complex(1, 1),
			iterations: 50,
			want:       []complex128{complex(1, 1), complex(1, 3)},
		},
		{
			name:       "orbit discarded when the bound lands exactly on the escape",
			c:          complex(1, 1),
			iterations: 2,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Points(tt.c, tt.iterations)

			if len(got) != len(tt.want) {
				t.Fatalf("Points(%v, %d) has length %d, want %d",
					tt.c, tt.iterations, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Points(%v, %d)[%d] = %v, want %v",
						tt.c, tt.iterations, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPointsImmediateEscape(t *testing.T) {
	// Every candidate already beyond the escape radius must escape on
	// the very first iterate, since z1 = c.
	candidates := []complex128{
		complex(3, 0),
		complex(0, -2.5),
		complex(2, 2),
		complex(-10, 10),
	}

	for _, c := range candidates {
		points := Points(c, 100)
		if len(points) == 0 {
			t.Errorf("Points(%v, 100) is empty, want an escaping orbit", c)
			continue
		}
		if sq := SqMagnitude(points[0]); sq <= EscapeThreshold {
			t.Errorf("Points(%v, 100)[0] has squared magnitude %v, want > %v",
				c, sq, EscapeThreshold)
		}
	}
}

func TestPointsLengthBelowBound(t *testing.T) {
	// Escaping orbits always have fewer points than the bound; the
	// orbit that uses up the whole bound is discarded instead.
	candidates := []complex128{
		complex(1, 1),
		complex(0.5, 0.6),
		complex(-2, -2),
		complex(0.3, 0.8),
	}

	for _, c := range candidates {
		for _, iterations := range []int{1, 2, 10, 1000} {
			points := Points(c, iterations)
			if len(points) >= iterations {
				t.Errorf("Points(%v, %d) has length %d, want < %d",
					c, iterations, len(points), iterations)
			}
		}
	}
}

func TestAppendPointsReusesBuffer(t *testing.T) {
	buf := make([]complex128, 0, 50)

	escaped := AppendPoints(buf[:0], complex(1, 1), 50)
	if len(escaped) != 2 {
		t.Fatalf("AppendPoints(1+1i) has length %d, want 2", len(escaped))
	}

	// A bounded candidate leaves nothing behind in the same buffer.
	bounded := AppendPoints(buf[:0], complex(-1, 0), 50)
	if len(bounded) != 0 {
		t.Errorf("AppendPoints(-1) has length %d, want 0", len(bounded))
	}
}

func TestSqMagnitude(t *testing.T) {
	tests := []struct {
		name string
		z    complex128
		want float64
	}{
		{"zero", complex(0, 0), 0},
		{"real only", complex(3, 0), 9},
		{"imaginary only", complex(0, -2), 4},
		{"both components", complex(1, 3), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SqMagnitude(tt.z); got != tt.want {
				t.Errorf("SqMagnitude(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}
