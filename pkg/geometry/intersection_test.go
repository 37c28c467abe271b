package geometry

import "testing"

func TestIntersections_PreservesOrder(t *testing.T) {
	s := NewSphere()
	xs := Intersections(NewIntersection(2, s), NewIntersection(1, s))

	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	if xs[0].T != 2 || xs[1].T != 1 {
		t.Errorf("Expected input order [2 1], got [%f %f]", xs[0].T, xs[1].T)
	}
	if xs[0].Object.ID() != s.ID() {
		t.Errorf("Expected object %s, got %s", s.ID(), xs[0].Object.ID())
	}
}

func TestHit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name      string
		ts        []float64
		expectHit bool
		expectedT float64
	}{
		{"all positive", []float64{1, 2}, true, 1},
		{"some negative", []float64{-1, 1}, true, 1},
		{"all negative", []float64{-2, -1}, false, 0},
		{"lowest non-negative", []float64{5, 7, -3, 2}, true, 2},
		{"zero counts", []float64{0, 3}, true, 0},
		{"empty", nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs []Intersection
			for _, v := range tt.ts {
				xs = append(xs, NewIntersection(v, s))
			}

			hit, ok := Hit(xs)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if ok && hit.T != tt.expectedT {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestHit_TieKeepsFirst(t *testing.T) {
	a := NewSphere()
	b := NewSphere()

	hit, ok := Hit(Intersections(NewIntersection(3, a), NewIntersection(3, b)))
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Object != a {
		t.Errorf("Expected the first of the tied intersections")
	}
}
