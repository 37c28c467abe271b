package geometry

import "github.com/samber/lo"

// Intersection records where along a ray an object was crossed
type Intersection struct {
	T      float64
	Object *Sphere
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Sphere) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections collects intersections in the order given
func Intersections(xs ...Intersection) []Intersection {
	return xs
}

// Hit returns the visible intersection: the one with the smallest non-negative t.
// Ties go to the earliest in xs. Reports false when every intersection is behind the ray.
func Hit(xs []Intersection) (Intersection, bool) {
	visible := lo.Filter(xs, func(x Intersection, _ int) bool {
		return x.T >= 0
	})
	if len(visible) == 0 {
		return Intersection{}, false
	}
	return lo.MinBy(visible, func(a, b Intersection) bool {
		return a.T < b.T
	}), true
}
