package core

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-5

func TestTuple_PointAndVector(t *testing.T) {
	tests := []struct {
		name     string
		tuple    Tuple
		isPoint  bool
		isVector bool
	}{
		{"w=1 is a point", NewTuple(4.3, -4.2, 3.1, 1.0), true, false},
		{"w=0 is a vector", NewTuple(4.3, -4.2, 3.1, 0.0), false, true},
		{"NewPoint", NewPoint(4, -4, 3), true, false},
		{"NewVector", NewVector(4, -4, 3), false, true},
		{"other w is neither", NewTuple(1, 2, 3, 0.5), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tuple.IsPoint() != tt.isPoint {
				t.Errorf("IsPoint() = %t, expected %t", tt.tuple.IsPoint(), tt.isPoint)
			}
			if tt.tuple.IsVector() != tt.isVector {
				t.Errorf("IsVector() = %t, expected %t", tt.tuple.IsVector(), tt.isVector)
			}
		})
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{"point plus vector", NewTuple(3, -2, 5, 1).Add(NewTuple(-2, 3, 1, 0)), NewTuple(1, 1, 6, 1)},
		{"point minus point", NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)), NewVector(-2, -4, -6)},
		{"point minus vector", NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)), NewPoint(-2, -4, -6)},
		{"vector minus vector", NewVector(3, 2, 1).Subtract(NewVector(5, 6, 7)), NewVector(-2, -4, -6)},
		{"negate", NewTuple(1, -2, 3, -4).Negate(), NewTuple(-1, 2, -3, 4)},
		{"multiply by scalar", NewTuple(1, -2, 3, -4).Multiply(3.5), NewTuple(3.5, -7, 10.5, -14)},
		{"multiply by fraction", NewTuple(1, -2, 3, -4).Multiply(0.5), NewTuple(0.5, -1, 1.5, -2)},
		{"divide by scalar", NewTuple(1, -2, 3, -4).Divide(2), NewTuple(0.5, -1, 1.5, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestTuple_Magnitude(t *testing.T) {
	tests := []struct {
		vector   Tuple
		expected float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}

	for _, tt := range tests {
		if got := tt.vector.Magnitude(); math.Abs(got-tt.expected) > tolerance {
			t.Errorf("Magnitude of %v: expected %f, got %f", tt.vector, tt.expected, got)
		}
	}
}

func TestTuple_Normalize(t *testing.T) {
	n := NewVector(1, 2, 3).Normalize()
	expected := NewVector(1/math.Sqrt(14), 2/math.Sqrt(14), 3/math.Sqrt(14))
	if !n.ApproxEqual(expected, tolerance) {
		t.Errorf("Expected %v, got %v", expected, n)
	}
	if math.Abs(n.Magnitude()-1) > tolerance {
		t.Errorf("Expected unit magnitude, got %f", n.Magnitude())
	}
	if got := NewVector(4, 0, 0).Normalize(); !got.ApproxEqual(NewVector(1, 0, 0), tolerance) {
		t.Errorf("Expected vector(1, 0, 0), got %v", got)
	}
}

func TestTuple_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if got := a.Dot(b); got != 20 {
		t.Errorf("Expected dot product 20, got %f", got)
	}

	ab, err := a.Cross(b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ab.ApproxEqual(NewVector(-1, 2, -1), tolerance) {
		t.Errorf("Expected a×b = vector(-1, 2, -1), got %v", ab)
	}

	ba, err := b.Cross(a)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ba.ApproxEqual(NewVector(1, -2, 1), tolerance) {
		t.Errorf("Expected b×a = vector(1, -2, 1), got %v", ba)
	}
}

func TestTuple_CrossRejectsPoints(t *testing.T) {
	_, err := NewPoint(1, 2, 3).Cross(NewVector(2, 3, 4))
	if !errors.Is(err, ErrInvalidConstruction) {
		t.Errorf("Expected ErrInvalidConstruction, got %v", err)
	}
	_, err = NewVector(1, 2, 3).Cross(NewPoint(2, 3, 4))
	if !errors.Is(err, ErrInvalidConstruction) {
		t.Errorf("Expected ErrInvalidConstruction, got %v", err)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Tuple
		normal   Tuple
		expected Tuple
	}{
		{"approaching at 45 degrees", NewVector(1, -1, 0), NewVector(0, 1, 0), NewVector(1, 1, 0)},
		{
			"off a slanted surface",
			NewVector(0, -1, 0),
			NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.normal); !got.ApproxEqual(tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
