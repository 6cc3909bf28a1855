package solarsystem

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestR1R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r3 := R3(x)
	// Test items equal to 1.
	if r1.At(0, 0) != r3.At(2, 2) || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R3.At(2, 2) = 1\n")
	}
	// Test items equal to 0.
	if r1.At(0, 1) != r1.At(0, 2) || r1.At(1, 0) != r1.At(2, 0) || r1.At(0, 1) != 0 {
		t.Fatal("misplaced zeros in R1\n")
	}
	if r3.At(2, 0) != r3.At(2, 1) || r3.At(0, 2) != r3.At(1, 2) || r3.At(1, 2) != 0 {
		t.Fatal("misplaced zeros in R3\n")
	}
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("expected R1 cosines misplaced\n")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("expected R1 sines misplaced\n")
	}
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced\n")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced\n")
	}
}

func TestRotationInverse(t *testing.T) {
	var id mat.Dense
	id.Mul(R1(0.7), R1(-0.7))
	if !mat.EqualApprox(&id, mat.NewDiagDense(3, []float64{1, 1, 1}), 1e-15) {
		t.Fatalf("R1(x)·R1(-x) != I\n%v", mat.Formatted(&id))
	}
	id.Mul(R3(1.3), R3(-1.3))
	if !mat.EqualApprox(&id, mat.NewDiagDense(3, []float64{1, 1, 1}), 1e-15) {
		t.Fatalf("R3(x)·R3(-x) != I\n%v", mat.Formatted(&id))
	}
}

func TestPQW2Ecliptic(t *testing.T) {
	for _, tc := range []struct{ N, i, u, r float64 }{
		{0, 0, 0, 1},
		{Deg2rad(48.3313), Deg2rad(7.0047), Deg2rad(29.1241 + 65), 0.387098},
		{Deg2rad(113.6634), Deg2rad(2.4886), Deg2rad(339.3939 - 12), 9.55475},
		{Deg2rad(110.30347), Deg2rad(17.14175), Deg2rad(224.06676), 39.48168677},
	} {
		sN, cN := math.Sincos(tc.N)
		si, ci := math.Sincos(tc.i)
		su, cu := math.Sincos(tc.u)
		exp := []float64{
			tc.r * (cN*cu - sN*su*ci),
			tc.r * (sN*cu + cN*su*ci),
			tc.r * (su * si),
		}
		got := MxV33(PQW2Ecliptic(tc.N, tc.i, tc.u), []float64{tc.r, 0, 0})
		if !floats.EqualApprox(exp, got, 1e-12) {
			t.Fatalf("rotation of %+v: expected %v got %v", tc, exp, got)
		}
	}
}

func TestEcliptic2Render(t *testing.T) {
	v := Ecliptic2Render([]float64{1, 2, 3})
	if v != (Vec3{1, 3, -2}) {
		t.Fatalf("expected (1, 3, -2) got %+v", v)
	}
	if Ecliptic2Render([]float64{1, 2, 3}).Norm() != math.Sqrt(14) {
		t.Fatal("conversion does not preserve the norm")
	}
}
