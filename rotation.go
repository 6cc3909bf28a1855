package solarsystem

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v []float64) []float64 {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(len(v), v))
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

// PQW2Ecliptic returns the rotation from the perifocal frame to the ecliptic frame,
// i.e. R3(-Ω)·R1(-i)·R3(-u) where u is the argument of latitude.
func PQW2Ecliptic(Ω, i, u float64) *mat.Dense {
	var tmp, rot mat.Dense
	tmp.Mul(R3(-Ω), R1(-i))
	rot.Mul(&tmp, R3(-u))
	return &rot
}

// Ecliptic2Render converts an ecliptic vector into the right handed rendering frame
// where Y is up: the ecliptic Z becomes Y, and the ecliptic Y is flipped into Z.
func Ecliptic2Render(v []float64) Vec3 {
	return Vec3{v[0], v[2], -v[1]}
}
