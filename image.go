package matrix3

import "golang.org/x/image/math/f64"

// The f64 matrix types are row-major, Matrix is column-major, so every
// conversion below transposes the storage order.

// Aff3 returns the affine part of m, for use with the
// golang.org/x/image/draw Transformer. The bottom row of m is dropped.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
	}
}

// FromAff3 returns the matrix of the affine transform a.
func FromAff3(a f64.Aff3) Matrix {
	return Matrix{
		a[0], a[3], 0,
		a[1], a[4], 0,
		a[2], a[5], 1,
	}
}

// Mat3 returns m in row-major order.
func (m Matrix) Mat3() f64.Mat3 {
	return f64.Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// FromMat3 returns the matrix stored row-major in a.
func FromMat3(a f64.Mat3) Matrix {
	return Matrix{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}
