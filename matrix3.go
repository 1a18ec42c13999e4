// Package matrix3 implements 3x3 matrices for 2D affine transforms in
// homogeneous coordinates.
//
// A Matrix is stored column-major: element (row, col) lives at index
// row + 3*col, so the translation of an affine transform is m[6], m[7].
// Methods on *Matrix modify the receiver and return it, so calls chain:
//
//	var m matrix3.Matrix
//	m.Identity().Translate(matrix3.Vec2{5, 7}).Rotate(math.Pi / 2)
package matrix3

import (
	"golang.org/x/image/math/f64"
)

// Version is the library version.
const Version = "0.1.1"

// Vec2 is a 2-element vector, a point or displacement in the plane.
type Vec2 = f64.Vec2

// Vec3 is a 3-element vector, a row or a column of a Matrix.
type Vec3 = f64.Vec3

// Matrix is a 3x3 matrix in column-major order.
//
// m[row + 3*col] is the element in the row'th row and col'th column.
// The zero value is the zero matrix, not the identity.
type Matrix [9]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// New returns a matrix holding values, or the identity if no values are
// given. It fails with ErrInvalidArgument unless zero or nine values are given.
func New(values ...float64) (*Matrix, error) {
	if len(values) == 0 {
		m := Identity()
		return &m, nil
	}
	return FromSlice(values)
}

// FromSlice returns a matrix holding the nine values of s.
func FromSlice(s []float64) (*Matrix, error) {
	if err := checkLen("FromSlice", s, len(Matrix{})); err != nil {
		return nil, err
	}
	var m Matrix
	copy(m[:], s)
	return &m, nil
}

// Copy sets m to src.
func (m *Matrix) Copy(src *Matrix) *Matrix {
	*m = *src
	return m
}

// CopyFrom sets m to the nine values of src. m is left unchanged on error.
func (m *Matrix) CopyFrom(src []float64) error {
	if err := checkLen("CopyFrom", src, len(m)); err != nil {
		return err
	}
	copy(m[:], src)
	return nil
}

// Zero sets every element of m to 0.
func (m *Matrix) Zero() *Matrix {
	*m = Matrix{}
	return m
}

// Identity sets m to the identity.
func (m *Matrix) Identity() *Matrix {
	*m = Identity()
	return m
}

// Get returns the i'th element of m in storage order.
func (m *Matrix) Get(i int) (float64, error) {
	if err := checkIndex("Get", i, len(m)); err != nil {
		return 0, err
	}
	return m[i], nil
}

// Set sets the i'th element of m in storage order.
func (m *Matrix) Set(i int, v float64) error {
	if err := checkIndex("Set", i, len(m)); err != nil {
		return err
	}
	m[i] = v
	return nil
}

// At returns the element in the given row and column.
func (m *Matrix) At(row, col int) (float64, error) {
	if err := checkCell("At", row, col); err != nil {
		return 0, err
	}
	return m[row+3*col], nil
}

// SetAt sets the element in the given row and column.
func (m *Matrix) SetAt(row, col int, v float64) error {
	if err := checkCell("SetAt", row, col); err != nil {
		return err
	}
	m[row+3*col] = v
	return nil
}

// Row returns a row of m.
func (m *Matrix) Row(row int) (Vec3, error) {
	if err := checkIndex("Row", row, 3); err != nil {
		return Vec3{}, err
	}
	return Vec3{m[row], m[row+3], m[row+6]}, nil
}

// SetRow sets a row of m.
func (m *Matrix) SetRow(row int, v Vec3) error {
	if err := checkIndex("SetRow", row, 3); err != nil {
		return err
	}
	m[row] = v[0]
	m[row+3] = v[1]
	m[row+6] = v[2]
	return nil
}

// Col returns a column of m.
func (m *Matrix) Col(col int) (Vec3, error) {
	if err := checkIndex("Col", col, 3); err != nil {
		return Vec3{}, err
	}
	return Vec3{m[3*col], m[3*col+1], m[3*col+2]}, nil
}

// SetCol sets a column of m.
func (m *Matrix) SetCol(col int, v Vec3) error {
	if err := checkIndex("SetCol", col, 3); err != nil {
		return err
	}
	m[3*col] = v[0]
	m[3*col+1] = v[1]
	m[3*col+2] = v[2]
	return nil
}
