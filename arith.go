package matrix3

import "math"

// Sum sets m to a + b.
func (m *Matrix) Sum(a, b *Matrix) *Matrix {
	for i := range m {
		m[i] = a[i] + b[i]
	}
	return m
}

// Diff sets m to a - b.
func (m *Matrix) Diff(a, b *Matrix) *Matrix {
	for i := range m {
		m[i] = a[i] - b[i]
	}
	return m
}

// Product sets m to the matrix product a * b.
// m may be a or b.
func (m *Matrix) Product(a, b *Matrix) *Matrix {
	var mn Matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			for k := 0; k < 3; k++ {
				mn[row+3*col] += a[row+3*k] * b[k+3*col]
			}
		}
	}
	*m = mn
	return m
}

// Add adds n to m.
func (m *Matrix) Add(n *Matrix) *Matrix { return m.Sum(m, n) }

// Sub subtracts n from m.
func (m *Matrix) Sub(n *Matrix) *Matrix { return m.Diff(m, n) }

// Mul sets m to m * n.
func (m *Matrix) Mul(n *Matrix) *Matrix { return m.Product(m, n) }

// Equal reports whether every element of m is within tol of the
// corresponding element of n.
func (m Matrix) Equal(n Matrix, tol float64) bool {
	for i := range m {
		if !(math.Abs(m[i]-n[i]) <= tol) {
			return false
		}
	}
	return true
}
