package matrix3

import "math"

// Rotation sets m to a rotation by angle radians about the origin,
// counter-clockwise for positive angles.
func (m *Matrix) Rotation(angle float64) *Matrix {
	sin, cos := math.Sincos(angle)
	*m = Matrix{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
	return m
}

// Rotate applies a rotation by angle radians to the linear part of m.
// The translation column and the bottom row are left as they are.
func (m *Matrix) Rotate(angle float64) *Matrix {
	sin, cos := math.Sincos(angle)
	m00, m10 := m[0], m[1]
	m01, m11 := m[3], m[4]

	m[0] = cos*m00 - sin*m10
	m[1] = sin*m00 + cos*m10
	m[3] = cos*m01 - sin*m11
	m[4] = sin*m01 + cos*m11
	return m
}

// Scaling sets m to a scale by v[0] along x and v[1] along y.
func (m *Matrix) Scaling(v Vec2) *Matrix {
	*m = Matrix{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, 1,
	}
	return m
}

// Scale multiplies column j of m by v[j].
func (m *Matrix) Scale(v Vec3) *Matrix {
	for col := 0; col < 3; col++ {
		m[3*col] *= v[col]
		m[3*col+1] *= v[col]
		m[3*col+2] *= v[col]
	}
	return m
}

// ScaleX multiplies the first column of m by x.
func (m *Matrix) ScaleX(x float64) *Matrix {
	m[0] *= x
	m[1] *= x
	m[2] *= x
	return m
}

// ScaleY multiplies the second column of m by y.
func (m *Matrix) ScaleY(y float64) *Matrix {
	m[3] *= y
	m[4] *= y
	m[5] *= y
	return m
}

// Translation sets m to a translation by v.
func (m *Matrix) Translation(v Vec2) *Matrix {
	*m = Matrix{
		1, 0, 0,
		0, 1, 0,
		v[0], v[1], 1,
	}
	return m
}

// Translate moves m by v in its own frame, so that m becomes
// m * Translation(v).
func (m *Matrix) Translate(v Vec2) *Matrix {
	m[6] += m[0]*v[0] + m[3]*v[1]
	m[7] += m[1]*v[0] + m[4]*v[1]
	return m
}

// TranslateX moves m by x along its own x axis.
func (m *Matrix) TranslateX(x float64) *Matrix {
	m[6] += m[0] * x
	m[7] += m[1] * x
	return m
}

// TranslateY moves m by y along its own y axis.
func (m *Matrix) TranslateY(y float64) *Matrix {
	m[6] += m[3] * y
	m[7] += m[4] * y
	return m
}

// Transpose transposes m.
func (m *Matrix) Transpose() *Matrix {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// Apply maps the point p through m, treating p as (x, y, 1).
func (m *Matrix) Apply(p Vec2) Vec2 {
	return Vec2{
		m[0]*p[0] + m[3]*p[1] + m[6],
		m[1]*p[0] + m[4]*p[1] + m[7],
	}
}
