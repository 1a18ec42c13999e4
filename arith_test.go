package matrix3

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

var (
	ma = Matrix{2, -1, 0.5, 3, 4, -2, 1, 0, 7}
	mb = Matrix{-3, 1.5, 2, 0, 1, 4, 5, -6, 1}
	mc = Matrix{1, 1, 0, 0, 2, 3, -1, 0.25, 2}
)

func TestMatrix_Product(t *testing.T) {
	testCases := map[string]struct {
		a, b Matrix
		want Matrix
	}{
		"identity": {
			a:    Identity(),
			b:    Identity(),
			want: Identity(),
		},
		"scale then translate": {
			a:    Matrix{2, 0, 0, 0, 3, 0, 0, 0, 1},
			b:    Matrix{1, 0, 0, 0, 1, 0, 5, 7, 1},
			want: Matrix{2, 0, 0, 0, 3, 0, 10, 21, 1},
		},
		"general": {
			a: seq,
			b: Matrix{1, 0, 0, 1, 1, 0, 0, 0, 2},
			// columns of a*b are a*e0, a*(e0+e1), 2*a*e2
			want: Matrix{1, 2, 3, 5, 7, 9, 14, 16, 18},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var got Matrix
			got.Product(&tc.a, &tc.b)

			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Error("product did not match expectation:", diff)
			}
		})
	}
}

func TestMatrix_Product_identityLaw(t *testing.T) {
	id := Identity()
	for _, m := range []Matrix{ma, mb, mc, seq} {
		var left, right Matrix
		left.Product(&id, &m)
		right.Product(&m, &id)

		if diff := cmp.Diff(left, m); diff != "" {
			t.Error("I*M != M:", diff)
		}
		if diff := cmp.Diff(right, m); diff != "" {
			t.Error("M*I != M:", diff)
		}
	}
}

func TestMatrix_Product_associative(t *testing.T) {
	var ab, bc, abc1, abc2 Matrix
	ab.Product(&ma, &mb)
	abc1.Product(&ab, &mc)
	bc.Product(&mb, &mc)
	abc2.Product(&ma, &bc)

	if diff := cmp.Diff(abc1, abc2, approx); diff != "" {
		t.Error("(AB)C != A(BC):", diff)
	}
}

func TestMatrix_Product_aliasing(t *testing.T) {
	var want Matrix
	want.Product(&ma, &mb)

	testCases := map[string]func() Matrix{
		"dest is a": func() Matrix {
			m := ma
			return *m.Product(&m, &mb)
		},
		"dest is b": func() Matrix {
			m := mb
			return *m.Product(&ma, &m)
		},
		"Mul": func() Matrix {
			m := ma
			return *m.Mul(&mb)
		},
	}
	for name, f := range testCases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(f(), want); diff != "" {
				t.Error("aliased product did not match expectation:", diff)
			}
		})
	}

	var sq Matrix
	sq.Product(&ma, &ma)
	m := ma
	if diff := cmp.Diff(*m.Product(&m, &m), sq); diff != "" {
		t.Error("squaring in place did not match expectation:", diff)
	}
}

func TestMatrix_SumDiff(t *testing.T) {
	var s Matrix
	s.Sum(&seq, &seq)
	if diff := cmp.Diff(s, Matrix{2, 4, 6, 8, 10, 12, 14, 16, 18}); diff != "" {
		t.Error("Sum did not match expectation:", diff)
	}

	var d Matrix
	d.Diff(s.Sum(&ma, &mb), &mb)
	if diff := cmp.Diff(d, ma, approx); diff != "" {
		t.Error("(A+B)-B != A:", diff)
	}

	m := ma
	m.Add(&mb).Sub(&mb)
	if diff := cmp.Diff(m, ma, approx); diff != "" {
		t.Error("Add then Sub did not restore the matrix:", diff)
	}

	m = seq
	m.Sub(&m)
	if diff := cmp.Diff(m, Matrix{}); diff != "" {
		t.Error("M-M is not zero:", diff)
	}
}

func TestMatrix_Equal(t *testing.T) {
	testCases := map[string]struct {
		a, b Matrix
		tol  float64
		want bool
	}{
		"same":          {a: seq, b: seq, want: true},
		"within tol":    {a: seq, b: Matrix{1, 2, 3, 4, 5, 6, 7, 8, 9.001}, tol: 0.01, want: true},
		"outside tol":   {a: seq, b: Matrix{1, 2, 3, 4, 5, 6, 7, 8, 9.1}, tol: 0.01, want: false},
		"NaN never eq":  {a: Matrix{math.NaN()}, b: Matrix{math.NaN()}, tol: 1, want: false},
		"zero vs ident": {a: Matrix{}, b: Identity(), want: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b, tc.tol); got != tc.want {
				t.Errorf("Equal() = %v, want %v", got, tc.want)
			}
		})
	}
}
