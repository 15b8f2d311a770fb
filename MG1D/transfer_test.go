package MG1D

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mgtools/gomg/utils"
	"github.com/stretchr/testify/assert"
)

// interior fills the interior nodes of a new vector on ml with values
// from rnd, leaving zero boundary values.
func interior(ml *MeshLevel, rnd *rand.Rand) utils.Vector {
	v := ml.Zeros()
	for p := 1; p < ml.M; p++ {
		v.SetVec(p, rnd.NormFloat64())
	}
	return v
}

func TestProlong(t *testing.T) {
	{
		// linear interpolation reproduces linear functions exactly
		ml := NewMeshLevel(3)
		vc := utils.NewVectorLinspace(ml.Mcoarser+1, 0, 1).Scale(2).AddScalar(1)
		y := ml.Prolong(vc)
		want := utils.NewVectorLinspace(ml.N(), 0, 1).Scale(2).AddScalar(1)
		for p := 0; p <= ml.M; p++ {
			assert.True(t, near(y.AtVec(p), want.AtVec(p), 1.e-14))
		}
	}
	{
		ml := NewMeshLevel(0)
		assert.Panics(t, func() { ml.Prolong(utils.NewVector(2)) })
	}
	{
		ml := NewMeshLevel(2)
		assert.Panics(t, func() { ml.Prolong(ml.Zeros()) }) // wrong (fine) length
	}
}

func TestRestrictConstants(t *testing.T) {
	// full-weighting restriction of the prolongation of a constant
	// reproduces the constant exactly, including the blended boundary
	for k := 1; k < 6; k++ {
		ml := NewMeshLevel(k)
		c := utils.NewVectorConstant(ml.Mcoarser+1, 3.5)
		back := ml.RestrictVector(ml.Prolong(c))
		for q := 0; q <= ml.Mcoarser; q++ {
			assert.True(t, near(back.AtVec(q), 3.5, 1.e-14))
		}
	}
	// canonical restriction of the functional of a constant source is
	// the coarse functional of the same source: the stencil weights sum
	// to 2 while the spacing doubles
	for k := 1; k < 6; k++ {
		ml, mlc := NewMeshLevel(k), NewMeshLevel(k-1)
		one := func(x float64) float64 { return 1 }
		y := ml.RestrictFunctional(ml.LinearFunctional(one))
		want := mlc.LinearFunctional(one)
		for q := 0; q <= mlc.M; q++ {
			assert.True(t, near(y.AtVec(q), want.AtVec(q), 1.e-14))
		}
	}
}

func TestRestrictFunctionalAdjoint(t *testing.T) {
	// canonical restriction is the exact adjoint of prolongation:
	// <R'v, u>_{k-1} = <v, P u>_k for all u, v with zero boundary values
	rnd := rand.New(rand.NewSource(42))
	for k := 1; k < 7; k++ {
		ml := NewMeshLevel(k)
		mlc := NewMeshLevel(k - 1)
		for trial := 0; trial < 5; trial++ {
			u := interior(mlc, rnd)
			v := interior(ml, rnd)
			lhs := ml.RestrictFunctional(v).Dot(u)
			rhs := v.Dot(ml.Prolong(u))
			assert.True(t, near(lhs, rhs, 1.e-12*(1+math.Abs(lhs))))
		}
	}
}

func TestMonotoneRestrict(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for k := 1; k < 6; k++ {
		ml := NewMeshLevel(k)
		v := ml.Zeros().Apply(func(float64) float64 { return rnd.NormFloat64() })
		y := ml.MonotoneRestrict(v)
		// each coarse value dominates every fine value contributing to it
		assert.True(t, y.AtVec(0) >= v.AtVec(0) && y.AtVec(0) >= v.AtVec(1))
		for q := 1; q < ml.Mcoarser; q++ {
			m := math.Max(v.AtVec(2*q-1), math.Max(v.AtVec(2*q), v.AtVec(2*q+1)))
			assert.Equal(t, m, y.AtVec(q))
		}
		mq := ml.Mcoarser
		assert.True(t, y.AtVec(mq) >= v.AtVec(ml.M-1) && y.AtVec(mq) >= v.AtVec(ml.M))
	}
}

func TestRestrictVectorZeroBoundary(t *testing.T) {
	ml := NewMeshLevel(3)
	v := utils.NewVectorConstant(ml.N(), 1)
	y := ml.RestrictVectorZero(v)
	assert.Equal(t, 0., y.AtVec(0))
	assert.Equal(t, 0., y.AtVec(ml.Mcoarser))
	for q := 1; q < ml.Mcoarser; q++ {
		assert.True(t, near(y.AtVec(q), 1, 1.e-14))
	}
}

func TestStiffness(t *testing.T) {
	// the assembled operator matches the stencil evaluation
	rnd := rand.New(rand.NewSource(3))
	ml := NewMeshLevel(4)
	u := interior(ml, rnd)
	au := ml.ApplyOperator(u)
	assert.Equal(t, 0., au.AtVec(0))
	assert.Equal(t, 0., au.AtVec(ml.M))
	for p := 1; p < ml.M; p++ {
		want := (2*u.AtVec(p) - u.AtVec(p-1) - u.AtVec(p+1)) / ml.H
		assert.True(t, near(au.AtVec(p), want, 1.e-12))
	}
}
