package Obstacle1D

import (
	"math"
	"testing"

	"github.com/mgtools/gomg/MG1D"
	"github.com/mgtools/gomg/utils"
	"github.com/stretchr/testify/assert"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestCaseNames(t *testing.T) {
	for _, c := range []CaseType{ICELIKE, PARABOLA, LOW} {
		back, ok := CaseFromName(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, back)
	}
	_, ok := CaseFromName("bogus")
	assert.False(t, ok)
}

func TestExactContinuity(t *testing.T) {
	{
		// the icelike exact solution is continuous across the free
		// boundaries at x = 0.1, 0.9 and the source jumps at x = 0.2, 0.8
		op := NewPGSPoisson(ICELIKE)
		for _, x := range []float64{0.1, 0.2, 0.8, 0.9} {
			eps := 1.e-8
			assert.True(t, near(op.Exact(x-eps), op.Exact(x+eps), 1.e-6))
		}
		// contact region: solution coincides with the obstacle
		for _, x := range []float64{0.02, 0.05, 0.95, 0.98} {
			assert.Equal(t, op.Obstacle(x), op.Exact(x))
		}
		// off the obstacle in the interior
		assert.True(t, op.Exact(0.5) > op.Obstacle(0.5))
	}
	{
		// parabola: free boundary at a = 1/3, symmetric about x = 1/2
		op := NewPGSPoisson(PARABOLA)
		a := 1.0 / 3.0
		eps := 1.e-8
		assert.True(t, near(op.Exact(a-eps), op.Exact(a+eps), 1.e-6))
		for _, x := range []float64{0.1, 0.25, 0.4} {
			assert.True(t, near(op.Exact(x), op.Exact(1-x), 1.e-12))
		}
		// in contact on [a, 1-a]
		assert.Equal(t, op.Obstacle(0.5), op.Exact(0.5))
	}
	{
		// low obstacle never binds
		op := NewPGSPoisson(LOW)
		for _, x := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			assert.True(t, op.Exact(x) > op.Obstacle(x))
			assert.Equal(t, x*(x-1), op.Exact(x))
		}
	}
}

func TestExactSolvesPDEWhereInactive(t *testing.T) {
	// finite differences of the exact solutions recover -u'' = f away
	// from contact and free boundaries
	d2 := func(f func(float64) float64, x, h float64) float64 {
		return -(f(x+h) - 2*f(x) + f(x-h)) / (h * h)
	}
	h := 1.e-4
	{
		op := NewPGSPoisson(ICELIKE)
		for _, x := range []float64{0.15, 0.5, 0.85} {
			assert.True(t, near(d2(op.Exact, x, h), op.Source(x), 1.e-4))
		}
	}
	{
		op := NewPGSPoisson(PARABOLA)
		for _, x := range []float64{0.1, 0.25, 0.8} {
			assert.True(t, near(d2(op.Exact, x, h), op.Source(x), 1.e-4))
		}
	}
}

func TestProjectedSweepFeasibility(t *testing.T) {
	var (
		op  = NewPGSPoisson(ICELIKE)
		ml  = MG1D.NewMeshLevel(4)
		xx  = ml.Coordinates()
		phi = xx.Copy().Apply(op.Obstacle)
		ell = ml.LinearFunctional(op.Source)
	)
	{
		// a feasible start stays feasible and counts no repairs
		v := phi.Copy().ElMax(ml.Zeros())
		n := op.ProjectedSweep(ml, v, ell, phi, 1.0, true)
		assert.Equal(t, 0, n)
		for p := 0; p <= ml.M; p++ {
			assert.True(t, v.AtVec(p) >= phi.AtVec(p)-utils.NODETOL)
		}
		// backward sweeps preserve feasibility too
		n = op.ProjectedSweep(ml, v, ell, phi, 1.0, false)
		assert.Equal(t, 0, n)
		for p := 1; p < ml.M; p++ {
			assert.True(t, v.AtVec(p) >= phi.AtVec(p))
		}
	}
	{
		// a deliberately infeasible start is repaired and every violated
		// node counted
		v := phi.Copy().AddScalar(-1)
		v.SetVec(0, 0)
		v.SetVec(ml.M, 0)
		n := op.ProjectedSweep(ml, v, ell, phi, 1.0, true)
		assert.Equal(t, ml.M-1, n)
		for p := 1; p < ml.M; p++ {
			assert.True(t, v.AtVec(p) >= phi.AtVec(p))
		}
	}
	{
		// overrelaxation can undershoot but the projection clamps, so the
		// sweep still returns a feasible iterate
		v := phi.Copy().ElMax(ml.Zeros())
		op.ProjectedSweep(ml, v, ell, phi, 1.5, true)
		for p := 1; p < ml.M; p++ {
			assert.True(t, v.AtVec(p) >= phi.AtVec(p))
		}
	}
}

func TestProjectedSweepSolvesStencil(t *testing.T) {
	// with the obstacle far below, repeated sweeps converge to the
	// unconstrained Poisson solution, for which the stencil is exact
	var (
		op  = NewPGSPoisson(LOW)
		ml  = MG1D.NewMeshLevel(3)
		xx  = ml.Coordinates()
		phi = xx.Copy().Apply(op.Obstacle)
		ell = ml.LinearFunctional(op.Source)
		v   = ml.Zeros()
	)
	for i := 0; i < 500; i++ {
		op.ProjectedSweep(ml, v, ell, phi, 1.0, true)
	}
	uex := xx.Copy().Apply(op.Exact)
	assert.True(t, ml.L2Norm(v.Copy().Subtract(uex)) < 1.e-6)
	// residual functional is near zero at convergence
	r := op.Residual(ml, v, ell)
	assert.True(t, ml.L2Norm(r) < 1.e-6)
}

func TestPerturb(t *testing.T) {
	opA := NewPGSPoisson(ICELIKE).Perturb(7, 20, 1.0)
	opB := NewPGSPoisson(ICELIKE).Perturb(7, 20, 1.0)
	opC := NewPGSPoisson(ICELIKE).Perturb(8, 20, 1.0)
	assert.False(t, opA.ExactAvailable())
	// perturbation vanishes at the boundary
	assert.True(t, near(opA.Obstacle(0), 0, 1.e-12))
	assert.True(t, near(opA.Obstacle(1), 0, 1.e-12))
	// deterministic per seed, different across seeds
	same, diff := true, false
	for _, x := range []float64{0.1, 0.33, 0.77} {
		same = same && opA.Obstacle(x) == opB.Obstacle(x)
		diff = diff || opA.Obstacle(x) != opC.Obstacle(x)
	}
	assert.True(t, same)
	assert.True(t, diff)
}

func TestExactAvailable(t *testing.T) {
	assert.True(t, NewPGSPoisson(ICELIKE).ExactAvailable())
	op := NewPGSPoisson(ICELIKE)
	op.FScale = 2.0
	assert.False(t, op.ExactAvailable())
	op2 := NewPGSPoisson(PARABOLA)
	op2.ParabolaY = -2.0
	assert.False(t, op2.ExactAvailable())
	assert.True(t, NewPGSPoisson(LOW).ExactAvailable())
}
