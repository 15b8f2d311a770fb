package MG1D_test

import (
	"math"
	"testing"

	"github.com/mgtools/gomg/MG1D"
	"github.com/mgtools/gomg/model_problems/Obstacle1D"
	"github.com/mgtools/gomg/utils"
	"github.com/stretchr/testify/assert"
)

// feasible checks u >= phi - tol at every node of the finest mesh.
func feasible(hy *MG1D.Hierarchy, prob *Obstacle1D.PGSPoisson, u utils.Vector) bool {
	mesh := hy.Finest()
	xx := mesh.Coordinates()
	for p := 0; p < u.Len(); p++ {
		if u.AtVec(p) < prob.Obstacle(xx.AtVec(p))-1.e-10 {
			return false
		}
	}
	return true
}

func errNorm(hy *MG1D.Hierarchy, prob *Obstacle1D.PGSPoisson, res MG1D.SolveResult) float64 {
	mesh := hy.Finest()
	uex := mesh.Coordinates().Apply(prob.Exact)
	return mesh.L2Norm(res.U.Copy().Subtract(uex))
}

func TestMCDIcelike(t *testing.T) {
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE)
	hy := MG1D.NewHierarchy(0, 6)
	mc := MG1D.NewMCD(hy, prob)
	res := mc.Solve(100, 1.e-3, false, false)
	assert.True(t, res.Cycles > 0)
	// feasibility throughout, and zero infeasibles for omega <= 1
	assert.True(t, feasible(hy, prob, res.U))
	assert.Equal(t, 0, res.Infeas)
	// converges to the piecewise-analytic exact solution
	assert.True(t, errNorm(hy, prob, res) < 0.05)
	assert.False(t, math.IsNaN(res.ErrNorm))
}

func TestMCDParabola(t *testing.T) {
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.PARABOLA)
	hy := MG1D.NewHierarchy(0, 6)
	mc := MG1D.NewMCD(hy, prob)
	res := mc.Solve(100, 1.e-3, false, false)
	assert.True(t, feasible(hy, prob, res.U))
	assert.Equal(t, 0, res.Infeas)
	assert.True(t, errNorm(hy, prob, res) < 0.05)
}

func TestMCDLowUnconstrained(t *testing.T) {
	// the obstacle never binds, so the solve reproduces the plain
	// Poisson solution x(x-1), which the stencil resolves exactly
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.LOW)
	hy := MG1D.NewHierarchy(0, 6)
	mc := MG1D.NewMCD(hy, prob)
	res := mc.Solve(100, 1.e-4, false, false)
	assert.Equal(t, 0, res.Infeas)
	assert.True(t, errNorm(hy, prob, res) < 1.e-2)
}

func TestMCDSymmetricUpSweeps(t *testing.T) {
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE)
	hy := MG1D.NewHierarchy(0, 5)
	mc := MG1D.NewMCD(hy, prob)
	mc.Up = 1
	mc.Symmetric = true
	res := mc.Solve(100, 1.e-3, false, false)
	assert.True(t, feasible(hy, prob, res.U))
	assert.Equal(t, 0, res.Infeas)
	assert.True(t, errNorm(hy, prob, res) < 0.05)
}

func TestMCDNestedIteration(t *testing.T) {
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE)
	hy := MG1D.NewHierarchy(0, 6)

	flat := MG1D.NewMCD(hy, prob).Solve(100, 1.e-3, false, false)
	nested := MG1D.NewMCD(hy, prob).SolveNested(2, false, 100, 1.e-3, false, false)
	cascadic := MG1D.NewMCD(hy, prob).SolveNested(1, true, 100, 1.e-3, false, false)

	eFlat := errNorm(hy, prob, flat)
	eNested := errNorm(hy, prob, nested)
	eCascadic := errNorm(hy, prob, cascadic)
	assert.True(t, eFlat < 0.05)
	assert.True(t, eNested < 0.05)
	assert.True(t, eCascadic < 0.05)
	assert.True(t, feasible(hy, prob, nested.U))
}

func TestMCDVCycleZero(t *testing.T) {
	// zero residual and zero defect obstacle admit the zero correction
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE)
	hy := MG1D.NewHierarchy(0, 4)
	mc := MG1D.NewMCD(hy, prob)
	v, infeas := mc.VCycle(hy.KFine, hy.Finest().Zeros(), hy.Finest().Zeros())
	assert.Equal(t, 0, infeas)
	assert.True(t, hy.Finest().L2Norm(v) < 1.e-14)
}

func TestMCDWorkUnits(t *testing.T) {
	// V(1,0): one PGS sweep on every level per cycle
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE)
	hy := MG1D.NewHierarchy(0, 3)
	mc := MG1D.NewMCD(hy, prob)
	mesh := hy.Finest()
	phi := mesh.Coordinates().Apply(prob.Obstacle)
	u := phi.Copy().ElMax(mesh.Zeros())
	chi := phi.Copy().Subtract(u)
	r := prob.Residual(mesh, u, mesh.LinearFunctional(prob.Source))
	mc.VCycle(hy.KFine, r, chi)
	want := 0.0
	for k := 0; k <= 3; k++ {
		want += math.Pow(2, -float64(3-k))
	}
	assert.True(t, math.Abs(mc.WU.Total()-want) < 1.e-14)
}

func TestMCDPGSOnly(t *testing.T) {
	// single-level PGS converges on a small mesh
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE)
	hy := MG1D.NewHierarchy(0, 3)
	mc := MG1D.NewMCD(hy, prob)
	res := mc.SolvePGSOnly(2000, 1.e-4, false, false)
	assert.True(t, feasible(hy, prob, res.U))
	assert.True(t, errNorm(hy, prob, res) < 0.1)
}

func TestMCDErrTolStopping(t *testing.T) {
	prob := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE)
	hy := MG1D.NewHierarchy(0, 6)
	{
		// a huge tolerance is met by the initial iterate, so no cycles run
		mc := MG1D.NewMCD(hy, prob)
		mc.ErrTol = 10.0
		res := mc.Solve(100, 1.e-10, false, false)
		assert.Equal(t, 0, res.Cycles)
	}
	{
		mc := MG1D.NewMCD(hy, prob)
		mc.ErrTol = 0.05
		res := mc.Solve(100, 1.e-10, false, false)
		assert.True(t, res.ErrNorm <= 0.05)
	}
}

func TestMCDPerturbedObstacle(t *testing.T) {
	// perturbation disables the exact solution but the solve stays
	// feasible; the same seed reproduces the same answer
	probA := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE).Perturb(1, 30, 1.0)
	probB := Obstacle1D.NewPGSPoisson(Obstacle1D.ICELIKE).Perturb(1, 30, 1.0)
	assert.False(t, probA.ExactAvailable())
	hy := MG1D.NewHierarchy(0, 5)
	resA := MG1D.NewMCD(hy, probA).Solve(100, 1.e-3, false, false)
	resB := MG1D.NewMCD(hy, probB).Solve(100, 1.e-3, false, false)
	assert.True(t, feasible(hy, probA, resA.U))
	assert.True(t, math.IsNaN(resA.ErrNorm))
	for p := 0; p < resA.U.Len(); p++ {
		assert.Equal(t, resA.U.AtVec(p), resB.U.AtVec(p))
	}
}
