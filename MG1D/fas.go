package MG1D

import (
	"fmt"
	"strings"

	"github.com/mgtools/gomg/utils"
)

// FAS is the full approximation storage scheme for unconstrained
// nonlinear problems.  It implements V-cycles and F-cycles over
// Hierarchy levels kcoarse,...,kfine.  The key smoother and coarse-level
// solver component is the pointwise NGS method Problem.RelaxPoint.  The
// coarse correction uses Problem.Apply for the nonlinear operator,
// RestrictVector for full-weighting restriction of iterates,
// RestrictFunctional for canonical restriction of linear functionals, and
// Prolong for prolongation.
type FAS struct {
	Hierarchy *Hierarchy
	Problem   Problem

	// MMS selects the manufactured-solution right-hand side instead of
	// the problem source term.
	MMS bool

	Coarse, Down, Up int // smoother sweep counts
	NIters           int // Newton iterations per pointwise relaxation

	Monitor, MonitorUpdate bool

	WU *WorkUnits
}

func NewFAS(hy *Hierarchy, prob Problem, mms bool) *FAS {
	return &FAS{
		Hierarchy: hy,
		Problem:   prob,
		MMS:       mms,
		Coarse:    1,
		Down:      1,
		Up:        1,
		NIters:    2,
		WU:        NewWorkUnits(hy.KCoarse, hy.KFine),
	}
}

// ResidualNorm is the L2 norm of r = ell - F(u) on the level k mesh.
func (fa *FAS) ResidualNorm(k int, u, ell utils.Vector) float64 {
	ml := fa.Hierarchy.Level(k)
	return ml.L2Norm(ell.Copy().Subtract(fa.Problem.Apply(ml.H, u)))
}

func (fa *FAS) printResidualNorm(s, k int, u, ell utils.Vector) {
	if fa.Monitor {
		fmt.Printf("%s%d: residual norm %.5e\n",
			strings.Repeat("  ", fa.Hierarchy.KFine+1-k), s, fa.ResidualNorm(k, u, ell))
	}
}

func (fa *FAS) printUpdateNorm(k int, du utils.Vector) {
	if fa.MonitorUpdate {
		fmt.Printf("     %scoarse update norm %.5e\n",
			strings.Repeat("  ", fa.Hierarchy.KFine+1-k), fa.Hierarchy.Level(k-1).L2Norm(du))
	}
}

// RHS computes the right-hand-side functional on level k from the
// governing source term (or the manufactured source under MMS).
func (fa *FAS) RHS(k int) utils.Vector {
	g := fa.Problem.Source
	if fa.MMS {
		g = func(x float64) float64 {
			_, src := fa.Problem.ManufacturedSolution(x)
			return src
		}
	}
	return fa.Hierarchy.Level(k).LinearFunctional(g)
}

// NGSSweep does one in-place nonlinear Gauss-Seidel sweep on u over the
// interior nodes p=1,...,M-1 in either forward or backward order.
func (fa *FAS) NGSSweep(k int, u, ell utils.Vector, forward bool) {
	ml := fa.Hierarchy.Level(k)
	if forward {
		for p := 1; p < ml.M; p++ {
			fa.Problem.RelaxPoint(ml.H, u, ell, p, fa.NIters)
		}
	} else {
		for p := ml.M - 1; p > 0; p-- {
			fa.Problem.RelaxPoint(ml.H, u, ell, p, fa.NIters)
		}
	}
}

// coarseSolve runs Coarse NGS sweeps in place on u, an inexact solve.
func (fa *FAS) coarseSolve(u, ell utils.Vector) {
	for q := 0; q < fa.Coarse; q++ {
		fa.NGSSweep(fa.Hierarchy.KCoarse, u, ell, true)
	}
	fa.WU.Add(fa.Hierarchy.KCoarse, float64(fa.Coarse))
}

// VCycle runs one FAS V-cycle for levels k down to kcoarse, acting in
// place on the iterate u with right-hand-side functional ell.
func (fa *FAS) VCycle(k int, u, ell utils.Vector) {
	var (
		hy = fa.Hierarchy
	)
	if k == hy.KCoarse {
		fa.coarseSolve(u, ell)
		return
	}
	if k < hy.KCoarse || k > hy.KFine {
		panic(LevelRangeError{Level: k, Op: "V-cycle level outside hierarchy range"})
	}
	ml := hy.Level(k)
	// pre-smooth on the fine mesh
	for q := 0; q < fa.Down; q++ {
		fa.NGSSweep(k, u, ell, true)
	}
	fa.WU.Add(k, float64(fa.Down))
	// restrict down using  ell = R'(f^h - F^h(u^h)) + F^2h(R u^h)
	rfine := ell.Copy().Subtract(fa.Problem.Apply(ml.H, u))
	Ru := ml.RestrictVector(u)
	coarseEll := ml.RestrictFunctional(rfine).Add(fa.Problem.Apply(hy.Level(k - 1).H, Ru))
	// recurse
	uCoarse := Ru.Copy()
	fa.VCycle(k-1, uCoarse, coarseEll)
	du := uCoarse.Subtract(Ru)
	fa.printUpdateNorm(k, du)
	// correct by prolongation of the update:  u <- u + P(u^2h - R u^h)
	u.Add(ml.Prolong(du))
	// post-smooth backward to cancel the directional bias
	for q := 0; q < fa.Up; q++ {
		fa.NGSSweep(k, u, ell, false)
	}
	fa.WU.Add(k, float64(fa.Up))
}

// enhancedProlong prolongs w from level k-1 to level k and then corrects
// the newly introduced odd-indexed nodes with pointwise NGS.  Costs half
// a work unit since only half the nodes are touched.
func (fa *FAS) enhancedProlong(k int, w, ell utils.Vector) utils.Vector {
	ml := fa.Hierarchy.Level(k)
	y := ml.Prolong(w)
	for p := 1; p < ml.M; p += 2 {
		fa.Problem.RelaxPoint(ml.H, y, ell, p, fa.NIters)
	}
	return y
}

// FCycle runs nested iteration from the coarsest level: an inexact
// coarse solve, then for each finer level an initial iterate by plain or
// enhanced prolongation followed by one V-cycle per intermediate level
// and cycles V-cycles on the finest level.  Right-hand sides are
// recomputed fresh on each level from the source term.
func (fa *FAS) FCycle(cycles int, ep bool) utils.Vector {
	var (
		hy = fa.Hierarchy
		u  = hy.Coarsest().Zeros()
	)
	ell := fa.RHS(hy.KCoarse)
	fa.printResidualNorm(0, hy.KCoarse, u, ell)
	fa.coarseSolve(u, ell)
	fa.printResidualNorm(1, hy.KCoarse, u, ell)
	for k := hy.KCoarse + 1; k <= hy.KFine; k++ {
		ell = fa.RHS(k)
		if ep {
			u = fa.enhancedProlong(k, u, ell)
			fa.WU.Add(k, 0.5)
		} else {
			u = hy.Level(k).Prolong(u)
		}
		Z := 1
		if k == hy.KFine {
			Z = cycles
		}
		var s int
		for s = 0; s < Z; s++ {
			fa.printResidualNorm(s, k, u, ell)
			fa.VCycle(k, u, ell)
		}
		fa.printResidualNorm(s, k, u, ell)
	}
	return u
}

// Solve iterates V-cycles on the finest level from a zero initial
// iterate until the residual norm is reduced by rtol relative to its
// initial value, or maxCycles is reached.  Returns the iterate and the
// number of cycles performed.
func (fa *FAS) Solve(maxCycles int, rtol float64) (u utils.Vector, its int) {
	var (
		hy     = fa.Hierarchy
		ell    = fa.RHS(hy.KFine)
		rnorm0 float64
	)
	u = hy.Finest().Zeros()
	for s := 0; s < maxCycles; s++ {
		rnorm := fa.ResidualNorm(hy.KFine, u, ell)
		if fa.Monitor {
			fmt.Printf("%d: residual norm %.5e\n", s, rnorm)
		}
		if s == 0 {
			if rnorm == 0 {
				return
			}
			rnorm0 = rnorm
		} else if rnorm <= rtol*rnorm0 {
			return
		}
		fa.VCycle(hy.KFine, u, ell)
		its = s + 1
	}
	return
}
