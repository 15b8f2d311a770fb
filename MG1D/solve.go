package MG1D

import (
	"math"

	"github.com/mgtools/gomg/utils"
)

// SolveResult holds the outcome of an obstacle solve.
type SolveResult struct {
	U       utils.Vector
	Cycles  int
	Infeas  int
	IRNorm  float64
	ErrNorm float64 // NaN when no exact solution is available
}

// data evaluates the discrete obstacle and source functional on level k.
func (mc *MCD) data(k int) (phi, ell utils.Vector) {
	ml := mc.Hierarchy.Level(k)
	phi = ml.Coordinates().Apply(mc.Problem.Obstacle)
	ell = ml.LinearFunctional(mc.Problem.Source)
	return
}

func (mc *MCD) exactOn(k int) *utils.Vector {
	if !mc.Problem.ExactAvailable() {
		return nil
	}
	ml := mc.Hierarchy.Level(k)
	uex := ml.Coordinates().Apply(mc.Problem.Exact)
	return &uex
}

// iterate runs constraint-decomposition cycles on level k from the
// feasible iterate u until the inactive-residual norm drops below irtol
// of its initial value or cycleMax is reached.
func (mc *MCD) iterate(k, cycleMax int, irtol float64, u, phi, ell utils.Vector,
	mon *ObstacleMonitor, indent int) (its, infeas int, irnorm, errnorm float64) {
	var (
		irnorm0 float64
		uex     = mc.exactOn(k)
	)
	for s := 0; s < cycleMax; s++ {
		irnorm, errnorm = mon.IRErr(u, ell, phi, uex, indent)
		if mc.ErrTol > 0 && uex != nil && errnorm <= mc.ErrTol {
			return
		}
		if s == 0 {
			if irnorm == 0 {
				return
			}
			irnorm0 = irnorm
		} else if irnorm <= irtol*irnorm0 {
			return
		}
		// defect obstacle and base residual for this cycle
		chi := phi.Copy().Subtract(u)
		r := mc.Problem.Residual(mc.Hierarchy.Level(k), u, ell)
		v, inf := mc.VCycle(k, r, chi)
		u.Add(v)
		infeas += inf
		its = s + 1
	}
	irnorm, errnorm = mon.IRErr(u, ell, phi, uex, indent)
	return
}

// Solve runs constraint-decomposition cycles on the finest level from a
// feasible initial iterate max(phi,0) until the inactive-residual norm
// is reduced by irtol, or cycleMax cycles.
func (mc *MCD) Solve(cycleMax int, irtol float64, monitor, monitorErr bool) SolveResult {
	var (
		hy       = mc.Hierarchy
		phi, ell = mc.data(hy.KFine)
	)
	u := phi.Copy().ElMax(hy.Finest().Zeros())
	mon := NewObstacleMonitor(mc.Problem, hy.Finest())
	mon.PrintResiduals = monitor
	mon.PrintErrors = monitorErr
	its, infeas, irnorm, errnorm := mc.iterate(hy.KFine, cycleMax, irtol, u, phi, ell, mon, 0)
	return SolveResult{U: u, Cycles: its, Infeas: infeas, IRNorm: irnorm, ErrNorm: errnorm}
}

// SolveNested runs nested iteration: solve on each level coarsest to
// finest, prolonging and truncating each solution as the initial iterate
// for the next level.  Levels below the finest get niCycles cycles
// (scheduled upward by ceil(1.5^depth) when cascadic); the finest level
// iterates to the irtol stopping criterion as in Solve.
func (mc *MCD) SolveNested(niCycles int, cascadic bool, cycleMax int, irtol float64,
	monitor, monitorErr bool) SolveResult {
	var (
		hy  = mc.Hierarchy
		u   utils.Vector
		res SolveResult
	)
	for k := hy.KCoarse; k <= hy.KFine; k++ {
		ml := hy.Level(k)
		phi, ell := mc.data(k)
		if k > hy.KCoarse {
			// prolong and truncate the previous coarser-level solution
			u = ml.Prolong(u).ElMax(phi)
		} else {
			u = phi.Copy().ElMax(ml.Zeros())
		}
		mon := NewObstacleMonitor(mc.Problem, ml)
		mon.PrintResiduals = monitor
		mon.PrintErrors = monitorErr
		iters := cycleMax
		if k < hy.KFine {
			iters = niCycles
			if cascadic {
				// simple schedule for cycles below the finest; compare
				// Blum et al (2004)
				iters *= int(math.Ceil(math.Pow(1.5, float64(hy.KFine-k))))
			}
		}
		its, infeas, irnorm, errnorm := mc.iterate(k, iters, irtol, u, phi, ell, mon, hy.KFine-k)
		res.Cycles += its
		res.Infeas += infeas
		res.IRNorm, res.ErrNorm = irnorm, errnorm
	}
	res.U = u
	return res
}

// SolvePGSOnly runs single-level projected Gauss-Seidel on the finest
// mesh, for comparison against the multilevel cycles.
func (mc *MCD) SolvePGSOnly(cycleMax int, irtol float64, monitor, monitorErr bool) SolveResult {
	var (
		hy       = mc.Hierarchy
		ml       = hy.Finest()
		phi, ell = mc.data(hy.KFine)
		uex      = mc.exactOn(hy.KFine)
		irnorm0  float64
		res      SolveResult
	)
	u := phi.Copy().ElMax(ml.Zeros())
	mon := NewObstacleMonitor(mc.Problem, ml)
	mon.PrintResiduals = monitor
	mon.PrintErrors = monitorErr
	for s := 0; s < cycleMax; s++ {
		irnorm, errnorm := mon.IRErr(u, ell, phi, uex, 0)
		res.IRNorm, res.ErrNorm = irnorm, errnorm
		if mc.ErrTol > 0 && uex != nil && errnorm <= mc.ErrTol {
			break
		}
		if s == 0 {
			if irnorm == 0 {
				break
			}
			irnorm0 = irnorm
		} else if irnorm <= irtol*irnorm0 {
			break
		}
		res.Infeas += mc.Problem.ProjectedSweep(ml, u, ell, phi, mc.Omega, true)
		mc.WU.Add(hy.KFine, 1)
		if mc.Symmetric {
			res.Infeas += mc.Problem.ProjectedSweep(ml, u, ell, phi, mc.Omega, false)
			mc.WU.Add(hy.KFine, 1)
		}
		res.Cycles = s + 1
	}
	res.U = u
	return res
}
