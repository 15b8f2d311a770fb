package MG1D

import (
	"fmt"
	"strings"

	"github.com/mgtools/gomg/utils"
)

// MCD is the multilevel constraint decomposition method of Tai (2003)
// for obstacle problems; the Up=0 case is Alg. 4.7 in Graeser & Kornhuber
// (2009), implemented recursively.  Each cycle solves a defect constraint
// problem for an additive correction v to a feasible iterate u, with the
// defect obstacle chi decomposed across levels by monotone restriction.
// The smoother and the coarse solver are projected Gauss-Seidel, so the
// coarse solve is inexact.
type MCD struct {
	Hierarchy *Hierarchy
	Problem   ObstacleProblem

	Down, Up, Coarse     int
	Omega, CoarsestOmega float64 // PSOR relaxation factors
	Symmetric            bool    // run every sweep forward then backward
	View                 bool    // indented per-level cycle reports
	ErrTol               float64 // absolute error stopping, 0 disables; needs an exact solution

	WU *WorkUnits
}

func NewMCD(hy *Hierarchy, prob ObstacleProblem) *MCD {
	return &MCD{
		Hierarchy:     hy,
		Problem:       prob,
		Down:          1,
		Up:            0,
		Coarse:        1,
		Omega:         1.0,
		CoarsestOmega: 1.0,
		WU:            NewWorkUnits(hy.KCoarse, hy.KFine),
	}
}

func (mc *MCD) indentPrint(n int, s string) {
	if mc.View {
		fmt.Printf("%s%s\n", strings.Repeat("  ", n), s)
	}
}

// smooth runs sweeps projected sweeps of the smoother on v against the
// level obstacle phi, recording work units and accumulating the
// infeasibility count.
func (mc *MCD) smooth(sweeps, k int, v, ell, phi utils.Vector, omega float64) (infeas int) {
	ml := mc.Hierarchy.Level(k)
	for s := 0; s < sweeps; s++ {
		infeas += mc.Problem.ProjectedSweep(ml, v, ell, phi, omega, true)
		mc.WU.Add(k, 1)
		if mc.Symmetric {
			infeas += mc.Problem.ProjectedSweep(ml, v, ell, phi, omega, false)
			mc.WU.Add(k, 1)
		}
	}
	return
}

// VCycle applies one constraint-decomposition V-cycle at absolute level
// k, solving the defect constraint problem for the residual functional
// ell and defect obstacle chi.  It returns the correction v on level k
// and the accumulated infeasibility count (diagnostic only; benign
// floating round-off can trigger it).
func (mc *MCD) VCycle(k int, ell, chi utils.Vector) (v utils.Vector, infeas int) {
	var (
		hy = mc.Hierarchy
		ml = hy.Level(k)
	)
	ml.checkLen(ell, false)
	ml.checkLen(chi, false)
	v = ml.Zeros()

	// coarsest-level solver = PGS sweeps against chi itself
	if k == hy.KCoarse {
		mc.indentPrint(hy.KFine-hy.KCoarse, fmt.Sprintf("coarsest: %d sweeps over m=%d nodes", mc.Coarse, ml.M))
		infeas = mc.smooth(mc.Coarse, k, v, ell, chi, mc.CoarsestOmega)
		return
	}

	// monotone restriction decomposes the defect constraint; the level k
	// obstacle is the *change* in chi, so the decomposition allocates each
	// piece of the defect exactly once
	chiCoarse := ml.MonotoneRestrict(chi)
	phi := chi.Copy().Subtract(ml.Prolong(chiCoarse))
	if mc.Up > 0 {
		// split the local bound between the down and up sweeps
		phi.Scale(0.5)
	}
	mc.indentPrint(hy.KFine-k, fmt.Sprintf("level %d: %d sweeps over m=%d nodes", k, mc.Down, ml.M))
	infeas = mc.smooth(mc.Down, k, v, ell, phi, mc.Omega)
	// update and canonically-restrict the residual
	ellCoarse := ml.RestrictFunctional(mc.Problem.Residual(ml, v, ell))
	// coarse-level correction
	vCoarse, ifc := mc.VCycle(k-1, ellCoarse, chiCoarse)
	v.Add(ml.Prolong(vCoarse))
	infeas += ifc
	if mc.Up > 0 {
		mc.indentPrint(hy.KFine-k, fmt.Sprintf("level %d: %d up sweeps over m=%d nodes", k, mc.Up, ml.M))
		infeas += mc.smooth(mc.Up, k, v, ell, phi, mc.Omega)
	}
	return
}
