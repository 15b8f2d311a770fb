package MG1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/mgtools/gomg/utils"
)

// ObstacleMonitor reports the inactive-set residual norm, and the error
// norm when an exact solution is available, after each cycle.  It is
// diagnostic only and has no numerical effect on the solve.
type ObstacleMonitor struct {
	Problem ObstacleProblem
	Mesh    *MeshLevel

	PrintResiduals, PrintErrors bool

	s int // cycle counter for printing
}

func NewObstacleMonitor(prob ObstacleProblem, ml *MeshLevel) *ObstacleMonitor {
	return &ObstacleMonitor{Problem: prob, Mesh: ml}
}

// InactiveResidualNorm computes the norm of the residual functional with
// values clamped to be non-negative wherever the constraint is active
// within tolerance.
func (mon *ObstacleMonitor) InactiveResidualNorm(u, ell, phi utils.Vector) float64 {
	var (
		r    = mon.Problem.Residual(mon.Mesh, u, ell)
		rD   = r.DataP()
		uD   = u.DataP()
		phiD = phi.DataP()
	)
	for p := range rD {
		if uD[p] < phiD[p]+utils.NODETOL {
			rD[p] = math.Max(rD[p], 0)
		}
	}
	return mon.Mesh.L2Norm(r)
}

// IRErr returns the inactive-residual norm and the error norm relative
// to uex.  When uex is nil the error norm is NaN.
func (mon *ObstacleMonitor) IRErr(u, ell, phi utils.Vector, uex *utils.Vector, indent int) (irnorm, errnorm float64) {
	irnorm = mon.InactiveResidualNorm(u, ell, phi)
	ind := strings.Repeat("  ", indent)
	if mon.PrintResiduals {
		fmt.Printf("%s  %d:  |ir(u)|_2 = %.4e\n", ind, mon.s, irnorm)
	}
	errnorm = math.NaN()
	if uex != nil {
		errnorm = mon.Mesh.L2Norm(u.Copy().Subtract(*uex))
		if mon.PrintErrors {
			fmt.Printf("%s  %d:  |u-uexact|_2 = %.4e\n", ind, mon.s, errnorm)
		}
	}
	mon.s++
	return
}
