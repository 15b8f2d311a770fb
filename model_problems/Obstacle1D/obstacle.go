// Package Obstacle1D provides classical 1D obstacle problems
//	u >= phi,  -u'' = f  where inactive,  u(0) = u(1) = 0
// and the projected Gauss-Seidel (PSOR) smoother used by the
// constraint-decomposition engine.
package Obstacle1D

import (
	"math"
	"math/rand"

	"github.com/mgtools/gomg/MG1D"
	"github.com/mgtools/gomg/utils"
)

type CaseType uint8

const (
	ICELIKE CaseType = iota
	PARABOLA
	LOW
)

func (c CaseType) String() string {
	switch c {
	case ICELIKE:
		return "icelike"
	case PARABOLA:
		return "parabola"
	case LOW:
		return "low"
	}
	return "unknown"
}

// CaseFromName maps a problem tag to its CaseType; ok is false for an
// unknown tag.
func CaseFromName(name string) (c CaseType, ok bool) {
	switch name {
	case "icelike":
		return ICELIKE, true
	case "parabola":
		return PARABOLA, true
	case "low":
		return LOW, true
	}
	return 0, false
}

// PGSPoisson bundles the obstacle/source/exact definitions of one
// problem case with projected Gauss-Seidel relaxation for the Poisson
// operator.
type PGSPoisson struct {
	Case      CaseType
	FScale    float64 // multiplies the source term; exact solution needs 1
	ParabolaY float64 // vertical obstacle offset for PARABOLA; exact needs -1

	perturb []float64 // sinusoid mode coefficients, empty when unperturbed
}

func NewPGSPoisson(c CaseType) *PGSPoisson {
	return &PGSPoisson{
		Case:      c,
		FScale:    1.0,
		ParabolaY: -1.0,
	}
}

// Perturb adds a smooth random perturbation to the obstacle, built from
// modes sinusoids with 1/j^2 decaying normal coefficients.  The exact
// solution becomes unavailable.
func (op *PGSPoisson) Perturb(seed int64, modes int, scale float64) *PGSPoisson {
	rnd := rand.New(rand.NewSource(seed))
	op.perturb = make([]float64, modes)
	for j := range op.perturb {
		op.perturb[j] = 0.03 * scale * rnd.NormFloat64() / float64((j+1)*(j+1))
	}
	return op
}

func (op *PGSPoisson) Obstacle(x float64) (ph float64) {
	switch op.Case {
	case PARABOLA:
		ph = 8.0*x*(1.0-x) + op.ParabolaY
	case LOW:
		ph = 8.0*x*(1.0-x) - 3.0
	case ICELIKE:
		ph = x * (1.0 - x)
	}
	for j, c := range op.perturb {
		ph += c * math.Sin(float64(j+1)*math.Pi*x)
	}
	return
}

func (op *PGSPoisson) Source(x float64) float64 {
	if op.Case == ICELIKE {
		if x < 0.2 || x > 0.8 {
			return -16.0 * op.FScale
		}
		return 8.0 * op.FScale
	}
	return -2.0 * op.FScale
}

func (op *PGSPoisson) ExactAvailable() bool {
	if len(op.perturb) > 0 || op.FScale != 1.0 {
		return false
	}
	if op.Case == PARABOLA && op.ParabolaY != -1.0 {
		return false
	}
	return true
}

func (op *PGSPoisson) Exact(x float64) float64 {
	switch op.Case {
	case LOW:
		// obstacle is low enough that the solution is unconstrained
		return x * (x - 1.0)
	case ICELIKE:
		switch {
		case x > 0.2 && x < 0.8:
			return -4.0*x*x + 4.0*x - 0.39
		case x > 0.1 && x <= 0.2:
			return 8.0*x*x - 0.8*x + 0.09
		case x >= 0.8 && x < 0.9:
			x = 1.0 - x
			return 8.0*x*x - 0.8*x + 0.09
		default:
			// contact region near the boundaries
			return op.Obstacle(x)
		}
	default: // PARABOLA, free boundary at a = 1/3
		const a = 1.0 / 3.0
		upoisson := func(x float64) float64 { return x * (x - 18.0*a + 8.0) }
		switch {
		case x < a:
			return upoisson(x)
		case x > 1.0-a:
			return upoisson(1.0 - x)
		default:
			return op.Obstacle(x)
		}
	}
}

// ProjectedSweep does one in-place projected Gauss-Seidel sweep on v
// over the interior nodes, in forward or backward order, each update
// relaxed by omega and clamped below by phi.  The input iterate is first
// checked for admissibility: nodes more than a tolerance below phi are
// repaired and counted.  Projection keeps every output feasible, so a
// nonzero count under omega <= 1 indicates a bug upstream.
func (op *PGSPoisson) ProjectedSweep(ml *MG1D.MeshLevel, v, ell, phi utils.Vector,
	omega float64, forward bool) (infeas int) {
	var (
		h    = ml.H
		vD   = v.DataP()
		ellD = ell.DataP()
		phiD = phi.DataP()
	)
	for p := 1; p < ml.M; p++ {
		if vD[p] < phiD[p]-utils.NODETOL {
			vD[p] = phiD[p]
			infeas++
		}
	}
	update := func(p int) {
		c := 0.5*(h*ellD[p]+vD[p-1]+vD[p+1]) - vD[p]
		vD[p] += omega * c
		if vD[p] < phiD[p] {
			vD[p] = phiD[p]
		}
	}
	if forward {
		for p := 1; p < ml.M; p++ {
			update(p)
		}
	} else {
		for p := ml.M - 1; p > 0; p-- {
			update(p)
		}
	}
	return
}

// Residual evaluates the residual functional ell - a(v,.) using the
// level's assembled stiffness operator.
func (op *PGSPoisson) Residual(ml *MG1D.MeshLevel, v, ell utils.Vector) utils.Vector {
	return ell.Copy().Subtract(ml.ApplyOperator(v))
}
