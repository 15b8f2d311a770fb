// Package Bratu1D provides unconstrained nonlinear model problems for
// the FAS engine: the Liouville-Bratu equation
//	-u'' - lambda e^u = g,  u(0) = u(1) = 0
// and the linear Poisson special case.  The discrete operator and its
// pointwise nonlinear Gauss-Seidel relaxation use the standard three
// point stencil scaled as a linear functional, i.e.
//	F(u)[p] = (2 u_p - u_{p-1} - u_{p+1})/h - h lambda e^{u_p}.
package Bratu1D

import (
	"math"

	"github.com/mgtools/gomg/utils"
)

type Liouville struct {
	Lambda float64
}

func NewLiouville(lambda float64) *Liouville {
	return &Liouville{Lambda: lambda}
}

func (lb *Liouville) Apply(h float64, u utils.Vector) utils.Vector {
	var (
		n  = u.Len()
		F  = utils.NewVector(n)
		fD = F.DataP()
		uD = u.DataP()
	)
	for p := 1; p < n-1; p++ {
		fD[p] = (2.0*uD[p]-uD[p-1]-uD[p+1])/h - h*lb.Lambda*math.Exp(uD[p])
	}
	return F
}

// RelaxPoint updates u[p] in place with niters Newton iterations on the
// scalar stencil equation F(u)[p] = ell[p].
func (lb *Liouville) RelaxPoint(h float64, u, ell utils.Vector, p, niters int) {
	var (
		uD   = u.DataP()
		ellD = ell.DataP()
	)
	for it := 0; it < niters; it++ {
		expu := math.Exp(uD[p])
		r := ellD[p] - ((2.0*uD[p]-uD[p-1]-uD[p+1])/h - h*lb.Lambda*expu)
		uD[p] += r / (2.0/h - h*lb.Lambda*expu)
	}
}

// Source is zero; the homogeneous problem is driven by the nonlinearity.
func (lb *Liouville) Source(x float64) float64 { return 0 }

// ManufacturedSolution uses u(x) = sin(3 pi x), so that
// g = 9 pi^2 sin(3 pi x) - lambda e^{sin(3 pi x)}.
func (lb *Liouville) ManufacturedSolution(x float64) (exact, source float64) {
	exact = math.Sin(3 * math.Pi * x)
	source = 9*math.Pi*math.Pi*exact - lb.Lambda*math.Exp(exact)
	return
}

// ExactAvailable reports the manufactured solution; it is the solution
// only when the engine runs with the manufactured right-hand side.
func (lb *Liouville) ExactAvailable() bool { return true }

func (lb *Liouville) Exact(x float64) float64 {
	return math.Sin(3 * math.Pi * x)
}

// Poisson is the linear case -u'' = f with f = -2, whose solution is
// u(x) = x(x-1).  The relaxation is exact in one iteration.
type Poisson struct{}

func NewPoisson() *Poisson { return &Poisson{} }

func (ps *Poisson) Apply(h float64, u utils.Vector) utils.Vector {
	var (
		n  = u.Len()
		F  = utils.NewVector(n)
		fD = F.DataP()
		uD = u.DataP()
	)
	for p := 1; p < n-1; p++ {
		fD[p] = (2.0*uD[p] - uD[p-1] - uD[p+1]) / h
	}
	return F
}

func (ps *Poisson) RelaxPoint(h float64, u, ell utils.Vector, p, niters int) {
	var (
		uD   = u.DataP()
		ellD = ell.DataP()
	)
	for it := 0; it < niters; it++ {
		r := ellD[p] - (2.0*uD[p]-uD[p-1]-uD[p+1])/h
		uD[p] += r * h / 2.0
	}
}

func (ps *Poisson) Source(x float64) float64 { return -2 }

func (ps *Poisson) ManufacturedSolution(x float64) (exact, source float64) {
	return x * (x - 1), -2
}

func (ps *Poisson) ExactAvailable() bool { return true }

func (ps *Poisson) Exact(x float64) float64 { return x * (x - 1) }
