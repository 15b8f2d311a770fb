package MG1D

import (
	"math"
	"sync"

	"github.com/james-bowman/sparse"
	"github.com/mgtools/gomg/utils"
)

// MeshLevel is one discretization level of [0,1].  MeshLevel k has
// M = 2^(k+1) equal subintervals of length H = 1/M.  Indices give nodes
// 0,1,...,M:
//	*---*---*---*---*---*---*
//	0   1   2     ...  M-1  M
// so p=1,...,M-1 are interior nodes and level 0 is a coarse mesh with one
// interior node.  A MeshLevel knows about zero vectors, L2 norms,
// prolongation of functions (level k-1 to k), canonical restriction of
// linear functionals (k to k-1), full-weighting restriction of vectors,
// and monotone restriction of functions (k to k-1; see Graeser & Kornhuber
// 2009).  It can also compute the residual for the Poisson equation.
type MeshLevel struct {
	K        int     // level index, 0 = coarsest
	M        int     // number of subintervals, 2^(K+1)
	Mcoarser int     // subintervals on the next-coarser level, 0 when K=0
	H        float64 // uniform spacing 1/M

	aOnce sync.Once
	a     *sparse.CSR
}

func NewMeshLevel(k int) *MeshLevel {
	if k < 0 {
		panic(LevelRangeError{Level: k, Op: "mesh level index must be non-negative"})
	}
	ml := &MeshLevel{
		K: k,
		M: 1 << uint(k+1),
	}
	ml.H = 1.0 / float64(ml.M)
	if k > 0 {
		ml.Mcoarser = 1 << uint(k)
	}
	return ml
}

// N is the node count M+1, including both boundary nodes.
func (ml *MeshLevel) N() int { return ml.M + 1 }

func (ml *MeshLevel) Zeros() utils.Vector {
	return utils.NewVector(ml.M + 1)
}

// Coordinates returns the node positions, uniformly spaced over [0,1]
// including both boundary nodes.
func (ml *MeshLevel) Coordinates() utils.Vector {
	return utils.NewVectorLinspace(ml.M+1, 0, 1)
}

func (ml *MeshLevel) checkLen(v utils.Vector, coarser bool) {
	want := ml.M + 1
	if coarser {
		want = ml.Mcoarser + 1
	}
	if v.Len() != want {
		panic(LengthMismatchError{Level: ml.K, Got: v.Len(), Want: want})
	}
}

// L2Norm computes the L2[0,1] norm of a grid function by the trapezoid
// rule.
func (ml *MeshLevel) L2Norm(u utils.Vector) float64 {
	ml.checkLen(u, false)
	var (
		data = u.DataP()
		sum  = 0.5 * (data[0]*data[0] + data[ml.M]*data[ml.M])
	)
	for p := 1; p < ml.M; p++ {
		sum += data[p] * data[p]
	}
	return math.Sqrt(ml.H * sum)
}

// LinearFunctional represents the linear functional which is the inner
// product with the function f:  ell[v] = <f,v>.  The interior values are
// H*f(x_p) and the boundary values are zero.
func (ml *MeshLevel) LinearFunctional(f func(float64) float64) utils.Vector {
	var (
		ell  = ml.Zeros()
		data = ell.DataP()
	)
	for p := 1; p < ml.M; p++ {
		data[p] = ml.H * f(float64(p)*ml.H)
	}
	return ell
}

// Residual computes the residual linear functional for the Poisson
// equation -u''=f at given u:
//	r(u)[v] = ell_f(v) - a(u,v) = int_0^1 f v - int_0^1 u' v'
// using the midpoint rule for the first integral and the exact value for
// the second.  The returned r satisfies r[0] = r[M] = 0.
func (ml *MeshLevel) Residual(u utils.Vector, f func(float64) float64) utils.Vector {
	ml.checkLen(u, false)
	var (
		r  = ml.Zeros()
		rD = r.DataP()
		uD = u.DataP()
		h  = ml.H
	)
	for p := 1; p < ml.M; p++ {
		xpm, xpp := (float64(p)-0.5)*h, (float64(p)+0.5)*h
		rD[p] = (h/2.0)*(f(xpm)+f(xpp)) - (2.0*uD[p]-uD[p-1]-uD[p+1])/h
	}
	return r
}

// InactiveResidual computes the residual clamped to be non-negative at
// nodes where the constraint u >= phi is active within tolerance.  Where
// the constraint is active the raw residual may be significantly
// negative; only the inactive-node residual is relevant to convergence.
func (ml *MeshLevel) InactiveResidual(u utils.Vector, f func(float64) float64, phi utils.Vector) utils.Vector {
	ml.checkLen(phi, false)
	var (
		r    = ml.Residual(u, f)
		rD   = r.DataP()
		uD   = u.DataP()
		phiD = phi.DataP()
	)
	for p := range rD {
		if uD[p] < phiD[p]+utils.NODETOL {
			rD[p] = math.Max(rD[p], 0)
		}
	}
	return r
}
