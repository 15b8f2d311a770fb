package MG1D

import (
	"github.com/james-bowman/sparse"
	"github.com/mgtools/gomg/utils"
	"gonum.org/v1/gonum/mat"
)

// Stiffness returns the assembled operator for the bilinear form
// a(u,v) = int_0^1 u'v' on this level, with zero rows at the boundary
// nodes.  The matrix is assembled once per level; the geometry is
// immutable so the cached CSR is safe to share.
func (ml *MeshLevel) Stiffness() *sparse.CSR {
	ml.aOnce.Do(func() {
		n := ml.M + 1
		d := sparse.NewDOK(n, n)
		for p := 1; p < ml.M; p++ {
			d.Set(p, p-1, -1.0/ml.H)
			d.Set(p, p, 2.0/ml.H)
			d.Set(p, p+1, -1.0/ml.H)
		}
		ml.a = d.ToCSR()
	})
	return ml.a
}

// ApplyOperator evaluates a(u, psi_p) for every node p, i.e. the product
// of the assembled stiffness matrix with u.  Boundary entries are zero.
func (ml *MeshLevel) ApplyOperator(u utils.Vector) utils.Vector {
	ml.checkLen(u, false)
	var y mat.VecDense
	y.MulVec(ml.Stiffness(), u.V)
	return utils.Vector{V: &y}
}
