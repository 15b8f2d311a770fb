package MG1D

import (
	"math"

	"github.com/mgtools/gomg/utils"
)

// Transfer operators between this level and its immediate coarser
// neighbor.  Both cycle engines consume exactly this set: prolongation,
// canonical (dual) restriction, full-weighting (primal) restriction, and
// monotone restriction for obstacle/defect fields.

func (ml *MeshLevel) checkNotCoarsest(op string) {
	if ml.K == 0 {
		panic(LevelRangeError{Level: ml.K, Op: op})
	}
}

// Prolong interpolates a vector v on the next-coarser level onto this
// level using linear interpolation.
func (ml *MeshLevel) Prolong(v utils.Vector) utils.Vector {
	ml.checkNotCoarsest("cannot prolong from a mesh coarser than the coarsest mesh")
	ml.checkLen(v, true)
	var (
		y  = ml.Zeros()
		yD = y.DataP()
		vD = v.DataP()
	)
	for q := 0; q < ml.Mcoarser; q++ {
		yD[2*q] = vD[q]
		yD[2*q+1] = 0.5 * (vD[q] + vD[q+1])
	}
	yD[ml.M] = vD[ml.Mcoarser]
	return y
}

// RestrictFunctional restricts a linear functional on this level to the
// next-coarser level by canonical restriction, the exact adjoint of
// Prolong.  Only the interior points of the result are nonzero.
func (ml *MeshLevel) RestrictFunctional(ell utils.Vector) utils.Vector {
	ml.checkNotCoarsest("cannot restrict to a mesh coarser than the coarsest mesh")
	ml.checkLen(ell, false)
	var (
		y  = utils.NewVector(ml.Mcoarser + 1)
		yD = y.DataP()
		vD = ell.DataP()
	)
	for q := 1; q < ml.Mcoarser; q++ {
		yD[q] = 0.5*vD[2*q-1] + vD[2*q] + 0.5*vD[2*q+1]
	}
	return y
}

// RestrictVector restricts a vector on this level to the next-coarser
// level by full-weighting.  All points are updated; the boundary values
// use the 2/3-1/3 blend of equation (6.20) in Bueler (2021).
func (ml *MeshLevel) RestrictVector(v utils.Vector) utils.Vector {
	ml.checkNotCoarsest("cannot restrict to a mesh coarser than the coarsest mesh")
	ml.checkLen(v, false)
	var (
		y  = utils.NewVector(ml.Mcoarser + 1)
		yD = y.DataP()
		vD = v.DataP()
	)
	yD[0] = (2.0/3.0)*vD[0] + (1.0/3.0)*vD[1]
	for q := 1; q < ml.Mcoarser; q++ {
		yD[q] = 0.25*(vD[2*q-1]+vD[2*q+1]) + 0.5*vD[2*q]
	}
	yD[ml.Mcoarser] = (1.0/3.0)*vD[ml.M-1] + (2.0/3.0)*vD[ml.M]
	return y
}

// RestrictVectorZero is the full-weighting restriction variant that
// forces zero boundary values in the result.
func (ml *MeshLevel) RestrictVectorZero(v utils.Vector) utils.Vector {
	ml.checkNotCoarsest("cannot restrict to a mesh coarser than the coarsest mesh")
	ml.checkLen(v, false)
	var (
		y  = utils.NewVector(ml.Mcoarser + 1)
		yD = y.DataP()
		vD = v.DataP()
	)
	for q := 1; q < ml.Mcoarser; q++ {
		yD[q] = 0.25*(vD[2*q-1]+vD[2*q+1]) + 0.5*vD[2*q]
	}
	return y
}

// MonotoneRestrict restricts a vector on this level to the next-coarser
// level by taking, per coarse node, the maximum over the fine values that
// map to it.  Formula (4.22) in Graeser & Kornhuber (2009).  This is a
// nonlinear operation, used only for obstacle/defect fields: the result
// is never below any fine value it summarizes, which is what preserves
// feasibility under prolongation of coarse corrections.
func (ml *MeshLevel) MonotoneRestrict(v utils.Vector) utils.Vector {
	ml.checkNotCoarsest("cannot restrict to a mesh coarser than the coarsest mesh")
	ml.checkLen(v, false)
	var (
		y  = utils.NewVector(ml.Mcoarser + 1)
		yD = y.DataP()
		vD = v.DataP()
	)
	yD[0] = math.Max(vD[0], vD[1])
	for q := 1; q < ml.Mcoarser; q++ {
		yD[q] = math.Max(vD[2*q-1], math.Max(vD[2*q], vD[2*q+1]))
	}
	yD[ml.Mcoarser] = math.Max(vD[ml.M-1], vD[ml.M])
	return y
}
