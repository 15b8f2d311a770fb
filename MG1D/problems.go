package MG1D

import "github.com/mgtools/gomg/utils"

// Problem is the operator/smoother collaborator for the FAS engine: a
// problem-specific discrete nonlinear operator together with its
// pointwise nonlinear Gauss-Seidel relaxation.  Implementations live in
// model_problems and are selected at configuration time.
type Problem interface {
	// Apply evaluates the discrete nonlinear operator F(u) on a mesh of
	// spacing h.  Boundary entries of the result are zero.
	Apply(h float64, u utils.Vector) utils.Vector
	// RelaxPoint updates node p of u in place using niters iterations of
	// a local Newton solve of the stencil equation F(u)[p] = ell[p].
	RelaxPoint(h float64, u, ell utils.Vector, p, niters int)
	// Source is the right-hand-side function g in F(u) = g.
	Source(x float64) float64
	// ManufacturedSolution returns the exact solution value and the
	// corresponding source at x for the method of manufactured solutions.
	ManufacturedSolution(x float64) (exact, source float64)
	ExactAvailable() bool
	Exact(x float64) float64
}

// ObstacleProblem is the collaborator for the constraint-decomposition
// engine: obstacle/source/exact definitions plus a projected smoother and
// feasibility-aware residual evaluation.
type ObstacleProblem interface {
	Obstacle(x float64) float64
	Source(x float64) float64
	ExactAvailable() bool
	Exact(x float64) float64
	// ProjectedSweep performs one in-place projected Gauss-Seidel sweep
	// on v over the interior nodes, each update relaxed by omega and then
	// clamped below by phi.  The returned count is the number of input
	// nodes found (and repaired) more than a tolerance below phi.
	ProjectedSweep(ml *MeshLevel, v, ell, phi utils.Vector, omega float64, forward bool) int
	// Residual evaluates the residual functional ell - a(v,.) on ml.
	Residual(ml *MeshLevel, v, ell utils.Vector) utils.Vector
}
