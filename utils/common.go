package utils

const (
	// NODETOL is the feasibility/activity tolerance used when comparing
	// nodal values against an obstacle.
	NODETOL = 1.e-10
)
