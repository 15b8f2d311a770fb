package MG1D

// Hierarchy is an ordered sequence of mesh levels, coarsest to finest,
// with a refinement factor of 2 between consecutive levels.  The geometry
// is immutable after construction; all solve-scoped state (defect
// obstacles, work units) is threaded explicitly through the cycle
// engines, so one Hierarchy can be reused across independent solves.
type Hierarchy struct {
	KCoarse, KFine int
	levels         []*MeshLevel
}

func NewHierarchy(kcoarse, kfine int) *Hierarchy {
	if kcoarse < 0 {
		panic(LevelRangeError{Level: kcoarse, Op: "coarse level index must be non-negative"})
	}
	if kcoarse >= kfine {
		panic(LevelRangeError{Level: kfine, Op: "fine level index must be greater than the coarse index"})
	}
	hy := &Hierarchy{
		KCoarse: kcoarse,
		KFine:   kfine,
		levels:  make([]*MeshLevel, kfine-kcoarse+1),
	}
	for k := kcoarse; k <= kfine; k++ {
		hy.levels[k-kcoarse] = NewMeshLevel(k)
	}
	return hy
}

func (hy *Hierarchy) NumLevels() int { return len(hy.levels) }

// Level returns the mesh at absolute level index k, kcoarse <= k <= kfine.
func (hy *Hierarchy) Level(k int) *MeshLevel {
	if k < hy.KCoarse || k > hy.KFine {
		panic(LevelRangeError{Level: k, Op: "level index outside hierarchy range"})
	}
	return hy.levels[k-hy.KCoarse]
}

func (hy *Hierarchy) Coarsest() *MeshLevel { return hy.levels[0] }
func (hy *Hierarchy) Finest() *MeshLevel   { return hy.levels[len(hy.levels)-1] }
