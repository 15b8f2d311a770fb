package MG1D

// WorkUnits accumulates relaxation cost per level.  One full smoother
// sweep at level k costs 1 unit; Total weights level k by 2^-(kfine-k)
// since coarser sweeps touch exponentially fewer unknowns.
type WorkUnits struct {
	KCoarse, KFine int
	Counts         []float64 // indexed by absolute level, 0..KFine
}

func NewWorkUnits(kcoarse, kfine int) *WorkUnits {
	return &WorkUnits{
		KCoarse: kcoarse,
		KFine:   kfine,
		Counts:  make([]float64, kfine+1),
	}
}

func (wu *WorkUnits) Add(k int, units float64) {
	wu.Counts[k] += units
}

func (wu *WorkUnits) Total() (tot float64) {
	for k := 0; k <= wu.KFine; k++ {
		tot += wu.Counts[wu.KFine-k] / float64(int(1)<<uint(k))
	}
	return
}

func (wu *WorkUnits) Reset() {
	for k := range wu.Counts {
		wu.Counts[k] = 0
	}
}
