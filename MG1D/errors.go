package MG1D

import "fmt"

// LengthMismatchError reports a vector whose length does not match the
// node count of the mesh level it was handed to.  Transfer operators and
// norms panic with this error, so a caller that wants a recoverable
// failure must check lengths before the call.
type LengthMismatchError struct {
	Level    int
	Got, Want int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("level %d: input vector is of length %d (should be %d)",
		e.Level, e.Got, e.Want)
}

// LevelRangeError reports a transfer below the coarsest or above the
// finest mesh, or an invalid coarse/fine index pair.
type LevelRangeError struct {
	Level int
	Op    string
}

func (e LevelRangeError) Error() string {
	return fmt.Sprintf("level %d: %s", e.Level, e.Op)
}
