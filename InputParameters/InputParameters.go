package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// SolveParameters are obtained from the YAML input file and override the
// command-line defaults for an obstacle solve.
type SolveParameters struct {
	Title         string  `yaml:"Title"`
	Problem       string  `yaml:"Problem"`
	KCoarse       int     `yaml:"KCoarse"`
	KFine         int     `yaml:"KFine"`
	Down          int     `yaml:"Down"`
	Up            int     `yaml:"Up"`
	Coarse        int     `yaml:"Coarse"`
	Omega         float64 `yaml:"Omega"`
	CoarsestOmega float64 `yaml:"CoarsestOmega"`
	Symmetric     bool    `yaml:"Symmetric"`
	CycleMax      int     `yaml:"CycleMax"`
	IRTol         float64 `yaml:"IRTol"`
	FScale        float64 `yaml:"FScale"`
}

func (sp *SolveParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SolveParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= Problem\n", sp.Problem)
	fmt.Printf("[%d,%d]\t\t\t= KCoarse,KFine\n", sp.KCoarse, sp.KFine)
	fmt.Printf("V(%d,%d) + %d coarse\t= Cycle shape\n", sp.Down, sp.Up, sp.Coarse)
	fmt.Printf("%8.5f\t\t= Omega\n", sp.Omega)
	fmt.Printf("%8.5f\t\t= CoarsestOmega\n", sp.CoarsestOmega)
	fmt.Printf("[%v]\t\t\t= Symmetric\n", sp.Symmetric)
	fmt.Printf("[%d]\t\t\t= CycleMax\n", sp.CycleMax)
	fmt.Printf("%8.2e\t\t= IRTol\n", sp.IRTol)
	fmt.Printf("%8.5f\t\t= FScale\n", sp.FScale)
}
