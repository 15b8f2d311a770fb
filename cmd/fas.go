/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/mgtools/gomg/MG1D"
	"github.com/mgtools/gomg/model_problems/Bratu1D"
	"github.com/spf13/cobra"
)

// FASCmd represents the fas command
var FASCmd = &cobra.Command{
	Use:   "fas",
	Short: "Unconstrained nonlinear solves by FAS multigrid cycles",
	Long: `
Solves -u'' - lambda e^u = g on [0,1] with zero boundary values using the
full approximation storage (FAS) scheme: V-cycles, or an F-cycle (nested
iteration) with optional enhanced prolongation.

gomg fas -p bratu --mms --fcycle`,
	Run: func(cmd *cobra.Command, args []string) {
		mf := &ModelFAS{}
		mf.Problem, _ = cmd.Flags().GetString("problem")
		mf.Lambda, _ = cmd.Flags().GetFloat64("lambda")
		mf.KCoarse, _ = cmd.Flags().GetInt("kcoarse")
		mf.KFine, _ = cmd.Flags().GetInt("kfine")
		mf.Down, _ = cmd.Flags().GetInt("down")
		mf.Up, _ = cmd.Flags().GetInt("up")
		mf.Coarse, _ = cmd.Flags().GetInt("coarse")
		mf.NIters, _ = cmd.Flags().GetInt("niters")
		mf.Cycles, _ = cmd.Flags().GetInt("cycles")
		mf.RTol, _ = cmd.Flags().GetFloat64("rtol")
		mf.MMS, _ = cmd.Flags().GetBool("mms")
		mf.FCycle, _ = cmd.Flags().GetBool("fcycle")
		mf.EP, _ = cmd.Flags().GetBool("ep")
		mf.Monitor, _ = cmd.Flags().GetBool("monitor")
		RunFAS(mf)
	},
}

func init() {
	rootCmd.AddCommand(FASCmd)
	FASCmd.Flags().StringP("problem", "p", "poisson", "problem to solve: poisson, bratu")
	FASCmd.Flags().Float64("lambda", 1.0, "lambda in the Liouville-Bratu equation")
	FASCmd.Flags().Int("kcoarse", 0, "coarsest mesh level (0 gives one interior node)")
	FASCmd.Flags().IntP("kfine", "k", 5, "finest mesh level")
	FASCmd.Flags().Int("down", 1, "NGS sweeps before the coarse correction")
	FASCmd.Flags().Int("up", 1, "NGS sweeps after the coarse correction")
	FASCmd.Flags().Int("coarse", 1, "NGS sweeps on the coarsest mesh")
	FASCmd.Flags().Int("niters", 2, "Newton iterations per pointwise NGS update")
	FASCmd.Flags().IntP("cycles", "c", 100, "maximum V-cycles (or V-cycles at the finest F-cycle level)")
	FASCmd.Flags().Float64("rtol", 1.0e-4, "relative residual reduction tolerance")
	FASCmd.Flags().Bool("mms", false, "use the manufactured solution as right-hand side")
	FASCmd.Flags().Bool("fcycle", false, "run an F-cycle instead of V-cycle iteration")
	FASCmd.Flags().Bool("ep", true, "enhanced prolongation in the F-cycle")
	FASCmd.Flags().Bool("monitor", false, "print residual norms during cycles")
}

type ModelFAS struct {
	Problem          string
	Lambda           float64
	KCoarse, KFine   int
	Down, Up, Coarse int
	NIters, Cycles   int
	RTol             float64
	MMS, FCycle, EP  bool
	Monitor          bool
}

func RunFAS(mf *ModelFAS) {
	var prob MG1D.Problem
	switch mf.Problem {
	case "poisson":
		prob = Bratu1D.NewPoisson()
	case "bratu":
		prob = Bratu1D.NewLiouville(mf.Lambda)
	default:
		fmt.Printf("error: unknown problem %q (try poisson, bratu)\n", mf.Problem)
		os.Exit(1)
	}
	hy := MG1D.NewHierarchy(mf.KCoarse, mf.KFine)
	fa := MG1D.NewFAS(hy, prob, mf.MMS)
	fa.Down, fa.Up, fa.Coarse, fa.NIters = mf.Down, mf.Up, mf.Coarse, mf.NIters
	fa.Monitor = mf.Monitor

	var (
		u   = hy.Finest().Zeros()
		its int
	)
	if mf.FCycle {
		u = fa.FCycle(mf.Cycles, mf.EP)
		its = mf.Cycles
	} else {
		u, its = fa.Solve(mf.Cycles, mf.RTol)
	}

	method := fmt.Sprintf("%d V(%d,%d) cycles", its, mf.Down, mf.Up)
	if mf.FCycle {
		method = fmt.Sprintf("F-cycle + %d V(%d,%d) cycles", mf.Cycles, mf.Down, mf.Up)
	}
	errstr := ""
	if prob.ExactAvailable() && (mf.MMS || mf.Problem == "poisson") {
		mesh := hy.Finest()
		uex := mesh.Coordinates().Apply(prob.Exact)
		errstr = fmt.Sprintf(":  |u-uexact|_2 = %.4e", mesh.L2Norm(u.Copy().Subtract(uex)))
	}
	fmt.Printf("fine level %d (m=%d): %s -> %.3f WU%s\n",
		mf.KFine, hy.Finest().M, method, fa.WU.Total(), errstr)
}
