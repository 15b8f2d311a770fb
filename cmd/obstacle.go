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
	"io/ioutil"
	"math"
	"os"

	"github.com/mgtools/gomg/InputParameters"
	"github.com/mgtools/gomg/MG1D"
	"github.com/mgtools/gomg/model_problems/Obstacle1D"
	"github.com/spf13/cobra"
)

// ObstacleCmd represents the obstacle command
var ObstacleCmd = &cobra.Command{
	Use:   "obstacle",
	Short: "Obstacle problem solves by multilevel constraint decomposition",
	Long: `
Solves the 1D obstacle problem:  find u in
    K = {v in H_0^1[0,1] | v >= phi}
such that the variational inequality  a(u,v-u) >= <f,v-u>  holds for all
v in K; the interior condition is the Poisson equation -u'' = f.

Solution is by the multilevel constraint decomposition V-cycle of Tai
(2003), Alg. 4.7 in Graeser & Kornhuber (2009).  The smoother and the
coarse-mesh solver are projected Gauss-Seidel (PSOR).  Monotone
restrictions decompose the defect obstacle.

gomg obstacle -p icelike -k 8 --ni`,
	Run: func(cmd *cobra.Command, args []string) {
		mo := &ModelObstacle{}
		mo.Problem, _ = cmd.Flags().GetString("problem")
		mo.KCoarse, _ = cmd.Flags().GetInt("kcoarse")
		mo.KFine, _ = cmd.Flags().GetInt("kfine")
		mo.Down, _ = cmd.Flags().GetInt("down")
		mo.Up, _ = cmd.Flags().GetInt("up")
		mo.Coarse, _ = cmd.Flags().GetInt("coarse")
		mo.Omega, _ = cmd.Flags().GetFloat64("omega")
		mo.CoarsestOmega, _ = cmd.Flags().GetFloat64("coarsestomega")
		mo.Symmetric, _ = cmd.Flags().GetBool("symmetric")
		mo.CycleMax, _ = cmd.Flags().GetInt("cyclemax")
		mo.IRTol, _ = cmd.Flags().GetFloat64("irtol")
		mo.ErrTol, _ = cmd.Flags().GetFloat64("errtol")
		mo.FScale, _ = cmd.Flags().GetFloat64("fscale")
		mo.ParabolaY, _ = cmd.Flags().GetFloat64("parabolay")
		mo.NI, _ = cmd.Flags().GetBool("ni")
		mo.NICascadic, _ = cmd.Flags().GetBool("nicascadic")
		mo.NICycles, _ = cmd.Flags().GetInt("nicycles")
		mo.PGSOnly, _ = cmd.Flags().GetBool("pgsonly")
		mo.Random, _ = cmd.Flags().GetBool("random")
		mo.RandomSeed, _ = cmd.Flags().GetInt64("randomseed")
		mo.RandomModes, _ = cmd.Flags().GetInt("randommodes")
		mo.RandomScale, _ = cmd.Flags().GetFloat64("randomscale")
		mo.Monitor, _ = cmd.Flags().GetBool("monitor")
		mo.MonitorErr, _ = cmd.Flags().GetBool("monitorerr")
		mo.MGView, _ = cmd.Flags().GetBool("mgview")
		mo.InputFile, _ = cmd.Flags().GetString("inputParametersFile")
		RunObstacle(mo)
	},
}

func init() {
	rootCmd.AddCommand(ObstacleCmd)
	ObstacleCmd.Flags().StringP("problem", "p", "icelike", "obstacle and source definition: icelike, parabola, low")
	ObstacleCmd.Flags().Int("kcoarse", 0, "coarsest mesh level (0 gives one interior node)")
	ObstacleCmd.Flags().IntP("kfine", "k", 3, "finest mesh level")
	ObstacleCmd.Flags().Int("down", 1, "PGS sweeps before the coarse correction")
	ObstacleCmd.Flags().Int("up", 0, "PGS sweeps after the coarse correction (up>0 halves the local bound)")
	ObstacleCmd.Flags().Int("coarse", 1, "PGS sweeps on the coarsest mesh")
	ObstacleCmd.Flags().Float64("omega", 1.0, "relaxation factor in PGS, thus PSOR")
	ObstacleCmd.Flags().Float64("coarsestomega", 1.0, "relaxation factor on the coarsest level")
	ObstacleCmd.Flags().Bool("symmetric", false, "run every sweep forward then backward")
	ObstacleCmd.Flags().Int("cyclemax", 100, "maximum number of multilevel cycles")
	ObstacleCmd.Flags().Float64("irtol", 1.0e-3, "relative inactive-residual reduction tolerance")
	ObstacleCmd.Flags().Float64("errtol", 0.0, "absolute error tolerance stopping (needs exact solution; 0 disables)")
	ObstacleCmd.Flags().Float64("fscale", 1.0, "multiplies the source term f")
	ObstacleCmd.Flags().Float64("parabolay", -1.0, "vertical obstacle location for -p parabola")
	ObstacleCmd.Flags().Bool("ni", false, "nested iteration for initial iterates (F-cycle)")
	ObstacleCmd.Flags().Bool("nicascadic", false, "scheduled nested iteration (implies --ni)")
	ObstacleCmd.Flags().Int("nicycles", 1, "nested iteration cycles on levels before the finest")
	ObstacleCmd.Flags().Bool("pgsonly", false, "single-level projected Gauss-Seidel instead of multilevel cycles")
	ObstacleCmd.Flags().Bool("random", false, "smooth random perturbation of the obstacle")
	ObstacleCmd.Flags().Int64("randomseed", 1, "seed for the --random perturbation")
	ObstacleCmd.Flags().Int("randommodes", 30, "number of sinusoid modes in the --random perturbation")
	ObstacleCmd.Flags().Float64("randomscale", 1.0, "scaling of modes in the --random perturbation")
	ObstacleCmd.Flags().Bool("monitor", false, "print the inactive-residual norm after each cycle")
	ObstacleCmd.Flags().Bool("monitorerr", false, "print the error (if available) after each cycle")
	ObstacleCmd.Flags().Bool("mgview", false, "view multigrid cycles by indented print statements")
	ObstacleCmd.Flags().StringP("inputParametersFile", "I", "", "YAML solve parameters file overriding flag defaults")
}

type ModelObstacle struct {
	Problem              string
	KCoarse, KFine       int
	Down, Up, Coarse     int
	Omega, CoarsestOmega float64
	Symmetric            bool
	CycleMax             int
	IRTol, ErrTol        float64
	FScale, ParabolaY    float64
	NI, NICascadic       bool
	NICycles             int
	PGSOnly              bool
	Random               bool
	RandomSeed           int64
	RandomModes          int
	RandomScale          float64
	Monitor, MonitorErr  bool
	MGView               bool
	InputFile            string
}

func processObstacleInput(mo *ModelObstacle) {
	if len(mo.InputFile) == 0 {
		return
	}
	data, err := ioutil.ReadFile(mo.InputFile)
	if err != nil {
		fmt.Printf("error reading input parameters file: %s\n", err.Error())
		os.Exit(1)
	}
	sp := &InputParameters.SolveParameters{
		Problem: mo.Problem, KCoarse: mo.KCoarse, KFine: mo.KFine,
		Down: mo.Down, Up: mo.Up, Coarse: mo.Coarse,
		Omega: mo.Omega, CoarsestOmega: mo.CoarsestOmega,
		Symmetric: mo.Symmetric, CycleMax: mo.CycleMax,
		IRTol: mo.IRTol, FScale: mo.FScale,
	}
	if err = sp.Parse(data); err != nil {
		fmt.Printf("error parsing input parameters file: %s\n", err.Error())
		os.Exit(1)
	}
	sp.Print()
	mo.Problem, mo.KCoarse, mo.KFine = sp.Problem, sp.KCoarse, sp.KFine
	mo.Down, mo.Up, mo.Coarse = sp.Down, sp.Up, sp.Coarse
	mo.Omega, mo.CoarsestOmega = sp.Omega, sp.CoarsestOmega
	mo.Symmetric, mo.CycleMax = sp.Symmetric, sp.CycleMax
	mo.IRTol, mo.FScale = sp.IRTol, sp.FScale
}

func RunObstacle(mo *ModelObstacle) {
	processObstacleInput(mo)
	caseType, ok := Obstacle1D.CaseFromName(mo.Problem)
	if !ok {
		fmt.Printf("error: unknown problem %q (try icelike, parabola, low)\n", mo.Problem)
		os.Exit(1)
	}
	prob := Obstacle1D.NewPGSPoisson(caseType)
	prob.FScale = mo.FScale
	prob.ParabolaY = mo.ParabolaY
	if mo.Random {
		prob.Perturb(mo.RandomSeed, mo.RandomModes, mo.RandomScale)
	}
	if (mo.MonitorErr || mo.ErrTol > 0) && !prob.ExactAvailable() {
		fmt.Println("usage error: --monitorerr/--errtol but exact solution not available")
		os.Exit(1)
	}
	if mo.NICascadic {
		mo.NI = true
	}

	hy := MG1D.NewHierarchy(mo.KCoarse, mo.KFine)
	mc := MG1D.NewMCD(hy, prob)
	mc.Down, mc.Up, mc.Coarse = mo.Down, mo.Up, mo.Coarse
	mc.Omega, mc.CoarsestOmega = mo.Omega, mo.CoarsestOmega
	mc.Symmetric = mo.Symmetric
	mc.View = mo.MGView
	mc.ErrTol = mo.ErrTol

	var res MG1D.SolveResult
	switch {
	case mo.PGSOnly:
		res = mc.SolvePGSOnly(mo.CycleMax, mo.IRTol, mo.Monitor, mo.MonitorErr)
	case mo.NI:
		res = mc.SolveNested(mo.NICycles, mo.NICascadic, mo.CycleMax, mo.IRTol, mo.Monitor, mo.MonitorErr)
	default:
		res = mc.Solve(mo.CycleMax, mo.IRTol, mo.Monitor, mo.MonitorErr)
	}

	method := "using "
	if mo.NI {
		method = "nested iter. & "
	}
	symstr := ""
	if mo.Symmetric {
		symstr = "sym. "
	}
	if mo.PGSOnly {
		method += fmt.Sprintf("%d applications of %sPGS", res.Cycles, symstr)
	} else {
		method += fmt.Sprintf("%d %sV(%d,%d) cycles", res.Cycles, symstr, mo.Down, mo.Up)
	}
	errstr := ""
	if !math.IsNaN(res.ErrNorm) {
		errstr = fmt.Sprintf(":  |u-uexact|_2 = %.4e", res.ErrNorm)
	}
	countstr := ""
	if res.Infeas != 0 {
		countstr = fmt.Sprintf(" (%d infeasibles)", res.Infeas)
	}
	fmt.Printf("fine level %d (m=%d): %s -> %.3f WU%s%s\n",
		mo.KFine, hy.Finest().M, method, mc.WU.Total(), errstr, countstr)
}
