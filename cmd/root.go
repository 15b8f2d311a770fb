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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gomg",
	Short: "Geometric multigrid solvers for 1D nonlinear and obstacle problems",
	Long: `
Solves nonlinear and constrained (obstacle) one-dimensional elliptic
boundary-value problems using geometric multigrid: a nonlinear full
approximation storage (FAS) scheme for unconstrained PDEs, and the
multilevel constraint decomposition method of Tai (2003) for obstacle
problems.

gomg fas
gomg obstacle`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var profileRun interface{ Stop() }

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gomg.yaml)")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile for this run")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if on, _ := cmd.Flags().GetBool("profile"); on {
			profileRun = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if profileRun != nil {
			profileRun.Stop()
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gomg" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gomg")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
