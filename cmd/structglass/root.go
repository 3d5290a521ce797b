/*
Copyright © 2021 the structglass authors.
This file is part of structglass.

structglass is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

structglass is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with structglass.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/structglass"
)

var (
	jobFile string
	verbose bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "structglass",
	Short: "Structural checks for laminated glass panels.",
	Long: `structglass checks laminated glass panels under uniform wind load.
Panel buildups are converted to equivalent monolithic thicknesses and
solved as four-side simply supported plates per ASTM E1300 / NCSEA.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of structglass",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("structglass v%s\n", structglass.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(reportCmd)

	rootCmd.PersistentFlags().StringVar(&jobFile, "job", "./job.toml", "job file location")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug information")
}
