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
	"math"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var reportFile string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Solve a job file and write the checks to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runJob(jobFile)
		if err != nil {
			return err
		}
		if err := writeReport(result, reportFile); err != nil {
			return err
		}
		log.WithField("output", reportFile).Info("report written")
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportFile, "output", "o", "./report.xlsx", "report file location")
}

func writeReport(r *JobResult, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Checks"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	row := 1
	set := func(cells ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(sheet, cell, &cells)
	}

	if err := set(r.Title); err != nil {
		return err
	}
	row++
	if err := set("Package", "Load share", "Deflection [mm]", "Limit [mm]", "Utilization"); err != nil {
		return err
	}
	for _, p := range r.Packages {
		if err := set(p.Package, p.LSF, p.DeflectionMM, p.LimitMM, p.Utilization); err != nil {
			return err
		}
	}
	row++
	if err := set("Package", "Ply", "Stress [MPa]", "Allowable [MPa]", "Utilization"); err != nil {
		return err
	}
	for _, p := range r.Plies {
		cells := []interface{}{p.Package, p.Ply, p.StressMPa}
		if !math.IsNaN(p.AllowableMPa) {
			cells = append(cells, p.AllowableMPa, p.Utilization)
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	row++
	verdict := "PASS"
	if !r.Pass() {
		verdict = "FAIL"
	}
	if err := set(fmt.Sprintf("Result: %s", verdict)); err != nil {
		return err
	}

	return f.SaveAs(filename)
}
