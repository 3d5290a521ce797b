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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Solve a job file and print the panel checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runJob(jobFile)
		if err != nil {
			return err
		}
		logResult(result)
		if !result.Pass() {
			return fmt.Errorf("%s: check failed", result.Title)
		}
		return nil
	},
}

func logResult(r *JobResult) {
	for _, p := range r.Packages {
		fields := logrus.Fields{
			"package":       p.Package,
			"load share":    fmt.Sprintf("%.3f", p.LSF),
			"deflection mm": fmt.Sprintf("%.2f", p.DeflectionMM),
			"limit mm":      fmt.Sprintf("%.2f", p.LimitMM),
			"utilization":   fmt.Sprintf("%.2f", p.Utilization),
		}
		if p.Utilization > 1 {
			log.WithFields(fields).Warn("deflection exceeds limit")
		} else {
			log.WithFields(fields).Info("deflection ok")
		}
	}
	for _, p := range r.Plies {
		fields := logrus.Fields{
			"package":    p.Package,
			"ply":        p.Ply,
			"stress MPa": fmt.Sprintf("%.2f", p.StressMPa),
		}
		if math.IsNaN(p.AllowableMPa) {
			log.WithFields(fields).Info("stress demand (no capacity given)")
			continue
		}
		fields["allowable MPa"] = fmt.Sprintf("%.2f", p.AllowableMPa)
		fields["utilization"] = fmt.Sprintf("%.2f", p.Utilization)
		if p.Utilization > 1 {
			log.WithFields(fields).Warn("stress exceeds allowable")
		} else {
			log.WithFields(fields).Info("stress ok")
		}
	}
}
