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

	"github.com/spatialmodel/structglass"
)

// PlyResult is the solved demand on one glass ply.
type PlyResult struct {
	Package, Ply int
	StressMPa    float64
	// AllowableMPa and Utilization are NaN without a capacity section.
	AllowableMPa float64
	Utilization  float64
}

// PackageResult is the solved demand on one glass package.
type PackageResult struct {
	Package      int
	LSF          float64
	DeflectionMM float64
	LimitMM      float64
	Utilization  float64
}

// JobResult is the solved demand set of a job.
type JobResult struct {
	Title    string
	Plies    []PlyResult
	Packages []PackageResult
}

// Pass reports whether every utilization is at most one. Jobs without
// a capacity section only check the deflection limit.
func (r *JobResult) Pass() bool {
	for _, p := range r.Plies {
		if p.Utilization > 1 {
			return false
		}
	}
	for _, p := range r.Packages {
		if p.Utilization > 1 {
			return false
		}
	}
	return true
}

// solveJob runs the demand and capacity calculations for a job.
func solveJob(job *JobData) (*JobResult, error) {
	buildup, err := job.buildup(structglass.DefaultInterlayers())
	if err != nil {
		return nil, err
	}
	windLoad, err := parseQuantity(job.Panel.WindLoad)
	if err != nil {
		return nil, err
	}
	width, err := parseQuantity(job.Panel.Width)
	if err != nil {
		return nil, err
	}
	height, err := parseQuantity(job.Panel.Height)
	if err != nil {
		return nil, err
	}

	demand, err := structglass.NewIGUWindDemand(buildup, windLoad, width, height)
	if err != nil {
		return nil, err
	}
	if err := demand.Solve(); err != nil {
		return nil, err
	}

	allowableMPa := math.NaN()
	if job.Capacity != nil {
		allowable, err := job.Capacity.allowableStress(structglass.DefaultGlassTypes())
		if err != nil {
			return nil, err
		}
		if allowableMPa, err = structglass.InMegapascals(allowable); err != nil {
			return nil, err
		}
	}

	ratio := job.Panel.DeflectionLimitRatio
	if ratio == 0 {
		ratio = 75
	}
	span := math.Min(width.Value(), height.Value())
	limitMM := span / ratio * 1e3

	result := &JobResult{Title: job.Title}
	for i, pkg := range demand.Buildup() {
		lsf := demand.LSF()[i]
		deflMM, err := structglass.InMillimeters(demand.Deflection(i))
		if err != nil {
			return nil, err
		}
		result.Packages = append(result.Packages, PackageResult{
			Package:      i + 1,
			LSF:          lsf.Value(),
			DeflectionMM: deflMM,
			LimitMM:      limitMM,
			Utilization:  math.Abs(deflMM) / limitMM,
		})
		for j := range pkg.Plies() {
			stressMPa, err := structglass.InMegapascals(demand.Stress(i, j))
			if err != nil {
				return nil, err
			}
			result.Plies = append(result.Plies, PlyResult{
				Package:      i + 1,
				Ply:          j + 1,
				StressMPa:    stressMPa,
				AllowableMPa: allowableMPa,
				Utilization:  stressMPa / allowableMPa,
			})
		}
	}
	return result, nil
}

// runJob reads the job file, solves it, and logs a summary.
func runJob(filename string) (*JobResult, error) {
	job, err := ReadJobFile(filename)
	if err != nil {
		return nil, err
	}
	log.WithField("job", filename).Info("solving")
	result, err := solveJob(job)
	if err != nil {
		return nil, fmt.Errorf("solving job %s: %w", filename, err)
	}
	return result, nil
}
