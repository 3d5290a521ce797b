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
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/unit"

	"github.com/spatialmodel/structglass"
)

// JobData describes one panel check: geometry, load, buildup, and
// optionally the capacity side.
type JobData struct {
	// Title names the job in output.
	Title string

	// Method selects the equivalent thickness formulation for every
	// package in the buildup: "monolithic", "non-composite", or
	// "shear-transfer".
	Method string

	Panel    PanelData
	Packages []PackageData `toml:"package"`

	// Capacity is optional; without it the check reports demands only.
	Capacity *CapacityData
}

// PanelData holds the panel geometry and load. Dimensioned values are
// quantity strings, e.g. "5 ft" or "1.436 kPa".
type PanelData struct {
	Width    string
	Height   string
	WindLoad string `toml:"wind_load"`

	// DeflectionLimitRatio sets the deflection limit to the shorter
	// span divided by this ratio. Zero means the NCSEA default of 75.
	DeflectionLimitRatio float64 `toml:"deflection_limit_ratio"`
}

// PackageData describes one glass package of the buildup.
type PackageData struct {
	// Plies lists the ply thicknesses, outermost first.
	Plies []string

	// Actual marks the ply thicknesses as measured minimums rather
	// than nominal manufactured sizes.
	Actual bool

	// The interlayer, for the shear-transfer formulation only. Either
	// a fixed modulus or a registered product with a reference
	// temperature and load duration.
	InterlayerThickness string `toml:"interlayer_thickness"`
	InterlayerModulus   string `toml:"interlayer_modulus"`
	InterlayerProduct   string `toml:"interlayer_product"`
	Temperature         string
	Duration            string
}

// CapacityData selects the glass type and the factors applied to its
// base allowable stress.
type CapacityData struct {
	// GlassType is a registered glass type name or abbreviation.
	GlassType string `toml:"glass_type"`

	// FailureRatio is the design probability of breakage. Zero means
	// the tabulated base ratio of 8/1000.
	FailureRatio float64 `toml:"failure_ratio"`

	// SurfaceTreatment is a named treatment of the glass surface.
	// Empty means "None".
	SurfaceTreatment string `toml:"surface_treatment"`

	// LoadDuration is the load duration for static fatigue, e.g.
	// "3 s". Empty means the 3 second reference.
	LoadDuration string `toml:"load_duration"`

	// NCSEAVariation applies the NCSEA coefficient of variation of
	// 0.2 instead of the material specific value.
	NCSEAVariation bool `toml:"ncsea_variation"`
}

// ReadJobFile reads and validates the job description in filename.
func ReadJobFile(filename string) (*JobData, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	job := new(JobData)
	if err := toml.Unmarshal(b, job); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", filename, err)
	}
	if err := job.validate(); err != nil {
		return nil, fmt.Errorf("in job file %s: %w", filename, err)
	}
	return job, nil
}

func (j *JobData) validate() error {
	switch j.Method {
	case "monolithic", "non-composite", "shear-transfer":
	case "":
		return fmt.Errorf("method is required")
	default:
		return fmt.Errorf("unknown method %q", j.Method)
	}
	if j.Panel.Width == "" || j.Panel.Height == "" {
		return fmt.Errorf("panel width and height are required")
	}
	if j.Panel.WindLoad == "" {
		return fmt.Errorf("panel wind_load is required")
	}
	if j.Panel.DeflectionLimitRatio < 0 {
		return fmt.Errorf("deflection_limit_ratio cannot be negative")
	}
	if len(j.Packages) == 0 {
		return fmt.Errorf("at least one package is required")
	}
	for i, p := range j.Packages {
		if len(p.Plies) == 0 {
			return fmt.Errorf("package %d has no plies", i+1)
		}
		if j.Method == "shear-transfer" {
			if len(p.Plies) != 2 {
				return fmt.Errorf("package %d: shear-transfer needs exactly two plies", i+1)
			}
			if p.InterlayerThickness == "" {
				return fmt.Errorf("package %d: shear-transfer needs interlayer_thickness", i+1)
			}
			if (p.InterlayerModulus == "") == (p.InterlayerProduct == "") {
				return fmt.Errorf("package %d: set exactly one of interlayer_modulus and interlayer_product", i+1)
			}
		}
	}
	if j.Capacity != nil {
		if j.Capacity.GlassType == "" {
			return fmt.Errorf("capacity glass_type is required")
		}
		if j.Capacity.FailureRatio < 0 || j.Capacity.FailureRatio >= 1 {
			return fmt.Errorf("failure_ratio must be in [0, 1)")
		}
	}
	return nil
}

// quantityUnits maps unit symbols to constructors.
var quantityUnits = map[string]func(float64) *unit.Unit{
	"mm":     structglass.Millimeters,
	"m":      structglass.Meters,
	"in":     structglass.Inches,
	"ft":     structglass.Feet,
	"Pa":     structglass.Pascals,
	"kPa":    structglass.Kilopascals,
	"MPa":    structglass.Megapascals,
	"GPa":    structglass.Gigapascals,
	"psf":    structglass.PoundsPerSquareFoot,
	"psi":    structglass.PoundsPerSquareInch,
	"degC":   structglass.Celsius,
	"s":      structglass.Seconds,
	"min":    structglass.Minutes,
	"h":      structglass.Hours,
	"day":    structglass.Days,
	"days":   structglass.Days,
	"month":  structglass.Months,
	"months": structglass.Months,
	"yr":     structglass.Years,
	"years":  structglass.Years,
}

// parseQuantity converts a quantity string like "5 ft", "1.436 kPa", or
// "30 degC" into a dimensioned value.
func parseQuantity(s string) (*unit.Unit, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, fmt.Errorf("quantity %q: want a number followed by a unit symbol", s)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("quantity %q: %w", s, err)
	}
	mk, ok := quantityUnits[fields[1]]
	if !ok {
		return nil, fmt.Errorf("quantity %q: unknown unit symbol %q", s, fields[1])
	}
	return mk(v), nil
}

// buildup constructs the laminate packages described by the job.
func (j *JobData) buildup(interlayers *structglass.InterlayerRegistry) ([]structglass.Laminate, error) {
	width, err := parseQuantity(j.Panel.Width)
	if err != nil {
		return nil, err
	}
	height, err := parseQuantity(j.Panel.Height)
	if err != nil {
		return nil, err
	}
	minDim := width
	if height.Value() < width.Value() {
		minDim = height
	}

	buildup := make([]structglass.Laminate, len(j.Packages))
	for i, p := range j.Packages {
		plies := make([]*structglass.GlassPly, len(p.Plies))
		for k, s := range p.Plies {
			t, err := parseQuantity(s)
			if err != nil {
				return nil, err
			}
			if p.Actual {
				plies[k], err = structglass.NewGlassPlyFromActual(t)
			} else {
				plies[k], err = structglass.NewGlassPlyFromNominal(t)
			}
			if err != nil {
				return nil, fmt.Errorf("package %d ply %d: %w", i+1, k+1, err)
			}
		}
		switch j.Method {
		case "monolithic":
			buildup[i], err = structglass.NewMonolithicMethod(plies)
		case "non-composite":
			buildup[i], err = structglass.NewNonCompositeMethod(plies)
		case "shear-transfer":
			var inter *structglass.Interlayer
			inter, err = p.interlayer(interlayers)
			if err != nil {
				break
			}
			buildup[i], err = structglass.NewShearTransferCoefMethod(
				[]structglass.Layer{plies[0], inter, plies[1]}, minDim)
		}
		if err != nil {
			return nil, fmt.Errorf("package %d: %w", i+1, err)
		}
	}
	return buildup, nil
}

func (p *PackageData) interlayer(interlayers *structglass.InterlayerRegistry) (*structglass.Interlayer, error) {
	t, err := parseQuantity(p.InterlayerThickness)
	if err != nil {
		return nil, err
	}
	if p.InterlayerModulus != "" {
		g, err := parseQuantity(p.InterlayerModulus)
		if err != nil {
			return nil, err
		}
		return structglass.NewStaticInterlayer(t, g)
	}
	inter, err := structglass.NewProductInterlayer(t, p.InterlayerProduct, interlayers)
	if err != nil {
		return nil, err
	}
	if p.Temperature != "" {
		temp, err := parseQuantity(p.Temperature)
		if err != nil {
			return nil, err
		}
		if err := inter.SetTemperature(temp); err != nil {
			return nil, err
		}
	}
	if p.Duration != "" {
		dur, err := parseQuantity(p.Duration)
		if err != nil {
			return nil, err
		}
		if err := inter.SetDuration(dur); err != nil {
			return nil, err
		}
	}
	return inter, nil
}

// allowableStress combines the glass type factors into the allowable
// surface stress for the job's capacity settings.
func (c *CapacityData) allowableStress(glassTypes *structglass.GlassTypeRegistry) (*unit.Unit, error) {
	gt, err := glassTypes.FromName(c.GlassType)
	if err != nil {
		if gt, err = glassTypes.FromAbbr(c.GlassType); err != nil {
			return nil, err
		}
	}
	if c.NCSEAVariation {
		gt.SetCoefVariation(0.2)
	}
	factor := 1.0
	if c.FailureRatio != 0 {
		factor *= gt.ProbBreakageFactor(c.FailureRatio)
	}
	if c.LoadDuration != "" {
		d, err := parseQuantity(c.LoadDuration)
		if err != nil {
			return nil, err
		}
		ldf, err := gt.LoadDurationFactor(d)
		if err != nil {
			return nil, err
		}
		factor *= ldf
	}
	treatment := c.SurfaceTreatment
	if treatment == "" {
		treatment = "None"
	}
	stf, err := gt.SurfTreatFactor(treatment)
	if err != nil {
		return nil, err
	}
	factor *= stf
	return unit.Mul(unit.New(factor, unit.Dimless), gt.StressSurface()), nil
}
