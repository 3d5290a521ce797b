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

package structglass

import (
	"fmt"

	"github.com/ctessum/unit"
)

type catalogEntry struct {
	nominal, minimum float64
}

// Nominal to minimum allowable glass thickness per ASTM E1300 table 4.
// Metric nominals and minimums are in mm; imperial nominals are in
// inches with minimums in mm. The two tables cover disjoint sets of
// manufactured sizes and are never interpolated between: minimum
// thickness standards are discrete per manufacturing grade.
var (
	tMinMetric = []catalogEntry{
		{2, 1.80},
		{2.5, 2.16},
		{2.7, 2.59},
		{3, 2.92},
		{4, 3.78},
		{5, 4.57},
		{6, 5.56},
		{8, 7.42},
		{10, 9.02},
		{12, 11.91},
		{16, 15.09},
		{19, 18.26},
		{22, 21.44},
		{25, 24.61},
	}
	tMinImperial = []catalogEntry{
		{0.09375, 2.16},
		{0.125, 2.92},
		{0.15625, 3.78},
		{0.1875, 4.57},
		{0.25, 5.56},
		{0.3125, 7.42},
		{0.375, 9.02},
		{0.5, 11.91},
		{0.625, 15.09},
		{0.75, 18.26},
		{0.875, 21.44},
		{1, 24.61},
	}
)

// nominalMatch reports whether a converted nominal size matches a
// catalog key, allowing for float conversion noise.
func nominalMatch(key, v float64) bool {
	const relTol = 1.e-6
	d := key - v
	if d < 0 {
		d = -d
	}
	return d <= relTol*key
}

// MinimumThickness returns the minimum allowable thickness for the
// nominal thickness tNom, consulting the metric catalog first and the
// imperial catalog second. It returns a NotFoundError if tNom is not a
// standard manufactured size.
func MinimumThickness(tNom *unit.Unit) (*unit.Unit, error) {
	if err := checkDims("MinimumThickness", tNom, unit.Meter); err != nil {
		return nil, err
	}
	mm, _ := InMillimeters(tNom)
	for _, e := range tMinMetric {
		if nominalMatch(e.nominal, mm) {
			return Millimeters(e.minimum), nil
		}
	}
	in, _ := InInches(tNom)
	for _, e := range tMinImperial {
		if nominalMatch(e.nominal, in) {
			return Millimeters(e.minimum), nil
		}
	}
	return nil, &NotFoundError{
		Kind:  "nominal thickness",
		Value: fmt.Sprintf("%.6g mm", mm),
	}
}

// A GlassPly is a single glass sheet layer: its thickness (nominal and
// minimum allowable) and elastic modulus. A ply is either
// nominal-sourced (created from a standard manufactured size, minimum
// thickness derived from the catalog) or actual-sourced (minimum
// thickness given directly, no nominal size); the two provenances are
// mutually exclusive.
type GlassPly struct {
	e    *unit.Unit
	tNom *unit.Unit // nil for actual-sourced plies
	tMin *unit.Unit
}

// defaultPlyModulus is the elastic modulus of float glass.
func defaultPlyModulus() *unit.Unit { return Gigapascals(71.7) }

// NewGlassPlyFromNominal creates a ply from the nominal thickness tNom,
// deriving the minimum allowable thickness from the catalog.
func NewGlassPlyFromNominal(tNom *unit.Unit) (*GlassPly, error) {
	tMin, err := MinimumThickness(tNom)
	if err != nil {
		return nil, err
	}
	return &GlassPly{e: defaultPlyModulus(), tNom: tNom.Clone(), tMin: tMin}, nil
}

// NewGlassPlyFromActual creates a ply directly from the actual (minimum
// allowable) thickness tAct. The ply has no nominal thickness.
func NewGlassPlyFromActual(tAct *unit.Unit) (*GlassPly, error) {
	if err := checkDims("NewGlassPlyFromActual", tAct, unit.Meter); err != nil {
		return nil, err
	}
	if tAct.Value() < 0 {
		return nil, &RangeError{Op: "NewGlassPlyFromActual", Reason: "thickness cannot be less than zero"}
	}
	return &GlassPly{e: defaultPlyModulus(), tMin: tAct.Clone()}, nil
}

// E returns the elastic modulus.
func (p *GlassPly) E() *unit.Unit { return p.e }

// SetE sets the elastic modulus.
func (p *GlassPly) SetE(e *unit.Unit) error {
	if err := checkDims("SetE", e, unit.Pascal); err != nil {
		return err
	}
	if e.Value() < 0 {
		return &RangeError{Op: "SetE", Reason: "elastic modulus cannot be less than zero"}
	}
	p.e = e.Clone()
	return nil
}

// TNom returns the nominal thickness, or nil for an actual-sourced ply.
func (p *GlassPly) TNom() *unit.Unit { return p.tNom }

// SetTNom sets the nominal thickness and re-derives the minimum
// allowable thickness from the catalog.
func (p *GlassPly) SetTNom(tNom *unit.Unit) error {
	tMin, err := MinimumThickness(tNom)
	if err != nil {
		return err
	}
	p.tNom = tNom.Clone()
	p.tMin = tMin
	return nil
}

// TMin returns the minimum allowable thickness.
func (p *GlassPly) TMin() *unit.Unit { return p.tMin }

// SetTMin sets the minimum allowable thickness directly, clearing the
// nominal thickness: a ply is either nominal-sourced or actual-sourced,
// never both.
func (p *GlassPly) SetTMin(tMin *unit.Unit) error {
	if err := checkDims("SetTMin", tMin, unit.Meter); err != nil {
		return err
	}
	if tMin.Value() < 0 {
		return &RangeError{Op: "SetTMin", Reason: "thickness cannot be less than zero"}
	}
	p.tMin = tMin.Clone()
	p.tNom = nil
	return nil
}
