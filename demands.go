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
	"github.com/ctessum/unit"
)

// IGUWindDemand computes the demands on an insulated glass unit (or any
// multi-package buildup) under a short duration wind load. The wind
// load is distributed among the packages in proportion to their bending
// stiffness E·h_efw³, and each package's stress and deflection follow
// from its equivalent thicknesses on a four-side simply supported
// plate.
type IGUWindDemand struct {
	buildup  []Laminate
	windLoad *unit.Unit
	dimX     *unit.Unit
	dimY     *unit.Unit

	lsf        []*unit.Unit   // dimensionless, aligned with buildup
	stress     [][]*unit.Unit // [package][ply], aligned with Plies()
	deflection []*unit.Unit   // [package]
}

// NewIGUWindDemand creates a demand solver for the buildup under
// windLoad on a panel of in-plane dimensions dimX by dimY. The buildup
// must contain distinct package instances (a physical pane cannot
// appear twice) built from a single equivalent thickness formulation.
func NewIGUWindDemand(buildup []Laminate, windLoad, dimX, dimY *unit.Unit) (*IGUWindDemand, error) {
	if len(buildup) == 0 {
		return nil, &RangeError{Op: "NewIGUWindDemand", Reason: "the buildup must contain at least one package"}
	}
	for i, a := range buildup {
		for _, b := range buildup[i+1:] {
			if a == b {
				return nil, ErrDuplicateInBuildup
			}
		}
		if a.method() != buildup[0].method() {
			return nil, ErrMixedMethods
		}
	}
	d := &IGUWindDemand{buildup: buildup}
	if err := d.SetWindLoad(windLoad); err != nil {
		return nil, err
	}
	if err := d.SetDimX(dimX); err != nil {
		return nil, err
	}
	if err := d.SetDimY(dimY); err != nil {
		return nil, err
	}
	d.computeLSF()
	return d, nil
}

// computeLSF assigns each package its share of the total load in
// proportion to relative bending stiffness.
func (d *IGUWindDemand) computeLSF() {
	stiff := make([]*unit.Unit, len(d.buildup))
	var total *unit.Unit
	for i, pkg := range d.buildup {
		stiff[i] = unit.Mul(pkg.E(), powInt(pkg.Hefw(), 3))
		total = unit.Add(total, stiff[i])
	}
	d.lsf = make([]*unit.Unit, len(d.buildup))
	for i := range d.buildup {
		d.lsf[i] = unit.Div(stiff[i], total)
	}
}

// WindLoad returns the wind load.
func (d *IGUWindDemand) WindLoad() *unit.Unit { return d.windLoad }

// SetWindLoad sets the wind load.
func (d *IGUWindDemand) SetWindLoad(q *unit.Unit) error {
	if err := checkDims("SetWindLoad", q, unit.Pascal); err != nil {
		return err
	}
	d.windLoad = q.Clone()
	return nil
}

// DimX returns the x dimension of the panel.
func (d *IGUWindDemand) DimX() *unit.Unit { return d.dimX }

// SetDimX sets the x dimension of the panel.
func (d *IGUWindDemand) SetDimX(v *unit.Unit) error {
	if err := checkPositive("SetDimX", v, unit.Meter); err != nil {
		return err
	}
	d.dimX = v.Clone()
	return nil
}

// DimY returns the y dimension of the panel.
func (d *IGUWindDemand) DimY() *unit.Unit { return d.dimY }

// SetDimY sets the y dimension of the panel.
func (d *IGUWindDemand) SetDimY(v *unit.Unit) error {
	if err := checkPositive("SetDimY", v, unit.Meter); err != nil {
		return err
	}
	d.dimY = v.Clone()
	return nil
}

// Buildup returns the packages in the buildup.
func (d *IGUWindDemand) Buildup() []Laminate { return d.buildup }

// LSF returns the load share factor of each package, aligned with
// Buildup. The factors sum to one.
func (d *IGUWindDemand) LSF() []*unit.Unit { return d.lsf }

// Solve computes the stress in every ply and the deflection of every
// package. It overwrites any previous results and may be called again
// after the load or geometry change; repeated calls with unchanged
// inputs produce identical results.
func (d *IGUWindDemand) Solve() error {
	d.stress = make([][]*unit.Unit, len(d.buildup))
	d.deflection = make([]*unit.Unit, len(d.buildup))
	for i, pkg := range d.buildup {
		plate, err := NewRoarks4side(pkg.E(), d.dimX, d.dimY, pkg.Hefw())
		if err != nil {
			return err
		}
		load := unit.Mul(d.windLoad, d.lsf[i])
		hefs := pkg.Hefs()
		d.stress[i] = make([]*unit.Unit, len(pkg.Plies()))
		for j := range pkg.Plies() {
			if err := plate.SetT(hefs[j]); err != nil {
				return err
			}
			if d.stress[i][j], err = plate.StressMax(load); err != nil {
				return err
			}
		}
		if err := plate.SetT(pkg.Hefw()); err != nil {
			return err
		}
		if d.deflection[i], err = plate.DeflectionMax(load); err != nil {
			return err
		}
	}
	return nil
}

// Stress returns the solved maximum stress in ply (an index into the
// package's Plies) of package pkg (an index into Buildup), or nil
// before the first Solve call.
func (d *IGUWindDemand) Stress(pkg, ply int) *unit.Unit {
	if d.stress == nil {
		return nil
	}
	return d.stress[pkg][ply]
}

// Stresses returns all solved ply stresses, indexed by package and
// ply, or nil before the first Solve call.
func (d *IGUWindDemand) Stresses() [][]*unit.Unit { return d.stress }

// Deflection returns the solved deflection of package pkg, or nil
// before the first Solve call.
func (d *IGUWindDemand) Deflection(pkg int) *unit.Unit {
	if d.deflection == nil {
		return nil
	}
	return d.deflection[pkg]
}

// Deflections returns all solved package deflections, aligned with
// Buildup, or nil before the first Solve call.
func (d *IGUWindDemand) Deflections() []*unit.Unit { return d.deflection }
