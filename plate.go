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
	"math"

	"github.com/ctessum/unit"
)

// Dimensionless plate coefficients for a rectangular plate simply
// supported on four sides under uniform load, tabulated against the
// longer-to-shorter dimension ratio (Roark's Formulas for Stress and
// Strain, table 11.4). The final row is the one-way (strip) limit at
// infinite aspect ratio; keeping it in the table means queries past
// ratio 5 clamp through the interpolant instead of a branch.
var (
	plateRatio = []float64{1, 1.2, 1.4, 1.6, 1.8, 2, 3, 4, 5, math.Inf(1)}
	plateBeta  = piecewise{plateRatio,
		[]float64{0.2874, 0.3762, 0.453, 0.5172, 0.5688, 0.6102, 0.7134, 0.741, 0.7476, 0.75}}
	plateAlpha = piecewise{plateRatio,
		[]float64{0.044, 0.0616, 0.077, 0.0906, 0.1017, 0.111, 0.1335, 0.14, 0.1417, 0.1421}}
	plateGamma = piecewise{plateRatio,
		[]float64{0.42, 0.455, 0.478, 0.491, 0.499, 0.503, 0.505, 0.502, 0.501, 0.5}}
)

// Roarks4side computes the maximum response of a rectangular plate
// simply supported on four sides under a uniform lateral load.
type Roarks4side struct {
	e    *unit.Unit
	dimX *unit.Unit
	dimY *unit.Unit
	t    *unit.Unit
}

// NewRoarks4side creates a plate with elastic modulus e, in-plane
// dimensions dimX and dimY (in either order), and thickness t.
func NewRoarks4side(e, dimX, dimY, t *unit.Unit) (*Roarks4side, error) {
	r := &Roarks4side{}
	if err := r.SetE(e); err != nil {
		return nil, err
	}
	if err := r.SetDimX(dimX); err != nil {
		return nil, err
	}
	if err := r.SetDimY(dimY); err != nil {
		return nil, err
	}
	if err := r.SetT(t); err != nil {
		return nil, err
	}
	return r, nil
}

// E returns the elastic modulus.
func (r *Roarks4side) E() *unit.Unit { return r.e }

// SetE sets the elastic modulus.
func (r *Roarks4side) SetE(e *unit.Unit) error {
	if err := checkDims("SetE", e, unit.Pascal); err != nil {
		return err
	}
	if e.Value() <= 0 {
		return &RangeError{Op: "SetE", Reason: "elastic modulus must be greater than zero"}
	}
	r.e = e.Clone()
	return nil
}

// DimX returns the x dimension.
func (r *Roarks4side) DimX() *unit.Unit { return r.dimX }

// SetDimX sets the x dimension.
func (r *Roarks4side) SetDimX(d *unit.Unit) error {
	if err := checkDims("SetDimX", d, unit.Meter); err != nil {
		return err
	}
	if d.Value() <= 0 {
		return &RangeError{Op: "SetDimX", Reason: "dimensions must be greater than zero"}
	}
	r.dimX = d.Clone()
	return nil
}

// DimY returns the y dimension.
func (r *Roarks4side) DimY() *unit.Unit { return r.dimY }

// SetDimY sets the y dimension.
func (r *Roarks4side) SetDimY(d *unit.Unit) error {
	if err := checkDims("SetDimY", d, unit.Meter); err != nil {
		return err
	}
	if d.Value() <= 0 {
		return &RangeError{Op: "SetDimY", Reason: "dimensions must be greater than zero"}
	}
	r.dimY = d.Clone()
	return nil
}

// T returns the plate thickness.
func (r *Roarks4side) T() *unit.Unit { return r.t }

// SetT sets the plate thickness.
func (r *Roarks4side) SetT(t *unit.Unit) error {
	if err := checkDims("SetT", t, unit.Meter); err != nil {
		return err
	}
	if t.Value() <= 0 {
		return &RangeError{Op: "SetT", Reason: "thickness must be greater than zero"}
	}
	r.t = t.Clone()
	return nil
}

// ratio returns the longer-to-shorter dimension ratio (>= 1) and the
// shorter dimension.
func (r *Roarks4side) ratio() (float64, *unit.Unit) {
	x, y := r.dimX.Value(), r.dimY.Value()
	if x >= y {
		return x / y, r.dimY
	}
	return y / x, r.dimX
}

// StressMax returns the maximum bending stress under the uniform
// pressure q: β(ratio)·q·(b/t)², with b the shorter dimension.
func (r *Roarks4side) StressMax(q *unit.Unit) (*unit.Unit, error) {
	if err := checkDims("StressMax", q, unit.Pascal); err != nil {
		return nil, err
	}
	ratio, b := r.ratio()
	bOverT := unit.Div(b, r.t)
	return scale(plateBeta.at(ratio), unit.Mul(q, bOverT, bOverT)), nil
}

// DeflectionMax returns the maximum deflection under the uniform
// pressure q: −α(ratio)·q·b⁴/(E·t³). The negative sign denotes
// deflection away from the load.
func (r *Roarks4side) DeflectionMax(q *unit.Unit) (*unit.Unit, error) {
	if err := checkDims("DeflectionMax", q, unit.Pascal); err != nil {
		return nil, err
	}
	ratio, b := r.ratio()
	w := unit.Div(
		unit.Mul(q, powInt(b, 4)),
		unit.Mul(r.e, powInt(r.t, 3)))
	return scale(-plateAlpha.at(ratio), w), nil
}

// ReactionMax returns the maximum edge reaction per unit length under
// the uniform pressure q: γ(ratio)·q·b.
func (r *Roarks4side) ReactionMax(q *unit.Unit) (*unit.Unit, error) {
	if err := checkDims("ReactionMax", q, unit.Pascal); err != nil {
		return nil, err
	}
	ratio, b := r.ratio()
	return scale(plateGamma.at(ratio), unit.Mul(q, b)), nil
}
