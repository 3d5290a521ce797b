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

// A Layer is one sheet in a laminate stack: a *GlassPly or an
// *Interlayer.
type Layer interface {
	isLayer()
}

func (*GlassPly) isLayer()   {}
func (*Interlayer) isLayer() {}

// A Laminate converts a stack of glass plies (and possibly an
// interlayer) into the equivalent thicknesses of a monolithic sheet.
// Three formulations exist in the literature and all three are
// implemented here; the set is closed.
//
// Deflection uses a single equivalent thickness for the whole package
// (Hefw); stress uses one equivalent thickness per glass ply (Hefs),
// keyed by the ply's index in Plies.
type Laminate interface {
	// Plies returns the glass plies of the package in stacking order.
	Plies() []*GlassPly
	// E returns the elastic modulus of the package.
	E() *unit.Unit
	// Hefw returns the equivalent package thickness for deflection.
	Hefw() *unit.Unit
	// Hefs returns the equivalent thickness for stress of each ply,
	// keyed by index into Plies.
	Hefs() map[int]*unit.Unit

	// method identifies the formulation; buildups reject mixtures.
	method() string
}

// validateGlassOnly is the shared applicability rule of the monolithic
// and non-composite formulations: at least one ply, glass only,
// identical elastic moduli.
func validateGlassOnly(plies []*GlassPly) error {
	if len(plies) == 0 {
		return &PlyValidationError{Reason: "the package must contain at least one ply"}
	}
	for _, p := range plies {
		if p == nil {
			return &PlyValidationError{Reason: "the method is only formulated for a list of GlassPly"}
		}
	}
	if err := samePlyModulus(plies...); err != nil {
		return err
	}
	return nil
}

func samePlyModulus(plies ...*GlassPly) error {
	e0 := plies[0].E()
	for _, p := range plies[1:] {
		e := p.E()
		if e.Value() != e0.Value() || !e.Dimensions().Matches(e0.Dimensions()) {
			return &PlyValidationError{Reason: "the plies must have the same elastic modulus"}
		}
	}
	return nil
}

// MonolithicMethod treats the package as a single sheet whose thickness
// is the sum of the ply minimum thicknesses, for both stress and
// deflection. It is the most conservative approximation and its
// validity decreases with load duration.
type MonolithicMethod struct {
	plies []*GlassPly
	e     *unit.Unit
	hefw  *unit.Unit
	hefs  map[int]*unit.Unit
}

// NewMonolithicMethod creates a monolithic package from glass plies.
func NewMonolithicMethod(plies []*GlassPly) (*MonolithicMethod, error) {
	m := &MonolithicMethod{}
	if err := m.SetPlies(plies); err != nil {
		return nil, err
	}
	return m, nil
}

// SetPlies replaces the ply list, revalidating and recomputing the
// equivalent thicknesses.
func (m *MonolithicMethod) SetPlies(plies []*GlassPly) error {
	if err := validateGlassOnly(plies); err != nil {
		return err
	}
	m.plies = plies
	m.e = plies[0].E()
	sum := plies[0].TMin().Clone()
	for _, p := range plies[1:] {
		sum.Add(p.TMin())
	}
	m.hefw = sum
	m.hefs = make(map[int]*unit.Unit, len(plies))
	for i := range plies {
		m.hefs[i] = sum.Clone()
	}
	return nil
}

func (m *MonolithicMethod) Plies() []*GlassPly       { return m.plies }
func (m *MonolithicMethod) E() *unit.Unit            { return m.e }
func (m *MonolithicMethod) Hefw() *unit.Unit         { return m.hefw }
func (m *MonolithicMethod) Hefs() map[int]*unit.Unit { return m.hefs }
func (m *MonolithicMethod) method() string           { return "monolithic" }

// NonCompositeMethod assumes no shear transfer between layers: the
// plies deflect together but carry stress independently. The
// deflection thickness is the cube root of the summed cubes and the
// stress thickness is the square root of the summed squares of the ply
// minimum thicknesses.
type NonCompositeMethod struct {
	plies []*GlassPly
	e     *unit.Unit
	hefw  *unit.Unit
	hefs  map[int]*unit.Unit
}

// NewNonCompositeMethod creates a non-composite package from glass
// plies.
func NewNonCompositeMethod(plies []*GlassPly) (*NonCompositeMethod, error) {
	m := &NonCompositeMethod{}
	if err := m.SetPlies(plies); err != nil {
		return nil, err
	}
	return m, nil
}

// SetPlies replaces the ply list, revalidating and recomputing the
// equivalent thicknesses.
func (m *NonCompositeMethod) SetPlies(plies []*GlassPly) error {
	if err := validateGlassOnly(plies); err != nil {
		return err
	}
	powSum := func(n int) *unit.Unit {
		sum := powInt(plies[0].TMin(), n)
		for _, p := range plies[1:] {
			sum.Add(powInt(p.TMin(), n))
		}
		return root(sum, n)
	}
	m.plies = plies
	m.e = plies[0].E()
	m.hefw = powSum(3)
	hefs := powSum(2)
	m.hefs = make(map[int]*unit.Unit, len(plies))
	for i := range plies {
		m.hefs[i] = hefs.Clone()
	}
	return nil
}

func (m *NonCompositeMethod) Plies() []*GlassPly       { return m.plies }
func (m *NonCompositeMethod) E() *unit.Unit            { return m.e }
func (m *NonCompositeMethod) Hefw() *unit.Unit         { return m.hefw }
func (m *NonCompositeMethod) Hefs() map[int]*unit.Unit { return m.hefs }
func (m *NonCompositeMethod) method() string           { return "non-composite" }

// shearTransferBeta is the boundary and loading condition coefficient
// of the Bennison-Wolfel formulation for a simply supported panel under
// uniform load.
const shearTransferBeta = 9.6

// ShearTransferCoefMethod accounts for the interlayer shear modulus,
// grading the package between fully composite and non-composite
// behavior with the shear transfer coefficient Γ ∈ [0, 1]. Originally
// proposed by Bennison-Wolfel and referenced in ASTM E1300, it is valid
// only for a [glass, interlayer, glass] stack. The formulation depends
// on the minimum in-plane dimension of the panel.
type ShearTransferCoefMethod struct {
	layers      []Layer
	ply1, ply2  *GlassPly
	inter       *Interlayer
	panelMinDim *unit.Unit

	e     *unit.Unit
	gamma float64
	hefw  *unit.Unit
	hefs  map[int]*unit.Unit
}

// NewShearTransferCoefMethod creates a shear-transfer package from a
// [glass, interlayer, glass] layer stack and the minimum in-plane panel
// dimension.
func NewShearTransferCoefMethod(layers []Layer, panelMinDim *unit.Unit) (*ShearTransferCoefMethod, error) {
	if err := checkPositive("NewShearTransferCoefMethod", panelMinDim, unit.Meter); err != nil {
		return nil, err
	}
	m := &ShearTransferCoefMethod{panelMinDim: panelMinDim.Clone()}
	if err := m.SetLayers(layers); err != nil {
		return nil, err
	}
	return m, nil
}

// SetLayers replaces the layer stack, revalidating and recomputing the
// equivalent thicknesses.
func (m *ShearTransferCoefMethod) SetLayers(layers []Layer) error {
	var ply1, ply2 *GlassPly
	var inter *Interlayer
	ok := len(layers) == 3
	if ok {
		ply1, ok = layers[0].(*GlassPly)
	}
	if ok {
		inter, ok = layers[1].(*Interlayer)
	}
	if ok {
		ply2, ok = layers[2].(*GlassPly)
	}
	if !ok {
		return &PlyValidationError{Reason: "the method is only valid for a [GlassPly, Interlayer, GlassPly] package"}
	}
	if err := samePlyModulus(ply1, ply2); err != nil {
		return err
	}
	m.layers = layers
	m.ply1, m.inter, m.ply2 = ply1, inter, ply2
	m.e = ply1.E()
	return m.compute()
}

// PanelMinDim returns the minimum in-plane dimension of the panel.
func (m *ShearTransferCoefMethod) PanelMinDim() *unit.Unit { return m.panelMinDim }

// SetPanelMinDim changes the minimum panel dimension and recomputes Γ
// and the equivalent thicknesses.
func (m *ShearTransferCoefMethod) SetPanelMinDim(d *unit.Unit) error {
	if err := checkPositive("SetPanelMinDim", d, unit.Meter); err != nil {
		return err
	}
	m.panelMinDim = d.Clone()
	return m.compute()
}

// Gamma returns the shear transfer coefficient: 0 for no shear
// transfer, 1 for fully composite behavior.
func (m *ShearTransferCoefMethod) Gamma() float64 { return m.gamma }

func (m *ShearTransferCoefMethod) compute() error {
	h1 := m.ply1.TMin()
	h2 := m.ply2.TMin()
	hv := m.inter.T()
	g, err := m.inter.G()
	if err != nil {
		return err
	}
	hSum := unit.Add(h1, h2)
	hs := unit.Add(scale(0.5, hSum), hv)
	hs1 := unit.Div(unit.Mul(hs, h1), hSum)
	hs2 := unit.Div(unit.Mul(hs, h2), hSum)
	is := unit.Add(unit.Mul(h1, powInt(hs2, 2)), unit.Mul(h2, powInt(hs1, 2)))

	shearRatio := unit.Div(
		unit.Mul(scale(shearTransferBeta, m.e), is, hv),
		unit.Mul(g, powInt(hs, 2), powInt(m.panelMinDim, 2)))
	m.gamma = 1 / (1 + shearRatio.Value())

	m.hefw = root(unit.Add(powInt(h1, 3), powInt(h2, 3), scale(12*m.gamma, is)), 3)
	hefw3 := powInt(m.hefw, 3)
	m.hefs = map[int]*unit.Unit{
		0: root(unit.Div(hefw3, unit.Add(h1, scale(2*m.gamma, hs2))), 2),
		1: root(unit.Div(hefw3, unit.Add(h2, scale(2*m.gamma, hs1))), 2),
	}
	return nil
}

// Plies returns the two glass plies, outer first.
func (m *ShearTransferCoefMethod) Plies() []*GlassPly { return []*GlassPly{m.ply1, m.ply2} }

func (m *ShearTransferCoefMethod) E() *unit.Unit            { return m.e }
func (m *ShearTransferCoefMethod) Hefw() *unit.Unit         { return m.hefw }
func (m *ShearTransferCoefMethod) Hefs() map[int]*unit.Unit { return m.hefs }
func (m *ShearTransferCoefMethod) method() string           { return "shear transfer coefficient" }
