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
	"math"
	"sort"
	"sync"

	"github.com/ctessum/unit"
	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// A GlassType holds the NCSEA Glass Design Guide strength model for one
// glass fabrication: base allowable stresses and the factors that scale
// them for load duration, probability of breakage, and surface
// treatment. The demand side of this package never consults a
// GlassType; callers multiply the factors out to an allowable stress
// and compare it against computed demands themselves.
type GlassType struct {
	stressSurface *unit.Unit
	stressEdge    *unit.Unit
	// durationFactor is the exponent n of the glass static fatigue
	// model; the allowable stress scales with duration^(-1/n).
	durationFactor float64
	// coefVariation describes the scatter of the breaking stress.
	coefVariation float64
	surfFactors   map[string]float64
}

// NewGlassType creates a glass type from its strength parameters.
func NewGlassType(stressSurface, stressEdge *unit.Unit, durationFactor, coefVariation float64, surfFactors map[string]float64) (*GlassType, error) {
	g := &GlassType{coefVariation: coefVariation}
	if err := g.SetStressSurface(stressSurface); err != nil {
		return nil, err
	}
	if err := g.SetStressEdge(stressEdge); err != nil {
		return nil, err
	}
	if err := g.SetDurationFactor(durationFactor); err != nil {
		return nil, err
	}
	g.surfFactors = make(map[string]float64, len(surfFactors))
	for k, v := range surfFactors {
		g.surfFactors[k] = v
	}
	return g, nil
}

// StressSurface returns the base allowable surface stress.
func (g *GlassType) StressSurface() *unit.Unit { return g.stressSurface }

// SetStressSurface sets the base allowable surface stress.
func (g *GlassType) SetStressSurface(s *unit.Unit) error {
	if err := checkDims("SetStressSurface", s, unit.Pascal); err != nil {
		return err
	}
	if s.Value() < 0 {
		return &RangeError{Op: "SetStressSurface", Reason: "allowable stress cannot be less than zero"}
	}
	g.stressSurface = s.Clone()
	return nil
}

// StressEdge returns the base allowable edge stress.
func (g *GlassType) StressEdge() *unit.Unit { return g.stressEdge }

// SetStressEdge sets the base allowable edge stress.
func (g *GlassType) SetStressEdge(s *unit.Unit) error {
	if err := checkDims("SetStressEdge", s, unit.Pascal); err != nil {
		return err
	}
	if s.Value() < 0 {
		return &RangeError{Op: "SetStressEdge", Reason: "allowable stress cannot be less than zero"}
	}
	g.stressEdge = s.Clone()
	return nil
}

// DurationFactor returns the static fatigue exponent.
func (g *GlassType) DurationFactor() float64 { return g.durationFactor }

// SetDurationFactor sets the static fatigue exponent.
func (g *GlassType) SetDurationFactor(n float64) error {
	if n < 0 {
		return &RangeError{Op: "SetDurationFactor", Reason: "duration factor cannot be less than zero"}
	}
	g.durationFactor = n
	return nil
}

// CoefVariation returns the coefficient of variation of the breaking
// stress.
func (g *GlassType) CoefVariation() float64 { return g.coefVariation }

// SetCoefVariation sets the coefficient of variation. NCSEA uses 0.2
// irrespective of glass type; the built-in types carry the material
// specific values, so NCSEA checks override this.
func (g *GlassType) SetCoefVariation(v float64) { g.coefVariation = v }

// LoadDurationFactor returns the factor that scales the base allowable
// stress for a load of duration d, relative to the 3 second reference.
func (g *GlassType) LoadDurationFactor(d *unit.Unit) (float64, error) {
	if err := checkPositive("LoadDurationFactor", d, unit.Second); err != nil {
		return math.NaN(), err
	}
	return math.Pow(d.Value()/3, -1/g.durationFactor), nil
}

// DesignFactor returns the factor that converts the average breaking
// stress to the stress at the given failure ratio (e.g. 1/1000).
func (g *GlassType) DesignFactor(ratio float64) float64 {
	return 1 / (1 - g.coefVariation*stdNormal.Quantile(1-ratio))
}

// ProbBreakageFactor returns the factor that scales the base allowable
// stress (tabulated at a failure ratio of 8/1000) to the given failure
// ratio.
func (g *GlassType) ProbBreakageFactor(ratio float64) float64 {
	return g.DesignFactor(0.008) / g.DesignFactor(ratio)
}

// SurfTreatFactor returns the allowable stress reduction factor for the
// named surface treatment.
func (g *GlassType) SurfTreatFactor(treatment string) (float64, error) {
	f, ok := g.surfFactors[treatment]
	if !ok {
		return math.NaN(), &NotFoundError{Kind: "surface treatment", Value: treatment}
	}
	return f, nil
}

// glassTypeParams holds registered parameters; FromName constructs a
// fresh GlassType from them so callers can override factors (e.g. the
// coefficient of variation) without mutating the registry.
type glassTypeParams struct {
	stressSurfaceMPa float64
	stressEdgeMPa    float64
	durationFactor   float64
	coefVariation    float64
	surfFactors      map[string]float64
}

// A GlassTypeRegistry maps glass type names (and abbreviations) to
// their strength parameters. Concurrent reads are safe; registration
// and deregistration are serialized internally. Use DefaultGlassTypes
// for a registry populated with the NCSEA fabrications.
type GlassTypeRegistry struct {
	mu    sync.RWMutex
	types map[string]glassTypeParams
	abbr  map[string]string
}

// NewGlassTypeRegistry creates an empty registry.
func NewGlassTypeRegistry() *GlassTypeRegistry {
	return &GlassTypeRegistry{
		types: make(map[string]glassTypeParams),
		abbr:  make(map[string]string),
	}
}

// Register adds a glass type under name, optionally with an
// abbreviation (empty for none). Registering a name or abbreviation
// that is already in use fails; deregister it first.
func (r *GlassTypeRegistry) Register(name, abbr string, stressSurface, stressEdge *unit.Unit, durationFactor, coefVariation float64, surfFactors map[string]float64) error {
	if _, err := NewGlassType(stressSurface, stressEdge, durationFactor, coefVariation, surfFactors); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[name]; ok {
		return fmt.Errorf("structglass: glass type name %q already in use; deregister it first", name)
	}
	if prev, ok := r.abbr[abbr]; ok {
		return fmt.Errorf("structglass: glass type abbreviation %q already in use by %q; deregister it first", abbr, prev)
	}
	sMPa, _ := InMegapascals(stressSurface)
	eMPa, _ := InMegapascals(stressEdge)
	sf := make(map[string]float64, len(surfFactors))
	for k, v := range surfFactors {
		sf[k] = v
	}
	r.types[name] = glassTypeParams{
		stressSurfaceMPa: sMPa,
		stressEdgeMPa:    eMPa,
		durationFactor:   durationFactor,
		coefVariation:    coefVariation,
		surfFactors:      sf,
	}
	if abbr != "" {
		r.abbr[abbr] = name
	}
	return nil
}

// Deregister removes the glass type with the given name along with its
// abbreviation. Removing an unknown name is a no-op.
func (r *GlassTypeRegistry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.types, name)
	for a, n := range r.abbr {
		if n == name {
			delete(r.abbr, a)
		}
	}
}

// FromName constructs a GlassType from the parameters registered under
// name.
func (r *GlassTypeRegistry) FromName(name string) (*GlassType, error) {
	r.mu.RLock()
	p, ok := r.types[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Kind: "glass type", Value: name}
	}
	return NewGlassType(Megapascals(p.stressSurfaceMPa), Megapascals(p.stressEdgeMPa),
		p.durationFactor, p.coefVariation, p.surfFactors)
}

// FromAbbr constructs a GlassType from the parameters registered under
// the abbreviation abbr.
func (r *GlassTypeRegistry) FromAbbr(abbr string) (*GlassType, error) {
	r.mu.RLock()
	name, ok := r.abbr[abbr]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Kind: "glass type abbreviation", Value: abbr}
	}
	return r.FromName(name)
}

// Names returns the registered glass type names in sorted order.
func (r *GlassTypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// commonSurfFactors is the treatment factor set shared by the NCSEA
// fabrications.
func commonSurfFactors() map[string]float64 {
	return map[string]float64{
		"None":         1,
		"Fritted":      1,
		"Acid etching": 0.5,
		"Sandblasting": 0.5,
	}
}

// DefaultGlassTypes returns a registry populated with the NCSEA glass
// fabrications: Annealed (AN), Heat Strengthened (HS), and Fully
// Tempered (FT).
func DefaultGlassTypes() *GlassTypeRegistry {
	r := NewGlassTypeRegistry()
	must := func(err error) {
		if err != nil {
			panic(err) // built-in parameters are valid
		}
	}
	must(r.Register("Annealed", "AN",
		Megapascals(23.3), Megapascals(18.3), 16, 0.22, commonSurfFactors()))
	must(r.Register("Heat Strengthened", "HS",
		Megapascals(46.6), Megapascals(36.5), 31.7, 0.15, commonSurfFactors()))
	must(r.Register("Fully Tempered", "FT",
		Megapascals(93.1), Megapascals(73.0), 47.5, 0.1, commonSurfFactors()))
	return r
}
