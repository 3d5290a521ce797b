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
	"errors"
	"testing"
)

func TestProbBreakageFactor(t *testing.T) {
	reg := DefaultGlassTypes()
	tests := []struct {
		abbr string
		want [3]float64 // factors at 1/1000, 5/1000, 10/1000
	}{
		{"AN", [3]float64{0.681112, 0.921877, 1.038646}},
		{"HS", [3]float64{0.839982, 0.960798, 1.019392}},
		{"FT", [3]float64{0.910248, 0.978012, 1.010877}},
	}
	ratios := []float64{0.001, 0.005, 0.01}
	for _, tt := range tests {
		g, err := reg.FromAbbr(tt.abbr)
		if err != nil {
			t.Fatal(err)
		}
		for i, r := range ratios {
			if got := g.ProbBreakageFactor(r); !approx(got, tt.want[i], 1e-5) {
				t.Errorf("%s at %g: got %g, want %g", tt.abbr, r, got, tt.want[i])
			}
		}
		// The factor is 1 at the tabulated base ratio of 8/1000.
		if got := g.ProbBreakageFactor(0.008); !approx(got, 1, 1e-12) {
			t.Errorf("%s at base ratio: got %g, want 1", tt.abbr, got)
		}
	}
}

func TestProbBreakageFactorNCSEAVariation(t *testing.T) {
	reg := DefaultGlassTypes()
	g, err := reg.FromAbbr("AN")
	if err != nil {
		t.Fatal(err)
	}
	// NCSEA checks use a coefficient of variation of 0.2 for all
	// fabrications.
	g.SetCoefVariation(0.2)
	if !approx(g.CoefVariation(), 0.2, 1e-12) {
		t.Fatalf("CoefVariation = %g, want 0.2", g.CoefVariation())
	}
	want := []float64{0.737053, 0.935582, 1.031866}
	for i, r := range []float64{0.001, 0.005, 0.01} {
		if got := g.ProbBreakageFactor(r); !approx(got, want[i], 1e-5) {
			t.Errorf("at %g: got %g, want %g", r, got, want[i])
		}
	}
	// The override is per instance, not per registry.
	fresh, err := reg.FromAbbr("AN")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(fresh.CoefVariation(), 0.22, 1e-12) {
		t.Errorf("registry was mutated: CoefVariation = %g, want 0.22", fresh.CoefVariation())
	}
}

func TestLoadDurationFactor(t *testing.T) {
	reg := DefaultGlassTypes()
	tests := []struct {
		abbr             string
		want12h, want10y float64
	}{
		{"AN", 0.54967, 0.315229},
		{"HS", 0.739301, 0.558394},
		{"FT", 0.817439, 0.677823},
	}
	for _, tt := range tests {
		g, err := reg.FromAbbr(tt.abbr)
		if err != nil {
			t.Fatal(err)
		}
		// The 3 second reference duration has a factor of 1.
		if got, err := g.LoadDurationFactor(Seconds(3)); err != nil || !approx(got, 1, 1e-12) {
			t.Errorf("%s at 3 s: got %g, %v; want 1", tt.abbr, got, err)
		}
		if got, _ := g.LoadDurationFactor(Hours(12)); !approx(got, tt.want12h, 1e-5) {
			t.Errorf("%s at 12 h: got %g, want %g", tt.abbr, got, tt.want12h)
		}
		if got, _ := g.LoadDurationFactor(Years(10)); !approx(got, tt.want10y, 1e-5) {
			t.Errorf("%s at 10 yr: got %g, want %g", tt.abbr, got, tt.want10y)
		}
	}
}

func TestSurfTreatFactor(t *testing.T) {
	reg := DefaultGlassTypes()
	g, err := reg.FromName("Fully Tempered")
	if err != nil {
		t.Fatal(err)
	}
	for treatment, want := range map[string]float64{
		"None":         1,
		"Fritted":      1,
		"Acid etching": 0.5,
		"Sandblasting": 0.5,
	} {
		got, err := g.SurfTreatFactor(treatment)
		if err != nil {
			t.Errorf("%s: %v", treatment, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %g, want %g", treatment, got, want)
		}
	}
	var nf *NotFoundError
	if _, err := g.SurfTreatFactor("Polishing"); !errors.As(err, &nf) {
		t.Errorf("unknown treatment: got %v, want NotFoundError", err)
	}
}

func TestGlassTypeRegistry(t *testing.T) {
	reg := DefaultGlassTypes()
	names := reg.Names()
	want := []string{"Annealed", "Fully Tempered", "Heat Strengthened"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}

	// Names and abbreviations in use cannot be re-registered.
	if err := reg.Register("Annealed", "XX",
		Megapascals(20), Megapascals(15), 16, 0.22, commonSurfFactors()); err == nil {
		t.Error("re-registering an existing name should fail")
	}
	if err := reg.Register("Chemically Strengthened", "AN",
		Megapascals(20), Megapascals(15), 16, 0.22, commonSurfFactors()); err == nil {
		t.Error("re-registering an existing abbreviation should fail")
	}

	// Deregistering frees both the name and its abbreviation.
	reg.Deregister("Annealed")
	if _, err := reg.FromName("Annealed"); err == nil {
		t.Error("deregistered name should not resolve")
	}
	if _, err := reg.FromAbbr("AN"); err == nil {
		t.Error("deregistered abbreviation should not resolve")
	}
	if err := reg.Register("Annealed", "AN",
		Megapascals(23.3), Megapascals(18.3), 16, 0.22, commonSurfFactors()); err != nil {
		t.Errorf("re-registering after deregister: %v", err)
	}
}

func TestGlassTypeValidation(t *testing.T) {
	var rangeErr *RangeError
	if _, err := NewGlassType(Megapascals(-1), Megapascals(18.3), 16, 0.22, nil); !errors.As(err, &rangeErr) {
		t.Errorf("negative surface stress: got %v, want RangeError", err)
	}
	if _, err := NewGlassType(Megapascals(23.3), Megapascals(18.3), -1, 0.22, nil); !errors.As(err, &rangeErr) {
		t.Errorf("negative duration factor: got %v, want RangeError", err)
	}
	var dimErr *DimensionalityError
	if _, err := NewGlassType(Meters(23.3), Megapascals(18.3), 16, 0.22, nil); !errors.As(err, &dimErr) {
		t.Errorf("stress with length dimensions: got %v, want DimensionalityError", err)
	}
	g, err := NewGlassType(Megapascals(23.3), Megapascals(18.3), 16, 0.22, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.LoadDurationFactor(Meters(3)); !errors.As(err, &dimErr) {
		t.Errorf("duration with length dimensions: got %v, want DimensionalityError", err)
	}
}
