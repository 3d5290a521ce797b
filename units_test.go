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
	"math"
	"testing"

	"github.com/ctessum/unit"
)

// approx reports whether a and b agree to within the relative
// tolerance tol (absolute for values near zero).
func approx(a, b, tol float64) bool {
	d := math.Abs(a - b)
	m := math.Max(math.Abs(a), math.Abs(b))
	if m < 1 {
		return d <= tol
	}
	return d <= tol*m
}

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		u    *unit.Unit
		want *unit.Unit
	}{
		{"mm", Millimeters(25.4), Inches(1)},
		{"ft", Feet(1), Millimeters(304.8)},
		{"psf", PoundsPerSquareFoot(20), Pascals(957.60518)},
		{"kPa", Kilopascals(1.436), Pascals(1436)},
		{"GPa", Gigapascals(71.7), Megapascals(71700)},
		{"degC", Celsius(0), unit.New(273.15, unit.Kelvin)},
		{"min", Minutes(10), Seconds(600)},
		{"day", Days(1), Hours(24)},
		{"year", Years(1), Months(12)},
	}
	for _, tt := range tests {
		if !tt.u.Dimensions().Matches(tt.want.Dimensions()) {
			t.Errorf("%s: dimensions %v != %v", tt.name, tt.u.Dimensions(), tt.want.Dimensions())
		}
		if !approx(tt.u.Value(), tt.want.Value(), 1e-6) {
			t.Errorf("%s: %g != %g", tt.name, tt.u.Value(), tt.want.Value())
		}
	}
}

func TestReadouts(t *testing.T) {
	if v, err := InMillimeters(Inches(0.5)); err != nil || !approx(v, 12.7, 1e-12) {
		t.Errorf("InMillimeters = %g, %v", v, err)
	}
	if v, err := InInches(Millimeters(25.4)); err != nil || !approx(v, 1, 1e-12) {
		t.Errorf("InInches = %g, %v", v, err)
	}
	if v, err := InMegapascals(Kilopascals(1500)); err != nil || !approx(v, 1.5, 1e-12) {
		t.Errorf("InMegapascals = %g, %v", v, err)
	}
	if v, err := InCelsius(Celsius(40)); err != nil || !approx(v, 40, 1e-12) {
		t.Errorf("InCelsius = %g, %v", v, err)
	}
	if _, err := InMillimeters(Megapascals(1)); err == nil {
		t.Error("InMillimeters should reject a pressure")
	}
	var dimErr *DimensionalityError
	if _, err := InMillimeters(nil); !errors.As(err, &dimErr) {
		t.Errorf("InMillimeters(nil): got %v, want DimensionalityError", err)
	}
}

func TestRoot(t *testing.T) {
	v := root(powInt(Millimeters(3), 3), 3)
	if !v.Dimensions().Matches(unit.Meter) {
		t.Errorf("cube root dimensions = %v", v.Dimensions())
	}
	if !approx(v.Value(), 0.003, 1e-12) {
		t.Errorf("cube root value = %g", v.Value())
	}
	area := powInt(Meters(4), 2)
	if got := root(area, 2).Value(); !approx(got, 4, 1e-12) {
		t.Errorf("square root = %g", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("root with non-divisible exponent should panic")
		}
	}()
	root(Meters(2), 2)
}
