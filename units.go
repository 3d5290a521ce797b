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

	"github.com/ctessum/unit"
)

// Units
var (
	// newtonsPerMeter is a line load (e.g. an edge reaction) [kg s-2].
	newtonsPerMeter = unit.Dimensions{
		unit.MassDim: 1,
		unit.TimeDim: -2}
)

// Conversion factors to SI base units.
const (
	inch          = 0.0254     // m
	foot          = 0.3048     // m
	psf           = 47.880259  // Pa
	psi           = 6894.7573  // Pa
	poundPerFoot  = 14.593903  // N/m
	secondsPerDay = 86400.     // s
	// Julian calendar conventions, matching the NCSEA interlayer tables.
	secondsPerMonth = 2629800.   // s
	secondsPerYear  = 31557600.  // s
)

// Millimeters creates a length from a number of millimeters.
func Millimeters(v float64) *unit.Unit {
	return unit.New(v*1.e-3, unit.Meter)
}

// Meters creates a length from a number of meters.
func Meters(v float64) *unit.Unit {
	return unit.New(v, unit.Meter)
}

// Inches creates a length from a number of inches.
func Inches(v float64) *unit.Unit {
	return unit.New(v*inch, unit.Meter)
}

// Feet creates a length from a number of feet.
func Feet(v float64) *unit.Unit {
	return unit.New(v*foot, unit.Meter)
}

// Pascals creates a pressure from a number of pascals.
func Pascals(v float64) *unit.Unit {
	return unit.New(v, unit.Pascal)
}

// Kilopascals creates a pressure from a number of kilopascals.
func Kilopascals(v float64) *unit.Unit {
	return unit.New(v*1.e3, unit.Pascal)
}

// Megapascals creates a pressure from a number of megapascals.
func Megapascals(v float64) *unit.Unit {
	return unit.New(v*1.e6, unit.Pascal)
}

// Gigapascals creates a pressure from a number of gigapascals.
func Gigapascals(v float64) *unit.Unit {
	return unit.New(v*1.e9, unit.Pascal)
}

// PoundsPerSquareFoot creates a pressure from a number of psf.
func PoundsPerSquareFoot(v float64) *unit.Unit {
	return unit.New(v*psf, unit.Pascal)
}

// PoundsPerSquareInch creates a pressure from a number of psi.
func PoundsPerSquareInch(v float64) *unit.Unit {
	return unit.New(v*psi, unit.Pascal)
}

// Celsius creates a temperature from a number of degrees Celsius.
func Celsius(v float64) *unit.Unit {
	return unit.New(v+273.15, unit.Kelvin)
}

// Seconds creates a duration from a number of seconds.
func Seconds(v float64) *unit.Unit {
	return unit.New(v, unit.Second)
}

// Minutes creates a duration from a number of minutes.
func Minutes(v float64) *unit.Unit {
	return unit.New(v*60, unit.Second)
}

// Hours creates a duration from a number of hours.
func Hours(v float64) *unit.Unit {
	return unit.New(v*3600, unit.Second)
}

// Days creates a duration from a number of days.
func Days(v float64) *unit.Unit {
	return unit.New(v*secondsPerDay, unit.Second)
}

// Months creates a duration from a number of months.
func Months(v float64) *unit.Unit {
	return unit.New(v*secondsPerMonth, unit.Second)
}

// Years creates a duration from a number of years.
func Years(v float64) *unit.Unit {
	return unit.New(v*secondsPerYear, unit.Second)
}

// InMillimeters returns the value of length u in millimeters.
func InMillimeters(u *unit.Unit) (float64, error) {
	if err := checkDims("InMillimeters", u, unit.Meter); err != nil {
		return math.NaN(), err
	}
	return u.Value() * 1.e3, nil
}

// InInches returns the value of length u in inches.
func InInches(u *unit.Unit) (float64, error) {
	if err := checkDims("InInches", u, unit.Meter); err != nil {
		return math.NaN(), err
	}
	return u.Value() / inch, nil
}

// InMegapascals returns the value of pressure u in megapascals.
func InMegapascals(u *unit.Unit) (float64, error) {
	if err := checkDims("InMegapascals", u, unit.Pascal); err != nil {
		return math.NaN(), err
	}
	return u.Value() * 1.e-6, nil
}

// InKilopascals returns the value of pressure u in kilopascals.
func InKilopascals(u *unit.Unit) (float64, error) {
	if err := checkDims("InKilopascals", u, unit.Pascal); err != nil {
		return math.NaN(), err
	}
	return u.Value() * 1.e-3, nil
}

// InPoundsPerFoot returns the value of line load u in pounds per foot.
func InPoundsPerFoot(u *unit.Unit) (float64, error) {
	if err := checkDims("InPoundsPerFoot", u, newtonsPerMeter); err != nil {
		return math.NaN(), err
	}
	return u.Value() / poundPerFoot, nil
}

// InCelsius returns the value of temperature u in degrees Celsius.
func InCelsius(u *unit.Unit) (float64, error) {
	if err := checkDims("InCelsius", u, unit.Kelvin); err != nil {
		return math.NaN(), err
	}
	return u.Value() - 273.15, nil
}

// InSeconds returns the value of duration u in seconds.
func InSeconds(u *unit.Unit) (float64, error) {
	if err := checkDims("InSeconds", u, unit.Second); err != nil {
		return math.NaN(), err
	}
	return u.Value(), nil
}

// checkDims returns a DimensionalityError if u is nil or does not carry
// the dimensions want.
func checkDims(op string, u *unit.Unit, want unit.Dimensions) error {
	if u == nil {
		return &DimensionalityError{Op: op, Want: want, Got: nil}
	}
	if !u.Dimensions().Matches(want) {
		return &DimensionalityError{Op: op, Want: want, Got: u.Dimensions()}
	}
	return nil
}

// checkPositive returns an error if u does not carry the dimensions want
// or is not strictly positive.
func checkPositive(op string, u *unit.Unit, want unit.Dimensions) error {
	if err := checkDims(op, u, want); err != nil {
		return err
	}
	if u.Value() <= 0 {
		return &RangeError{Op: op, Reason: "must be greater than zero"}
	}
	return nil
}

// root takes the n'th root of u. All of u's dimension exponents must be
// divisible by n; fractional powers that would produce non-integral
// exponents are a programming error.
func root(u *unit.Unit, n int) *unit.Unit {
	dims := make(unit.Dimensions)
	for d, p := range u.Dimensions() {
		if p%n != 0 {
			panic(fmt.Errorf("structglass: taking root %d of dimensions %v "+
				"would give a non-integral exponent", n, u.Dimensions()))
		}
		dims[d] = p / n
	}
	return unit.New(math.Pow(u.Value(), 1/float64(n)), dims)
}

// powInt raises u to the integer power n (n >= 1).
func powInt(u *unit.Unit, n int) *unit.Unit {
	o := u.Clone()
	for i := 1; i < n; i++ {
		o.Mul(u)
	}
	return o
}

// scale multiplies u by the dimensionless factor f, returning a copy.
func scale(f float64, u *unit.Unit) *unit.Unit {
	return unit.Mul(unit.New(f, unit.Dimless), u)
}
