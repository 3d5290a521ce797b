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

	"github.com/ctessum/unit"
)

func TestStaticInterlayer(t *testing.T) {
	il, err := NewStaticInterlayer(Millimeters(1.52), Megapascals(0.44))
	if err != nil {
		t.Fatal(err)
	}
	g, err := il.G()
	if err != nil {
		t.Fatal(err)
	}
	if mpa, _ := InMegapascals(g); !approx(mpa, 0.44, 1e-12) {
		t.Errorf("G = %g MPa, want 0.44 MPa", mpa)
	}
	// A static interlayer has no product table to reference.
	if err := il.SetTemperature(Celsius(30)); !errors.Is(err, ErrNoProductTable) {
		t.Errorf("SetTemperature: got %v, want ErrNoProductTable", err)
	}
	if err := il.SetDuration(Seconds(3)); !errors.Is(err, ErrNoProductTable) {
		t.Errorf("SetDuration: got %v, want ErrNoProductTable", err)
	}
	if _, err := il.Temperature(); !errors.Is(err, ErrNoProductTable) {
		t.Errorf("Temperature: got %v, want ErrNoProductTable", err)
	}
}

func TestProductInterlayer(t *testing.T) {
	reg := DefaultInterlayers()
	il, err := NewProductInterlayer(Millimeters(1.52), IonoplastNCSEA, reg)
	if err != nil {
		t.Fatal(err)
	}
	// Reading before the reference state is set fails.
	if _, err := il.G(); !errors.Is(err, ErrReferenceNotSet) {
		t.Fatalf("got %v, want ErrReferenceNotSet", err)
	}
	if err := il.SetTemperature(Celsius(40)); err != nil {
		t.Fatal(err)
	}
	if _, err := il.G(); !errors.Is(err, ErrReferenceNotSet) {
		t.Fatalf("got %v, want ErrReferenceNotSet with only temperature set", err)
	}
	if err := il.SetDuration(Months(1)); err != nil {
		t.Fatal(err)
	}
	g, err := il.G()
	if err != nil {
		t.Fatal(err)
	}
	// (40 degC, 1 month) is a hold point of the Ionoplast table and
	// must be reproduced exactly.
	if mpa, _ := InMegapascals(g); !approx(mpa, 3.29, 1e-9) {
		t.Errorf("G = %g MPa, want 3.29 MPa", mpa)
	}
}

func TestProductInterlayerUnknown(t *testing.T) {
	reg := DefaultInterlayers()
	var nf *NotFoundError
	if _, err := NewProductInterlayer(Millimeters(1.52), "no such product", reg); !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestShearModulusInterpolation(t *testing.T) {
	reg := NewInterlayerRegistry()
	points := make([]ShearModulusPoint, 0, 6)
	for _, p := range []struct{ tc, dur, g float64 }{
		{30, 60, 120.5},
		{30, 600, 84.1},
		{40, 60, 98.2},
		{40, 600, 54.0},
		{50, 60, 61.3},
		{50, 600, 23.9},
	} {
		points = append(points, ShearModulusPoint{
			Temperature: Celsius(p.tc),
			Duration:    Seconds(p.dur),
			G:           Megapascals(p.g),
		})
	}
	if err := reg.Register("test product", points); err != nil {
		t.Fatal(err)
	}
	table, err := reg.Product("test product")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name     string
		tempC    float64
		dur      *unit.Unit
		wantGMPa float64
	}{
		{"hold point", 40, Seconds(600), 54.0},
		// Bilinear between all four surrounding hold points:
		// 5 min at 35 degC, halfway in temperature and 4/9 of
		// the way in duration.
		{"interior", 35, Minutes(5), 91.438889},
		// Outside the tabulated domain the edge values hold.
		{"clamp low temperature", 10, Seconds(60), 120.5},
		{"clamp high duration", 50, Hours(2), 23.9},
		{"clamp both", 80, Days(1), 23.9},
	}
	for _, tt := range tests {
		g, err := table.G(Celsius(tt.tempC), tt.dur)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if mpa, _ := InMegapascals(g); !approx(mpa, tt.wantGMPa, 1e-5) {
			t.Errorf("%s: G = %g MPa, want %g MPa", tt.name, mpa, tt.wantGMPa)
		}
	}
}

func TestShearModulusTableNotRectangular(t *testing.T) {
	missing := []ShearModulusPoint{
		{Celsius(30), Seconds(60), Megapascals(100)},
		{Celsius(30), Seconds(600), Megapascals(80)},
		{Celsius(40), Seconds(60), Megapascals(90)},
	}
	if _, err := NewShearModulusTable(missing); !errors.Is(err, ErrNotRectangular) {
		t.Errorf("missing combination: got %v, want ErrNotRectangular", err)
	}
	duplicate := []ShearModulusPoint{
		{Celsius(30), Seconds(60), Megapascals(100)},
		{Celsius(30), Seconds(60), Megapascals(80)},
		{Celsius(40), Seconds(60), Megapascals(90)},
		{Celsius(40), Seconds(600), Megapascals(70)},
	}
	if _, err := NewShearModulusTable(duplicate); !errors.Is(err, ErrNotRectangular) {
		t.Errorf("duplicate combination: got %v, want ErrNotRectangular", err)
	}
}

func TestInterlayerRegistry(t *testing.T) {
	reg := DefaultInterlayers()
	names := reg.Names()
	want := []string{IonoplastNCSEA, PVBNCSEA}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
	reg.Deregister(PVBNCSEA)
	if _, err := reg.Product(PVBNCSEA); err == nil {
		t.Error("deregistered product should not resolve")
	}
	reg.Deregister("never registered") // no-op
}
