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
	"sort"
	"sync"

	"github.com/ctessum/unit"
)

// A ShearModulusPoint is one hold point of a manufacturer's interlayer
// stiffness table: the effective shear modulus G for a load of the given
// duration at the given temperature.
type ShearModulusPoint struct {
	Temperature *unit.Unit
	Duration    *unit.Unit
	G           *unit.Unit
}

// A ShearModulusTable holds a manufacturer's tabulated shear modulus as
// a function of temperature and load duration. Interlayers are
// viscoelastic, so manufacturers publish effective moduli per
// (temperature, duration) pair; queries between hold points are
// interpolated bilinearly and queries outside the tabulated domain hold
// the edge values.
type ShearModulusTable struct {
	grid grid2 // x: temperature [K], y: duration [s], z: G [Pa]
}

// NewShearModulusTable builds a table from manufacturer data points.
// The data must be rectangular: every tabulated temperature must have an
// entry for every tabulated duration and vice versa. Duplicate or
// missing combinations return ErrNotRectangular.
func NewShearModulusTable(points []ShearModulusPoint) (*ShearModulusTable, error) {
	for _, p := range points {
		if err := checkDims("NewShearModulusTable", p.Temperature, unit.Kelvin); err != nil {
			return nil, err
		}
		if err := checkDims("NewShearModulusTable", p.Duration, unit.Second); err != nil {
			return nil, err
		}
		if err := checkPositive("NewShearModulusTable", p.G, unit.Pascal); err != nil {
			return nil, err
		}
	}
	temps := uniqueSorted(points, func(p ShearModulusPoint) float64 { return p.Temperature.Value() })
	durs := uniqueSorted(points, func(p ShearModulusPoint) float64 { return p.Duration.Value() })
	if len(temps)*len(durs) != len(points) {
		return nil, ErrNotRectangular
	}
	z := make([][]float64, len(temps))
	for i := range z {
		z[i] = make([]float64, len(durs))
	}
	seen := make(map[[2]int]bool)
	for _, p := range points {
		i := sort.SearchFloat64s(temps, p.Temperature.Value())
		j := sort.SearchFloat64s(durs, p.Duration.Value())
		if seen[[2]int{i, j}] {
			return nil, ErrNotRectangular
		}
		seen[[2]int{i, j}] = true
		z[i][j] = p.G.Value()
	}
	return &ShearModulusTable{grid: grid2{x: temps, y: durs, z: z}}, nil
}

func uniqueSorted(points []ShearModulusPoint, f func(ShearModulusPoint) float64) []float64 {
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = f(p)
	}
	sort.Float64s(vals)
	out := vals[:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// G returns the shear modulus at the given temperature and load
// duration, interpolating bilinearly between the four surrounding hold
// points and holding the edge values outside the tabulated domain.
func (t *ShearModulusTable) G(temperature, duration *unit.Unit) (*unit.Unit, error) {
	if err := checkDims("ShearModulusTable.G", temperature, unit.Kelvin); err != nil {
		return nil, err
	}
	if err := checkDims("ShearModulusTable.G", duration, unit.Second); err != nil {
		return nil, err
	}
	return Pascals(t.grid.at(temperature.Value(), duration.Value())), nil
}

// An InterlayerRegistry maps interlayer product names to their shear
// modulus tables. Concurrent reads are safe; registration and
// deregistration are serialized internally. Use DefaultInterlayers for
// a registry populated with the NCSEA product data.
type InterlayerRegistry struct {
	mu       sync.RWMutex
	products map[string]*ShearModulusTable
}

// NewInterlayerRegistry creates an empty registry.
func NewInterlayerRegistry() *InterlayerRegistry {
	return &InterlayerRegistry{products: make(map[string]*ShearModulusTable)}
}

// Register validates and adds a product table under the given name,
// replacing any previous table with that name.
func (r *InterlayerRegistry) Register(name string, points []ShearModulusPoint) error {
	table, err := NewShearModulusTable(points)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[name] = table
	return nil
}

// Deregister removes the product with the given name. Removing an
// unknown name is a no-op.
func (r *InterlayerRegistry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, name)
}

// Product returns the table registered under name.
func (r *InterlayerRegistry) Product(name string) (*ShearModulusTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.products[name]
	if !ok {
		return nil, &NotFoundError{Kind: "interlayer product", Value: name}
	}
	return t, nil
}

// Names returns the registered product names in sorted order.
func (r *InterlayerRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.products))
	for n := range r.products {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// An Interlayer is a polymer bonding layer (e.g. PVB or ionoplast)
// between glass plies in a laminate. Its shear modulus comes either
// from a fixed value (static interlayer) or from a product table, in
// which case a reference temperature and load duration must be set
// before the modulus can be read.
type Interlayer struct {
	t     *unit.Unit
	g     *unit.Unit         // fixed modulus; nil for table-backed interlayers
	table *ShearModulusTable // nil for static interlayers

	temperature *unit.Unit
	duration    *unit.Unit
}

// NewStaticInterlayer creates an interlayer of thickness t with the
// fixed shear modulus g.
func NewStaticInterlayer(t, g *unit.Unit) (*Interlayer, error) {
	if err := checkPositive("NewStaticInterlayer", t, unit.Meter); err != nil {
		return nil, err
	}
	if err := checkPositive("NewStaticInterlayer", g, unit.Pascal); err != nil {
		return nil, err
	}
	return &Interlayer{t: t.Clone(), g: g.Clone()}, nil
}

// NewProductInterlayer creates an interlayer of thickness t backed by
// the product table registered under product in reg. The reference
// temperature and duration start unset.
func NewProductInterlayer(t *unit.Unit, product string, reg *InterlayerRegistry) (*Interlayer, error) {
	if err := checkPositive("NewProductInterlayer", t, unit.Meter); err != nil {
		return nil, err
	}
	table, err := reg.Product(product)
	if err != nil {
		return nil, err
	}
	return &Interlayer{t: t.Clone(), table: table}, nil
}

// T returns the interlayer thickness.
func (i *Interlayer) T() *unit.Unit { return i.t }

// Temperature returns the reference temperature, or nil if unset. It
// returns ErrNoProductTable for a static interlayer.
func (i *Interlayer) Temperature() (*unit.Unit, error) {
	if i.table == nil {
		return nil, ErrNoProductTable
	}
	return i.temperature, nil
}

// SetTemperature sets the reference temperature for table lookups. It
// returns ErrNoProductTable for a static interlayer.
func (i *Interlayer) SetTemperature(temperature *unit.Unit) error {
	if i.table == nil {
		return ErrNoProductTable
	}
	if err := checkDims("SetTemperature", temperature, unit.Kelvin); err != nil {
		return err
	}
	i.temperature = temperature.Clone()
	return nil
}

// Duration returns the reference load duration, or nil if unset. It
// returns ErrNoProductTable for a static interlayer.
func (i *Interlayer) Duration() (*unit.Unit, error) {
	if i.table == nil {
		return nil, ErrNoProductTable
	}
	return i.duration, nil
}

// SetDuration sets the reference load duration for table lookups. It
// returns ErrNoProductTable for a static interlayer.
func (i *Interlayer) SetDuration(duration *unit.Unit) error {
	if i.table == nil {
		return ErrNoProductTable
	}
	if err := checkDims("SetDuration", duration, unit.Second); err != nil {
		return err
	}
	i.duration = duration.Clone()
	return nil
}

// G returns the shear modulus: the fixed value for a static interlayer,
// otherwise the table value at the reference temperature and duration.
// Reading a table-backed interlayer before both references are set
// returns ErrReferenceNotSet.
func (i *Interlayer) G() (*unit.Unit, error) {
	if i.g != nil {
		return i.g, nil
	}
	if i.temperature == nil || i.duration == nil {
		return nil, ErrReferenceNotSet
	}
	return i.table.G(i.temperature, i.duration)
}

// DefaultInterlayers returns a registry populated with the interlayer
// stiffness tables from the NCSEA Structural Glass Design Guide.
func DefaultInterlayers() *InterlayerRegistry {
	r := NewInterlayerRegistry()
	r.products[IonoplastNCSEA] = mustTable(
		[]float64{10, 20, 24, 30, 40, 50, 60, 70, 80}, // degC
		[]float64{1, 3, 60, 3600, secondsPerDay, secondsPerMonth, 10 * secondsPerYear},
		[][]float64{ // MPa
			{240, 236, 225, 206, 190, 171, 153},
			{217, 211, 195, 169, 146, 112, 86.6},
			{200, 193, 173, 142, 111, 73.2, 26.0},
			{151, 141, 110, 59.9, 49.7, 11.6, 5.31},
			{77.0, 63.0, 30.7, 9.28, 4.54, 3.29, 2.95},
			{36.2, 26.4, 11.3, 4.20, 2.82, 2.18, 2.00},
			{11.8, 8.18, 3.64, 1.70, 1.29, 1.08, 0.97},
			{3.77, 2.93, 1.88, 0.84, 0.59, 0.48, 0.45},
			{1.55, 1.32, 0.83, 0.32, 0.25, 0.21, 0.18},
		})
	r.products[PVBNCSEA] = mustTable(
		[]float64{20, 30, 40, 50}, // degC
		[]float64{3, 60, 3600, secondsPerDay, secondsPerMonth, secondsPerYear},
		[][]float64{ // MPa
			{8.060, 1.640, 0.840, 0.508, 0.372, 0.266},
			{0.971, 0.753, 0.441, 0.281, 0.069, 0.052},
			{0.610, 0.455, 0.234, 0.234, 0.052, 0.052},
			{0.440, 0.290, 0.052, 0.052, 0.052, 0.052},
		})
	return r
}

// Built-in product names.
const (
	IonoplastNCSEA = "Ionoplast Interlayer NCSEA"
	PVBNCSEA       = "PVB NCSEA"
)

// mustTable builds a table from a dense grid of temperatures (degC),
// durations (s), and moduli (MPa). Used for the built-in product data.
func mustTable(tempsC, durs []float64, gMPa [][]float64) *ShearModulusTable {
	points := make([]ShearModulusPoint, 0, len(tempsC)*len(durs))
	for i, tc := range tempsC {
		for j, d := range durs {
			points = append(points, ShearModulusPoint{
				Temperature: Celsius(tc),
				Duration:    Seconds(d),
				G:           Megapascals(gMPa[i][j]),
			})
		}
	}
	t, err := NewShearModulusTable(points)
	if err != nil {
		panic(err) // built-in data is rectangular
	}
	return t
}
