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

// piecewise is a piecewise-linear interpolant over the hold points
// (x[i], y[i]), where x is sorted ascending. Queries outside the domain
// hold the edge values rather than extrapolating.
type piecewise struct {
	x, y []float64
}

// bracket returns indices lo, hi and fraction f such that v sits a
// fraction f of the way between x[lo] and x[hi], with hi = lo+1 for
// interior queries. Queries outside the domain clamp to the nearest
// edge (lo == hi, f == 0).
func bracket(x []float64, v float64) (lo, hi int, f float64) {
	if v <= x[0] {
		return 0, 0, 0
	}
	if l := len(x) - 1; v >= x[l] {
		return l, l, 0
	}
	for i := 0; i < len(x)-1; i++ {
		if v <= x[i+1] {
			return i, i + 1, (v - x[i]) / (x[i+1] - x[i])
		}
	}
	panic("structglass: unreachable") // x is sorted
}

func (p piecewise) at(v float64) float64 {
	lo, hi, f := bracket(p.x, v)
	return p.y[lo] + f*(p.y[hi]-p.y[lo])
}

// grid2 is a bilinear interpolant over a rectangular grid, with
// z[i][j] holding the value at (x[i], y[j]). As with piecewise, queries
// beyond either axis hold the edge values, and a query at a hold point
// reproduces the tabulated value exactly.
type grid2 struct {
	x, y []float64
	z    [][]float64
}

func (g grid2) at(xv, yv float64) float64 {
	i0, i1, fx := bracket(g.x, xv)
	j0, j1, fy := bracket(g.y, yv)
	return g.z[i0][j0]*(1-fx)*(1-fy) +
		g.z[i1][j0]*fx*(1-fy) +
		g.z[i0][j1]*(1-fx)*fy +
		g.z[i1][j1]*fx*fy
}
