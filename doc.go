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

// Package structglass computes the structural response of multi-ply
// laminated glass panels under uniform lateral load, following
// ASTM E1300 and the NCSEA Engineering Structural Glass Design Guide.
//
// Glass plies and interlayers (GlassPly, Interlayer) combine into
// laminate packages through one of three equivalent thickness
// formulations (MonolithicMethod, NonCompositeMethod,
// ShearTransferCoefMethod). A buildup of packages sharing a panel is
// solved by IGUWindDemand, which distributes the load by relative
// bending stiffness and evaluates each package on a four-side simply
// supported plate (Roarks4side).
//
// All physical inputs and outputs are *unit.Unit quantities
// (github.com/ctessum/unit); operations check dimensions at their
// boundaries and return an error for dimensionally wrong input.
package structglass

// Version gives the version number.
const Version = "1.0.0"
