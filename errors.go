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
	"fmt"

	"github.com/ctessum/unit"
)

// Every error in this package reflects invalid input rather than a
// transient condition, so nothing is retried and nothing is downgraded
// to a default value. Errors are reported to the caller at the point of
// the offending operation.
var (
	// ErrNoProductTable is returned when temperature or duration state is
	// accessed on an interlayer with a fixed shear modulus.
	ErrNoProductTable = errors.New("structglass: no product table provided; static case being used")

	// ErrReferenceNotSet is returned when the shear modulus of a
	// table-backed interlayer is read before both the reference
	// temperature and the reference duration have been set.
	ErrReferenceNotSet = errors.New("structglass: reference temperature and/or duration not set")

	// ErrNotRectangular is returned when a shear modulus table is missing
	// entries for some temperature × duration combinations.
	ErrNotRectangular = errors.New("structglass: the provided product data is not rectangular")

	// ErrDuplicateInBuildup is returned when a buildup contains the same
	// package instance more than once.
	ErrDuplicateInBuildup = errors.New("structglass: the buildup must contain unique package objects")

	// ErrMixedMethods is returned when a buildup mixes packages built
	// from different equivalent thickness formulations.
	ErrMixedMethods = errors.New("structglass: the buildup must use a single equivalent thickness formulation")
)

// A DimensionalityError reports a quantity that does not carry the
// physical dimension an operation requires.
type DimensionalityError struct {
	// Op is the operation that rejected the quantity.
	Op string
	// Want is the required dimensions; Got is what was supplied, or nil
	// for a missing quantity.
	Want, Got unit.Dimensions
}

func (e *DimensionalityError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("structglass: %s: missing quantity; need dimensions %v", e.Op, e.Want)
	}
	return fmt.Sprintf("structglass: %s: have dimensions %v, need %v", e.Op, e.Got, e.Want)
}

// A RangeError reports a physical quantity outside its allowable range,
// such as a zero or negative thickness.
type RangeError struct {
	Op     string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("structglass: %s: %s", e.Op, e.Reason)
}

// A NotFoundError reports a failed registry or catalog lookup.
type NotFoundError struct {
	// Kind describes the lookup that failed, e.g. "nominal thickness".
	Kind string
	// Value is the offending key.
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("structglass: could not find %s %q", e.Kind, e.Value)
}

// A PlyValidationError reports a laminate composition that violates the
// applicability rule of its equivalent thickness formulation.
type PlyValidationError struct {
	Reason string
}

func (e *PlyValidationError) Error() string {
	return "structglass: ply validation failed: " + e.Reason
}
