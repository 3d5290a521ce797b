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

// Command structglass checks laminated glass panels under wind load
// using equivalent thickness laminate models and four-side simply
// supported plate theory.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
