/*
 * atomicdata.go, part of gbsa.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gbsa

import "fmt"

//A map for assigning van der Waals radii to elements, in A.
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70, //the sp3 radius
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

//VdwRadii returns the tabulated van der Waals radius for each given element
//symbol, converted to nm so the values can seed SetAtomicRadii directly.
//It returns an error on the first symbol with no tabulated radius.
//Gamma parameters have no per-element default: they are force-field fit
//quantities, so callers must supply them from their parametrization.
func VdwRadii(symbols []string) ([]float64, error) {
	radii := make([]float64, len(symbols))
	for i, s := range symbols {
		r, ok := symbolVdwrad[s]
		if !ok {
			return nil, fmt.Errorf("gbsa: no van der Waals radius tabulated for element %q (atom %d)", s, i)
		}
		radii[i] = r * A2Nm
	}
	return radii, nil
}
