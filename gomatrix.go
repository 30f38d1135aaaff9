/*
 * gomatrix.go, part of gbsa.
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

//Bridges between per-atom slices and the legacy go.matrix column matrices,
//for callers still on the old matrix stack. Support for go.matrix is
//discontinued everywhere else in this library.

package gbsa

import (
	"fmt"

	"github.com/skelterjohn/go.matrix"
)

//ColView returns a 1-column DenseMatrix sharing vals as its backing array:
//writes through the matrix are visible in the slice and vice-versa. The
//usual borrowed-buffer caveat applies, the slice must outlive the matrix.
func ColView(vals []float64) *matrix.DenseMatrix {
	return matrix.MakeDenseMatrix(vals, len(vals), 1)
}

//ColSlice copies the contents of a 1-column DenseMatrix into a new slice.
//It is an error for m to have other than exactly one column, or no rows.
func ColSlice(m *matrix.DenseMatrix) ([]float64, error) {
	if m.Cols() != 1 {
		return nil, fmt.Errorf("gbsa: expected a 1-column matrix, got %d columns", m.Cols())
	}
	if m.Rows() == 0 {
		return nil, fmt.Errorf("gbsa: given an empty matrix")
	}
	vals := make([]float64, m.Rows())
	for i := range vals {
		vals[i] = m.Get(i, 0)
	}
	return vals, nil
}
