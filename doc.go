/*
 * doc.go, part of gbsa.
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

/*Package gbsa holds per-atom parameters and configuration for implicit-solvent
(Generalized Born family) free-energy calculations.



	**Capabilities**

    Stores per-atom parameter arrays (atomic radii, scaled radii, gamma
	parameters, Born-radius scale factors) for a system with a fixed number
	of atoms, with explicit owned/borrowed semantics for each array so a
	compute backend can inject zero-copy buffers it keeps managing itself.

    Validates cutoff and periodic-boundary configuration (the minimum-image
	requirement that every box dimension be at least twice the cutoff).

    Selects and parametrizes the Born-radius softcore scaling function,
	including the derivation of the quintic-spline switching domain in
	inverse-cube Born-radius space.

    Computes the dielectric prefactor (tau) for the reaction-field energy
	term.

    Seeds atomic radii from tabulated van der Waals values per element.

    Bridges per-atom slices to the legacy go.matrix column-matrix type and
	to gonum column vectors, for callers on either matrix stack.

The energy/force kernels themselves are not part of this package: they consume
a configured store read-only, through the BornParameters interface.

Distances are in nm and energies in kJ/mol unless noted otherwise.*/
package gbsa
