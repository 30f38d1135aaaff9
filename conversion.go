/*
 * conversion.go, part of gbsa.
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

//This provides useful conversion factors and other constants

//Conversions
const (
	Kcal2KJ = 4.184
	KJ2Kcal = 1 / 4.184
	A2Nm    = 0.1
	Nm2A    = 10.0
)

//CoulombFactor is the electrostatic constant 1/(4 pi eps0) in
//kJ mol^-1 nm e^-2.
const CoulombFactor = 138.935485

//Defaults for the implicit-solvent scalars.
const (
	DefSoluteDielectric  = 1.0
	DefSolventDielectric = 78.3
	DefProbeRadius       = 0.14 //nm, a water molecule

	DefQuinticLowerLimitFactor     = 0.8
	DefQuinticUpperBornRadiusLimit = 5.0 //nm
)
