/*
 * implicitsolvent.go, part of gbsa.
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

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/**Note: Several functions here panic instead of returning errors. This is because they are "fundamental"
 * functions, called during the configuration phase: if something goes wrong in them, the program is
 * way-most likely wrong and should crash. Data errors (a slice of the wrong length, unset radii) are
 * returned as regular errors instead.**/

// ImplicitSolvent holds the parameters common to the whole implicit-solvent
// family: the fixed atom count, the per-atom atomic radii, and the
// dielectric/geometry scalars. Parameter stores for particular models embed
// it and inherit its accessors.
type ImplicitSolvent struct {
	natoms            int
	alloc             Allocator
	atomicRadii       buffer
	soluteDielectric  float64
	solventDielectric float64
	probeRadius       float64
	electricConstant  float64
}

//NewImplicitSolvent returns a parameter object for natoms atoms with the
//default dielectrics, probe radius and electric constant. An optional
//Allocator takes over the backing storage of owned arrays; by default the
//garbage collector does. Panics if natoms is not positive: the atom count
//is fixed for the lifetime of the object and everything downstream sizes
//against it.
func NewImplicitSolvent(natoms int, alloc ...Allocator) *ImplicitSolvent {
	if natoms <= 0 {
		panic(ErrAtomCount)
	}
	P := new(ImplicitSolvent)
	P.natoms = natoms
	P.alloc = gcAllocator{}
	if len(alloc) > 0 && alloc[0] != nil {
		P.alloc = alloc[0]
	}
	P.soluteDielectric = DefSoluteDielectric
	P.solventDielectric = DefSolventDielectric
	P.probeRadius = DefProbeRadius
	P.electricConstant = -0.5 * CoulombFactor
	return P
}

//NumberOfAtoms returns the atom count fixed at construction.
func (P *ImplicitSolvent) NumberOfAtoms() int {
	return P.natoms
}

//AtomicRadii returns the per-atom atomic radii (nm). The first call on an
//unset array allocates a zero-filled owned buffer; later calls return the
//identical slice until it is replaced.
func (P *ImplicitSolvent) AtomicRadii() []float64 {
	return lazyGet(P.alloc, P.natoms, &P.atomicRadii)
}

//BorrowAtomicRadii installs buf as the atomic radii without copying. The
//caller keeps the ownership: the store will never free buf, and the caller
//must keep it valid, and of length N, for as long as the store is in use.
//Whatever owned buffer was installed before is released. Panics if
//len(buf) != N.
func (P *ImplicitSolvent) BorrowAtomicRadii(buf []float64) {
	borrowInto(P.alloc, P.natoms, &P.atomicRadii, buf)
}

//SetAtomicRadii copies vals into a freshly allocated owned buffer. It is
//an error for len(vals) to differ from N; the store is left untouched in
//that case.
func (P *ImplicitSolvent) SetAtomicRadii(vals []float64) error {
	return copyInto(P.alloc, P.natoms, &P.atomicRadii, vals)
}

//SetOwnAtomicRadii reclassifies the installed atomic-radii buffer as owned
//or borrowed without replacing it, transferring the release responsibility
//in either direction.
func (P *ImplicitSolvent) SetOwnAtomicRadii(owned bool) {
	P.atomicRadii.owned = owned
}

//SoluteDielectric returns the solute (interior) dielectric constant.
func (P *ImplicitSolvent) SoluteDielectric() float64 {
	return P.soluteDielectric
}

//SetSoluteDielectric sets the solute dielectric constant.
func (P *ImplicitSolvent) SetSoluteDielectric(e float64) {
	P.soluteDielectric = e
}

//SolventDielectric returns the solvent dielectric constant.
func (P *ImplicitSolvent) SolventDielectric() float64 {
	return P.solventDielectric
}

//SetSolventDielectric sets the solvent dielectric constant.
func (P *ImplicitSolvent) SetSolventDielectric(e float64) {
	P.solventDielectric = e
}

//ProbeRadius returns the solvent probe radius (nm).
func (P *ImplicitSolvent) ProbeRadius() float64 {
	return P.probeRadius
}

//SetProbeRadius sets the solvent probe radius (nm).
func (P *ImplicitSolvent) SetProbeRadius(r float64) {
	P.probeRadius = r
}

//ElectricConstant returns the electrostatic prefactor, in
//kJ mol^-1 nm e^-2.
func (P *ImplicitSolvent) ElectricConstant() float64 {
	return P.electricConstant
}

//SetElectricConstant sets the electrostatic prefactor.
func (P *ImplicitSolvent) SetElectricConstant(k float64) {
	P.electricConstant = k
}

//Tau returns the dielectric prefactor 1/soluteDielectric −
//1/solventDielectric that multiplies the reaction-field energy term. A
//dielectric of exactly zero is physically meaningless but must not crash
//parameter setup, so in that case Tau returns zero.
func (P *ImplicitSolvent) Tau() float64 {
	if P.soluteDielectric == 0 || P.solventDielectric == 0 {
		return 0
	}
	return 1/P.soluteDielectric - 1/P.solventDielectric
}

//Release returns every owned per-atom buffer to the allocator, exactly
//once, and marks the arrays unset. Borrowed buffers are left alone: their
//owners release them. Release is idempotent.
func (P *ImplicitSolvent) Release() {
	release(P.alloc, &P.atomicRadii)
}

//RadiiCol returns a column vector with the atomic radii, and an error if
//they have not all been obtained. The vector is backed by a fresh copy, so
//writing to it doesn't touch the store.
func (P *ImplicitSolvent) RadiiCol() (*mat.VecDense, error) {
	if !P.atomicRadii.set() {
		return nil, fmt.Errorf("gbsa: the atomic radii have not been set")
	}
	radii := make([]float64, P.natoms)
	for i, v := range P.atomicRadii.data {
		if v == 0 {
			return nil, fmt.Errorf("gbsa: not all the atomic radii have been obtained: %d", i)
		}
		radii[i] = v
	}
	return mat.NewVecDense(len(radii), radii), nil
}

//StateString returns a human-readable dump of the object's state, headed
//by title, for logging. It doesn't allocate any per-atom array as a side
//effect: unset arrays are reported as unset. The format carries no
//stability promise.
func (P *ImplicitSolvent) StateString(title string) string {
	s := title + "\n"
	s += fmt.Sprintf("   number of atoms=%d\n", P.natoms)
	s += fmt.Sprintf("   solute dielectric=%.4f solvent dielectric=%.4f\n", P.soluteDielectric, P.solventDielectric)
	s += fmt.Sprintf("   probe radius=%.4f nm electric constant=%.6f kJ/(mol nm e^2)\n", P.probeRadius, P.electricConstant)
	s += fmt.Sprintf("   tau=%.6f\n", P.Tau())
	s += "   atomic radii=" + P.atomicRadii.stateString() + "\n"
	return s
}

//lengthMismatch is the error for a by-value array set with the wrong
//number of elements.
func lengthMismatch(want, got int) error {
	return fmt.Errorf("gbsa: wrong number of per-atom values: expected %d, got %d", want, got)
}
