/*
 * interfaces.go, part of gbsa.
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

// BornParameters is the read surface an energy/force kernel consumes. A
// *GBVISoftcore implements it. The kernel must treat everything obtained
// through this interface as read-only: after the configuration phase the
// store is shared.
type BornParameters interface {

	//NumberOfAtoms returns the fixed atom count N. All per-atom
	//slices below have exactly N elements.
	NumberOfAtoms() int

	//The per-atom parameter arrays. Each getter allocates a zeroed
	//owned buffer on first use, so these never fail.
	AtomicRadii() []float64
	ScaledRadii() []float64
	GammaParameters() []float64
	BornRadiusScaleFactors() []float64

	//Tau returns the dielectric prefactor of the reaction-field term.
	Tau() float64

	//Cutoff and periodic-boundary state. Before configuration these
	//report the zero (disabled) state.
	UseCutoff() bool
	CutoffDistance() float64
	Periodic() bool
	PeriodicBox() [3]float64

	//Switching returns the Born-radius softcore scaling selection with
	//its derived constants, for consumption via a type switch.
	Switching() Switching
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate allows you to add information when you pass the error up. Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//Functions of this package panic, rather than return an error, on conditions that mean the
//calling program is wrong (a precondition violated during the configuration phase).
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrAtomCount        = PanicMsg("gbsa: the number of atoms must be positive")
	ErrBorrowedLength   = PanicMsg("gbsa: borrowed buffer length doesn't match the number of atoms")
	ErrPeriodicNoCutoff = PanicMsg("gbsa: periodic boundary conditions require a cutoff")
	ErrBoxTooSmall      = PanicMsg("gbsa: each periodic box dimension must be at least twice the cutoff")
	ErrNilStore         = PanicMsg("gbsa: operation on a nil parameter store")
)
