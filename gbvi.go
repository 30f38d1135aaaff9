/*
 * gbvi.go, part of gbsa.
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
	"math"
)

// BornRadiusScalingMethod selects the softcore scaling applied to Born radii
// near solvent-excluded boundaries.
type BornRadiusScalingMethod int

const (
	//NoScaling leaves the Born radii unmodified.
	NoScaling BornRadiusScalingMethod = iota
	//Tanh switches with a hyperbolic tangent (Proteins 55, 383-394 (2004), Eq. 6).
	Tanh
	//QuinticSpline switches with a degree-5 polynomial in inverse-cube
	//Born-radius space.
	QuinticSpline
)

func (m BornRadiusScalingMethod) String() string {
	switch m {
	case NoScaling:
		return "NoScaling"
	case Tanh:
		return "Tanh"
	case QuinticSpline:
		return "QuinticSpline"
	}
	return fmt.Sprintf("BornRadiusScalingMethod(%d)", int(m))
}

//The switching selection as a closed set of variants, so a kernel consumes
//it with one type switch instead of querying several optional fields.

// Switching is the Born-radius softcore scaling selection together with
// whatever derived constants that selection needs. Its only implementations
// are SwitchNone, SwitchTanh and SwitchQuintic.
type Switching interface {
	isSwitching()
}

//SwitchNone means Born radii are applied unmodified.
type SwitchNone struct{}

//SwitchTanh selects the hyperbolic-tangent switch, which carries no extra
//constants; the function itself lives with the kernel.
type SwitchTanh struct{}

//SwitchQuintic selects the quintic-spline switch acting on inverse-cube
//Born radii. UpperSplineLimit is the domain boundary the polynomial
//approaches; LowerLimitFactor times that value is where it starts acting.
type SwitchQuintic struct {
	LowerLimitFactor float64
	UpperSplineLimit float64
}

func (SwitchNone) isSwitching()    {}
func (SwitchTanh) isSwitching()    {}
func (SwitchQuintic) isSwitching() {}

// GBVISoftcore is the parameter store for a GB/VI (Generalized Born/Volume
// Integral) calculation with softcore Born-radius scaling. On top of the
// embedded ImplicitSolvent it keeps three more per-atom arrays, the
// cutoff/periodic-boundary configuration and the scaling policy. It is
// populated by one goroutine during setup and then handed read-only to the
// kernel; nothing here locks.
type GBVISoftcore struct {
	*ImplicitSolvent
	scaledRadii            buffer
	gammaParameters        buffer
	bornRadiusScaleFactors buffer

	cutoff         bool
	cutoffDistance float64
	periodic       bool
	box            [3]float64

	method                      BornRadiusScalingMethod
	quinticLowerLimitFactor     float64
	quinticUpperBornRadiusLimit float64
}

//NewGBVISoftcore returns a GB/VI softcore parameter store for natoms atoms.
//Scaling defaults to NoScaling with the quintic constants preset (lower
//limit factor 0.8, upper Born-radius limit 5.0 nm, so the derived spline
//limit is 0.008 from construction). Panics if natoms is not positive.
func NewGBVISoftcore(natoms int, alloc ...Allocator) *GBVISoftcore {
	G := new(GBVISoftcore)
	G.ImplicitSolvent = NewImplicitSolvent(natoms, alloc...)
	G.method = NoScaling
	G.quinticLowerLimitFactor = DefQuinticLowerLimitFactor
	G.quinticUpperBornRadiusLimit = DefQuinticUpperBornRadiusLimit
	return G
}

/*The three GB/VI arrays. The operation set is the same as for the
 * atomic radii on ImplicitSolvent: lazy zeroed get, zero-copy borrow,
 * by-value copy, and ownership reclassification. Each array's ownership is
 * independent, and no operation touches a sibling array.*/

//ScaledRadii returns the per-atom scaled radii (nm), allocating a zeroed
//owned buffer on first use.
func (G *GBVISoftcore) ScaledRadii() []float64 {
	return lazyGet(G.alloc, G.natoms, &G.scaledRadii)
}

//BorrowScaledRadii installs an externally owned scaled-radii buffer without
//copying; the previous owned buffer, if any, is released. Panics if
//len(buf) != N. The external owner is responsible for any synchronization
//if it mutates buf while the store is in use.
func (G *GBVISoftcore) BorrowScaledRadii(buf []float64) {
	borrowInto(G.alloc, G.natoms, &G.scaledRadii, buf)
}

//SetScaledRadii copies vals into a fresh owned buffer. Errors if
//len(vals) != N, leaving the store untouched.
func (G *GBVISoftcore) SetScaledRadii(vals []float64) error {
	return copyInto(G.alloc, G.natoms, &G.scaledRadii, vals)
}

//SetOwnScaledRadii reclassifies the installed buffer as owned or borrowed
//without replacing it.
func (G *GBVISoftcore) SetOwnScaledRadii(owned bool) {
	G.scaledRadii.owned = owned
}

//GammaParameters returns the per-atom surface-area weighting coefficients,
//allocating a zeroed owned buffer on first use.
func (G *GBVISoftcore) GammaParameters() []float64 {
	return lazyGet(G.alloc, G.natoms, &G.gammaParameters)
}

//BorrowGammaParameters installs an externally owned gamma buffer without
//copying. Panics if len(buf) != N.
func (G *GBVISoftcore) BorrowGammaParameters(buf []float64) {
	borrowInto(G.alloc, G.natoms, &G.gammaParameters, buf)
}

//SetGammaParameters copies vals into a fresh owned buffer. Errors if
//len(vals) != N.
func (G *GBVISoftcore) SetGammaParameters(vals []float64) error {
	return copyInto(G.alloc, G.natoms, &G.gammaParameters, vals)
}

//SetOwnGammaParameters reclassifies the installed buffer as owned or
//borrowed without replacing it.
func (G *GBVISoftcore) SetOwnGammaParameters(owned bool) {
	G.gammaParameters.owned = owned
}

//BornRadiusScaleFactors returns the per-atom softcore scale factors,
//allocating a zeroed owned buffer on first use.
func (G *GBVISoftcore) BornRadiusScaleFactors() []float64 {
	return lazyGet(G.alloc, G.natoms, &G.bornRadiusScaleFactors)
}

//BorrowBornRadiusScaleFactors installs an externally owned scale-factor
//buffer without copying. Panics if len(buf) != N.
func (G *GBVISoftcore) BorrowBornRadiusScaleFactors(buf []float64) {
	borrowInto(G.alloc, G.natoms, &G.bornRadiusScaleFactors, buf)
}

//SetBornRadiusScaleFactors copies vals into a fresh owned buffer. Errors
//if len(vals) != N.
func (G *GBVISoftcore) SetBornRadiusScaleFactors(vals []float64) error {
	return copyInto(G.alloc, G.natoms, &G.bornRadiusScaleFactors, vals)
}

//SetOwnBornRadiusScaleFactors reclassifies the installed buffer as owned
//or borrowed without replacing it.
func (G *GBVISoftcore) SetOwnBornRadiusScaleFactors(owned bool) {
	G.bornRadiusScaleFactors.owned = owned
}

//Cutoff and periodic boundary conditions.

//SetUseCutoff enables the nonbonded cutoff at the given distance (nm). The
//distance must be finite and non-negative; that is a caller contract, not
//checked here.
func (G *GBVISoftcore) SetUseCutoff(distance float64) {
	G.cutoff = true
	G.cutoffDistance = distance
}

//UseCutoff reports whether a cutoff has been configured.
func (G *GBVISoftcore) UseCutoff() bool {
	return G.cutoff
}

//CutoffDistance returns the cutoff distance (nm), meaningful only while
//UseCutoff is true.
func (G *GBVISoftcore) CutoffDistance() float64 {
	return G.cutoffDistance
}

//SetPeriodic enables periodic boundary conditions with the given box
//dimensions (nm). The cutoff must be enabled first, and every dimension
//must be at least twice the cutoff distance, or the minimum-image
//convention breaks; violating either precondition panics, as it means the
//calling program is configuring the system wrong.
func (G *GBVISoftcore) SetPeriodic(box [3]float64) {
	if !G.cutoff {
		panic(ErrPeriodicNoCutoff)
	}
	for _, v := range box {
		if v < 2*G.cutoffDistance {
			panic(ErrBoxTooSmall)
		}
	}
	G.periodic = true
	G.box = box
}

//Periodic reports whether periodic boundary conditions are enabled.
func (G *GBVISoftcore) Periodic() bool {
	return G.periodic
}

//PeriodicBox returns the box dimensions (nm). Before SetPeriodic it is the
//zero box, which consumers must read as "no periodicity", not as a
//zero-size system.
func (G *GBVISoftcore) PeriodicBox() [3]float64 {
	return G.box
}

//Born-radius scaling policy.

//ScalingMethod returns the selected Born-radius softcore scaling method.
func (G *GBVISoftcore) ScalingMethod() BornRadiusScalingMethod {
	return G.method
}

//SetScalingMethod selects the Born-radius softcore scaling method. The
//selection happens once, during setup; kernels don't expect it to change
//between steps.
func (G *GBVISoftcore) SetScalingMethod(m BornRadiusScalingMethod) {
	G.method = m
}

//QuinticLowerLimitFactor returns the fraction of the upper spline limit at
//which the quintic switch starts acting.
func (G *GBVISoftcore) QuinticLowerLimitFactor() float64 {
	return G.quinticLowerLimitFactor
}

//SetQuinticLowerLimitFactor sets the lower-limit factor of the quintic
//switch.
func (G *GBVISoftcore) SetQuinticLowerLimitFactor(f float64) {
	G.quinticLowerLimitFactor = f
}

//QuinticUpperBornRadiusLimit returns the Born radius (nm) above which the
//quintic switch has fully taken hold.
func (G *GBVISoftcore) QuinticUpperBornRadiusLimit() float64 {
	return G.quinticUpperBornRadiusLimit
}

//SetQuinticUpperBornRadiusLimit sets the upper Born-radius limit of the
//quintic switch. The spline-space limit is derived from it on read, so the
//two can't diverge.
func (G *GBVISoftcore) SetQuinticUpperBornRadiusLimit(r float64) {
	G.quinticUpperBornRadiusLimit = r
}

//QuinticUpperSplineLimit returns the upper limit of the quintic switching
//domain: the upper Born-radius limit raised to the power -3. The spline
//acts on inverse-cube Born radii, the variable of the GB/VI energy term,
//so its domain boundary lives in that space, not in raw radius space.
func (G *GBVISoftcore) QuinticUpperSplineLimit() float64 {
	return math.Pow(G.quinticUpperBornRadiusLimit, -3)
}

//SwitchingDomain returns the interval of inverse-cube Born radii on which
//the quintic switch acts: lowerLimitFactor times the upper spline limit,
//to the upper spline limit. With the defaults that is (0.0064, 0.008).
func (G *GBVISoftcore) SwitchingDomain() (lo, hi float64) {
	hi = G.QuinticUpperSplineLimit()
	lo = G.quinticLowerLimitFactor * hi
	return lo, hi
}

//Switching returns the scaling selection with its derived constants, as a
//value a kernel consumes through one exhaustive type switch.
func (G *GBVISoftcore) Switching() Switching {
	switch G.method {
	case Tanh:
		return SwitchTanh{}
	case QuinticSpline:
		return SwitchQuintic{
			LowerLimitFactor: G.quinticLowerLimitFactor,
			UpperSplineLimit: G.QuinticUpperSplineLimit(),
		}
	}
	return SwitchNone{}
}

//Release returns every owned per-atom buffer, the embedded base's
//included, to the allocator exactly once. Borrowed buffers survive with
//their contents intact. Idempotent.
func (G *GBVISoftcore) Release() {
	release(G.alloc, &G.scaledRadii)
	release(G.alloc, &G.gammaParameters)
	release(G.alloc, &G.bornRadiusScaleFactors)
	G.ImplicitSolvent.Release()
}

//StateString returns a human-readable dump of the full store, headed by
//title: the base object's state plus cutoff/periodic and scaling-policy
//state and the GB/VI array summaries. Unset arrays are reported, not
//allocated. No stability promise on the format.
func (G *GBVISoftcore) StateString(title string) string {
	s := G.ImplicitSolvent.StateString(title)
	s += fmt.Sprintf("   cutoff=%v distance=%.4f nm\n", G.cutoff, G.cutoffDistance)
	s += fmt.Sprintf("   periodic=%v box=[%.4f %.4f %.4f] nm\n", G.periodic, G.box[0], G.box[1], G.box[2])
	s += fmt.Sprintf("   scaling method=%v quintic lower factor=%.4f upper limit=%.4f (spline limit=%.6f)\n",
		G.method, G.quinticLowerLimitFactor, G.quinticUpperBornRadiusLimit, G.QuinticUpperSplineLimit())
	s += "   scaled radii=" + G.scaledRadii.stateString() + "\n"
	s += "   gamma parameters=" + G.gammaParameters.stateString() + "\n"
	s += "   born radius scale factors=" + G.bornRadiusScaleFactors.stateString() + "\n"
	return s
}

//QuinticSwitch evaluates the quintic softcore switching polynomial and its
//derivative at x, for a switching domain going from rl to ru. With
//t=(x-rl)/(ru-rl),
//
//	s  = 1 - t^3 (10 - 15t + 6t^2)
//	ds = -30 t^2 (1-t)^2 / (ru-rl)
//
//so s goes smoothly from 1 at rl to 0 at ru with vanishing first
//derivative at both edges. Callers clamp x into [rl, ru] before switching;
//the polynomial itself is total.
func QuinticSwitch(x, rl, ru float64) (s, ds float64) {
	t := (x - rl) / (ru - rl)
	s = 1 - t*t*t*(10-15*t+6*t*t)
	d := 1 - t
	ds = -30 * t * t * d * d / (ru - rl)
	return s, ds
}
