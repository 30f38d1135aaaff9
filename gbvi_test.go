/*
 * gbvi_test.go, part of gbsa.
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
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

//countingAllocator counts Alloc/Free pairs, for checking that owned
//buffers are released exactly once and borrowed ones never.
type countingAllocator struct {
	allocs int
	frees  int
}

func (c *countingAllocator) Alloc(n int) []float64 {
	c.allocs++
	return make([]float64, n)
}

func (c *countingAllocator) Free(buf []float64) {
	c.frees++
}

//mustPanic runs f and reports an error unless it panics.
func mustPanic(Te *testing.T, name string, f func()) {
	defer func() {
		if recover() == nil {
			Te.Errorf("%s should have panicked", name)
		}
	}()
	f()
}

//TestLazyGet checks that a fresh store gives length-N all-zero arrays on
//first access, and the very same backing array afterwards.
func TestLazyGet(Te *testing.T) {
	const N = 7
	p := NewGBVISoftcore(N)
	arrays := map[string]func() []float64{
		"AtomicRadii":            p.AtomicRadii,
		"ScaledRadii":            p.ScaledRadii,
		"GammaParameters":        p.GammaParameters,
		"BornRadiusScaleFactors": p.BornRadiusScaleFactors,
	}
	for name, get := range arrays {
		first := get()
		if len(first) != N {
			Te.Errorf("%s: got length %d, want %d", name, len(first), N)
		}
		for i, v := range first {
			if v != 0 {
				Te.Errorf("%s: element %d not zero-initialized: %f", name, i, v)
			}
		}
		second := get()
		if &first[0] != &second[0] {
			Te.Errorf("%s: second get returned a different backing array", name)
		}
	}
}

func TestConstructorPanics(Te *testing.T) {
	mustPanic(Te, "NewGBVISoftcore(0)", func() { NewGBVISoftcore(0) })
	mustPanic(Te, "NewGBVISoftcore(-1)", func() { NewGBVISoftcore(-1) })
	mustPanic(Te, "NewImplicitSolvent(0)", func() { NewImplicitSolvent(0) })
}

//TestOwnership does the allocation accounting: a by-value replacement
//frees exactly one buffer, Release frees each owned buffer once and is
//idempotent, and borrowed buffers are never freed.
func TestOwnership(Te *testing.T) {
	const N = 5
	c := new(countingAllocator)
	p := NewGBVISoftcore(N, c)
	vals := []float64{1, 2, 3, 4, 5}
	if err := p.SetGammaParameters(vals); err != nil {
		Te.Error(err)
	}
	if c.allocs != 1 || c.frees != 0 {
		Te.Errorf("after first set: %d allocs %d frees", c.allocs, c.frees)
	}
	//replacing an owned array releases exactly the old one
	if err := p.SetGammaParameters(vals); err != nil {
		Te.Error(err)
	}
	if c.allocs != 2 || c.frees != 1 {
		Te.Errorf("after replacement: %d allocs %d frees", c.allocs, c.frees)
	}
	p.Release()
	if c.frees != 2 {
		Te.Errorf("after Release: %d frees, want 2", c.frees)
	}
	p.Release() //must do nothing
	if c.frees != 2 {
		Te.Errorf("Release is not idempotent: %d frees", c.frees)
	}
}

func TestBorrowedNeverFreed(Te *testing.T) {
	const N = 4
	c := new(countingAllocator)
	p := NewGBVISoftcore(N, c)
	external := []float64{0.1, 0.2, 0.3, 0.4}
	p.BorrowScaledRadii(external)
	p.Release()
	if c.frees != 0 {
		Te.Errorf("Release freed a borrowed buffer (%d frees)", c.frees)
	}
	if !floats.Equal(external, []float64{0.1, 0.2, 0.3, 0.4}) {
		Te.Error("borrowed buffer contents changed after Release")
	}
	//borrowing over an owned buffer releases the owned one
	p.SetScaledRadii([]float64{1, 1, 1, 1})
	p.BorrowScaledRadii(external)
	if c.frees != 1 {
		Te.Errorf("borrow over owned: %d frees, want 1", c.frees)
	}
	//external mutation is visible with no copy in between
	external[2] = 42
	if p.ScaledRadii()[2] != 42 {
		Te.Error("mutation of the borrowed buffer not visible through the getter")
	}
	mustPanic(Te, "BorrowScaledRadii with wrong length", func() { p.BorrowScaledRadii(make([]float64, N+1)) })
}

//TestOwnershipReclassification checks SetOwnX: flipping the flag changes
//what Release frees without replacing the buffer.
func TestOwnershipReclassification(Te *testing.T) {
	const N = 3
	c := new(countingAllocator)
	p := NewGBVISoftcore(N, c)
	external := make([]float64, N)
	p.BorrowBornRadiusScaleFactors(external)
	p.SetOwnBornRadiusScaleFactors(true) //the store must now release it
	p.Release()
	if c.frees != 1 {
		Te.Errorf("reclassified-to-owned buffer not freed: %d frees", c.frees)
	}
	//and the other direction
	p2 := NewGBVISoftcore(N, c)
	p2.SetGammaParameters([]float64{1, 2, 3})
	p2.SetOwnGammaParameters(false)
	frees := c.frees
	p2.Release()
	if c.frees != frees {
		Te.Error("reclassified-to-borrowed buffer was freed")
	}
}

func TestSetLengthMismatch(Te *testing.T) {
	const N = 4
	p := NewGBVISoftcore(N)
	if err := p.SetGammaParameters([]float64{1, 2, 3, 4}); err != nil {
		Te.Error(err)
	}
	err := p.SetGammaParameters([]float64{1, 2, 3})
	if err == nil {
		Te.Error("under-supplied value sequence should be an error")
	}
	fmt.Println("got the expected error:", err)
	//the store must be untouched after the failed set
	if !floats.Equal(p.GammaParameters(), []float64{1, 2, 3, 4}) {
		Te.Error("failed set modified the stored array")
	}
	if err := p.SetGammaParameters(make([]float64, N+2)); err == nil {
		Te.Error("over-supplied value sequence should be an error")
	}
}

func TestRoundTrip(Te *testing.T) {
	const N = 6
	p := NewGBVISoftcore(N)
	vals := []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}
	if err := p.SetGammaParameters(vals); err != nil {
		Te.Error(err)
	}
	if !floats.Equal(p.GammaParameters(), vals) {
		Te.Errorf("round trip failed: got %v want %v", p.GammaParameters(), vals)
	}
	vals[0] = -1 //the store copied, so this must not show up
	if p.GammaParameters()[0] == -1 {
		Te.Error("by-value set aliases the input slice")
	}
}

func TestCutoffPeriodic(Te *testing.T) {
	p := NewGBVISoftcore(3)
	//zero defaults before configuration
	if p.UseCutoff() || p.Periodic() || p.CutoffDistance() != 0 {
		Te.Error("fresh store doesn't report the disabled state")
	}
	if p.PeriodicBox() != [3]float64{} {
		Te.Error("fresh store reports a non-zero box")
	}
	mustPanic(Te, "SetPeriodic without cutoff", func() { p.SetPeriodic([3]float64{2, 2, 2}) })
	p.SetUseCutoff(1.0)
	if !p.UseCutoff() || p.CutoffDistance() != 1.0 {
		Te.Error("cutoff state not recorded")
	}
	mustPanic(Te, "SetPeriodic with a small box", func() { p.SetPeriodic([3]float64{1.9, 2, 2}) })
	if p.Periodic() {
		Te.Error("failed SetPeriodic left periodic enabled")
	}
	p.SetPeriodic([3]float64{2, 2, 2})
	if !p.Periodic() || p.PeriodicBox() != [3]float64{2, 2, 2} {
		Te.Error("periodic state not recorded")
	}
}

func TestQuinticDerivedLimit(Te *testing.T) {
	p := NewGBVISoftcore(1)
	//defaults from construction
	if p.QuinticLowerLimitFactor() != 0.8 || p.QuinticUpperBornRadiusLimit() != 5.0 {
		Te.Error("wrong quintic defaults")
	}
	if math.Abs(p.QuinticUpperSplineLimit()-0.008) > 1e-15 {
		Te.Errorf("default spline limit %g, want 0.008", p.QuinticUpperSplineLimit())
	}
	lo, hi := p.SwitchingDomain()
	if math.Abs(lo-0.0064) > 1e-15 || math.Abs(hi-0.008) > 1e-15 {
		Te.Errorf("default switching domain (%g, %g)", lo, hi)
	}
	for _, limit := range []float64{2.0, 5.0, 1.3, 7.25} {
		p.SetQuinticUpperBornRadiusLimit(limit)
		want := math.Pow(limit, -3)
		if p.QuinticUpperSplineLimit() != want {
			Te.Errorf("limit %g: derived %g, want %g", limit, p.QuinticUpperSplineLimit(), want)
		}
	}
	p.SetQuinticUpperBornRadiusLimit(2.0)
	if p.QuinticUpperSplineLimit() != 0.125 {
		Te.Errorf("limit 2.0: derived %g, want 0.125", p.QuinticUpperSplineLimit())
	}
}

func TestTau(Te *testing.T) {
	p := NewGBVISoftcore(1)
	p.SetSoluteDielectric(1.0)
	p.SetSolventDielectric(78.5)
	want := 1.0 - 1.0/78.5
	if math.Abs(p.Tau()-want) > 1e-12 {
		Te.Errorf("tau %g, want %g", p.Tau(), want)
	}
	p.SetSoluteDielectric(0)
	if p.Tau() != 0 {
		Te.Error("tau with zero solute dielectric should be 0")
	}
	p.SetSoluteDielectric(1.0)
	p.SetSolventDielectric(0)
	if p.Tau() != 0 {
		Te.Error("tau with zero solvent dielectric should be 0")
	}
}

func TestSwitchingUnion(Te *testing.T) {
	p := NewGBVISoftcore(1)
	if _, ok := p.Switching().(SwitchNone); !ok {
		Te.Errorf("default switching is %T, want SwitchNone", p.Switching())
	}
	p.SetScalingMethod(Tanh)
	if _, ok := p.Switching().(SwitchTanh); !ok {
		Te.Errorf("got %T, want SwitchTanh", p.Switching())
	}
	p.SetScalingMethod(QuinticSpline)
	q, ok := p.Switching().(SwitchQuintic)
	if !ok {
		Te.Errorf("got %T, want SwitchQuintic", p.Switching())
	}
	if q.LowerLimitFactor != 0.8 || math.Abs(q.UpperSplineLimit-0.008) > 1e-15 {
		Te.Errorf("SwitchQuintic carries %v", q)
	}
	//the store keeps satisfying the kernel interface
	var _ BornParameters = p
}

func TestQuinticSwitch(Te *testing.T) {
	rl, ru := 0.0064, 0.008
	s, ds := QuinticSwitch(rl, rl, ru)
	if math.Abs(s-1) > 1e-12 || math.Abs(ds) > 1e-9 {
		Te.Errorf("at rl: s=%g ds=%g", s, ds)
	}
	s, ds = QuinticSwitch(ru, rl, ru)
	if math.Abs(s) > 1e-12 || math.Abs(ds) > 1e-9 {
		Te.Errorf("at ru: s=%g ds=%g", s, ds)
	}
	s, _ = QuinticSwitch((rl+ru)/2, rl, ru)
	if math.Abs(s-0.5) > 1e-12 {
		Te.Errorf("at the midpoint: s=%g, want 0.5", s)
	}
	//monotone decrease and negative derivative inside the domain
	prev := 1.0
	for i := 1; i <= 100; i++ {
		x := rl + float64(i)*(ru-rl)/100
		s, ds = QuinticSwitch(x, rl, ru)
		if s > prev {
			Te.Errorf("switch not monotone at x=%g", x)
		}
		if i < 100 && ds >= 0 {
			Te.Errorf("derivative not negative at x=%g: %g", x, ds)
		}
		prev = s
	}
}

func TestStateString(Te *testing.T) {
	p := NewGBVISoftcore(3)
	p.SetUseCutoff(1.2)
	external := []float64{1, 2, 3}
	p.BorrowGammaParameters(external)
	s := p.StateString("GB/VI softcore parameters")
	fmt.Println(s)
	if !strings.Contains(s, "GB/VI softcore parameters") {
		Te.Error("state string lacks the title")
	}
	if !strings.Contains(s, "number of atoms=3") {
		Te.Error("state string lacks the atom count")
	}
	if !strings.Contains(s, "atomic radii=unset") {
		Te.Error("state string doesn't report the unset atomic radii")
	}
	if !strings.Contains(s, "gamma parameters=set (borrowed)") {
		Te.Error("state string doesn't report the borrowed gamma array")
	}
	//reading the state must not have allocated anything
	s2 := p.StateString("again")
	if !strings.Contains(s2, "atomic radii=unset") {
		Te.Error("StateString allocated a per-atom array as a side effect")
	}
}

func TestPoolAllocator(Te *testing.T) {
	const N = 10
	a := NewPoolAllocator(N)
	buf := a.Alloc(N)
	if len(buf) != N {
		Te.Errorf("pool Alloc returned length %d", len(buf))
	}
	a.Free(buf)
	//a wrong-size request falls back to make, and its Free is dropped
	odd := a.Alloc(N + 1)
	if len(odd) != N+1 {
		Te.Errorf("fallback Alloc returned length %d", len(odd))
	}
	a.Free(odd)
	//pool-backed store: contents must still be zeroed on lazy get
	p := NewGBVISoftcore(N, a)
	radii := p.ScaledRadii()
	for i, v := range radii {
		if v != 0 {
			Te.Errorf("pool-backed lazy get not zeroed at %d: %f", i, v)
		}
	}
	p.Release()
	mustPanic(Te, "NewPoolAllocator(0)", func() { NewPoolAllocator(0) })
}
