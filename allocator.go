/*
 * allocator.go, part of gbsa.
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

import "sync"

// Allocator obtains and releases the backing storage for owned per-atom
// arrays. A store passes every owned buffer to Free exactly once, on
// replacement or on Release. The contents of a slice returned by Alloc are
// unspecified; zero-filling, where promised, is the store's job.
type Allocator interface {
	Alloc(n int) []float64
	Free(buf []float64)
}

//gcAllocator is the default: plain make, and the garbage collector
//does the actual reclaiming.
type gcAllocator struct{}

func (g gcAllocator) Alloc(n int) []float64 { return make([]float64, n) }

func (g gcAllocator) Free(buf []float64) {}

// PoolAllocator recycles buffers of a single size through a sync.Pool. It is
// meant for repeated setup/teardown of systems with the same atom count,
// where the parameter arrays would otherwise churn the allocator. Requests
// for any other size fall back to plain allocation, and Free quietly drops
// buffers with the wrong capacity.
type PoolAllocator struct {
	n    int
	pool sync.Pool
}

//NewPoolAllocator returns a PoolAllocator recycling buffers of n elements.
//Panics if n is not positive.
func NewPoolAllocator(n int) *PoolAllocator {
	if n <= 0 {
		panic(ErrAtomCount)
	}
	P := new(PoolAllocator)
	P.n = n
	P.pool.New = func() interface{} { return make([]float64, n) }
	return P
}

func (P *PoolAllocator) Alloc(n int) []float64 {
	if n != P.n {
		return make([]float64, n)
	}
	return P.pool.Get().([]float64)[:n]
}

func (P *PoolAllocator) Free(buf []float64) {
	if cap(buf) != P.n {
		return
	}
	P.pool.Put(buf[:P.n])
}

//buffer is one per-atom array together with its ownership tag. If owned,
//the enclosing store is the exclusive deallocator of data; if not, data is
//a view into memory somebody else manages and must never be freed here.
type buffer struct {
	data  []float64
	owned bool
}

//set returns whether the buffer currently holds an array.
func (b *buffer) set() bool {
	return b.data != nil
}

//lazyGet returns the current array, allocating a zero-filled owned one of
//length n on first use.
func lazyGet(a Allocator, n int, b *buffer) []float64 {
	if b.data == nil {
		b.data = a.Alloc(n)
		for i := range b.data {
			b.data[i] = 0
		}
		b.owned = true
	}
	return b.data
}

//borrowInto installs buf, which remains owned by the caller, releasing
//whatever owned array was there before. Panics if len(buf) != n.
func borrowInto(a Allocator, n int, b *buffer, buf []float64) {
	if len(buf) != n {
		panic(ErrBorrowedLength)
	}
	if b.owned && b.data != nil && &b.data[0] != &buf[0] {
		a.Free(b.data)
	}
	b.data = buf
	b.owned = false
}

//copyInto installs a fresh owned copy of vals. The previous owned array, if
//any, is released first. A length mismatch leaves the buffer untouched.
func copyInto(a Allocator, n int, b *buffer, vals []float64) error {
	if len(vals) != n {
		return lengthMismatch(n, len(vals))
	}
	if b.owned && b.data != nil {
		a.Free(b.data)
	}
	b.data = a.Alloc(n)
	copy(b.data, vals)
	b.owned = true
	return nil
}

//release frees the array if, and only if, it is owned, and leaves the
//buffer unset either way. Calling it again is a no-op.
func release(a Allocator, b *buffer) {
	if b.owned && b.data != nil {
		a.Free(b.data)
	}
	b.data = nil
	b.owned = false
}

//stateString describes the buffer for diagnostics without allocating it.
func (b *buffer) stateString() string {
	if b.data == nil {
		return "unset"
	}
	if b.owned {
		return "set (owned)"
	}
	return "set (borrowed)"
}
