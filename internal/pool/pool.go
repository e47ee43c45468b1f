// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pool implements a free-list allocator over fixed-size cells,
// parameterized over the payload type T. Backing arrays are never resized
// in place: once a Cell is handed out, its address stays valid for the
// life of the Pool, since growth always appends a brand new array rather
// than reallocating an existing one.
package pool

// Flag bits stored alongside each Cell, independent of its payload.
type Flag uint8

const (
	// Free marks a cell as part of the free list.
	Free Flag = 1 << iota
	// Marked is owned by a collector; cleared on allocation.
	Marked
)

// Cell is a single pool slot: either a live payload of type T, or (when
// Free) a link to the next free cell.
type Cell[T any] struct {
	flags Flag
	next  *Cell[T]

	Item T
}

// IsFree reports whether c is on the free list.
func (c *Cell[T]) IsFree() bool { return c.flags&Free != 0 }

// Marked reports whether the collector's Marked bit is set.
func (c *Cell[T]) Marked() bool { return c.flags&Marked != 0 }

// SetMarked sets or clears the Marked bit.
func (c *Cell[T]) SetMarked(m bool) {
	if m {
		c.flags |= Marked
	} else {
		c.flags &^= Marked
	}
}

// Pool is a linked list of backing arrays of Cell[T], threaded into a
// single free list.
type Pool[T any] struct {
	arrays [][]Cell[T]
	free   *Cell[T]
	live   int
}

// New allocates a Pool with an initial backing array of n cells, all
// threaded onto the free list.
func New[T any](n int) *Pool[T] {
	p := &Pool[T]{}
	if n <= 0 {
		n = 1
	}
	p.addArray(n)
	return p
}

// addArray appends a new backing array of n cells and prepends it onto
// the existing free list in O(n).
func (p *Pool[T]) addArray(n int) {
	arr := make([]Cell[T], n)
	for i := range arr {
		arr[i].flags = Free
		if i+1 < n {
			arr[i].next = &arr[i+1]
		}
	}
	if n > 0 {
		arr[n-1].next = p.free
		p.free = &arr[0]
	}
	p.arrays = append(p.arrays, arr)
}

// Alloc pops a cell from the free list. ok is false when the free list
// is empty.
func (p *Pool[T]) Alloc() (c *Cell[T], ok bool) {
	c = p.free
	if c == nil {
		return nil, false
	}
	p.free = c.next
	c.flags = 0
	c.next = nil
	var zero T
	c.Item = zero
	p.live++
	return c, true
}

// AllocOrExpand allocates a cell, first appending a new backing array of
// growBy cells if the free list is empty.
func (p *Pool[T]) AllocOrExpand(growBy int) *Cell[T] {
	if c, ok := p.Alloc(); ok {
		return c
	}
	p.addArray(growBy)
	c, _ := p.Alloc()
	return c
}

// Free returns c to the free list. Callers are responsible for releasing
// any sub-resources owned by c.Item before calling Free.
func (p *Pool[T]) Free(c *Cell[T]) {
	c.flags = Free
	c.next = p.free
	p.free = c
	p.live--
}

// Iter calls fn once for every cell in every backing array, free or
// live, in allocation order. fn must not retain array slices; it may
// retain individual *Cell[T] pointers, which remain stable.
func (p *Pool[T]) Iter(fn func(c *Cell[T])) {
	for _, arr := range p.arrays {
		for i := range arr {
			fn(&arr[i])
		}
	}
}

// Len returns the number of currently live (non-free) cells.
func (p *Pool[T]) Len() int { return p.live }

// Cap returns the total number of cells across all backing arrays.
func (p *Pool[T]) Cap() int {
	n := 0
	for _, arr := range p.arrays {
		n += len(arr)
	}
	return n
}

// Close releases all backing arrays.
func (p *Pool[T]) Close() {
	p.arrays = nil
	p.free = nil
	p.live = 0
}
