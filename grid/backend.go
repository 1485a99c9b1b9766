/*
 * backend.go, part of gochemgrid.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package grid

import (
	"runtime"
	"sync"
)

//Backend runs work over the range [0,n), split in contiguous pieces ("slabs").
//work is called once per slab, and the slabs don't overlap.
type Backend interface {
	Run(n int, work func(lo, hi int))
}

//Serial runs everything as one slab, in the calling goroutine.
type Serial struct{}

func (Serial) Run(n int, work func(lo, hi int)) {
	if n > 0 {
		work(0, n)
	}
}

//Parallel runs each slab in its own goroutine. If Workers is 0 or less,
//runtime.NumCPU() slabs are used.
type Parallel struct {
	Workers int
}

func (P Parallel) Run(n int, work func(lo, hi int)) {
	w := P.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	w = min(w, n)
	if w <= 1 {
		Serial{}.Run(n, work)
		return
	}
	chunk := (n + w - 1) / w
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			work(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

//NewBackend returns Serial if workers is 1, and a Parallel backend with the given
//number of workers otherwise.
func NewBackend(workers int) Backend {
	if workers == 1 {
		return Serial{}
	}
	return Parallel{Workers: workers}
}
