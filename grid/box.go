/*
 * box.go, part of gochemgrid.
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
	"fmt"
	"math"

	v3 "github.com/rmera/gochemgrid/v3"
)

//Box is a cubic grid, given by its center, the length of its edges (Dimension)
//and the distance between neighbouring points (Resolution). All in Angstrom.
type Box struct {
	Center     [3]float64
	Dimension  float64
	Resolution float64
}

//NewBox returns a Box with the given center, dimension and resolution. dim and res
//must be positive and finite.
func NewBox(center [3]float64, dim, res float64) (Box, error) {
	if err := checkDimensions(dim, res); err != nil {
		return Box{}, err
	}
	if !CenterIsSet(center) {
		return Box{}, &Error{fmt.Sprintf("box center %v is not finite", center), "", []string{"NewBox"}, true}
	}
	return Box{Center: center, Dimension: dim, Resolution: res}, nil
}

//AutoBox returns a Box centered in the middle of the axis-aligned bounding box
//of coords. coords must contain at least one atom.
func AutoBox(coords *v3.Matrix, dim, res float64) (Box, error) {
	if err := checkDimensions(dim, res); err != nil {
		return Box{}, err
	}
	if coords == nil || coords.NVecs() == 0 {
		return Box{}, &Error{"can't center a box on an empty molecule", "", []string{"AutoBox"}, true}
	}
	min, max := coords.Bounds()
	var c [3]float64
	for i := range c {
		c[i] = (min[i] + max[i]) / 2
	}
	return Box{Center: c, Dimension: dim, Resolution: res}, nil
}

//CenterIsSet returns true if all the coordinates of c are finite. A center
//that is not set means the box has to be placed automatically.
func CenterIsSet(c [3]float64) bool {
	s := c[0] + c[1] + c[2]
	return !math.IsNaN(s) && !math.IsInf(s, 0)
}

func checkDimensions(dim, res float64) error {
	if !(dim > 0) || math.IsInf(dim, 0) {
		return &Error{fmt.Sprintf("invalid box dimension %g", dim), "", []string{"checkDimensions"}, true}
	}
	if !(res > 0) || math.IsInf(res, 0) {
		return &Error{fmt.Sprintf("invalid grid resolution %g", res), "", []string{"checkDimensions"}, true}
	}
	return nil
}

//Points returns the number of grid points along each axis.
func (b Box) Points() int {
	return int(math.Floor(b.Dimension/b.Resolution+0.5)) + 1
}

//Origin returns the coordinates of the grid point with indexes (0,0,0).
func (b Box) Origin() [3]float64 {
	h := b.Dimension / 2
	return [3]float64{b.Center[0] - h, b.Center[1] - h, b.Center[2] - h}
}

//Midpoint returns the coordinates halfway between the first and last grid points
//of each axis. It differs from Center when Dimension is not a multiple of Resolution.
func (b Box) Midpoint() [3]float64 {
	o := b.Origin()
	h := float64(b.Points()-1) * b.Resolution / 2
	return [3]float64{o[0] + h, o[1] + h, o[2] + h}
}

//Point returns the coordinates of the grid point with indexes i, j, k.
func (b Box) Point(i, j, k int) [3]float64 {
	o := b.Origin()
	return [3]float64{o[0] + float64(i)*b.Resolution, o[1] + float64(j)*b.Resolution, o[2] + float64(k)*b.Resolution}
}

//span returns, for each axis, the first and last index of the grid points that are
//within cutoff of p (as a cube, not a sphere), clamped to the grid. ok is false if
//no point is.
func (b Box) span(p [3]float64, cutoff float64) (lo, hi [3]int, ok bool) {
	o := b.Origin()
	last := b.Points() - 1
	for i := 0; i < 3; i++ {
		l := math.Ceil((p[i] - cutoff - o[i]) / b.Resolution)
		h := math.Floor((p[i] + cutoff - o[i]) / b.Resolution)
		if math.IsNaN(l) || math.IsNaN(h) || h < 0 || l > float64(last) {
			return lo, hi, false
		}
		lo[i] = int(math.Max(l, 0))
		hi[i] = int(math.Min(h, float64(last)))
		if lo[i] > hi[i] {
			return lo, hi, false
		}
	}
	return lo, hi, true
}
