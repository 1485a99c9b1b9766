/*
 * kernel.go, part of gochemgrid.
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

import "math"

//Kernel gives the occupancy contributed by an atom of a given radius to
//a point at squared distance dist2 from its center.
type Kernel interface {
	//Occupancy is in [0,1], and 0 for any distance at or beyond Cutoff(radius).
	Occupancy(dist2, radius float64) float64
	//Cutoff is the distance beyond which the atom contributes nothing.
	Cutoff(radius float64) float64
}

//radiusMultiple is the cutoff of the GaussianKernel, in units of the atomic radius.
const radiusMultiple = 1.5

//e^-2, the value of the gaussian part at d = r.
var emin2 = math.Exp(-2)

//GaussianKernel is a gaussian with a width of half the atomic radius up to the radius, followed
//by a quadratic that continues it smoothly and reaches 0 at 1.5 times the radius.
type GaussianKernel struct{}

//Cutoff returns 1.5 times the radius
func (GaussianKernel) Cutoff(radius float64) float64 {
	return radiusMultiple * radius
}

//Occupancy returns the occupancy at squared distance dist2 of an atom of the given radius.
func (k GaussianKernel) Occupancy(dist2, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	cut := k.Cutoff(radius)
	if dist2 >= cut*cut {
		return 0
	}
	h := radius / 2
	h2 := h * h
	if dist2 <= radius*radius {
		return math.Exp(-dist2 / (2 * h2))
	}
	d := math.Sqrt(dist2)
	q := emin2 * (dist2/h2 - 6*d/h + 9)
	return math.Max(q, 0)
}

//BinaryKernel gives 1 for every point closer than the atomic radius, and 0 otherwise.
type BinaryKernel struct{}

//Cutoff returns the radius.
func (BinaryKernel) Cutoff(radius float64) float64 {
	return radius
}

//Occupancy returns 1 if dist2 is smaller than the squared radius, 0 otherwise.
func (BinaryKernel) Occupancy(dist2, radius float64) float64 {
	if dist2 < radius*radius {
		return 1
	}
	return 0
}
