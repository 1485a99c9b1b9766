/*
 * voxel.go, part of gochemgrid.
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

	"github.com/rmera/gochemgrid/atomtype"
	v3 "github.com/rmera/gochemgrid/v3"
)

//Atom is what the voxelizer needs to know about an atom.
type Atom struct {
	Pos  [3]float64
	Type atomtype.Type
}

//AtomsFrom pairs each vector in coords with the corresponding type.
func AtomsFrom(coords *v3.Matrix, types []atomtype.Type) ([]Atom, error) {
	if coords.NVecs() != len(types) {
		return nil, &Error{fmt.Sprintf("%d coordinates but %d atom types", coords.NVecs(), len(types)), "", []string{"AtomsFrom"}, true}
	}
	ret := make([]Atom, len(types))
	for i, t := range types {
		ret[i] = Atom{Pos: coords.Vec(i), Type: t}
	}
	return ret, nil
}

//Voxelizer computes occupancy grids on a Box. A Voxelizer keeps no state between
//calls, so it can be used for any number of atom sets.
type Voxelizer struct {
	Box     Box
	Kernel  Kernel
	Radii   atomtype.Radii
	Backend Backend
}

//NewVoxelizer returns a Voxelizer on box with the default radii. It uses the BinaryKernel
//if binary is true, and the GaussianKernel otherwise. If backend is nil, Serial is used.
func NewVoxelizer(box Box, binary bool, backend Backend) *Voxelizer {
	var k Kernel = GaussianKernel{}
	if binary {
		k = BinaryKernel{}
	}
	if backend == nil {
		backend = Serial{}
	}
	return &Voxelizer{Box: box, Kernel: k, Radii: atomtype.DefaultRadii(), Backend: backend}
}

//Binary returns true if V produces binary occupancies.
func (V *Voxelizer) Binary() bool {
	_, ok := V.Kernel.(BinaryKernel)
	return ok
}

//Voxelize returns a new tensor with one channel per channel in tm, and the
//occupancies of atoms in it.
func (V *Voxelizer) Voxelize(atoms []Atom, tm *TypeMap) *Tensor {
	T := NewTensor(tm.Channels(), V.Box.Points())
	V.fill(T, atoms, tm)
	return T
}

//VoxelizeInto overwrites T with the occupancies of atoms. T must have the shape
//that Voxelize would give.
func (V *Voxelizer) VoxelizeInto(T *Tensor, atoms []Atom, tm *TypeMap) error {
	n := V.Box.Points()
	if T.Channels != tm.Channels() || T.N != n || len(T.Data) != T.Channels*n*n*n {
		return &Error{fmt.Sprintf("tensor of shape %v can't hold %d channels of %d points per axis", T.Shape(), tm.Channels(), n), "", []string{"VoxelizeInto"}, true}
	}
	T.Zero()
	V.fill(T, atoms, tm)
	return nil
}

//placed is an atom that has a channel and touches the grid.
type placed struct {
	pos     [3]float64
	channel int
	radius  float64
	lo, hi  [3]int
}

func (V *Voxelizer) place(atoms []Atom, tm *TypeMap) []placed {
	ret := make([]placed, 0, len(atoms))
	for _, a := range atoms {
		c := tm.Channel(a.Type)
		if c == Ignore {
			continue
		}
		r := V.Radii[a.Type]
		lo, hi, ok := V.Box.span(a.Pos, V.Kernel.Cutoff(r))
		if !ok {
			continue
		}
		ret = append(ret, placed{pos: a.Pos, channel: c, radius: r, lo: lo, hi: hi})
	}
	return ret
}

//fill expects T to be zeroed. Each slab of x-indexes is only written by one call of
//the backend's work function.
func (V *Voxelizer) fill(T *Tensor, atoms []Atom, tm *TypeMap) {
	list := V.place(atoms, tm)
	if len(list) == 0 {
		return
	}
	o := V.Box.Origin()
	res := V.Box.Resolution
	V.Backend.Run(T.N, func(xlo, xhi int) {
		for _, p := range list {
			ilo := max(p.lo[0], xlo)
			ihi := min(p.hi[0], xhi-1)
			for i := ilo; i <= ihi; i++ {
				dx := o[0] + float64(i)*res - p.pos[0]
				for j := p.lo[1]; j <= p.hi[1]; j++ {
					dy := o[1] + float64(j)*res - p.pos[1]
					base := T.Index(p.channel, i, j, 0)
					for k := p.lo[2]; k <= p.hi[2]; k++ {
						dz := o[2] + float64(k)*res - p.pos[2]
						occ := float32(V.Kernel.Occupancy(dx*dx+dy*dy+dz*dz, p.radius))
						if occ > T.Data[base+k] {
							T.Data[base+k] = occ
						}
					}
				}
			}
		}
	})
}
