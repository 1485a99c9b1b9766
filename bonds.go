/*
 * bonds.go, part of gochemgrid.
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

package chem

import (
	"fmt"
	"math"
	"sort"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64 //Order 0 means undetermined
}

//Cross returns the atom bonded to origin through B.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

//return a new *Bond slice with the element id removed
func takefromslice(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

//RemoveBond removes the bond b from both of its atoms.
func RemoveBond(b *Bond) error {
	lenb1 := len(b.At1.Bonds)
	lenb2 := len(b.At2.Bonds)
	b.At1.Bonds = takefromslice(b.At1.Bonds, b.Index)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b.Index)
	if len(b.At1.Bonds) == lenb1 || len(b.At2.Bonds) == lenb2 {
		return &Error{message: fmt.Sprintf("Failed to remove bond Index:%d between atoms %d and %d", b.Index, b.At1.Index, b.At2.Index), deco: []string{"RemoveBond"}, critical: true}
	}
	return nil
}

//AssignBonds assigns bonds to a molecule based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33
//Metals, and elements without a known covalent radius, are not bonded. Atoms are binned in cubic cells, so only neighboring
//cells are compared, which keeps whole receptors tractable.
func AssignBonds(mol *Molecule) error {
	coord := mol.Coords()
	mol.FillIndexes()
	tot := mol.Len()
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		at.Bonds = nil
	}
	cellsize := 2*maxCovrad + bondtol
	type cell [3]int
	cells := make(map[cell][]int, tot)
	cellOf := func(v [3]float64) cell {
		return cell{int(math.Floor(v[0] / cellsize)), int(math.Floor(v[1] / cellsize)), int(math.Floor(v[2] / cellsize))}
	}
	for i := 0; i < tot; i++ {
		c := cellOf(coord.Vec(i))
		cells[c] = append(cells[c], i)
	}
	var nextIndex int
	for i := 0; i < tot; i++ {
		at1 := mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if metals[at1.Symbol] || cov1 == 0 {
			continue
		}
		v1 := coord.Vec(i)
		c := cellOf(v1)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					for _, j := range cells[cell{c[0] + dx, c[1] + dy, c[2] + dz}] {
						if j <= i {
							continue //each pair only once
						}
						at2 := mol.Atom(j)
						cov2 := symbolCovrad[at2.Symbol]
						if metals[at2.Symbol] || cov2 == 0 {
							continue
						}
						v2 := coord.Vec(j)
						d := math.Sqrt((v2[0]-v1[0])*(v2[0]-v1[0]) + (v2[1]-v1[1])*(v2[1]-v1[1]) + (v2[2]-v1[2])*(v2[2]-v1[2]))
						if d < cov1+cov2+bondtol && d > tooclose {
							b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2}
							at1.Bonds = append(at1.Bonds, b)
							at2.Bonds = append(at2.Bonds, b)
							nextIndex++
						}
					}
				}
			}
		}
	}

	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			err := RemoveBond(at.Bonds[len(at.Bonds)-1]) //we remove the longest bond
			if err != nil {
				return errDecorate(err, "AssignBonds")
			}
		}
	}
	return nil
}

//BondedTo returns the symbols of the atoms bonded to at.
func BondedTo(at *Atom) []string {
	ret := make([]string, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		ret = append(ret, b.Cross(at).Symbol)
	}
	return ret
}
