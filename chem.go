/*
 * chem.go, part of gochemgrid.
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

	v3 "github.com/rmera/gochemgrid/v3"
)

//Atom contains the atoms read except for the coordinates, which will be in a matrix.
type Atom struct {
	Name      string
	ID        int //The ID in the input file
	Index     int //The place of the atom in the molecule, starting from 0.
	MolName   string
	MolName1  byte //the one letter name for residues and nucleotids
	MolID     int
	Chain     string
	Occupancy float64
	Bfactor   float64
	Symbol    string
	Het       bool // is hetatm in the pdb file?
	Bonds     []*Bond
}

//Molecule contains the atoms of a molecule and one set of coordinates.
//A docking output with several poses gives one Molecule per pose.
type Molecule struct {
	Atoms  []*Atom
	coords *v3.Matrix
	Model  int //the model number in the input file, 0 if none was given
}

//NewMolecule makes a molecule with the atoms ats and the coordinates coords. It returns an error
//if the number of coordinates doesn't match the number of atoms.
func NewMolecule(ats []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if ats == nil || coords == nil {
		return nil, &Error{message: "Supplied nil atoms or coordinates", deco: []string{"NewMolecule"}, critical: true}
	}
	if len(ats) != coords.NVecs() {
		return nil, &Error{message: fmt.Sprintf("Inconsistent coordinates/atoms: Atoms %d, coords: %d", len(ats), coords.NVecs()), deco: []string{"NewMolecule"}, critical: true}
	}
	M := &Molecule{Atoms: ats, coords: coords}
	M.FillIndexes()
	return M, nil
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the molecule. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Coords returns the coordinates of the molecule. Changes to the returned matrix
//affect the molecule.
func (M *Molecule) Coords() *v3.Matrix {
	return M.coords
}

//FillIndexes sets the Index field of each atom to its position in the molecule.
func (M *Molecule) FillIndexes() {
	for i, v := range M.Atoms {
		v.Index = i
	}
}
