/*
 * typer.go, part of gochemgrid.
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

package atomtype

import (
	"fmt"

	chem "github.com/rmera/gochemgrid"
)

//ring carbons of the aromatic aminoacids, by PDB name.
var aromaticNames = map[string]map[string]bool{
	"PHE": {"CG": true, "CD1": true, "CD2": true, "CE1": true, "CE2": true, "CZ": true},
	"TYR": {"CG": true, "CD1": true, "CD2": true, "CE1": true, "CE2": true, "CZ": true},
	"TRP": {"CG": true, "CD1": true, "CD2": true, "CE2": true, "CE3": true, "CZ2": true, "CZ3": true, "CH2": true},
	"HIS": {"CG": true, "CD2": true, "CE1": true},
	"HID": {"CG": true, "CD2": true, "CE1": true},
	"HIE": {"CG": true, "CD2": true, "CE1": true},
	"HIP": {"CG": true, "CD2": true, "CE1": true},
}

//Polar atoms of standard residues, used when the structure has no hydrogens.
var residueDonors = map[string]map[string]Type{
	"SER": {"OG": OxygenXSDonorAcceptor},
	"THR": {"OG1": OxygenXSDonorAcceptor},
	"TYR": {"OH": OxygenXSDonorAcceptor},
	"HOH": {"O": OxygenXSDonorAcceptor},
	"WAT": {"O": OxygenXSDonorAcceptor},
	"LYS": {"NZ": NitrogenXSDonor},
	"ARG": {"NE": NitrogenXSDonor, "NH1": NitrogenXSDonor, "NH2": NitrogenXSDonor},
	"ASN": {"ND2": NitrogenXSDonor},
	"GLN": {"NE2": NitrogenXSDonor},
	"TRP": {"NE1": NitrogenXSDonor},
	"HIS": {"ND1": NitrogenXSDonorAcceptor, "NE2": NitrogenXSDonorAcceptor},
}

var elementTypes = map[string]Type{
	"S":  Sulfur,
	"P":  Phosphorus,
	"F":  Fluorine,
	"Cl": Chlorine,
	"Br": Bromine,
	"I":  Iodine,
	"Mg": Magnesium,
	"Mn": Manganese,
	"Zn": Zinc,
	"Ca": Calcium,
	"Fe": Iron,
	"B":  Boron,
	"Cu": GenericMetal,
	"Co": GenericMetal,
	"Na": GenericMetal,
	"K":  GenericMetal,
	"Cr": GenericMetal,
}

//Assign assigns a raw type to each atom of mol, from the element of the atom and
//those of its bonded neighbors. Bonds are assigned to mol in the process.
//It returns an error if an atom has an element that can't be typed.
func Assign(mol *chem.Molecule) ([]Type, error) {
	if err := chem.AssignBonds(mol); err != nil {
		return nil, &Error{fmt.Sprintf("can't assign bonds: %s", err.Error()), []string{"Assign"}, true}
	}
	types := make([]Type, mol.Len())
	hashydrogens := false
	for _, at := range mol.Atoms {
		if at.Symbol == "H" {
			hashydrogens = true
			break
		}
	}
	for i, at := range mol.Atoms {
		t, err := typeAtom(at, hashydrogens)
		if err != nil {
			return nil, &Error{fmt.Sprintf("atom %d (%s %s%d): %s", i, at.Name, at.MolName, at.MolID, err.Error()), []string{"Assign"}, true}
		}
		types[i] = t
	}
	return types, nil
}

func typeAtom(at *chem.Atom, hashydrogens bool) (Type, error) {
	neighbors := chem.BondedTo(at)
	has := func(symbols ...string) bool {
		for _, n := range neighbors {
			for _, s := range symbols {
				if n == s {
					return true
				}
			}
		}
		return false
	}
	switch at.Symbol {
	case "H":
		if has("N", "O") {
			return PolarHydrogen, nil
		}
		return Hydrogen, nil
	case "C":
		aromatic := aromaticNames[at.MolName][at.Name] && !at.Het
		hetero := has("N", "O")
		switch {
		case aromatic && hetero:
			return AromaticCarbonXSNonHydrophobe, nil
		case aromatic:
			return AromaticCarbonXSHydrophobe, nil
		case hetero:
			return AliphaticCarbonXSNonHydrophobe, nil
		}
		return AliphaticCarbonXSHydrophobe, nil
	case "N":
		if has("H") {
			return NitrogenXSDonor, nil
		}
		if !hashydrogens && !at.Het {
			if t, ok := residueDonors[at.MolName][at.Name]; ok {
				return t, nil
			}
			if at.Name == "N" && at.MolName != "PRO" {
				return NitrogenXSDonor, nil //backbone amide
			}
		}
		return Nitrogen, nil
	case "O":
		if has("H") {
			return OxygenXSDonorAcceptor, nil
		}
		if !hashydrogens {
			if t, ok := residueDonors[at.MolName][at.Name]; ok {
				return t, nil
			}
		}
		return OxygenXSAcceptor, nil
	}
	if t, ok := elementTypes[at.Symbol]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("no atom type for element '%s'", at.Symbol)
}

//Errors

//Error is the general structure for errors in this package. It fullfills chem.Errorer.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return err.message
}

//Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }
