/*
 * types.go, part of gochemgrid.
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

//Package atomtype holds the raw atom type enumeration used to build grid channels,
//the name for each type, and the default radius table.
//It also provides a simple element and neighbor based typing for PDB molecules.
package atomtype

//Type is a raw atom type. Values are dense, from 0 to NumTypes-1.
type Type int

//The raw atom types. The order is part of the interface: the default
//channel mapping follows it.
const (
	Hydrogen Type = iota
	PolarHydrogen
	AliphaticCarbonXSHydrophobe
	AliphaticCarbonXSNonHydrophobe
	AromaticCarbonXSHydrophobe
	AromaticCarbonXSNonHydrophobe
	Nitrogen
	NitrogenXSDonor
	NitrogenXSDonorAcceptor
	NitrogenXSAcceptor
	Oxygen
	OxygenXSDonor
	OxygenXSDonorAcceptor
	OxygenXSAcceptor
	Sulfur
	SulfurAcceptor
	Phosphorus
	Fluorine
	Chlorine
	Bromine
	Iodine
	Magnesium
	Manganese
	Zinc
	Calcium
	Iron
	GenericMetal
	Boron
	NumTypes
)

//Info holds the static data for one raw type.
type Info struct {
	Name     string
	Element  string
	XSRadius float64 //Angstroms
}

//the table is indexed by Type, and never modified.
var info = [NumTypes]Info{
	Hydrogen:                       {"Hydrogen", "H", 0.37},
	PolarHydrogen:                  {"PolarHydrogen", "H", 0.37},
	AliphaticCarbonXSHydrophobe:    {"AliphaticCarbonXSHydrophobe", "C", 1.9},
	AliphaticCarbonXSNonHydrophobe: {"AliphaticCarbonXSNonHydrophobe", "C", 1.9},
	AromaticCarbonXSHydrophobe:     {"AromaticCarbonXSHydrophobe", "C", 1.9},
	AromaticCarbonXSNonHydrophobe:  {"AromaticCarbonXSNonHydrophobe", "C", 1.9},
	Nitrogen:                       {"Nitrogen", "N", 1.8},
	NitrogenXSDonor:                {"NitrogenXSDonor", "N", 1.8},
	NitrogenXSDonorAcceptor:        {"NitrogenXSDonorAcceptor", "N", 1.8},
	NitrogenXSAcceptor:             {"NitrogenXSAcceptor", "N", 1.8},
	Oxygen:                         {"Oxygen", "O", 1.7},
	OxygenXSDonor:                  {"OxygenXSDonor", "O", 1.7},
	OxygenXSDonorAcceptor:          {"OxygenXSDonorAcceptor", "O", 1.7},
	OxygenXSAcceptor:               {"OxygenXSAcceptor", "O", 1.7},
	Sulfur:                         {"Sulfur", "S", 2.0},
	SulfurAcceptor:                 {"SulfurAcceptor", "S", 2.0},
	Phosphorus:                     {"Phosphorus", "P", 2.1},
	Fluorine:                       {"Fluorine", "F", 1.5},
	Chlorine:                       {"Chlorine", "Cl", 1.8},
	Bromine:                        {"Bromine", "Br", 2.0},
	Iodine:                         {"Iodine", "I", 2.2},
	Magnesium:                      {"Magnesium", "Mg", 1.2},
	Manganese:                      {"Manganese", "Mn", 1.2},
	Zinc:                           {"Zinc", "Zn", 1.2},
	Calcium:                        {"Calcium", "Ca", 1.2},
	Iron:                           {"Iron", "Fe", 1.2},
	GenericMetal:                   {"GenericMetal", "M", 1.2},
	Boron:                          {"Boron", "B", 1.92},
}

var byName map[string]Type
var byElement map[string][]Type

func init() {
	byName = make(map[string]Type, NumTypes)
	byElement = make(map[string][]Type)
	for i, v := range info {
		byName[v.Name] = Type(i)
		byElement[v.Element] = append(byElement[v.Element], Type(i))
	}
}

//Valid returns true if t is one of the raw types.
func (t Type) Valid() bool {
	return t >= 0 && t < NumTypes
}

//Info returns the static information for t. It panics if t is not valid.
func (t Type) Info() Info {
	return info[t]
}

//String returns the name of the type.
func (t Type) String() string {
	if !t.Valid() {
		return "Invalid"
	}
	return info[t].Name
}

//IsHydrogen returns true for both hydrogen types.
func (t Type) IsHydrogen() bool {
	return t == Hydrogen || t == PolarHydrogen
}

//Parse returns the type with the given name. Names are case-sensitive.
//the second return value is false if the name doesn't match any type.
func Parse(name string) (Type, bool) {
	t, ok := byName[name]
	return t, ok
}

//ParseElement returns all the types of the element with the given symbol ("C", "Cl", "Zn"...),
//in enumeration order, or nil if there is none. Symbols are case-sensitive. "M" gives GenericMetal.
func ParseElement(symbol string) []Type {
	return append([]Type(nil), byElement[symbol]...)
}

//Radii is a radius (in A) for each raw type.
type Radii [NumTypes]float64

//DefaultRadii returns a copy of the XS radii table.
func DefaultRadii() Radii {
	var r Radii
	for i, v := range info {
		r[i] = v.XSRadius
	}
	return r
}
