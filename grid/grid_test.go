/*
 * grid_test.go, part of gochemgrid.
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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	chem "github.com/rmera/gochemgrid"
	"github.com/rmera/gochemgrid/atomtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAtoms(t *testing.T, name string) ([]Atom, *chem.Molecule) {
	t.Helper()
	mol, err := chem.PDBFileRead(name)
	require.NoError(t, err)
	types, err := atomtype.Assign(mol)
	require.NoError(t, err)
	atoms, err := AtomsFrom(mol.Coords(), types)
	require.NoError(t, err)
	return atoms, mol
}

func TestBoxPoints(t *testing.T) {
	box, err := NewBox([3]float64{1, 2, 3}, 24, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 49, box.Points())
	assert.Equal(t, [3]float64{-11, -10, -9}, box.Origin())
	assert.Equal(t, [3]float64{13, 14, 15}, box.Point(48, 48, 48))
	assert.Equal(t, box.Center, box.Midpoint())
	box.Dimension = 23.5
	assert.Equal(t, 48, box.Points())
	assert.Equal(t, box.Center, box.Midpoint())
	box.Dimension = 23.7
	assert.Equal(t, 48, box.Points())
	mid := box.Midpoint()
	for i := range mid {
		assert.InDelta(t, box.Center[i]-0.1, mid[i], 1e-9)
	}
	box.Dimension, box.Resolution = 10, 1
	assert.Equal(t, 11, box.Points())
}

func TestBoxErrors(t *testing.T) {
	for _, c := range []struct{ dim, res float64 }{{0, 0.5}, {24, 0}, {-1, 0.5}, {24, math.NaN()}, {math.Inf(1), 0.5}} {
		_, err := NewBox([3]float64{}, c.dim, c.res)
		assert.Error(t, err, "dimension %v resolution %v", c.dim, c.res)
	}
	_, err := NewBox([3]float64{0, math.NaN(), 0}, 24, 0.5)
	assert.Error(t, err)
	assert.False(t, CenterIsSet([3]float64{math.Inf(-1), 0, 0}))
	assert.True(t, CenterIsSet([3]float64{1, 2, 3}))
}

func TestAutoBox(t *testing.T) {
	mol, err := chem.PDBFileRead("../test/single.pdb")
	require.NoError(t, err)
	box, err := AutoBox(mol.Coords(), 24, 0.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, box.Center[:], 1e-9)
	assert.Equal(t, 24.0, box.Dimension)
	assert.Equal(t, 0.5, box.Resolution)

	_, lig := readAtoms(t, "../test/ligand.pdb")
	box, err = AutoBox(lig.Coords(), 12, 0.375)
	require.NoError(t, err)
	min, max := lig.Coords().Bounds()
	for i := range box.Center {
		assert.InDelta(t, (min[i]+max[i])/2, box.Center[i], 1e-9)
	}
	_, err = AutoBox(nil, 12, 0.5)
	assert.Error(t, err)
}

func TestGaussianKernel(t *testing.T) {
	k := GaussianKernel{}
	r := 1.9
	assert.Equal(t, 1.0, k.Occupancy(0, r))
	assert.InDelta(t, math.Exp(-2), k.Occupancy(r*r, r), 1e-12)
	//continuous at d = r
	assert.InDelta(t, k.Occupancy(r*r, r), k.Occupancy((r+1e-9)*(r+1e-9), r), 1e-7)
	c := k.Cutoff(r)
	assert.InDelta(t, 1.5*r, c, 1e-12)
	assert.Equal(t, 0.0, k.Occupancy(c*c, r))
	assert.Equal(t, 0.0, k.Occupancy(4*c*c, r))
	prev := 2.0
	for d := 0.0; d < c; d += 0.01 {
		o := k.Occupancy(d*d, r)
		assert.True(t, o >= 0 && o <= 1, "occupancy %v at %v", o, d)
		assert.LessOrEqual(t, o, prev)
		prev = o
	}
	assert.Equal(t, 0.0, k.Occupancy(0, 0))
}

func TestBinaryKernel(t *testing.T) {
	k := BinaryKernel{}
	assert.Equal(t, 1.0, k.Occupancy(0, 1.7))
	assert.Equal(t, 1.0, k.Occupancy(1.69*1.69, 1.7))
	assert.Equal(t, 0.0, k.Occupancy(1.7*1.7, 1.7))
	assert.Equal(t, 1.7, k.Cutoff(1.7))
}

func smallBox(t *testing.T) Box {
	box, err := NewBox([3]float64{0, 0, 0}, 4, 0.5)
	require.NoError(t, err)
	return box
}

func TestVoxelizeSingleAtom(t *testing.T) {
	box := smallBox(t)
	tm := DefaultTypeMap()
	c := tm.Channel(atomtype.AliphaticCarbonXSHydrophobe)
	atoms := []Atom{{Pos: [3]float64{0, 0, 0}, Type: atomtype.AliphaticCarbonXSHydrophobe}}
	T := NewVoxelizer(box, false, nil).Voxelize(atoms, tm)
	assert.Equal(t, [4]int{26, 9, 9, 9}, T.Shape())
	assert.Equal(t, float32(1), T.At(c, 4, 4, 4))
	//the corners are farther than 1.5*1.9
	assert.Equal(t, float32(0), T.At(c, 0, 0, 0))
	for _, v := range T.Data {
		require.True(t, v >= 0 && v <= 1)
	}
	for ch := 0; ch < T.Channels; ch++ {
		if ch == c {
			continue
		}
		_, max, _ := T.Stats(ch)
		assert.Equal(t, 0.0, max, "channel %d", ch)
	}
	min, max, occ := T.Stats(c)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1.0, max)
	assert.True(t, occ > 0 && occ < 1)
}

func TestVoxelizeBinary(t *testing.T) {
	box := smallBox(t)
	tm := DefaultTypeMap()
	atoms := []Atom{
		{Pos: [3]float64{0, 0, 0}, Type: atomtype.OxygenXSAcceptor},
		{Pos: [3]float64{0.3, -0.2, 0.1}, Type: atomtype.OxygenXSAcceptor},
	}
	vox := NewVoxelizer(box, true, nil)
	assert.True(t, vox.Binary())
	T := vox.Voxelize(atoms, tm)
	c := tm.Channel(atomtype.OxygenXSAcceptor)
	assert.Equal(t, float32(1), T.At(c, 4, 4, 4))
	ones := 0
	for _, v := range T.Data {
		require.True(t, v == 0 || v == 1, "non-binary value %v", v)
		if v == 1 {
			ones++
		}
	}
	assert.Positive(t, ones)
}

func TestVoxelizeMax(t *testing.T) {
	box := smallBox(t)
	tm := DefaultTypeMap()
	a := Atom{Pos: [3]float64{-0.4, 0.1, 0}, Type: atomtype.NitrogenXSDonor}
	b := Atom{Pos: [3]float64{0.5, 0, 0.2}, Type: atomtype.NitrogenXSDonor}
	vox := NewVoxelizer(box, false, nil)
	ta := vox.Voxelize([]Atom{a}, tm)
	tb := vox.Voxelize([]Atom{b}, tm)
	tab := vox.Voxelize([]Atom{a, b}, tm)
	for i := range tab.Data {
		require.Equal(t, max(ta.Data[i], tb.Data[i]), tab.Data[i])
		require.LessOrEqual(t, tab.Data[i], float32(1))
	}
}

func TestVoxelizeIgnored(t *testing.T) {
	box := smallBox(t)
	tm := DefaultTypeMap()
	atoms := []Atom{
		{Pos: [3]float64{0, 0, 0}, Type: atomtype.Hydrogen},
		{Pos: [3]float64{0, 0, 0}, Type: atomtype.PolarHydrogen},
		{Pos: [3]float64{100, 0, 0}, Type: atomtype.Sulfur}, //far outside the box
		{Pos: [3]float64{0, 0, 0}, Type: atomtype.Type(-3)},
	}
	T := NewVoxelizer(box, false, nil).Voxelize(atoms, tm)
	assert.Equal(t, 0.0, T.Sum())
	T = NewVoxelizer(box, false, nil).Voxelize(nil, tm)
	assert.Equal(t, 0.0, T.Sum())
}

func TestVoxelizeInto(t *testing.T) {
	box := smallBox(t)
	tm := DefaultTypeMap()
	vox := NewVoxelizer(box, false, nil)
	a := []Atom{{Pos: [3]float64{1, 1, 1}, Type: atomtype.Chlorine}}
	b := []Atom{{Pos: [3]float64{-1, 0, 0.5}, Type: atomtype.Zinc}}
	T := vox.Voxelize(a, tm)
	require.NoError(t, vox.VoxelizeInto(T, b, tm))
	if diff := cmp.Diff(vox.Voxelize(b, tm), T); diff != "" {
		t.Errorf("VoxelizeInto left residual values (-want +got):\n%s", diff)
	}
	err := vox.VoxelizeInto(NewTensor(3, 9), b, tm)
	assert.Error(t, err)
}

func TestBackends(t *testing.T) {
	atoms, mol := readAtoms(t, "../test/receptor.pdb")
	box, err := AutoBox(mol.Coords(), 12, 0.5)
	require.NoError(t, err)
	tm := DefaultTypeMap()
	for _, binary := range []bool{false, true} {
		want := NewVoxelizer(box, binary, Serial{}).Voxelize(atoms, tm)
		require.Positive(t, want.Sum())
		for _, b := range []Backend{Parallel{}, Parallel{Workers: 1}, Parallel{Workers: 3}, Parallel{Workers: 1000}, NewBackend(4)} {
			got := NewVoxelizer(box, binary, b).Voxelize(atoms, tm)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("backend %#v differs from Serial (-want +got):\n%s", b, diff)
			}
		}
	}
}

func TestParallelSlabs(t *testing.T) {
	const n = 17
	for _, w := range []int{0, 1, 2, 5, 17, 40} {
		hits := make([]int, n)
		calls := make(chan [2]int, n)
		Parallel{Workers: w}.Run(n, func(lo, hi int) {
			calls <- [2]int{lo, hi}
		})
		close(calls)
		for c := range calls {
			for i := c[0]; i < c[1]; i++ {
				hits[i]++
			}
		}
		for i, h := range hits {
			assert.Equal(t, 1, h, "workers %d index %d", w, i)
		}
	}
}

func TestDefaultTypeMap(t *testing.T) {
	tm := DefaultTypeMap()
	assert.Equal(t, 26, tm.Channels())
	assert.Equal(t, Ignore, tm.Channel(atomtype.Hydrogen))
	assert.Equal(t, Ignore, tm.Channel(atomtype.PolarHydrogen))
	assert.Equal(t, 0, tm.Channel(atomtype.AliphaticCarbonXSHydrophobe))
	assert.Equal(t, 25, tm.Channel(atomtype.Boron))
	names := tm.Names()
	assert.Len(t, names, 26)
	assert.Equal(t, "AliphaticCarbonXSHydrophobe", names[0])
	m, err := NewTypeMap("")
	require.NoError(t, err)
	assert.Equal(t, tm, m)
}

func TestTypeMapFile(t *testing.T) {
	in := "AliphaticCarbonXSHydrophobe AromaticCarbonXSHydrophobe\n\n  \t\nOxygenXSAcceptor\tOxygenXSDonorAcceptor\n"
	tm, err := NewTypeMapFromReader(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, tm.Channels())
	assert.Equal(t, 0, tm.Channel(atomtype.AromaticCarbonXSHydrophobe))
	assert.Equal(t, 1, tm.Channel(atomtype.OxygenXSDonorAcceptor))
	assert.Equal(t, Ignore, tm.Channel(atomtype.Hydrogen))
	assert.Equal(t, Ignore, tm.Channel(atomtype.NitrogenXSDonor))
	assert.Equal(t, []string{"AliphaticCarbonXSHydrophobe_AromaticCarbonXSHydrophobe", "OxygenXSAcceptor_OxygenXSDonorAcceptor"}, tm.Names())
	assert.Equal(t, []atomtype.Type{atomtype.OxygenXSAcceptor, atomtype.OxygenXSDonorAcceptor}, tm.Members(1))

	tm, err = NewTypeMapFromReader(strings.NewReader("Hydrogen PolarHydrogen"))
	require.NoError(t, err)
	assert.Equal(t, 0, tm.Channel(atomtype.PolarHydrogen))

	//element symbols stand for all the types of the element
	tm, err = NewTypeMapFromReader(strings.NewReader("C N\nO\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, tm.Channels())
	for ty := atomtype.Type(0); ty < atomtype.NumTypes; ty++ {
		want := Ignore
		switch ty.Info().Element {
		case "C", "N":
			want = 0
		case "O":
			want = 1
		}
		assert.Equal(t, want, tm.Channel(ty), ty.String())
	}
	assert.Equal(t, Ignore, tm.Channel(atomtype.Hydrogen))
	assert.Equal(t, Ignore, tm.Channel(atomtype.PolarHydrogen))
	assert.Len(t, tm.Members(0), 8)

	tm, err = NewTypeMapFromReader(strings.NewReader("H\nZn Fe GenericMetal\nCl\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tm.Channel(atomtype.PolarHydrogen))
	assert.Equal(t, 1, tm.Channel(atomtype.Iron))
	assert.Equal(t, 1, tm.Channel(atomtype.GenericMetal))
	assert.Equal(t, 2, tm.Channel(atomtype.Chlorine))
	assert.Equal(t, Ignore, tm.Channel(atomtype.AliphaticCarbonXSHydrophobe))
}

func TestTypeMapErrors(t *testing.T) {
	_, err := NewTypeMapFromReader(strings.NewReader("Nitrogen\nCarbon\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid atom type Carbon")
	assert.Contains(t, err.Error(), "line 2")

	_, err = NewTypeMapFromReader(strings.NewReader("Nitrogen Sulfur\nSulfur\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already mapped")

	//case-sensitive
	_, err = NewTypeMapFromReader(strings.NewReader("nitrogen"))
	assert.Error(t, err)
	_, err = NewTypeMapFromReader(strings.NewReader("cl"))
	assert.Error(t, err)

	//an element and one of its types
	_, err = NewTypeMapFromReader(strings.NewReader("C\nAliphaticCarbonXSHydrophobe\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already mapped")
	_, err = NewTypeMapFromReader(strings.NewReader("OxygenXSAcceptor O\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already mapped")

	_, err = NewTypeMap("../test/no_such_map")
	var ferr *chem.FileError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "reading", ferr.Direction())
	assert.Equal(t, "../test/no_such_map", ferr.FileName())
}

func TestParamString(t *testing.T) {
	box, err := NewBox([3]float64{0, 0, 0}, 24, 0.5)
	require.NoError(t, err)
	s := ParamString(box, 14, 14)
	assert.Equal(t, "49_24_0.5_14_14", s)
	assert.Equal(t, "49_24_0.5_0_14", ParamString(box, 0, 14))
	box.Dimension = 23.5
	box.Resolution = 0.375
	s = ParamString(box, 26, 0)
	assert.Equal(t, "64_23.5_0.375_26_0", s)
	for _, name := range []string{s, "out/lig_3." + s + ".binmap", "lig.v2_10." + s} {
		p, err := ParseParamString(name)
		require.NoError(t, err, name)
		assert.Equal(t, Params{Points: 64, Dimension: 23.5, Resolution: 0.375, RecChannels: 26, LigChannels: 0}, p)
		assert.Equal(t, s, p.String())
	}
	_, err = ParseParamString("receptor.binmap")
	assert.Error(t, err)
}

func TestGridder(t *testing.T) {
	recAtoms, mol := readAtoms(t, "../test/receptor.pdb")
	ligAtoms, _ := readAtoms(t, "../test/ligand.pdb")
	box, err := AutoBox(mol.Coords(), 16, 1)
	require.NoError(t, err)
	ligmap, err := NewTypeMapFromReader(strings.NewReader("AliphaticCarbonXSHydrophobe AliphaticCarbonXSNonHydrophobe\nOxygenXSDonorAcceptor\n"))
	require.NoError(t, err)
	g := NewGridder(NewVoxelizer(box, false, Parallel{Workers: 2}), DefaultTypeMap(), ligmap)
	require.NoError(t, g.SetReceptor(recAtoms))
	require.NoError(t, g.SetLigand(ligAtoms))
	assert.Equal(t, 28, g.Channels(true, true))
	assert.Equal(t, 26, g.Channels(true, false))
	assert.Equal(t, 2, g.Channels(false, true))
	assert.Equal(t, "17_16_1_26_2", g.ParamString(true, true))
	assert.Equal(t, "17_16_1_26_0", g.ParamString(true, false))
	assert.Equal(t, "17_16_1_0_2", g.ParamString(false, true))
	names := g.Names(true, true)
	require.Len(t, names, 28)
	assert.Equal(t, "Rec_AliphaticCarbonXSHydrophobe", names[0])
	assert.Equal(t, "Lig_OxygenXSDonorAcceptor", names[27])
	assert.Equal(t, []*Tensor{g.Receptor(), g.Ligand()}, g.Tensors(true, true))
	assert.Equal(t, []*Tensor{g.Ligand()}, g.Tensors(false, true))
	assert.Positive(t, g.Ligand().Sum())
	assert.Positive(t, g.Receptor().Sum())
	assert.False(t, g.Binary())

	all, err := Concat(g.Tensors(true, true)...)
	require.NoError(t, err)
	assert.Equal(t, [4]int{28, 17, 17, 17}, all.Shape())
	assert.Equal(t, g.Ligand().Channel(1), all.Channel(27))
}

func TestAtomsFrom(t *testing.T) {
	mol, err := chem.PDBFileRead("../test/single.pdb")
	require.NoError(t, err)
	_, err = AtomsFrom(mol.Coords(), nil)
	assert.Error(t, err)
	atoms, err := AtomsFrom(mol.Coords(), []atomtype.Type{atomtype.Iodine})
	require.NoError(t, err)
	assert.Equal(t, []Atom{{Pos: [3]float64{1, 2, 3}, Type: atomtype.Iodine}}, atoms)
}
