/*
 * gridder.go, part of gochemgrid.
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

//Gridder holds a receptor and a ligand grid on the same box. The receptor
//is normally set once and the ligand once per pose.
type Gridder struct {
	vox    *Voxelizer
	recmap *TypeMap
	ligmap *TypeMap
	rec    *Tensor
	lig    *Tensor
}

//NewGridder returns a Gridder that uses vox and the given type maps. Both
//grids start empty (all zeros).
func NewGridder(vox *Voxelizer, recmap, ligmap *TypeMap) *Gridder {
	n := vox.Box.Points()
	return &Gridder{
		vox:    vox,
		recmap: recmap,
		ligmap: ligmap,
		rec:    NewTensor(recmap.Channels(), n),
		lig:    NewTensor(ligmap.Channels(), n),
	}
}

//Box returns the box of the grids.
func (G *Gridder) Box() Box { return G.vox.Box }

//Binary returns true if the grids have binary occupancies.
func (G *Gridder) Binary() bool { return G.vox.Binary() }

//SetReceptor replaces the receptor grid with the occupancies of atoms.
func (G *Gridder) SetReceptor(atoms []Atom) error {
	if err := G.vox.VoxelizeInto(G.rec, atoms, G.recmap); err != nil {
		return errDecorate(err, "SetReceptor")
	}
	return nil
}

//SetLigand replaces the ligand grid with the occupancies of atoms.
func (G *Gridder) SetLigand(atoms []Atom) error {
	if err := G.vox.VoxelizeInto(G.lig, atoms, G.ligmap); err != nil {
		return errDecorate(err, "SetLigand")
	}
	return nil
}

//Receptor returns the receptor grid. It is overwritten by SetReceptor.
func (G *Gridder) Receptor() *Tensor { return G.rec }

//Ligand returns the ligand grid. It is overwritten by SetLigand.
func (G *Gridder) Ligand() *Tensor { return G.lig }

func (G *Gridder) counts(rec, lig bool) (nrec, nlig int) {
	if rec {
		nrec = G.recmap.Channels()
	}
	if lig {
		nlig = G.ligmap.Channels()
	}
	return nrec, nlig
}

//Channels returns the number of channels in the receptor grid (if rec), plus
//those in the ligand grid (if lig).
func (G *Gridder) Channels(rec, lig bool) int {
	nrec, nlig := G.counts(rec, lig)
	return nrec + nlig
}

//ParamString returns the ParamString of the grids selected.
func (G *Gridder) ParamString(rec, lig bool) string {
	nrec, nlig := G.counts(rec, lig)
	return ParamString(G.vox.Box, nrec, nlig)
}

//Names returns the channel names of the selected grids, receptor first,
//prefixed with "Rec_" and "Lig_".
func (G *Gridder) Names(rec, lig bool) []string {
	ret := make([]string, 0, G.Channels(rec, lig))
	if rec {
		for _, n := range G.recmap.Names() {
			ret = append(ret, "Rec_"+n)
		}
	}
	if lig {
		for _, n := range G.ligmap.Names() {
			ret = append(ret, "Lig_"+n)
		}
	}
	return ret
}

//Tensors returns the selected grids, receptor first.
func (G *Gridder) Tensors(rec, lig bool) []*Tensor {
	ret := make([]*Tensor, 0, 2)
	if rec {
		ret = append(ret, G.rec)
	}
	if lig {
		ret = append(ret, G.lig)
	}
	return ret
}
