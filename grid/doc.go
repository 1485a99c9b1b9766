/*
 * doc.go, part of gochemgrid.
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

/*Package grid builds multi-channel occupancy grids ("voxelizations") from typed atoms.

A TypeMap reduces the raw atom types of the atomtype package to a small, dense set of channels.
A Box gives the center, edge length and resolution of the cubic grid; Box.Points is the only
place where the number of grid points per axis is computed. A Voxelizer evaluates a Kernel
for every atom and every grid point within the atom's cutoff, and combines the contributions
of the atoms in a channel by taking their maximum, so occupancies never leave [0,1].
The evaluation is split in x-slabs which a Backend may run concurrently.

A Gridder keeps a receptor and a ligand grid built with the same box, as needed to process
many ligand poses against one receptor.*/
package grid
