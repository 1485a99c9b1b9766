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

/*Package chem is the molecule-handling part of gochemgrid. It provides atom and molecule structures,
a streaming reader for (possibly compressed) PDB files, and a distance-based bond assignment
which the atom typing in the atomtype package builds upon.



	**Capabilities**


    Reads multi-model PDB files one model (pose) at a time. Files ending in .gz or .zst
	are decompressed on the fly.

    Guesses element symbols from PDB atom names when the element columns are empty.

    Assigns bonds from covalent radii, binning the atoms in cells so whole receptors
	can be processed.


Coordinates are kept in a v3.Matrix, based in gonum.org/v1/gonum/mat. Each row
of a v3.Matrix represents one point in space.

Errors from this package implement the Errorer interface. Files that can't be opened
give a *FileError, which carries the path and whether the file was to be read or written.*/
package chem
