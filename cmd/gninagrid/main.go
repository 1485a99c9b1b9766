/*
 * main.go, part of gochemgrid.
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

//gninagrid writes occupancy grids for a receptor and a set of ligand poses.
//Use gninagrid --help for the options.
package main

import (
	"fmt"
	"os"

	"github.com/rmera/gochemgrid/gninagrid"
)

func main() {
	if err := gninagrid.Root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n\n%s\n", gninagrid.ExitMessage(err))
		os.Exit(-1)
	}
}
