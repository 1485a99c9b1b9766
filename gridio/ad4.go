/*
 * ad4.go, part of gochemgrid.
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

package gridio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	chem "github.com/rmera/gochemgrid"
	"github.com/rmera/gochemgrid/grid"
)

//WriteMAP writes one AutoDock4 map file per channel in tensors, named with MapName(base, names[c]).
//There must be one name for each channel of all the tensors, taken in order.
func WriteMAP(base string, box grid.Box, names []string, tensors ...*grid.Tensor) error {
	total := 0
	n := box.Points()
	for _, t := range tensors {
		if t.N != n {
			return &Error{fmt.Sprintf("grid with %d points per axis in a box with %d", t.N, n), "", []string{"WriteMAP"}, true}
		}
		total += t.Channels
	}
	if total != len(names) {
		return &Error{fmt.Sprintf("%d channel names for %d channels", len(names), total), "", []string{"WriteMAP"}, true}
	}
	c := 0
	for _, t := range tensors {
		for i := 0; i < t.Channels; i++ {
			if err := writeMap(MapName(base, names[c]), box, t, i); err != nil {
				return errDecorate(err, "WriteMAP")
			}
			c++
		}
	}
	return nil
}

func writeMap(name string, box grid.Box, t *grid.Tensor, channel int) error {
	f, err := os.Create(name)
	if err != nil {
		return chem.NewFileError(name, true, err, "writeMap")
	}
	w := bufio.NewWriter(f)
	n := t.N
	fmt.Fprintf(w, "GRID_PARAMETER_FILE\nGRID_DATA_FILE\nMACROMOLECULE\n")
	fmt.Fprintf(w, "SPACING %s\n", ff(box.Resolution))
	fmt.Fprintf(w, "NELEMENTS %d %d %d\n", n-1, n-1, n-1)
	mid := box.Midpoint()
	fmt.Fprintf(w, "CENTER %s %s %s\n", ff(mid[0]), ff(mid[1]), ff(mid[2]))
	//AutoDock order: x changes fastest.
	buf := make([]byte, 0, 16)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				buf = strconv.AppendFloat(buf[:0], float64(t.At(channel, i, j, k)), 'g', -1, 32)
				buf = append(buf, '\n')
				w.Write(buf)
			}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &Error{err.Error(), name, []string{"writeMap"}, true}
	}
	if err := f.Close(); err != nil {
		return &Error{err.Error(), name, []string{"writeMap"}, true}
	}
	return nil
}

func ff(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
