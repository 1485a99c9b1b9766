/*
 * param.go, part of gochemgrid.
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
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

//ParamString returns the string that identifies the grid parameters in output file names:
//points per axis, dimension, resolution, and the receptor and ligand channel counts, joined by "_".
//An excluded set of channels is given as 0.
func ParamString(box Box, recChannels, ligChannels int) string {
	return fmt.Sprintf("%d_%s_%s_%d_%d", box.Points(), formatFloat(box.Dimension), formatFloat(box.Resolution), recChannels, ligChannels)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

//Params are the values encoded in a ParamString.
type Params struct {
	Points      int
	Dimension   float64
	Resolution  float64
	RecChannels int
	LigChannels int
}

//String returns the ParamString for p.
func (p Params) String() string {
	return fmt.Sprintf("%d_%s_%s_%d_%d", p.Points, formatFloat(p.Dimension), formatFloat(p.Resolution), p.RecChannels, p.LigChannels)
}

//The parameters are the last thing in the name before the extension, and come
//either at the beginning or after a dot.
var paramRegexp = regexp.MustCompile(`(?:^|\.)(\d+)_(\d+(?:\.\d+)?)_(\d+(?:\.\d+)?)_(\d+)_(\d+)$`)

//ParseParamString recovers the parameters from a file name, or a bare ParamString.
//Directories and a .binmap extension are ignored.
func ParseParamString(name string) (Params, error) {
	base := strings.TrimSuffix(filepath.Base(name), ".binmap")
	m := paramRegexp.FindStringSubmatch(base)
	if m == nil {
		return Params{}, &Error{"no grid parameters in name", name, []string{"ParseParamString"}, false}
	}
	var p Params
	var err [5]error
	p.Points, err[0] = strconv.Atoi(m[1])
	p.Dimension, err[1] = strconv.ParseFloat(m[2], 64)
	p.Resolution, err[2] = strconv.ParseFloat(m[3], 64)
	p.RecChannels, err[3] = strconv.Atoi(m[4])
	p.LigChannels, err[4] = strconv.Atoi(m[5])
	for _, e := range err {
		if e != nil {
			return Params{}, &Error{e.Error(), name, []string{"ParseParamString"}, true}
		}
	}
	return p, nil
}
