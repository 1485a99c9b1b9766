/*
 * names.go, part of gochemgrid.
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

import "fmt"

//BinmapName returns the name of the binmap file for the pose index: "{base}_{index}.{param}.binmap"
func BinmapName(base string, index int, param string) string {
	return fmt.Sprintf("%s.%s.binmap", PoseBase(base, index), param)
}

//ReceptorBinmapName returns the name of a binmap file that is not tied to a pose,
//"{base}.{param}.binmap".
func ReceptorBinmapName(base, param string) string {
	return fmt.Sprintf("%s.%s.binmap", base, param)
}

//PoseBase returns the base name for the files of the pose index.
func PoseBase(base string, index int) string {
	return fmt.Sprintf("%s_%d", base, index)
}

//MapName returns the name of the AutoDock4 map for one channel.
func MapName(base, channel string) string {
	return fmt.Sprintf("%s.%s.map", base, channel)
}
