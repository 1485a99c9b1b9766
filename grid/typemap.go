/*
 * typemap.go, part of gochemgrid.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	chem "github.com/rmera/gochemgrid"
	"github.com/rmera/gochemgrid/atomtype"
)

//Ignore is the channel of the raw types that don't go in any channel.
const Ignore = -1

//TypeMap maps each raw atom type to a channel, or to Ignore.
//Channels are dense, from 0 to Channels()-1. A TypeMap is not modified after
//it is built, so it can be shared.
type TypeMap struct {
	index   [atomtype.NumTypes]int
	members [][]atomtype.Type
}

func newIgnoreAll() *TypeMap {
	m := new(TypeMap)
	for i := range m.index {
		m.index[i] = Ignore
	}
	return m
}

//DefaultTypeMap puts each non-hydrogen type in its own channel, in
//the order of the enumeration.
func DefaultTypeMap() *TypeMap {
	m := newIgnoreAll()
	for t := atomtype.Type(0); t < atomtype.NumTypes; t++ {
		if t.IsHydrogen() {
			continue
		}
		m.index[t] = len(m.members)
		m.members = append(m.members, []atomtype.Type{t})
	}
	return m
}

//NewTypeMap reads a type mapping file. Each line with at least one type name
//is a channel; all the types in the line are merged into it. An element symbol
//("C", "N", "Zn"...) stands for all the types of that element. Types not named
//in the file are ignored. If path is empty, the DefaultTypeMap is returned.
func NewTypeMap(path string) (*TypeMap, error) {
	if path == "" {
		return DefaultTypeMap(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, chem.NewFileError(path, false, err, "NewTypeMap")
	}
	defer f.Close()
	m, err := NewTypeMapFromReader(f)
	if err != nil {
		e := err.(*Error)
		e.filename = path
		e.Decorate("NewTypeMap")
		return nil, e
	}
	return m, nil
}

//NewTypeMapFromReader reads a type mapping, in the format described for NewTypeMap, from r.
func NewTypeMapFromReader(r io.Reader) (*TypeMap, error) {
	m := newIgnoreAll()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		channel := len(m.members)
		members := make([]atomtype.Type, 0, len(tokens))
		for _, name := range tokens {
			types := atomtype.ParseElement(name)
			if t, ok := atomtype.Parse(name); ok {
				types = []atomtype.Type{t}
			}
			if len(types) == 0 {
				return nil, &Error{fmt.Sprintf("line %d: Invalid atom type %s", lineno, name), "", []string{"NewTypeMapFromReader"}, true}
			}
			for _, t := range types {
				if m.index[t] != Ignore {
					return nil, &Error{fmt.Sprintf("line %d: atom type %s (from %s) already mapped to channel %d", lineno, t, name, m.index[t]), "", []string{"NewTypeMapFromReader"}, true}
				}
				m.index[t] = channel
				members = append(members, t)
			}
		}
		m.members = append(m.members, members)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{err.Error(), "", []string{"NewTypeMapFromReader"}, true}
	}
	return m, nil
}

//Channel returns the channel for the type t, or Ignore.
func (m *TypeMap) Channel(t atomtype.Type) int {
	if !t.Valid() {
		return Ignore
	}
	return m.index[t]
}

//Channels returns the number of channels.
func (m *TypeMap) Channels() int {
	return len(m.members)
}

//Members returns the raw types in the channel c.
func (m *TypeMap) Members(c int) []atomtype.Type {
	return append([]atomtype.Type(nil), m.members[c]...)
}

//Names returns a name for each channel: the names of its types joined by "_".
func (m *TypeMap) Names() []string {
	ret := make([]string, len(m.members))
	for i, mem := range m.members {
		s := make([]string, len(mem))
		for j, t := range mem {
			s[j] = t.String()
		}
		ret[i] = strings.Join(s, "_")
	}
	return ret
}
