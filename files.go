/*
 * files.go, part of gochemgrid.
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

package chem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gochemgrid/v3"
	"github.com/rs/zerolog"
)

//PDBReader reads a PDB file one model at a time. Files without MODEL records
//are read as a single model.
type PDBReader struct {
	filename string
	f        *os.File
	dec      io.ReadCloser //the decompressor, or nil
	r        *bufio.Reader
	lineno   int
	model    int
	done     bool
	log      zerolog.Logger
}

//NewPDBReader opens the PDB file name for reading. Files ending in .gz
//or .zst are decompressed on the fly.
func NewPDBReader(name string) (*PDBReader, error) {
	P := &PDBReader{filename: name, log: zerolog.Nop()}
	var err error
	P.f, err = os.Open(name)
	if err != nil {
		return nil, NewFileError(name, false, err, "NewPDBReader")
	}
	var src io.Reader = bufio.NewReader(P.f)
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		gz, err := gzip.NewReader(src)
		if err != nil {
			P.f.Close()
			return nil, &Error{"Can't read gzip header: " + err.Error(), name, []string{"NewPDBReader"}, true}
		}
		P.dec = gz
		src = gz
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		zr, err := zstd.NewReader(src)
		if err != nil {
			P.f.Close()
			return nil, &Error{"Can't start zstd decoder: " + err.Error(), name, []string{"NewPDBReader"}, true}
		}
		P.dec = zr.IOReadCloser()
		src = P.dec
	}
	P.r = bufio.NewReader(src)
	return P, nil
}

//SetLogger sets the logger used for heads-up messages, such as skipped lines.
func (P *PDBReader) SetLogger(l zerolog.Logger) {
	P.log = l
}

//Close closes the file and the decompressor, if any.
func (P *PDBReader) Close() error {
	if P.dec != nil {
		P.dec.Close()
	}
	return P.f.Close()
}

//Next returns the next model in the file as a Molecule. It returns
//io.EOF when there are no more models.
func (P *PDBReader) Next() (*Molecule, error) {
	if P.done {
		return nil, io.EOF
	}
	atoms := make([]*Atom, 0, 64)
	coords := make([]float64, 0, 64*3)
	model := P.model
	for {
		line, err := P.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &Error{err.Error(), P.filename, []string{"Next"}, true}
		}
		if err == io.EOF {
			P.done = true
			if len(line) == 0 {
				break
			}
		}
		P.lineno++
		line = strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			at, c, perr := readPDBLine(line)
			if perr != nil {
				P.log.Warn().Str("file", P.filename).Int("line", P.lineno).Err(perr).Msg("Skipped malformed atom line")
				continue
			}
			atoms = append(atoms, at)
			coords = append(coords, c[:]...)
		case strings.HasPrefix(line, "MODEL"):
			//a MODEL without the previous ENDMDL
			n, _ := strconv.Atoi(strings.TrimSpace(line[5:]))
			P.model = n
			if len(atoms) > 0 {
				P.log.Debug().Str("file", P.filename).Int("line", P.lineno).Msg("MODEL record before ENDMDL")
				return P.molecule(atoms, coords, model)
			}
			model = n
		case strings.HasPrefix(line, "ENDMDL") || strings.HasPrefix(line, "END"):
			if len(atoms) > 0 {
				return P.molecule(atoms, coords, model)
			}
		}
		if P.done {
			break
		}
	}
	if len(atoms) == 0 {
		return nil, io.EOF
	}
	return P.molecule(atoms, coords, model)
}

func (P *PDBReader) molecule(atoms []*Atom, coords []float64, model int) (*Molecule, error) {
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, &Error{err.Error(), P.filename, []string{"molecule", "Next"}, true}
	}
	mol, err := NewMolecule(atoms, c)
	if err != nil {
		return nil, errDecorate(err, "Next")
	}
	mol.Model = model
	return mol, nil
}

//Parses a valid ATOM or HETATM line of a PDB file, returns an Atom
//object with the info except for the coordinates, which are returned
//separately.
func readPDBLine(line string) (*Atom, [3]float64, error) {
	var coords [3]float64
	var err error
	if len(line) < 54 {
		return nil, coords, fmt.Errorf("ATOM/HETATM line too short (%d characters)", len(line))
	}
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, _ = strconv.Atoi(strings.TrimSpace(line[6:11])) //hybrid-36 ids for large systems would fail here, we don't need them.
	atom.Name = strings.TrimSpace(line[12:16])
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.MolName1 = three2OneLetter[atom.MolName]
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.MolID, _ = strconv.Atoi(strings.TrimSpace(line[22:26]))
	for i := range coords {
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(line[30+8*i:38+8*i]), 64)
		if err != nil {
			return nil, coords, fmt.Errorf("can't parse coordinate %d: %w", i, err)
		}
	}
	//The rest of the fields are optional, we just omit anything that can't be read.
	if len(line) >= 60 {
		atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 66 {
		atom.Bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	if len(line) >= 78 {
		atom.Symbol = normalizeSymbol(line[76:78])
	}
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	return atom, coords, nil
}

//PDBFileRead reads the first model of a PDB file.
func PDBFileRead(name string) (*Molecule, error) {
	P, err := NewPDBReader(name)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	defer P.Close()
	mol, err := P.Next()
	if err == io.EOF {
		return nil, &Error{"No atoms in file", name, []string{"PDBFileRead"}, true}
	}
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	return mol, nil
}
