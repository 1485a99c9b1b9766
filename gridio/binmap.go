/*
 * binmap.go, part of gochemgrid.
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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/gochemgrid"
	"github.com/rmera/gochemgrid/grid"
)

//A binmap file is a little-endian header followed by the float32 occupancies, in
//channel, x, y, z order (z changes fastest). The payload can be zstd-compressed.
//
//	magic       [4]byte "BMAP"
//	version     uint16
//	flags       uint16
//	resolution  float64
//	dimension   float64
//	center      [3]float64
//	points      uint32
//	receptor    uint32  (channels)
//	ligand      uint32  (channels)
//	paramlen    uint16
//	param       [paramlen]byte
//	payload
const (
	binmapMagic   = "BMAP"
	BinmapVersion = 1
)

//Binmap header flags
const (
	FlagReceptor uint16 = 1 << iota
	FlagLigand
	FlagBinary
	FlagZstd
)

//maxParamLen bounds the ParamString stored in a header.
const maxParamLen = 1024

//MaxBinmapValues is the largest number of occupancies (channels times points cubed)
//ReadBinmap will allocate.
const MaxBinmapValues = 1 << 30

type binmapFixed struct {
	Magic       [4]byte
	Version     uint16
	Flags       uint16
	Resolution  float64
	Dimension   float64
	Center      [3]float64
	Points      uint32
	RecChannels uint32
	LigChannels uint32
	ParamLen    uint16
}

//BinmapOptions control how a binmap file is written.
type BinmapOptions struct {
	Binary   bool //the occupancies are binary. Only recorded in the header.
	Compress bool //zstd-compress the payload
}

//BinmapHeader is the information in the header of a binmap file.
type BinmapHeader struct {
	Version     uint16
	Flags       uint16
	Resolution  float64
	Dimension   float64
	Center      [3]float64
	Points      int
	RecChannels int
	LigChannels int
	Param       string
}

//Box returns the box of the grid in the file.
func (h *BinmapHeader) Box() grid.Box {
	return grid.Box{Center: h.Center, Dimension: h.Dimension, Resolution: h.Resolution}
}

//Channels returns the total number of channels in the file.
func (h *BinmapHeader) Channels() int { return h.RecChannels + h.LigChannels }

//Binary returns true if the file holds binary occupancies.
func (h *BinmapHeader) Binary() bool { return h.Flags&FlagBinary != 0 }

//Compressed returns true if the payload is zstd-compressed.
func (h *BinmapHeader) Compressed() bool { return h.Flags&FlagZstd != 0 }

//values returns the number of occupancies in the payload. ok is false if
//that number is above MaxBinmapValues.
func (h *BinmapHeader) values() (n int, ok bool) {
	//1024 cubed is already MaxBinmapValues, so the product below can't overflow.
	if h.Points < 0 || h.Channels() < 0 || h.Points > 1024 {
		return 0, false
	}
	p := uint64(h.Points)
	v := uint64(h.Channels()) * p * p * p
	if v > MaxBinmapValues {
		return 0, false
	}
	return int(v), true
}

//size returns the length in bytes of the header in a file.
func (h *BinmapHeader) size() int64 {
	return int64(binary.Size(binmapFixed{})) + int64(len(h.Param))
}

//WriteBinmap writes the tensors, in order, as a binmap file in path. nrec and nlig
//are the number of receptor and ligand channels, and must add up to the channels
//in the tensors.
func WriteBinmap(path string, opts BinmapOptions, box grid.Box, nrec, nlig int, tensors ...*grid.Tensor) error {
	n := box.Points()
	total := 0
	for _, t := range tensors {
		if t.N != n {
			return &Error{fmt.Sprintf("grid with %d points per axis in a box with %d", t.N, n), path, []string{"WriteBinmap"}, true}
		}
		total += t.Channels
	}
	if nrec < 0 || nlig < 0 || total != nrec+nlig {
		return &Error{fmt.Sprintf("%d receptor and %d ligand channels given for %d channels", nrec, nlig, total), path, []string{"WriteBinmap"}, true}
	}
	param := grid.ParamString(box, nrec, nlig)
	h := binmapFixed{
		Version:     BinmapVersion,
		Resolution:  box.Resolution,
		Dimension:   box.Dimension,
		Center:      box.Center,
		Points:      uint32(n),
		RecChannels: uint32(nrec),
		LigChannels: uint32(nlig),
		ParamLen:    uint16(len(param)),
	}
	copy(h.Magic[:], binmapMagic)
	if nrec > 0 {
		h.Flags |= FlagReceptor
	}
	if nlig > 0 {
		h.Flags |= FlagLigand
	}
	if opts.Binary {
		h.Flags |= FlagBinary
	}
	if opts.Compress {
		h.Flags |= FlagZstd
	}
	f, err := os.Create(path)
	if err != nil {
		return chem.NewFileError(path, true, err, "WriteBinmap")
	}
	err = writeBinmap(f, &h, param, opts.Compress, tensors)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return &Error{err.Error(), path, []string{"WriteBinmap"}, true}
	}
	return nil
}

func writeBinmap(f io.Writer, h *binmapFixed, param string, compress bool, tensors []*grid.Tensor) error {
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return err
	}
	if _, err := w.WriteString(param); err != nil {
		return err
	}
	var payload io.Writer = w
	var enc *zstd.Encoder
	if compress {
		var err error
		enc, err = zstd.NewWriter(w)
		if err != nil {
			return err
		}
		payload = enc
	}
	for _, t := range tensors {
		if err := binary.Write(payload, binary.LittleEndian, t.Data); err != nil {
			return err
		}
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return err
		}
	}
	return w.Flush()
}

//ReadBinmap reads the binmap file in path. It returns its header and all its channels
//in one tensor, receptor channels first. If path contains a ParamString, it must agree with
//the header.
func ReadBinmap(path string) (*BinmapHeader, *grid.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, chem.NewFileError(path, false, err, "ReadBinmap")
	}
	defer f.Close()
	r := bufio.NewReader(f)
	h, err := readHeader(r)
	if err != nil {
		return nil, nil, &Error{err.Error(), path, []string{"readHeader", "ReadBinmap"}, true}
	}
	if p, err := grid.ParseParamString(path); err == nil && p.String() != h.Param {
		return nil, nil, &Error{fmt.Sprintf("file name says %s but header says %s", p.String(), h.Param), path, []string{"ReadBinmap"}, true}
	}
	values, ok := h.values()
	if !ok {
		return nil, nil, &Error{fmt.Sprintf("%d channels of %d points per axis is too large a grid", h.Channels(), h.Points), path, []string{"ReadBinmap"}, true}
	}
	if !h.Compressed() {
		st, err := f.Stat()
		if err != nil {
			return nil, nil, &Error{err.Error(), path, []string{"ReadBinmap"}, true}
		}
		want := h.size() + 4*int64(values)
		if st.Size() < want {
			return nil, nil, &Error{fmt.Sprintf("payload shorter than %d values", values), path, []string{"ReadBinmap"}, true}
		}
		if st.Size() > want {
			return nil, nil, &Error{fmt.Sprintf("payload longer than %d values", values), path, []string{"ReadBinmap"}, true}
		}
	}
	var payload io.Reader = r
	if h.Compressed() {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, &Error{err.Error(), path, []string{"ReadBinmap"}, true}
		}
		defer dec.Close()
		payload = dec
	}
	t := grid.NewTensor(h.Channels(), h.Points)
	if err := binary.Read(payload, binary.LittleEndian, t.Data); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("payload shorter than %d values", len(t.Data))
		}
		return nil, nil, &Error{err.Error(), path, []string{"ReadBinmap"}, true}
	}
	var extra [1]byte
	if k, _ := io.ReadFull(payload, extra[:]); k != 0 {
		return nil, nil, &Error{fmt.Sprintf("payload longer than %d values", len(t.Data)), path, []string{"ReadBinmap"}, true}
	}
	return h, t, nil
}

func readHeader(r io.Reader) (*BinmapHeader, error) {
	var fixed binmapFixed
	if err := binary.Read(r, binary.LittleEndian, &fixed); err != nil {
		return nil, fmt.Errorf("can't read header: %w", err)
	}
	if string(fixed.Magic[:]) != binmapMagic {
		return nil, fmt.Errorf("not a binmap file")
	}
	if fixed.Version != BinmapVersion {
		return nil, fmt.Errorf("unsupported binmap version %d", fixed.Version)
	}
	if fixed.ParamLen > maxParamLen {
		return nil, fmt.Errorf("parameter string of %d bytes", fixed.ParamLen)
	}
	param := make([]byte, fixed.ParamLen)
	if _, err := io.ReadFull(r, param); err != nil {
		return nil, fmt.Errorf("can't read parameter string: %w", err)
	}
	h := &BinmapHeader{
		Version:     fixed.Version,
		Flags:       fixed.Flags,
		Resolution:  fixed.Resolution,
		Dimension:   fixed.Dimension,
		Center:      fixed.Center,
		Points:      int(fixed.Points),
		RecChannels: int(fixed.RecChannels),
		LigChannels: int(fixed.LigChannels),
		Param:       string(param),
	}
	box, err := grid.NewBox(h.Center, h.Dimension, h.Resolution)
	if err != nil {
		return nil, err
	}
	if box.Points() != h.Points {
		return nil, fmt.Errorf("%d points per axis in a box that has %d", h.Points, box.Points())
	}
	if want := grid.ParamString(box, h.RecChannels, h.LigChannels); want != h.Param {
		return nil, fmt.Errorf("parameter string %s doesn't match the header (%s)", h.Param, want)
	}
	return h, nil
}
