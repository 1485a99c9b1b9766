/*
 * run.go, part of gochemgrid.
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

package gninagrid

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	chem "github.com/rmera/gochemgrid"
	"github.com/rmera/gochemgrid/atomtype"
	"github.com/rmera/gochemgrid/grid"
	"github.com/rmera/gochemgrid/gridio"
)

//Run computes and writes the grids for the receptor and every pose of the ligand in cfg.
//It stops at the first error.
func Run(cfg *Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return errDecorate(err, "Run")
	}
	box, err := setBox(cfg, log)
	if err != nil {
		return errDecorate(err, "Run")
	}
	recmap, err := grid.NewTypeMap(cfg.RecMap)
	if err != nil {
		return errDecorate(err, "Run")
	}
	ligmap, err := grid.NewTypeMap(cfg.LigMap)
	if err != nil {
		return errDecorate(err, "Run")
	}
	vox := grid.NewVoxelizer(box, cfg.Binary, grid.NewBackend(cfg.Workers))
	g := grid.NewGridder(vox, recmap, ligmap)

	rec, err := chem.PDBFileRead(cfg.Receptor)
	if err != nil {
		return errDecorate(err, "Run")
	}
	atoms, err := typedAtoms(rec)
	if err != nil {
		return &Error{err.Error(), cfg.Receptor, []string{"typedAtoms", "Run"}, true}
	}
	if err := g.SetReceptor(atoms); err != nil {
		return errDecorate(err, "Run")
	}
	log.Info().Int("atoms", rec.Len()).Int("channels", recmap.Channels()).Str("file", cfg.Receptor).Msg("Receptor grid computed")

	opts := gridio.BinmapOptions{Binary: cfg.Binary, Compress: cfg.Compress}
	separate := cfg.Separate()
	var param string
	if !cfg.Map {
		if separate {
			name := gridio.ReceptorBinmapName(cfg.Out, g.ParamString(true, false))
			if err := gridio.WriteBinmap(name, opts, box, recmap.Channels(), 0, g.Tensors(true, false)...); err != nil {
				return errDecorate(err, "Run")
			}
			log.Info().Str("file", name).Msg("Receptor grid written")
			param = g.ParamString(false, true)
		} else {
			param = g.ParamString(true, true)
		}
	}

	poses, err := chem.NewPDBReader(cfg.Ligand)
	if err != nil {
		return errDecorate(err, "Run")
	}
	defer poses.Close()
	poses.SetLogger(log)
	base := cfg.LigandBase()
	n, err := forEachPose(poses, func(i int, mol *chem.Molecule) error {
		atoms, err := typedAtoms(mol)
		if err != nil {
			return &Error{err.Error(), cfg.Ligand, []string{"typedAtoms", "Run"}, true}
		}
		if err := g.SetLigand(atoms); err != nil {
			return err
		}
		logStats(log, i, g.Ligand())
		var name string
		if cfg.Map {
			name = gridio.PoseBase(base, i)
			err = gridio.WriteMAP(name, box, g.Names(true, true), g.Tensors(true, true)...)
		} else {
			name = gridio.BinmapName(base, i, param)
			nrec := 0
			if !separate {
				nrec = recmap.Channels()
			}
			err = gridio.WriteBinmap(name, opts, box, nrec, ligmap.Channels(), g.Tensors(!separate, true)...)
		}
		if err != nil {
			return err
		}
		log.Debug().Int("pose", i).Str("file", name).Msg("Pose written")
		return nil
	})
	if err != nil {
		return errDecorate(err, "Run")
	}
	if n == 0 {
		log.Warn().Str("file", cfg.Ligand).Msg("No ligand poses found")
	}
	log.Info().Int("poses", n).Msg("Done")
	return nil
}

//forEachPose calls f with each molecule in r, and its index, until r is exhausted or f returns
//an error. It returns the number of molecules processed.
func forEachPose(r chem.MolReader, f func(int, *chem.Molecule) error) (int, error) {
	for i := 0; ; i++ {
		mol, err := r.Next()
		if errors.Is(err, io.EOF) {
			return i, nil
		}
		if err != nil {
			return i, err
		}
		if err := f(i, mol); err != nil {
			return i, err
		}
	}
}

//setBox returns the box requested in cfg, centering it on a molecule if no center was given.
func setBox(cfg *Config, log zerolog.Logger) (grid.Box, error) {
	if grid.CenterIsSet(cfg.Center()) {
		return grid.NewBox(cfg.Center(), cfg.Dimension, cfg.Resolution)
	}
	source := cfg.CenterSource()
	mol, err := chem.PDBFileRead(source)
	if err != nil {
		return grid.Box{}, errDecorate(err, "setBox")
	}
	box, err := grid.AutoBox(mol.Coords(), cfg.Dimension, cfg.Resolution)
	if err != nil {
		return grid.Box{}, errDecorate(err, "setBox")
	}
	log.Info().Str("file", source).Floats64("center", box.Center[:]).Float64("dimension", box.Dimension).
		Float64("resolution", box.Resolution).Int("points", box.Points()).Msg("Box centered on molecule")
	return box, nil
}

func typedAtoms(mol *chem.Molecule) ([]grid.Atom, error) {
	types, err := atomtype.Assign(mol)
	if err != nil {
		return nil, err
	}
	return grid.AtomsFrom(mol.Coords(), types)
}

func logStats(log zerolog.Logger, pose int, t *grid.Tensor) {
	if log.GetLevel() > zerolog.DebugLevel {
		return
	}
	occupied := make([]float64, t.Channels)
	for c := range occupied {
		_, _, occupied[c] = t.Stats(c)
	}
	log.Debug().Int("pose", pose).Floats64("occupied", occupied).Float64("total", t.Sum()).Msg("Ligand grid computed")
}
