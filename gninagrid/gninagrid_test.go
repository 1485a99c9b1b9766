/*
 * gninagrid_test.go, part of gochemgrid.
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
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	chem "github.com/rmera/gochemgrid"
	"github.com/rmera/gochemgrid/gridio"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) (*Config, string) {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		Receptor:   "../test/receptor.pdb",
		Ligand:     "../test/ligand.pdb",
		Out:        filepath.Join(dir, "out"),
		Dimension:  12,
		Resolution: 0.5,
		CenterX:    math.NaN(),
		CenterY:    math.NaN(),
		CenterZ:    math.NaN(),
		Workers:    2,
		Verbosity:  2,
	}, dir
}

func files(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var ret []string
	for _, e := range entries {
		ret = append(ret, e.Name())
	}
	sort.Strings(ret)
	return ret
}

func TestRunCombined(t *testing.T) {
	cfg, dir := testConfig(t)
	var buf bytes.Buffer
	require.NoError(t, Run(cfg, NewLogger(&buf, cfg.Verbosity)))
	want := []string{"out_0.25_12_0.5_26_26.binmap", "out_1.25_12_0.5_26_26.binmap"}
	if diff := cmp.Diff(want, files(t, dir)); diff != "" {
		t.Fatalf("unexpected output files (-want +got):\n%s", diff)
	}
	h0, t0, err := gridio.ReadBinmap(filepath.Join(dir, want[0]))
	require.NoError(t, err)
	_, t1, err := gridio.ReadBinmap(filepath.Join(dir, want[1]))
	require.NoError(t, err)
	assert.Equal(t, [4]int{52, 25, 25, 25}, t0.Shape())
	assert.Equal(t, 26, h0.RecChannels)
	//same receptor, different poses
	assert.Equal(t, t0.Data[:26*25*25*25], t1.Data[:26*25*25*25])
	assert.NotEqual(t, t0.Data[26*25*25*25:], t1.Data[26*25*25*25:])
	assert.Contains(t, buf.String(), "Done")
	assert.Contains(t, buf.String(), "Ligand grid computed")
}

func TestRunSeparate(t *testing.T) {
	cfg, dir := testConfig(t)
	cfg.OutLig = filepath.Join(dir, "lig")
	cfg.Binary = true
	cfg.Compress = true
	cfg.Verbosity = 0
	var buf bytes.Buffer
	require.NoError(t, Run(cfg, NewLogger(&buf, cfg.Verbosity)))
	want := []string{"lig_0.25_12_0.5_0_26.binmap", "lig_1.25_12_0.5_0_26.binmap", "out.25_12_0.5_26_0.binmap"}
	if diff := cmp.Diff(want, files(t, dir)); diff != "" {
		t.Fatalf("unexpected output files (-want +got):\n%s", diff)
	}
	h, T, err := gridio.ReadBinmap(filepath.Join(dir, want[2]))
	require.NoError(t, err)
	assert.Equal(t, 26, T.Channels)
	assert.True(t, h.Binary())
	assert.True(t, h.Compressed())
	h, T, err = gridio.ReadBinmap(filepath.Join(dir, want[0]))
	require.NoError(t, err)
	assert.Equal(t, 0, h.RecChannels)
	assert.Equal(t, 26, T.Channels)
	assert.Empty(t, buf.String())
}

func TestRunMap(t *testing.T) {
	cfg, dir := testConfig(t)
	cfg.Map = true
	cfg.Dimension = 4
	cfg.Resolution = 1
	ligmap := filepath.Join(dir, "lig.map.types")
	require.NoError(t, os.WriteFile(ligmap, []byte("AliphaticCarbonXSHydrophobe AliphaticCarbonXSNonHydrophobe\nOxygenXSDonorAcceptor\n"), 0o644))
	cfg.LigMap = ligmap
	require.NoError(t, Run(cfg, NewLogger(&bytes.Buffer{}, 1)))
	got := files(t, dir)
	assert.Len(t, got, 1+2*(26+2))
	assert.Contains(t, got, "out_0.Rec_Zinc.map")
	assert.Contains(t, got, "out_1.Lig_OxygenXSDonorAcceptor.map")
	assert.Contains(t, got, "out_1.Lig_AliphaticCarbonXSHydrophobe_AliphaticCarbonXSNonHydrophobe.map")
}

func TestRunCenter(t *testing.T) {
	cfg, dir := testConfig(t)
	cfg.Autocenter = "../test/single.pdb"
	require.NoError(t, Run(cfg, NewLogger(&bytes.Buffer{}, 1)))
	h, _, err := gridio.ReadBinmap(filepath.Join(dir, "out_0.25_12_0.5_26_26.binmap"))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, h.Center[:], 1e-9)

	cfg, dir = testConfig(t)
	cfg.CenterX, cfg.CenterY, cfg.CenterZ = -1, 0.5, 7
	cfg.Autocenter = "../test/no_such_file.pdb" //not used
	require.NoError(t, Run(cfg, NewLogger(&bytes.Buffer{}, 1)))
	h, _, err = gridio.ReadBinmap(filepath.Join(dir, "out_1.25_12_0.5_26_26.binmap"))
	require.NoError(t, err)
	assert.Equal(t, [3]float64{-1, 0.5, 7}, h.Center)
}

func TestRunErrors(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Receptor = "../test/no_such_receptor.pdb"
	err := Run(cfg, NewLogger(&bytes.Buffer{}, 0))
	var ferr *chem.FileError
	require.True(t, errors.As(err, &ferr), "got %v", err)
	assert.Equal(t, `Error: could not open "../test/no_such_receptor.pdb" for reading.`, ExitMessage(err))

	cfg, dir := testConfig(t)
	cfg.Out = filepath.Join(dir, "missing", "out")
	err = Run(cfg, NewLogger(&bytes.Buffer{}, 0))
	require.True(t, errors.As(err, &ferr), "got %v", err)
	assert.Equal(t, "writing", ferr.Direction())

	cfg, dir = testConfig(t)
	bad := filepath.Join(dir, "bad.types")
	require.NoError(t, os.WriteFile(bad, []byte("Zinc\nKryptonite\n"), 0o644))
	cfg.RecMap = bad
	err = Run(cfg, NewLogger(&bytes.Buffer{}, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid atom type Kryptonite")
	var terr chem.FileErrorer
	require.True(t, errors.As(err, &terr), "got %T", err)
	assert.Equal(t, bad, terr.FileName())
	assert.Equal(t, []string{"NewTypeMapFromReader", "NewTypeMap", "Run"}, terr.Decorate(""))
	assert.Equal(t, []string{"bad.types"}, files(t, dir))

	cfg, _ = testConfig(t)
	cfg.Autocenter = "../test/no_such_file.pdb"
	err = Run(cfg, NewLogger(&bytes.Buffer{}, 0))
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "../test/no_such_file.pdb", ferr.FileName())
}

func TestValidate(t *testing.T) {
	cfg, _ := testConfig(t)
	require.NoError(t, cfg.Validate())
	for name, mod := range map[string]func(*Config){
		"receptor":   func(c *Config) { c.Receptor = "" },
		"ligand":     func(c *Config) { c.Ligand = "" },
		"out":        func(c *Config) { c.Out = "" },
		"dimension":  func(c *Config) { c.Dimension = 0 },
		"resolution": func(c *Config) { c.Resolution = -0.5 },
		"workers":    func(c *Config) { c.Workers = -1 },
	} {
		c := *cfg
		mod(&c)
		assert.Error(t, c.Validate(), name)
	}
	c := *cfg
	c.Out, c.OutLig, c.Map = "", "lig", true
	assert.NoError(t, c.Validate())
	assert.Equal(t, "lig", c.LigandBase())
	assert.Equal(t, "../test/ligand.pdb", cfg.CenterSource())
}

func TestConfigFromViper(t *testing.T) {
	v := viper.New()
	setEnv(v)
	setDefaults(v)
	t.Setenv("GNINAGRID_WORKERS", "3")
	t.Setenv("GNINAGRID_RECEPTOR", "rec.pdb")
	v.Set("ligand", "lig.pdb")
	v.Set("out", "out")
	cfg, err := ConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "rec.pdb", cfg.Receptor)
	assert.Equal(t, 23.5, cfg.Dimension)
	assert.Equal(t, 0.5, cfg.Resolution)
	assert.Equal(t, 1, cfg.Verbosity)
	assert.True(t, math.IsNaN(cfg.CenterX))
	assert.False(t, cfg.Separate())

	cfgfile := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(cfgfile, []byte("dimension: 10\nresolution: 1\nbinary_occupancy: true\noutlig: ligout\n"), 0o644))
	v.Set("config", cfgfile)
	require.NoError(t, setConfig(v))
	cfg, err = ConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Dimension)
	assert.Equal(t, 1.0, cfg.Resolution)
	assert.True(t, cfg.Binary)
	assert.Equal(t, "ligout", cfg.LigandBase())

	v.Set("config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, setConfig(v))

	v = viper.New()
	setDefaults(v)
	_, err = ConfigFromViper(v)
	assert.Error(t, err)
}

func TestRoot(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cli")
	var buf bytes.Buffer
	Root.SetOut(&buf)
	Root.SetErr(&buf)
	Root.SetArgs([]string{"-r", "../test/receptor.pdb.gz", "-l", "../test/ligand.pdb", "-o", out,
		"--dimension", "6", "--resolution", "1", "--center_x", "0", "--center_y", "0", "--center_z", "0", "--verbosity", "0"})
	require.NoError(t, Root.Execute())
	assert.Equal(t, []string{"cli_0.7_6_1_26_26.binmap", "cli_1.7_6_1_26_26.binmap"}, files(t, dir))

	buf.Reset()
	Root.SetArgs([]string{"version"})
	require.NoError(t, Root.Execute())
	assert.Contains(t, buf.String(), "gninagrid v"+Version)

	Root.SetArgs([]string{"--dimension", "big"})
	err := Root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command line parse error")
}
