/*
 * config.go, part of gochemgrid.
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
	"fmt"

	"github.com/rmera/gochemgrid/grid"
	"github.com/spf13/viper"
)

//Config holds all the options for one run.
type Config struct {
	Receptor string `mapstructure:"receptor"`
	Ligand   string `mapstructure:"ligand"`
	Out      string `mapstructure:"out"`
	OutLig   string `mapstructure:"outlig"`
	Map      bool   `mapstructure:"map"`

	Dimension  float64 `mapstructure:"dimension"`
	Resolution float64 `mapstructure:"resolution"`
	Binary     bool    `mapstructure:"binary_occupancy"`
	CenterX    float64 `mapstructure:"center_x"`
	CenterY    float64 `mapstructure:"center_y"`
	CenterZ    float64 `mapstructure:"center_z"`
	Autocenter string  `mapstructure:"autocenter"`
	RecMap     string  `mapstructure:"recmap"`
	LigMap     string  `mapstructure:"ligmap"`

	Compress  bool `mapstructure:"compress"`
	Workers   int  `mapstructure:"workers"`
	Verbosity int  `mapstructure:"verbosity"`
}

//ConfigFromViper decodes and validates the configuration in v.
func ConfigFromViper(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &Error{fmt.Sprintf("can't decode configuration: %v", err), "", []string{"ConfigFromViper"}, true}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errDecorate(err, "ConfigFromViper")
	}
	return cfg, nil
}

//Center returns the requested box center. It is not set (see grid.CenterIsSet)
//if the box has to be centered on a molecule.
func (c *Config) Center() [3]float64 {
	return [3]float64{c.CenterX, c.CenterY, c.CenterZ}
}

//CenterSource returns the file with the molecule to center the box on.
func (c *Config) CenterSource() string {
	if c.Autocenter != "" {
		return c.Autocenter
	}
	return c.Ligand
}

//Separate returns true if the receptor and ligand grids go in different files.
func (c *Config) Separate() bool {
	return c.OutLig != ""
}

//LigandBase returns the base name for the per-pose output files.
func (c *Config) LigandBase() string {
	if c.Separate() {
		return c.OutLig
	}
	return c.Out
}

//Validate returns an error if the configuration can't be used for a run.
func (c *Config) Validate() error {
	missing := func(what string) error {
		return &Error{fmt.Sprintf("no %s file given", what), "", []string{"Validate"}, true}
	}
	switch {
	case c.Receptor == "":
		return missing("receptor")
	case c.Ligand == "":
		return missing("ligand")
	case c.Out == "" && !(c.Map && c.OutLig != ""):
		return &Error{"no output file name base given", "", []string{"Validate"}, true}
	case c.Workers < 0:
		return &Error{fmt.Sprintf("invalid number of workers %d", c.Workers), "", []string{"Validate"}, true}
	}
	if _, err := grid.NewBox([3]float64{}, c.Dimension, c.Resolution); err != nil {
		return errDecorate(err, "Validate")
	}
	return nil
}
