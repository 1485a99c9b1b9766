/*
 * cmd.go, part of gochemgrid.
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

/*Package gninagrid is the command line driver for the voxelizer. It reads a receptor and a
set of ligand poses, and writes, for each pose, the occupancy grids of the receptor and ligand
as binmap files or AutoDock4 maps.*/
package gninagrid

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	chem "github.com/rmera/gochemgrid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//Version of the gninagrid program
const Version = "1.0.0"

//Cfg holds the configuration: command line flags, environment variables
//(GNINAGRID_<option>) and an optional configuration file.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name:       "config",
			usage:      "configuration file (any format viper reads: yaml, toml, json...)",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name:       "receptor",
			usage:      "receptor file (PDB, optionally .gz or .zst compressed)",
			shorthand:  "r",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "ligand",
			usage:      "ligand(s), one pose per MODEL",
			shorthand:  "l",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "out",
			usage:      "output file name base, combined map if outlig is not specified, receptor only otherwise",
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "outlig",
			usage:      "output file name base for ligand only output",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "map",
			usage:      "output AD4 map files (for debugging, out is base name)",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "dimension",
			usage:      "cubic grid dimension (Angstroms)",
			defaultVal: 23.5,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "resolution",
			usage:      "cubic grid resolution (Angstroms)",
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "binary_occupancy",
			usage:      "output binary occupancies (still as floats)",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "center_x",
			usage:      "X coordinate of the center, if unspecified use first ligand",
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "center_y",
			usage:      "Y coordinate of the center, if unspecified use first ligand",
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "center_z",
			usage:      "Z coordinate of the center, if unspecified use first ligand",
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "autocenter",
			usage:      "ligand to use to determine center",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "recmap",
			usage:      "atom type mapping for receptor atoms",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "ligmap",
			usage:      "atom type mapping for ligand atoms",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "compress",
			usage:      "zstd-compress the payload of binmap files",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "workers",
			usage:      "goroutines used to compute each grid, 0 uses one per CPU",
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name:       "verbosity",
			usage:      "adjust the verbosity of the output: 0 only errors, 1 progress, 2 debugging",
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()
	setEnv(Cfg)
	setDefaults(Cfg)
	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(versionCmd)
	Root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("command line parse error: %v\n\nCorrect usage:\n%s", err, cmd.UsageString())
	})
}

//setEnv makes v read GNINAGRID_<OPTION> environment variables.
func setEnv(v *viper.Viper) {
	v.SetEnvPrefix("GNINAGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

//setDefaults gives v the defaults of all the options, so it can be used without flags.
func setDefaults(v *viper.Viper) {
	for _, option := range options {
		v.SetDefault(option.name, option.defaultVal)
	}
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig(v *viper.Viper) error {
	if cfgpath := v.GetString("config"); cfgpath != "" {
		v.SetConfigFile(cfgpath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("gninagrid: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gninagrid",
	Short: "Voxelize a receptor and ligand poses into occupancy grids.",
	Long: `gninagrid computes, for every heavy atom type and grid point, an occupancy value for
a receptor and for each pose of a ligand, and writes the grids as binmap files (whose names
carry the grid parameters) or as AutoDock4 maps.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GNINAGRID_var' where 'var' is the
name of the variable to be set.`,
	Version:           Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig(Cfg) },
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ConfigFromViper(Cfg)
		if err != nil {
			return err
		}
		log := NewLogger(os.Stderr, cfg.Verbosity)
		err = Run(cfg, log)
		var ferr chem.FileErrorer
		if errors.As(err, &ferr) && ferr.FileName() != "" {
			log.Debug().Str("file", ferr.FileName()).Strs("trace", ferr.Decorate("")).Msg("Run failed")
		}
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of gninagrid.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gninagrid v%s\n", Version)
	},
	DisableAutoGenTag: true,
}
