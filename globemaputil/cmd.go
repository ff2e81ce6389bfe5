/*
Copyright © 2023 the GlobeMap authors.
This file is part of GlobeMap.

GlobeMap is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GlobeMap is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GlobeMap.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package globemaputil provides the command-line interface to GlobeMap.
package globemaputil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/globemap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to GlobeMap.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the minimum severity of logged messages:
              one of debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile is the path to the netCDF-3 file holding the
              latitude-longitude gridded dataset to render.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Variable",
			usage: `
              Variable is the name of the netCDF variable to render. If it is
              empty, the first variable that is not a coordinate or bookkeeping
              variable is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the colored points are written
              in gob format.`,
			shorthand:  "o",
			defaultVal: "globemap_output.gob",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "LegendFile",
			usage: `
              LegendFile, if specified, is the path where a PNG color bar
              legend is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "PreviewFile",
			usage: `
              PreviewFile, if specified, is the path where a flat
              equirectangular PNG image of the colored points is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "SummaryFile",
			usage: `
              SummaryFile, if specified, is the path where a TOML summary
              of the run is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Workers",
			usage: `
              Workers is the number of goroutines used to sample the grid.
              Values less than 1 use one per processor.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Sphere.Radius",
			usage: `
              Sphere.Radius is the radius of the sphere the sample points
              are placed on.`,
			defaultVal: 1.005,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Sphere.Count",
			usage: `
              Sphere.Count is the number of sample points.`,
			defaultVal: 10000,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Sampling.LatOffset",
			usage: `
              Sampling.LatOffset is the number of grid rows on each side of
              the center cell that are averaged for each point.`,
			defaultVal: globemap.DefaultOffset,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Sampling.LonOffset",
			usage: `
              Sampling.LonOffset is the number of grid columns on each side of
              the center cell that are averaged for each point.`,
			defaultVal: globemap.DefaultOffset,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Sampling.SingleCell",
			usage: `
              Sampling.SingleCell specifies whether to read only the center
              cell for each point instead of averaging its neighborhood.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Color.Ramp",
			usage: `
              Color.Ramp is the color ramp: linear, piecewise, moreland or
              blackbody.`,
			defaultVal: "linear",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Color.Degenerate",
			usage: `
              Color.Degenerate specifies what happens when every sampled value
              is the same: "error" stops with an error and "midpoint" colors
              every point with the middle of the ramp.`,
			defaultVal: "error",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Stars.Radius",
			usage: `
              Stars.Radius is the radius of the sphere the stars are placed on.`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{starsCmd.Flags()},
		},
		{
			name: "Stars.Count",
			usage: `
              Stars.Count is the number of stars.`,
			defaultVal: 1000,
			flagsets:   []*pflag.FlagSet{starsCmd.Flags()},
		},
		{
			name: "Stars.Seed",
			usage: `
              Stars.Seed seeds the random star placement. Zero uses the
              current time.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{starsCmd.Flags()},
		},
		{
			name: "Stars.OutputFile",
			usage: `
              Stars.OutputFile is the path where the star field is written
              in gob format.`,
			defaultVal: "globemap_stars.gob",
			flagsets:   []*pflag.FlagSet{starsCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GLOBEMAP")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

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
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(renderCmd)
	Root.AddCommand(starsCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("globemap: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// setLogger configures the standard logger.
func setLogger() error {
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("globemap: invalid LogLevel: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "globemap",
	Short: "Sample global gridded datasets onto a sphere.",
	Long: `GlobeMap samples a global latitude-longitude gridded dataset, such as a
Sentinel-5P level-3 product, at points spread over a sphere and colors each
point by its sampled value. Use the subcommands specified below to access the
functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GLOBEMAP_var' where 'var' is the
name of the variable to be set, with periods replaced by underscores.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if err := setConfig(); err != nil {
			return err
		}
		return setLogger()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of GlobeMap.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("GlobeMap v%s\n", globemap.Version)
	},
	DisableAutoGenTag: true,
}

// renderCmd samples a dataset onto the sphere.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Sample a gridded dataset onto the sphere.",
	Long: `render reads a variable from a netCDF-3 file, samples it at points spread
over a sphere, and writes the colored points along with an optional legend,
preview image and run summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := NewRenderConfig(Cfg)
		if err != nil {
			return err
		}
		_, err = Render(context.TODO(), rc, logrus.StandardLogger())
		return err
	},
	DisableAutoGenTag: true,
}

// starsCmd creates a star field.
var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Create a random star field.",
	Long: `stars places points at random on a large sphere surrounding the globe
and writes them in gob format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, outputFile, err := NewStarConfig(Cfg)
		if err != nil {
			return err
		}
		return Stars(context.TODO(), sc, outputFile, logrus.StandardLogger())
	},
	DisableAutoGenTag: true,
}
