/*
Copyright © 2026 Emilio Dominguez <emiliodominguez@users.noreply.github.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
// Package config loads .sass-dep.toml (plus SASSDEP_ env vars and CLI flags,
// merged by viper) into the resolved Config the rest of the CLI consumes.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/emiliodominguez/sass-dep/fs"
)

// Thresholds mirrors analyze.Thresholds, duplicated here so this package
// doesn't need to import analyze just to describe its config shape.
type Thresholds struct {
	HighFanIn  int `toml:"high_fan_in"`
	HighFanOut int `toml:"high_fan_out"`
}

// Config is the fully merged configuration: defaults, overridden by
// .sass-dep.toml, overridden by SASSDEP_ env vars, overridden by flags.
type Config struct {
	Root       string     `toml:"root"`
	LoadPaths  []string   `toml:"load_paths"`
	Extensions []string   `toml:"extensions"`
	Thresholds Thresholds `toml:"thresholds"`
}

// Default returns the configuration's zero-file defaults.
func Default() Config {
	return Config{
		Root:       ".",
		Extensions: []string{"scss", "sass"},
		Thresholds: Thresholds{HighFanIn: 5, HighFanOut: 10},
	}
}

// BindFlags registers the global flags on the root command (persistent, so
// every subcommand inherits them) and binds them into viper, so flag > env
// > file > default precedence falls out for free.
func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("root", ".", "project root directory")
	cmd.PersistentFlags().String("config", "", "config file (default: ./.sass-dep.toml)")
	cmd.PersistentFlags().StringSliceP("load-path", "I", nil, "additional load path (repeatable)")
	cmd.PersistentFlags().Int("high-fan-in", 5, "fan-in value above which a node is flagged high_fan_in")
	cmd.PersistentFlags().Int("high-fan-out", 10, "fan-out value above which a node is flagged high_fan_out")
	cmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v, -vv, -vvv)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	cmd.PersistentFlags().Bool("print-config", false, "print the fully merged config as TOML to stderr before running")

	_ = viper.BindPFlag("root", cmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("thresholds.high_fan_in", cmd.PersistentFlags().Lookup("high-fan-in"))
	_ = viper.BindPFlag("thresholds.high_fan_out", cmd.PersistentFlags().Lookup("high-fan-out"))
}

// Load reads .sass-dep.toml (or the file named by --config) plus SASSDEP_
// env vars into viper, then merges in -I/--load-path on top of whatever
// load_paths the file declared, and decodes the result.
func Load(cmd *cobra.Command) (Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".sass-dep")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("SASSDEP")
	viper.AutomaticEnv()

	cfg := Default()
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else {
		if err := viper.UnmarshalKey("load_paths", &cfg.LoadPaths); err != nil {
			return cfg, fmt.Errorf("parsing load_paths: %w", err)
		}
		if err := viper.UnmarshalKey("extensions", &cfg.Extensions); err != nil {
			return cfg, fmt.Errorf("parsing extensions: %w", err)
		}
		if len(cfg.Extensions) == 0 {
			cfg.Extensions = Default().Extensions
		}
	}

	if root := viper.GetString("root"); root != "" {
		cfg.Root = root
	}
	cfg.Thresholds.HighFanIn = viper.GetInt("thresholds.high_fan_in")
	cfg.Thresholds.HighFanOut = viper.GetInt("thresholds.high_fan_out")

	extraLoadPaths, _ := cmd.Flags().GetStringSlice("load-path")
	cfg.LoadPaths = append(cfg.LoadPaths, extraLoadPaths...)

	return cfg, nil
}

// PrintConfig renders cfg as TOML to stderr, exercising
// pelletier/go-toml/v2 directly (beyond viper's own read path) per the
// --print-config flag.
func PrintConfig(cfg Config) error {
	enc, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprintln(os.Stderr, string(enc))
	return nil
}

// WriteStarter writes a starter .sass-dep.toml for `sass-dep init-config`.
func WriteStarter(osfs fs.FileSystem, path string) error {
	enc, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encoding starter config: %w", err)
	}
	return osfs.WriteFile(path, enc, 0644)
}
