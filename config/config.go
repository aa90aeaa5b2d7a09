// Package config assembles cstea's settings from defaults, an optional JSON
// file, the environment and command-line flags, in that order of
// precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"
)

// DefaultFilename is looked up in the working directory when no config
// file is given explicitly.
const DefaultFilename = "cstea.json"

type Config struct {
	Addr         null.String `json:"addr" envconfig:"CSTEA_ADDR"`
	LogVerbosity null.Int    `json:"logVerbosity" envconfig:"CSTEA_LOG_VERBOSITY"`
	LogFile      null.String `json:"logFile" envconfig:"CSTEA_LOG_FILE"`
	Color        null.Bool   `json:"color" envconfig:"CSTEA_COLOR"`
	Format       null.String `json:"format" envconfig:"CSTEA_FORMAT"`
	Positions    null.Bool   `json:"positions" envconfig:"CSTEA_POSITIONS"`
	MaxTrees     null.Int    `json:"maxTrees" envconfig:"CSTEA_MAX_TREES"`
}

// Default returns the built-in settings. Color is left unset so that it
// can be decided by looking at the terminal.
func Default() Config {
	return Config{
		Addr:         null.NewString(":8080", false),
		LogVerbosity: null.NewInt(0, false),
		Format:       null.NewString("text", false),
		Positions:    null.NewBool(false, false),
		MaxTrees:     null.NewInt(64, false),
	}
}

// Apply returns c overridden by every valid field of cfg.
func (c Config) Apply(cfg Config) Config {
	if cfg.Addr.Valid {
		c.Addr = cfg.Addr
	}
	if cfg.LogVerbosity.Valid {
		c.LogVerbosity = cfg.LogVerbosity
	}
	if cfg.LogFile.Valid {
		c.LogFile = cfg.LogFile
	}
	if cfg.Color.Valid {
		c.Color = cfg.Color
	}
	if cfg.Format.Valid {
		c.Format = cfg.Format
	}
	if cfg.Positions.Valid {
		c.Positions = cfg.Positions
	}
	if cfg.MaxTrees.Valid && cfg.MaxTrees.Int64 > 0 {
		c.MaxTrees = cfg.MaxTrees
	}
	return c
}

// ReadFile loads a JSON config file. A missing file yields an empty
// Config and no error unless required is set.
func ReadFile(fs afero.Fs, path string, required bool) (Config, error) {
	var conf Config
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return conf, nil
		}
		return conf, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parse config %s: %w", path, err)
	}
	return conf, nil
}

// FromEnv reads CSTEA_* variables through lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	var conf Config
	if err := envconfig.Process("", &conf, lookup); err != nil {
		return conf, fmt.Errorf("read environment: %w", err)
	}
	return conf, nil
}

// BindFlags registers the flags that override configuration values.
func BindFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to a JSON config `file` (default ./"+DefaultFilename+")")
	flags.Int("log-verbosity", 0, "log verbosity (0 = quiet, 2 = debug)")
	flags.String("log-file", "", "write logs to `path` instead of stderr")
	flags.Bool("color", false, "force colored output on or off")
}

// FromFlags reads the flags registered by BindFlags, plus any of format,
// positions and addr that the command defined itself. Only flags the
// user actually set become valid.
func FromFlags(flags *pflag.FlagSet) (Config, error) {
	var conf Config
	var err error
	if flags.Changed("log-verbosity") {
		var v int
		if v, err = flags.GetInt("log-verbosity"); err != nil {
			return conf, err
		}
		conf.LogVerbosity = null.IntFrom(int64(v))
	}
	if flags.Changed("log-file") {
		var v string
		if v, err = flags.GetString("log-file"); err != nil {
			return conf, err
		}
		conf.LogFile = null.StringFrom(v)
	}
	if flags.Changed("color") {
		var v bool
		if v, err = flags.GetBool("color"); err != nil {
			return conf, err
		}
		conf.Color = null.BoolFrom(v)
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		var v string
		if v, err = flags.GetString("format"); err != nil {
			return conf, err
		}
		conf.Format = null.StringFrom(v)
	}
	if flags.Lookup("positions") != nil && flags.Changed("positions") {
		var v bool
		if v, err = flags.GetBool("positions"); err != nil {
			return conf, err
		}
		conf.Positions = null.BoolFrom(v)
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		var v string
		if v, err = flags.GetString("addr"); err != nil {
			return conf, err
		}
		conf.Addr = null.StringFrom(v)
	}
	return conf, nil
}

// Load consolidates defaults, the config file, the environment and flags.
func Load(fs afero.Fs, flags *pflag.FlagSet, lookup func(string) (string, bool)) (Config, error) {
	conf := Default()

	path, required := DefaultFilename, false
	if flags.Lookup("config") != nil {
		if p, _ := flags.GetString("config"); p != "" {
			path, required = p, true
		}
	}
	fileConf, err := ReadFile(fs, path, required)
	if err != nil {
		return conf, err
	}
	conf = conf.Apply(fileConf)

	envConf, err := FromEnv(lookup)
	if err != nil {
		return conf, err
	}
	conf = conf.Apply(envConf)

	flagConf, err := FromFlags(flags)
	if err != nil {
		return conf, err
	}
	return conf.Apply(flagConf), nil
}
