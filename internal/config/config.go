/*
	Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


// Package config holds the adhocgen configuration: command-line flags,
// environment overrides and their validation.
//
// Priority is flags, then environment variables (prefixed with EnvPrefix),
// then defaults.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dirpx/adhocerr"
)

const (
	// EnvPrefix prefixes every environment override, e.g. ADHOCGEN_OUTPUT.
	EnvPrefix = "ADHOCGEN_"

	// DefaultOutput is the name of the generated file inside the package
	// directory.
	DefaultOutput = "adhocerr_literals.go"
)

// Config is the resolved adhocgen configuration.
type Config struct {
	// Dir is the package directory to scan and write into.
	Dir string
	// Output is the generated file name, relative to Dir.
	Output string
	// Stdout prints the generated source instead of writing Output.
	Stdout bool
	// Verbose enables debug logging.
	Verbose bool
}

//go:generate go run github.com/dirpx/adhocerr/cmd/adhocgen

//adhocerr:literal errPositionalArgs adhocgen takes no positional arguments; use --dir
//adhocerr:literal errEmptyDir package directory must not be empty

// Parse parses args (without the program name) into a Config. Usage and
// parse errors are written to errWriter. A request for help returns
// pflag.ErrHelp.
func Parse(programName string, args []string, errWriter io.Writer) (Config, error) {
	cfg := Config{}

	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.StringVarP(&cfg.Dir, "dir", "d", ".", "package directory to scan for //adhocerr:literal directives")
	fs.StringVarP(&cfg.Output, "output", "o", DefaultOutput, "generated file name, relative to --dir")
	fs.BoolVar(&cfg.Stdout, "stdout", false, "print the generated source instead of writing it")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, adhocerr.Err[errPositionalArgs]()
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem of cfg at once.
func (c Config) Validate() error {
	col := adhocerr.NewCollector()
	col.Append(adhocerr.Ensure[errEmptyDir](c.Dir != ""))
	col.Append(adhocerr.Ensuref(strings.HasSuffix(c.Output, ".go"),
		"output %q must be a .go file", c.Output))
	col.Append(adhocerr.Ensuref(!strings.HasSuffix(c.Output, "_test.go"),
		"output %q must not be a test file", c.Output))
	col.Append(adhocerr.Ensuref(c.Output == filepath.Base(c.Output),
		"output %q must be a file name, not a path", c.Output))
	return col.Err()
}

// Path returns the full path of the generated file.
func (c Config) Path() string {
	return filepath.Join(c.Dir, c.Output)
}

// envOverride maps an environment key (without EnvPrefix) to the flag it
// overrides and the function applying its value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*Config, string)
}

var envOverrides = []envOverride{
	{"DIR", "dir", func(c *Config, v string) { c.Dir = v }},
	{"OUTPUT", "output", func(c *Config, v string) { c.Output = v }},
	{"STDOUT", "stdout", func(c *Config, v string) { c.Stdout = parseBoolEnv(v, c.Stdout) }},
	{"VERBOSE", "verbose", func(c *Config, v string) { c.Verbose = parseBoolEnv(v, c.Verbose) }},
}

// applyEnvOverrides applies environment values for every flag that was not
// set explicitly on the command line.
func applyEnvOverrides(cfg *Config, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		if fs.Changed(o.flag) {
			continue
		}
		if v, ok := os.LookupEnv(EnvPrefix + o.envKey); ok && v != "" {
			o.apply(cfg, v)
		}
	}
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no", case
// insensitively, and returns defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}
