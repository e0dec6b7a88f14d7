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


// Command adhocgen generates literal tag types for package adhocerr.
//
// It scans the Go files of a package directory for directives of the form
//
//	//adhocerr:literal errNoGitRoot unable to find .git/ in parent directories
//
// and writes one zero-size tag type per directive into a generated file, so
// that adhocerr.Err[errNoGitRoot]() and adhocerr.Wrap[errNoGitRoot]() can be
// used at the call site. It is meant to be run through go generate:
//
//	//go:generate go run github.com/dirpx/adhocerr/cmd/adhocgen
//
// Usage:
//
//	adhocgen [--dir DIR] [--output FILE] [--stdout] [--verbose]
//
// Every flag can also be set through the environment with the ADHOCGEN_
// prefix (ADHOCGEN_DIR, ADHOCGEN_OUTPUT, ...); flags take precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/dirpx/adhocerr"
	"github.com/dirpx/adhocerr/internal/config"
	"github.com/dirpx/adhocerr/internal/gen"
	"github.com/dirpx/adhocerr/zlog"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	programName := "adhocgen"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.Parse(programName, cmdArgs, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		for _, e := range adhocerr.Errors(err) {
			fmt.Fprintf(stderr, "%s: %s\n", programName, adhocerr.ChainString(e))
		}
		return ExitUsage
	}

	logger := newLogger(stderr, cfg.Verbose)
	if err := gen.Run(ctx, cfg, stdout, logger); err != nil {
		for _, e := range adhocerr.Errors(err) {
			zlog.Err(logger.Error(), e).Msg("generation failed")
		}
		return ExitFailure
	}
	return ExitSuccess
}

// newLogger returns a human-readable logger on w, at debug level when
// verbose is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level).
		With().
		Str("component", "adhocgen").
		Logger()
}
