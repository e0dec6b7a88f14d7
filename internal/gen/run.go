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

package gen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/dirpx/adhocerr"
	"github.com/dirpx/adhocerr/internal/config"
)

// Run scans cfg.Dir and writes the generated tags to cfg.Path(), or to
// stdout when cfg.Stdout is set.
//
// A package without directives gets no file; a previously generated file is
// removed so that stale tags do not linger. Files not carrying Header are
// never overwritten or removed.
func Run(ctx context.Context, cfg config.Config, stdout io.Writer, logger zerolog.Logger) error {
	pkg, err := Scan(ctx, cfg.Dir, cfg.Output)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("dir", cfg.Dir).
		Str("package", pkg.Name).
		Int("literals", len(pkg.Literals)).
		Msg("package scanned")

	for _, lit := range pkg.Literals {
		logger.Debug().Str("tag", lit.Name).Str("pos", lit.Pos.String()).Msg("literal")
	}

	path := cfg.Path()
	if len(pkg.Literals) == 0 {
		if cfg.Stdout {
			return nil
		}
		removed, err := removeGenerated(path)
		if err != nil {
			return err
		}
		logger.Info().Str("dir", cfg.Dir).Bool("removed_stale", removed).Msg("no directives found")
		return nil
	}

	src, err := Render(pkg)
	if err != nil {
		return err
	}

	if cfg.Stdout {
		if _, err := stdout.Write(src); err != nil {
			return adhocerr.Wrapf("writing generated source for %s", pkg.Name)(err)
		}
		return nil
	}

	if err := ensureGenerated(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return adhocerr.Wrapf("writing %s", path)(err)
	}
	logger.Info().Str("file", path).Int("literals", len(pkg.Literals)).Msg("tags generated")
	return nil
}

// ensureGenerated fails when path exists and was not written by adhocgen.
func ensureGenerated(path string) error {
	generated, err := isGenerated(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return err
	}
	return adhocerr.Ensuref(generated, "refusing to overwrite %s: not generated by adhocgen", path)
}

// removeGenerated removes path if it is a file written by adhocgen and
// reports whether it did.
func removeGenerated(path string) (bool, error) {
	generated, err := isGenerated(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !generated) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := os.Remove(path); err != nil {
		return false, adhocerr.Wrapf("removing stale %s", path)(err)
	}
	return true, nil
}

func isGenerated(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
		return false, adhocerr.Wrapf("reading %s", path)(err)
	}
	return bytes.HasPrefix(data, []byte(Header)), nil
}
