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

package zlog_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dirpx/adhocerr"
	"github.com/dirpx/adhocerr/zlog"
)

type logLine struct {
	Error struct {
		Message string   `json:"message"`
		Causes  []string `json:"causes"`
	} `json:"error"`
	Message string `json:"message"`
}

func decode(t *testing.T, buf *bytes.Buffer) logLine {
	t.Helper()

	var line logLine
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid log output %q: %v", buf.String(), err)
	}
	return line
}

func TestErr_WritesChain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	err := adhocerr.Wrapf("failed to write %s", "report")(adhocerr.Errorf("disk full"))
	zlog.Err(logger.Error(), err).Msg("sync failed")

	line := decode(t, &buf)
	if got, want := line.Error.Message, "failed to write report"; got != want {
		t.Fatalf("error.message=%q want=%q", got, want)
	}
	if len(line.Error.Causes) != 1 || line.Error.Causes[0] != "disk full" {
		t.Fatalf("error.causes=%v want [disk full]", line.Error.Causes)
	}
	if line.Message != "sync failed" {
		t.Fatalf("message=%q want \"sync failed\"", line.Message)
	}
}

func TestErr_CauselessOmitsCauses(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	zlog.Err(logger.Error(), adhocerr.Const("closed")).Send()

	if strings.Contains(buf.String(), zlog.CausesKey) {
		t.Fatalf("causes key must be omitted, got %s", buf.String())
	}
	if got := decode(t, &buf).Error.Message; got != "closed" {
		t.Fatalf("error.message=%q want \"closed\"", got)
	}
}

func TestErr_Nil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	zlog.Err(logger.Info(), nil).Msg("ok")

	if strings.Contains(buf.String(), zerolog.ErrorFieldName) {
		t.Fatalf("nil error must not be logged, got %s", buf.String())
	}
}

func TestErr_ForeignChain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	root := errors.New("connection refused")
	zlog.Err(logger.Error(), adhocerr.Box(adhocerr.Wrapf("dial %s", "db:5432")(root))).Send()

	line := decode(t, &buf)
	if line.Error.Message != "dial db:5432" {
		t.Fatalf("error.message=%q", line.Error.Message)
	}
	if len(line.Error.Causes) != 1 || line.Error.Causes[0] != "connection refused" {
		t.Fatalf("error.causes=%v", line.Error.Causes)
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	err := adhocerr.Wrapf("a")(adhocerr.Wrapf("b")(adhocerr.Errorf("c")))
	zlog.Chain(logger.Warn(), "chain", err, adhocerr.WithSeparator(" > ")).Send()

	if !strings.Contains(buf.String(), `"chain":"a > b > c"`) {
		t.Fatalf("unexpected output %s", buf.String())
	}
}
