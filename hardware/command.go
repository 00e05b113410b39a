// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hardware

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"
)

// A Runner executes native inventory commands.
//
// Implementations never fail: a command that is missing, exits non-zero or
// cannot be started produces no output.
type Runner interface {
	// RunNative runs a command and returns its standard output split
	// into lines.
	RunNative(ctx context.Context, name string, args ...string) []string

	// FirstAnswer runs a command and returns the first line of its
	// standard output, or the empty string.
	FirstAnswer(ctx context.Context, name string, args ...string) string
}

// ExecRunner is a Runner backed by os/exec.
type ExecRunner struct {
	// Log receives debug messages about failed commands. The zero value
	// discards them.
	Log logr.Logger
}

var _ Runner = ExecRunner{}

// RunNative implements Runner.
func (r ExecRunner) RunNative(ctx context.Context, name string, args ...string) []string {
	log := r.Log.WithValues("command", commandLine(name, args))

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		// Stdout gathered before a non-zero exit is still discarded; the
		// caller treats that the same as a missing command.
		log.V(1).Info("command failed", "error", err.Error())
		return nil
	}

	lines := splitLines(out)
	log.V(1).Info("command finished", "lines", len(lines))

	return lines
}

// FirstAnswer implements Runner.
func (r ExecRunner) FirstAnswer(ctx context.Context, name string, args ...string) string {
	lines := r.RunNative(ctx, name, args...)
	if len(lines) == 0 {
		return ""
	}

	return lines[0]
}

// splitLines splits command output into lines without their terminators.
func splitLines(b []byte) []string {
	var lines []string

	s := bufio.NewScanner(bytes.NewReader(b))
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}

	return lines
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
