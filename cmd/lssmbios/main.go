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

// Command lssmbios displays the computer system, firmware and baseboard
// information reported by the operating system.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"github.com/yywing/go-sysinfo/hardware"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// readComputerSystem is swapped out in tests.
var readComputerSystem = hardware.ReadComputerSystem

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		output    string
		verbosity int
	)

	cmd := &cobra.Command{
		Use:          "lssmbios",
		Short:        "Display computer system, firmware and baseboard information",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), verbosity)
			ctx := logr.NewContext(cmd.Context(), log)

			return run(ctx, cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity")

	return cmd
}

func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

func run(ctx context.Context, w io.Writer, output string) error {
	switch output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("reading computer system")

	cs, err := readComputerSystem(ctx)
	if err != nil {
		return fmt.Errorf("failed to read computer system: %w", err)
	}

	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cs)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(cs)
	}

	if u := uname(); u != "" {
		fmt.Fprintln(w, u)
	}

	fmt.Fprintf(w, "system: %s\n", cs)
	fmt.Fprintf(w, "firmware: %s\n", cs.Firmware)
	fmt.Fprintf(w, "baseboard: %s\n", cs.Baseboard)

	return nil
}
