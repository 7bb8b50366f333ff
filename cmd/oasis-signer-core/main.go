// Copyright 2024 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oasisprotocol/ledger-signer-core/internal/sessionscript"
	"github.com/oasisprotocol/ledger-signer-core/internal/version"

	"github.com/spf13/cobra"
)

const (
	programName = "oasis-signer-core"
)

var cmdlineFlags = struct {
	debug bool
}{}

func main() {
	cmd := &cobra.Command{
		Use: fmt.Sprintf("%s [flags] <session script file>", programName),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("you must specify a session script file")
			}
			if len(args) > 1 {
				return errors.New("you cannot specify more than one session script file")
			}
			return nil
		},
		Run: cmdRun,
	}

	cmd.Flags().BoolVarP(&cmdlineFlags.debug, "debug", "D", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		// NOTE: we purposely don't display the error, since cobra will have already displayed it
		os.Exit(1)
	}
}

func cmdRun(cmd *cobra.Command, args []string) {
	configureLogger()
	slog.Info(fmt.Sprintf("starting %s %s", programName, version.GetVersionString()))

	script, err := sessionscript.NewFromFile(args[0])
	if err != nil {
		fmt.Printf("ERROR: failed to load session script file: %s\n", err)
		os.Exit(1)
	}

	slog.Info("loaded session script", "name", script.Name, "steps", len(script.Steps))
	if err := script.Run(slog.Default()); err != nil {
		fmt.Printf("ERROR: session script failed: %s\n", err)
		os.Exit(1)
	}
}

func configureLogger() {
	// Configure default logger
	var logger *slog.Logger
	if cmdlineFlags.debug {
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	} else {
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
	slog.SetDefault(logger)
}
