// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

// Command sl is the sl language interpreter (SPEC_FULL.md §6.3). Its
// command tree and flag wiring (cobra/pflag) have no equivalent in the
// retrieval pack to adapt line-by-line; cmd/retro/main.go builds its
// CLI with the stdlib flag package instead. The tree shape below
// follows general cobra convention, while bootstrap/runLoop reuse the
// teacher's setup-then-loop-then-report structure from cmd/retro/main.go.
package main

import (
	"fmt"
	"os"

	"github.com/db47h/sl/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagNoStdlib bool
	flagSilent   bool
	flagTraceCSV string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sl [file]",
		Short:         "sl is an interpreter for the sl Lisp dialect",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runRun,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML runtime config file")
	root.PersistentFlags().BoolVar(&flagNoStdlib, "no-stdlib", false, "skip preloading the standard library (spec §6.4)")
	root.PersistentFlags().BoolVarP(&flagSilent, "silent", "s", false, "suppress the startup banner")
	root.PersistentFlags().StringVar(&flagTraceCSV, "trace", "", "comma-separated names to seed into *debug-trace* at startup")

	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())

	return root
}

// loadConfigOrDie resolves the runtime config for this invocation:
// flagConfig if given, else config.Default(). A malformed --config
// file is a host error (spec §7c) and is fatal.
func loadConfigOrDie() *config.Config {
	if flagConfig == "" {
		return config.Default()
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sl: %s\n", err)
		os.Exit(1)
	}
	return cfg
}

func printBanner() {
	if !flagSilent {
		fmt.Fprintln(os.Stdout, "sl - a small Lisp")
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sl: %s\n", err)
		os.Exit(1)
	}
}
