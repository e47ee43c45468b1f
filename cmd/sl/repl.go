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

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "always print the prompt, regardless of stdin's terminal-ness",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
}

// runRepl is SPEC_FULL.md §6.3's `sl repl`: same evaluation loop as
// `sl run`, but the prompt always prints, useful for scripted testing
// harnesses that pipe stdin from a file.
func runRepl(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDie()
	ip := bootstrap(cfg, flagNoStdlib, splitTraceFlag(flagTraceCSV), os.Stderr)
	printBanner()
	os.Exit(runLoop(ip, os.Stdin, os.Stdout, os.Stderr, true))
	return nil
}
