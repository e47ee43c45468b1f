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
	"fmt"
	"os"

	"github.com/db47h/sl/internal/tty"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "evaluate a file, or standard input if none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRun,
	}
}

// runRun implements spec §6.3's default invocation: one optional
// filename, else stdin, with the "sl> " prompt gated on stdin actually
// being an interactive terminal.
func runRun(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDie()
	ip := bootstrap(cfg, flagNoStdlib, splitTraceFlag(flagTraceCSV), os.Stderr)

	in := os.Stdin
	prompt := false
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("sl: %s", err)
		}
		defer f.Close()
		in = f
	} else {
		prompt = tty.IsInteractive(os.Stdin)
		printBanner()
	}

	os.Exit(runLoop(ip, in, os.Stdout, os.Stderr, prompt))
	return nil
}
