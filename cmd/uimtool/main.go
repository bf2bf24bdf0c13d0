/*
Copyright 2024 The Universal Ink Library Authors.

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

// Package main provides the command line for inspecting Universal
// Ink Model files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Wacom-Developer/universal-ink-library/codec"
)

var (
	verbose, veryVerbose bool
	lenient              bool

	needStackTrace = true
)

func init() {
	flag.BoolVar(&verbose, "verbose", false, "")
	flag.BoolVar(&verbose, "v", false, "")
	flag.BoolVar(&veryVerbose, "vv", false, "")
	flag.BoolVar(&lenient, "lenient", false, "decode: log invariant violations instead of failing")
}

func main() {
	loadOptionalConfig()
	command := parseFlagsAndGetCommand()

	setupLogging(verbose, veryVerbose)
	handleVersion(command)

	switch command {
	case "h", "help":
		help()
		os.Exit(1)
	case "info":
		runInfo()
	case "validate":
		runValidate()
	case "dump":
		runDump()
	case "csv":
		runCSV()
	case "triples":
		runTriples()
	default:
		fmt.Fprintf(os.Stderr, "uimtool unknown subcommand %q\n", command)
		fmt.Fprintln(os.Stderr, "Run 'uimtool help' for usage.")
		os.Exit(1)
	}
}

func parseFlagsAndGetCommand() (command string) {
	if len(os.Args) == 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	command = os.Args[1]
	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}
	return
}

func handleVersion(command string) {
	if (command == "v" || command == "version") && len(flag.Args()) == 0 {
		fmt.Fprintf(os.Stdout, "uimtool %s\n", toolVersion)
		os.Exit(0)
	}
}

func help() {
	switch len(flag.Args()) {
	case 0:
		fmt.Fprintln(os.Stderr, usage)
	default:
		fmt.Fprintln(os.Stderr, usage)
	}
}

func requireFile() string {
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "uimtool: missing input .uim file")
		os.Exit(1)
	}
	return flag.Arg(0)
}

func loadModel(path string) *codecModel {
	data, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}
	m, err := codec.Decode(data, codec.DecodeOptions{Lenient: lenient})
	if err != nil {
		fail(err)
	}
	return &codecModel{m: m}
}

func fail(err error) {
	if needStackTrace {
		fmt.Fprintf(os.Stderr, "Fatal: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}
