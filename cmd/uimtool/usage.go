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

package main

const toolVersion = "0.1.0"

const usage = `uimtool inspects Universal Ink Model (.uim) files.

Usage:

	uimtool <command> [flags] FILE

Commands:

	info      print a summary of a file's header, strokes, trees and triples
	validate  decode a file and run the I1-I5 structural invariant checks
	dump      decode a file and print it as a protobuf-JSON capture
	csv       decode a file and print each stroke's X/Y/size as CSV
	triples   decode a file and print its semantic triples
	version   print the tool version

Flags:

	-v, -verbose   enable info-level logging
	-vv            enable debug-level logging
	-lenient       decode: log an invariant violation instead of failing
`
