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

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// toolConfig is the optional $HOME/.uimtool.yaml config file. Its
// values become the flags' defaults; an explicit command line flag
// still wins, since loadOptionalConfig runs before flag.Parse.
type toolConfig struct {
	Verbose     bool `yaml:"verbose"`
	VeryVerbose bool `yaml:"veryVerbose"`
	Lenient     bool `yaml:"lenient"`
}

// loadOptionalConfig reads $HOME/.uimtool.yaml if present and seeds
// the package-level flag variables from it. A missing file is not an
// error; a malformed one is reported and ignored.
func loadOptionalConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	path := filepath.Join(home, ".uimtool.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var cfg toolConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		os.Stderr.WriteString("uimtool: ignoring malformed " + path + "\n")
		return
	}
	verbose = cfg.Verbose
	veryVerbose = cfg.VeryVerbose
	lenient = cfg.Lenient
}
