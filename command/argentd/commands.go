// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/argentite/argentd/version"
)

// setup commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue into main

	case "config-test", "cfg":
		return false // handled after configuration is read

	case "version", "v":
		fmt.Println(version.Version)

	case "help", "h", "?":
		fallthrough
	default:
		exitwithstatus.Message(
			"usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments…]\n"+
				"  (default)    run the node\n"+
				"  version      display program version\n"+
				"  config-test  parse the configuration file and display the result",
			program)
	}

	return true
}

// commands that run after the configuration file is read
func processConfigCommand(arguments []string, options *Configuration) bool {

	switch arguments[0] {

	case "config-test", "cfg":
		b, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("configuration encode error: %s", err)
		}
		fmt.Printf("%s\n", b)
		return true
	}

	return false
}
