// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package main

import (
	"os"

	"github.com/microsoft/seqgen/internal/cmd"
)

var (
	// set during build
	commit = ""
)

func main() {
	err := cmd.NewRootCommand(commit).Execute()
	if err != nil {
		os.Exit(1)
	}
}
