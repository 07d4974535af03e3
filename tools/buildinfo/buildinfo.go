// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Command buildinfo reports what a Maven build deploys and where.
package main

import (
	"log"

	"github.com/google/buildinfo/tools/buildinfo/command/deployedartifacts"
	"github.com/google/buildinfo/tools/buildinfo/command/distributionmanagement"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "buildinfo",
	Short: "Reports the artifacts and repositories of a Maven build",
}

func init() {
	rootCmd.AddCommand(deployedartifacts.Command())
	rootCmd.AddCommand(distributionmanagement.Command())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
