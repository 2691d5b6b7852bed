// Copyright 2025 walteh LLC
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
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/unityfix/pkg/rewrite"
	"github.com/walteh/unityfix/pkg/rules"
	"github.com/walteh/unityfix/pkg/scan"
	"github.com/walteh/unityfix/pkg/status"
)

func main() {
	ctx := context.Background()

	rootCmd := &cobra.Command{
		Use:   "unityfix <path>",
		Short: "Rewrites deprecated Unity FindObject calls to the modern API",
		Long: `unityfix scans a directory tree for C# source files and replaces deprecated
FindObjectOfType / FindObjectsOfType calls with their FindFirstObjectByType /
FindObjectsByType equivalents, rewriting each changed file in place.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0])
		},
		SilenceErrors: true,
	}

	addRootFlags(rootCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger := status.NewUserLogger(ctx)
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}

// run wires the scanner together and executes one pass over the tree
func run(ctx context.Context, root string) error {
	scanner, err := scan.New(scan.Options{
		Root:      root,
		Glob:      globPattern,
		Rewriter:  rewrite.NewRegexRewriter(),
		Table:     rules.Catalog(),
		Formatter: status.NewDefaultFileFormatter(),
		Console:   os.Stdout,
	})
	if err != nil {
		return err
	}

	summary, err := scanner.Run(ctx)
	if err != nil {
		return err
	}

	userLogger := status.NewUserLogger(ctx)
	userLogger.LogRunComplete(summary.FilesModified, summary.TotalChanges)
	return nil
}
