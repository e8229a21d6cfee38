// Command codehem is a CLI front-end for structured code surgery: it
// detects a file's language, prints its element inventory, and applies
// xpath-addressed upsert/remove patches.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codehem-go/codehem/internal/config"
	"github.com/codehem-go/codehem/internal/logx"
)

var cfg *config.Config

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "codehem",
		Short:         "Structured code surgery over Python, TypeScript, and JavaScript sources",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			return nil
		},
	}

	root.AddCommand(newDetectCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newPatchCmd())
	root.AddCommand(newHistoryCmd())

	return root
}

func warnf(format string, args ...any) {
	logx.Warn(format, args...)
}
