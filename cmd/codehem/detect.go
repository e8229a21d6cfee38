package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codehem-go/codehem"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "Guess a source file's language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			lang, confidence := codehem.DetectLanguage(data, path)
			if lang == "" {
				return fmt.Errorf("could not determine a language for %s", path)
			}
			fmt.Printf("%s\t%.2f\n", lang, confidence)
			return nil
		},
	}
}
