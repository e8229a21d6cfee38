package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codehem-go/codehem"
)

func newExtractCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Print a file's element inventory as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			resolved := lang
			if resolved == "" {
				resolved, _ = codehem.DetectLanguage(data, path)
			}
			if resolved == "" {
				return fmt.Errorf("could not determine a language for %s; pass --lang", path)
			}

			tree, err := codehem.Extract(context.Background(), resolved, data)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(tree, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding element tree: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "target language (inferred from the file extension if omitted)")
	return cmd
}
