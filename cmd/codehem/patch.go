package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/codehem-go/codehem"
	"github.com/codehem-go/codehem/internal/store"
	"github.com/codehem-go/codehem/internal/walk"
)

func newPatchCmd() *cobra.Command {
	var (
		lang       string
		contentStr string
		fromStdin  bool
		remove     bool
		showDiff   bool
		ifMatch    string
		write      bool
	)

	cmd := &cobra.Command{
		Use:   "patch <file> <xpath>",
		Short: "Upsert or remove the element an xpath address names",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, address := args[0], args[1]

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

			ctx := context.Background()

			if ifMatch != "" {
				current, err := codehem.GetElementHash(ctx, resolved, data, address)
				if err != nil {
					return fmt.Errorf("checking --if-match: %w", err)
				}
				if current != ifMatch {
					return fmt.Errorf("--if-match mismatch: element hash is %s, expected %s", current, ifMatch)
				}
			}

			var result []byte
			if remove {
				result, err = codehem.RemoveElementByXPath(ctx, resolved, data, address)
			} else {
				content := contentStr
				if fromStdin {
					raw, readErr := io.ReadAll(os.Stdin)
					if readErr != nil {
						return fmt.Errorf("reading stdin: %w", readErr)
					}
					content = string(raw)
				}
				result, err = codehem.UpsertElementByXPath(ctx, resolved, data, address, content)
			}
			if err != nil {
				return err
			}

			if showDiff {
				diff := difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(data)),
					B:        difflib.SplitLines(string(result)),
					FromFile: path,
					ToFile:   path + " (patched)",
					Context:  3,
				}
				text, diffErr := difflib.GetUnifiedDiffString(diff)
				if diffErr != nil {
					return fmt.Errorf("rendering diff: %w", diffErr)
				}
				fmt.Print(text)
			}

			if write {
				if err := walk.WriteFile(path, result); err != nil {
					return err
				}
				if dsn := cfg.CacheDSN; dsn != "" {
					recordHistory(dsn, path, address, remove, data, result)
				}
				return nil
			}

			if !showDiff {
				fmt.Print(string(result))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "target language (inferred from the file extension if omitted)")
	cmd.Flags().StringVarP(&contentStr, "content", "c", "", "replacement or new element source")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read replacement content from stdin")
	cmd.Flags().BoolVar(&remove, "remove", false, "remove the addressed element instead of upserting")
	cmd.Flags().BoolVarP(&showDiff, "diff", "D", false, "print a unified diff instead of the full file")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "abort unless the element's current hash equals this value")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file atomically")

	return cmd
}

func recordHistory(dsn, path, address string, remove bool, before, after []byte) {
	db, err := store.Open(dsn)
	if err != nil {
		warnf("opening history store: %v", err)
		return
	}
	op := "upsert"
	if remove {
		op = "remove"
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)

	entry := store.HistoryEntry{
		FilePath:  path,
		XPath:     address,
		Operation: op,
		BaseHash:  digestHex(before),
		AfterHash: digestHex(after),
		Diff:      text,
	}
	if err := store.New(db).RecordHistory(entry); err != nil {
		warnf("recording history: %v", err)
	}
}

func digestHex(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
