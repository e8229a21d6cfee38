package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codehem-go/codehem/internal/store"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <file>",
		Short: "List past patch operations applied to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			db, err := store.Open(cfg.CacheDSN)
			if err != nil {
				return fmt.Errorf("opening history store: %w", err)
			}

			entries, err := store.New(db).History(path)
			if err != nil {
				return fmt.Errorf("reading history for %s: %w", path, err)
			}
			if len(entries) == 0 {
				fmt.Printf("no recorded history for %s\n", path)
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %-6s  %-40s  %s -> %s\n", e.AppliedAt.Format("2006-01-02T15:04:05"), e.Operation, e.XPath, e.BaseHash[:12], e.AfterHash[:12])
			}
			return nil
		},
	}
}
