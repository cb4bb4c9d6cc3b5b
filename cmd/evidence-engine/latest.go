// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/universalbeat/evidence-engine/internal/archive"
	"github.com/universalbeat/evidence-engine/internal/facet"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the most recent archived items",
	Long: `Latest reads the archive and prints the bounded most-recent view, the
same ordering the default landing page shows: date descending, canonical
link ascending on ties.`,
	RunE: runLatest,
}

func init() {
	latestCmd.Flags().String("output", "output", "base output directory (locates the archive)")
	latestCmd.Flags().Int("limit", 25, "number of items to show")
	latestCmd.Flags().Bool("json", false, "output items as JSON")

	rootCmd.AddCommand(latestCmd)
}

func runLatest(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := archive.NewStore(types.ArchiveConfig{OutputDir: outputDir, LatestLimit: limit})
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Latest(context.Background(), limit)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for i := range items {
		facet.Apply(&items[i], now)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("No items archived yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-60s  %-20s  %-19s  %s\n",
		"Rank", "Title", "Source", "Date", "New")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 112))

	for i, it := range items {
		title := it.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		source := it.Source
		if len(source) > 20 {
			source = source[:17] + "..."
		}
		flag := ""
		if it.IsNew {
			flag = "new"
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-60s  %-20s  %-19s  %s\n",
			i+1, title, source, it.Date, flag)
	}

	fmt.Fprintf(os.Stdout, "\n%d items\n", len(items))
	return nil
}
