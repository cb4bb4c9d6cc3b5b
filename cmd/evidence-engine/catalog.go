package main

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build and publish the programs/experts/institutions catalog",
	Long: `Catalog scrapes the configured directory sites, classifies entries into
programs, experts, and institutions, deduplicates them per kind, and
overwrites catalog.json. It runs independently of the news pipeline.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("sites", "", "YAML site map file (default: built-in site map)")
	catalogCmd.Flags().String("output", "output", "base output directory")
	catalogCmd.Flags().Duration("timeout", defaultTimeout, "per-page fetch timeout")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	sitesFile, _ := cmd.Flags().GetString("sites")
	outputDir, _ := cmd.Flags().GetString("output")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	client := &http.Client{Timeout: timeout}
	return buildAndPublishCatalog(context.Background(), client, sitesFile, outputDir, timeout)
}
