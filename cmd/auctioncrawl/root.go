package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for auctioncrawl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auctioncrawl",
		Short: "Collect product links from every auction category",
		Long: `auctioncrawl collects product links grouped by category from an auction marketplace.

It fetches the category list page, extracts every category with a numeric ID,
then fetches all category listing pages concurrently. A category whose page
cannot be fetched is kept in the result without product data; the other
categories are unaffected.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
