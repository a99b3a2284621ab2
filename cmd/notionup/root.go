package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "notionup",
	Short: "Upload documents to Notion as pages",
	Long: `notionup converts markdown (and a few other document formats) into
Notion blocks and creates database pages, splitting content that exceeds
the per-page block limit across multiple pages.

Credentials come from the environment:
  NOTION_API_TOKEN    Notion integration token
  NOTION_DATABASE_ID  Target database (overridable with --database-id)`,
	SilenceUsage: true,
}
