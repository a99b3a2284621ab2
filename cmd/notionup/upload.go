package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/notionup/notionup/internal/config"
	"github.com/notionup/notionup/internal/notion"
	"github.com/notionup/notionup/internal/pipeline"
	"github.com/notionup/notionup/internal/source"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a document to Notion",
	Long: `Converts the document to Notion blocks and creates one page per chunk
of at most the per-page block quota. Documents that fit in one page get a
single page; larger ones are split into "Part N" pages at safe boundaries.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

var (
	uploadTitle      string
	uploadDatabaseID string
	uploadDryRun     bool
	uploadVerbose    bool
)

func init() {
	uploadCmd.Flags().StringVarP(&uploadTitle, "title", "t", "", "Page title (default: first heading, then file name)")
	uploadCmd.Flags().StringVar(&uploadDatabaseID, "database-id", "", "Override the target database ID")
	uploadCmd.Flags().BoolVar(&uploadDryRun, "dry-run", false, "Print the serialized chunks instead of uploading")
	uploadCmd.Flags().BoolVarP(&uploadVerbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := config.Load()
	if uploadDatabaseID != "" {
		cfg.NotionDatabaseID = uploadDatabaseID
	}
	if !uploadDryRun {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
	}

	level := slog.LevelWarn
	if uploadVerbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	text, err := source.Read(path)
	if err != nil {
		return err
	}

	title := uploadTitle
	if title == "" {
		title = source.DefaultTitle(text, path)
	}

	client := notion.NewClient(cfg.NotionBaseURL, cfg.NotionToken, cfg.NotionDatabaseID)
	defer client.Close()
	up := pipeline.NewUploader(client, log, cfg)

	var lines int
	progress := func(n int) { lines += n }
	doc, chunks := up.Convert(text, progress)
	log.Debug("parsed document", "lines", lines, "blocks", len(doc), "chunks", len(chunks))

	if uploadDryRun {
		out, err := json.MarshalIndent(map[string]any{
			"title":  title,
			"blocks": len(doc),
			"chunks": chunks,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("serialize blocks: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	results, err := up.UploadChunks(context.Background(), title, chunks, nil)
	for _, res := range results {
		cmd.Printf("Created %q (%d blocks)\n", res.Title, res.Blocks)
		cmd.Printf("  URL: %s\n", res.Page.URL)
	}
	if err != nil {
		if len(results) > 0 {
			cmd.Printf("Upload incomplete: %d of %d pages created\n", len(results), len(chunks))
		}
		return fmt.Errorf("upload %s: %w", path, err)
	}

	cmd.Printf("Done: %d page(s), %d blocks\n", len(results), len(doc))
	return nil
}
