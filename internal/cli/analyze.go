package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sanonone/readlens/pkg/loader"
	"github.com/spf13/cobra"
)

const stdinPath = "-"

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		keywords []string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Analyze the readability and keywords of one document",
		Long: `Analyze loads a document (txt, md, pdf, docx; "-" or no argument reads stdin),
scores its readability and ranks its keywords.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (use text or json)", format)
			}

			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := loadDocument(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			a.logger.Debug("Document loaded", "path", doc.Path, "chars", len(doc.Text), "pages", doc.Pages)

			report, err := analyzeDocument(doc, splitKeywords(keywords))
			if err != nil {
				return err
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			writeText(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "target keywords, comma-separated or repeated")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}

// loadDocument reads path with the extension-based loader, or stdin for "-".
func loadDocument(stdin io.Reader, path string) (*loader.Document, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return &loader.Document{Path: stdinPath, Text: string(data)}, nil
	}

	doc, err := loader.NewAutoLoader().Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}
