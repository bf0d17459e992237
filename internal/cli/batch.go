package cli

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sanonone/readlens/pkg/loader"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		includes []string
		excludes []string
		keywords []string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Analyze every document under a directory as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			files, err := collectDocuments(root, includes, excludes)
			if err != nil {
				return fmt.Errorf("failed to scan %s: %w", root, err)
			}
			a.logger.Info("Batch scan complete", "dir", root, "documents", len(files))

			var bar *progressbar.ProgressBar
			if !quiet {
				bar = progressbar.NewOptions(len(files),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionEnableColorCodes(true),
					progressbar.OptionShowBytes(false),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionSetDescription("[cyan]Analyzing[reset]"),
					progressbar.OptionOnCompletion(func() {
						fmt.Fprintln(cmd.ErrOrStderr())
					}),
				)
			}

			targets := splitKeywords(keywords)
			enc := json.NewEncoder(cmd.OutOrStdout())
			auto := loader.NewAutoLoader()
			failed := 0

			for _, path := range files {
				report := analyzePath(auto, path, targets)
				if report.Error != "" {
					failed++
					a.logger.Warn("Document failed", "path", path, "error", report.Error)
				}
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				if bar != nil {
					_ = bar.Add(1)
				}
			}

			a.logger.Info("Batch finished", "documents", len(files), "failed", failed)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&includes, "include", "i", nil, `glob of files to analyze, relative to dir (default "**/*")`)
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "e", nil, "glob of files or directories to skip")
	cmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "target keywords, comma-separated or repeated")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")
	return cmd
}

// analyzePath loads and analyzes one file. Failures are carried on the
// report so one bad document does not stop the batch.
func analyzePath(l loader.Loader, path string, targets []string) documentReport {
	doc, err := l.Load(path)
	if err != nil {
		return documentReport{Path: path, Error: err.Error()}
	}
	report, err := analyzeDocument(doc, targets)
	if err != nil {
		report.Error = err.Error()
	}
	return report
}

// collectDocuments walks root and returns the supported files matching an
// include glob and no exclude glob, in lexical order. Globs match paths
// relative to root using forward slashes; a directory matching an exclude
// glob (with a trailing slash) is skipped entirely.
func collectDocuments(root string, includes, excludes []string) ([]string, error) {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && (matchAny(excludes, rel) || matchAny(excludes, rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if loader.Supported(path) && matchAny(includes, rel) && !matchAny(excludes, rel) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
