// Command summarize prints an extractive summary of a file, stdin or a web page.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wgomg/synopsis/internal/config"
	"github.com/wgomg/synopsis/internal/fetcher"
	"github.com/wgomg/synopsis/internal/nlp"
	"github.com/wgomg/synopsis/internal/processor"
	"github.com/wgomg/synopsis/internal/utils"
)

type options struct {
	url            string
	ratio          float64
	requireContent bool
	jsonOutput     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize text by picking its highest scoring sentences",
		Long: `Summarize reads text from a file, from standard input when no file is
given, or from a web page with --url, and prints the sentences that carry
the most frequent content words. Earlier sentences are favored.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "fetch and summarize a web page")
	cmd.Flags().Float64Var(&opts.ratio, "ratio", 0, "fraction of sentences to keep (default from config, 0.3)")
	cmd.Flags().BoolVar(&opts.requireContent, "require-content", false, "fail when the input has no sentences")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.ratio > 0 {
		cfg.Summarizer.Ratio = opts.ratio
	}
	if opts.requireContent {
		cfg.Summarizer.RequireContent = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := utils.NewLogger("error", false)

	text, err := readInput(cmd, args, opts, cfg, logger)
	if err != nil {
		return err
	}

	model, err := nlp.NewModel(nlp.Options{
		ExtraStopwords: cfg.Summarizer.ExtraStopwords,
		StopwordsFile:  cfg.Summarizer.StopwordsFile,
	})
	if err != nil {
		return err
	}

	summarizer := processor.NewSummarizer(model, processor.Options{
		Ratio:          cfg.Summarizer.Ratio,
		MinSentences:   cfg.Summarizer.MinSentences,
		RequireContent: cfg.Summarizer.RequireContent,
	})

	result, err := summarizer.Summarize(text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(out, result.Summary)
	fmt.Fprintf(out, "\nWords: %d -> %d (%d of %d sentences)\n",
		result.OriginalWordCount, result.SummaryWordCount, result.SelectedCount, result.SentenceCount)
	return nil
}

func readInput(cmd *cobra.Command, args []string, opts *options, cfg *config.Config, logger *utils.Logger) (string, error) {
	if opts.url != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("use either a file or --url, not both")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Fetcher.TimeoutSeconds)*time.Second)
		defer cancel()

		article, err := fetcher.NewClient(cfg, logger).FetchArticle(ctx, opts.url, "")
		if err != nil {
			return "", err
		}
		return article.Text, nil
	}

	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "summarize:", err)
		os.Exit(1)
	}
}
