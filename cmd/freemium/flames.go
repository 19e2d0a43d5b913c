package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/cli"
	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/flames"
	"github.com/Veraticus/freemium-tools/internal/share"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// errMalformedPair is reported for batch lines that do not hold two names.
var errMalformedPair = errors.New("expected two names separated by a tab or comma")

type flamesResult struct {
	Outcome *flames.Outcome `json:"outcome,omitempty"`
	Name1   string          `json:"name1"`
	Name2   string          `json:"name2"`
	Share   string          `json:"share,omitempty"`
	Error   string          `json:"error,omitempty"`
	Line    int             `json:"line,omitempty"`
}

func flamesCmd() *cobra.Command {
	var (
		showSteps bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "flames <name1> <name2>",
		Short: "Find the FLAMES relationship between two names",
		Long: `Strike out the letters two names share, count what is left and map the
count onto Friends, Love, Affection, Marriage, Enemies or Siblings.

Only the letters a-z count; case, spaces and punctuation are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			outcome, err := flames.Compute(args[0], args[1])
			if err != nil {
				return common.NewUserError(err.Error(), err)
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return json.NewEncoder(out).Encode(flamesResult{
					Name1:   args[0],
					Name2:   args[1],
					Outcome: &outcome,
					Share:   share.Text(args[0], args[1], outcome),
				})
			}

			_, err = fmt.Fprintln(out, cli.RenderOutcome(args[0], args[1], outcome, showSteps))
			return err
		},
	}

	cmd.Flags().BoolVar(&showSteps, "steps", false, "Show how the result was calculated")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")

	cmd.AddCommand(flamesBatchCmd())

	return cmd
}

func flamesBatchCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Score many name pairs at once",
		Long: `Read one name pair per line, separated by a tab or a comma, and print a
result per pair. Use "-" to read from standard input. Blank lines and lines
starting with # are skipped. Invalid pairs are reported and do not stop
the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open batch file: %w", err)
				}
				defer f.Close()
				in = f
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Batch")
			ctx := handler.HandleInterrupts(cmd.Context())
			defer handler.Stop()

			summary, err := runBatch(ctx, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
			if err != nil && !handler.WasInterrupted() {
				return err
			}

			msg := fmt.Sprintf("Scored %d of %d pairs", summary.scored, summary.total)
			if summary.failed > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(fmt.Sprintf("%s, %d invalid", msg, summary.failed)))
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(msg))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")

	return cmd
}

type batchSummary struct {
	total  int
	scored int
	failed int
}

type batchLine struct {
	text   string
	number int
}

// runBatch scores every pair in in. Results go to out; the progress bar
// goes to progress.
func runBatch(ctx context.Context, in io.Reader, out, progress io.Writer, format string) (batchSummary, error) {
	lines, err := readBatch(ctx, in)
	if err != nil {
		return batchSummary{}, err
	}

	summary := batchSummary{total: len(lines)}
	bar := newBatchBar(progress, len(lines))
	enc := json.NewEncoder(out)

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := scoreLine(line)
		if result.Outcome == nil {
			summary.failed++
		} else {
			summary.scored++
		}

		if format == formatJSON {
			err = enc.Encode(result)
		} else {
			_, err = fmt.Fprintln(out, formatBatchResult(result))
		}
		if err != nil {
			return summary, fmt.Errorf("failed to write result: %w", err)
		}

		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}

	return summary, nil
}

func readBatch(ctx context.Context, in io.Reader) ([]batchLine, error) {
	reader := cli.NewNonBlockingReader(in)
	var lines []batchLine

	for n := 1; ; n++ {
		text, err := reader.ReadLine(ctx)
		if text != "" && !strings.HasPrefix(text, "#") {
			lines = append(lines, batchLine{number: n, text: text})
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read batch input: %w", err)
		}
	}
}

func scoreLine(line batchLine) flamesResult {
	result := flamesResult{Line: line.number}

	name1, name2, err := splitPair(line.text)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Name1, result.Name2 = name1, name2

	outcome, err := flames.Compute(name1, name2)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Outcome = &outcome
	return result
}

// splitPair splits on the first tab, or on the first comma when the line
// has no tab.
func splitPair(line string) (string, string, error) {
	sep := "\t"
	if !strings.Contains(line, sep) {
		sep = ","
	}
	name1, name2, ok := strings.Cut(line, sep)
	if !ok {
		return "", "", errMalformedPair
	}
	return strings.TrimSpace(name1), strings.TrimSpace(name2), nil
}

func formatBatchResult(r flamesResult) string {
	if r.Outcome == nil {
		return fmt.Sprintf("%d\t%s", r.Line, cli.FormatError(r.Error))
	}
	return fmt.Sprintf("%d\t%s\t%s\t%s %s", r.Line, r.Name1, r.Name2, r.Outcome.Icon, r.Outcome.Category)
}

func newBatchBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Scoring pairs...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q (use text or json)", common.ErrInvalidConfig, format)
	}
}
