package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/katalvlaran/lvsieve/sieve"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batchLine is one non-blank, non-comment input line.
type batchLine struct {
	num  int
	text string
}

func (a *app) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Evaluate one formula or point list per line, concurrently",
		Long: `Read sieves from a file (or stdin when the argument is "-" or missing),
one per line. A line containing '@' is a formula; any other line is a list
of integers to compress. Blank lines and lines starting with '#' are skipped.

Results are printed in input order. Lines that fail are reported and the
command exits non-zero after printing everything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			lines, err := readBatch(in)
			if err != nil {
				return err
			}

			reports, err := a.runBatch(cmd.Context(), lines)
			if err != nil {
				return err
			}

			return a.renderBatch(cmd, reports)
		},
	}
	cmd.Flags().IntVar(&a.concurrency, "concurrency", 0, "lines evaluated at once (default from config)")

	return cmd
}

// readBatch collects the meaningful lines of r.
func readBatch(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{num: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}

	return lines, nil
}

// runBatch evaluates lines with at most cfg.Concurrency in flight. Per-line
// failures land in the report; only cancellation aborts the batch.
func (a *app) runBatch(ctx context.Context, lines []batchLine) ([]report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]report, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)
	for i, ln := range lines {
		i, ln := i, ln
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = a.evalLine(ln)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// evalLine builds and queries one sieve over its canonical window
// (formulas) or the bounding range of its points (point lists).
func (a *app) evalLine(ln batchLine) report {
	fail := func(err error) report {
		a.log.Warn("batch line failed", "line", ln.num, "input", ln.text, "err", err)
		return report{Line: ln.num, Input: ln.text, Error: err.Error()}
	}

	var (
		s      *sieve.Sieve
		lo, hi int
		err    error
	)
	if strings.Contains(ln.text, "@") {
		if s, err = sieve.FromText(ln.text, a.sieveOptions()...); err != nil {
			return fail(err)
		}
		if !s.Materialized() {
			return fail(fmt.Errorf("period %d is too long to list", s.Period()))
		}
		lo, hi = 0, s.Period()
	} else {
		points, perr := parseInts([]string{ln.text})
		if perr != nil {
			return fail(perr)
		}
		if s, err = sieve.FromPoints(points, a.sieveOptions()...); err != nil {
			return fail(err)
		}
		lo, hi = slices.Min(points), slices.Max(points)
	}

	r := a.report(ln.text, s, lo, hi, 0)
	r.Line = ln.num

	return r
}

func (a *app) renderBatch(cmd *cobra.Command, reports []report) error {
	failed := 0
	for _, r := range reports {
		if r.Error != "" {
			failed++
		}
	}

	out := cmd.OutOrStdout()
	if a.cfg.Output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# line %d\n", r.Line)
			if err := writeText(out, r); err != nil {
				return err
			}
		}
	}
	a.log.Info("batch finished", "lines", len(reports), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, len(reports))
	}

	return nil
}
