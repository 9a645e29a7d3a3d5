package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvsieve/sieve"
	"github.com/spf13/cobra"
)

func (a *app) newParseCmd() *cobra.Command {
	var w window
	cmd := &cobra.Command{
		Use:   "parse <formula>",
		Short: "Evaluate a formula such as 5@4|6@1|(3@2&13@7)",
		Long: `Evaluate a sieve formula and print its period, bits and segment.

Without --min/--max the canonical window [0, period] is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			s, err := sieve.FromText(text, a.sieveOptions()...)
			if err != nil {
				return err
			}
			if !s.Materialized() && !w.bounded(cmd) {
				return fmt.Errorf("period %d is too long to list: pass --min and --max", s.Period())
			}
			lo, hi, err := w.resolve(cmd, 0, s.Period())
			if err != nil {
				return err
			}
			a.log.Debug("parsed formula", "text", text, "period", s.Period())

			return a.render(cmd, a.report(text, s, lo, hi, w.shift))
		},
	}
	w.register(cmd)
	cmd.Flags().Bool("recompress", false, "replace the formula with its compressed form")

	return cmd
}

func (a *app) newCompressCmd() *cobra.Command {
	var w window
	cmd := &cobra.Command{
		Use:   "compress <int>...",
		Short: "Find a union of residue classes reproducing explicit points",
		Long: `Compress an explicit integer set into a formula. Points may be given as
separate arguments or comma separated; put "--" before a list that starts
with a negative point. The default query range is the bounding range of
the points.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parseInts(args)
			if err != nil {
				return err
			}
			s, err := sieve.FromPoints(points, a.sieveOptions()...)
			if err != nil {
				return err
			}
			lo, hi, err := w.resolve(cmd, slices.Min(points), slices.Max(points))
			if err != nil {
				return err
			}
			a.log.Debug("compressed points", "points", len(points), "text", s.String())

			return a.render(cmd, a.report(strings.Join(args, " "), s, lo, hi, w.shift))
		},
	}
	w.register(cmd)

	return cmd
}

func (a *app) newBinaryCmd() *cobra.Command {
	var w window
	cmd := &cobra.Command{
		Use:   "binary <bits>",
		Short: "Name the formula behind one binary period such as 001101001001011",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := parseBits(args)
			if err != nil {
				return err
			}
			s, err := sieve.FromBinary(bits, a.sieveOptions()...)
			if err != nil {
				return err
			}
			lo, hi, err := w.resolve(cmd, 0, s.Period())
			if err != nil {
				return err
			}

			return a.render(cmd, a.report(strings.Join(args, " "), s, lo, hi, w.shift))
		},
	}
	w.register(cmd)

	return cmd
}

// parseInts accepts "1,2,3", "1 2 3" or any mix of commas and whitespace.
func parseInts(args []string) ([]int, error) {
	var out []int
	for _, field := range splitFields(args) {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", field)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no points given")
	}

	return out, nil
}

// parseBits accepts separated 0/1 values or one packed string like "0110".
func parseBits(args []string) ([]int, error) {
	fields := splitFields(args)
	if len(fields) == 1 && len(fields[0]) > 1 {
		packed := fields[0]
		fields = make([]string, len(packed))
		for i := range packed {
			fields[i] = packed[i : i+1]
		}
	}

	return parseInts(fields)
}

func splitFields(args []string) []string {
	return strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
