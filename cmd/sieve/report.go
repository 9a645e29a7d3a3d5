package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsieve/sieve"
	"github.com/spf13/cobra"
)

// report is the printable summary of one evaluated sieve.
type report struct {
	Line       int       `json:"line,omitempty"`
	Input      string    `json:"input"`
	Source     string    `json:"source,omitempty"`
	Text       string    `json:"text,omitempty"`
	Compressed string    `json:"compressed,omitempty"`
	Period     int       `json:"period,omitempty"`
	Bits       string    `json:"bits,omitempty"`
	Min        int       `json:"min"`
	Max        int       `json:"max"`
	Segment    []int     `json:"segment"`
	Intervals  []int     `json:"intervals"`
	Unit       []float64 `json:"unit_segment"`
	Error      string    `json:"error,omitempty"`
}

// report evaluates every query for s over [lo, hi].
func (a *app) report(input string, s *sieve.Sieve, lo, hi, shift int) report {
	r := report{
		Input:     input,
		Source:    s.Source().String(),
		Text:      s.String(),
		Period:    s.Period(),
		Bits:      s.Pattern().String(),
		Min:       lo,
		Max:       hi,
		Segment:   s.SegmentShift(lo, hi, shift),
		Intervals: s.Intervals(lo, hi),
		Unit:      s.UnitSegment(lo, hi),
	}
	if r.Segment == nil {
		r.Segment = []int{}
	}
	if compressed, err := s.Compressed(); err != nil {
		a.log.Info("canonical segment not compressible", "text", s.String(), "err", err)
	} else {
		r.Compressed = compressed
	}

	return r
}

// render writes one report in the configured format.
func (a *app) render(cmd *cobra.Command, r report) error {
	out := cmd.OutOrStdout()
	if a.cfg.Output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	return writeText(out, r)
}

func writeText(w io.Writer, r report) error {
	var sb strings.Builder
	if r.Error != "" {
		fmt.Fprintf(&sb, "input:      %s\nerror:      %s\n", r.Input, r.Error)
		_, err := io.WriteString(w, sb.String())
		return err
	}
	fmt.Fprintf(&sb, "text:       %s\n", r.Text)
	if r.Compressed != "" && r.Compressed != r.Text {
		fmt.Fprintf(&sb, "compressed: %s\n", r.Compressed)
	}
	fmt.Fprintf(&sb, "source:     %s\n", r.Source)
	fmt.Fprintf(&sb, "period:     %d\n", r.Period)
	if len(r.Bits) <= 64 {
		fmt.Fprintf(&sb, "bits:       %s\n", r.Bits)
	}
	fmt.Fprintf(&sb, "range:      [%d, %d]\n", r.Min, r.Max)
	fmt.Fprintf(&sb, "segment:    %v\n", r.Segment)
	fmt.Fprintf(&sb, "intervals:  %v\n", r.Intervals)
	unit := make([]string, len(r.Unit))
	for i, u := range r.Unit {
		unit[i] = strconv.FormatFloat(u, 'g', 4, 64)
	}
	fmt.Fprintf(&sb, "unit:       [%s]\n", strings.Join(unit, " "))
	_, err := io.WriteString(w, sb.String())

	return err
}
