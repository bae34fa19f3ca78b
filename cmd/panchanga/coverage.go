package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/panchanga-api/internal/panchanga"
)

// CoverageReport tallies how often each table index was selected across a
// date range.
type CoverageReport struct {
	TotalDays int
	Failures  []string
	Counts    map[panchanga.Element][]int // element -> days per table index
	Shukla    int
	Krishna   int
}

// ElementCoverage summarizes one table of a CoverageReport.
type ElementCoverage struct {
	Element     panchanga.Element
	Reached     int
	Reachable   int
	Missed      []int // reachable indices never selected
	Unreachable []int // indices no angle can select
}

type coverageOptions struct {
	startYear int
	years     int
	clock     string
	zone      string
	verbose   bool
}

func newCoverageCmd() *cobra.Command {
	opts := coverageOptions{}

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Check that every reachable table entry is selected over a range of years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.years < 1 || opts.years > 500 {
				return fmt.Errorf("--years must be between 1 and 500")
			}
			hour, err := panchanga.ParseClock(opts.clock)
			if err != nil {
				return err
			}
			offset, err := panchanga.ParseZone(opts.zone)
			if err != nil {
				return err
			}

			report := runCoverage(opts.startYear, opts.startYear+opts.years-1, hour, offset)
			missed := printCoverage(cmd.OutOrStdout(), report, opts.verbose)

			if len(report.Failures) > 0 || missed > 0 {
				return fmt.Errorf("coverage incomplete: %d failure(s), %d missed entries", len(report.Failures), missed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.startYear, "start", 2024, "first year")
	cmd.Flags().IntVar(&opts.years, "years", 4, "number of years")
	cmd.Flags().StringVar(&opts.clock, "time", "12:00", "local time as HH:MM, 24-hour")
	cmd.Flags().StringVar(&opts.zone, "zone", "+00:00", "UTC offset as [+/-]HH:MM")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print per-entry counts")

	return cmd
}

func newCoverageReport() CoverageReport {
	report := CoverageReport{Counts: make(map[panchanga.Element][]int)}
	for _, e := range panchanga.Elements() {
		report.Counts[e] = make([]int, e.Size())
	}
	return report
}

func runCoverage(startYear, endYear int, hour, offset float64) CoverageReport {
	report := newCoverageReport()

	current := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	for !current.After(end) {
		report.TotalDays++

		m := panchanga.NewMoment(current.Day(), int(current.Month()), current.Year(), hour, offset)
		detail, err := panchanga.Calculate(m)
		if err != nil {
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", m, err))
		} else {
			report.add(detail)
		}

		current = current.AddDate(0, 0, 1)
	}

	return report
}

func (r *CoverageReport) add(d *panchanga.Detail) {
	for _, e := range panchanga.Elements() {
		r.Counts[e][d.Indices.Of(e)]++
	}
	if d.Result.Paksha == panchanga.PakshaShukla {
		r.Shukla++
	} else {
		r.Krishna++
	}
}

// summarize splits each table's indices into reached, missed, and
// unreachable.
func (r CoverageReport) summarize() []ElementCoverage {
	out := make([]ElementCoverage, 0, len(r.Counts))
	for _, e := range panchanga.Elements() {
		c := ElementCoverage{Element: e}
		for i, ok := range e.Reachable() {
			switch {
			case !ok:
				c.Unreachable = append(c.Unreachable, i)
			case r.Counts[e][i] == 0:
				c.Reachable++
				c.Missed = append(c.Missed, i)
			default:
				c.Reachable++
				c.Reached++
			}
		}
		out = append(out, c)
	}
	return out
}

// printCoverage writes the report and returns how many reachable entries
// were never selected.
func printCoverage(w io.Writer, report CoverageReport, verbose bool) int {
	fmt.Fprintf(w, "Days checked: %d\n", report.TotalDays)
	fmt.Fprintf(w, "Failures:     %d\n", len(report.Failures))
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  ✗ %s\n", f)
	}
	fmt.Fprintf(w, "Paksha:       %d Shukla, %d Krishna\n", report.Shukla, report.Krishna)
	fmt.Fprintln(w)

	missed := 0
	for _, c := range report.summarize() {
		missed += len(c.Missed)

		status := "✓"
		if len(c.Missed) > 0 {
			status = "✗"
		}
		fmt.Fprintf(w, "%s %-10s %d/%d reached\n", status, c.Element, c.Reached, c.Reachable)
		for _, i := range c.Missed {
			fmt.Fprintf(w, "    missing: %d %s\n", i, entryName(c.Element, i))
		}
		for _, i := range c.Unreachable {
			fmt.Fprintf(w, "    unreachable: %d %s\n", i, entryName(c.Element, i))
		}

		if verbose {
			for i, n := range report.Counts[c.Element] {
				fmt.Fprintf(w, "    %2d %-14s %d\n", i, entryName(c.Element, i), n)
			}
		}
	}

	return missed
}

func entryName(e panchanga.Element, idx int) string {
	name, err := e.Name(idx)
	if err != nil {
		return "?"
	}
	return name
}
