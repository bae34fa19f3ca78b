package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/panchanga-api/internal/panchanga"
)

type computeOptions struct {
	date    string
	clock   string
	zone    string
	asJSON  bool
	verbose bool
}

func newComputeCmd() *cobra.Command {
	opts := computeOptions{}

	cmd := &cobra.Command{
		Use:     "compute",
		Short:   "Compute the panchanga for a moment",
		Example: "  panchanga compute --date 21/03/2024 --time 12:00 --zone +05:30\n  panchanga compute --date 01/01/2000 --json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			moment, err := panchanga.ParseMoment(opts.date, opts.clock, opts.zone)
			if err != nil {
				return err
			}

			detail, err := panchanga.Calculate(moment)
			if err != nil {
				return fmt.Errorf("compute %s: %w", moment, err)
			}

			if opts.asJSON {
				var v any = detail.Result
				if opts.verbose {
					v = detail
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}

			return writeDetail(cmd.OutOrStdout(), detail, opts.verbose)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "civil date as DD/MM/YYYY")
	cmd.Flags().StringVar(&opts.clock, "time", "12:00", "local time as HH:MM, 24-hour")
	cmd.Flags().StringVar(&opts.zone, "zone", "+00:00", "UTC offset as [+/-]HH:MM")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "include intermediate values")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func writeDetail(w io.Writer, d *panchanga.Detail, verbose bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "moment\t%s\n", d.Moment)
	fmt.Fprintf(tw, "tithi\t%s\n", d.Result.Tithi)
	fmt.Fprintf(tw, "paksha\t%s\n", d.Result.Paksha)
	fmt.Fprintf(tw, "nakshatra\t%s\n", d.Result.Nakshatra)
	fmt.Fprintf(tw, "yoga\t%s\n", d.Result.Yoga)
	fmt.Fprintf(tw, "karana\t%s\n", d.Result.Karana)
	fmt.Fprintf(tw, "rashi\t%s\n", d.Result.Rashi)

	if verbose {
		fmt.Fprintf(tw, "day number\t%d\n", d.DayNumber)
		fmt.Fprintf(tw, "days\t%.6f\n", d.Days)
		fmt.Fprintf(tw, "ayanamsa\t%.6f\n", d.Ayanamsa)
		fmt.Fprintf(tw, "sun longitude\t%.6f\n", d.SunLongitude)
		fmt.Fprintf(tw, "moon longitude\t%.6f\n", d.MoonLongitude)
		fmt.Fprintf(tw, "kepler iterations\t%d\n", d.KeplerIterations)
		fmt.Fprintf(tw, "indices\ttithi=%d nakshatra=%d yoga=%d karana=%d rashi=%d\n",
			d.Indices.Tithi, d.Indices.Nakshatra, d.Indices.Yoga, d.Indices.Karana, d.Indices.Rashi)
	}

	return tw.Flush()
}
