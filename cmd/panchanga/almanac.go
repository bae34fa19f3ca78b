package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/panchanga-api/internal/panchanga"
)

// maxAlmanacDays bounds a single almanac run.
const maxAlmanacDays = 3660

// AlmanacDay is one row of an almanac.
type AlmanacDay struct {
	Date string `json:"date"`
	panchanga.Result
}

type almanacOptions struct {
	from   string
	days   int
	clock  string
	zone   string
	asJSON bool
}

func newAlmanacCmd() *cobra.Command {
	opts := almanacOptions{}

	cmd := &cobra.Command{
		Use:     "almanac",
		Short:   "Print the panchanga for consecutive days",
		Example: "  panchanga almanac --from 01/04/2024 --days 30 --time 06:00 --zone +05:30",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.days < 1 || opts.days > maxAlmanacDays {
				return fmt.Errorf("--days must be between 1 and %d", maxAlmanacDays)
			}

			rows, err := buildAlmanac(opts)
			if err != nil {
				return err
			}

			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			return writeAlmanac(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "first civil date as DD/MM/YYYY")
	cmd.Flags().IntVar(&opts.days, "days", 7, "number of days")
	cmd.Flags().StringVar(&opts.clock, "time", "06:00", "local time as HH:MM, 24-hour")
	cmd.Flags().StringVar(&opts.zone, "zone", "+00:00", "UTC offset as [+/-]HH:MM")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func buildAlmanac(opts almanacOptions) ([]AlmanacDay, error) {
	day, month, year, err := panchanga.ParseDate(opts.from)
	if err != nil {
		return nil, err
	}
	hour, err := panchanga.ParseClock(opts.clock)
	if err != nil {
		return nil, err
	}
	offset, err := panchanga.ParseZone(opts.zone)
	if err != nil {
		return nil, err
	}

	// time.Date normalizes, so 31/02 becomes 02/03 (or 03/03) here.
	current := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	rows := make([]AlmanacDay, 0, opts.days)
	for i := 0; i < opts.days; i++ {
		m := panchanga.NewMoment(current.Day(), int(current.Month()), current.Year(), hour, offset)
		res, err := panchanga.Compute(m)
		if err != nil {
			return nil, fmt.Errorf("compute %s: %w", m, err)
		}
		rows = append(rows, AlmanacDay{Date: current.Format("02/01/2006"), Result: res})
		current = current.AddDate(0, 0, 1)
	}
	return rows, nil
}

func writeAlmanac(w io.Writer, rows []AlmanacDay) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTITHI\tPAKSHA\tNAKSHATRA\tYOGA\tKARANA\tRASHI")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Date, r.Tithi, r.Paksha, r.Nakshatra, r.Yoga, r.Karana, r.Rashi)
	}
	return tw.Flush()
}
