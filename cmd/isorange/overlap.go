package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/netsec-ethz/isorange/internal/pkg/interval"
	"github.com/netsec-ethz/isorange/pkg/isorange"
)

func newOverlapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overlap A B",
		Short: "Report whether two intervals overlap",
		Long: `Print true if the intervals A and B share at least one instant and false
otherwise. A and B use the batch line syntax

    startDate[,endDate[,startTime[,endTime]]]

The last value of an interval is included as a whole, so 2024-07-07,2024-07-08
and 2024-07-08,2024-07-10 overlap.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ivs [2]isorange.Interval
			for i, arg := range args {
				req, err := isorange.ParseRequest(arg)
				if err != nil {
					return err
				}
				if ivs[i], err = isorange.Parse(req); err != nil {
					return errors.Wrapf(err, "interval %d", i+1)
				}
			}
			_, err := fmt.Fprintln(a.out, interval.Intersect(ivs[0], ivs[1]))
			return err
		},
	}
}
