package main

import (
	"fmt"

	cbor "github.com/britram/borat"
	"github.com/spf13/cobra"

	"github.com/netsec-ethz/isorange/internal/pkg/config"
	"github.com/netsec-ethz/isorange/pkg/isorange"
)

func newFormatCmd(a *app) *cobra.Command {
	var startTime, endTime string
	cmd := &cobra.Command{
		Use:   "format START [END]",
		Short: "Format a single interval",
		Long: `Format the interval from START to END. START and END are a year, a year-month,
a full date or a full date and time, e.g. 2024, 2024-07, 2024-07-07 or
2024-07-07T12:00:00Z. END must have the same shape as START.

Times given with --start-time and --end-time are HH:MM or HH:MM:SS and are only
valid for full dates.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := isorange.Request{StartDate: args[0], StartTime: startTime, EndTime: endTime}
			if len(args) == 2 {
				req.EndDate = args[1]
			}
			iv, err := isorange.Parse(req)
			if err != nil {
				return err
			}
			return a.write(iv)
		},
	}
	cmd.Flags().StringVar(&startTime, "start-time", "", "start time, HH:MM[:SS]")
	cmd.Flags().StringVar(&endTime, "end-time", "", "end time, HH:MM[:SS], requires END and --start-time")
	return cmd
}

//write outputs iv in the configured encoding.
func (a *app) write(iv isorange.Interval) error {
	if a.conf.Output == config.OutputCBOR {
		return iv.MarshalCBOR(cbor.NewCBORWriter(a.out))
	}
	_, err := fmt.Fprintln(a.out, iv.Render(a.conf.Style()))
	return err
}
