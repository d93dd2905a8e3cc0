package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/netsec-ethz/isorange/internal/pkg/config"
	"github.com/netsec-ethz/isorange/pkg/isorange"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Format one interval per input line",
		Long: `Read requests from FILE, or standard input if FILE is omitted or -, and write
one result per line. Each line has the form

    startDate[,endDate[,startTime[,endTime]]]

Empty lines and lines starting with # are skipped. Processing stops at the
first rejected request unless --continue is given, in which case the line's
result is "ERROR: <reason>" and the command fails once all lines are done.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.in
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "could not open batch file")
				}
				defer f.Close()
				in = f
			}
			return a.batch(in)
		},
	}
}

func (a *app) batch(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo, total, failed := 0, 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++
		err := a.formatLine(line)
		if err == nil {
			continue
		}
		if !a.conf.ContinueOnError {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		failed++
		log.Warn("Rejected request", "line", lineNo, "request", line, "error", err)
		if a.conf.Output == config.OutputText {
			if _, err := fmt.Fprintf(a.out, "ERROR: %v\n", err); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "could not read requests")
	}
	log.Info("Batch done", "requests", total, "rejected", failed)
	if failed > 0 {
		return errors.Errorf("%d of %d requests rejected", failed, total)
	}
	return nil
}

func (a *app) formatLine(line string) error {
	req, err := isorange.ParseRequest(line)
	if err != nil {
		return err
	}
	iv, err := isorange.Parse(req)
	if err != nil {
		return err
	}
	return a.write(iv)
}
