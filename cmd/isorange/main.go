package main

import (
	"io"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/netsec-ethz/isorange/internal/pkg/config"
)

//main runs the isorange command and exits with a non-zero status if it fails.
func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

//app holds the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	flags      config.Config
	conf       config.Config
	in         io.Reader
	out        io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{flags: config.Default(), in: in, out: out}
	root := &cobra.Command{
		Use:   "isorange",
		Short: "Format dates and times as compact ISO 8601 intervals",
		Long: `isorange writes a start date, an optional end date and optional start and end
times as a single ISO 8601 interval. Components shared by start and end are
written once:

    $ isorange format 2024-07-07 2024-07-08
    2024-07-07/08
    $ isorange format --slashes --roman 2024-07-07 2024-07-08
    2024/vii/07-08
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, errOut)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	pflags := root.PersistentFlags()
	pflags.StringVarP(&a.configPath, "config", "c", "", "path to a JSON config file, flags take precedence over its values")
	config.AddFlags(pflags, &a.flags)

	root.AddCommand(newFormatCmd(a), newBatchCmd(a), newOverlapCmd(a))
	return root
}

//setup loads the config file, applies the command line flags on top of it and installs the log
//handler.
func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	a.conf = config.Default()
	if a.configPath != "" {
		conf, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.conf = conf
	}
	a.conf.Override(cmd.Flags(), a.flags)
	if err := a.conf.Validate(); err != nil {
		return err
	}
	lvl, _ := a.conf.Level()
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(errOut, log.LogfmtFormat())))
	log.Debug("Configuration loaded", "config", a.configPath, "style", a.conf.Style(), "output", a.conf.Output)
	return nil
}
