package cmd

import (
	"encoding/json"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"

	"github.com/grovetools/enroll/pkg/config"
	"github.com/grovetools/enroll/pkg/enrollment"
	"github.com/grovetools/enroll/pkg/store"
)

func newShowCmd(flags *config.Flags) *cobra.Command {
	cmd := cli.NewStandardCommand("show", "Show the saved enrollments")
	cmd.Long = `Load the enrollment file and list its records once, without
starting the interactive menu. With --json the records are printed as a
JSON array instead.`
	cmd.Args = cobra.NoArgs

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, flags)
		if err != nil {
			return err
		}

		c := a.console()
		p := store.NewFileProcessor(c, a.logger.WithField("component", "store"))
		records := p.LoadRecords(a.cfg.DataFile, nil)

		if a.opts.JSONOutput {
			if records == nil {
				records = []enrollment.Record{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		c.DisplayRecords(records)
		return nil
	}

	return cmd
}
