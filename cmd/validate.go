package cmd

import (
	"fmt"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/enroll/pkg/config"
	"github.com/grovetools/enroll/pkg/schema"
)

func newValidateCmd(flags *config.Flags) *cobra.Command {
	cmd := cli.NewStandardCommand("validate [file]", "Check an enrollment file against the schema")
	cmd.Long = `Validate an enrollment file against the schema printed by 'enroll schema'.

Without an argument the configured data file is checked. Exits non-zero
when the file is missing or invalid.`
	cmd.Args = cobra.MaximumNArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, flags)
		if err != nil {
			return err
		}

		path := a.cfg.DataFile
		if len(args) == 1 {
			path = args[0]
		}

		if err := schema.ValidateFile(path); err != nil {
			a.logger.WithError(err).WithField("path", path).Debug("validation failed")
			fmt.Fprintln(cmd.OutOrStdout(), a.render(failStyle, theme.IconError+" "+path))
			return fmt.Errorf("%s is not a valid enrollment file: %w", path, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), a.render(successStyle, theme.IconSuccess+" "+path+" is valid"))
		return nil
	}

	return cmd
}
