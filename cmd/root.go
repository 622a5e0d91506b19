package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"

	"github.com/grovetools/enroll/pkg/config"
	"github.com/grovetools/enroll/pkg/registrar"
	"github.com/grovetools/enroll/pkg/store"
)

// Execute runs the root command
func Execute() error {
	return cli.Execute(newRootCmd())
}

func newRootCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("enroll", "Register students for courses")
	cmd.Long = `Interactive course registration.

Loads the enrollment list from a JSON file, then offers a menu to register
a student for a course, show the current list, save the list back to the
file, or exit. Nothing is written until "Save data to a file" is chosen.

Settings are read from enroll.yml, enroll.yaml or enroll.toml in the
working directory (or the file given with --config), and can be
overridden with flags. --verbose writes debug logs to stderr.`
	cmd.Args = cobra.NoArgs
	cmd.SilenceUsage = true

	flags := config.BindFlags(cmd.PersistentFlags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, flags)
		if err != nil {
			return err
		}
		return a.runRegistration()
	}

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) runRegistration() error {
	c := a.console()
	loop := registrar.New(registrar.Config{
		Terminal: c,
		Files:    store.NewFileProcessor(c, a.logger.WithField("component", "store")),
		FileName: a.cfg.DataFile,
		Out:      a.out,
		Logger:   a.logger.WithField("component", "registrar"),
	})
	loop.Run()
	return nil
}
