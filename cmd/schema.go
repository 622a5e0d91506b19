package cmd

import (
	"fmt"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"

	"github.com/grovetools/enroll/pkg/schema"
)

// newSchemaCmd creates the `schema` command.
func newSchemaCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("schema", "Print the JSON schema of the enrollment file")
	cmd.Long = `Print the JSON schema describing the enrollment file.

The schema is generated from the record type, so it always matches what
the program reads and writes. Point an editor at it for completion and
validation, e.g.:

  enroll schema > enrollments.schema.json`
	cmd.Args = cobra.NoArgs

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		b, err := schema.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}

	return cmd
}
