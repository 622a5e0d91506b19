package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/grovetools/enroll/cmd.Version=v1.2.3".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("version", "Print the version")
	cmd.Args = cobra.NoArgs

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		if opts.JSONOutput {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(struct {
				Version   string `json:"version"`
				GoVersion string `json:"go_version"`
			}{versionString(Version), runtime.Version()})
		}

		styled := isTerminal(cmd.OutOrStdout())
		render := func(style func(...string) string, s string) string {
			if !styled {
				return s
			}
			return style(s)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "enroll %s %s\n",
			render(versionStyle.Render, versionString(Version)),
			render(faintStyle.Render, "("+runtime.Version()+")"))
		return nil
	}

	return cmd
}

// versionString normalizes a semver build version to "vX.Y.Z" and falls back
// to "dev" for anything else.
func versionString(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return "dev"
	}
	return "v" + parsed.String()
}
