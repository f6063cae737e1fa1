package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netgraph/pkg/buildinfo"
)

// infoCommand creates the info command that reports the build and platform.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print version and platform details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loggerFromContext(cmd.Context()).Debug("reporting build info")
			fmt.Println(StyleTitle.Render(appName))
			for _, kv := range buildDetails() {
				printKeyValue(kv[0], kv[1])
			}
			return nil
		},
	}
}

// buildDetails returns the labeled lines printed by the info command.
func buildDetails() [][2]string {
	return [][2]string{
		{"version", buildinfo.Version},
		{"commit", buildinfo.Commit},
		{"built", buildinfo.Date},
		{"platform", buildinfo.Platform()},
	}
}
