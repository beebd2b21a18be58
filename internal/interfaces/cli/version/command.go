package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"civicpulse/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			v := version.Current()
			if version.IsRelease(v) {
				fmt.Fprintf(cmd.OutOrStdout(), "civicpulse %s\n", v)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "civicpulse %s (development build)\n", v)
		},
	}
}
