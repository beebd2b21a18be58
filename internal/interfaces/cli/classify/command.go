package classify

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"civicpulse/internal/infrastructure/routing"
)

var (
	rulesFile string
	fallback  string
)

// NewCommand classifies text offline with the same rule table the server
// loads, which makes it handy for checking a rules file before deploying it.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Print the department a complaint description routes to",
		Args:  cobra.MinimumNArgs(1),
		RunE:  run,
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "Routing rules YAML file (default: built-in rules)")
	cmd.Flags().StringVar(&fallback, "fallback", "Others", "Department used when no keyword matches")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	classifier, err := routing.LoadFile(rulesFile, fallback)
	if err != nil {
		return fmt.Errorf("failed to load routing rules: %w", err)
	}

	department := classifier.Classify(strings.Join(args, " "))
	fmt.Fprintln(cmd.OutOrStdout(), department)
	return nil
}
