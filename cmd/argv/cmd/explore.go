package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/argv/foundation/core/errors"
	mdwlog "github.com/msto63/argv/foundation/core/log"
	"github.com/msto63/argv/internal/tui/explorer"
)

var exploreFlags classifierFlags

var exploreCmd = &cobra.Command{
	Use:   "explore [flags] [-- TOKENS...]",
	Short: "Classify command lines interactively",
	Long: `Open a terminal UI that classifies the command line while you type.
Tokens given after "--" prefill the input.

Keys:
  enter     remember the line
  ↑/↓       browse remembered lines
  ctrl+n    toggle negative numbers
  ctrl+l    clear the line
  esc       quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := exploreFlags.profile()
		if err != nil {
			return err
		}

		logger.Info("starting explorer", mdwlog.Field("profile", p.Name))

		// no logger: the explorer owns the terminal
		if err := explorer.Run(explorer.Config{
			Profile: p,
			Line:    quoteLine(args),
		}); err != nil {
			return errors.OperationFailed(errors.ModuleCLI, "explore", err)
		}
		return nil
	},
}

func init() {
	exploreFlags.register(exploreCmd.Flags())
	rootCmd.AddCommand(exploreCmd)
}

func quoteLine(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

// shellQuote quotes a token so that shlex splits it back unchanged
func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\#") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
