package cmd

import (
	"io"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/argv/foundation/core/error"
	"github.com/msto63/argv/foundation/core/errors"
)

var (
	classifyFlags classifierFlags
	outputFormat  string
	commandLine   string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] -- TOKENS...",
	Short: "Classify command line tokens",
	Long: `Classify the tokens that follow "--". With --line, a command line is
split shell-style first and its tokens are placed before the remaining
arguments.

Examples:
  argv classify -c output -- build --output bin/app -vj4
  argv classify -d "-/" -c o -- /o out.txt -x
  argv classify -o json --line "--tags=net,osusergo main.go"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassify(cmd.OutOrStdout(), args)
	},
}

func init() {
	classifyFlags.register(classifyCmd.Flags())
	classifyCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, tokens)")
	classifyCmd.Flags().StringVarP(&commandLine, "line", "l", "", "Command line to split into tokens")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(out io.Writer, args []string) error {
	format, err := parseOutput(outputFormat)
	if err != nil {
		return err
	}

	tokens, err := collectTokens(commandLine, args)
	if err != nil {
		return err
	}

	p, err := classifyFlags.profile()
	if err != nil {
		return err
	}
	classifier, err := p.Classifier()
	if err != nil {
		return err
	}
	classifier = classifier.WithLogger(logger)

	timer := logger.StartTimer("classify").WithField("tokens", len(tokens))
	c := classifier.Classify(tokens)
	timer.WithField("records", c.Len()).Stop()

	return writeContainer(out, c, classifier.Rules(), format)
}

func collectTokens(line string, args []string) ([]string, error) {
	if line == "" {
		return args, nil
	}
	split, err := shlex.Split(line)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot split command line").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cli.classify").
			WithDetail("line", line)
	}
	return append(split, args...), nil
}

func parseOutput(s string) (outputKind, error) {
	switch s {
	case "table", "":
		return outputTable, nil
	case "json":
		return outputJSON, nil
	case "tokens":
		return outputTokens, nil
	default:
		return outputTable, errors.InvalidInput(errors.ModuleCLI, "output", s, "table, json or tokens")
	}
}
