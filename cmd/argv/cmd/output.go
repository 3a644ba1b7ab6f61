package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	mdwargs "github.com/msto63/argv/foundation/args"
	"github.com/msto63/argv/foundation/core/errors"
	mdwstringx "github.com/msto63/argv/foundation/utils/stringx"
	"github.com/msto63/argv/internal/tui"
)

type outputKind int

const (
	outputTable outputKind = iota
	outputJSON
	outputTokens
)

func writeContainer(w io.Writer, c *mdwargs.Container, rules mdwargs.PrefixRules, kind outputKind) error {
	var err error
	switch kind {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(c)
	case outputTokens:
		tokens := c.Tokens(rules)
		for i, t := range tokens {
			tokens[i] = mdwstringx.QuoteIfNeeded(t)
		}
		_, err = fmt.Fprintln(w, strings.Join(tokens, " "))
	default:
		_, err = fmt.Fprintf(w, "%s\n%s\n", tui.RecordTable(c), tui.SubtitleStyle.Render(tui.Summary(c)))
	}
	if err != nil {
		return errors.OperationFailed(errors.ModuleCLI, "write_output", err)
	}
	return nil
}
