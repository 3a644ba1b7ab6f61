// File: render.go
// Title: Token Reconstruction
// Description: Renders a Container back into tokens. Options and flags are
//              re-prefixed, captured values re-joined with '=' and
//              consecutive flags joined into chains.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation
// - 2025-03-02 v0.1.1: Flags rendered as chains

package args

import (
	"strings"

	mdwstringx "github.com/msto63/argv/foundation/utils/stringx"
)

// Tokens renders the records as tokens using the primary delimiter of rules.
// Consecutive flags are joined into one chain token, a capturing flag closes
// its chain as "-abc=value". Classifying the result with the same rules and
// captures yields an equal container, unless the original relied on a
// degraded capture or a flag value or flag character '='.
func (c *Container) Tokens(rules PrefixRules) []string {
	delimiter := rules.Primary()
	tokens := make([]string, 0, len(c.args))

	var chain []rune
	flush := func() {
		if len(chain) > 0 {
			tokens = append(tokens, string(delimiter)+string(chain))
			chain = nil
		}
	}

	for _, a := range c.args {
		f, ok := a.(Flag)
		if !ok {
			flush()
			tokens = append(tokens, tokenOf(a, delimiter))
			continue
		}

		if len(chain) > 0 && !chainReclassifies(rules, append(chain[:len(chain):len(chain)], f.Char)) {
			flush()
		}
		chain = append(chain, f.Char)

		if f.HasValue {
			tokens = append(tokens, string(delimiter)+string(chain)+"="+f.Value)
			chain = nil
		}
	}
	flush()
	return tokens
}

// chainReclassifies reports whether the chain token classifies back into
// exactly these non-capturing flags
func chainReclassifies(rules PrefixRules, chain []rune) bool {
	got := NewClassifier(rules, nil).Classify([]string{string(rules.Primary()) + string(chain)})
	if got.Len() != len(chain) {
		return false
	}
	for i, r := range chain {
		if f, ok := got.At(i).(Flag); !ok || f.Char != r || f.HasValue {
			return false
		}
	}
	return true
}

// String renders the records as a shell-like command line with the default
// delimiter
func (c *Container) String() string {
	tokens := c.Tokens(DefaultPrefixRules())
	for i, t := range tokens {
		tokens[i] = mdwstringx.QuoteIfNeeded(t)
	}
	return strings.Join(tokens, " ")
}
