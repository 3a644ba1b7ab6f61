// File: classifier.go
// Title: Argument Classifier
// Description: Turns an ordered token list into Parameters, Options and
//              Flags. Handles prefix depth, '=' value capture, flag chain
//              expansion and negative-number disambiguation with one token
//              of lookahead. Malformed input degrades to Parameters; there
//              is no error path.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package args

import (
	"strings"
	"unicode/utf8"

	mdwlog "github.com/msto63/argv/foundation/core/log"
	mdwmathx "github.com/msto63/argv/foundation/utils/mathx"
)

// Classifier classifies token lists with fixed rules and captures. It holds
// no per-run state and is safe for concurrent use.
type Classifier struct {
	rules    PrefixRules
	captures *CaptureList
	logger   *mdwlog.Logger
}

// NewClassifier creates a classifier. A nil capture list captures nothing.
func NewClassifier(rules PrefixRules, captures *CaptureList) *Classifier {
	return &Classifier{
		rules:    rules,
		captures: captures,
	}
}

// WithLogger returns a copy that traces every classification decision
func (c *Classifier) WithLogger(logger *mdwlog.Logger) *Classifier {
	clone := *c
	if logger != nil {
		logger = logger.WithField("component", "args-classifier")
	}
	clone.logger = logger
	return &clone
}

// Rules returns the prefix rules in use
func (c *Classifier) Rules() PrefixRules {
	return c.rules
}

// Captures returns the capture list in use
func (c *Classifier) Captures() *CaptureList {
	return c.captures
}

// Classify classifies tokens with the default prefix rules
func Classify(tokens []string, captures *CaptureList) *Container {
	return NewClassifier(DefaultPrefixRules(), captures).Classify(tokens)
}

// ClassifyWithRules classifies tokens with the given prefix rules
func ClassifyWithRules(tokens []string, captures *CaptureList, rules PrefixRules) *Container {
	return NewClassifier(rules, captures).Classify(tokens)
}

// Classify classifies tokens. Empty tokens are dropped first. The input
// slice is not modified.
func (c *Classifier) Classify(tokens []string) *Container {
	input := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			input = append(input, t)
		}
	}

	r := &run{Classifier: c, tokens: input, out: newContainer(len(input))}
	for i := 0; i < len(input); {
		i += r.step(i)
	}
	return r.out
}

// run is the state of one Classify call
type run struct {
	*Classifier
	tokens []string
	out    *Container
}

// step classifies tokens[i] and returns how many tokens it consumed
func (r *run) step(i int) int {
	token := r.tokens[i]
	depth, rest := r.rules.split(token)

	switch depth {
	case 0:
		r.emit(i, "parameter", Parameter{Text: token})
		return 1
	case 1:
		return r.flagChain(i, token, rest)
	default:
		return r.option(i, rest)
	}
}

func (r *run) option(i int, rest string) int {
	if name, inline, ok := strings.Cut(rest, "="); ok {
		if r.captures.IsPresent(name) {
			r.emit(i, "option with inline value", Option{Name: name, Value: inline, HasValue: true})
			return 1
		}
		r.emit(i, "option, inline value not capturable", Option{Name: name})
		r.degrade(i, inline)
		return 1
	}

	if r.captures.IsPresent(rest) && r.canCaptureNext(i) {
		r.emit(i, "option capturing next token", Option{Name: rest, Value: r.tokens[i+1], HasValue: true})
		return 2
	}

	r.emit(i, "option", Option{Name: rest})
	return 1
}

func (r *run) flagChain(i int, token, rest string) int {
	if r.rules.NegativeNumbers && mdwmathx.IsNumber(rest) {
		r.emit(i, "negative number", Parameter{Text: token})
		return 1
	}

	if eq := strings.LastIndexByte(rest, '='); eq >= 0 {
		chain, inline := rest[:eq], rest[eq+1:]
		if chain == "" {
			r.emit(i, "empty flag chain", Parameter{Text: token})
			return 1
		}

		last := r.leadingFlags(i, chain)
		if r.captures.IsPresentRune(last) {
			r.emit(i, "flag with inline value", Flag{Char: last, Value: inline, HasValue: true})
			return 1
		}
		r.emit(i, "flag, inline value not capturable", Flag{Char: last})
		r.degrade(i, inline)
		return 1
	}

	if rest == "" {
		r.emit(i, "empty flag chain", Parameter{Text: token})
		return 1
	}

	last := r.leadingFlags(i, rest)
	if r.captures.IsPresentRune(last) && r.canCaptureNext(i) {
		r.emit(i, "flag capturing next token", Flag{Char: last, Value: r.tokens[i+1], HasValue: true})
		return 2
	}

	r.emit(i, "flag", Flag{Char: last})
	return 1
}

// leadingFlags emits every rune of chain but the last as a non-capturing
// flag and returns the last rune. chain must not be empty.
func (r *run) leadingFlags(i int, chain string) rune {
	last, size := utf8.DecodeLastRuneInString(chain)
	for _, c := range chain[:len(chain)-size] {
		r.emit(i, "flag in chain", Flag{Char: c})
	}
	return last
}

// degrade emits a value that could not be captured as a Parameter
func (r *run) degrade(i int, value string) {
	if value != "" {
		r.emit(i, "degraded capture", Parameter{Text: value})
	}
}

// canCaptureNext reports whether tokens[i+1] exists and may be consumed as a
// value: it is unprefixed or, prefixed, a number literal
func (r *run) canCaptureNext(i int) bool {
	if i+1 >= len(r.tokens) {
		return false
	}
	next := r.tokens[i+1]
	return !r.rules.HasPrefix(next) || mdwmathx.IsNumber(next)
}

func (r *run) emit(i int, decision string, a Argument) {
	if r.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		r.logger.Trace("classified token", mdwlog.Fields{
			"index":    i,
			"token":    r.tokens[i],
			"decision": decision,
			"kind":     a.Kind().String(),
			"name":     a.Identifier(),
		})
	}
	r.out.push(a)
}
