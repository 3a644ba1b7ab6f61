// File: argument.go
// Title: Argument Records
// Description: The closed set of records produced by the classifier:
//              Parameter, Option and Flag. Argument is a sealed interface;
//              consumers switch over the three concrete types.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package args

import "strings"

// Kind identifies the variant of an Argument
type Kind int

const (
	// KindParameter is a bare value without a recognized prefix
	KindParameter Kind = iota

	// KindOption is a double-delimiter prefixed name ("--name")
	KindOption

	// KindFlag is a single-delimiter prefixed character ("-f")
	KindFlag
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "parameter"
	case KindOption:
		return "option"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Argument is one classified record. The only implementations are
// Parameter, Option and Flag.
type Argument interface {
	// Kind returns the variant of the record
	Kind() Kind

	// Identifier returns the text queries match against: the parameter
	// text, the option name or the flag character
	Identifier() string

	// Captured returns the captured value, if any. Parameters never capture.
	Captured() (string, bool)

	// String returns the record in token form using the default delimiter
	String() string

	argument() // marker method
}

// Parameter is a bare value
type Parameter struct {
	Text string
}

// Option is a double-delimiter prefixed, multi-character name with an
// optional captured value
type Option struct {
	Name     string
	Value    string
	HasValue bool
}

// Flag is a single character from a single-delimiter prefixed chain with an
// optional captured value
type Flag struct {
	Char     rune
	Value    string
	HasValue bool
}

func (Parameter) Kind() Kind { return KindParameter }
func (Option) Kind() Kind    { return KindOption }
func (Flag) Kind() Kind      { return KindFlag }

func (p Parameter) Identifier() string { return p.Text }
func (o Option) Identifier() string    { return o.Name }
func (f Flag) Identifier() string      { return string(f.Char) }

func (Parameter) Captured() (string, bool) { return "", false }
func (o Option) Captured() (string, bool)  { return o.Value, o.HasValue }
func (f Flag) Captured() (string, bool)    { return f.Value, f.HasValue }

func (p Parameter) String() string { return p.token(DefaultDelimiter) }
func (o Option) String() string    { return o.token(DefaultDelimiter) }
func (f Flag) String() string      { return f.token(DefaultDelimiter) }

func (Parameter) argument() {}
func (Option) argument()    {}
func (Flag) argument()      {}

func (p Parameter) token(rune) string {
	return p.Text
}

func (o Option) token(delimiter rune) string {
	var b strings.Builder
	b.WriteRune(delimiter)
	b.WriteRune(delimiter)
	b.WriteString(o.Name)
	if o.HasValue {
		b.WriteByte('=')
		b.WriteString(o.Value)
	}
	return b.String()
}

func (f Flag) token(delimiter rune) string {
	var b strings.Builder
	b.WriteRune(delimiter)
	b.WriteRune(f.Char)
	if f.HasValue {
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String()
}

// tokenOf renders a in token form with the given delimiter
func tokenOf(a Argument, delimiter rune) string {
	switch v := a.(type) {
	case Parameter:
		return v.token(delimiter)
	case Option:
		return v.token(delimiter)
	case Flag:
		return v.token(delimiter)
	default:
		return a.String()
	}
}
