// File: doc.go
// Title: Package Documentation for args
// Description: Command line argument classification: turns a token list into
//              typed Parameter, Option and Flag records.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package args classifies command line tokens.

A token list (os.Args[1:] for example) is turned into an ordered Container
of records. Every record is one of three types:

  - Parameter: a bare value ("file.txt", "-5.5")
  - Option:    a double-delimiter prefixed name ("--verbose", "--out=x")
  - Flag:      one character of a single-delimiter chain ("-v", "-abc")

Captures

Options and flags named in a CaptureList may carry a value. The value is
taken from an inline "=value" suffix or, when there is none, from the
following token:

	captures := args.NewCaptureList("output", "o")
	c := args.Classify([]string{"--output", "out.txt", "-vo", "log"}, captures)
	// Option{output="out.txt"} Flag{v} Flag{o="log"}

The following token is only consumed when it is unprefixed or a number
literal, so "--scale -1.5" captures "-1.5". Only the last flag of a chain
may capture a following token. A value offered to an identifier that is
not in the capture list becomes a Parameter of its own:

	args.Classify([]string{"--opt=value"}, nil)
	// Option{opt} Parameter{value}

Flag chains split at the last '='; options split at the first.

Negative numbers

With DefaultPrefixRules a single-delimiter token whose remainder is a
number ("-5", "-1,000.5", "-0xff") stays a Parameter. Turning
NegativeNumbers off expands such tokens into flags instead ("-5.5" becomes
the flags '5', '.' and '5').

Queries

Typed, read-only lookups select a record type by type parameter:

	out, ok := args.GetValue[args.Option](c, "output")
	verbose := args.Has[args.Flag](c, "v")
	files := c.Parameters()

Containers are immutable once returned and safe for concurrent readers.
Tokens renders a container back into tokens that classify to the same
records.
*/
package args
