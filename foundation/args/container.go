// File: container.go
// Title: Argument Container
// Description: The ordered, immutable result of one classification run.
//              Records keep the left-to-right order of the input tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package args

import (
	"encoding/json"
	"iter"
)

// Container holds the records of one classification run. It is built by the
// classifier and never modified afterwards, so any number of goroutines may
// read it concurrently.
type Container struct {
	args     []Argument
	captures int
}

func newContainer(capacity int) *Container {
	return &Container{args: make([]Argument, 0, capacity)}
}

func (c *Container) push(a Argument) {
	if _, ok := a.Captured(); ok {
		c.captures++
	}
	c.args = append(c.args, a)
}

// Len returns the number of records
func (c *Container) Len() int {
	return len(c.args)
}

// At returns the record at index i. It panics if i is out of range.
func (c *Container) At(i int) Argument {
	return c.args[i]
}

// All returns a copy of the records
func (c *Container) All() []Argument {
	return append([]Argument(nil), c.args...)
}

// Records iterates over index and record
func (c *Container) Records() iter.Seq2[int, Argument] {
	return func(yield func(int, Argument) bool) {
		for i, a := range c.args {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Parameters returns the text of every Parameter in order
func (c *Container) Parameters() []string {
	params := GetAll[Parameter](c)
	texts := make([]string, len(params))
	for i, p := range params {
		texts[i] = p.Text
	}
	return texts
}

// Captures returns how many records carry a captured value
func (c *Container) Captures() int {
	return c.captures
}

// Equal reports whether both containers hold the same records in the same
// order
func (c *Container) Equal(other *Container) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i := range c.args {
		if c.args[i] != other.args[i] {
			return false
		}
	}
	return true
}

type jsonRecord struct {
	Kind  string  `json:"kind"`
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// MarshalJSON encodes the records as an array of {kind, name, value}
// objects; value is omitted when nothing was captured
func (c *Container) MarshalJSON() ([]byte, error) {
	records := make([]jsonRecord, len(c.args))
	for i, a := range c.args {
		records[i] = jsonRecord{Kind: a.Kind().String(), Name: a.Identifier()}
		if v, ok := a.Captured(); ok {
			records[i].Value = &v
		}
	}
	return json.Marshal(records)
}
