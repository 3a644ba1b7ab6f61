// File: query.go
// Title: Typed Container Queries
// Description: Generic read-only lookups over a Container, selecting one
//              record variant by type parameter.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package args

import (
	"github.com/msto63/argv/foundation/core/errors"
	mdwmathx "github.com/msto63/argv/foundation/utils/mathx"
)

// Record constrains queries to the concrete argument types
type Record interface {
	Parameter | Option | Flag
	Argument
}

// FindFirst returns the first record of type T whose identifier equals name,
// together with its index
func FindFirst[T Record](c *Container, name string) (T, int, bool) {
	return FindFirstIn[T](c, name, 0, c.Len())
}

// FindFirstIn is FindFirst restricted to the index range [start, end).
// The range is clamped to the container.
func FindFirstIn[T Record](c *Container, name string, start, end int) (T, int, bool) {
	start = max(start, 0)
	end = min(end, c.Len())

	for i := start; i < end; i++ {
		if v, ok := c.args[i].(T); ok && v.Identifier() == name {
			return v, i, true
		}
	}

	var zero T
	return zero, -1, false
}

// GetAll returns every record of type T whose identifier is one of names,
// in order. Without names every record of type T is returned.
func GetAll[T Record](c *Container, names ...string) []T {
	var result []T
	for _, a := range c.args {
		v, ok := a.(T)
		if ok && matches(v.Identifier(), names) {
			result = append(result, v)
		}
	}
	return result
}

// Count returns how many records of type T match names (all of T when no
// names are given)
func Count[T Record](c *Container, names ...string) int {
	n := 0
	for _, a := range c.args {
		if v, ok := a.(T); ok && matches(v.Identifier(), names) {
			n++
		}
	}
	return n
}

// Has reports whether a record of type T named name exists
func Has[T Record](c *Container, name string) bool {
	_, _, ok := FindFirst[T](c, name)
	return ok
}

// GetValue returns the value of the first record of type T named name.
// Options and flags yield their captured value; a Parameter yields its own
// text.
func GetValue[T Record](c *Container, name string) (string, bool) {
	v, _, ok := FindFirst[T](c, name)
	if !ok {
		return "", false
	}

	switch a := any(v).(type) {
	case Parameter:
		return a.Text, true
	case Option:
		return a.Captured()
	case Flag:
		return a.Captured()
	}
	return "", false
}

// GetNumber parses the value GetValue returns as a number
func GetNumber[T Record](c *Container, name string) (float64, error) {
	value, ok := GetValue[T](c, name)
	if !ok {
		return 0, errors.NotFound(errors.ModuleArgs, "get_number", name)
	}
	return mdwmathx.ParseNumber(value)
}

func matches(identifier string, names []string) bool {
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if n == identifier {
			return true
		}
	}
	return false
}
