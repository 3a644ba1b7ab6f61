// File: example_test.go
// Title: Example Tests for args Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial example implementation

package args_test

import (
	"fmt"

	mdwargs "github.com/msto63/argv/foundation/args"
)

func ExampleClassify() {
	captures := mdwargs.NewCaptureList("output", "o")
	c := mdwargs.Classify([]string{"build", "--output", "bin/app", "-vo", "log.txt", "-5"}, captures)

	for _, a := range c.All() {
		switch v := a.(type) {
		case mdwargs.Parameter:
			fmt.Printf("parameter %s\n", v.Text)
		case mdwargs.Option:
			fmt.Printf("option %s=%q\n", v.Name, v.Value)
		case mdwargs.Flag:
			fmt.Printf("flag %c=%q\n", v.Char, v.Value)
		}
	}
	// Output:
	// parameter build
	// option output="bin/app"
	// flag v=""
	// flag o="log.txt"
	// parameter -5
}

func ExampleClassify_degradedCapture() {
	c := mdwargs.Classify([]string{"--opt=value"}, nil)
	fmt.Println(c.All())
	// Output:
	// [--opt value]
}

func ExampleClassifyWithRules() {
	rules := mdwargs.DefaultPrefixRules().WithNegativeNumbers(false)
	c := mdwargs.ClassifyWithRules([]string{"-5.5"}, nil, rules)
	fmt.Println(c.All())
	// Output:
	// [-5 -. -5]
}

func ExampleGetValue() {
	c := mdwargs.Classify([]string{"--scale", "-1.5", "-j4", "input.csv"}, mdwargs.NewCaptureList("scale"))

	scale, _ := mdwargs.GetValue[mdwargs.Option](c, "scale")
	input, _ := mdwargs.GetValue[mdwargs.Parameter](c, "input.csv")
	fmt.Println(scale, input, mdwargs.Has[mdwargs.Flag](c, "j"))
	// Output:
	// -1.5 input.csv true
}

func ExampleContainer_Tokens() {
	c := mdwargs.Classify([]string{"-ab", "5", "--name", "x"}, mdwargs.NewCaptureList("b", "name"))
	fmt.Println(c.Tokens(mdwargs.DefaultPrefixRules()))
	// Output:
	// [-ab=5 --name=x]
}
