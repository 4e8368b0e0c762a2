// File: example_test.go
// Title: Example Tests for the String Keywords
// Description: Executable examples for the keyword families.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06

package stringx_test

import (
	"fmt"

	"github.com/msto63/strkw/foundation/core/log"
	"github.com/msto63/strkw/foundation/utils/stringx"
)

func newLibrary() *stringx.Library {
	return stringx.New(stringx.Options{Logger: log.Discard()})
}

func ExampleLibrary_LineCount() {
	lib := newLibrary()
	fmt.Println(lib.LineCount("a\nb\nc"))
	fmt.Println(lib.LineCount("a\r\nb\n"))
	fmt.Println(lib.LineCount(""))
	// Output:
	// 3
	// 2
	// 0
}

func ExampleLibrary_LinesInRange() {
	lib := newLibrary()
	fmt.Printf("%q\n", lib.LinesInRange("a\nb\nc\nd", stringx.At(1), stringx.At(-1)))
	fmt.Printf("%q\n", lib.LinesInRange("a\nb\nc\nd", stringx.At(2), stringx.Absent()))
	// Output:
	// ["b" "c"]
	// ["c" "d"]
}

func ExampleLibrary_LinesContaining() {
	lib := newLibrary()
	fmt.Printf("%q\n", lib.LinesContaining("Hello\nworld\nHELLO", "hello", true))
	// Output:
	// "Hello\nHELLO"
}

func ExampleLibrary_LinesMatchingGlob() {
	lib := newLibrary()
	out, _ := lib.LinesMatchingGlob("log.txt\nlog.csv\nnotes.txt", "*.txt", false)
	fmt.Printf("%q\n", out)
	// Output:
	// "log.txt\nnotes.txt"
}

func ExampleLibrary_ReplaceRegex() {
	lib := newLibrary()
	out, _ := lib.ReplaceRegex("2026-10-06", `(\d+)-(\d+)-(\d+)`, `\3.\2.\1`, -1)
	fmt.Println(out)
	// Output:
	// 06.10.2026
}

func ExampleLibrary_SplitFromRight() {
	lib := newLibrary()
	fmt.Printf("%q\n", lib.SplitFromRight("a-b-c-d", "-", 1))
	fmt.Printf("%q\n", lib.Split("a-b-c-d", "-", 1))
	// Output:
	// ["a-b-c" "d"]
	// ["a" "b-c-d"]
}

func ExampleLibrary_Substring() {
	lib := newLibrary()
	fmt.Println(lib.Substring("abcdef", stringx.At(-2), stringx.Absent()))
	fmt.Println(lib.Substring("Grüße", stringx.At(2), stringx.At(4)))
	// Output:
	// ef
	// üß
}

func ExampleLibrary_AssertTitlecase() {
	lib := newLibrary()
	fmt.Println(lib.AssertTitlecase("This Is Title", ""))
	fmt.Println(lib.AssertTitlecase("Word In UPPER", ""))
	// Output:
	// <nil>
	// 'Word In UPPER' is not titlecase
}

func ExampleToInteger() {
	n, _ := stringx.ToInteger("count", " 1_000 ")
	fmt.Println(n)

	_, err := stringx.ToInteger("count", "ten")
	fmt.Println(err)
	// Output:
	// 1000
	// Cannot convert 'count' argument 'ten' to an integer.
}
