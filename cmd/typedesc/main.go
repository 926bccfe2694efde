// Command typedesc inspects type-descriptor spellings.
//
// Usage:
//
//	typedesc [options] <type>...
//
// Examples:
//
//	typedesc "float[4]" point matrix   # print canonical form and layout
//	typedesc -merge int uint16 half    # print the merged base type
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/typedesc"
)

var merge = flag.Bool("merge", false, "print the merged base type of all arguments")

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no type spellings given")
		usage()
		os.Exit(1)
	}

	types := make([]typedesc.TypeDesc, len(args))
	for i, arg := range args {
		t := typedesc.Parse(arg)
		if t.IsUnknown() && arg != "unknown" {
			fmt.Fprintf(os.Stderr, "Error: %q is not a valid type spelling\n", arg)
			os.Exit(1)
		}
		types[i] = t
	}

	if *merge {
		merged := types[0].BaseType
		for _, t := range types[1:] {
			merged = typedesc.MergeBaseTypes(merged, t.BaseType)
		}
		fmt.Println(merged)
		return
	}

	for i, t := range types {
		describe(args[i], t)
	}
}

func describe(spelling string, t typedesc.TypeDesc) {
	fmt.Printf("%s:\n", spelling)
	fmt.Printf("  canonical  %s\n", t)
	fmt.Printf("  base       %s (%d bytes)\n", t.BaseType, t.BaseType.Size())
	fmt.Printf("  aggregate  %d scalar(s) per element\n", t.Aggregate)
	if n, err := t.NumElements(); err == nil {
		size, _ := t.Size()
		fmt.Printf("  elements   %d\n", n)
		fmt.Printf("  size       %d bytes\n", size)
	} else {
		fmt.Printf("  elements   unsized array\n")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: typedesc [options] <type>...")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}
