// Command railroad generates railroad diagrams from an EBNF grammar.
package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/alecthomas/combo/grammar"
)

var (
	grammarArg = kingpin.Arg("grammar", "EBNF grammar file. Reads stdin if omitted.").ExistingFile()
	startFlag  = kingpin.Flag("start", "Start production (default is the first production).").String()
)

func main() {
	kingpin.Parse()
	name, r := "<stdin>", os.Stdin
	if *grammarArg != "" {
		f, err := os.Open(*grammarArg)
		kingpin.FatalIfError(err, "")
		defer f.Close()
		name, r = *grammarArg, f
	}
	g, err := grammar.LoadEBNF(name, r, *startFlag)
	kingpin.FatalIfError(err, "")
	fmt.Print(grammar.Railroad(g))
	fmt.Fprintln(os.Stderr, ">>> Copy railroad-diagrams.{css,js} from https://github.com/tabatkins/railroad-diagrams")
}
