// Command combo parses files against an EBNF grammar.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/sync/errgroup"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/alecthomas/combo"
	"github.com/alecthomas/combo/grammar"
)

var (
	grammarArg      = kingpin.Arg("grammar", "EBNF grammar file.").Required().ExistingFile()
	filesArg        = kingpin.Arg("files", "Files to parse. Reads stdin if none are given.").ExistingFiles()
	startFlag       = kingpin.Flag("start", "Start production (default is the first production).").String()
	memoFlag        = kingpin.Flag("memo", "Memoize every production.").Bool()
	memoLimitFlag   = kingpin.Flag("memo-limit", "Bound the memo table to this many entries.").Int()
	noBacktrackFlag = kingpin.Flag("no-backtrack", "Do not backtrack between alternatives.").Bool()
	trimFlag        = kingpin.Flag("trim", "Trim lexical productions from the parse tree.").Bool()
	dumpFlag        = kingpin.Flag("dump", "Dump the parse tree as Go values.").Bool()
	traceFlag       = kingpin.Flag("trace", "Trace productions to stderr.").Bool()
	verboseFlag     = kingpin.Flag("verbose", "Increase log verbosity.").Short('v').Counter()
	jobsFlag        = kingpin.Flag("jobs", "Number of files to parse concurrently.").Short('j').Default("4").Int()
)

var log = commonlog.GetLogger("combo.cli")

type outcome struct {
	name string
	tree *grammar.Tree
	err  error
}

func main() {
	kingpin.CommandLine.Help = `Parse files against an EBNF grammar compatible with Go's exp/ebnf.

Each production of the grammar becomes a node of the parse tree. Productions
starting with a lower case letter are lexical helpers and are removed from the
tree with --trim.
`
	kingpin.Parse()
	commonlog.Configure(*verboseFlag, nil)

	parser, err := compile()
	kingpin.FatalIfError(err, "")

	options := []combo.ParseOption{}
	if *memoLimitFlag > 0 {
		options = append(options, combo.WithMemoLimit(*memoLimitFlag))
	}
	if *traceFlag {
		options = append(options, combo.Trace(os.Stderr))
	}

	var outcomes []*outcome
	if len(*filesArg) == 0 {
		outcomes = []*outcome{parseReader(parser, "<stdin>", os.Stdin, options)}
	} else {
		outcomes, err = parseFiles(parser, *filesArg, options)
		kingpin.FatalIfError(err, "")
	}

	failed := false
	for _, o := range outcomes {
		if o.err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s:%s\n", o.name, o.err)
			continue
		}
		log.Infof("%s: parsed %d characters", o.name, o.tree.Length)
		if *dumpFlag {
			repr.Println(o.tree)
		} else {
			fmt.Println(o.tree)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func compile() (combo.Parser[rune, *grammar.Tree], error) {
	r, err := os.Open(*grammarArg)
	if err != nil {
		return combo.Parser[rune, *grammar.Tree]{}, err
	}
	defer r.Close()
	g, err := grammar.LoadEBNF(*grammarArg, r, *startFlag)
	if err != nil {
		return combo.Parser[rune, *grammar.Tree]{}, err
	}
	log.Debugf("loaded grammar:\n%s", g)
	options := []grammar.CompileOption{}
	if *memoFlag {
		options = append(options, grammar.Memoize())
	}
	if *noBacktrackFlag {
		options = append(options, grammar.NoBacktrack())
	}
	if *trimFlag {
		options = append(options, grammar.Trim())
	}
	return grammar.Compile(g, options...)
}

// parseFiles parses every file concurrently. Each parse owns its own memo table.
func parseFiles(parser combo.Parser[rune, *grammar.Tree], files []string, options []combo.ParseOption) ([]*outcome, error) {
	outcomes := make([]*outcome, len(files))
	wg := errgroup.Group{}
	if *jobsFlag > 0 {
		wg.SetLimit(*jobsFlag)
	}
	for i, file := range files {
		i, file := i, file
		wg.Go(func() error {
			r, err := os.Open(file)
			if err != nil {
				return err
			}
			defer r.Close()
			outcomes[i] = parseReader(parser, file, r, options)
			return nil
		})
	}
	return outcomes, wg.Wait()
}

func parseReader(parser combo.Parser[rune, *grammar.Tree], name string, r io.Reader, options []combo.ParseOption) *outcome {
	data, err := io.ReadAll(r)
	if err != nil {
		return &outcome{name: name, err: err}
	}
	log.Debugf("%s: parsing %d bytes", name, len(data))
	tree, err := combo.ParseString(parser, string(data), options...)
	return &outcome{name: name, tree: tree, err: err}
}
