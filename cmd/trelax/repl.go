package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/reassoc/expr"
	"github.com/npillmayer/reassoc/rewrite"
	"github.com/npillmayer/reassoc/syntax"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI ("T.RELAX"), where users may enter
// expressions. T.RELAX will rewrite each expression and print out the result.
// Input may also be given as macro-style invocations, e.g. '#relaxed(a - b)'.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	sumFn := flag.String("sum", rewrite.DefaultSumFunction, "Qualified name of the relaxed sum")
	prodFn := flag.String("product", rewrite.DefaultProductFunction, "Qualified name of the relaxed product")
	nested := flag.Bool("nested", true, "Rewrite within assignments and prefix operations")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to T.RELAX")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("trelax> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl: repl,
		rw: rewrite.New(
			rewrite.WithSumFunction(*sumFn),
			rewrite.WithProductFunction(*prodFn),
			rewrite.RewriteNested(*nested),
		),
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" { // one-shot mode
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
		return
	}
	//
	// load an init file and start receiving commands / expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	rw   *rewrite.Rewriter
	last expr.Expr // last rewritten expression
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "//") {
			lineno++
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input, which is either a command, an invocation or
// an expression.
//
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		cmd, arg := splitCommand(line)
		return intp.Execute(cmd, arg)
	}
	e, err := intp.rewriteInput(line)
	if err != nil {
		return false, err
	}
	pterm.Info.Println(syntax.Format(e))
	return false, nil
}

// Execute executes a REPL command.
func (intp *Intp) Execute(cmd string, arg string) (bool, error) {
	tracer().Debugf("command %s, argument %q", cmd, arg)
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help", ":h":
		printHelp()
		return false, nil
	case ":load":
		intp.loadInitFile(arg)
		return false, nil
	case ":tree", ":sexpr", ":ops":
		e, err := intp.rewriteInput(arg)
		if err != nil {
			return false, err
		}
		switch cmd {
		case ":tree":
			pterm.Println(syntax.Format(e))
			pterm.DefaultTree.WithRoot(treeFrom(e)).Render()
		case ":sexpr":
			pterm.Info.Println(expr.ListString(e))
		case ":ops":
			pterm.Info.Println(fmt.Sprintf("operators: %v", expr.Operators(e).Values()))
		}
		return false, nil
	}
	err := fmt.Errorf("unknown command %s", cmd)
	pterm.Error.Println(err.Error())
	return false, err
}

// rewriteInput parses and rewrites an expression or an invocation. If input
// is empty, the last result is used.
func (intp *Intp) rewriteInput(input string) (expr.Expr, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		if intp.last == nil {
			err := fmt.Errorf("no expression given")
			pterm.Error.Println(err.Error())
			return nil, err
		}
		return intp.last, nil
	}
	level := tracer().GetTraceLevel()
	var e expr.Expr
	var err error
	if strings.HasPrefix(input, "#") {
		var inv rewrite.Invocation
		if inv, err = syntax.ParseInvocation(input); err == nil {
			e, err = intp.rw.Expand(inv)
		}
	} else {
		if e, err = syntax.Parse(input); err == nil {
			tracer().Debugf("input tree: %s", expr.ListString(e))
			e = intp.rw.Rewrite(e)
		}
	}
	tracer().SetTraceLevel(level)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	intp.last = e
	return e, nil
}

func splitCommand(line string) (string, string) {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.TrimSpace(fields[1])
}

func printHelp() {
	pterm.Println(`Enter an expression or an invocation like '#relaxed(a + b)'.
Commands:
  :tree  [expr]   display rewritten tree
  :sexpr [expr]   display rewritten tree as s-expression
  :ops   [expr]   list operators remaining after rewriting
  :load  file     read input lines from a file
  :help           this text
  :quit           leave T.RELAX
Without an expression, commands work on the last result.`)
}

// treeFrom creates a pterm tree for an expression tree, to be displayed on a
// terminal.
func treeFrom(e expr.Expr) pterm.TreeNode {
	ll := leveledElem(e, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledElem(e expr.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  nodeLabel(e),
	})
	for _, ch := range expr.Children(e) {
		ll = leveledElem(ch, ll, level+1)
	}
	return ll
}

func nodeLabel(e expr.Expr) string {
	switch x := e.(type) {
	case nil:
		return "nil"
	case *expr.BinaryOp:
		return "binary " + x.Op
	case *expr.PrefixOp:
		return "prefix " + x.Op
	case *expr.Call:
		labels := make([]string, 0, len(x.Args))
		for _, a := range x.Args {
			if a.Label != "" {
				labels = append(labels, a.Label+":")
			}
		}
		if len(labels) > 0 {
			return "call " + strings.Join(labels, " ")
		}
		return "call"
	case *expr.Grouping, *expr.Assignment:
		return e.Kind().String()
	}
	return e.Kind().String() + " " + e.String()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"reassoc.trelax", "reassoc.rewrite", "reassoc.syntax", "reassoc.expr"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}
