package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	cz "github.com/FlorianRappl/cz-lang"
	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/mattn/go-isatty"
)

// CLI represents the command-line interface
type CLI struct {
	Expr    string `arg:"" optional:"" help:"Expression to evaluate. Expressions starting with '-' may follow '--'."`
	File    string `short:"f" help:"Read the expression from a file."`
	Repl    bool   `short:"i" help:"Evaluate standard input line by line."`
	Decimal bool   `help:"Use arbitrary-precision decimal arithmetic."`
	AST     bool   `name:"ast" help:"Print the expression tree instead of the result."`
	Tokens  bool   `help:"Print the token stream instead of the result."`
	Color   string `help:"Colorize diagnostics: auto, always or never." placeholder:"MODE"`
	Config  string `help:"Configuration file (.yaml, .yml or .toml)." default:".cz.yaml" env:"CZ_CONFIG"`
	Verbose int    `short:"v" type:"counter" help:"Trace evaluation stages to stderr."`
}

var positionPattern = regexp.MustCompile(`position (\d+)`)

type outputMode int

const (
	modeResult outputMode = iota
	modeTokens
	modeAST
)

type app struct {
	cfg    *Config
	mode   outputMode
	stdout io.Writer
	stderr io.Writer
	errc   *color.Color
	caretc *color.Color
}

func newApp(cfg *Config, mode outputMode, stdout, stderr io.Writer) *app {
	a := &app{
		cfg:    cfg,
		mode:   mode,
		stdout: stdout,
		stderr: stderr,
		errc:   color.New(color.FgRed),
		caretc: color.New(color.FgRed, color.Bold),
	}
	if cfg.Color == "always" || (cfg.Color == "auto" && isTerminal(stderr)) {
		a.errc.EnableColor()
		a.caretc.EnableColor()
	} else {
		a.errc.DisableColor()
		a.caretc.DisableColor()
	}
	return a
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// evaluate prints the tokens, the tree or the value of source, depending on
// the output mode.
func (a *app) evaluate(source string) error {
	tokens := cz.Tokenize(source)
	glog.V(1).Infof("tokens: %v", tokens)
	if a.mode == modeTokens {
		for _, tok := range tokens {
			fmt.Fprintln(a.stdout, tok)
		}
		return nil
	}

	expr, err := cz.NewTokenParser(tokens).Parse()
	if err != nil {
		return err
	}
	glog.V(1).Infof("tree: %v", expr)
	if a.mode == modeAST {
		repr.New(a.stdout, repr.Indent("  ")).Println(expr)
		return nil
	}

	var result string
	if a.cfg.Decimal {
		d, err := cz.EvaluateDecimal(expr)
		if err != nil {
			return err
		}
		if a.cfg.Precision >= 0 {
			result = d.StringFixed(int32(a.cfg.Precision))
		} else {
			result = d.String()
		}
	} else {
		result = cz.FormatNumber(cz.Evaluate(expr), a.cfg.Precision)
	}
	glog.V(1).Infof("result: %s", result)
	fmt.Fprintln(a.stdout, result)
	return nil
}

// report prints the source line the error points into, a caret under the
// offending character when the position is known, and the message.
func (a *app) report(source string, err error) {
	col, ok := caretColumn(err)
	if !ok {
		fmt.Fprintln(a.stdout, source)
		a.errc.Fprintln(a.stderr, err.Error())
		return
	}

	line, col := lineAt([]rune(source), col)
	fmt.Fprintln(a.stdout, string(line))
	a.caretc.Fprintln(a.stdout, caretPadding(line, col)+"^")
	a.errc.Fprintln(a.stderr, err.Error())
}

func caretColumn(err error) (int, bool) {
	var syntaxErr *cz.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Pos, syntaxErr.Pos >= 0
	}
	m := positionPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	pos, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return pos, true
}

// lineAt returns the line of src containing offset and the offset relative
// to the start of that line.
func lineAt(src []rune, offset int) ([]rune, int) {
	if offset > len(src) {
		offset = len(src)
	}
	start := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			start = i + 1
		}
	}
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return src[start:end], offset - start
}

func caretPadding(line []rune, col int) string {
	var sb strings.Builder
	for i := 0; i < col; i++ {
		if i < len(line) && line[i] == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func (a *app) eval(source string) int {
	if err := a.evaluate(source); err != nil {
		a.report(source, err)
		return 1
	}
	return 0
}

// repl evaluates every non-blank line of in. The prompt is only shown when
// in is a terminal.
func (a *app) repl(in io.Reader, interactive bool) int {
	failed := false
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(a.stdout, a.cfg.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		glog.V(2).Infof("line: %q", line)
		if err := a.evaluate(line); err != nil {
			a.report(line, err)
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		a.errc.Fprintln(a.stderr, err.Error())
		return 1
	}
	if failed && !interactive {
		return 1
	}
	return 0
}

// expressionArgs inserts "--" before the first argument that starts with
// '-' but cannot be a flag, such as "-2+3", so it reaches the parser as the
// expression and fails there with a positioned error.
func expressionArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		if c := arg[1]; c == '-' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func setupTracing(level int) {
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(level))
}

func run(cli *CLI, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	cfg.override(cli)
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	setupTracing(cli.Verbose)

	mode := modeResult
	switch {
	case cli.Tokens:
		mode = modeTokens
	case cli.AST:
		mode = modeAST
	}
	a := newApp(cfg, mode, stdout, stderr)

	if cli.Repl {
		return a.repl(stdin, isTerminal(stdin))
	}

	source := cli.Expr
	if cli.File != "" {
		b, err := os.ReadFile(cli.File)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to read expression file: %v\n", err)
			return 1
		}
		source = strings.TrimRight(string(b), "\r\n")
	}
	if source == "" {
		fmt.Fprintln(stderr, "No input specified!")
		return 1
	}
	return a.eval(source)
}

func main() {
	if err := loadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("cz"),
		kong.Description("Evaluate an arithmetic expression. Numbers use ',' as decimal separator."),
		kong.UsageOnError(),
	)
	_, err := parser.Parse(expressionArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)

	code := run(&cli, os.Stdin, os.Stdout, os.Stderr)
	glog.Flush()
	os.Exit(code)
}
