// lingodec decompiles handlers described in hujson files (bytecode plus the
// names and literals it refers to) and prints their Lingo source.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Heliodex/lingodec/bytecode"
	"github.com/Heliodex/lingodec/internal/fixture"
	"github.com/Heliodex/lingodec/translate"
	"github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"
)

var (
	summaryFlag = cli.BoolFlag{
		Name:  "summary, s",
		Usage: "Collapse ifs and loops to their first line",
	}
	disasmFlag = cli.BoolFlag{
		Name:  "disasm",
		Usage: "Print the disassembly before the source",
	}
	dumpASTFlag = cli.BoolFlag{
		Name:  "dump-ast",
		Usage: "Print the syntax tree after the source",
	}
	checkFlag = cli.BoolFlag{
		Name:  "check",
		Usage: "Fail if the output differs from the file's expected source",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose, v",
		Usage: "Log everything the translator had to guess about",
	}
	cacheFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "Number of decoded handlers to keep",
		Value: bytecode.DefaultCacheSize,
	}
)

type options struct {
	summary, disasm, dumpAST, check bool
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "lingodec"
	app.Usage = "decompile Lingo handler bytecode"
	app.ArgsUsage = "FILE..."
	app.Flags = []cli.Flag{summaryFlag, disasmFlag, dumpASTFlag, checkFlag, verboseFlag, cacheFlag}
	app.Action = run
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	if !verbose {
		return
	}

	var out io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		out = colorable.NewColorableStderr()
	}
	translate.SetLogHandler(log15.LvlFilterHandler(log15.LvlDebug, log15.StreamHandler(out, log15.TerminalFormat())))
}

func run(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		cli.ShowAppHelp(ctx)
		return cli.NewExitError("no input files", 2)
	}
	setupLogging(ctx.Bool("verbose"))

	dc, err := translate.NewDecompiler(ctx.Int(cacheFlag.Name))
	if err != nil {
		return err
	}

	o := options{
		summary: ctx.Bool("summary"),
		disasm:  ctx.Bool(disasmFlag.Name),
		dumpAST: ctx.Bool(dumpASTFlag.Name),
		check:   ctx.Bool(checkFlag.Name),
	}
	for _, path := range ctx.Args() {
		if err := decompile(os.Stdout, dc, path, o); err != nil {
			return err
		}
	}
	return nil
}

// ErrMismatch is returned by --check when the output isn't what the file expects.
var ErrMismatch = errors.New("output differs from expected source")

func decompile(w io.Writer, dc *translate.Decompiler, path string, o options) error {
	f, err := fixture.Load(path)
	if err != nil {
		return err
	}

	code, err := f.Bytecode()
	if err != nil {
		return err
	}
	lits, err := f.Datums()
	if err != nil {
		return err
	}

	if o.disasm {
		insts, err := bytecode.Decode(code)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprint(w, bytecode.Disassemble(insts))
	}

	pool := &translate.Pool{Names: f.Names, Literals: lits, Handlers: f.Handlers}
	a, err := dc.Decompile(f.ASTHandler(), code, pool)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	src := a.Source(o.summary)
	fmt.Fprint(w, src)
	if o.dumpAST {
		fmt.Fprint(w, a)
	}

	if o.check {
		want := f.Want()
		if o.summary {
			want = f.WantSummary()
		}
		if src != want {
			return fmt.Errorf("%s: %w", path, ErrMismatch)
		}
	}
	return nil
}
