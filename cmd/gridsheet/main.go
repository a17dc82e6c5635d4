package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/javajack/gridsheet"
	"github.com/javajack/gridsheet/tui"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// errBadFlags marks flag combinations rejected after parsing. The flag
// package reports its own parse errors.
var errBadFlags = errors.New("invalid flags")

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

type config struct {
	script    string
	in        string
	out       string
	sheet     string
	rows      int
	cols      int
	verbosity int
	logPath   string
	tui       bool
	check     bool
	version   bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("gridsheet", flag.ContinueOnError)
	fs.StringVar(&c.script, "script", "", "action script to run (\"-\" for stdin)")
	fs.StringVar(&c.in, "in", "", "xlsx workbook to load")
	fs.StringVar(&c.out, "out", "", "xlsx workbook to write when done")
	fs.StringVar(&c.sheet, "sheet", "", "worksheet name (default: active sheet on load, Sheet1 on save)")
	fs.IntVar(&c.rows, "rows", gridsheet.DefaultRows, "initial row count")
	fs.IntVar(&c.cols, "cols", gridsheet.DefaultCols, "initial column count")
	fs.IntVar(&c.verbosity, "v", 0, "log verbosity (0 = errors only)")
	fs.StringVar(&c.logPath, "log", "", "log file (default: stderr)")
	fs.BoolVar(&c.tui, "tui", false, "open the interactive terminal editor")
	fs.BoolVar(&c.check, "check", false, "report formula problems in the -in workbook and exit")
	fs.BoolVar(&c.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if c.tui && c.script == "-" {
		return config{}, fmt.Errorf("%w: -tui cannot read a script from stdin", errBadFlags)
	}
	if c.check && c.in == "" {
		return config{}, fmt.Errorf("%w: -check needs -in", errBadFlags)
	}
	return c, nil
}

// reportFlagError prints errors that the flag package has not already
// printed. -h and -help print nothing more.
func reportFlagError(w io.Writer, err error) {
	if errors.Is(err, errBadFlags) {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func main() {
	c, err := parseFlags(os.Args[1:])
	if err != nil {
		reportFlagError(os.Stderr, err)
		os.Exit(2)
	}
	if c.version {
		fmt.Printf("gridsheet version %s\n", Version)
		return
	}

	var logPath *string
	if c.logPath != "" {
		logPath = &c.logPath
	}
	commonlog.Configure(c.verbosity, logPath)

	if err := run(c, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c config, stdin io.Reader, stdout io.Writer) error {
	if c.check {
		return check(c, stdout)
	}

	g, err := loadGrid(c)
	if err != nil {
		return err
	}

	if c.script != "" {
		if err := runScript(g, c.script, stdin, stdout); err != nil {
			return err
		}
	}

	if c.tui {
		if err := runTUI(g); err != nil {
			return err
		}
	} else if c.script == "" {
		if err := gridsheet.WriteTable(stdout, g); err != nil {
			return err
		}
	}

	if c.out != "" {
		if err := gridsheet.SaveXLSX(c.out, g, c.sheet); err != nil {
			return err
		}
		commonlog.GetLogger("gridsheet").Infof("wrote %s", c.out)
	}
	return nil
}

// check prints the issues found in the input workbook. It fails when any
// of them is an error.
func check(c config, stdout io.Writer) error {
	issues, err := gridsheet.ValidateXLSX(c.in, c.sheet)
	if err != nil {
		return err
	}
	errs := 0
	for _, issue := range issues {
		fmt.Fprintln(stdout, issue)
		if issue.Severity == gridsheet.SeverityError {
			errs++
		}
	}
	if errs > 0 {
		return fmt.Errorf("%s: %d formula error(s)", c.in, errs)
	}
	return nil
}

func loadGrid(c config) (*gridsheet.Grid, error) {
	size := gridsheet.WithSize(c.rows, c.cols)
	if c.in != "" {
		return gridsheet.OpenXLSX(c.in, c.sheet, size)
	}
	return gridsheet.NewGrid(size), nil
}

func runScript(g *gridsheet.Grid, path string, stdin io.Reader, stdout io.Writer) error {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return gridsheet.NewScript(g, stdout).Run(r)
}

func runTUI(g *gridsheet.Grid) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	return tui.New(g).Run(s)
}
