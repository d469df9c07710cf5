package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/exprkit/astexpr"
)

// config holds the variable arrays and the default data type.
type config struct {
	DType  string    `toml:"dtype"`  // LONG or DOUBLE
	Long   []int64   `toml:"long"`   // Variables for LONG expressions
	Double []float64 `toml:"double"` // Variables for DOUBLE expressions
}

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cfgPath := flag.String("config", "", "TOML file with the data type and variable arrays")
	filePath := flag.String("file", "", "evaluate expressions line by line from a file")
	dtypeFlag := flag.String("type", "", "data type (LONG or DOUBLE), overrides the config")
	draw := flag.Bool("draw", false, "draw the tree instead of evaluating")
	check := flag.Bool("check", false, "validate the built tree and report issues")
	noColor := flag.Bool("no-color", false, "disable ANSI colors in the tree drawing")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("service", "astcalc").Logger().
		Level(level)

	logger.Debug().Str("version", version).Str("commit", commit).Msg("starting")

	cfg := config{DType: "DOUBLE"}
	if *cfgPath != "" {
		if _, err := toml.DecodeFile(*cfgPath, &cfg); err != nil {
			logger.Fatal().Err(err).Str("path", *cfgPath).Msg("failed to load config")
		}
	}
	if *dtypeFlag != "" {
		cfg.DType = *dtypeFlag
	}

	app := &app{
		cfg:    cfg,
		logger: logger,
		opt:    &astexpr.Options{DisableColor: *noColor},
		draw:   *draw,
		check:  *check,
	}

	switch {
	case *filePath != "":
		if err := app.runFile(*filePath); err != nil {
			logger.Fatal().Err(err).Str("path", *filePath).Msg("failed to process file")
		}
	case flag.NArg() == 1:
		if !app.runLine(cfg.DType, flag.Arg(0)) {
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] EXPRESSION\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
}

// app carries the evaluation settings across expressions.
type app struct {
	cfg    config
	logger zerolog.Logger
	opt    *astexpr.Options
	draw   bool
	check  bool
}

// runFile evaluates a file line by line. A line is an expression optionally
// prefixed by a LONG or DOUBLE keyword; blank lines and lines starting with
// '#' are skipped.
func (a *app) runFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ok := true
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dtype := a.cfg.DType
		if rest, found := strings.CutPrefix(line, "LONG"); found {
			dtype, line = "LONG", rest
		} else if rest, found := strings.CutPrefix(line, "DOUBLE"); found {
			dtype, line = "DOUBLE", rest
		}

		if !a.runLine(dtype, strings.TrimSpace(line)) {
			a.logger.Error().Int("line", n).Msg("expression failed")
			ok = false
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if !ok {
		os.Exit(1)
	}

	return nil
}

// runLine builds and evaluates (or draws) one expression.
func (a *app) runLine(dtypeName, expr string) bool {
	tree := astexpr.NewWithOptions(a.opt)
	defer tree.Destroy()

	var dtype astexpr.DataType
	switch strings.ToUpper(dtypeName) {
	case "LONG":
		dtype = astexpr.Long
	case "DOUBLE":
		dtype = astexpr.Double
	default:
		a.logger.Error().Str("dtype", dtypeName).Msg("unsupported data type")
		return false
	}

	if err := tree.Build(expr, dtype); err != nil {
		tree.Perror(os.Stderr, "Error:")
		return false
	}

	if a.check {
		for _, issue := range tree.Validate() {
			a.logger.Warn().Str("code", issue.Code).Str("path", issue.Path).Msg(issue.Message)
		}
	}

	if a.draw {
		if err := tree.Fprint(os.Stdout); err != nil {
			a.logger.Error().Err(err).Msg("failed to draw tree")
			return false
		}
		return true
	}

	fmt.Printf("Expression: %q\n", expr)
	if dtype == astexpr.Long {
		res, err := tree.EvalLong(a.cfg.Long)
		if err != nil {
			tree.Perror(os.Stderr, "Error:")
			return false
		}
		fmt.Printf("Result: %d\n", res)
	} else {
		res, err := tree.EvalDouble(a.cfg.Double)
		if err != nil {
			tree.Perror(os.Stderr, "Error:")
			return false
		}
		fmt.Printf("Result: %g\n", res)
	}

	if n := tree.NumVars(); n > 0 {
		a.logger.Debug().Int("distinct", n).Ints64("indices", tree.Vars()).Msg("variables used")
	}

	return true
}
