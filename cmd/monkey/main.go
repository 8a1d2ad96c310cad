package main

// This is an interpreter for the Monkey programming language written in Go.

import (
	"io"
	"os"

	"fortio.org/log"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/letung3105/monkey/internal/config"
	"github.com/letung3105/monkey/internal/monkey"
	"github.com/letung3105/monkey/internal/repl"
)

// Exit statuses of the run command.
const (
	exitIOError      = 1
	exitParseError   = 65
	exitRuntimeError = 70
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Errf("%v", err)
		os.Exit(exitIOError)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	var cfg config.Config
	return &cli.App{
		Name:      "monkey",
		Usage:     "run and inspect Monkey programs",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "load shell settings from `FILE`",
				EnvVars: []string{"MONKEY_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "colour error messages (use --color=false to disable)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "trace evaluation",
			},
		},
		Before: func(c *cli.Context) error {
			loaded, err := config.Load(c.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), exitIOError)
			}
			if c.IsSet("color") {
				loaded.Color = c.Bool("color")
			} else if color.NoColor {
				loaded.Color = false
			}
			if c.IsSet("verbose") {
				loaded.Verbose = c.Bool("verbose")
			}
			if loaded.Verbose {
				log.SetLogLevel(log.Verbose)
			} else {
				log.SetLogLevel(log.Warning)
			}
			cfg = loaded
			return nil
		},
		Action: func(c *cli.Context) error {
			return startREPL(c, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "repl",
				Usage: "start an interactive session",
				Action: func(c *cli.Context) error {
					return startREPL(c, cfg)
				},
			},
			{
				Name:      "run",
				Usage:     "evaluate a script and print its value",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					return runFile(c, cfg)
				},
			},
			tokensCommand(),
			astCommand(&cfg),
		},
	}
}

func startREPL(c *cli.Context, cfg config.Config) error {
	return repl.New(cfg, c.App.Writer, c.App.ErrWriter).Run()
}

// runFile evaluates a script. Parse errors exit with 65 and runtime errors
// with 70.
func runFile(c *cli.Context, cfg config.Config) error {
	if c.NArg() != 1 {
		return cli.Exit("Usage: monkey run FILE", exitIOError)
	}
	source, err := readSource(c.App.Reader, c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), exitIOError)
	}

	reporter := monkey.NewSimpleReporter(c.App.ErrWriter, cfg.Color)
	val := monkey.Run(source, monkey.NewEnvironment(), reporter)
	if reporter.HadError() {
		return cli.Exit("", exitParseError)
	}
	if reporter.HadRuntimeError() {
		return cli.Exit("", exitRuntimeError)
	}
	if val != monkey.NULL_OBJ {
		_, err = io.WriteString(c.App.Writer, val.Inspect()+"\n")
	}
	return err
}
