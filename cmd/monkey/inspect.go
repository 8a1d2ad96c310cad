package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/letung3105/monkey/internal/config"
	"github.com/letung3105/monkey/internal/monkey"
)

func tokensCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "print the tokens of a source file",
		ArgsUsage: "[FILE|-]",
		Action: func(c *cli.Context) error {
			source, err := readSource(c.App.Reader, c.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), exitIOError)
			}

			table := tablewriter.NewWriter(c.App.Writer)
			table.SetHeader([]string{"#", "Type", "Literal"})
			table.SetAutoFormatHeaders(false)
			for i, tok := range monkey.Tokenize(source) {
				table.Append([]string{fmt.Sprint(i), string(tok.Type), tok.String()})
			}
			table.Render()
			return nil
		},
	}
}

func astCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "print the syntax tree of a source file",
		ArgsUsage: "[FILE|-]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the Go structure of the tree",
			},
		},
		Action: func(c *cli.Context) error {
			source, err := readSource(c.App.Reader, c.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), exitIOError)
			}
			program, err := monkey.Parse(source)
			if err != nil {
				monkey.NewSimpleReporter(c.App.ErrWriter, cfg.Color).Report(err)
				return cli.Exit("", exitParseError)
			}

			if c.Bool("dump") {
				dumper := spew.ConfigState{
					Indent:                  "  ",
					DisablePointerAddresses: true,
					DisableCapacities:       true,
					DisableMethods:          true,
				}
				dumper.Fdump(c.App.Writer, program)
				return nil
			}
			if len(program.Statements) > 0 {
				fmt.Fprintln(c.App.Writer, program)
			}
			return nil
		},
	}
}

// readSource reads the file at path, or stdin when path is empty or "-".
func readSource(stdin io.Reader, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}
