// Package repl implements the interactive read-eval-print loop of the monkey
// shell.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/letung3105/monkey/internal/config"
	"github.com/letung3105/monkey/internal/monkey"
)

// REPL evaluates lines against one long-lived environment so that bindings
// persist between lines.
type REPL struct {
	cfg      config.Config
	env      *monkey.Environment
	reporter monkey.Reporter
	out      io.Writer
}

// New creates a REPL printing results to out and errors to errOut.
func New(cfg config.Config, out, errOut io.Writer) *REPL {
	return &REPL{
		cfg:      cfg,
		env:      monkey.NewEnvironment(),
		reporter: monkey.NewSimpleReporter(errOut, cfg.Color),
		out:      out,
	}
}

// Run reads lines from the terminal until end of input or a quit command.
func (r *REPL) Run() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	r.readHistory(ln)
	defer r.writeHistory(ln)

	for {
		line, err := ln.Prompt(r.cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading line")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := r.Eval(line); quit {
			return nil
		}
	}
}

// Eval handles a single line of input: either a shell command starting with
// ':' or Monkey source. It reports whether the shell should exit.
func (r *REPL) Eval(line string) bool {
	defer r.reporter.Reset()

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		return r.command(trimmed)
	}

	val := monkey.Run(line, r.env, r.reporter)
	if val != nil {
		fmt.Fprintln(r.out, val.Inspect())
	}
	return false
}

func (r *REPL) command(cmd string) bool {
	switch cmd {
	case ":quit", ":exit":
		return true
	case ":env":
		for _, name := range r.env.Names() {
			val, _ := r.env.Get(name)
			fmt.Fprintf(r.out, "%s = %s\n", name, val.Inspect())
		}
	default:
		r.reporter.Report(errors.Errorf("unknown command %s", cmd))
	}
	return false
}

func (r *REPL) readHistory(ln *liner.State) {
	if r.cfg.HistoryFile == "" {
		return
	}
	f, err := os.Open(r.cfg.HistoryFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Unable to open history %s: %v", r.cfg.HistoryFile, err)
		}
		return
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil {
		log.Warnf("Unable to read history %s: %v", r.cfg.HistoryFile, err)
	}
}

func (r *REPL) writeHistory(ln *liner.State) {
	if r.cfg.HistoryFile == "" {
		return
	}
	f, err := os.Create(r.cfg.HistoryFile)
	if err != nil {
		log.Warnf("Unable to create history %s: %v", r.cfg.HistoryFile, err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Warnf("Unable to write history %s: %v", r.cfg.HistoryFile, err)
	}
}
