package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandeepkv93/todoscreen/internal/commands"
	"github.com/sandeepkv93/todoscreen/internal/tasklist"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Replay palette commands against a fresh list and print the result",
		Long: strings.TrimSpace(`
Reads one palette command per line (add, toggle, edit, delete, clear, list)
from the script file, or from stdin when no file is given. Blank lines and
lines starting with # are skipped.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := app.logger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			deferrer := &tasklist.ManualDeferrer{}
			list := tasklist.New(
				tasklist.WithDeferrer(deferrer),
				tasklist.WithBusyDelay(cfg.BusyDelay()),
				tasklist.WithLogger(logrus.NewEntry(logger)),
			)
			r := &Runner{List: list, Deferrer: deferrer, Out: cmd.OutOrStdout(), KeepGoing: keepGoing}
			sum, err := r.Run(in)
			logger.WithFields(logrus.Fields{"commands": sum.Commands, "failed": sum.Failed}).Info("script finished")
			return err
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue after a command that cannot be parsed or applied")
	return cmd
}

var ErrScriptFailed = errors.New("cli: script had failing commands")

type Summary struct {
	Commands int
	Failed   int
}

// Runner replays palette commands one line at a time. Busy markers are
// settled after every command since there is nothing to animate.
type Runner struct {
	List      *tasklist.Controller
	Deferrer  *tasklist.ManualDeferrer
	Out       io.Writer
	KeepGoing bool

	lastSeq uint64
}

func (r *Runner) Run(in io.Reader) (Summary, error) {
	var sum Summary
	handlers := commands.ListHandlers(r.List)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sum.Commands++

		if err := r.exec(handlers, line); err != nil {
			sum.Failed++
			fmt.Fprintf(r.Out, "line %d: %v\n", lineNo, err)
			if !r.KeepGoing {
				return sum, fmt.Errorf("%w: line %d", ErrScriptFailed, lineNo)
			}
		}
		r.printNotices()
		if r.Deferrer != nil {
			r.Deferrer.Flush(r.List)
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, err
	}

	fmt.Fprintln(r.Out, "---")
	fmt.Fprintln(r.Out, commands.FormatList(r.List.ViewModel()))
	return sum, nil
}

// exec reports only parse and argument errors. Refusals from the list itself
// show up as notices.
func (r *Runner) exec(handlers commands.Handlers, line string) error {
	cmd, err := commands.Parse(line)
	if err != nil {
		return err
	}
	res, err := commands.Execute(cmd, handlers)
	if err != nil {
		if _, ok := tasklist.KindOf(err); ok {
			return nil
		}
		return err
	}
	if cmd.Type != commands.TypeAdd && cmd.Type != commands.TypeEdit {
		fmt.Fprintln(r.Out, res.Message)
	}
	return nil
}

func (r *Runner) printNotices() {
	for _, n := range r.List.Notices() {
		if n.Seq <= r.lastSeq {
			continue
		}
		r.lastSeq = n.Seq
		fmt.Fprintf(r.Out, "[%s] %s\n", n.Level, n.Body)
	}
}
