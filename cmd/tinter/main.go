// tinter is a terminal editor shell whose outer chrome, coding area and
// console can each be recolored at run time.
//
// Usage:
//
//	tinter                               open the editor
//	tinter apply --zone console --color '#141414'
//	tinter pick                          choose a zone and color in dialogs
//	tinter history [-n 20] [--clear]     list applied colors
//	tinter zones                         list zone names
//
// Without a terminal on stdout the editor is not started and usage is
// printed instead.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/john/tinter/internal/storage"
)

const usage = `Usage:
  tinter                                   open the editor
  tinter apply --zone <zone> --color <hex> recolor a zone and save it
  tinter pick [--accessible]               choose a zone and color in dialogs
  tinter history [-n <count>] [--clear]    list applied colors
  tinter zones                             list zone names

Zones: outer, inner, console
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		if !isTTYWriter(stdout) {
			fmt.Fprint(stdout, usage)
			return 0
		}
		return runEditor(stderr)
	}

	switch args[0] {
	case "apply":
		return runApply(args[1:], stdout, stderr)
	case "pick":
		return runPick(args[1:], stdout, stderr)
	case "history":
		return runHistory(args[1:], stdout, stderr)
	case "zones":
		return runZones(stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "tinter: unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

// isTTYWriter reports whether w is a terminal
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width of w, defaulting to 80
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

// openStorage loads storage with its logs going to w at the configured level
func openStorage(w io.Writer) (*storage.Storage, *log.Logger, error) {
	st, err := storage.New()
	if err != nil {
		return nil, nil, err
	}

	logger := log.New(w)
	if level, err := log.ParseLevel(st.Config.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	st.SetLogger(logger)

	if err := st.Initialize(); err != nil {
		return nil, nil, err
	}
	return st, logger, nil
}
