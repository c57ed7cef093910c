package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/john/tinter/internal/app"
	"github.com/john/tinter/internal/recolor"
	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/components"
)

const previewRows = 24

func runApply(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(stderr)
	zoneFlag := fs.String("zone", "", "Zone to recolor: outer, inner, console")
	colorFlag := fs.String("color", "", "Color as #rrggbb or #rgb")
	previewFlag := fs.Bool("preview", false, "Print the recolored editor")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	zone, err := recolor.ParseZone(*zoneFlag)
	if err != nil {
		fmt.Fprintf(stderr, "tinter: %v\n", err)
		return 2
	}
	c, err := color.ParseHex(*colorFlag)
	if err != nil {
		fmt.Fprintf(stderr, "tinter: %v\n", err)
		return 2
	}

	st, logger, err := openStorage(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tinter: %v\n", err)
		return 1
	}

	m := app.New(app.Options{Storage: st, Logger: logger})
	result := m.Apply(zone, c)
	printResult(stdout, result)

	if *previewFlag {
		fmt.Fprintln(stdout, m.Render(termWidth(stdout), previewRows))
	}

	if !result.Saved() {
		fmt.Fprintf(stderr, "tinter: %v\n", result.SaveErr)
		return 1
	}
	fmt.Fprintf(stdout, "saved to %s\n", st.Preferences.Path())
	return 0
}

func runPick(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(stderr)
	accessible := fs.Bool("accessible", false, "Use plain prompts instead of the interactive forms")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	st, logger, err := openStorage(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tinter: %v\n", err)
		return 1
	}

	m := app.New(app.Options{Storage: st, Logger: logger})
	result, ok := m.RunPicker(components.FormDialog{Accessible: *accessible})
	if !ok {
		fmt.Fprintln(stdout, "No changes made")
		return 0
	}

	printResult(stdout, result)
	if !result.Saved() {
		return 1
	}
	return 0
}

func runHistory(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(stderr)
	limit := fs.Int("n", 20, "Number of entries to show, 0 for all")
	clearFlag := fs.Bool("clear", false, "Delete the history")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	st, _, err := openStorage(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tinter: %v\n", err)
		return 1
	}
	if st.History == nil {
		fmt.Fprintln(stdout, "History is disabled")
		return 0
	}

	if *clearFlag {
		if err := st.History.Clear(); err != nil {
			fmt.Fprintf(stderr, "tinter: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "History cleared")
		return 0
	}

	changes, err := st.History.List(*limit)
	if err != nil {
		fmt.Fprintf(stderr, "tinter: %v\n", err)
		return 1
	}
	if len(changes) == 0 {
		fmt.Fprintln(stdout, "No colors applied yet")
		return 0
	}

	now := time.Now()
	for _, c := range changes {
		line := fmt.Sprintf("%-8s %s on %s  %s", c.Zone, c.Foreground, c.Background, humanize.RelTime(c.Time, now, "ago", "from now"))
		if !c.Saved {
			line += "  (not saved)"
		}
		fmt.Fprintln(stdout, line)
	}
	return 0
}

func runZones(stdout io.Writer) int {
	for _, z := range recolor.Zones() {
		fmt.Fprintf(stdout, "%-8s %s\n", z.Short(), z)
	}
	return 0
}

func printResult(w io.Writer, r recolor.Result) {
	fmt.Fprintf(w, "%s set to %s (text %s, contrast %.1f:1)\n",
		r.Zone, r.Background.Hex(), r.Foreground.Hex(), color.ContrastRatio(r.Foreground, r.Background))
	fmt.Fprintf(w, "painted %d, protected %d\n", r.Stats.Painted, r.Stats.Excluded)
}
