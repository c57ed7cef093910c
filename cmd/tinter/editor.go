package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/john/tinter/internal/app"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			MarginBottom(1)
)

const banner = `
▀█▀ █ █▄ █ ▀█▀ █▀▀ █▀█
 █  █ █ ▀█  █  ██▄ █▀▄
`

// runEditor opens the editor. Logs go to the configured log file so they
// do not draw over the alt screen.
func runEditor(stderr io.Writer) int {
	fmt.Fprint(stderr, titleStyle.Render("tinter - zone colors for your editor"))
	fmt.Fprint(stderr, bannerStyle.Render(banner))
	fmt.Fprintln(stderr)

	st, logger, err := openStorage(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tinter: %v\n", err)
		return 1
	}

	logFile, err := os.OpenFile(st.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		logger.Warn("Failed to open log file, logging disabled", "path", st.Config.LogFile, "error", err)
		logger.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
		logger.SetOutput(logFile)
		logger.SetReportTimestamp(true)
	}

	model := app.New(app.Options{Storage: st, Logger: logger})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		log.Error("Error running application", "error", err)
		return 1
	}
	return 0
}
