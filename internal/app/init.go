package app

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/john/tinter/internal/storage"
	"github.com/john/tinter/internal/ui/components"
)

const defaultSketchName = "sketch.pde"

// Init starts the program
func (m *Model) Init() tea.Cmd {
	m.logger.Info("Starting tinter",
		"theme", m.themes.GetCurrentTheme().Name,
		"preferences", m.storage.Preferences.Path(),
		"debugger", m.armed,
	)

	m.console.Printf("Loaded %s", m.sketchName)
	if keys := m.storage.Preferences.Keys(); len(keys) > 0 {
		m.console.Printf("Restored %d saved color preference(s)", len(keys))
	}

	return tea.Batch(
		tea.SetWindowTitle("tinter · "+m.sketchName),
		m.drainPending(),
	)
}

// loadSketch picks the code shown in the editor: explicit options first,
// then the sketch file from config, then the bundled sketch
func loadSketch(opts Options, cfg *storage.Config, logger *log.Logger) (string, string) {
	if opts.Sketch != "" {
		name := opts.SketchName
		if name == "" {
			name = defaultSketchName
		}
		return name, opts.Sketch
	}

	if cfg.SketchFile != "" {
		data, err := os.ReadFile(cfg.SketchFile)
		if err == nil {
			return filepath.Base(cfg.SketchFile), string(data)
		}
		logger.Warn("Failed to read sketch, using the bundled one", "path", cfg.SketchFile, "error", err)
	}

	return defaultSketchName, components.DefaultSketch
}

// drainPending returns every queued command as one batch
func (m *Model) drainPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
