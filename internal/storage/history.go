package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Change is one applied zone color
type Change struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	Zone       string    `json:"zone"`
	Background string    `json:"background"`
	Foreground string    `json:"foreground"`
	Saved      bool      `json:"saved"`
}

// ChangeLog appends applied changes to a JSON-lines file
type ChangeLog struct {
	path   string
	logger *log.Logger
	now    func() time.Time
}

// NewChangeLog creates a change log writing to path
func NewChangeLog(path string) *ChangeLog {
	return &ChangeLog{
		path:   path,
		logger: log.New(os.Stderr),
		now:    time.Now,
	}
}

// SetLogger replaces the change log's logger
func (cl *ChangeLog) SetLogger(logger *log.Logger) {
	cl.logger = logger
}

// Path returns the backing file
func (cl *ChangeLog) Path() string {
	return cl.path
}

// Record appends a change and returns it with its generated id
func (cl *ChangeLog) Record(zone, background, foreground string, saved bool) (Change, error) {
	change := Change{
		ID:         uuid.NewString(),
		Time:       cl.now(),
		Zone:       zone,
		Background: background,
		Foreground: foreground,
		Saved:      saved,
	}

	data, err := json.Marshal(change)
	if err != nil {
		return Change{}, fmt.Errorf("failed to marshal change: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cl.path), 0700); err != nil {
		return Change{}, fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(cl.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return Change{}, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return Change{}, fmt.Errorf("failed to write history entry: %w", err)
	}

	cl.logger.Debug("Recorded change", "id", change.ID, "zone", zone, "background", background)
	return change, nil
}

// List returns up to limit changes, newest first. limit <= 0 returns all.
// Lines that fail to parse are skipped.
func (cl *ChangeLog) List(limit int) ([]Change, error) {
	f, err := os.Open(cl.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	var changes []Change
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var c Change
		if err := json.Unmarshal(line, &c); err != nil {
			cl.logger.Warn("Skipping corrupt history entry", "error", err)
			continue
		}
		changes = append(changes, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	// Newest first
	for i, j := 0, len(changes)-1; i < j; i, j = i+1, j-1 {
		changes[i], changes[j] = changes[j], changes[i]
	}

	if limit > 0 && len(changes) > limit {
		changes = changes[:limit]
	}
	return changes, nil
}

// Clear removes the history file
func (cl *ChangeLog) Clear() error {
	if err := os.Remove(cl.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
