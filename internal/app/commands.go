package app

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/john/tinter/internal/ui/components"
)

// Binding is a key command available while editing
type Binding struct {
	Name        string
	Keys        []string
	Description string
	Group       string
	Handler     func(m *Model) tea.Cmd
}

// KeyRegistry holds all key bindings
type KeyRegistry struct {
	bindings map[string]*Binding
	keys     map[string]string
	order    []string
}

// NewKeyRegistry creates a new registry with the built-in bindings
func NewKeyRegistry() *KeyRegistry {
	registry := &KeyRegistry{
		bindings: make(map[string]*Binding),
		keys:     make(map[string]string),
	}

	registry.registerBuiltinBindings()

	return registry
}

func (kr *KeyRegistry) registerBuiltinBindings() {
	bindings := []*Binding{
		{
			Name:        "customize",
			Keys:        []string{"t"},
			Description: "Customize a zone color",
			Group:       "Theme",
			Handler:     pressHandler(components.ButtonTheme, components.Modifiers{}),
		},
		{
			Name:        "next-theme",
			Keys:        []string{"T"},
			Description: "Switch to the next base theme",
			Group:       "Theme",
			Handler:     (*Model).cycleTheme,
		},
		{
			Name:        "reset",
			Keys:        []string{"x"},
			Description: "Reset every zone to the base theme",
			Group:       "Theme",
			Handler:     (*Model).resetZones,
		},
		{
			Name:        "copy",
			Keys:        []string{"y"},
			Description: "Copy the last applied color",
			Group:       "Theme",
			Handler:     (*Model).copyLastColor,
		},
		{
			Name:        "refresh",
			Keys:        []string{"ctrl+r"},
			Description: "Refresh the look and feel",
			Group:       "Theme",
			Handler:     (*Model).refreshLookAndFeel,
		},
		{
			Name:        "run",
			Keys:        []string{"r"},
			Description: "Run the sketch",
			Group:       "Sketch",
			Handler:     pressHandler(components.ButtonRun, components.Modifiers{}),
		},
		{
			Name:        "present",
			Keys:        []string{"R"},
			Description: "Present the sketch",
			Group:       "Sketch",
			Handler:     pressHandler(components.ButtonRun, components.Modifiers{Shift: true}),
		},
		{
			Name:        "stop",
			Keys:        []string{"s"},
			Description: "Stop the sketch",
			Group:       "Sketch",
			Handler:     pressHandler(components.ButtonStop, components.Modifiers{}),
		},
		{
			Name:        "debug",
			Keys:        []string{"d"},
			Description: "Arm or disarm the debugger",
			Group:       "Debugger",
			Handler:     pressHandler(components.ButtonDebug, components.Modifiers{}),
		},
		{
			Name:        "step",
			Keys:        []string{"n"},
			Description: "Step over",
			Group:       "Debugger",
			Handler:     pressHandler(components.ButtonStep, components.Modifiers{}),
		},
		{
			Name:        "step-into",
			Keys:        []string{"N"},
			Description: "Step into",
			Group:       "Debugger",
			Handler:     pressHandler(components.ButtonStep, components.Modifiers{Shift: true}),
		},
		{
			Name:        "step-out",
			Keys:        []string{"alt+n"},
			Description: "Step out",
			Group:       "Debugger",
			Handler:     pressHandler(components.ButtonStep, components.Modifiers{Alt: true}),
		},
		{
			Name:        "continue",
			Keys:        []string{"c"},
			Description: "Continue",
			Group:       "Debugger",
			Handler:     pressHandler(components.ButtonContinue, components.Modifiers{}),
		},
		{
			Name:        "scroll",
			Keys:        []string{"up", "down", "pgup", "pgdown", "home", "end"},
			Description: "Scroll the console",
			Group:       "General",
		},
		{
			Name:        "help",
			Keys:        []string{"?"},
			Description: "Show this help",
			Group:       "General",
			Handler:     (*Model).openHelp,
		},
		{
			Name:        "quit",
			Keys:        []string{"q", "ctrl+c"},
			Description: "Quit",
			Group:       "General",
			Handler:     (*Model).quit,
		},
	}

	for _, b := range bindings {
		kr.Register(b)
	}
}

// Register adds a binding, replacing any binding that owned the same keys
func (kr *KeyRegistry) Register(b *Binding) {
	if _, exists := kr.bindings[b.Name]; !exists {
		kr.order = append(kr.order, b.Name)
	}
	kr.bindings[b.Name] = b
	for _, key := range b.Keys {
		kr.keys[key] = b.Name
	}
}

// Lookup returns the binding for a key press
func (kr *KeyRegistry) Lookup(key string) (*Binding, bool) {
	name, exists := kr.keys[key]
	if !exists {
		return nil, false
	}
	return kr.Get(name)
}

// Get returns a binding by name
func (kr *KeyRegistry) Get(name string) (*Binding, bool) {
	b, exists := kr.bindings[name]
	return b, exists
}

// List returns bindings in registration order
func (kr *KeyRegistry) List() []*Binding {
	list := make([]*Binding, 0, len(kr.order))
	for _, name := range kr.order {
		list = append(list, kr.bindings[name])
	}
	return list
}

// HelpMarkdown renders the bindings as one table per group
func (kr *KeyRegistry) HelpMarkdown() string {
	groups := make(map[string][]*Binding)
	var names []string
	for _, b := range kr.List() {
		if _, seen := groups[b.Group]; !seen {
			names = append(names, b.Group)
		}
		groups[b.Group] = append(groups[b.Group], b)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return groupRank(names[i]) < groupRank(names[j])
	})

	var sb strings.Builder
	sb.WriteString("# tinter\n\n")
	sb.WriteString("Zone colors are saved to your preferences and restored on start.\n")
	for _, group := range names {
		sb.WriteString("\n## " + group + "\n\n")
		sb.WriteString("| Key | Action |\n|---|---|\n")
		for _, b := range groups[group] {
			keys := make([]string, len(b.Keys))
			for i, k := range b.Keys {
				keys[i] = "`" + k + "`"
			}
			sb.WriteString("| " + strings.Join(keys, " ") + " | " + b.Description + " |\n")
		}
	}
	return sb.String()
}

func groupRank(group string) int {
	switch group {
	case "Theme":
		return 0
	case "Sketch":
		return 1
	case "Debugger":
		return 2
	default:
		return 3
	}
}

func pressHandler(id components.ButtonID, mods components.Modifiers) func(m *Model) tea.Cmd {
	return func(m *Model) tea.Cmd {
		return m.pressButton(id, mods)
	}
}
