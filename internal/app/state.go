package app

// AppState represents the different states the application can be in
type AppState int

const (
	StateEditing AppState = iota
	StatePickingZone
	StatePickingColor
	StateHelp
	StateShutdown
)

// String returns the string representation of AppState
func (s AppState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StatePickingZone:
		return "picking-zone"
	case StatePickingColor:
		return "picking-color"
	case StateHelp:
		return "help"
	case StateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// StateManager manages state transitions and validation
type StateManager struct {
	current    AppState
	previous   AppState
	history    []AppState
	maxHistory int
}

// NewStateManager creates a new state manager
func NewStateManager() *StateManager {
	return &StateManager{
		current:    StateEditing,
		previous:   StateEditing,
		history:    make([]AppState, 0),
		maxHistory: 10,
	}
}

// Current returns the current state
func (sm *StateManager) Current() AppState {
	return sm.current
}

// Previous returns the previous state
func (sm *StateManager) Previous() AppState {
	return sm.previous
}

// Picking reports whether the theme picker is open
func (sm *StateManager) Picking() bool {
	return sm.current == StatePickingZone || sm.current == StatePickingColor
}

// CanTransition checks if a transition is valid
func (sm *StateManager) CanTransition(to AppState) bool {
	if to == StateShutdown {
		return sm.current != StateShutdown
	}

	switch sm.current {
	case StateEditing:
		return to == StatePickingZone || to == StateHelp
	case StatePickingZone:
		return to == StatePickingColor || to == StateEditing
	case StatePickingColor:
		return to == StateEditing
	case StateHelp:
		return to == StateEditing
	default:
		return false
	}
}

// Transition changes the current state
func (sm *StateManager) Transition(to AppState) bool {
	if !sm.CanTransition(to) {
		return false
	}

	sm.previous = sm.current
	sm.current = to

	sm.history = append(sm.history, sm.previous)
	if len(sm.history) > sm.maxHistory {
		sm.history = sm.history[1:]
	}

	return true
}

// Back transitions to the previous state if possible
func (sm *StateManager) Back() bool {
	if len(sm.history) == 0 || sm.current == StateShutdown {
		return false
	}

	target := sm.history[len(sm.history)-1]
	sm.previous = sm.current
	sm.current = target
	sm.history = sm.history[:len(sm.history)-1]
	return true
}
