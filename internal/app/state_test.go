package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateManager_PickerFlow(t *testing.T) {
	sm := NewStateManager()
	assert.Equal(t, StateEditing, sm.Current())

	assert.True(t, sm.Transition(StatePickingZone))
	assert.True(t, sm.Picking())
	assert.True(t, sm.Transition(StatePickingColor))
	assert.True(t, sm.Picking())
	assert.True(t, sm.Transition(StateEditing))
	assert.False(t, sm.Picking())
	assert.Equal(t, StatePickingColor, sm.Previous())
}

func TestStateManager_InvalidTransitions(t *testing.T) {
	sm := NewStateManager()

	assert.False(t, sm.Transition(StatePickingColor))
	assert.False(t, sm.Transition(StateEditing))

	sm.Transition(StateHelp)
	assert.False(t, sm.Transition(StatePickingZone))
	assert.Equal(t, StateHelp, sm.Current())
}

func TestStateManager_ShutdownIsTerminal(t *testing.T) {
	sm := NewStateManager()
	sm.Transition(StatePickingZone)

	assert.True(t, sm.Transition(StateShutdown))
	assert.False(t, sm.Transition(StateEditing))
	assert.False(t, sm.Transition(StateShutdown))
	assert.False(t, sm.Back())
}

func TestStateManager_Back(t *testing.T) {
	sm := NewStateManager()
	assert.False(t, sm.Back())

	sm.Transition(StateHelp)
	assert.True(t, sm.Back())
	assert.Equal(t, StateEditing, sm.Current())
	assert.Equal(t, StateHelp, sm.Previous())

	assert.False(t, sm.Back())
}

func TestAppState_String(t *testing.T) {
	assert.Equal(t, "editing", StateEditing.String())
	assert.Equal(t, "picking-zone", StatePickingZone.String())
	assert.Equal(t, "picking-color", StatePickingColor.String())
	assert.Equal(t, "help", StateHelp.String())
	assert.Equal(t, "shutdown", StateShutdown.String())
	assert.Equal(t, "unknown", AppState(42).String())
}
