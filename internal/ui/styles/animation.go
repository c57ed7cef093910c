package styles

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringState tracks position and velocity for a spring animation
type SpringState struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
}

// AnimationManager drives named spring animations one frame at a time
type AnimationManager struct {
	springs map[string]*SpringState
	fps     int
}

// NewAnimationManager creates a new animation manager ticking at fps
func NewAnimationManager(fps int) *AnimationManager {
	if fps <= 0 {
		fps = 60
	}
	return &AnimationManager{
		springs: make(map[string]*SpringState),
		fps:     fps,
	}
}

// FPS returns the frame rate springs are stepped at
func (am *AnimationManager) FPS() int {
	return am.fps
}

// CreateSpring starts (or restarts) the spring id at from, heading to target
func (am *AnimationManager) CreateSpring(id string, from, target, frequency, damping float64) {
	am.springs[id] = &SpringState{
		spring:   harmonica.NewSpring(harmonica.FPS(am.fps), frequency, damping),
		position: from,
		target:   target,
	}
}

// Retarget changes where the spring id is heading
func (am *AnimationManager) Retarget(id string, target float64) {
	if s, ok := am.springs[id]; ok {
		s.target = target
	}
}

// Step advances the spring id by one frame and returns its position.
// Unknown springs report 0.
func (am *AnimationManager) Step(id string) float64 {
	s, ok := am.springs[id]
	if !ok {
		return 0
	}
	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
	return s.position
}

// Position returns the current position of spring id
func (am *AnimationManager) Position(id string) float64 {
	if s, ok := am.springs[id]; ok {
		return s.position
	}
	return 0
}

// Settled reports whether spring id is at rest on its target
func (am *AnimationManager) Settled(id string) bool {
	s, ok := am.springs[id]
	if !ok {
		return true
	}
	return math.Abs(s.position-s.target) < 0.01 && math.Abs(s.velocity) < 0.01
}

// Remove forgets spring id
func (am *AnimationManager) Remove(id string) {
	delete(am.springs, id)
}

// Active reports whether any spring is still moving
func (am *AnimationManager) Active() bool {
	for id := range am.springs {
		if !am.Settled(id) {
			return true
		}
	}
	return false
}
