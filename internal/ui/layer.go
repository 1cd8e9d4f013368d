// Package ui provides a minimal modal layer stack for overlays like
// inventories and prompts. The stack exclusively owns its layers and all
// transitions are explicit Push/Pop calls.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EventResult tells the stack what a layer did with a key event.
type EventResult int

const (
	// Ignored: the event was not for this layer.
	Ignored EventResult = iota
	// Consumed: the layer handled the event and stays active.
	Consumed
	// Done: the layer is finished and should be popped.
	Done
)

// Layer is one modal overlay. Only the top layer receives input; every
// layer in the stack is drawn, bottom first.
type Layer interface {
	HandleKey(key ebiten.Key) EventResult
	Draw(screen *ebiten.Image)
}

// Stack owns the active layers.
type Stack struct {
	layers []Layer
}

// Push makes l the active (topmost) layer.
func (s *Stack) Push(l Layer) {
	s.layers = append(s.layers, l)
}

// Pop removes and returns the topmost layer, or nil when empty.
func (s *Stack) Pop() Layer {
	if len(s.layers) == 0 {
		return nil
	}
	top := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	return top
}

// Top returns the active layer without removing it.
func (s *Stack) Top() Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// Active reports whether any layer is open.
func (s *Stack) Active() bool { return len(s.layers) > 0 }

// Len returns the number of open layers.
func (s *Stack) Len() int { return len(s.layers) }

// HandleKey routes a key to the top layer and pops it when it reports
// Done. Returns true when the event was taken by a layer.
func (s *Stack) HandleKey(key ebiten.Key) bool {
	top := s.Top()
	if top == nil {
		return false
	}
	switch top.HandleKey(key) {
	case Done:
		s.Pop()
		return true
	case Consumed:
		return true
	default:
		return false
	}
}

// Draw renders every open layer, bottom first.
func (s *Stack) Draw(screen *ebiten.Image) {
	for _, l := range s.layers {
		l.Draw(screen)
	}
}
