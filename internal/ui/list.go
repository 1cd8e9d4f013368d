package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ListLayer is a simple selection list overlay.
type ListLayer struct {
	X, Y     int
	items    []string
	selected int
}

func NewListLayer(x, y int, items []string) *ListLayer {
	return &ListLayer{X: x, Y: y, items: items}
}

// Selected returns the currently highlighted item, or "" for an empty list.
func (l *ListLayer) Selected() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.selected]
}

// SelectNext moves the cursor down, stopping at the last item.
func (l *ListLayer) SelectNext() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SelectPrev moves the cursor up, stopping at the first item.
func (l *ListLayer) SelectPrev() {
	if l.selected > 0 {
		l.selected--
	}
}

func (l *ListLayer) HandleKey(key ebiten.Key) EventResult {
	switch key {
	case ebiten.KeyUp:
		l.SelectPrev()
		return Consumed
	case ebiten.KeyDown:
		l.SelectNext()
		return Consumed
	case ebiten.KeyEnter, ebiten.KeyEscape, ebiten.KeyQ:
		return Done
	default:
		return Ignored
	}
}

func (l *ListLayer) Draw(screen *ebiten.Image) {
	for i, item := range l.items {
		cursor := "  "
		if i == l.selected {
			cursor = "> "
		}
		ebitenutil.DebugPrintAt(screen, cursor+item, l.X, l.Y+i*16)
	}
}
