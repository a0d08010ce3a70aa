package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio-gallery-service/internal/core/viewer"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Category key.Binding
	Year     key.Binding
	Clear    key.Binding
	Quit     key.Binding

	Close       key.Binding
	PrevImage   key.Binding
	NextImage   key.Binding
	PrevProject key.Binding
	NextProject key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Category: key.NewBinding(
			key.WithKeys("c", "tab"),
			key.WithHelp("c", "category"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
		Clear: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		PrevImage: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev image"),
		),
		NextImage: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next image"),
		),
		PrevProject: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("⇧←", "prev project"),
		),
		NextProject: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("⇧→", "next project"),
		),
	}
}

func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Category, k.Year, k.Clear, k.Quit}
}

func (k keyMap) modalHelp() []key.Binding {
	return []key.Binding{k.Close, k.PrevImage, k.NextImage, k.PrevProject, k.NextProject, k.Quit}
}

// viewerEvent maps a terminal key onto the viewer's keyboard contract.
func (k keyMap) viewerEvent(msg tea.KeyMsg) (viewer.KeyEvent, bool) {
	switch {
	case key.Matches(msg, k.Close):
		return viewer.KeyEvent{Key: viewer.KeyEscape}, true
	case key.Matches(msg, k.PrevProject):
		return viewer.KeyEvent{Key: viewer.KeyArrowLeft, Shift: true}, true
	case key.Matches(msg, k.NextProject):
		return viewer.KeyEvent{Key: viewer.KeyArrowRight, Shift: true}, true
	case key.Matches(msg, k.PrevImage):
		return viewer.KeyEvent{Key: viewer.KeyArrowLeft}, true
	case key.Matches(msg, k.NextImage):
		return viewer.KeyEvent{Key: viewer.KeyArrowRight}, true
	}
	return viewer.KeyEvent{}, false
}
