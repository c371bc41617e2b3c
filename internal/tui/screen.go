// Package tui renders a form of masked input fields in the terminal
// and routes key events into them.
package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps a tcell screen with the small surface the form needs.
type Screen struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewScreen creates a terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// Init initializes the terminal.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnablePaste()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}

// Clear erases the screen buffer.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()
}

// Show flushes the buffer to the terminal.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Show()
}

// ShowCursor places the hardware cursor.
func (s *Screen) ShowCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (s *Screen) HideCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.HideCursor()
}

// SetText draws a string starting at (x, y).
func (s *Screen) SetText(x, y int, text string, style tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}
