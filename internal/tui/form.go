package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/maskedit/internal/field"
)

// Form lays out a column of labeled masked fields and routes key
// events to the focused one. Focused fields reveal their optional
// placeholders; unfocused fields hide them.
type Form struct {
	title  string
	fields []*field.Field
	focus  int
}

// NewForm creates a form over the given fields. The first field takes
// focus.
func NewForm(title string, fields []*field.Field) *Form {
	f := &Form{title: title, fields: fields}
	f.applyFocus()
	return f
}

// Focused returns the field holding focus, or nil for an empty form.
func (f *Form) Focused() *field.Field {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus]
}

// Run drives the event loop until the user quits with Escape or
// Ctrl+C.
func (f *Form) Run(s *Screen) error {
	for {
		f.render(s)

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Clear()

		case *tcell.EventPaste:
			// Paste arrives as individual rune events between the
			// start and end markers; nothing to do here.

		case *tcell.EventKey:
			if f.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey processes one key event. It returns true on quit.
func (f *Form) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true

	case tcell.KeyTab, tcell.KeyDown, tcell.KeyEnter:
		f.moveFocus(1)

	case tcell.KeyBacktab, tcell.KeyUp:
		f.moveFocus(-1)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if fld := f.Focused(); fld != nil {
			fld.Backspace()
		}

	case tcell.KeyCtrlU:
		if fld := f.Focused(); fld != nil {
			fld.Clear()
		}

	case tcell.KeyRune:
		if fld := f.Focused(); fld != nil {
			fld.InsertRune(ev.Rune())
		}
	}
	return false
}

// moveFocus shifts focus by delta with wraparound.
func (f *Form) moveFocus(delta int) {
	if len(f.fields) == 0 {
		return
	}
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.applyFocus()
}

// applyFocus reveals optional placeholders on the focused field only.
func (f *Form) applyFocus() {
	for i, fld := range f.fields {
		fld.SetShowOptional(i == f.focus)
	}
}

// labelWidth returns the widest label, for column alignment.
func (f *Form) labelWidth() int {
	w := 0
	for _, fld := range f.fields {
		if n := len([]rune(fld.Label())); n > w {
			w = n
		}
	}
	return w
}

// render paints the form.
func (f *Form) render(s *Screen) {
	base := tcell.StyleDefault
	titleStyle := base.Bold(true)
	labelStyle := base.Foreground(tcell.ColorGray)
	focusStyle := base.Bold(true)
	okStyle := base.Foreground(tcell.ColorGreen)
	helpStyle := base.Foreground(tcell.ColorGray)

	s.Clear()
	s.SetText(2, 1, f.title, titleStyle)

	labelW := f.labelWidth()
	row := 3
	var cursorX, cursorY int
	cursorVisible := false

	for i, fld := range f.fields {
		label := fld.Label()
		s.SetText(2, row, label, labelStyle)

		style := base
		if i == f.focus {
			style = focusStyle
		}
		displayX := 2 + labelW + 2
		display := fld.Display()
		s.SetText(displayX, row, display, style)

		if fld.Complete() {
			s.SetText(displayX+len([]rune(display))+2, row, "ok", okStyle)
		}

		if i == f.focus {
			cursorX = displayX + fld.Caret()
			cursorY = row
			cursorVisible = true
		}
		row += 2
	}

	s.SetText(2, row+1, "tab: next field  backspace: delete  ctrl+u: clear  esc: quit", helpStyle)

	if cursorVisible {
		s.ShowCursor(cursorX, cursorY)
	} else {
		s.HideCursor()
	}
	s.Show()
}
