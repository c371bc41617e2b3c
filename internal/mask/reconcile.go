package mask

import "unicode/utf8"

// Edit is one update event reported by a text-input source. Old is the
// display text before the edit as the source saw it, New is the text
// the source reports now, Expected is the display text the engine last
// wrote to the field, and Raw is the current raw value.
type Edit struct {
	Old      string
	New      string
	Expected string
	Raw      string
}

// Result is the reconciled state after an edit: the new authoritative
// raw value, the display text to show, and the rune offset at which to
// place the caret.
type Result struct {
	Raw     string
	Display string
	Cursor  int
}

// Reconcile derives a trustworthy raw value from a possibly-unreliable
// edit event. Soft-keyboard input methods variously report the just
// typed character, the full formatted field, or an unformatted
// accumulation of characters; Reconcile classifies the event and
// repairs it. It holds no state between calls and never fails: every
// input combination yields a usable Result.
//
// Classification, first match wins:
//
//  1. New is empty: the field was cleared.
//  2. New, Old and Expected all agree: nothing changed.
//  3. Old differs from Expected: the source's view is stale, so Raw
//     cannot be trusted either; re-derive it from New alone.
//  4. The event looks like a bare delta (New is a single character
//     while the field held more): treat it as the character typed at
//     the next slot and append it to Raw if the slot accepts it.
//  5. Otherwise re-derive raw from New; extraction is a stateless
//     function of the full display string, so this covers both growth
//     and shrinkage.
func Reconcile(m *Mask, ev Edit, showOptional bool) Result {
	if ev.New == "" {
		return Result{Raw: "", Display: "", Cursor: 0}
	}

	var raw string
	switch {
	case ev.New == ev.Old && ev.Old == ev.Expected:
		raw = ev.Raw

	case ev.Old != ev.Expected:
		raw = m.Extract(ev.New)

	case isDelta(m, ev):
		r, _ := utf8.DecodeRuneInString(ev.New)
		raw = ev.Raw
		slot := utf8.RuneCountInString(ev.Raw)
		if t, ok := m.SlotToken(slot); ok {
			if v, accepted := t.Kind.Validate(r); accepted {
				raw = ev.Raw + string(v)
			}
		}

	default:
		raw = m.Extract(ev.New)
	}

	raw = m.TrimToCapacity(raw)
	display := m.Format(raw, showOptional)
	return Result{
		Raw:     raw,
		Display: display,
		Cursor:  m.DisplayCursor(utf8.RuneCountInString(raw), display),
	}
}

// isDelta reports whether the event plausibly carries only the just
// typed character: a one-rune New against a longer prior display, with
// the raw value still short of capacity and a slot available for the
// character. Sources that send full field content never match because
// their New retains the mask's literals.
func isDelta(m *Mask, ev Edit) bool {
	if utf8.RuneCountInString(ev.New) != 1 {
		return false
	}
	if utf8.RuneCountInString(ev.Old) <= 1 {
		return false
	}
	if utf8.RuneCountInString(m.Extract(ev.New)) > 1 {
		return false
	}
	rawLen := utf8.RuneCountInString(ev.Raw)
	if capacity := m.Capacity(); capacity != Unbounded && rawLen >= capacity {
		return false
	}
	_, ok := m.SlotToken(rawLen)
	return ok
}
