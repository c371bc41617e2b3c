package mask

import "strings"

// Format renders a raw value through the mask. Literals are emitted in
// place; each slot consumes the next valid raw character. Invalid raw
// characters are skipped rather than aborting the walk. An unfilled
// slot renders as the prompt character when the slot is required or
// showOptional is true; unfilled optional slots are otherwise omitted.
//
// An empty raw value yields an empty display. An empty mask returns
// raw unchanged.
func (m *Mask) Format(raw string, showOptional bool) string {
	if m.Empty() {
		return raw
	}
	if raw == "" {
		return ""
	}

	runes := []rune(raw)
	var b strings.Builder
	ri := 0
	for _, t := range m.tokens {
		if t.IsLiteral() {
			b.WriteRune(t.Ch)
			continue
		}

		// Skip raw characters the slot rejects.
		filled := false
		for ri < len(runes) {
			r, ok := t.Kind.Validate(runes[ri])
			ri++
			if ok {
				b.WriteRune(r)
				filled = true
				break
			}
		}
		if filled {
			continue
		}
		if !t.Kind.Optional() || showOptional {
			b.WriteRune(m.prompt)
		}
	}
	return b.String()
}

// Extract recovers a raw value from a display string, skipping
// literals and prompt characters. Garbled input degrades to a
// best-effort subset: a display character that matches neither the
// expected literal nor the slot's character class is dropped.
// Extraction stops once the output reaches the mask's capacity. An
// empty mask returns the input unchanged.
func (m *Mask) Extract(display string) string {
	return m.extract(display, false)
}

// ExtractWithLiterals is Extract with matched literal characters
// copied into the output alongside the slot characters.
func (m *Mask) ExtractWithLiterals(display string) string {
	return m.extract(display, true)
}

func (m *Mask) extract(display string, keepLiterals bool) string {
	if m.Empty() {
		return display
	}

	runes := []rune(display)
	capacity := m.Capacity()
	var b strings.Builder
	di := 0
	slots := 0
	for _, t := range m.tokens {
		if di >= len(runes) || slots >= capacity {
			break
		}
		if t.IsLiteral() {
			// A missing literal means the source sent unformatted
			// text; leave the display character for the next slot.
			if runes[di] == t.Ch {
				if keepLiterals {
					b.WriteRune(t.Ch)
				}
				di++
			}
			continue
		}

		// Consume display characters until one fits the slot. A
		// prompt character marks the slot as not yet typed.
		for di < len(runes) {
			r := runes[di]
			if r == m.prompt {
				di++
				break
			}
			v, ok := t.Kind.Validate(r)
			di++
			if ok {
				b.WriteRune(v)
				slots++
				break
			}
		}
	}
	return b.String()
}

// Complete reports whether every required slot has a valid raw
// character, walking raw the same way Format does. Literal and
// optional tokens impose no requirement. A mask with zero tokens is
// complete whenever raw is non-empty.
func (m *Mask) Complete(raw string) bool {
	if m.Empty() {
		return raw != ""
	}

	runes := []rune(raw)
	ri := 0
	for _, t := range m.tokens {
		if t.IsLiteral() {
			continue
		}
		filled := false
		for ri < len(runes) {
			_, ok := t.Kind.Validate(runes[ri])
			ri++
			if ok {
				filled = true
				break
			}
		}
		if !filled && !t.Kind.Optional() {
			return false
		}
	}
	return true
}
