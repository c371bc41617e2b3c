package mask

import "strings"

// InsertLiterals interleaves the mask's literal characters into a raw
// value without any placeholder bookkeeping: each slot consumes one
// raw character verbatim, and the walk stops the moment raw is
// exhausted, so trailing literals are not appended. Intended for
// batch formatting of known-good values rather than live editing. An
// empty mask returns raw unchanged.
func (m *Mask) InsertLiterals(raw string) string {
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
		if ri >= len(runes) {
			break
		}
		if t.IsLiteral() {
			b.WriteRune(t.Ch)
			continue
		}
		b.WriteRune(runes[ri])
		ri++
	}
	return b.String()
}

// RemoveLiterals strips the mask's literal positions from a display
// string, copying only the characters aligned to slots. Display text
// shorter than the token sequence truncates the walk. An empty mask
// returns display unchanged.
func (m *Mask) RemoveLiterals(display string) string {
	if m.Empty() {
		return display
	}

	runes := []rune(display)
	var b strings.Builder
	di := 0
	for _, t := range m.tokens {
		if di >= len(runes) {
			break
		}
		if t.IsLiteral() {
			di++
			continue
		}
		b.WriteRune(runes[di])
		di++
	}
	return b.String()
}
