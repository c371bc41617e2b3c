package mask

import "unicode/utf8"

// DisplayCursor translates a raw-value length into a caret offset
// inside a display string produced by Format: the rune index
// immediately after the last filled slot, skipping interleaved
// literals. When rawLen meets or exceeds the mask's slot count the
// offset is the end of display. A mask with zero tokens returns
// rawLen clamped to the display length. The result is always within
// [0, len(display)] in rune terms.
func (m *Mask) DisplayCursor(rawLen int, display string) int {
	dlen := utf8.RuneCountInString(display)
	if rawLen < 0 {
		rawLen = 0
	}
	if m.Empty() {
		if rawLen > dlen {
			return dlen
		}
		return rawLen
	}

	consumed := 0
	for i, t := range m.tokens {
		if consumed == rawLen {
			if i > dlen {
				return dlen
			}
			return i
		}
		if !t.IsLiteral() {
			consumed++
		}
	}
	return dlen
}
