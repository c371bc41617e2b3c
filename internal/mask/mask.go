package mask

// DefaultPrompt is the placeholder shown in an unfilled slot.
const DefaultPrompt = '_'

// Unbounded is returned by Capacity for a mask with no tokens: an
// unmasked field accepts any number of characters.
const Unbounded = -1

// Mask is a compiled pattern plus the prompt character used for
// unfilled slots. A Mask is immutable after Compile and may be read
// concurrently without synchronization.
type Mask struct {
	pattern string
	tokens  []Token
	prompt  rune
}

// Option configures a Mask at compile time.
type Option func(*Mask)

// WithPrompt sets the placeholder character for unfilled slots.
func WithPrompt(r rune) Option {
	return func(m *Mask) {
		if r != 0 {
			m.prompt = r
		}
	}
}

// Compile parses a pattern into a token sequence. It never fails:
// every pattern character maps to a token, with unrecognized
// characters becoming literals. An empty pattern compiles to a mask
// whose operations are pass-through identities.
func Compile(pattern string, opts ...Option) *Mask {
	m := &Mask{
		pattern: pattern,
		prompt:  DefaultPrompt,
	}
	for _, opt := range opts {
		opt(m)
	}

	runes := []rune(pattern)
	m.tokens = make([]Token, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			i++
			m.tokens = append(m.tokens, Token{Kind: KindLiteral, Ch: runes[i]})
			continue
		}
		m.tokens = append(m.tokens, Token{Kind: kindFor(r), Ch: literalFor(r)})
	}
	return m
}

// kindFor maps an unescaped pattern character to its token kind.
func kindFor(r rune) Kind {
	switch r {
	case '0':
		return KindDigit
	case '9':
		return KindDigitOptional
	case 'A':
		return KindLetter
	case 'a':
		return KindLetterOptional
	case 'L':
		return KindUpper
	case '?':
		return KindUpperOptional
	case '&':
		return KindAny
	case 'C':
		return KindAnyOptional
	default:
		return KindLiteral
	}
}

// literalFor returns the literal payload for a pattern character, or
// zero for slot characters.
func literalFor(r rune) rune {
	if kindFor(r) == KindLiteral {
		return r
	}
	return 0
}

// Pattern returns the pattern string the mask was compiled from.
func (m *Mask) Pattern() string {
	return m.pattern
}

// Prompt returns the placeholder character for unfilled slots.
func (m *Mask) Prompt() rune {
	return m.prompt
}

// Tokens returns the compiled token sequence. The returned slice must
// not be modified.
func (m *Mask) Tokens() []Token {
	return m.tokens
}

// Empty returns true if the mask has no tokens.
func (m *Mask) Empty() bool {
	return len(m.tokens) == 0
}

// Capacity returns the number of raw characters the mask can hold,
// which is the count of non-literal tokens. An empty mask reports
// Unbounded.
func (m *Mask) Capacity() int {
	if m.Empty() {
		return Unbounded
	}
	n := 0
	for _, t := range m.tokens {
		if !t.IsLiteral() {
			n++
		}
	}
	return n
}

// TrimToCapacity truncates raw to the mask's capacity. It is a no-op
// for an unbounded mask or a raw value already within bounds.
func (m *Mask) TrimToCapacity(raw string) string {
	capacity := m.Capacity()
	if capacity == Unbounded {
		return raw
	}
	runes := []rune(raw)
	if len(runes) <= capacity {
		return raw
	}
	return string(runes[:capacity])
}

// SlotToken returns the nth non-literal token. The second result is
// false when the mask has fewer than n+1 slots.
func (m *Mask) SlotToken(n int) (Token, bool) {
	if n < 0 {
		return Token{}, false
	}
	count := 0
	for _, t := range m.tokens {
		if t.IsLiteral() {
			continue
		}
		if count == n {
			return t, true
		}
		count++
	}
	return Token{}, false
}
