package mask

import (
	"fmt"
	"unicode"
)

// Kind identifies what a mask token accepts.
type Kind uint8

const (
	// KindLiteral is a character emitted verbatim in display form.
	KindLiteral Kind = iota

	// KindDigit is a required decimal digit.
	KindDigit

	// KindDigitOptional is an optional decimal digit.
	KindDigitOptional

	// KindLetter is a required letter.
	KindLetter

	// KindLetterOptional is an optional letter.
	KindLetterOptional

	// KindUpper is a required letter, uppercased on insertion.
	KindUpper

	// KindUpperOptional is an optional letter, uppercased on insertion.
	KindUpperOptional

	// KindAny is a required slot accepting any character.
	KindAny

	// KindAnyOptional is an optional slot accepting any character.
	KindAnyOptional
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindDigit:
		return "Digit"
	case KindDigitOptional:
		return "DigitOptional"
	case KindLetter:
		return "Letter"
	case KindLetterOptional:
		return "LetterOptional"
	case KindUpper:
		return "Upper"
	case KindUpperOptional:
		return "UpperOptional"
	case KindAny:
		return "Any"
	case KindAnyOptional:
		return "AnyOptional"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Optional returns true for the optional slot kinds.
func (k Kind) Optional() bool {
	switch k {
	case KindDigitOptional, KindLetterOptional, KindUpperOptional, KindAnyOptional:
		return true
	default:
		return false
	}
}

// Validate checks a rune against the kind's character class. It returns
// the rune to store (uppercased for the upper kinds) and whether the
// rune was accepted. KindLiteral accepts nothing.
func (k Kind) Validate(r rune) (rune, bool) {
	switch k {
	case KindDigit, KindDigitOptional:
		if unicode.IsDigit(r) {
			return r, true
		}
		return r, false
	case KindLetter, KindLetterOptional:
		if unicode.IsLetter(r) {
			return r, true
		}
		return r, false
	case KindUpper, KindUpperOptional:
		if unicode.IsLetter(r) {
			return unicode.ToUpper(r), true
		}
		return r, false
	case KindAny, KindAnyOptional:
		return r, true
	default:
		return r, false
	}
}

// Token is one position in a compiled pattern. Tokens are immutable
// once compiled; their order defines both raw-slot order and display
// order.
type Token struct {
	// Kind is the token's character class.
	Kind Kind

	// Ch is the character to emit when Kind is KindLiteral.
	Ch rune
}

// IsLiteral returns true if the token emits a fixed character.
func (t Token) IsLiteral() bool {
	return t.Kind == KindLiteral
}

// String returns a string representation of the token.
func (t Token) String() string {
	if t.IsLiteral() {
		return fmt.Sprintf("Literal(%q)", t.Ch)
	}
	return t.Kind.String()
}
