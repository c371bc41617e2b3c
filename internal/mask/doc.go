// Package mask implements formatted-input masking: compiling a pattern
// string into a token sequence and maintaining a bidirectional mapping
// between an unformatted raw value and its formatted display form.
//
// A pattern is a template such as "(000) 000-0000" where each character
// either denotes an input slot of a given kind or a literal emitted
// verbatim:
//
//   - "0" required digit, "9" optional digit
//   - "A" required letter, "a" optional letter
//   - "L" required letter (uppercased), "?" optional letter (uppercased)
//   - "&" required any character, "C" optional any character
//   - "\x" the literal character x (escape)
//   - anything else: that literal character
//
// The raw value is the single source of truth; display text is always a
// pure function of (mask, raw, show-optional flag) and is recomputed on
// every change. All operations are permissive: malformed input degrades
// to a best-effort result rather than returning an error, which is the
// behavior live typing needs.
//
// Reconcile repairs the inconsistent edit events produced by mobile
// soft keyboards, which may report a single delta character, the full
// formatted field, or an unformatted accumulation of characters. It is
// stateless per call and always yields a usable (raw, display, cursor)
// triple.
package mask
