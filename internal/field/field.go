// Package field provides the control-side state for a masked text
// input: one Field owns a compiled mask, the authoritative raw value,
// and the presentation flags, and exposes the edit operations a text
// control routes into it.
package field

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/maskedit/internal/mask"
)

// Event describes an accepted mutation. Listeners receive the field's
// identity plus the state a text control needs to refresh itself.
type Event struct {
	// FieldID identifies the originating field.
	FieldID string

	// Raw is the new authoritative raw value.
	Raw string

	// Display is the formatted text to show.
	Display string

	// Caret is the rune offset at which to place the caret.
	Caret int
}

// Listener is called after every accepted mutation. No call is made
// for edits that leave the field unchanged.
type Listener func(Event)

// Validator checks a whole raw value beyond per-rune validation, for
// example a range check on a date mask. It runs only once the mask
// itself is complete.
type Validator func(raw string) bool

// Field is the stateful owner of one masked input's value. A Field is
// owned by exactly one control and is not synchronized; mutations are
// expected to arrive serialized on the owning control's update path.
type Field struct {
	id           string
	label        string
	mask         *mask.Mask
	raw          string
	prompt       rune
	showOptional bool

	// expected is the display text this field last produced, used by
	// ApplyEdit to detect desynchronized input sources.
	expected string

	validator Validator
	listener  Listener
}

// Option configures a Field.
type Option func(*Field)

// WithLabel sets a human-readable label for the field.
func WithLabel(label string) Option {
	return func(f *Field) {
		f.label = label
	}
}

// WithPrompt sets the placeholder character for unfilled slots.
func WithPrompt(r rune) Option {
	return func(f *Field) {
		if r != 0 {
			f.prompt = r
		}
	}
}

// WithShowOptional sets whether unfilled optional slots render as
// prompt characters.
func WithShowOptional(show bool) Option {
	return func(f *Field) {
		f.showOptional = show
	}
}

// WithListener sets the mutation listener.
func WithListener(l Listener) Option {
	return func(f *Field) {
		f.listener = l
	}
}

// WithValidator sets a whole-value validator consulted by Complete.
func WithValidator(v Validator) Option {
	return func(f *Field) {
		f.validator = v
	}
}

// New creates a field for the given mask pattern.
func New(pattern string, opts ...Option) *Field {
	f := &Field{
		id:     uuid.NewString(),
		prompt: mask.DefaultPrompt,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.mask = mask.Compile(pattern, mask.WithPrompt(f.prompt))
	f.expected = f.Display()
	return f
}

// ID returns the field's stable identity.
func (f *Field) ID() string {
	return f.id
}

// Label returns the field's label.
func (f *Field) Label() string {
	return f.label
}

// Pattern returns the current mask pattern.
func (f *Field) Pattern() string {
	return f.mask.Pattern()
}

// Mask returns the compiled mask.
func (f *Field) Mask() *mask.Mask {
	return f.mask
}

// Raw returns the authoritative raw value.
func (f *Field) Raw() string {
	return f.raw
}

// Display returns the formatted text for the current raw value.
func (f *Field) Display() string {
	return f.mask.Format(f.raw, f.showOptional)
}

// Caret returns the rune offset immediately after the last filled
// slot in the current display text.
func (f *Field) Caret() int {
	return f.mask.DisplayCursor(utf8.RuneCountInString(f.raw), f.Display())
}

// Complete reports whether every required slot is filled and, when a
// whole-value validator is set, whether it accepts the raw value.
func (f *Field) Complete() bool {
	if !f.mask.Complete(f.raw) {
		return false
	}
	if f.validator != nil {
		return f.validator(f.raw)
	}
	return true
}

// ShowOptional returns whether unfilled optional slots are revealed.
func (f *Field) ShowOptional() bool {
	return f.showOptional
}

// SetShowOptional toggles the reveal of unfilled optional slots,
// typically on focus change.
func (f *Field) SetShowOptional(show bool) {
	if f.showOptional == show {
		return
	}
	f.showOptional = show
	f.notify()
}

// SetValidator replaces the whole-value validator.
func (f *Field) SetValidator(v Validator) {
	f.validator = v
}

// SetPattern replaces the mask, re-deriving the raw value from the
// old display text so compatible content survives the change.
func (f *Field) SetPattern(pattern string) {
	display := f.Display()
	f.mask = mask.Compile(pattern, mask.WithPrompt(f.prompt))
	f.raw = f.mask.TrimToCapacity(f.mask.Extract(display))
	f.notify()
}

// SetRaw replaces the raw value, trimmed to the mask's capacity.
func (f *Field) SetRaw(raw string) {
	f.raw = f.mask.TrimToCapacity(raw)
	f.notify()
}

// SetDisplay replaces the raw value by extraction from formatted
// text, the programmatic-paste path.
func (f *Field) SetDisplay(display string) {
	f.raw = f.mask.TrimToCapacity(f.mask.Extract(display))
	f.notify()
}

// Clear empties the field.
func (f *Field) Clear() {
	if f.raw == "" && f.expected == "" {
		return
	}
	f.raw = ""
	f.notify()
}

// InsertRune appends a typed character at the next open slot, the
// hardware-keyboard path. It returns true when the character was
// accepted.
func (f *Field) InsertRune(r rune) bool {
	slot := utf8.RuneCountInString(f.raw)
	if c := f.mask.Capacity(); c != mask.Unbounded && slot >= c {
		return false
	}
	if f.mask.Empty() {
		f.raw += string(r)
		f.notify()
		return true
	}
	t, ok := f.mask.SlotToken(slot)
	if !ok {
		return false
	}
	v, accepted := t.Kind.Validate(r)
	if !accepted {
		return false
	}
	f.raw += string(v)
	f.notify()
	return true
}

// Backspace removes the last raw character. It returns true when a
// character was removed.
func (f *Field) Backspace() bool {
	if f.raw == "" {
		return false
	}
	runes := []rune(f.raw)
	f.raw = string(runes[:len(runes)-1])
	f.notify()
	return true
}

// ApplyEdit reconciles an update event from an unreliable input
// source, the soft-keyboard path. oldText is the display text the
// source last saw and newText is what it reports now; the field
// supplies the text it last wrote itself.
func (f *Field) ApplyEdit(oldText, newText string) Event {
	res := mask.Reconcile(f.mask, mask.Edit{
		Old:      oldText,
		New:      newText,
		Expected: f.expected,
		Raw:      f.raw,
	}, f.showOptional)

	changed := res.Raw != f.raw || res.Display != f.expected
	f.raw = res.Raw
	ev := Event{FieldID: f.id, Raw: res.Raw, Display: res.Display, Caret: res.Cursor}
	f.expected = res.Display
	if changed && f.listener != nil {
		f.listener(ev)
	}
	return ev
}

// notify recomputes derived state and informs the listener.
func (f *Field) notify() {
	display := f.Display()
	f.expected = display
	if f.listener != nil {
		f.listener(Event{
			FieldID: f.id,
			Raw:     f.raw,
			Display: display,
			Caret:   f.Caret(),
		})
	}
}
