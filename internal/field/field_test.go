package field

import "testing"

func TestInsertRune(t *testing.T) {
	f := New("(000) 000-0000")

	for _, r := range "555123" {
		if !f.InsertRune(r) {
			t.Fatalf("InsertRune(%q) rejected", r)
		}
	}
	if f.InsertRune('x') {
		t.Error("InsertRune('x') accepted, want digit-only rejection")
	}
	if got := f.Raw(); got != "555123" {
		t.Errorf("Raw() = %q, want %q", got, "555123")
	}
	if got := f.Display(); got != "(555) 123-____" {
		t.Errorf("Display() = %q, want %q", got, "(555) 123-____")
	}
	if got := f.Caret(); got != 9 {
		t.Errorf("Caret() = %d, want 9", got)
	}
}

func TestInsertRuneNormalizes(t *testing.T) {
	f := New("LL-0000")
	f.InsertRune('a')
	f.InsertRune('b')
	if got := f.Raw(); got != "AB" {
		t.Errorf("Raw() = %q, want %q", got, "AB")
	}
}

func TestInsertRuneAtCapacity(t *testing.T) {
	f := New("00")
	f.InsertRune('1')
	f.InsertRune('2')
	if f.InsertRune('3') {
		t.Error("InsertRune past capacity accepted")
	}
	if got := f.Raw(); got != "12" {
		t.Errorf("Raw() = %q, want %q", got, "12")
	}
}

func TestBackspace(t *testing.T) {
	f := New("0000")
	f.SetRaw("123")
	if !f.Backspace() {
		t.Fatal("Backspace on non-empty field returned false")
	}
	if got := f.Raw(); got != "12" {
		t.Errorf("Raw() = %q, want %q", got, "12")
	}

	f.Clear()
	if f.Backspace() {
		t.Error("Backspace on empty field returned true")
	}
}

func TestSetRawTrims(t *testing.T) {
	f := New("000")
	f.SetRaw("123456")
	if got := f.Raw(); got != "123" {
		t.Errorf("Raw() = %q, want trimmed %q", got, "123")
	}
}

func TestSetDisplay(t *testing.T) {
	f := New("(000) 000-0000")
	f.SetDisplay("(555) 123-4567")
	if got := f.Raw(); got != "5551234567" {
		t.Errorf("Raw() = %q, want %q", got, "5551234567")
	}
	if !f.Complete() {
		t.Error("Complete() = false after full paste")
	}
}

func TestSetPatternKeepsContent(t *testing.T) {
	f := New("000-000")
	f.SetRaw("123456")

	f.SetPattern("(000) 000")
	if got := f.Raw(); got != "123456" {
		t.Errorf("Raw() after repattern = %q, want %q", got, "123456")
	}
	if got := f.Display(); got != "(123) 456" {
		t.Errorf("Display() after repattern = %q, want %q", got, "(123) 456")
	}
}

func TestCompleteWithValidator(t *testing.T) {
	f := New("00", WithValidator(func(raw string) bool {
		return raw != "00"
	}))

	f.SetRaw("12")
	if !f.Complete() {
		t.Error("Complete() = false with passing validator")
	}
	f.SetRaw("00")
	if f.Complete() {
		t.Error("Complete() = true with failing validator")
	}
}

func TestListenerFires(t *testing.T) {
	var events []Event
	f := New("00", WithListener(func(ev Event) {
		events = append(events, ev)
	}))

	f.InsertRune('1')
	f.InsertRune('x') // rejected, no event
	f.Backspace()

	if len(events) != 2 {
		t.Fatalf("listener fired %d times, want 2", len(events))
	}
	if events[0].Raw != "1" || events[0].Display != "1_" {
		t.Errorf("first event = %+v, want raw %q display %q", events[0], "1", "1_")
	}
	if events[1].Raw != "" {
		t.Errorf("second event raw = %q, want empty", events[1].Raw)
	}
	for _, ev := range events {
		if ev.FieldID != f.ID() {
			t.Errorf("event field ID = %q, want %q", ev.FieldID, f.ID())
		}
	}
}

func TestApplyEditDelta(t *testing.T) {
	f := New("(000) 000-0000", WithShowOptional(true))
	// The field starts empty, so the source saw the empty string too.
	ev := f.ApplyEdit("", "5")
	_ = ev

	// An empty Old falls through to general extraction, which still
	// lands on raw "5".
	if got := f.Raw(); got != "5" {
		t.Errorf("Raw() = %q, want %q", got, "5")
	}

	// Now the source and the field agree on the last display; a
	// one-character report is a bare delta.
	ev = f.ApplyEdit("(5__) ___-____", "3")
	if ev.Raw != "53" {
		t.Errorf("delta raw = %q, want %q", ev.Raw, "53")
	}
	if ev.Display != "(53_) ___-____" {
		t.Errorf("delta display = %q, want %q", ev.Display, "(53_) ___-____")
	}
	if ev.Caret != 3 {
		t.Errorf("delta caret = %d, want 3", ev.Caret)
	}
}

func TestApplyEditClear(t *testing.T) {
	f := New("(000) 000-0000")
	f.SetRaw("5551234567")
	ev := f.ApplyEdit(f.Display(), "")
	if ev.Raw != "" || ev.Display != "" || ev.Caret != 0 {
		t.Errorf("clear event = %+v, want empty result", ev)
	}
	if f.Raw() != "" {
		t.Errorf("Raw() = %q after clear, want empty", f.Raw())
	}
}

func TestApplyEditDesynchronized(t *testing.T) {
	f := New("(000) 000-0000")
	f.SetRaw("1")
	// The source reports an Old the field never wrote: its Raw-based
	// state is untrustworthy and New wins outright.
	ev := f.ApplyEdit("(9__) ___-____", "(555) 123-4567")
	if ev.Raw != "5551234567" {
		t.Errorf("desync raw = %q, want %q", ev.Raw, "5551234567")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := New("00")
	b := New("00")
	if a.ID() == b.ID() {
		t.Error("two fields share an ID")
	}
	if a.ID() == "" {
		t.Error("field ID is empty")
	}
}
