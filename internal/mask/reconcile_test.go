package mask

import "testing"

func TestReconcileClear(t *testing.T) {
	m := Compile("(000) 000-0000")
	got := Reconcile(m, Edit{
		Old:      "(5__) ___-____",
		New:      "",
		Expected: "(5__) ___-____",
		Raw:      "5",
	}, true)

	want := Result{Raw: "", Display: "", Cursor: 0}
	if got != want {
		t.Errorf("Reconcile clear = %+v, want %+v", got, want)
	}
}

func TestReconcileEchoBack(t *testing.T) {
	m := Compile("(000) 000-0000")
	display := m.Format("555", true)
	got := Reconcile(m, Edit{
		Old:      display,
		New:      display,
		Expected: display,
		Raw:      "555",
	}, true)

	if got.Raw != "555" {
		t.Errorf("echo-back raw = %q, want unchanged %q", got.Raw, "555")
	}
	if got.Display != display {
		t.Errorf("echo-back display = %q, want %q", got.Display, display)
	}
	if got.Cursor != 4 {
		t.Errorf("echo-back cursor = %d, want 4", got.Cursor)
	}
}

func TestReconcileSingleCharDelta(t *testing.T) {
	m := Compile("(000) 000-0000")
	got := Reconcile(m, Edit{
		Old:      "(___) ___-____",
		New:      "5",
		Expected: "(___) ___-____",
		Raw:      "",
	}, true)

	if got.Raw != "5" {
		t.Errorf("delta raw = %q, want %q", got.Raw, "5")
	}
	if got.Display != "(5__) ___-____" {
		t.Errorf("delta display = %q, want %q", got.Display, "(5__) ___-____")
	}
	if got.Cursor != 2 {
		t.Errorf("delta cursor = %d, want 2", got.Cursor)
	}
}

func TestReconcileDeltaRejectsInvalidRune(t *testing.T) {
	m := Compile("(000) 000-0000")
	got := Reconcile(m, Edit{
		Old:      "(5__) ___-____",
		New:      "x",
		Expected: "(5__) ___-____",
		Raw:      "5",
	}, true)

	// 'x' fails digit validation; raw stays as it was.
	if got.Raw != "5" {
		t.Errorf("rejected delta raw = %q, want %q", got.Raw, "5")
	}
}

func TestReconcileDeltaNormalizes(t *testing.T) {
	m := Compile("LL-0000")
	got := Reconcile(m, Edit{
		Old:      "A_-____",
		New:      "b",
		Expected: "A_-____",
		Raw:      "A",
	}, true)

	if got.Raw != "AB" {
		t.Errorf("delta raw = %q, want %q", got.Raw, "AB")
	}
	if got.Display != "AB-____" {
		t.Errorf("delta display = %q, want %q", got.Display, "AB-____")
	}
}

func TestReconcileDeltaAtCapacity(t *testing.T) {
	m := Compile("00")
	// Raw already full: a one-rune report cannot be a delta, and the
	// general extraction fallback re-derives raw from New alone.
	got := Reconcile(m, Edit{
		Old:      "12",
		New:      "3",
		Expected: "12",
		Raw:      "12",
	}, false)

	if got.Raw != "3" {
		t.Errorf("at-capacity raw = %q, want %q", got.Raw, "3")
	}
}

func TestReconcileDesynchronized(t *testing.T) {
	m := Compile("(000) 000-0000")
	// Old does not match what the engine last wrote, so Raw is stale
	// and the result comes from New alone.
	got := Reconcile(m, Edit{
		Old:      "(9__) ___-____",
		New:      "(555) 123-4567",
		Expected: "(1__) ___-____",
		Raw:      "1",
	}, true)

	if got.Raw != "5551234567" {
		t.Errorf("desync raw = %q, want %q", got.Raw, "5551234567")
	}
	if got.Display != "(555) 123-4567" {
		t.Errorf("desync display = %q, want %q", got.Display, "(555) 123-4567")
	}
	if got.Cursor != 14 {
		t.Errorf("desync cursor = %d, want 14", got.Cursor)
	}
}

func TestReconcileFullFieldGrowth(t *testing.T) {
	m := Compile("(000) 000-0000")
	expected := m.Format("555", true) // "(555) ___-____"
	got := Reconcile(m, Edit{
		Old:      expected,
		New:      "(555) 1__-____",
		Expected: expected,
		Raw:      "555",
	}, true)

	if got.Raw != "5551" {
		t.Errorf("growth raw = %q, want %q", got.Raw, "5551")
	}
	if got.Display != "(555) 1__-____" {
		t.Errorf("growth display = %q, want %q", got.Display, "(555) 1__-____")
	}
	if got.Cursor != 7 {
		t.Errorf("growth cursor = %d, want 7", got.Cursor)
	}
}

func TestReconcileBackspace(t *testing.T) {
	m := Compile("(000) 000-0000")
	expected := m.Format("5551", true) // "(555) 1__-____"
	got := Reconcile(m, Edit{
		Old:      expected,
		New:      "(555) ___-____",
		Expected: expected,
		Raw:      "5551",
	}, true)

	if got.Raw != "555" {
		t.Errorf("shrink raw = %q, want %q", got.Raw, "555")
	}
	if got.Cursor != 4 {
		t.Errorf("shrink cursor = %d, want 4", got.Cursor)
	}
}

func TestReconcileUnformattedAccumulation(t *testing.T) {
	m := Compile("(000) 000-0000")
	expected := m.Format("555", true)
	got := Reconcile(m, Edit{
		Old:      expected,
		New:      "5551234",
		Expected: expected,
		Raw:      "555",
	}, true)

	if got.Raw != "5551234" {
		t.Errorf("accumulation raw = %q, want %q", got.Raw, "5551234")
	}
	if got.Display != "(555) 123-4___" {
		t.Errorf("accumulation display = %q, want %q", got.Display, "(555) 123-4___")
	}
}

func TestReconcileEmptyMask(t *testing.T) {
	m := Compile("")
	got := Reconcile(m, Edit{
		Old:      "abc",
		New:      "abcd",
		Expected: "abc",
		Raw:      "abc",
	}, false)

	if got.Raw != "abcd" || got.Display != "abcd" || got.Cursor != 4 {
		t.Errorf("empty mask reconcile = %+v, want raw/display %q cursor 4", got, "abcd")
	}
}

func TestReconcileNeverFails(t *testing.T) {
	// Malformed combinations still produce a usable triple.
	m := Compile("(000) 000-0000")
	events := []Edit{
		{Old: "", New: "garbage!!", Expected: "something else", Raw: "999999999999"},
		{Old: "x", New: "\x00", Expected: "y", Raw: ""},
		{Old: "(555) 123-4567", New: "totally unrelated", Expected: "(555) 123-4567", Raw: "5551234567"},
	}

	for _, ev := range events {
		got := Reconcile(m, ev, true)
		capacity := m.Capacity()
		if n := len([]rune(got.Raw)); n > capacity {
			t.Errorf("Reconcile(%+v) raw length %d exceeds capacity %d", ev, n, capacity)
		}
		if got.Cursor < 0 || got.Cursor > len([]rune(got.Display)) {
			t.Errorf("Reconcile(%+v) cursor %d out of bounds for %q", ev, got.Cursor, got.Display)
		}
	}
}
