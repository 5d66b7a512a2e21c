package keymap

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		raw  string
		want Key
	}{
		{"q", Key{Key: tcell.KeyRune, Rune: 'q'}},
		{"Q", Key{Key: tcell.KeyRune, Rune: 'Q'}},
		{"space", Key{Key: tcell.KeyRune, Rune: ' '}},
		{"-", Key{Key: tcell.KeyRune, Rune: '-'}},
		{"up", Key{Key: tcell.KeyUp}},
		{"PgDn", Key{Key: tcell.KeyPgDn}},
		{"f5", Key{Key: tcell.KeyF5}},
		{"ctrl-x", Key{Key: tcell.KeyCtrlX, Rune: 'x', Mod: tcell.ModCtrl}},
		{"ctrl-X", Key{Key: tcell.KeyCtrlX, Rune: 'X', Mod: tcell.ModCtrl}},
		{"ctrl-space", Key{Key: tcell.KeyCtrlSpace, Rune: ' ', Mod: tcell.ModCtrl}},
		{"alt-up", Key{Key: tcell.KeyUp, Mod: tcell.ModAlt}},
		{"meta-up", Key{Key: tcell.KeyUp, Mod: tcell.ModAlt}},
		{"ctrl-alt-delete", Key{Key: tcell.KeyDelete, Mod: tcell.ModCtrl | tcell.ModAlt}},
		{"shift--", Key{Key: tcell.KeyRune, Rune: '-', Mod: tcell.ModShift}},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.raw)
		if err != nil {
			t.Errorf("ParseKey(%q) failed: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestParseKey_Errors(t *testing.T) {
	if _, err := ParseKey(""); !errors.Is(err, ErrNoKey) {
		t.Errorf("ParseKey(\"\") = %v, want ErrNoKey", err)
	}
	if _, err := ParseKey("hyper-x"); !errors.Is(err, ErrUnknownModifier) {
		t.Errorf("ParseKey(\"hyper-x\") = %v, want ErrUnknownModifier", err)
	}
	if _, err := ParseKey("bogus"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("ParseKey(\"bogus\") = %v, want ErrUnknownKey", err)
	}
}

func TestKey_CanonicalString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Q", "Q"},
		{"CTRL-x", "ctrl-x"},
		{"meta-UP", "alt-up"},
		{"space", "space"},
		{"g g", "g g"},
	}
	for _, tt := range tests {
		keys, err := ParseSequence(tt.raw)
		if err != nil {
			t.Errorf("ParseSequence(%q) failed: %v", tt.raw, err)
			continue
		}
		if got := SequenceString(keys); got != tt.want {
			t.Errorf("SequenceString(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRegistry_BindAndLookup(t *testing.T) {
	r := New()
	if err := r.Bind(Binding{Context: "torrentlist", Key: "META-up", Action: "move up"}); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	// Lookup resolves through the canonical spelling.
	b, ok := r.Lookup("torrentlist", "alt-up")
	if !ok {
		t.Fatal("Lookup missed binding bound under alternate spelling")
	}
	if b.Action != "move up" {
		t.Errorf("Action = %q, want \"move up\"", b.Action)
	}

	// Rebinding the same chord replaces the action.
	if err := r.Bind(Binding{Context: "torrentlist", Key: "alt-up", Action: "move first"}); err != nil {
		t.Fatal(err)
	}
	if got := len(r.Map("torrentlist")); got != 1 {
		t.Fatalf("Map has %d bindings, want 1", got)
	}
	b, _ = r.Lookup("torrentlist", "meta-up")
	if b.Action != "move first" {
		t.Errorf("Action = %q, want \"move first\"", b.Action)
	}
}

func TestRegistry_AllContextFallback(t *testing.T) {
	r := New()
	if err := r.Bind(Binding{Key: "q", Action: "quit"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Lookup("torrentlist", "q"); !ok {
		t.Error("binding in \"all\" context not visible from other contexts")
	}

	if err := r.Bind(Binding{Context: "torrentlist", Key: "q", Action: "close"}); err != nil {
		t.Fatal(err)
	}
	b, _ := r.Lookup("torrentlist", "q")
	if b.Action != "close" {
		t.Errorf("context binding did not shadow \"all\": %q", b.Action)
	}
}

func TestRegistry_Unbind(t *testing.T) {
	r := New()
	if err := r.Bind(Binding{Key: "q", Action: "quit"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Unbind("", "q"); err != nil {
		t.Fatalf("Unbind failed: %v", err)
	}
	if _, ok := r.Lookup(ContextAll, "q"); ok {
		t.Error("binding still present after Unbind")
	}
}

func TestDefaults(t *testing.T) {
	r := Defaults()
	if _, ok := r.Lookup(ContextAll, "q"); !ok {
		t.Error("default keymap misses quit binding")
	}
	b, ok := r.Lookup("torrentlist", "g g")
	if !ok {
		t.Fatal("default keymap misses chord sequence binding")
	}
	if b.Action != "move first" {
		t.Errorf("Action = %q, want \"move first\"", b.Action)
	}
}

func TestKey_MatchEvent(t *testing.T) {
	k, err := ParseKey("ctrl-x")
	if err != nil {
		t.Fatal(err)
	}
	// Terminals deliver ctrl-x as the control key with the control rune.
	if !k.Match(tcell.NewEventKey(tcell.KeyCtrlX, rune(tcell.KeyCtrlX), tcell.ModCtrl)) {
		t.Error("chord did not match its control-key event")
	}
	// A rune-shaped event with the ctrl modifier matches too.
	if !k.Match(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)) {
		t.Error("chord did not match its rune event")
	}
	if k.Match(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("chord matched event without modifier")
	}

	q, err := ParseKey("q")
	if err != nil {
		t.Fatal(err)
	}
	if !q.Match(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("plain rune chord did not match its event")
	}
}
