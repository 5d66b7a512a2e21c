package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Errors returned by key parsing.
var (
	// ErrNoKey indicates an empty key spelling.
	ErrNoKey = errors.New("no key")

	// ErrUnknownKey indicates an unrecognized key name.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownModifier indicates an unrecognized modifier prefix.
	ErrUnknownModifier = errors.New("unknown modifier")
)

// keyNames maps special key spellings to tcell keys.
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

// canonicalNames is the reverse of keyNames with one spelling per key.
var canonicalNames = func() map[tcell.Key]string {
	m := make(map[tcell.Key]string, len(keyNames))
	for name, k := range keyNames {
		m[k] = name
	}
	return m
}()

// Key is one parsed chord: either a special key or a printable rune,
// plus modifiers. Ctrl chords are stored as tcell control keys, the
// form terminals deliver them in.
type Key struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// ctrlKey maps a rune to the tcell control key a terminal sends for
// ctrl plus that rune.
func ctrlKey(r rune) (tcell.Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return tcell.KeyCtrlA + tcell.Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return tcell.KeyCtrlA + tcell.Key(r-'A'), true
	}
	switch r {
	case ' ':
		return tcell.KeyCtrlSpace, true
	case '[':
		return tcell.KeyCtrlLeftSq, true
	case '\\':
		return tcell.KeyCtrlBackslash, true
	case ']':
		return tcell.KeyCtrlRightSq, true
	case '^':
		return tcell.KeyCtrlCarat, true
	case '_':
		return tcell.KeyCtrlUnderscore, true
	}
	return 0, false
}

// ctrlBase is the inverse of ctrlKey.
func ctrlBase(k tcell.Key) (rune, bool) {
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return 'a' + rune(k-tcell.KeyCtrlA), true
	}
	switch k {
	case tcell.KeyCtrlSpace:
		return ' ', true
	case tcell.KeyCtrlLeftSq:
		return '[', true
	case tcell.KeyCtrlBackslash:
		return '\\', true
	case tcell.KeyCtrlRightSq:
		return ']', true
	case tcell.KeyCtrlCarat:
		return '^', true
	case tcell.KeyCtrlUnderscore:
		return '_', true
	}
	return 0, false
}

// normalize folds a ctrl-modified rune into its control key.
func normalize(k Key) Key {
	if k.Key == tcell.KeyRune && k.Mod&tcell.ModCtrl != 0 {
		if ck, ok := ctrlKey(k.Rune); ok {
			k.Key = ck
		}
	}
	return k
}

// ParseKey parses one chord like "q", "space", "ctrl-x" or "alt-up".
// Modifier prefixes are ctrl-, alt-, meta- (same as alt) and shift-.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, ErrNoKey
	}

	var mod tcell.ModMask
	rest := s
	for {
		dash := strings.Index(rest, "-")
		// A trailing dash is the literal '-' key, not a modifier split.
		if dash <= 0 || dash == len(rest)-1 {
			break
		}
		prefix := strings.ToLower(rest[:dash])
		var m tcell.ModMask
		switch prefix {
		case "ctrl":
			m = tcell.ModCtrl
		case "alt", "meta":
			m = tcell.ModAlt
		case "shift":
			m = tcell.ModShift
		default:
			return Key{}, fmt.Errorf("%w: %q", ErrUnknownModifier, prefix)
		}
		mod |= m
		rest = rest[dash+1:]
	}

	if rest == "" {
		return Key{}, ErrNoKey
	}
	if rest == "space" {
		return normalize(Key{Key: tcell.KeyRune, Rune: ' ', Mod: mod}), nil
	}
	if k, ok := keyNames[strings.ToLower(rest)]; ok {
		return Key{Key: k, Mod: mod}, nil
	}
	runes := []rune(rest)
	if len(runes) != 1 {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, rest)
	}
	return normalize(Key{Key: tcell.KeyRune, Rune: runes[0], Mod: mod}), nil
}

// ParseSequence parses a space-separated chord sequence like "g g".
func ParseSequence(s string) ([]Key, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrNoKey
	}
	keys := make([]Key, 0, len(fields))
	for _, f := range fields {
		k, err := ParseKey(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// String returns the canonical spelling of the chord.
func (k Key) String() string {
	var b strings.Builder
	if k.Mod&tcell.ModCtrl != 0 {
		b.WriteString("ctrl-")
	}
	if k.Mod&tcell.ModAlt != 0 {
		b.WriteString("alt-")
	}
	if k.Mod&tcell.ModShift != 0 {
		b.WriteString("shift-")
	}
	if k.Key == tcell.KeyRune {
		if k.Rune == ' ' {
			b.WriteString("space")
		} else {
			b.WriteRune(k.Rune)
		}
		return b.String()
	}
	if k.Mod&tcell.ModCtrl != 0 {
		if r, ok := ctrlBase(k.Key); ok {
			if r == ' ' {
				b.WriteString("space")
			} else {
				b.WriteRune(r)
			}
			return b.String()
		}
	}
	if name, ok := canonicalNames[k.Key]; ok {
		b.WriteString(name)
		return b.String()
	}
	fmt.Fprintf(&b, "key(%d)", k.Key)
	return b.String()
}

// SequenceString returns the canonical spelling of a chord sequence.
func SequenceString(keys []Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

// Match reports whether a terminal event corresponds to this chord.
// Events carrying a ctrl-modified rune are folded into their control
// key first, so both event shapes match.
func (k Key) Match(ev *tcell.EventKey) bool {
	got := normalize(Key{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()})
	if got.Mod != k.Mod {
		return false
	}
	if k.Key == tcell.KeyRune {
		return got.Key == tcell.KeyRune && got.Rune == k.Rune
	}
	return got.Key == k.Key
}
