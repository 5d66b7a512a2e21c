package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/torq/internal/value"
)

// fakeAccessor serves a settable value from memory.
type fakeAccessor struct {
	val      value.Value
	fetchErr error
	pushed   []any
}

func (f *fakeAccessor) Fetch(ctx context.Context) (value.Value, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.val, nil
}

func (f *fakeAccessor) Push(ctx context.Context, raw any) error {
	s, err := rawString(raw)
	if err != nil {
		return err
	}
	b, err := value.NewBool(s, value.BoolConfig{})
	if err != nil {
		return err
	}
	f.pushed = append(f.pushed, raw)
	f.val = b
	return nil
}

func newTestSettings(t *testing.T, acc *fakeAccessor) *Settings {
	t.Helper()
	l := NewLocal()
	l.MustRegister(Bool("tui.sound", "", false))

	r := NewRemote(nil)
	r.MustRegister(RemoteSetting{Name: "srv.dht", Description: "peer discovery", Access: acc})
	return New(l, r)
}

func TestSettings_LookupDispatch(t *testing.T) {
	s := newTestSettings(t, &fakeAccessor{val: value.BoolOf(true, value.BoolConfig{})})

	if !s.Has("tui.sound") || !s.Has("srv.dht") {
		t.Fatal("Has() = false for registered settings")
	}
	if s.Has("nope") {
		t.Error("Has(\"nope\") = true")
	}
	if s.IsRemote("tui.sound") {
		t.Error("IsRemote(\"tui.sound\") = true")
	}
	if !s.IsRemote("srv.dht") {
		t.Error("IsRemote(\"srv.dht\") = false")
	}
}

func TestSettings_RemoteReadsRequireUpdate(t *testing.T) {
	s := newTestSettings(t, &fakeAccessor{val: value.BoolOf(true, value.BoolConfig{})})

	if _, err := s.Get("srv.dht"); !errors.Is(err, ErrNotFetched) {
		t.Fatalf("Get before Update = %v, want ErrNotFetched", err)
	}

	if err := s.Update(context.Background()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	v, err := s.Get("srv.dht")
	if err != nil {
		t.Fatalf("Get after Update failed: %v", err)
	}
	if v.String() != "enabled" {
		t.Errorf("srv.dht = %q, want \"enabled\"", v.String())
	}
}

func TestSettings_UpdateKeepsCacheOnFailure(t *testing.T) {
	acc := &fakeAccessor{val: value.BoolOf(true, value.BoolConfig{})}
	s := newTestSettings(t, acc)

	if err := s.Update(context.Background()); err != nil {
		t.Fatal(err)
	}

	acc.fetchErr = errors.New("daemon gone")
	if err := s.Update(context.Background()); err == nil {
		t.Fatal("Update succeeded despite fetch failure")
	}
	v, err := s.Get("srv.dht")
	if err != nil {
		t.Fatalf("cached value lost after failed Update: %v", err)
	}
	if v.String() != "enabled" {
		t.Errorf("srv.dht = %q, want cached \"enabled\"", v.String())
	}
}

func TestSettings_SetDispatch(t *testing.T) {
	acc := &fakeAccessor{val: value.BoolOf(false, value.BoolConfig{})}
	s := newTestSettings(t, acc)
	ctx := context.Background()

	if err := s.Set(ctx, "tui.sound", "on"); err != nil {
		t.Fatalf("local Set failed: %v", err)
	}
	v, _ := s.Get("tui.sound")
	if v.String() != "enabled" {
		t.Errorf("tui.sound = %q, want \"enabled\"", v.String())
	}

	if err := s.Set(ctx, "srv.dht", "on"); err != nil {
		t.Fatalf("remote Set failed: %v", err)
	}
	if len(acc.pushed) != 1 {
		t.Fatalf("pushed %d values, want 1", len(acc.pushed))
	}
	// A remote write refreshes the cached value even without an Update.
	v, err := s.Get("srv.dht")
	if err != nil {
		t.Fatalf("Get after Set failed: %v", err)
	}
	if v.String() != "enabled" {
		t.Errorf("srv.dht = %q, want \"enabled\"", v.String())
	}

	if err := s.Set(ctx, "nope", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Set unknown = %v, want ErrNotFound", err)
	}
}

func TestSettings_ResetRules(t *testing.T) {
	s := newTestSettings(t, &fakeAccessor{val: value.BoolOf(true, value.BoolConfig{})})

	if err := s.Reset("tui.sound"); err != nil {
		t.Errorf("local Reset failed: %v", err)
	}
	if err := s.Reset("srv.dht"); !errors.Is(err, ErrRemoteReset) {
		t.Errorf("remote Reset = %v, want ErrRemoteReset", err)
	}
	if err := s.Reset("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown Reset = %v, want ErrNotFound", err)
	}
}

func TestSettings_NamesLocalFirst(t *testing.T) {
	s := newTestSettings(t, &fakeAccessor{})
	names := s.Names()
	if len(names) != 2 {
		t.Fatalf("Names() = %v, want 2 entries", names)
	}
	if names[0] != "tui.sound" || names[1] != "srv.dht" {
		t.Errorf("Names() = %v, want [tui.sound srv.dht]", names)
	}
}

func TestDefaultRemote_Catalog(t *testing.T) {
	// A nil daemon client is fine for catalog introspection.
	r := DefaultRemote(nil)
	for _, name := range []string{
		"srv.utp", "srv.dht", "srv.lpd", "srv.pex", "srv.port",
		"srv.port-forwarding", "srv.encryption",
		"srv.limit.peers.global", "srv.limit.peers.torrent",
		"srv.limit.rate.up", "srv.limit.rate.down",
		"srv.part-files", "srv.path.complete", "srv.path.incomplete",
		"srv.autostart-torrents",
	} {
		if !r.Has(name) {
			t.Errorf("Has(%q) = false", name)
		}
	}
	if r.Description("srv.dht") == "" {
		t.Error("srv.dht has no description")
	}
}
