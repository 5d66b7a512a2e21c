package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/torq/internal/settings"
)

func TestSet_Local(t *testing.T) {
	cctx, out, _ := newTestContext(t)
	ctx := context.Background()

	if st := cctx.Set(ctx, []string{"connect.host", "example.net"}); st != StatusSuccess {
		t.Fatalf("Set returned %v: %v", st, out.errs)
	}
	v, _ := cctx.Settings.Get("connect.host")
	if v.String() != "example.net" {
		t.Errorf("connect.host = %q, want \"example.net\"", v.String())
	}
}

func TestSet_RemoteDelta(t *testing.T) {
	cctx, out, up := newTestContext(t)

	if st := cctx.Set(context.Background(), []string{"srv.limit.rate.up", "+=100kB"}); st != StatusSuccess {
		t.Fatalf("Set returned %v: %v", st, out.errs)
	}
	if up.n.Float64() != 100050 {
		t.Errorf("pushed value = %v, want 100050", up.n.Float64())
	}
}

func TestSet_InvalidValueFails(t *testing.T) {
	cctx, out, _ := newTestContext(t)

	if st := cctx.Set(context.Background(), []string{"connect.port", "99999"}); st != StatusFailure {
		t.Fatal("out-of-range port accepted")
	}
	if !strings.Contains(out.lastErr(), "Too big") {
		t.Errorf("error = %q, want bounds message", out.lastErr())
	}
	v, _ := cctx.Settings.Get("connect.port")
	if v.String() != "9091" {
		t.Errorf("connect.port changed to %q after failed set", v.String())
	}
}

func TestSet_UnknownSetting(t *testing.T) {
	cctx, out, _ := newTestContext(t)
	if st := cctx.Set(context.Background(), []string{"bogus", "1"}); st != StatusFailure {
		t.Fatal("unknown setting accepted")
	}
	if !strings.Contains(out.lastErr(), "unknown setting") {
		t.Errorf("error = %q, want unknown setting message", out.lastErr())
	}
}

func TestSet_ListingAndShow(t *testing.T) {
	cctx, out, _ := newTestContext(t)
	ctx := context.Background()

	if st := cctx.Set(ctx, nil); st != StatusSuccess {
		t.Fatalf("listing failed: %v", out.errs)
	}
	if len(out.outs) == 0 {
		t.Fatal("listing printed nothing")
	}
	found := false
	for _, line := range out.outs {
		if strings.HasPrefix(line, "connect.host = ") {
			found = true
		}
	}
	if !found {
		t.Error("listing misses connect.host")
	}

	out.outs = nil
	if st := cctx.Set(ctx, []string{"connect.host"}); st != StatusSuccess {
		t.Fatal("show failed")
	}
	if len(out.outs) != 1 || out.outs[0] != "connect.host = localhost" {
		t.Errorf("show output = %v", out.outs)
	}
}

func TestSet_ListingReportsConnectivityFailure(t *testing.T) {
	cctx, out, _ := newTestContext(t)

	r := settings.NewRemote(func(ctx context.Context) error {
		return errors.New("daemon gone")
	})
	r.MustRegister(settings.RemoteSetting{
		Name: "srv.limit.rate.up", Description: "Global upload rate limit", Access: newMemRate(t, 50),
	})
	cctx.Settings = settings.New(settings.DefaultLocal(), r)

	// Listing stays best-effort but the command fails afterward.
	if st := cctx.Set(context.Background(), nil); st != StatusFailure {
		t.Fatal("listing succeeded despite unreachable daemon")
	}
	if len(out.outs) == 0 {
		t.Error("failed listing printed nothing")
	}
	if !strings.Contains(out.lastErr(), "daemon gone") {
		t.Errorf("error = %q, want connectivity message", out.lastErr())
	}
}

func TestSet_DeltaOnNonNumericIsLiteral(t *testing.T) {
	cctx, out, _ := newTestContext(t)
	ctx := context.Background()

	// On a free-form string setting the literal is simply stored.
	if st := cctx.Set(ctx, []string{"connect.host", "-=1"}); st != StatusSuccess {
		t.Fatalf("literal delta returned %v: %v", st, out.errs)
	}
	v, _ := cctx.Settings.Get("connect.host")
	if v.String() != "-=1" {
		t.Errorf("connect.host = %q, want literal \"-=1\"", v.String())
	}

	// On a constrained setting the literal fails validation.
	if st := cctx.Set(ctx, []string{"columns.torrents", "-=1"}); st != StatusFailure {
		t.Fatal("invalid literal accepted by tuple setting")
	}
	if !strings.Contains(out.lastErr(), "Invalid option") {
		t.Errorf("error = %q, want invalid option message", out.lastErr())
	}
	cols, _ := cctx.Settings.Get("columns.torrents")
	if strings.Contains(cols.String(), "-=1") {
		t.Errorf("columns.torrents changed to %q after failed set", cols.String())
	}
}

func TestSet_QuotedValueRoundTrip(t *testing.T) {
	cctx, out, _ := newTestContext(t)
	ctx := context.Background()

	if st := cctx.Set(ctx, []string{"tui.marked.off", "·"}); st != StatusSuccess {
		t.Fatalf("Set failed: %v", out.errs)
	}

	out.outs = nil
	cctx.Set(ctx, []string{"connect.user"})
	if out.outs[0] != `connect.user = ""` {
		t.Errorf("empty value rendered as %q, want quoted empty string", out.outs[0])
	}
}
