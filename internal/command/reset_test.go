package command

import (
	"context"
	"testing"
)

func TestReset_RestoresDefault(t *testing.T) {
	cctx, out, _ := newTestContext(t)
	ctx := context.Background()

	if st := cctx.Set(ctx, []string{"connect.host", "example.net"}); st != StatusSuccess {
		t.Fatal(out.errs)
	}
	if st := cctx.Reset(ctx, []string{"connect.host"}); st != StatusSuccess {
		t.Fatalf("Reset failed: %v", out.errs)
	}
	v, _ := cctx.Settings.Get("connect.host")
	if v.String() != "localhost" {
		t.Errorf("connect.host = %q, want \"localhost\"", v.String())
	}
}

func TestReset_BestEffortAggregation(t *testing.T) {
	cctx, out, _ := newTestContext(t)
	ctx := context.Background()

	if st := cctx.Set(ctx, []string{"connect.host", "example.net"}); st != StatusSuccess {
		t.Fatal(out.errs)
	}

	// One good target among bad ones: the good one is still reset and
	// every bad one is reported, with an overall failure status.
	st := cctx.Reset(ctx, []string{"srv.limit.rate.up", "connect.host", "bogus"})
	if st != StatusFailure {
		t.Fatalf("status = %v, want StatusFailure", st)
	}
	v, _ := cctx.Settings.Get("connect.host")
	if v.String() != "localhost" {
		t.Errorf("good target not reset: %q", v.String())
	}
	if len(out.errs) != 2 {
		t.Fatalf("errors = %v, want 2 entries", out.errs)
	}
	if out.errs[0] != "Remote settings cannot be reset: srv.limit.rate.up" {
		t.Errorf("remote error = %q", out.errs[0])
	}
	if out.errs[1] != "Unknown setting: bogus" {
		t.Errorf("unknown error = %q", out.errs[1])
	}
}

func TestReset_NoArgs(t *testing.T) {
	cctx, _, _ := newTestContext(t)
	if st := cctx.Reset(context.Background(), nil); st != StatusFailure {
		t.Error("reset without arguments succeeded")
	}
}
