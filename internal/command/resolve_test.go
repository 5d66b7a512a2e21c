package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/torq/internal/settings"
	"github.com/dshills/torq/internal/value"
)

func TestResolveValue_PlainAndMultiple(t *testing.T) {
	cctx, _, _ := newTestContext(t)
	ctx := context.Background()

	base, raw, err := cctx.resolveValue(ctx, "connect.host", []string{"example.net"})
	if err != nil {
		t.Fatalf("resolveValue failed: %v", err)
	}
	if base != "connect.host" {
		t.Errorf("base = %q, want \"connect.host\"", base)
	}
	if raw != "example.net" {
		t.Errorf("raw = %v, want \"example.net\"", raw)
	}

	_, raw, err = cctx.resolveValue(ctx, "columns.torrents", []string{"name", "size"})
	if err != nil {
		t.Fatalf("resolveValue failed: %v", err)
	}
	if items, ok := raw.([]string); !ok || len(items) != 2 {
		t.Errorf("raw = %v, want [name size]", raw)
	}
}

func TestResolveValue_UnknownSetting(t *testing.T) {
	cctx, _, _ := newTestContext(t)
	_, _, err := cctx.resolveValue(context.Background(), "nope", []string{"x"})
	if !errors.Is(err, settings.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestResolveValue_OperatorOnNumeric(t *testing.T) {
	cctx, _, up := newTestContext(t)

	base, raw, err := cctx.resolveValue(context.Background(), "srv.limit.rate.up", []string{"+=100kB"})
	if err != nil {
		t.Fatalf("resolveValue failed: %v", err)
	}
	if base != "srv.limit.rate.up" {
		t.Errorf("base = %q", base)
	}
	n, ok := raw.(value.Number)
	if !ok {
		t.Fatalf("raw = %T, want value.Number", raw)
	}
	if n.Float64() != 100050 {
		t.Errorf("50 += 100kB = %v, want 100050", n.Float64())
	}
	// Resolution alone must not write anything.
	if up.n.Float64() != 50 {
		t.Errorf("accessor value changed during resolution: %v", up.n.Float64())
	}
}

func TestResolveValue_OperatorOnNonNumericPassesLiteral(t *testing.T) {
	cctx, _, _ := newTestContext(t)

	_, raw, err := cctx.resolveValue(context.Background(), "connect.host", []string{"-=1"})
	if err != nil {
		t.Fatalf("resolveValue failed: %v", err)
	}
	// The operator is not applied; the literal reaches the write as-is.
	if raw != "-=1" {
		t.Errorf("raw = %v, want literal \"-=1\"", raw)
	}
}

func TestResolveValue_InfiniteCurrentCountsAsZero(t *testing.T) {
	cctx, _, up := newTestContext(t)
	if err := up.Push(context.Background(), "inf"); err != nil {
		t.Fatal(err)
	}

	_, raw, err := cctx.resolveValue(context.Background(), "srv.limit.rate.up", []string{"+=1k"})
	if err != nil {
		t.Fatalf("resolveValue failed: %v", err)
	}
	n := raw.(value.Number)
	if n.Float64() != 1000 {
		t.Errorf("inf += 1k = %v, want 1000", n.Float64())
	}
}

func TestResolveValue_BoundsErrorNamesResult(t *testing.T) {
	cctx, _, _ := newTestContext(t)

	_, _, err := cctx.resolveValue(context.Background(), "tui.log.height", []string{"-=100"})
	if err == nil {
		t.Fatal("expected bounds error")
	}
	want := "tui.log.height = -90: Too small (minimum is 1)"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, value.ErrInvalidValue) {
		t.Errorf("error does not match ErrInvalidValue: %v", err)
	}
}

func TestSplitOperator(t *testing.T) {
	tests := []struct {
		arg    string
		wantOp value.Op
		rest   string
		ok     bool
	}{
		{"+=100kB", value.Add, "100kB", true},
		{"-=1", value.Subtract, "1", true},
		{"+=", 0, "+=", false},
		{"100", 0, "100", false},
		{"=5", 0, "=5", false},
	}
	for _, tt := range tests {
		op, rest, ok := splitOperator(tt.arg)
		if ok != tt.ok || rest != tt.rest || (ok && op != tt.wantOp) {
			t.Errorf("splitOperator(%q) = (%v, %q, %v), want (%v, %q, %v)",
				tt.arg, op, rest, ok, tt.wantOp, tt.rest, tt.ok)
		}
	}
}

func TestEvalShell(t *testing.T) {
	ctx := context.Background()

	out, err := evalShell(ctx, "echo 100k")
	if err != nil {
		t.Fatalf("evalShell failed: %v", err)
	}
	if out != "100k" {
		t.Errorf("output = %q, want \"100k\"", out)
	}

	// stderr output fails the evaluation even when the exit code is 0.
	_, err = evalShell(ctx, "echo oops 1>&2; true")
	var serr *ShellEvalError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want ShellEvalError", err)
	}
	if serr.Output != "oops" {
		t.Errorf("Output = %q, want \"oops\"", serr.Output)
	}

	// A nonzero exit code alone is not a failure.
	if _, err := evalShell(ctx, "echo fine; false"); err != nil {
		t.Errorf("exit code treated as failure: %v", err)
	}
}

func TestResolveValue_Eval(t *testing.T) {
	cctx, _, _ := newTestContext(t)

	_, raw, err := cctx.resolveValue(context.Background(), "connect.host:eval", []string{"echo", "myhost"})
	if err != nil {
		t.Fatalf("resolveValue failed: %v", err)
	}
	if raw != "myhost" {
		t.Errorf("raw = %v, want \"myhost\"", raw)
	}

	_, _, err = cctx.resolveValue(context.Background(), "connect.host:eval", []string{"echo bad 1>&2"})
	var serr *ShellEvalError
	if !errors.As(err, &serr) {
		t.Errorf("error = %v, want ShellEvalError", err)
	}
}

func TestResolveValue_EvalFeedsOperator(t *testing.T) {
	cctx, _, _ := newTestContext(t)

	_, raw, err := cctx.resolveValue(context.Background(), "srv.limit.rate.up:eval", []string{"echo +=100kB"})
	if err != nil {
		t.Fatalf("resolveValue failed: %v", err)
	}
	n, ok := raw.(value.Number)
	if !ok {
		t.Fatalf("raw = %T, want value.Number", raw)
	}
	if n.Float64() != 100050 {
		t.Errorf("eval'd 50 += 100kB = %v, want 100050", n.Float64())
	}
}

func TestResolveValue_EvalListSetting(t *testing.T) {
	cctx, _, _ := newTestContext(t)
	ctx := context.Background()

	_, raw, err := cctx.resolveValue(ctx, "columns.torrents:eval", []string{"echo name,size"})
	if err != nil {
		t.Fatalf("resolveValue failed: %v", err)
	}
	if err := cctx.Settings.Set(ctx, "columns.torrents", raw); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, _ := cctx.Settings.Get("columns.torrents")
	if !strings.Contains(v.String(), "name") || !strings.Contains(v.String(), "size") {
		t.Errorf("columns.torrents = %q, want name and size", v.String())
	}
}
