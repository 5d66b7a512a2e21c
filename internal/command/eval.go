package command

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ShellEvalError reports a failed ":eval" shell command. A command
// counts as failed when it writes to stderr, regardless of exit code.
type ShellEvalError struct {
	// Cmd is the shell command line.
	Cmd string

	// Output is the command's stderr, or the parse error text.
	Output string
}

// Error returns "Shell command failed: <output>".
func (e *ShellEvalError) Error() string {
	return fmt.Sprintf("Shell command failed: %s", e.Output)
}

// evalShell runs cmdline through a shell and returns its trimmed
// stdout. Anything on stderr fails the evaluation; the exit code is
// ignored.
func evalShell(ctx context.Context, cmdline string) (string, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(cmdline), "")
	if err != nil {
		return "", &ShellEvalError{Cmd: cmdline, Output: err.Error()}
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(interp.StdIO(nil, &stdout, &stderr))
	if err != nil {
		return "", &ShellEvalError{Cmd: cmdline, Output: err.Error()}
	}
	// Run's error only reflects the exit code, which does not decide
	// success here.
	_ = runner.Run(ctx, prog)

	if stderr.Len() > 0 {
		return "", &ShellEvalError{Cmd: cmdline, Output: strings.TrimSpace(stderr.String())}
	}
	return strings.TrimSpace(stdout.String()), nil
}
