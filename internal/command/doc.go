// Package command implements torq's line-oriented commands: set, reset,
// ratelimit, dump, rc, bind and unbind.
//
// Commands run against a Context bundling the settings registry, the
// daemon client, the keymap and the output sink. Each command reports a
// Status instead of an error; human-readable diagnostics go to the
// output sink so multi-target commands can report every failure and
// still aggregate a single status.
//
// Setting values support delta operators ("+=", "-=") against the
// current value of numeric settings and a ":eval" name suffix that
// resolves the value by running a shell command.
package command
