// Package keymap maps key chords to command lines per UI context.
//
// Keys are written in a compact textual form ("q", "ctrl-x", "alt-up",
// "F5"); a chord's canonical spelling is produced by Key.String so two
// spellings of the same chord overwrite each other. Bindings are grouped
// by context name; the "all" context applies everywhere.
package keymap
