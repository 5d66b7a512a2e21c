// Package settings provides the combined local/remote configuration
// registry for torq.
//
// Local settings live in-process and are created once at startup from a
// fixed catalog with defaults and descriptions. Remote settings live on
// the torrent daemon; each one is backed by an Accessor that fetches and
// pushes its value over the Transfer API. Remote values are cached by a
// bulk Update (one round trip) and served from that cache until the next
// Update.
//
// The Settings façade merges both registries into a single namespace
// keyed by dotted name (local first, then remote) and dispatches reads
// and writes to the owning registry. Remote settings cannot be reset
// because no local default is tracked for them.
//
// The façade is not safe against concurrent writers; callers serialize
// writes per process (single in-flight command).
package settings
