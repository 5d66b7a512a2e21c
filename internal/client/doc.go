// Package client implements the Transfer API client for a
// Transmission-style torrent daemon.
//
// Requests are JSON-RPC style documents POSTed to a single endpoint.
// The client keeps a session snapshot (the daemon's session-get
// arguments) that callers read synchronously; RefreshSession renews it
// with one round trip. Rate limits are modelled as Numbers in bytes per
// second, with a disabled limit surfaced as infinity.
package client
