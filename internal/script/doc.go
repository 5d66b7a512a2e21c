// Package script runs Lua rc files.
//
// Scripts see a "torq" module with access to settings, key bindings and
// the command dispatcher, so an rc script can mix declarative setup with
// logic:
//
//	if torq.get("connect.host") == "localhost" then
//	    torq.set("tui.poll", "2")
//	end
//	torq.bind("q", "quit")
//	torq.cmd("ratelimit up 1M")
package script
