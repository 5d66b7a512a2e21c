package keymap

// defaultBindings is the built-in keymap.
var defaultBindings = []Binding{
	{ContextAll, "q", "quit", "Quit"},
	{ContextAll, "F1", "help", "Show help"},
	{ContextAll, "F5", "update", "Refresh from the daemon"},
	{ContextAll, "alt-up", "ratelimit up +=100kB", "Raise the global upload limit"},
	{ContextAll, "alt-down", "ratelimit up -=100kB", "Lower the global upload limit"},
	{ContextAll, "alt-shift-up", "ratelimit down +=100kB", "Raise the global download limit"},
	{ContextAll, "alt-shift-down", "ratelimit down -=100kB", "Lower the global download limit"},

	{"torrentlist", "k", "move up", "Move focus up"},
	{"torrentlist", "up", "move up", "Move focus up"},
	{"torrentlist", "j", "move down", "Move focus down"},
	{"torrentlist", "down", "move down", "Move focus down"},
	{"torrentlist", "g g", "move first", "Move focus to the first torrent"},
	{"torrentlist", "G", "move last", "Move focus to the last torrent"},
	{"torrentlist", "home", "move first", "Move focus to the first torrent"},
	{"torrentlist", "end", "move last", "Move focus to the last torrent"},
	{"torrentlist", "space", "mark toggle", "Toggle the mark of the focused torrent"},
	{"torrentlist", "ctrl-a", "mark all", "Mark all torrents"},
	{"torrentlist", "ctrl-u", "mark none", "Unmark all torrents"},
}

// Defaults returns a registry populated with the built-in keymap.
func Defaults() *Registry {
	r := New()
	for _, b := range defaultBindings {
		if err := r.Bind(b); err != nil {
			panic(err)
		}
	}
	return r
}
