package script

import (
	"context"
	"fmt"

	"github.com/dshills/torq/internal/command"
	"github.com/dshills/torq/internal/keymap"

	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
	"mvdan.cc/sh/v3/shell"
)

// Engine runs Lua scripts against a command context.
type Engine struct {
	cmd *command.Context
}

// New creates an engine bound to cmd.
func New(cmd *command.Context) *Engine {
	return &Engine{cmd: cmd}
}

// RunFile loads and runs one Lua script.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	data, err := afero.ReadFile(e.cmd.Fs, path)
	if err != nil {
		return err
	}
	return e.Run(ctx, string(data))
}

// Run executes Lua source in a fresh state with the torq module
// installed.
func (e *Engine) Run(ctx context.Context, source string) error {
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"get":  e.luaGet,
		"set":  e.luaSet,
		"bind": e.luaBind,
		"cmd":  e.luaCmd,
	})
	L.SetGlobal("torq", mod)

	return L.DoString(source)
}

// luaGet returns a setting's string value, or nil and an error message.
//
//	value, err = torq.get(name)
func (e *Engine) luaGet(L *lua.LState) int {
	name := L.CheckString(1)
	v, err := e.cmd.Settings.Get(name)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(v.String()))
	return 1
}

// luaSet changes a setting through the full set pipeline, so delta
// operators work from scripts too.
//
//	ok = torq.set(name, value)
func (e *Engine) luaSet(L *lua.LState) int {
	name := L.CheckString(1)
	val := L.CheckString(2)
	st := e.cmd.Run(L.Context(), []string{"set", name, val})
	L.Push(lua.LBool(st == command.StatusSuccess))
	return 1
}

// luaBind registers a key binding.
//
//	ok, err = torq.bind(key, action)
//	ok, err = torq.bind(key, action, context)
func (e *Engine) luaBind(L *lua.LState) int {
	key := L.CheckString(1)
	action := L.CheckString(2)
	bindCtx := L.OptString(3, "")

	if e.cmd.Keys == nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString("no keymap available"))
		return 2
	}
	err := e.cmd.Keys.Bind(keymap.Binding{Context: bindCtx, Key: key, Action: action})
	if err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

// luaCmd tokenizes and dispatches one command line.
//
//	ok = torq.cmd(line)
func (e *Engine) luaCmd(L *lua.LState) int {
	line := L.CheckString(1)
	fields, err := shell.Fields(line, nil)
	if err != nil {
		L.RaiseError("%s", fmt.Sprintf("cannot tokenize %q: %v", line, err))
		return 0
	}
	st := e.cmd.Run(L.Context(), fields)
	L.Push(lua.LBool(st != command.StatusFailure))
	return 1
}
