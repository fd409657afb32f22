package transform

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Errors returned by the Lua engine.
var (
	ErrEngineClosed = errors.New("transform engine is closed")
	ErrNotAFunction = errors.New("script must return a function")
)

// Engine compiles user Lua scripts into transforms.
//
// A script is a chunk that returns a function taking the entry text and
// returning either the replacement string or nil to leave the entry
// unchanged:
//
//	return function(text)
//	    return text:gsub("%s+$", "")
//	end
//
// gopher-lua's LState is not goroutine-safe; the engine serializes all
// script execution behind its own mutex.
type Engine struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewEngine creates an engine with a restricted Lua environment: only
// the base, string and table libraries are opened, so scripts cannot
// reach the file system or spawn processes.
func NewEngine() *Engine {
	state := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.TabLibName, lua.OpenTable},
	} {
		state.Push(state.NewFunction(lib.fn))
		state.Push(lua.LString(lib.name))
		state.Call(1, 0)
	}

	return &Engine{state: state}
}

// Close releases the Lua state. Transforms compiled from this engine
// stop applying changes after Close.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.state.Close()
}

// Compile runs script and wraps the function it returns as a
// Transform. A transform whose Lua call fails or returns a
// non-string leaves the entry unchanged.
func (e *Engine) Compile(script string) (Transform, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrEngineClosed
	}

	if err := e.state.DoString(script); err != nil {
		return nil, fmt.Errorf("compiling transform script: %w", err)
	}

	// A chunk with no return leaves the stack empty.
	if e.state.GetTop() == 0 {
		return nil, ErrNotAFunction
	}

	ret := e.state.Get(-1)
	e.state.SetTop(0)

	fn, ok := ret.(*lua.LFunction)
	if !ok {
		return nil, ErrNotAFunction
	}

	return func(text string) (string, bool) {
		return e.call(fn, text)
	}, nil
}

func (e *Engine) call(fn *lua.LFunction, text string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return "", false
	}

	e.state.Push(fn)
	e.state.Push(lua.LString(text))
	if err := e.state.PCall(1, 1, nil); err != nil {
		return "", false
	}

	ret := e.state.Get(-1)
	e.state.Pop(1)

	out, ok := ret.(lua.LString)
	if !ok {
		return "", false
	}
	return string(out), true
}
