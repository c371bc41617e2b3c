package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/maskedit/internal/registry"
)

// Loader runs mask plugin scripts and collects what they register.
// Each script gets its own sandboxed state, kept alive for the
// lifetime of the Loader so registered validator functions stay
// callable.
type Loader struct {
	mu sync.Mutex

	reg        *registry.Registry
	states     []*State
	validators map[string]*boundValidator
	errs       []error
}

// boundValidator ties a Lua function to the state it lives in.
type boundValidator struct {
	state *State
	fn    *lua.LFunction
}

// NewLoader creates a loader that registers masks into reg.
func NewLoader(reg *registry.Registry) *Loader {
	return &Loader{
		reg:        reg,
		validators: make(map[string]*boundValidator),
	}
}

// LoadDir executes every *.lua file in dir, in name order. A script
// that fails is recorded in Errors and skipped; LoadDir itself only
// fails when the directory cannot be read. A missing directory is
// treated as empty.
func (l *Loader) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading plugin directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".lua" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := l.loadFile(path); err != nil {
			l.mu.Lock()
			l.errs = append(l.errs, fmt.Errorf("plugin %s: %w", filepath.Base(path), err))
			l.mu.Unlock()
		}
	}
	return nil
}

// LoadScript executes Lua source directly, mainly for tests and
// embedded defaults.
func (l *Loader) LoadScript(name, code string) error {
	state := NewState()
	l.install(state)
	if err := state.DoString(code); err != nil {
		state.Close()
		return fmt.Errorf("plugin %s: %w", name, err)
	}
	l.mu.Lock()
	l.states = append(l.states, state)
	l.mu.Unlock()
	return nil
}

// Validator returns the registered whole-value validator for a mask
// name, adapted to a plain Go function. The returned function yields
// false on any script error.
func (l *Loader) Validator(name string) (func(raw string) bool, bool) {
	l.mu.Lock()
	bound, ok := l.validators[name]
	l.mu.Unlock()
	if !ok {
		return nil, false
	}
	return func(raw string) bool {
		ret, err := bound.state.CallFunction(bound.fn, raw)
		if err != nil {
			return false
		}
		return lua.LVAsBool(ret)
	}, true
}

// Errors returns the failures collected while loading.
func (l *Loader) Errors() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]error(nil), l.errs...)
}

// Close releases all plugin states.
func (l *Loader) Close() {
	l.mu.Lock()
	states := l.states
	l.states = nil
	l.validators = make(map[string]*boundValidator)
	l.mu.Unlock()

	for _, s := range states {
		s.Close()
	}
}

// loadFile runs one script in a fresh sandboxed state.
func (l *Loader) loadFile(path string) error {
	state := NewState()
	l.install(state)
	if err := state.DoFile(path); err != nil {
		state.Close()
		return err
	}
	l.mu.Lock()
	l.states = append(l.states, state)
	l.mu.Unlock()
	return nil
}

// install exposes the maskedit module to a plugin state.
func (l *Loader) install(state *State) {
	L := state.L
	mod := L.NewTable()

	L.SetField(mod, "register", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		def := registry.Definition{
			Name:        lua.LVAsString(L.GetField(tbl, "name")),
			Pattern:     lua.LVAsString(L.GetField(tbl, "pattern")),
			Description: lua.LVAsString(L.GetField(tbl, "description")),
		}
		for _, r := range lua.LVAsString(L.GetField(tbl, "prompt")) {
			def.Prompt = r
			break
		}
		if err := l.reg.Register(def); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetField(mod, "validator", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		fn := L.CheckFunction(2)
		l.mu.Lock()
		l.validators[name] = &boundValidator{state: state, fn: fn}
		l.mu.Unlock()
		return 0
	}))

	L.SetGlobal("maskedit", mod)
}
