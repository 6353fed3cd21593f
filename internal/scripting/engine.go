package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for per-object behavior scripts.
// Single-goroutine access only (frame loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. A missing directory is not an error; the engine simply exposes
// no behaviors and the built-in AI applies.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load behavior scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString executes raw Lua source. Test hook.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// ObjectContext holds pre-packed data for one object's behavior decision.
// Go detects state, Lua decides, Go executes the returned commands.
type ObjectContext struct {
	Name    string
	X, Y, Z float64
	Scale   float64
	Dt      float64 // seconds since the previous tick
}

// Command is a single action returned by a Lua behavior.
type Command struct {
	Type       string  // "move", "idle"
	VX, VY, VZ float64 // velocity in units/s; the AI system integrates over dt
}

// HasBehavior reports whether a loaded script defines object_behavior.
func (e *Engine) HasBehavior() bool {
	return e.vm.GetGlobal("object_behavior") != lua.LNil
}

// RunBehavior calls Lua object_behavior(ctx) and returns the commands it
// decided on. Returns nil when no behavior is defined or the call fails, in
// which case the caller falls back to the built-in AI.
func (e *Engine) RunBehavior(ctx ObjectContext) []Command {
	fn := e.vm.GetGlobal("object_behavior")
	if fn == lua.LNil {
		return nil
	}

	t := e.vm.NewTable()
	t.RawSetString("name", lua.LString(ctx.Name))
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("y", lua.LNumber(ctx.Y))
	t.RawSetString("z", lua.LNumber(ctx.Z))
	t.RawSetString("scale", lua.LNumber(ctx.Scale))
	t.RawSetString("dt", lua.LNumber(ctx.Dt))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua object_behavior error", zap.Error(err), zap.String("object", ctx.Name))
		return nil
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil
	}

	// Non-nil even when empty: an empty command list is a deliberate "do
	// nothing", distinct from the nil returned on failure.
	cmds := make([]Command, 0, 1)
	rt.ForEach(func(_, v lua.LValue) {
		if row, ok := v.(*lua.LTable); ok {
			cmds = append(cmds, Command{
				Type: lStr(row, "type"),
				VX:   lNum(row, "vx"),
				VY:   lNum(row, "vy"),
				VZ:   lNum(row, "vz"),
			})
		}
	})
	return cmds
}

// --- Lua helpers ---

func lNum(t *lua.LTable, key string) float64 {
	return float64(lua.LVAsNumber(t.RawGetString(key)))
}

func lStr(t *lua.LTable, key string) string {
	return lua.LVAsString(t.RawGetString(key))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
