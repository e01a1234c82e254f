package bridge

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cellbridge/internal/host"
	"github.com/dshills/cellbridge/internal/tui"
)

// LuaColourConverter delegates colour conversion to a Lua script. The script
// defines a global function
//
//	function convert(target, kind, a, b, c, modifiers)
//
// where target is "fg" or "bg", kind is "reset", "named", "rgb" or
// "indexed", and a, b, c carry the colour: the name for named colours, the
// channels for RGB and the index for indexed colours. modifiers is the
// modifier set as a string such as "bold|italic".
//
// convert returns either r, g, b with an optional alpha, or a single colour
// string accepted by host.ParseColor. Returning nil defers to the fallback
// converter. A script error or an unusable result converts to the
// fallback's default for that call site, so conversion never fails. Each
// call runs under a deadline (DefaultScriptTimeout unless overridden with
// WithScriptTimeout); a script that overruns it also converts to the default.
//
// gopher-lua states are not goroutine-safe; calls are serialized.
type LuaColourConverter struct {
	mu       sync.Mutex
	L        *lua.LState
	convert  *lua.LFunction
	fallback BasicColourConverter
	lastErr  error
	closed   bool
	timeout  time.Duration
}

// DefaultScriptTimeout bounds a single run of the script, both the initial
// load and each convert call.
const DefaultScriptTimeout = 50 * time.Millisecond

// LuaOption configures a LuaColourConverter.
type LuaOption func(*LuaColourConverter)

// WithScriptTimeout sets the per-call deadline. Zero or negative disables it.
func WithScriptTimeout(d time.Duration) LuaOption {
	return func(c *LuaColourConverter) {
		c.timeout = d
	}
}

// NewLuaColourConverter runs source and returns a converter calling its
// convert function.
func NewLuaColourConverter(source string, fallback BasicColourConverter, opts ...LuaOption) (*LuaColourConverter, error) {
	return newLuaColourConverter(fallback, opts, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

// LoadLuaColourConverter is NewLuaColourConverter for a script file.
func LoadLuaColourConverter(path string, fallback BasicColourConverter, opts ...LuaOption) (*LuaColourConverter, error) {
	return newLuaColourConverter(fallback, opts, func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

func newLuaColourConverter(fallback BasicColourConverter, opts []LuaOption, load func(*lua.LState) error) (*LuaColourConverter, error) {
	c := &LuaColourConverter{fallback: fallback, timeout: DefaultScriptTimeout}
	for _, opt := range opts {
		opt(c)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	c.L = L

	if err := c.withDeadline(func() error { return load(L) }); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading colour script: %w", err)
	}

	fn, ok := L.GetGlobal("convert").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrScriptNoConvert
	}
	c.convert = fn

	return c, nil
}

// unsafeGlobals are base library functions that load code from outside the
// script.
var unsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring"}

// openSafeLibraries opens the libraries a colour policy needs and nothing
// with access to the file system or process.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}

// withDeadline runs fn with the state bound to a context that expires after
// the configured timeout.
func (c *LuaColourConverter) withDeadline(fn func() error) error {
	if c.timeout <= 0 {
		return doWithRecovery(fn)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	c.L.SetContext(ctx)
	defer c.L.RemoveContext()

	err := doWithRecovery(fn)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("colour script exceeded %v: %w", c.timeout, err)
	}
	return err
}

func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

func (c *LuaColourConverter) ConvertFg(color tui.Color, mod tui.Modifier) host.RGBA {
	return c.call("fg", color, mod, c.fallback.DefaultFg, c.fallback.ConvertFg)
}

func (c *LuaColourConverter) ConvertBg(color tui.Color, mod tui.Modifier) host.RGBA {
	return c.call("bg", color, mod, c.fallback.DefaultBg, c.fallback.ConvertBg)
}

func (c *LuaColourConverter) call(target string, color tui.Color, mod tui.Modifier, def host.RGBA,
	fallback func(tui.Color, tui.Modifier) host.RGBA) host.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fallback(color, mod)
	}

	args := colourArgs(target, color, mod)
	err := c.withDeadline(func() error {
		return c.L.CallByParam(lua.P{Fn: c.convert, NRet: 4, Protect: true}, args...)
	})
	if err != nil {
		c.lastErr = err
		c.L.SetTop(0)
		return def
	}

	ret := [4]lua.LValue{c.L.Get(-4), c.L.Get(-3), c.L.Get(-2), c.L.Get(-1)}
	c.L.Pop(4)

	if ret[0] == lua.LNil {
		return fallback(color, mod)
	}
	rgba, err := resultToRGBA(ret)
	if err != nil {
		c.lastErr = err
		return def
	}
	return rgba
}

func colourArgs(target string, color tui.Color, mod tui.Modifier) []lua.LValue {
	args := []lua.LValue{lua.LString(target), lua.LNil, lua.LNil, lua.LNil, lua.LNil, lua.LString(mod.String())}
	switch color.Kind() {
	case tui.KindNamed:
		args[1] = lua.LString("named")
		args[2] = lua.LString(color.Name().String())
	case tui.KindRGB:
		r, g, b := color.RGB()
		args[1] = lua.LString("rgb")
		args[2], args[3], args[4] = lua.LNumber(r), lua.LNumber(g), lua.LNumber(b)
	case tui.KindIndexed:
		args[1] = lua.LString("indexed")
		args[2] = lua.LNumber(color.Index())
	default:
		args[1] = lua.LString("reset")
	}
	return args
}

func resultToRGBA(ret [4]lua.LValue) (host.RGBA, error) {
	if s, ok := ret[0].(lua.LString); ok {
		return host.ParseColor(string(s))
	}

	var ch [4]uint8
	for i, v := range ret {
		if i == 3 && v == lua.LNil {
			ch[i] = 255
			continue
		}
		n, ok := v.(lua.LNumber)
		if !ok {
			return host.RGBA{}, fmt.Errorf("channel %d: expected number, got %s", i, v.Type())
		}
		f := float64(n)
		if math.IsNaN(f) || f < 0 || f > 255 {
			return host.RGBA{}, fmt.Errorf("channel %d: %v out of range", i, f)
		}
		ch[i] = uint8(math.Round(f))
	}
	return host.NewRGBA(ch[0], ch[1], ch[2], ch[3]), nil
}

// LastError returns the most recent script failure, or nil.
func (c *LuaColourConverter) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Close releases the Lua state. Afterwards every conversion uses the
// fallback converter.
func (c *LuaColourConverter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.L.Close()
}
