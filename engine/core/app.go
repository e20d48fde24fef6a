package core

import (
	"time"

	"github.com/hubastard/tint/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error           // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit, context still current
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Layers   LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(v bool)
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer draws solid quads with programs handed out by the shader cache.
// Coordinates are normalized device coordinates.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	DrawRect(program ProgramHandle, x0, y0, x1, y1 float32)
	ShaderCompiler() ShaderCompiler
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// Key/mod enums (subset).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyR
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color"`
}
