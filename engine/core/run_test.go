package core_test

import (
	"errors"
	"testing"

	"github.com/hubastard/tint/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	frames    int
	maxFrames int
	closed    bool
	destroyed bool
	cb        func(core.Event)
	pending   []core.Event
}

func (w *fakeWindow) PollEvents() {
	for _, ev := range w.pending {
		if w.cb != nil {
			w.cb(ev)
		}
	}
	w.pending = nil
}
func (w *fakeWindow) SwapBuffers()                         { w.frames++ }
func (w *fakeWindow) ShouldClose() bool                    { return w.closed || w.frames >= w.maxFrames }
func (w *fakeWindow) SetShouldClose(v bool)                { w.closed = v }
func (w *fakeWindow) FramebufferSize() (int, int)          { return 640, 480 }
func (w *fakeWindow) SetTitle(string)                      {}
func (w *fakeWindow) SetEventCallback(cb func(core.Event)) { w.cb = cb }
func (w *fakeWindow) Destroy()                             { w.destroyed = true }

type fakeRenderer struct {
	resizes  [][2]int
	clears   int
	shutdown bool
}

func (r *fakeRenderer) Init() error                         { return nil }
func (r *fakeRenderer) Resize(w, h int)                     { r.resizes = append(r.resizes, [2]int{w, h}) }
func (r *fakeRenderer) Clear(_, _, _, _ float32)            { r.clears++ }
func (r *fakeRenderer) ShaderCompiler() core.ShaderCompiler { return nil }
func (r *fakeRenderer) Shutdown()                           { r.shutdown = true }

func (r *fakeRenderer) DrawRect(core.ProgramHandle, float32, float32, float32, float32) {}

type recordingApp struct {
	startErr error
	calls    []string
	events   []core.Event
	layer    core.Layer
}

func (a *recordingApp) OnStart(e *core.Engine) error {
	a.calls = append(a.calls, "start")
	if a.layer != nil {
		e.Layers.Push(e, a.layer)
	}
	return a.startErr
}
func (a *recordingApp) OnUpdate(*core.Engine, float64) {}
func (a *recordingApp) OnRender(*core.Engine, float64) { a.calls = append(a.calls, "render") }
func (a *recordingApp) OnEvent(_ *core.Engine, ev core.Event) {
	a.events = append(a.events, ev)
}
func (a *recordingApp) OnShutdown(*core.Engine) { a.calls = append(a.calls, "shutdown") }

type swallowLayer struct {
	attached, detached bool
	renders            int
}

func (l *swallowLayer) OnAttach(*core.Engine)          { l.attached = true }
func (l *swallowLayer) OnDetach(*core.Engine)          { l.detached = true }
func (l *swallowLayer) OnRender(*core.Engine, float64) { l.renders++ }
func (l *swallowLayer) OnEvent(_ *core.Engine, ev core.Event) bool {
	_, ok := ev.(core.EventKey)
	return ok
}

func run(t *testing.T, app core.App, win *fakeWindow, rend *fakeRenderer) error {
	t.Helper()
	return core.Run(app, core.Config{Width: 640, Height: 480},
		func(core.Config) (core.Window, error) { return win, nil },
		func(core.Window, core.Config) (core.Renderer, error) { return rend, nil },
	)
}

func TestRun_RendersUntilClose(t *testing.T) {
	win := &fakeWindow{maxFrames: 3}
	rend := &fakeRenderer{}
	layer := &swallowLayer{}
	app := &recordingApp{layer: layer}

	require.NoError(t, run(t, app, win, rend))

	assert.Equal(t, []string{"start", "render", "render", "render", "shutdown"}, app.calls)
	assert.Equal(t, 3, rend.clears)
	assert.Equal(t, 3, layer.renders)
	assert.True(t, layer.attached)
	assert.True(t, layer.detached)
	assert.True(t, rend.shutdown)
	assert.True(t, win.destroyed)
	assert.Equal(t, [][2]int{{640, 480}}, rend.resizes)
}

func TestRun_LayersSwallowHandledEvents(t *testing.T) {
	win := &fakeWindow{maxFrames: 1}
	win.pending = []core.Event{
		core.EventKey{Key: core.KeyR, Down: true},
		core.EventResize{W: 800, H: 600},
	}
	rend := &fakeRenderer{}
	app := &recordingApp{layer: &swallowLayer{}}

	require.NoError(t, run(t, app, win, rend))

	require.Len(t, app.events, 1)
	assert.Equal(t, core.EventResize{W: 800, H: 600}, app.events[0])
	assert.Len(t, rend.resizes, 2)
}

func TestRun_StartFailure(t *testing.T) {
	win := &fakeWindow{maxFrames: 5}
	rend := &fakeRenderer{}
	layer := &swallowLayer{}
	startErr := errors.New("boom")
	app := &recordingApp{startErr: startErr, layer: layer}

	err := run(t, app, win, rend)

	require.Error(t, err)
	assert.ErrorIs(t, err, startErr)
	assert.Equal(t, []string{"start"}, app.calls)
	assert.True(t, layer.detached)
	assert.True(t, rend.shutdown)
}

func TestRun_WindowFailure(t *testing.T) {
	winErr := errors.New("no display")
	err := core.Run(&recordingApp{}, core.Config{},
		func(core.Config) (core.Window, error) { return nil, winErr },
		func(core.Window, core.Config) (core.Renderer, error) {
			t.Fatal("renderer must not be created without a window")
			return nil, nil
		},
	)
	assert.ErrorIs(t, err, winErr)
}

func TestLayerStack_PopOrder(t *testing.T) {
	var ls core.LayerStack
	e := &core.Engine{}
	a, b := &swallowLayer{}, &swallowLayer{}
	ls.Push(e, a)
	ls.Push(e, b)

	l, ok := ls.Pop(e)
	require.True(t, ok)
	assert.Same(t, b, l)
	assert.True(t, b.detached)
	assert.False(t, a.detached)

	ls.Clear(e)
	assert.Equal(t, 0, ls.Len())
	_, ok = ls.Pop(e)
	assert.False(t, ok)
}

func TestShaderStage_String(t *testing.T) {
	assert.Equal(t, "vertex", core.StageVertex.String())
	assert.Equal(t, "fragment", core.StageFragment.String())
	assert.Equal(t, "unknown", core.ShaderStage(7).String())
}

func TestSourceDigest(t *testing.T) {
	a := core.SourceDigest("void main() {}")
	assert.Equal(t, a, core.SourceDigest("void main() {}"))
	assert.NotEqual(t, a, core.SourceDigest("void main() { }"))
	assert.NotEmpty(t, a)
}
