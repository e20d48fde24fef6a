package core

import (
	"log/slog"
	"runtime"
	"time"

	"go.trai.ch/zerr"
)

// Run wires the platform window + renderer and executes the main loop.
// Every renderer and shader call happens on the calling goroutine, which is
// locked to its OS thread for the lifetime of the GL context.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return zerr.Wrap(err, "create window")
	}
	// The window owns the context: it goes away after the renderer shuts down.
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return zerr.Wrap(err, "create renderer")
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			handled = l.OnEvent(eng, ev)
			return handled
		})
		if !handled {
			app.OnEvent(eng, ev)
		}
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	if err := app.OnStart(eng); err != nil {
		eng.Layers.Clear(eng)
		return zerr.Wrap(err, "start app")
	}

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, float64(tick)/float64(time.Second))
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		win.SwapBuffers()
	}

	eng.Layers.Clear(eng)
	app.OnShutdown(eng)
	slog.Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}
