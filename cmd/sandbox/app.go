package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hubastard/tint/engine/assets"
	"github.com/hubastard/tint/engine/core"
	"github.com/hubastard/tint/engine/gfx/shadercache"
	"github.com/hubastard/tint/engine/profiler"
	"go.trai.ch/zerr"
)

type App struct {
	cfg   sandboxConfig
	log   *slog.Logger
	watch bool

	gl      core.ShaderCompiler
	cache   *shadercache.Cache
	watcher *assets.ShaderWatcher
	tick    int
	stats   shadercache.Statistics

	prof        *profiler.Recorder
	profilePath string
}

func (a *App) OnStart(e *core.Engine) error {
	a.gl = e.Renderer.ShaderCompiler()
	cache, err := shadercache.New(a.gl, shadercache.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.cache = cache

	if a.cfg.VertexShader != "" {
		a.reloadVertexStage()
		if a.watch {
			a.watcher, err = assets.WatchShaders(a.log, a.cfg.VertexShader)
			if err != nil {
				a.logError(zerr.Wrap(err, "hot reload disabled"))
			}
		}
	}
	a.buildSeniorPrograms()

	swatchRows := rowsFor(len(a.cfg.Swatches), a.cfg.Columns)
	rows := swatchRows
	if len(a.cfg.Senior) > 0 {
		rows++
	}
	g := newGrid(a.cfg.Columns, rows)
	e.Layers.Push(e, newSwatchLayer(a.cache, a.log, a.prof, g, a.cfg.Swatches))
	if len(a.cfg.Senior) > 0 {
		ids := make([]int, len(a.cfg.Senior))
		for i, s := range a.cfg.Senior {
			ids[i] = s.MarkID
		}
		e.Layers.Push(e, &seniorLayer{cache: a.cache, grid: g, row: swatchRows, markIDs: ids})
	}
	return nil
}

func (a *App) OnUpdate(e *core.Engine, _ float64) {
	a.tick++
	if a.drainWatcher() {
		a.reloadVertexStage()
		// Seniors are never invalidated by the cache; relink them ourselves.
		a.buildSeniorPrograms()
	}
	if a.tick%60 == 0 {
		if s := a.cache.Stats(); s != a.stats {
			a.stats = s
			e.Window.SetTitle(fmt.Sprintf("%s | %d programs, %d fragments, %d links",
				a.cfg.Window.Title, s.Programs, s.Fragments, s.Links))
		}
	}
}

func (a *App) OnRender(*core.Engine, float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch ev := ev.(type) {
	case core.EventCloseRequested:
		e.Window.SetShouldClose(true)
	case core.EventKey:
		if !ev.Down {
			return
		}
		switch ev.Key {
		case core.KeyEscape:
			e.Window.SetShouldClose(true)
		case core.KeyR:
			if err := a.cache.ResetVertexStage(); err != nil {
				a.logError(err)
			}
			a.buildSeniorPrograms()
		case core.KeySpace:
			a.reloadVertexStage()
			a.buildSeniorPrograms()
		}
	}
}

func (a *App) OnShutdown(*core.Engine) {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.logError(err)
		}
	}
	s := a.cache.Stats()
	a.log.Info("shader cache stats",
		"compiles", s.Compiles, "links", s.Links,
		"program_hits", s.ProgramHits, "fragment_hits", s.FragmentHits,
		"invalidations", s.Invalidations)
	a.cache.Close()

	if a.profilePath != "" {
		if err := a.prof.WriteSpeedscope(a.profilePath, a.cfg.Window.Title); err != nil {
			a.logError(err)
		} else {
			a.log.Info("profile written", "path", a.profilePath, "events", a.prof.Len())
		}
	}
}

// drainWatcher reports whether any watched shader changed since the last call.
func (a *App) drainWatcher() bool {
	if a.watcher == nil {
		return false
	}
	changed := false
	for {
		select {
		case _, ok := <-a.watcher.Changes():
			if !ok {
				a.watcher = nil
				return changed
			}
			changed = true
		default:
			return changed
		}
	}
}

func (a *App) reloadVertexStage() {
	if a.cfg.VertexShader == "" {
		return
	}
	defer a.prof.Start("set vertex stage")()
	src, err := assets.LoadShader(a.cfg.VertexShader)
	if err != nil {
		a.logError(err)
		return
	}
	if err := a.cache.SetVertexStage(src); err != nil {
		a.logError(err)
	}
}

// buildSeniorPrograms (re)links every configured senior shader against the
// current vertex stage. A replaced program is ours to release.
func (a *App) buildSeniorPrograms() {
	defer a.prof.Start("build senior programs")()
	for _, s := range a.cfg.Senior {
		src, err := assets.LoadShader(s.Fragment)
		if err != nil {
			a.logError(zerr.With(err, "mark_id", s.MarkID))
			continue
		}
		old := a.cache.SeniorProgram(s.MarkID)
		if _, err := a.cache.BuildSeniorProgram(s.MarkID, src); err != nil {
			a.logError(err)
			continue
		}
		if old != core.NoProgram {
			a.gl.DeleteProgram(old)
		}
	}
}

func (a *App) logError(err error) {
	zerr.Log(context.Background(), a.log, err)
}
