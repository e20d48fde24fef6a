package main

import (
	"context"
	"log/slog"

	"github.com/hubastard/tint/engine/colors"
	"github.com/hubastard/tint/engine/core"
	"github.com/hubastard/tint/engine/gfx/shadercache"
	"github.com/hubastard/tint/engine/profiler"
	"go.trai.ch/zerr"
)

// swatchLayer paints one solid-color cell per configured color.
type swatchLayer struct {
	cache    *shadercache.Cache
	log      *slog.Logger
	prof     *profiler.Recorder
	grid     grid
	swatches []colors.Color
	failing  map[colors.Key]bool
}

func newSwatchLayer(cache *shadercache.Cache, log *slog.Logger, prof *profiler.Recorder, g grid, swatches []colors.Color) *swatchLayer {
	return &swatchLayer{
		cache:    cache,
		log:      log,
		prof:     prof,
		grid:     g,
		swatches: swatches,
		failing:  make(map[colors.Key]bool),
	}
}

func (l *swatchLayer) OnAttach(*core.Engine) {}
func (l *swatchLayer) OnDetach(*core.Engine) {}

func (l *swatchLayer) OnRender(e *core.Engine, _ float64) {
	defer l.prof.Start("draw swatches")()
	for i, c := range l.swatches {
		prog, err := l.cache.Program(c)
		if err != nil {
			// Failures are retried every frame; report each color once.
			if !l.failing[c.Key()] {
				l.failing[c.Key()] = true
				zerr.Log(context.Background(), l.log, err)
			}
			continue
		}
		delete(l.failing, c.Key())
		x0, y0, x1, y1 := l.grid.cell(i%l.grid.cols, i/l.grid.cols)
		e.Renderer.DrawRect(prog, x0, y0, x1, y1)
	}
}

func (l *swatchLayer) OnEvent(*core.Engine, core.Event) bool { return false }

// seniorLayer paints the caller-authored programs on its own row.
type seniorLayer struct {
	cache   *shadercache.Cache
	grid    grid
	row     int
	markIDs []int
}

func (l *seniorLayer) OnAttach(*core.Engine) {}
func (l *seniorLayer) OnDetach(*core.Engine) {}

func (l *seniorLayer) OnRender(e *core.Engine, _ float64) {
	for i, id := range l.markIDs {
		if i >= l.grid.cols {
			return
		}
		prog := l.cache.SeniorProgram(id)
		if prog == core.NoProgram {
			continue
		}
		x0, y0, x1, y1 := l.grid.cell(i, l.row)
		e.Renderer.DrawRect(prog, x0, y0, x1, y1)
	}
}

func (l *seniorLayer) OnEvent(*core.Engine, core.Event) bool { return false }
