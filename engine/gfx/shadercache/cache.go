// Package shadercache builds and caches solid-color shader programs.
//
// A Cache owns one vertex stage and hands out programs that pair it with a
// generated fragment stage per color, or with caller-authored "senior"
// fragment stages keyed by mark ID. Replacing the vertex stage invalidates
// linked programs lazily: they are purged on the next Program call, while
// compiled fragment stages are kept and simply relinked.
//
// A Cache is not safe for concurrent use. Call it from the thread that owns
// the graphics context.
package shadercache

import (
	"errors"
	"log/slog"

	"github.com/hubastard/tint/engine/colors"
	"github.com/hubastard/tint/engine/core"
	"go.trai.ch/zerr"
)

// Statistics counts the graphics work a Cache has issued.
type Statistics struct {
	Compiles      int
	Links         int
	ProgramHits   int
	FragmentHits  int
	Invalidations int

	Fragments int
	Programs  int
	Seniors   int
}

type Option func(*Cache)

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDefaultVertexSource replaces the vertex stage installed by New,
// ResetVertexStage and failed SetVertexStage calls.
func WithDefaultVertexSource(src string) Option {
	return func(c *Cache) { c.defaultVertexSource = src }
}

type Cache struct {
	gl  core.ShaderCompiler
	log *slog.Logger

	defaultVertexSource string
	vertex              core.ShaderHandle
	vertexChanged       bool

	fragments map[colors.Key]core.ShaderHandle
	programs  map[colors.Key]core.ProgramHandle
	seniors   map[int]core.ProgramHandle

	stats  Statistics
	closed bool
}

// New compiles the default vertex stage and returns an empty cache.
func New(gl core.ShaderCompiler, opts ...Option) (*Cache, error) {
	c := &Cache{
		gl:                  gl,
		log:                 slog.Default(),
		defaultVertexSource: DefaultVertexSource,
		fragments:           make(map[colors.Key]core.ShaderHandle),
		programs:            make(map[colors.Key]core.ProgramHandle),
		seniors:             make(map[int]core.ProgramHandle),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.installDefaultVertexStage(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) installDefaultVertexStage() error {
	vs, err := c.compile(core.StageVertex, c.defaultVertexSource)
	if err != nil {
		return zerr.Wrap(err, "install default vertex stage")
	}
	c.vertex = vs
	return nil
}

// SetVertexStage compiles source and makes it the vertex stage of every
// program handed out from now on. Programs linked against the previous stage
// are released on the next Program call.
//
// If source does not compile, the previous stage is still released and the
// default vertex stage is reinstalled, so the cache never keeps a broken stage.
func (c *Cache) SetVertexStage(source string) error {
	if c.closed {
		return ErrCacheClosed
	}
	vs, err := c.compile(core.StageVertex, source)
	c.releaseVertexStage()
	c.vertexChanged = true
	if err != nil {
		err = zerr.Wrap(err, "replace vertex stage")
		c.log.Warn("vertex stage rejected, restoring default", "error", err)
		if rerr := c.installDefaultVertexStage(); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	c.vertex = vs
	c.log.Info("vertex stage replaced", "shader", vs, "source", core.SourceDigest(source))
	return nil
}

// ResetVertexStage reinstalls the default vertex stage.
func (c *Cache) ResetVertexStage() error {
	if c.closed {
		return ErrCacheClosed
	}
	c.releaseVertexStage()
	c.vertexChanged = true
	return c.installDefaultVertexStage()
}

// VertexStage returns the current vertex stage, or zero if none is installed.
func (c *Cache) VertexStage() core.ShaderHandle { return c.vertex }

func (c *Cache) releaseVertexStage() {
	if c.vertex != 0 {
		c.gl.DeleteShader(c.vertex)
		c.vertex = 0
	}
}

// Program returns a program that paints solid color. Repeated calls for the
// same color return the same handle until the vertex stage changes. On
// failure it returns core.NoProgram and nothing is cached.
func (c *Cache) Program(color colors.Color) (core.ProgramHandle, error) {
	if c.closed {
		return core.NoProgram, ErrCacheClosed
	}
	key := color.Key()

	if c.vertexChanged {
		c.purgePrograms()
	} else if prog, ok := c.programs[key]; ok {
		c.stats.ProgramHits++
		return prog, nil
	}

	if c.vertex == 0 {
		return core.NoProgram, zerr.With(zerr.Wrap(ErrNoVertexStage, "build program"), "color", color.String())
	}

	if frag, ok := c.fragments[key]; ok {
		c.stats.FragmentHits++
		prog, err := c.link(frag)
		if err != nil {
			return core.NoProgram, zerr.With(err, "color", color.String())
		}
		c.programs[key] = prog
		return prog, nil
	}

	frag, err := c.compile(core.StageFragment, FragmentSource(color))
	if err != nil {
		return core.NoProgram, zerr.With(err, "color", color.String())
	}
	prog, err := c.link(frag)
	if err != nil {
		c.gl.DeleteShader(frag)
		return core.NoProgram, zerr.With(err, "color", color.String())
	}
	c.fragments[key] = frag
	c.programs[key] = prog
	return prog, nil
}

func (c *Cache) purgePrograms() {
	for _, prog := range c.programs {
		c.gl.DeleteProgram(prog)
	}
	c.log.Debug("purged programs after vertex stage change", "programs", len(c.programs))
	clear(c.programs)
	c.vertexChanged = false
	c.stats.Invalidations++
}

// BuildSeniorProgram links source as a fragment stage against the current
// vertex stage and stores the result under markID. Mark IDs are chosen by
// the caller; reusing one replaces the cached entry without releasing the
// previous program, which stays the caller's to delete.
func (c *Cache) BuildSeniorProgram(markID int, source string) (core.ProgramHandle, error) {
	if c.closed {
		return core.NoProgram, ErrCacheClosed
	}
	if c.vertex == 0 {
		return core.NoProgram, zerr.With(zerr.Wrap(ErrNoVertexStage, "build senior program"), "mark_id", markID)
	}
	frag, err := c.compile(core.StageFragment, source)
	if err != nil {
		return core.NoProgram, zerr.With(err, "mark_id", markID)
	}
	prog, err := c.link(frag)
	// The linked program keeps its own copy of the stage.
	c.gl.DeleteShader(frag)
	if err != nil {
		return core.NoProgram, zerr.With(err, "mark_id", markID)
	}
	if old, ok := c.seniors[markID]; ok {
		c.log.Warn("senior program replaced without release", "mark_id", markID, "previous", old, "program", prog)
	}
	c.seniors[markID] = prog
	return prog, nil
}

// SeniorProgram returns the program stored under markID, or core.NoProgram.
func (c *Cache) SeniorProgram(markID int) core.ProgramHandle {
	return c.seniors[markID]
}

func (c *Cache) Stats() Statistics {
	s := c.stats
	s.Fragments = len(c.fragments)
	s.Programs = len(c.programs)
	s.Seniors = len(c.seniors)
	return s
}

// Close releases every shader and program the cache owns.
func (c *Cache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, prog := range c.programs {
		c.gl.DeleteProgram(prog)
	}
	for _, prog := range c.seniors {
		c.gl.DeleteProgram(prog)
	}
	for _, frag := range c.fragments {
		c.gl.DeleteShader(frag)
	}
	c.releaseVertexStage()
	clear(c.programs)
	clear(c.seniors)
	clear(c.fragments)
}

func (c *Cache) compile(stage core.ShaderStage, source string) (core.ShaderHandle, error) {
	sh, err := c.gl.CompileShader(stage, source)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "compile shader"), "stage", stage.String())
	}
	c.stats.Compiles++
	c.log.Debug("compiled shader", "stage", stage, "shader", sh)
	return sh, nil
}

func (c *Cache) link(frag core.ShaderHandle) (core.ProgramHandle, error) {
	prog, err := c.gl.LinkProgram(c.vertex, frag)
	if err != nil {
		return core.NoProgram, zerr.Wrap(err, "link program")
	}
	c.stats.Links++
	c.log.Debug("linked program", "vertex", c.vertex, "fragment", frag, "program", prog)
	return prog, nil
}
