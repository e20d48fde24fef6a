package main

import (
	"fmt"
	"strings"

	"github.com/hubastard/tint/engine/core"
)

type fakeCompiler struct {
	next     uint32
	compiles map[core.ShaderStage]int
	links    int
	shaders  map[core.ShaderHandle]bool
	programs map[core.ProgramHandle]bool
}

func newFakeCompiler() *fakeCompiler {
	return &fakeCompiler{
		compiles: make(map[core.ShaderStage]int),
		shaders:  make(map[core.ShaderHandle]bool),
		programs: make(map[core.ProgramHandle]bool),
	}
}

func (f *fakeCompiler) CompileShader(stage core.ShaderStage, source string) (core.ShaderHandle, error) {
	f.compiles[stage]++
	if strings.Contains(source, "error") || strings.Contains(source, "NaN") {
		return 0, fmt.Errorf("%w: 0:1: syntax error", core.ErrShaderCompile)
	}
	f.next++
	f.shaders[core.ShaderHandle(f.next)] = true
	return core.ShaderHandle(f.next), nil
}

func (f *fakeCompiler) DeleteShader(shader core.ShaderHandle) { delete(f.shaders, shader) }

func (f *fakeCompiler) LinkProgram(_, _ core.ShaderHandle) (core.ProgramHandle, error) {
	f.links++
	f.next++
	f.programs[core.ProgramHandle(f.next)] = true
	return core.ProgramHandle(f.next), nil
}

func (f *fakeCompiler) DeleteProgram(program core.ProgramHandle) { delete(f.programs, program) }

type drawCall struct {
	program        core.ProgramHandle
	x0, y0, x1, y1 float32
}

type fakeRenderer struct {
	gl    *fakeCompiler
	draws []drawCall
}

func (r *fakeRenderer) Init() error                         { return nil }
func (r *fakeRenderer) Resize(int, int)                     {}
func (r *fakeRenderer) Clear(_, _, _, _ float32)            {}
func (r *fakeRenderer) ShaderCompiler() core.ShaderCompiler { return r.gl }
func (r *fakeRenderer) Shutdown()                           {}

func (r *fakeRenderer) DrawRect(program core.ProgramHandle, x0, y0, x1, y1 float32) {
	r.draws = append(r.draws, drawCall{program, x0, y0, x1, y1})
}

type fakeWindow struct {
	title  string
	closed bool
}

func (w *fakeWindow) PollEvents()                       {}
func (w *fakeWindow) SwapBuffers()                      {}
func (w *fakeWindow) ShouldClose() bool                 { return w.closed }
func (w *fakeWindow) SetShouldClose(v bool)             { w.closed = v }
func (w *fakeWindow) FramebufferSize() (int, int)       { return 1280, 720 }
func (w *fakeWindow) SetTitle(t string)                 { w.title = t }
func (w *fakeWindow) SetEventCallback(func(core.Event)) {}
func (w *fakeWindow) Destroy()                          {}
