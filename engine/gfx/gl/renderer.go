package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/tint/engine/core"
)

// Two triangles, vec2 position per vertex.
const quadFloats = 6 * 2

type RendererGL struct {
	win      core.Window
	compiler Compiler
	vao      uint32
	vbo      uint32
	verts    [quadFloats]float32
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, quadFloats*4, nil, gl.DYNAMIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	const stride = 2 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) ShaderCompiler() core.ShaderCompiler { return r.compiler }

func (r *RendererGL) Shutdown() {
	gl.UseProgram(0)
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawRect fills the NDC rectangle with program. NoProgram draws nothing.
func (r *RendererGL) DrawRect(program core.ProgramHandle, x0, y0, x1, y1 float32) {
	if program == core.NoProgram {
		return
	}
	r.verts = quad(x0, y0, x1, y1)

	gl.UseProgram(uint32(program))
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, quadFloats*4, gl.Ptr(&r.verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func quad(x0, y0, x1, y1 float32) [quadFloats]float32 {
	return [quadFloats]float32{
		x0, y0, x1, y0, x0, y1,
		x1, y0, x1, y1, x0, y1,
	}
}
