package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/tint/engine/core"
	"go.trai.ch/zerr"
)

// Compiler implements core.ShaderCompiler on the current GL context.
type Compiler struct{}

var _ core.ShaderCompiler = Compiler{}

func (Compiler) CompileShader(stage core.ShaderStage, source string) (core.ShaderHandle, error) {
	var shaderType uint32
	switch stage {
	case core.StageVertex:
		shaderType = gl.VERTEX_SHADER
	case core.StageFragment:
		shaderType = gl.FRAGMENT_SHADER
	default:
		return 0, zerr.With(zerr.Wrap(core.ErrUnknownStage, "compile shader"), "stage", int(stage))
	}

	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(terminate(source))
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(sh, logLen, nil, buf) })
		gl.DeleteShader(sh)
		err := fmt.Errorf("%w: %s", core.ErrShaderCompile, log)
		return 0, zerr.With(err, "source", core.SourceDigest(source))
	}
	return core.ShaderHandle(sh), nil
}

func (Compiler) DeleteShader(shader core.ShaderHandle) {
	gl.DeleteShader(uint32(shader))
}

// LinkProgram links the pair and detaches both stages again, so deleting a
// stage later does not wait on the program.
func (Compiler) LinkProgram(vertex, fragment core.ShaderHandle) (core.ProgramHandle, error) {
	prog := gl.CreateProgram()
	gl.AttachShader(prog, uint32(vertex))
	gl.AttachShader(prog, uint32(fragment))
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DetachShader(prog, uint32(vertex))
	gl.DetachShader(prog, uint32(fragment))

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(prog, logLen, nil, buf) })
		gl.DeleteProgram(prog)
		return core.NoProgram, fmt.Errorf("%w: %s", core.ErrProgramLink, log)
	}
	return core.ProgramHandle(prog), nil
}

func (Compiler) DeleteProgram(program core.ProgramHandle) {
	gl.DeleteProgram(uint32(program))
}

// terminate appends the NUL that gl.Strs expects.
func terminate(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

func infoLog(logLen int32, read func(buf *uint8)) string {
	if logLen <= 0 {
		return "no info log"
	}
	log := strings.Repeat("\x00", int(logLen))
	read(gl.Str(log))
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}
