package core

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ShaderStage selects which pipeline stage a shader source is compiled for.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// ShaderHandle is a compiled shader object owned by the graphics driver.
type ShaderHandle uint32

// ProgramHandle is a linked program. Zero is never a valid program.
type ProgramHandle uint32

// NoProgram is returned in place of a handle when compiling or linking fails.
const NoProgram ProgramHandle = 0

// ShaderCompiler is the graphics API surface needed to build programs.
// Implementations report driver rejections as ErrShaderCompile / ErrProgramLink.
// All calls must be made from the thread that owns the graphics context.
//
//go:generate mockgen -destination=mocks/mock_shader.go -package=mocks -source=shader.go
type ShaderCompiler interface {
	CompileShader(stage ShaderStage, source string) (ShaderHandle, error)
	DeleteShader(shader ShaderHandle)
	LinkProgram(vertex, fragment ShaderHandle) (ProgramHandle, error)
	DeleteProgram(program ProgramHandle)
}

// SourceDigest fingerprints shader source for logs and error metadata.
func SourceDigest(source string) string {
	return strconv.FormatUint(xxhash.Sum64String(source), 16)
}
