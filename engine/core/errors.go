package core

import "go.trai.ch/zerr"

var (
	// ErrShaderCompile is returned when the driver rejects shader source.
	ErrShaderCompile = zerr.New("shader compile failed")

	// ErrProgramLink is returned when the driver cannot link a vertex/fragment pair.
	ErrProgramLink = zerr.New("program link failed")

	// ErrUnknownStage is returned for a ShaderStage outside vertex and fragment.
	ErrUnknownStage = zerr.New("unknown shader stage")
)
