package shadercache

import "go.trai.ch/zerr"

var (
	// ErrCacheClosed is returned by every operation after Close.
	ErrCacheClosed = zerr.New("shader cache closed")

	// ErrNoVertexStage is returned when even the default vertex stage failed to compile.
	ErrNoVertexStage = zerr.New("no vertex stage installed")
)
