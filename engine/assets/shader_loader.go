package assets

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// ShaderDir is where bare shader names are looked up.
var ShaderDir = filepath.Join("assets", "shaders")

// ShaderPath resolves a shader name to a file path. Names that already carry
// a directory are used as given.
func ShaderPath(name string) string {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	return filepath.Join(ShaderDir, name)
}

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	path := ShaderPath(name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "load shader"), "path", path)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
