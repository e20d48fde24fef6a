package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/tint/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, core.KeyEscape, translateKey(glfw.KeyEscape))
	assert.Equal(t, core.KeySpace, translateKey(glfw.KeySpace))
	assert.Equal(t, core.KeyR, translateKey(glfw.KeyR))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeyQ))
}

func TestTranslateMods(t *testing.T) {
	assert.Equal(t, core.ModNone, translateMods(0))
	assert.Equal(t, core.ModShift|core.ModCtrl, translateMods(glfw.ModShift|glfw.ModControl))
	assert.Equal(t, core.ModAlt|core.ModSuper, translateMods(glfw.ModAlt|glfw.ModSuper))
}
