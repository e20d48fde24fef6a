package shadercache

import (
	"fmt"

	"github.com/hubastard/tint/engine/colors"
)

// DefaultVertexSource passes a 2D position straight through to clip space.
const DefaultVertexSource = `#version 330 core
layout(location = 0) in vec2 aPos;
void main()
{
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

// FragmentSource returns the fragment stage that paints every pixel with c.
// Identical colors always yield identical source.
func FragmentSource(c colors.Color) string {
	return fmt.Sprintf("#version 330 core\n"+
		"out vec4 color;\n"+
		"void main()\n"+
		"{\n"+
		"color = vec4(%ff, %ff, %ff, %ff);\n"+
		"}\n",
		c[0], c[1], c[2], c[3])
}
