package shader

// Source is one shader stage in both dialects. GLSL is what gets compiled;
// ESSL is the WebGL2 edition that can be translated to replace it.
type Source struct {
	GLSL string
	ESSL string
}

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const orangeFragmentShaderSourceGL = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

const yellowFragmentShaderSourceGL = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 1.0f, 0.0f, 1.0f);
}
`

// ──────────────────────────────────── GLES ──────────────────────────────────────

const vertexShaderSourceGLES = `#version 300 es
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const orangeFragmentShaderSourceGLES = `#version 300 es
precision mediump float;
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const yellowFragmentShaderSourceGLES = `#version 300 es
precision mediump float;
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 1.0, 0.0, 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// Vertex passes aPos (attribute 0) through unchanged.
func Vertex() Source {
	return Source{GLSL: vertexShaderSourceGL, ESSL: vertexShaderSourceGLES}
}

func OrangeFragment() Source {
	return Source{GLSL: orangeFragmentShaderSourceGL, ESSL: orangeFragmentShaderSourceGLES}
}

func YellowFragment() Source {
	return Source{GLSL: yellowFragmentShaderSourceGL, ESSL: yellowFragmentShaderSourceGLES}
}
