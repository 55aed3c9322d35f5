package graphics

// ShaderStage is the pipeline stage a shader unit is compiled for.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Device is the subset of the OpenGL API used to build and draw static
// triangle geometry. Handles are raw GL object names.
type Device interface {
	// Init resolves the GL function table against the current context.
	Init() error
	Version() string

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most maxLength bytes of the compile log.
	ShaderInfoLog(shader uint32, maxLength int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, maxLength int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	// StaticBufferData uploads data to the bound array buffer with static usage.
	StaticBufferData(data []float32)
	DeleteBuffer(vbo uint32)
	// VertexAttribPointer declares a float attribute; stride and offset are in bytes.
	VertexAttribPointer(index uint32, size, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	PolygonLines(enabled bool)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearColorBuffer()
	DrawTriangles(first, count int32)
}
