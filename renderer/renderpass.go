package renderer

import (
	"github.com/richinsley/gltriangle/graphics"
)

// ShaderUnit is one compiled shader stage. It only lives until every program
// that uses it has been linked.
type ShaderUnit struct {
	Stage    graphics.ShaderStage
	Handle   uint32
	Compiled bool
	InfoLog  string
}

// Program is a linked vertex+fragment pipeline. A program that failed to link
// keeps its handle and is still bound for drawing.
type Program struct {
	Name    string
	Handle  uint32
	Linked  bool
	InfoLog string
}

// Geometry is a static vertex buffer together with the vertex array that maps
// it onto attribute 0.
type Geometry struct {
	Name        string
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// RenderPass is one draw call issued every frame.
type RenderPass struct {
	Program  *Program
	Geometry *Geometry
}
