package renderer

import (
	"errors"
	"fmt"

	"github.com/richinsley/gltriangle/shader"
)

// ComponentsPerVertex is the size of attribute 0: x, y, z.
const ComponentsPerVertex = 3

// ProgramSource names a vertex+fragment pair to link.
type ProgramSource struct {
	Name     string
	Vertex   shader.Source
	Fragment shader.Source
}

// GeometrySource is a host-side array of tightly packed xyz positions.
type GeometrySource struct {
	Name     string
	Vertices []float32
}

// DrawCall pairs a program with a geometry set by name.
type DrawCall struct {
	Program  string
	Geometry string
}

// Scene describes everything a Renderer builds at setup and draws per frame.
// Draws are issued in slice order.
type Scene struct {
	Title     string
	Programs  []ProgramSource
	Geometry  []GeometrySource
	Draws     []DrawCall
	Wireframe bool
}

var (
	leftTriangle = []float32{
		-0.9, -0.5, 0.0, // left
		-0.0, -0.5, 0.0, // right
		-0.45, 0.5, 0.0, // top
	}
	rightTriangle = []float32{
		0.0, -0.5, 0.0, // left
		0.9, -0.5, 0.0, // right
		0.45, 0.5, 0.0, // top
	}
)

// SingleProgramScene draws both triangles from one buffer with one program.
func SingleProgramScene() *Scene {
	vertices := make([]float32, 0, len(leftTriangle)+len(rightTriangle))
	vertices = append(vertices, leftTriangle...)
	vertices = append(vertices, rightTriangle...)
	return &Scene{
		Title: "single",
		Programs: []ProgramSource{
			{Name: "orange", Vertex: shader.Vertex(), Fragment: shader.OrangeFragment()},
		},
		Geometry: []GeometrySource{
			{Name: "triangles", Vertices: vertices},
		},
		Draws: []DrawCall{
			{Program: "orange", Geometry: "triangles"},
		},
	}
}

// TwoProgramScene draws each triangle from its own buffer, the left one
// orange and the right one yellow.
func TwoProgramScene() *Scene {
	return &Scene{
		Title: "dual",
		Programs: []ProgramSource{
			{Name: "orange", Vertex: shader.Vertex(), Fragment: shader.OrangeFragment()},
			{Name: "yellow", Vertex: shader.Vertex(), Fragment: shader.YellowFragment()},
		},
		Geometry: []GeometrySource{
			{Name: "left", Vertices: append([]float32(nil), leftTriangle...)},
			{Name: "right", Vertices: append([]float32(nil), rightTriangle...)},
		},
		Draws: []DrawCall{
			{Program: "orange", Geometry: "left"},
			{Program: "yellow", Geometry: "right"},
		},
	}
}

// SceneByName returns a fresh copy of a built-in scene.
func SceneByName(name string) (*Scene, error) {
	switch name {
	case "single":
		return SingleProgramScene(), nil
	case "dual":
		return TwoProgramScene(), nil
	}
	return nil, fmt.Errorf("unknown scene %q (want single or dual)", name)
}

// Validate checks that every draw resolves and every geometry set holds whole vertices.
func (s *Scene) Validate() error {
	if s == nil {
		return errors.New("nil scene")
	}
	programs := make(map[string]struct{}, len(s.Programs))
	for _, p := range s.Programs {
		if _, dup := programs[p.Name]; dup {
			return fmt.Errorf("duplicate program %q", p.Name)
		}
		programs[p.Name] = struct{}{}
	}
	geometry := make(map[string]struct{}, len(s.Geometry))
	for _, g := range s.Geometry {
		if _, dup := geometry[g.Name]; dup {
			return fmt.Errorf("duplicate geometry %q", g.Name)
		}
		if len(g.Vertices) == 0 || len(g.Vertices)%ComponentsPerVertex != 0 {
			return fmt.Errorf("geometry %q: %d floats is not a whole number of vertices", g.Name, len(g.Vertices))
		}
		geometry[g.Name] = struct{}{}
	}
	for i, d := range s.Draws {
		if _, ok := programs[d.Program]; !ok {
			return fmt.Errorf("draw %d: no program named %q", i, d.Program)
		}
		if _, ok := geometry[d.Geometry]; !ok {
			return fmt.Errorf("draw %d: no geometry named %q", i, d.Geometry)
		}
	}
	return nil
}
