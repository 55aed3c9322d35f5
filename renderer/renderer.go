package renderer

import (
	"fmt"
	"log"

	"github.com/richinsley/gltriangle/graphics"
)

// State is the lifecycle of a Renderer. It only moves forward.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ClearColor is the background every frame starts from.
var ClearColor = [4]float32{0.0, 0.0, 0.3, 1.0}

// Renderer owns every GL object created for a Scene and drives the
// clear/draw/present loop on the thread that owns the context.
type Renderer struct {
	context    graphics.Context
	device     graphics.Device
	scene      *Scene
	programs   []*Program
	geometry   []*Geometry
	passes     []*RenderPass
	units      []*ShaderUnit
	state      State
	frameLimit int
	frameCount int
}

// NewRenderer makes the context current and builds the scene's programs and
// geometry. Shader failures are logged, not returned; the only error is a
// scene that does not validate, in which case no GL object is created.
func NewRenderer(ctx graphics.Context, device graphics.Device, scene *Scene) (*Renderer, error) {
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	r := &Renderer{
		context: ctx,
		device:  device,
		scene:   scene,
	}

	r.context.MakeCurrent()
	r.context.SetResizeCallback(func(width, height int) {
		r.device.Viewport(0, 0, int32(width), int32(height))
	})

	if err := r.device.Init(); err != nil {
		log.Printf("failed to initialize OpenGL: %v", err)
	} else {
		log.Printf("OpenGL version: %s", r.device.Version())
	}

	// the framebuffer can be larger than the window on HiDPI screens
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	r.device.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	r.initPrograms()
	r.initGeometry()
	r.initPasses()

	if scene.Wireframe {
		r.device.PolygonLines(true)
	}

	r.state = StateRunning
	log.Printf("Loaded scene %s: %d program(s), %d geometry set(s), %d draw(s)",
		scene.Title, len(r.programs), len(r.geometry), len(r.passes))
	return r, nil
}

func (r *Renderer) initPrograms() {
	cache := newShaderCache(r.device)
	for _, src := range r.scene.Programs {
		vertex := cache.get(graphics.VertexStage, src.Vertex.GLSL)
		fragment := cache.get(graphics.FragmentStage, src.Fragment.GLSL)
		r.programs = append(r.programs, linkProgram(r.device, src.Name, vertex, fragment))
	}
	// every program is linked, the units are no longer needed
	r.units = cache.release()
}

func (r *Renderer) initGeometry() {
	for _, src := range r.scene.Geometry {
		g := &Geometry{
			Name:        src.Name,
			VAO:         r.device.GenVertexArray(),
			VBO:         r.device.GenBuffer(),
			VertexCount: int32(len(src.Vertices) / ComponentsPerVertex),
		}
		r.device.BindVertexArray(g.VAO)
		r.device.BindArrayBuffer(g.VBO)
		r.device.StaticBufferData(src.Vertices)
		r.device.VertexAttribPointer(0, ComponentsPerVertex, ComponentsPerVertex*4, 0)
		r.device.EnableVertexAttribArray(0)
		r.geometry = append(r.geometry, g)
	}
	r.device.BindArrayBuffer(0)
	r.device.BindVertexArray(0)
}

func (r *Renderer) initPasses() {
	programs := make(map[string]*Program, len(r.programs))
	for _, p := range r.programs {
		programs[p.Name] = p
	}
	geometry := make(map[string]*Geometry, len(r.geometry))
	for _, g := range r.geometry {
		geometry[g.Name] = g
	}
	for _, d := range r.scene.Draws {
		r.passes = append(r.passes, &RenderPass{
			Program:  programs[d.Program],
			Geometry: geometry[d.Geometry],
		})
	}
}

// SetFrameLimit raises the close flag after n presented frames. Zero means no limit.
func (r *Renderer) SetFrameLimit(n int) {
	r.frameLimit = n
}

func (r *Renderer) State() State {
	return r.state
}

func (r *Renderer) FrameCount() int {
	return r.frameCount
}

func (r *Renderer) Programs() []*Program {
	return r.programs
}

func (r *Renderer) Geometry() []*Geometry {
	return r.geometry
}

func (r *Renderer) Passes() []*RenderPass {
	return r.passes
}

// ShaderUnits returns the diagnostics of the units compiled at setup. Their
// handles have already been deleted.
func (r *Renderer) ShaderUnits() []*ShaderUnit {
	return r.units
}

// Run loops until the window is asked to close. A close request made during
// an iteration lets that iteration finish.
func (r *Renderer) Run() {
	if r.state != StateRunning {
		return
	}
	for !r.context.ShouldClose() {
		r.processInput()
		r.RenderFrame()
		r.context.EndFrame()
		r.frameCount++
		if r.frameLimit > 0 && r.frameCount >= r.frameLimit {
			r.context.SetShouldClose(true)
		}
	}
}

func (r *Renderer) processInput() {
	if r.context.KeyPressed(graphics.KeyEscape) {
		r.context.SetShouldClose(true)
	}
}

// RenderFrame clears the framebuffer and issues every draw in scene order.
func (r *Renderer) RenderFrame() {
	r.device.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	r.device.ClearColorBuffer()

	for _, pass := range r.passes {
		r.device.UseProgram(pass.Program.Handle)
		r.device.BindVertexArray(pass.Geometry.VAO)
		r.device.DrawTriangles(0, pass.Geometry.VertexCount)
	}
}

// Shutdown deletes every vertex array, buffer and program and destroys the
// window. Calls after the first are no-ops.
func (r *Renderer) Shutdown() {
	if r.state == StateTerminated {
		return
	}
	for _, g := range r.geometry {
		r.device.DeleteVertexArray(g.VAO)
		r.device.DeleteBuffer(g.VBO)
	}
	for _, p := range r.programs {
		r.device.DeleteProgram(p.Handle)
	}
	r.context.SetResizeCallback(nil)
	r.context.Shutdown()
	r.state = StateTerminated
	log.Printf("Renderer shut down after %d frame(s)", r.frameCount)
}
