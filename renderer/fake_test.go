package renderer

import (
	"errors"
	"strings"

	"github.com/richinsley/gltriangle/graphics"
)

type call struct {
	name string
	args []any
}

type fakeDevice struct {
	calls      []call
	next       uint32
	initErr    error
	badSources map[string]string // source -> compile log
	badLink    map[uint32]string
	shaderSrc  map[uint32]string
	deleted    map[string]map[uint32]int
	programs   map[uint32][]uint32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		badSources: make(map[string]string),
		badLink:    make(map[uint32]string),
		shaderSrc:  make(map[uint32]string),
		deleted:    make(map[string]map[uint32]int),
		programs:   make(map[uint32][]uint32),
	}
}

func (d *fakeDevice) record(name string, args ...any) {
	d.calls = append(d.calls, call{name: name, args: args})
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) markDeleted(kind string, h uint32) {
	if d.deleted[kind] == nil {
		d.deleted[kind] = make(map[uint32]int)
	}
	d.deleted[kind][h]++
}

// callsNamed returns the calls whose name is one of names, in order.
func (d *fakeDevice) callsNamed(names ...string) []call {
	var out []call
	for _, c := range d.calls {
		for _, n := range names {
			if c.name == n {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (d *fakeDevice) reset() {
	d.calls = nil
}

func (d *fakeDevice) Init() error {
	d.record("Init")
	return d.initErr
}

func (d *fakeDevice) Version() string { return "3.3.0 fake" }

func (d *fakeDevice) CreateShader(stage graphics.ShaderStage) uint32 {
	h := d.handle()
	d.record("CreateShader", stage, h)
	return h
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource", shader)
	d.shaderSrc[shader] = source
}

func (d *fakeDevice) CompileShader(shader uint32) {
	d.record("CompileShader", shader)
}

func (d *fakeDevice) ShaderCompiled(shader uint32) bool {
	_, bad := d.badSources[d.shaderSrc[shader]]
	return !bad
}

func (d *fakeDevice) ShaderInfoLog(shader uint32, maxLength int) string {
	return d.badSources[d.shaderSrc[shader]]
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.record("DeleteShader", shader)
	d.markDeleted("shader", shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	h := d.handle()
	d.record("CreateProgram", h)
	return h
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.record("AttachShader", program, shader)
	d.programs[program] = append(d.programs[program], shader)
}

func (d *fakeDevice) LinkProgram(program uint32) {
	d.record("LinkProgram", program)
	for _, s := range d.programs[program] {
		if _, bad := d.badSources[d.shaderSrc[s]]; bad {
			d.badLink[program] = "error: linking with uncompiled shader"
		}
	}
}

func (d *fakeDevice) ProgramLinked(program uint32) bool {
	_, bad := d.badLink[program]
	return !bad
}

func (d *fakeDevice) ProgramInfoLog(program uint32, maxLength int) string {
	return d.badLink[program]
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram", program)
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.record("DeleteProgram", program)
	d.markDeleted("program", program)
}

func (d *fakeDevice) GenVertexArray() uint32 {
	h := d.handle()
	d.record("GenVertexArray", h)
	return h
}

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.record("BindVertexArray", vao)
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray", vao)
	d.markDeleted("vao", vao)
}

func (d *fakeDevice) GenBuffer() uint32 {
	h := d.handle()
	d.record("GenBuffer", h)
	return h
}

func (d *fakeDevice) BindArrayBuffer(vbo uint32) {
	d.record("BindArrayBuffer", vbo)
}

func (d *fakeDevice) StaticBufferData(data []float32) {
	d.record("StaticBufferData", append([]float32(nil), data...))
}

func (d *fakeDevice) DeleteBuffer(vbo uint32) {
	d.record("DeleteBuffer", vbo)
	d.markDeleted("vbo", vbo)
}

func (d *fakeDevice) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	d.record("VertexAttribPointer", index, size, stride, offset)
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
}

func (d *fakeDevice) PolygonLines(enabled bool) {
	d.record("PolygonLines", enabled)
}

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
}

func (d *fakeDevice) ClearColorBuffer() {
	d.record("ClearColorBuffer")
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.record("DrawTriangles", first, count)
}

// fakeContext simulates a window. pressEscapeAt presses Escape before the
// given (zero-based) iteration's input check.
type fakeContext struct {
	shouldClose   bool
	current       bool
	shutdowns     int
	endFrames     int
	keyChecks     int
	pressEscapeAt int
	fbWidth       int
	fbHeight      int
	onResize      func(width, height int)
}

func newFakeContext() *fakeContext {
	return &fakeContext{pressEscapeAt: -1, fbWidth: 800, fbHeight: 600}
}

func (c *fakeContext) MakeCurrent()              { c.current = true }
func (c *fakeContext) Shutdown()                 { c.shutdowns++ }
func (c *fakeContext) ShouldClose() bool         { return c.shouldClose }
func (c *fakeContext) SetShouldClose(value bool) { c.shouldClose = value }
func (c *fakeContext) EndFrame()                 { c.endFrames++ }
func (c *fakeContext) GetFramebufferSize() (int, int) {
	return c.fbWidth, c.fbHeight
}

func (c *fakeContext) KeyPressed(key graphics.Key) bool {
	pressed := key == graphics.KeyEscape && c.keyChecks == c.pressEscapeAt
	c.keyChecks++
	return pressed
}

func (c *fakeContext) SetResizeCallback(f func(width, height int)) {
	c.onResize = f
}

// resize mimics the window system delivering a framebuffer size event.
func (c *fakeContext) resize(width, height int) {
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

var errNoGL = errors.New("no GL function table")

func malformedLog(n int) string {
	return "0:1(1): error: syntax error " + strings.Repeat("x", n)
}
