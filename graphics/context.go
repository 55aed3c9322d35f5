package graphics

// Key identifies a keyboard key. Values match GLFW key codes.
type Key int

const (
	KeyEscape Key = 256
)

// Context defines the interface for a window that owns an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(value bool)
	// EndFrame presents the back buffer and polls pending window events.
	EndFrame()
	GetFramebufferSize() (int, int)
	// KeyPressed reports whether key is currently held down.
	KeyPressed(key Key) bool
	// SetResizeCallback registers f to receive framebuffer sizes in pixels.
	SetResizeCallback(f func(width, height int))
}
