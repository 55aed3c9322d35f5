package options

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Options struct {
	Width      *int
	Height     *int
	Title      *string
	Scene      *string // "single" or "dual"
	Wireframe  *bool
	Frames     *int  // stop after this many frames, 0 runs until the window closes
	Translate  *bool // compile the WebGL2 shader editions through the translator
	ConfigFile *string
	Help       *bool
}

// File is the optional TOML configuration. Unset keys keep the flag defaults.
type File struct {
	Width     *int    `toml:"width"`
	Height    *int    `toml:"height"`
	Title     *string `toml:"title"`
	Scene     *string `toml:"scene"`
	Wireframe *bool   `toml:"wireframe"`
	Frames    *int    `toml:"frames"`
	Translate *bool   `toml:"translate"`
}

// Register binds every option to fs. Defaults open an 800x600 "LearnOpenGL" window.
func Register(fs *flag.FlagSet) *Options {
	return &Options{
		Width:      fs.Int("width", 800, "Window width in screen coordinates"),
		Height:     fs.Int("height", 600, "Window height in screen coordinates"),
		Title:      fs.String("title", "LearnOpenGL", "Window title"),
		Scene:      fs.String("scene", "single", "Scene to draw: single or dual"),
		Wireframe:  fs.Bool("wireframe", false, "Draw polygons as lines"),
		Frames:     fs.Int("frames", 0, "Close after this many frames (0 = until the window is closed)"),
		Translate:  fs.Bool("translate", false, "Translate the WebGL2 shader sources to GLSL 330 before compiling"),
		ConfigFile: fs.String("config", "", "Optional TOML file with option defaults"),
		Help:       fs.Bool("help", false, "Show help message"),
	}
}

// Parse parses args into a fresh set of options. Values from -config are
// applied first; flags given explicitly on the command line win.
func Parse(fs *flag.FlagSet, args []string) (*Options, error) {
	opts := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *opts.ConfigFile == "" {
		return opts, opts.Validate()
	}

	file, err := LoadFile(*opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	opts.merge(file, explicit)
	return opts, opts.Validate()
}

// LoadFile reads a TOML option file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return DecodeFile(data)
}

func DecodeFile(data []byte) (*File, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &file, nil
}

func (o *Options) merge(file *File, explicit map[string]bool) {
	if file.Width != nil && !explicit["width"] {
		*o.Width = *file.Width
	}
	if file.Height != nil && !explicit["height"] {
		*o.Height = *file.Height
	}
	if file.Title != nil && !explicit["title"] {
		*o.Title = *file.Title
	}
	if file.Scene != nil && !explicit["scene"] {
		*o.Scene = *file.Scene
	}
	if file.Wireframe != nil && !explicit["wireframe"] {
		*o.Wireframe = *file.Wireframe
	}
	if file.Frames != nil && !explicit["frames"] {
		*o.Frames = *file.Frames
	}
	if file.Translate != nil && !explicit["translate"] {
		*o.Translate = *file.Translate
	}
}

func (o *Options) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if *o.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", *o.Frames)
	}
	return nil
}
