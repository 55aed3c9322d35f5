package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/gltriangle/gldevice"
	"github.com/richinsley/gltriangle/glfwcontext"
	"github.com/richinsley/gltriangle/graphics"
	"github.com/richinsley/gltriangle/options"
	"github.com/richinsley/gltriangle/renderer"
	"github.com/richinsley/gltriangle/translator"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	log.SetOutput(os.Stdout)

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts, err := options.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if *opts.Help {
		fmt.Println("Triangle exercise viewer")
		fs.PrintDefaults()
		return
	}

	scene, err := renderer.SceneByName(*opts.Scene)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	scene.Wireframe = *opts.Wireframe
	if *opts.Translate {
		translator.ApplyToScene(scene)
	}

	os.Exit(run(glfwPlatform, opts, scene))
}

// platform is the windowing and GL backend run drives.
type platform struct {
	initGraphics      func() error
	terminateGraphics func()
	newWindow         func(width, height int, title string) (graphics.Context, error)
	newDevice         func() graphics.Device
}

var glfwPlatform = platform{
	initGraphics:      glfwcontext.InitGraphics,
	terminateGraphics: glfwcontext.TerminateGraphics,
	newWindow: func(width, height int, title string) (graphics.Context, error) {
		ctx, err := glfwcontext.New(width, height, title)
		if err != nil {
			return nil, err
		}
		return ctx, nil
	},
	newDevice: func() graphics.Device {
		return gldevice.New()
	},
}

// run owns the window system for its whole duration so deferred cleanup
// happens before the process exits.
func run(p platform, opts *options.Options, scene *renderer.Scene) int {
	if err := p.initGraphics(); err != nil {
		log.Printf("Failed to initialize GLFW: %v", err)
		return -1
	}
	defer p.terminateGraphics()

	ctx, err := p.newWindow(*opts.Width, *opts.Height, *opts.Title)
	if err != nil {
		log.Printf("Failed to create GLFW window: %v", err)
		return -1
	}

	r, err := renderer.NewRenderer(ctx, p.newDevice(), scene)
	if err != nil {
		ctx.Shutdown()
		log.Printf("Failed to create renderer: %v", err)
		return -1
	}
	defer r.Shutdown()

	r.SetFrameLimit(*opts.Frames)
	log.Println("Starting render loop...")
	r.Run()
	return 0
}
