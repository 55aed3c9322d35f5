package translator

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/richinsley/gltriangle/graphics"
	"github.com/richinsley/gltriangle/renderer"
	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator lazily starts the shared shader translator.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

func stageName(stage graphics.ShaderStage) string {
	if stage == graphics.FragmentStage {
		return "fragment"
	}
	return "vertex"
}

// Translate converts WebGL2 ESSL into desktop GLSL 330.
func Translate(source string, stage graphics.ShaderStage) (string, error) {
	t, err := GetTranslator()
	if err != nil {
		return "", fmt.Errorf("failed to start shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, stageName(stage), gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return "", fmt.Errorf("%s shader translation failed: %w", stageName(stage), err)
	}
	return out.Code, nil
}

// ApplyToScene replaces the GLSL of every program stage with the translation
// of its ESSL edition. A stage that fails to translate keeps its GLSL.
func ApplyToScene(scene *renderer.Scene) {
	for i := range scene.Programs {
		p := &scene.Programs[i]
		if code, err := Translate(p.Vertex.ESSL, graphics.VertexStage); err != nil {
			log.Printf("program %q: %v; using built-in GLSL", p.Name, err)
		} else {
			p.Vertex.GLSL = code
		}
		if code, err := Translate(p.Fragment.ESSL, graphics.FragmentStage); err != nil {
			log.Printf("program %q: %v; using built-in GLSL", p.Name, err)
		} else {
			p.Fragment.GLSL = code
		}
	}
}
