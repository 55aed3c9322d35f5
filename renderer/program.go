package renderer

import (
	"log"

	"github.com/richinsley/gltriangle/graphics"
)

// InfoLogSize bounds every compile and link diagnostic.
const InfoLogSize = 512

type unitKey struct {
	stage  graphics.ShaderStage
	source string
}

// shaderCache compiles each distinct (stage, source) pair once so that
// programs sharing a stage share its unit.
type shaderCache struct {
	device graphics.Device
	units  map[unitKey]*ShaderUnit
	order  []*ShaderUnit
}

func newShaderCache(device graphics.Device) *shaderCache {
	return &shaderCache{
		device: device,
		units:  make(map[unitKey]*ShaderUnit),
	}
}

func (c *shaderCache) get(stage graphics.ShaderStage, source string) *ShaderUnit {
	key := unitKey{stage: stage, source: source}
	if unit, ok := c.units[key]; ok {
		return unit
	}
	unit := compileShader(c.device, stage, source)
	c.units[key] = unit
	c.order = append(c.order, unit)
	return unit
}

// release marks every unit for deletion. Programs keep their linked binaries.
func (c *shaderCache) release() []*ShaderUnit {
	for _, unit := range c.order {
		c.device.DeleteShader(unit.Handle)
	}
	released := c.order
	c.units = make(map[unitKey]*ShaderUnit)
	c.order = nil
	return released
}

// compileShader never fails: a unit that does not compile is logged and
// returned with Compiled unset so linking can proceed.
func compileShader(device graphics.Device, stage graphics.ShaderStage, source string) *ShaderUnit {
	unit := &ShaderUnit{
		Stage:  stage,
		Handle: device.CreateShader(stage),
	}
	device.ShaderSource(unit.Handle, source)
	device.CompileShader(unit.Handle)

	unit.Compiled = device.ShaderCompiled(unit.Handle)
	if !unit.Compiled {
		unit.InfoLog = boundedLog(device.ShaderInfoLog(unit.Handle, InfoLogSize))
		log.Printf("failed to compile %s shader: %s", stage, unit.InfoLog)
	}
	return unit
}

func linkProgram(device graphics.Device, name string, vertex, fragment *ShaderUnit) *Program {
	program := &Program{
		Name:   name,
		Handle: device.CreateProgram(),
	}
	device.AttachShader(program.Handle, vertex.Handle)
	device.AttachShader(program.Handle, fragment.Handle)
	device.LinkProgram(program.Handle)

	program.Linked = device.ProgramLinked(program.Handle)
	if !program.Linked {
		program.InfoLog = boundedLog(device.ProgramInfoLog(program.Handle, InfoLogSize))
		log.Printf("failed to link program %q: %s", name, program.InfoLog)
	}
	return program
}

func boundedLog(s string) string {
	if len(s) > InfoLogSize {
		s = s[:InfoLogSize]
	}
	if s == "" {
		s = "no info log available"
	}
	return s
}
