package options

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gltriangle.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	opts, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, 800, *opts.Width)
	assert.Equal(t, 600, *opts.Height)
	assert.Equal(t, "LearnOpenGL", *opts.Title)
	assert.Equal(t, "single", *opts.Scene)
	assert.False(t, *opts.Wireframe)
	assert.False(t, *opts.Translate)
	assert.Zero(t, *opts.Frames)
}

func TestFlags(t *testing.T) {
	opts, err := Parse(newFlagSet(), []string{"-scene", "dual", "-wireframe", "-frames", "10"})
	require.NoError(t, err)
	assert.Equal(t, "dual", *opts.Scene)
	assert.True(t, *opts.Wireframe)
	assert.Equal(t, 10, *opts.Frames)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := writeConfig(t, `
width = 1024
height = 768
title = "Triangles"
scene = "dual"
translate = true
`)
	opts, err := Parse(newFlagSet(), []string{"-config", path, "-width", "640"})
	require.NoError(t, err)
	assert.Equal(t, 640, *opts.Width, "explicit flag wins")
	assert.Equal(t, 768, *opts.Height)
	assert.Equal(t, "Triangles", *opts.Title)
	assert.Equal(t, "dual", *opts.Scene)
	assert.True(t, *opts.Translate)
	assert.False(t, *opts.Wireframe, "unset keys keep the default")
}

func TestConfigErrors(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorContains(t, err, "failed to read config")

	path := writeConfig(t, "width = ")
	_, err = Parse(newFlagSet(), []string{"-config", path})
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-width", "0"})
	assert.ErrorContains(t, err, "invalid window size")

	_, err = Parse(newFlagSet(), []string{"-frames", "-1"})
	assert.ErrorContains(t, err, "invalid frame count")

	path := writeConfig(t, "height = -5\n")
	_, err = Parse(newFlagSet(), []string{"-config", path})
	assert.ErrorContains(t, err, "invalid window size")
}

func TestDecodeFile(t *testing.T) {
	file, err := DecodeFile([]byte("wireframe = true\nframes = 3\n"))
	require.NoError(t, err)
	require.NotNil(t, file.Wireframe)
	assert.True(t, *file.Wireframe)
	require.NotNil(t, file.Frames)
	assert.Equal(t, 3, *file.Frames)
	assert.Nil(t, file.Width)
}
