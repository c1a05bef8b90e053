package palette

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGB
		err  bool
	}{
		{"#ff0000", color.RGB{R: 255, G: 0, B: 0}, false},
		{"00ff7f", color.RGB{R: 0, G: 255, B: 127}, false},
		{"#fa0", color.RGB{R: 255, G: 170, B: 0}, false},
		{" 10, 20 ,30 ", color.RGB{R: 10, G: 20, B: 30}, false},
		{"256,0,0", color.RGB{}, true},
		{"1,2", color.RGB{}, true},
		{"#12345", color.RGB{}, true},
		{"red", color.RGB{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.err {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrBadColor))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.yaml", `name: test
colors:
  - "#000000"
  - [255, 128, 0]
  - "ffffff"
`)
	colors, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []color.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 128, B: 0}, {R: 255, G: 255, B: 255}}, colors)

	bad := writeFile(t, dir, "bad.yml", "colors:\n  - [1, 2]\n")
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadColor))
}

func TestLoadGPL(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.gpl", `GIMP Palette
Name: Test
Columns: 2
# comment
  0   0   0	Black
255 255 255	White
`)
	colors, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []color.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}}, colors)

	noHeader := writeFile(t, dir, "nohdr.gpl", "0 0 0\n")
	_, err = Load(noHeader)
	assert.Error(t, err)
}

func TestLoadList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.txt", "# my palette\n#102030\n\n40,50,60\n")
	colors, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []color.RGB{{R: 16, G: 32, B: 48}, {R: 40, G: 50, B: 60}}, colors)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadListHexLooksLikeComment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.txt", "#\n#\tnotes\n#bad\n#cafe12\n")
	colors, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []color.RGB{{R: 0xbb, G: 0xaa, B: 0xdd}, {R: 0xca, G: 0xfe, B: 0x12}}, colors)

	path = writeFile(t, dir, "q.txt", "#000000\n#not a color\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadColor)
	assert.Contains(t, err.Error(), "line 2")
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mine.txt", "#010203\n")

	colors, name, err := Resolve("gameboy", "")
	require.NoError(t, err)
	assert.Equal(t, "gameboy", name)
	assert.Len(t, colors, 4)

	colors, name, err = Resolve("mine.txt", dir)
	require.NoError(t, err)
	assert.Equal(t, "mine.txt", name)
	assert.Equal(t, []color.RGB{{R: 1, G: 2, B: 3}}, colors)

	colors, name, err = Resolve("#000000, #ffffff;#ff0000", "")
	require.NoError(t, err)
	assert.Equal(t, "inline", name)
	assert.Equal(t, []color.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}, {R: 255, G: 0, B: 0}}, colors)

	_, _, err = Resolve("not-a-palette", "")
	assert.Error(t, err)

	_, _, err = Resolve("  ", "")
	assert.True(t, errors.Is(err, ErrEmptyPalette))
}

func TestBuiltins(t *testing.T) {
	names := BuiltinNames()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		p, ok := Builtin(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, p, name)
	}

	gray4, _ := Builtin("gray4")
	assert.Equal(t, []color.RGB{{R: 0, G: 0, B: 0}, {R: 85, G: 85, B: 85}, {R: 170, G: 170, B: 170}, {R: 255, G: 255, B: 255}}, gray4)

	bw, _ := Builtin("bw")
	bw[0] = color.RGB{R: 1, G: 1, B: 1}
	again, _ := Builtin("bw")
	assert.Equal(t, color.RGB{R: 0, G: 0, B: 0}, again[0])

	_, ok := Builtin("nope")
	assert.False(t, ok)
}
