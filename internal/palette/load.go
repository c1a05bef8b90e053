package palette

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
)

const maxPaletteFileSize = 1 << 20

// fileFormat is the YAML palette layout:
//
//	name: sunset
//	colors:
//	  - "#1a1c2c"
//	  - [93, 39, 93]
type fileFormat struct {
	Name   string `yaml:"name"`
	Colors []any  `yaml:"colors"`
}

// ParseColor parses "#rrggbb", "rrggbb", "#rgb" or a decimal "r,g,b" triple.
func ParseColor(s string) (color.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return color.RGB{}, fmt.Errorf("%w: %q must have exactly 3 components", ErrBadColor, s)
		}
		var v [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return color.RGB{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
			}
			v[i] = n
		}
		return fromInts(v[0], v[1], v[2])
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return color.RGB{}, fmt.Errorf("%w: %q is not a hex color", ErrBadColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGB{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGB{R: r, G: g, B: b}, nil
}

func fromInts(r, g, b int) (color.RGB, error) {
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return color.RGB{}, fmt.Errorf("%w: component %d out of range 0-255", ErrBadColor, v)
		}
	}
	return color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Load reads a palette file. YAML (.yaml, .yml) and GIMP (.gpl) palettes are
// recognised by extension; anything else is read as one color per line. In
// those plain lists a comment is a '#' followed by whitespace or nothing, so
// "#bad" is a color and "# bad" is not.
func Load(path string) ([]color.RGB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}
	if len(data) > maxPaletteFileSize {
		return nil, fmt.Errorf("palette file too large (%d bytes, max %d)", len(data), maxPaletteFileSize)
	}

	var colors []color.RGB
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		colors, err = parseYAML(data)
	case ".gpl":
		colors, err = parseGPL(data)
	default:
		colors, err = parseList(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing palette %s: %w", path, err)
	}
	return colors, nil
}

func parseYAML(data []byte) ([]color.RGB, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	out := make([]color.RGB, 0, len(f.Colors))
	for i, v := range f.Colors {
		c, err := yamlColor(v)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func yamlColor(v any) (color.RGB, error) {
	switch e := v.(type) {
	case string:
		return ParseColor(e)
	case []any:
		if len(e) != 3 {
			return color.RGB{}, fmt.Errorf("%w: expected [r, g, b], got %d values", ErrBadColor, len(e))
		}
		var n [3]int
		for i, x := range e {
			switch x := x.(type) {
			case int:
				n[i] = x
			case float64:
				n[i] = int(x)
			default:
				return color.RGB{}, fmt.Errorf("%w: component %v is not a number", ErrBadColor, x)
			}
		}
		return fromInts(n[0], n[1], n[2])
	default:
		return color.RGB{}, fmt.Errorf("%w: unsupported value %v", ErrBadColor, v)
	}
}

// parseGPL reads a GIMP palette: a "GIMP Palette" header, optional Name and
// Columns lines, then "R G B [label]" rows.
func parseGPL(data []byte) ([]color.RGB, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "GIMP Palette" {
		return nil, fmt.Errorf("missing GIMP Palette header")
	}

	var out []color.RGB
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") ||
			strings.HasPrefix(text, "Name:") || strings.HasPrefix(text, "Columns:") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected R G B", line)
		}
		var n [3]int
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", line, ErrBadColor, err)
			}
			n[i] = v
		}
		c, err := fromInts(n[0], n[1], n[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}
	return out, sc.Err()
}

func parseList(data []byte) ([]color.RGB, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	var out []color.RGB
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || isComment(text) {
			continue
		}
		c, err := ParseColor(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}
	return out, sc.Err()
}

func isComment(line string) bool {
	rest, ok := strings.CutPrefix(line, "#")
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

// Resolve turns a user-supplied palette reference into colors. ref may be a
// built-in name, a path (absolute, or relative to the working directory or
// dir), or an inline list of hex colors separated by commas, semicolons or
// spaces. The returned name identifies the palette in logs and sidecars.
func Resolve(ref, dir string) ([]color.RGB, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, "", &ValidationError{Field: "palette", Reason: "no palette given", Err: ErrEmptyPalette}
	}
	if p, ok := Builtin(ref); ok {
		return p, ref, nil
	}

	candidates := []string{ref}
	if dir != "" && !filepath.IsAbs(ref) {
		candidates = append(candidates, filepath.Join(dir, ref))
	}
	for _, path := range candidates {
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			colors, err := Load(path)
			if err != nil {
				return nil, "", err
			}
			return colors, filepath.Base(path), nil
		}
	}

	fields := strings.FieldsFunc(ref, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	out := make([]color.RGB, 0, len(fields))
	for _, f := range fields {
		c, err := ParseColor(f)
		if err != nil {
			return nil, "", fmt.Errorf("palette %q is not a built-in, a file, or a color list: %w", ref, err)
		}
		out = append(out, c)
	}
	return out, "inline", nil
}
