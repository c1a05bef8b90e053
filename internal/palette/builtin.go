package palette

import (
	"sort"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
)

var builtins = map[string][]color.RGB{
	"bw":     grayLevels(2),
	"gray4":  grayLevels(4),
	"gray16": grayLevels(16),
	"7color": mustHex(
		"#000000", "#ffffff", "#0000ff", "#00ff00",
		"#ff0000", "#ffff00", "#ffa500",
	),
	// Measured states of a 7-color ACeP e-paper panel.
	"eink7": mustHex(
		"#312838", "#aeada8", "#393f68", "#306544",
		"#923d3e", "#ada049", "#a05341",
	),
	"cga": mustHex(
		"#000000", "#0000aa", "#00aa00", "#00aaaa",
		"#aa0000", "#aa00aa", "#aa5500", "#aaaaaa",
		"#555555", "#5555ff", "#55ff55", "#55ffff",
		"#ff5555", "#ff55ff", "#ffff55", "#ffffff",
	),
	"gameboy": mustHex("#0f380f", "#306230", "#8bac0f", "#9bbc0f"),
	"pico8": mustHex(
		"#000000", "#1d2b53", "#7e2553", "#008751",
		"#ab5236", "#5f574f", "#c2c3c7", "#fff1e8",
		"#ff004d", "#ffa300", "#ffec27", "#00e436",
		"#29adff", "#83769c", "#ff77a8", "#ffccaa",
	),
}

// Builtin returns a copy of the named built-in palette.
func Builtin(name string) ([]color.RGB, bool) {
	p, ok := builtins[name]
	if !ok {
		return nil, false
	}
	out := make([]color.RGB, len(p))
	copy(out, p)
	return out, true
}

// BuiltinNames lists the built-in palettes in alphabetical order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// grayLevels returns n evenly spaced gray levels from black to white.
func grayLevels(n int) []color.RGB {
	out := make([]color.RGB, n)
	for i := range out {
		v := uint8(i * 255 / (n - 1))
		out[i] = color.RGB{R: v, G: v, B: v}
	}
	return out
}

func mustHex(hexes ...string) []color.RGB {
	out := make([]color.RGB, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}
