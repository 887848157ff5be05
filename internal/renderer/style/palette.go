package style

import (
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/kilo/internal/renderer/core"
)

var (
	paletteOnce sync.Once
	palette     [256]colorful.Color
)

// xterm256 returns the RGB values of the xterm 256-colour palette.
func xterm256() *[256]colorful.Color {
	paletteOnce.Do(func() {
		basic := [16][3]uint8{
			{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
			{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
			{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		}
		for i, rgb := range basic {
			palette[i] = rgb255(rgb[0], rgb[1], rgb[2])
		}
		levels := [6]uint8{0, 95, 135, 175, 215, 255}
		for i := 0; i < 216; i++ {
			palette[16+i] = rgb255(levels[i/36], levels[(i/6)%6], levels[i%6])
		}
		for i := 0; i < 24; i++ {
			v := uint8(8 + 10*i)
			palette[232+i] = rgb255(v, v, v)
		}
	})
	return &palette
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Nearest256 returns the palette colour closest to c in Lab space.
// Colours that are not RGB are returned unchanged.
func Nearest256(c core.Color) core.Color {
	if !c.IsRGB() {
		return c
	}
	target := rgb255(c.R, c.G, c.B)
	best, bestDist := 0, -1.0
	for i, p := range xterm256() {
		if d := target.DistanceLab(p); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return core.ColorFromIndex(uint8(best))
}

// Downsample returns a copy of t with every RGB colour replaced by its
// nearest palette colour.
func Downsample(t *Theme) *Theme {
	out := NewTheme(t.Name)
	for class, s := range t.classes {
		s.Foreground = Nearest256(s.Foreground)
		out.Set(class, s)
	}
	return out
}
