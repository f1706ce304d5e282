package cube

import "fmt"

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Face colors by local face index.
var (
	Red    = Color{1.0, 0.0, 0.0, 1.0}
	Blue   = Color{0.0, 0.0, 1.0, 1.0}
	Orange = Color{1.0, 0.6, 0.0, 1.0}
	Green  = Color{0.0, 1.0, 0.0, 1.0}
	White  = Color{1.0, 1.0, 1.0, 1.0}
	Yellow = Color{1.0, 1.0, 0.0, 1.0}

	// Outline is drawn around every face.
	Outline = Color{0.0, 0.0, 0.0, 1.0}
)

// defaultColors follows the local face order of a cubie's vertices:
// +Z, +X, -Z, -X, -Y, +Y.
var defaultColors = [6]Color{Red, Blue, Orange, Green, White, Yellow}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c[0]), channel(c[1]), channel(c[2]))
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	default:
		return c.Hex()
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
