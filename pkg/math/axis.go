package math

// Axis identifies one of the three principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Unit returns the positive unit vector along the axis.
func (a Axis) Unit() Vec3 {
	switch a {
	case AxisX:
		return Vec3{1, 0, 0}
	case AxisY:
		return Vec3{0, 1, 0}
	case AxisZ:
		return Vec3{0, 0, 1}
	default:
		return Vec3{}
	}
}

// Component returns the coordinate of v along the axis.
func (a Axis) Component(v Vec3) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return 0
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}
