package cube

import (
	"fmt"

	"github.com/Faultbox/cubik/pkg/math"
)

const (
	// VerticesPerFace is the vertex count of one quad (drawn as a strip).
	VerticesPerFace = 4
	// FacesPerCubie is the number of faces on every cubie.
	FacesPerCubie = 6
	// VerticesPerCubie is the stride between cubies in the vertex buffer.
	VerticesPerCubie = VerticesPerFace * FacesPerCubie

	// SolvedTolerance bounds the per-coordinate vertex error of a solved cubie.
	SolvedTolerance = 1e-4

	snapTolerance = 1e-3
)

// localNormals are the outward normals of the local faces, in vertex order.
var localNormals = [FacesPerCubie]math.Vec3{
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 1, Z: 0},
}

// Drawer issues the draw calls for a single cubie: one filled quad and one
// outline per face, all using the same transform.
type Drawer interface {
	DrawCubie(offset int, transform math.Mat4, colors [6]Color, vertices [VerticesPerCubie]math.Vec3)
}

// Cubie is one of the 27 sub-cubes. It keeps two views of the same motion:
// a discrete lattice position used to pick face members, and a continuous
// animation matrix used for drawing.
type Cubie struct {
	position math.Vec4
	home     [3]int
	rest     math.Vec3
	edge     float32
	vertices [VerticesPerCubie]math.Vec3

	animation      math.Mat4
	camera         math.Mat4
	cameraRotation math.Mat4

	colors [FacesPerCubie]Color
}

// newCubie builds the cubie for a lattice slot. Coordinates outside
// {-1, 0, 1} are a programming error.
func newCubie(lattice [3]int, edge float32) *Cubie {
	for _, v := range lattice {
		if v < -1 || v > 1 {
			panic(fmt.Sprintf("cube: lattice coordinate %v out of range", lattice))
		}
	}

	x, y, z := float32(lattice[0]), float32(lattice[1]), float32(lattice[2])
	c := &Cubie{
		position:       math.Vec4{x, y, z, 1},
		home:           lattice,
		rest:           math.Vec3{X: x * 2 * edge, Y: y * 2 * edge, Z: z * 2 * edge},
		edge:           edge,
		animation:      math.Identity(),
		camera:         math.Identity(),
		cameraRotation: math.Identity(),
		colors:         defaultColors,
	}
	c.vertices = cubieVertices(c.rest, edge)
	return c
}

// cubieVertices lays out four corners per face around center p.
// Face order: +Z, +X, -Z, -X, -Y, +Y.
func cubieVertices(p math.Vec3, l float32) [VerticesPerCubie]math.Vec3 {
	v := func(dx, dy, dz float32) math.Vec3 {
		return math.Vec3{X: p.X + dx*l, Y: p.Y + dy*l, Z: p.Z + dz*l}
	}
	return [VerticesPerCubie]math.Vec3{
		v(-1, -1, 1), v(1, -1, 1), v(-1, 1, 1), v(1, 1, 1),
		v(1, -1, 1), v(1, -1, -1), v(1, 1, 1), v(1, 1, -1),
		v(1, -1, -1), v(-1, -1, -1), v(1, 1, -1), v(-1, 1, -1),
		v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, -1), v(-1, 1, 1),
		v(-1, -1, -1), v(1, -1, -1), v(-1, -1, 1), v(1, -1, 1),
		v(-1, 1, 1), v(1, 1, 1), v(-1, 1, -1), v(1, 1, -1),
	}
}

// RotateVisual applies an animation rotation about axis.
func (c *Cubie) RotateVisual(axis math.Axis, angle float32) *Cubie {
	c.animation = math.Rotate(axis, angle).Mul(c.animation)
	return c
}

// RotatePosition moves the cubie to a new lattice slot. angle must be the
// total angle of a committed turn; the result is rounded back onto the
// integer lattice, so calling this per animation step corrupts the position.
func (c *Cubie) RotatePosition(axis math.Axis, angle float32) *Cubie {
	c.position = math.Rotate(axis, angle).MulVec4(c.position).Round()
	return c
}

// RotateCamera rotates the viewer around the cubie.
func (c *Cubie) RotateCamera(axis math.Axis, angle float32) *Cubie {
	c.cameraRotation = math.Rotate(axis, angle).Mul(c.cameraRotation)
	return c
}

// TranslateCamera moves the viewer along axis.
func (c *Cubie) TranslateCamera(axis math.Axis, d float32) *Cubie {
	c.camera = math.TranslateAxis(axis, d).Mul(c.camera)
	return c
}

// ScaleCamera zooms the viewer by factor s.
func (c *Cubie) ScaleCamera(s float32) *Cubie {
	c.camera = math.UniformScale(s).Mul(c.camera)
	return c
}

// IsSolved reports whether the animation transform maps every vertex back
// onto itself. It checks visual orientation only, not the lattice slot.
func (c *Cubie) IsSolved() bool {
	for _, v := range c.vertices {
		p := v.Vec4(1)
		got := c.animation.MulVec4(p)
		for i := range p {
			d := got[i] - p[i]
			if d > SolvedTolerance || d < -SolvedTolerance {
				return false
			}
		}
	}
	return true
}

// Draw hands the composed transform to d. Camera movement is applied after
// the cubie's own rotation so the lattice geometry stays intact.
func (c *Cubie) Draw(offset int, d Drawer) {
	d.DrawCubie(offset, c.Transform(), c.colors, c.vertices)
}

// Transform returns camera * cameraRotation * animation.
func (c *Cubie) Transform() math.Mat4 {
	return c.camera.Mul(c.cameraRotation).Mul(c.animation)
}

// snap replaces the accumulated animation matrix with the exact signed
// permutation it approximates. Matrices that are not close to one, such as
// after a free whole-cube rotation, are left untouched.
func (c *Cubie) snap() {
	r := c.animation.Round()
	if c.animation.ApproxEqual(r, snapTolerance) {
		c.animation = r
	}
}

// facing returns the outer face that local face i currently points to.
// ok is false if the rotated normal is not axis aligned.
func (c *Cubie) facing(i int) (Normal, bool) {
	d := c.animation.TransformDirection(localNormals[i])
	n := d.Ints()
	if !d.Near(math.Vec3{X: float32(n[0]), Y: float32(n[1]), Z: float32(n[2])}, SolvedTolerance) {
		return Normal{}, false
	}
	return Normal(n), true
}

// Lattice returns the current lattice slot.
func (c *Cubie) Lattice() [3]int {
	return c.position.XYZ().Ints()
}

// Home returns the slot the cubie was built in.
func (c *Cubie) Home() [3]int { return c.home }

// Position returns the homogeneous lattice position.
func (c *Cubie) Position() math.Vec4 { return c.position }

// Rest returns the fixed center offset.
func (c *Cubie) Rest() math.Vec3 { return c.rest }

// Edge returns the half-width of the cubie.
func (c *Cubie) Edge() float32 { return c.edge }

// Animation returns the accumulated visual rotation.
func (c *Cubie) Animation() math.Mat4 { return c.animation }

// Camera returns the camera scale/translation matrix.
func (c *Cubie) Camera() math.Mat4 { return c.camera }

// CameraRotation returns the camera rotation matrix.
func (c *Cubie) CameraRotation() math.Mat4 { return c.cameraRotation }

// Colors returns the per-local-face colors.
func (c *Cubie) Colors() [FacesPerCubie]Color { return c.colors }

// Vertices returns the 24 local vertices.
func (c *Cubie) Vertices() [VerticesPerCubie]math.Vec3 { return c.vertices }
