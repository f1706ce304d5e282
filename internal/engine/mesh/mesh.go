// Package mesh lays out the cube's vertex and index buffers for upload.
// It has no GL dependency so the layout can be tested headless.
package mesh

import (
	"github.com/Faultbox/cubik/internal/cube"
	"github.com/Faultbox/cubik/pkg/math"
)

// FloatsPerVertex is the size of one position in the vertex buffer.
const FloatsPerVertex = 3

// IndicesPerOutline closes a face outline: corners 0, 1, 3, 2 and back to 0.
const IndicesPerOutline = 5

// Flatten packs positions into an interleaved x, y, z float buffer.
func Flatten(vertices []math.Vec3) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// FaceStart returns the first vertex of face on the cubie whose vertices
// start at offset.
func FaceStart(offset, face int) int {
	return offset + face*cube.VerticesPerFace
}

// OutlineIndices builds the element buffer for face outlines of n cubies.
// The strip walks the quad's perimeter; the vertex order within a face is
// the triangle strip order, so corners 2 and 3 are swapped.
func OutlineIndices(cubies int) []uint32 {
	out := make([]uint32, 0, cubies*cube.FacesPerCubie*IndicesPerOutline)
	for i := 0; i < cubies; i++ {
		for f := 0; f < cube.FacesPerCubie; f++ {
			s := uint32(FaceStart(i*cube.VerticesPerCubie, f))
			out = append(out, s, s+1, s+3, s+2, s)
		}
	}
	return out
}

// OutlineOffset returns the byte offset into the element buffer of the
// outline for face on the cubie whose vertices start at offset.
func OutlineOffset(offset, face int) int {
	cubie := offset / cube.VerticesPerCubie
	return (cubie*cube.FacesPerCubie + face) * IndicesPerOutline * 4
}

// Projection returns an orthographic projection that keeps the unit square
// visible at any aspect ratio. Depth covers [-2, 2] so a scaled-up cube
// is not clipped.
func Projection(width, height int) math.Mat4 {
	if width <= 0 || height <= 0 {
		return math.Identity()
	}
	aspect := float32(width) / float32(height)
	if aspect >= 1 {
		return math.Ortho(-aspect, aspect, -1, 1, -2, 2)
	}
	return math.Ortho(-1, 1, -1/aspect, 1/aspect, -2, 2)
}
