// Package renderer draws the cube with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubik/internal/cube"
	"github.com/Faultbox/cubik/internal/engine/framebuffer"
	"github.com/Faultbox/cubik/internal/engine/mesh"
	"github.com/Faultbox/cubik/internal/engine/shader"
	"github.com/Faultbox/cubik/pkg/math"
)

const vertexShaderSource = `
#version 410 core

in vec3 position;

uniform mat4 mat_transformation;
uniform mat4 projection;

void main() {
	gl_Position = projection * mat_transformation * vec4(position, 1.0);
}
`

const fragmentShaderSource = `
#version 410 core

uniform vec4 color;

out vec4 fragColor;

void main() {
	fragColor = color;
}
`

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background cube.Color
}

// Renderer uploads the cube's vertices once and draws cubies on request.
// It implements cube.Drawer.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	vao     uint32
	vbo     uint32
	ebo     uint32

	locTransform  int32
	locProjection int32
	locColor      int32
}

// New initializes OpenGL and uploads vertices, which must be the cube's
// 648 vertices in draw order.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, vertices []math.Vec3, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{config: cfg, log: log}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	// Outlines share depth with their face and are drawn second.
	gl.DepthFunc(gl.LEQUAL)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	var err error
	r.program, err = shader.New(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	for name, loc := range map[string]*int32{
		"mat_transformation": &r.locTransform,
		"projection":         &r.locProjection,
		"color":              &r.locColor,
	} {
		if *loc, err = r.program.Uniform(name); err != nil {
			r.program.Delete()
			return nil, err
		}
	}

	if err := r.upload(vertices); err != nil {
		r.Close()
		return nil, err
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) upload(vertices []math.Vec3) error {
	if len(vertices) == 0 {
		return fmt.Errorf("no vertices to upload")
	}
	cubies := len(vertices) / cube.VerticesPerCubie
	data := mesh.Flatten(vertices)
	indices := mesh.OutlineIndices(cubies)

	attrib, err := r.program.Attrib("position")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(attrib, mesh.FloatsPerVertex, gl.FLOAT, false, mesh.FloatsPerVertex*4, nil)
	gl.EnableVertexAttribArray(attrib)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// The element buffer binding is VAO state; leave it bound.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("cube geometry uploaded",
		zap.Int("vertices", len(vertices)),
		zap.Int("outline_indices", len(indices)),
		zap.Uint32("vao", r.vao),
	)
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the viewport and the aspect-correct projection.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))

	r.program.Use()
	shader.SetMat4(r.locProjection, mesh.Projection(width, height))

	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame and binds the cube geometry.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
	gl.BindVertexArray(r.vao)
}

// End unbinds the cube geometry.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// DrawCubie draws six filled faces and their black outlines. The vertices
// were uploaded by New, so only offset is used to address them.
func (r *Renderer) DrawCubie(offset int, transform math.Mat4, colors [cube.FacesPerCubie]cube.Color, _ [cube.VerticesPerCubie]math.Vec3) {
	shader.SetMat4(r.locTransform, transform)
	for f := 0; f < cube.FacesPerCubie; f++ {
		shader.SetVec4(r.locColor, colors[f])
		gl.DrawArrays(gl.TRIANGLE_STRIP, int32(mesh.FaceStart(offset, f)), cube.VerticesPerFace)

		shader.SetVec4(r.locColor, cube.Outline)
		gl.DrawElements(gl.LINE_STRIP, mesh.IndicesPerOutline, gl.UNSIGNED_INT, gl.PtrOffset(mesh.OutlineOffset(offset, f)))
	}
}

// Capture renders draw offscreen at width x height and returns bottom-up
// RGBA rows. A zero size captures at the current viewport size.
func (r *Renderer) Capture(width, height int, draw func()) (pixels []byte, w, h int, err error) {
	if width <= 0 || height <= 0 {
		width, height = r.config.Width, r.config.Height
	}
	fb, err := framebuffer.New(int32(width), int32(height))
	if err != nil {
		return nil, 0, 0, err
	}
	defer fb.Destroy()

	fw, fh := fb.Size()
	r.program.Use()
	gl.BindVertexArray(r.vao)
	shader.SetMat4(r.locProjection, mesh.Projection(int(fw), int(fh)))
	pixels = fb.Render(draw)
	shader.SetMat4(r.locProjection, mesh.Projection(r.config.Width, r.config.Height))
	gl.BindVertexArray(0)

	r.log.Debug("frame captured", zap.Int32("width", fw), zap.Int32("height", fh))
	return pixels, int(fw), int(fh), nil
}
