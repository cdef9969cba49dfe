// Package renderer draws the character as a facing arrow over a ground grid.
package renderer

import (
	"fmt"
	gomath "math"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/warrior/internal/logger"
	"github.com/Faultbox/warrior/pkg/math"
)

const (
	fovY      = 60 * gomath.Pi / 180
	nearPlane = 0.1
	farPlane  = 200

	gridHalfSize = 20
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// mesh is a VAO/VBO pair of position-only vertices.
type mesh struct {
	vao, vbo uint32
	count    int32
	mode     uint32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program  uint32
	mvpLoc   int32
	tintLoc  int32
	arrow    mesh
	grid     mesh
	viewProj math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		viewProj: math.Identity(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background

	var err error
	r.program, err = createShaderProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.mvpLoc = gl.GetUniformLocation(r.program, gl.Str("uMVP\x00"))
	r.tintLoc = gl.GetUniformLocation(r.program, gl.Str("uTint\x00"))

	r.arrow = newMesh(arrowVertices(), gl.TRIANGLES)
	r.grid = newMesh(gridVertices(gridHalfSize), gl.LINES)

	logger.Debug("meshes created",
		zap.Uint32("arrow_vao", r.arrow.vao),
		zap.Uint32("grid_vao", r.grid.vao),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.arrow.delete()
	r.grid.delete()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame seen through view.
func (r *Renderer) Begin(view math.Mat4) {
	aspect := float32(1)
	if r.config.Height > 0 {
		aspect = float32(r.config.Width) / float32(r.config.Height)
	}
	r.viewProj = math.Perspective(fovY, aspect, nearPlane, farPlane).Mul(view)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// DrawGround draws the reference grid on the Y=0 plane.
func (r *Renderer) DrawGround() {
	r.draw(r.grid, r.viewProj, [3]float32{0.3, 0.3, 0.35})
}

// DrawCharacter draws the facing arrow at position, rotated and tinted.
func (r *Renderer) DrawCharacter(position math.Vec3, rotation math.Quat, state State) {
	model := math.Translate(position.X, position.Y, position.Z).Mul(rotation.ToMat4())
	r.draw(r.arrow, r.viewProj.Mul(model), StateTint(state))
}

func (r *Renderer) draw(m mesh, mvp math.Mat4, tint [3]float32) {
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, mvp.Ptr())
	gl.Uniform3f(r.tintLoc, tint[0], tint[1], tint[2])
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
}

func newMesh(vertices []float32, mode uint32) mesh {
	m := mesh{count: int32(len(vertices) / 3), mode: mode}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *mesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}

// arrowVertices returns a flat arrowhead pointing along +Z, lifted just
// above the ground to avoid z-fighting with the grid.
func arrowVertices() []float32 {
	const y = 0.01
	return []float32{
		0, y, 1, -0.6, y, -0.6, 0, y, -0.2,
		0, y, 1, 0, y, -0.2, 0.6, y, -0.6,
	}
}

// gridVertices returns line pairs for a square grid of unit cells.
func gridVertices(half int) []float32 {
	h := float32(half)
	v := make([]float32, 0, (2*half+1)*12)
	for i := -half; i <= half; i++ {
		f := float32(i)
		v = append(v,
			f, 0, -h, f, 0, h, // along Z
			-h, 0, f, h, 0, f, // along X
		)
	}
	return v
}

func createShaderProgram() (uint32, error) {
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;

		uniform mat4 uMVP;

		void main() {
			gl_Position = uMVP * vec4(aPos, 1.0);
		}
	` + "\x00"

	fragmentShaderSource := `
		#version 410 core

		uniform vec3 uTint;
		out vec4 FragColor;

		void main() {
			FragColor = vec4(uTint, 1.0);
		}
	` + "\x00"

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %s", log)
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
