package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad vertex shader: screen-space textured quads, shared by sprites and text.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Quad fragment shader: texture sampling with color tint.
const quadFragSrc = `#version 410 core

uniform sampler2D uTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

// Dot vertex shader: point sprites with per-vertex pos/size/color.
const dotVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;
uniform float uPixelScale;

out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uPixelScale + 0.5));
    vColor = aColor;
}
` + "\x00"

// Dot fragment shader: round spark with quadratic falloff. Alpha blended, the
// playfield is white so additive light would vanish.
const dotFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff;
    if (falloff <= 0.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * falloff);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
