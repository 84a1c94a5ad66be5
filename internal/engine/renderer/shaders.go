package renderer

// Scene program. Faces are flat shaded from screen-space derivatives of the
// world position, so geometry carries positions only.
const sceneVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uViewProj;

out vec3 vWorldPos;
out float vViewDepth;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vViewDepth = -(uView * world).z;
	gl_Position = uViewProj * world;
}
`

const sceneFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in float vViewDepth;

uniform vec3 uColor;
uniform float uOpacity;

uniform vec3 uSkyColor;
uniform vec3 uGroundColor;
uniform float uHemiIntensity;

uniform vec3 uLightDir;
uniform vec3 uLightColor;
uniform float uLightIntensity;

uniform bool uFogEnabled;
uniform vec3 uFogColor;
uniform float uFogNear;
uniform float uFogFar;

out vec4 FragColor;

void main() {
	vec3 n = normalize(cross(dFdx(vWorldPos), dFdy(vWorldPos)));

	float up = dot(n, vec3(0.0, 1.0, 0.0)) * 0.5 + 0.5;
	vec3 light = mix(uGroundColor, uSkyColor, up) * uHemiIntensity;
	light += uLightColor * uLightIntensity * max(dot(n, uLightDir), 0.0);

	vec3 color = uColor * light;
	if (uFogEnabled) {
		float f = smoothstep(uFogNear, uFogFar, vViewDepth);
		color = mix(color, uFogColor, f);
	}
	FragColor = vec4(color, uOpacity);
}
`

// Background gradient drawn as one oversized triangle built from gl_VertexID.
const backgroundVertexShader = `
#version 410 core

out vec2 vUV;

void main() {
	vec2 p = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	vUV = p;
	gl_Position = vec4(p * 2.0 - 1.0, 0.0, 1.0);
}
`

const backgroundFragmentShader = `
#version 410 core

in vec2 vUV;

uniform vec3 uTop;
uniform vec3 uBottom;

out vec4 FragColor;

void main() {
	FragColor = vec4(mix(uBottom, uTop, clamp(vUV.y, 0.0, 1.0)), 1.0);
}
`

// Debug lines.
const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`
