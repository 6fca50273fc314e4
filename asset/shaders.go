package asset

// DefaultVertexShader translates each block by the offsetX/offsetY uniforms
const DefaultVertexShader = `#version 410 core
layout (location = 0) in vec2 aPos;

uniform float offsetX;
uniform float offsetY;

void main() {
    gl_Position = vec4(aPos.x + offsetX, aPos.y + offsetY, 0.0, 1.0);
}
`

// DefaultFragmentShader paints every block white
const DefaultFragmentShader = `#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`
