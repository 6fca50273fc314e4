package asset

// DefaultConfigTOML documents every config key with its default value
const DefaultConfigTOML = `
# Presentation backend: "gl" or "terminal"
backend = "gl"
debug = false

[window]
width = 600
height = 600
title = "Pong"
gl_major = 4
gl_minor = 6
resizable = false
vsync = true

# Empty paths use the built-in shaders
[shaders]
vertex = ""
fragment = ""

[physics]
paddle_speed = 0.015
ball_speed_x = 0.007
ball_speed_y = 0.01
# Extra ball step on the paddle-hit frame
collision_nudge = true

[ai]
engage_x = 0.75
reaction_factor = 0.95
clamp_bottom = false

[terminal]
frame_interval_ms = 16
key_hold_ms = 120
`

// ConfigSchema is the JSON schema every decoded config document must satisfy
const ConfigSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "backend": { "enum": ["gl", "terminal"] },
    "debug": { "type": "boolean" },
    "window": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "width": { "type": "integer", "minimum": 1 },
        "height": { "type": "integer", "minimum": 1 },
        "title": { "type": "string" },
        "gl_major": { "type": "integer", "minimum": 3 },
        "gl_minor": { "type": "integer", "minimum": 0 },
        "resizable": { "type": "boolean" },
        "vsync": { "type": "boolean" }
      }
    },
    "shaders": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "vertex": { "type": "string" },
        "fragment": { "type": "string" }
      }
    },
    "physics": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "paddle_speed": { "type": "number", "exclusiveMinimum": 0, "maximum": 1 },
        "ball_speed_x": { "type": "number", "exclusiveMinimum": 0, "maximum": 1 },
        "ball_speed_y": { "type": "number", "exclusiveMinimum": 0, "maximum": 1 },
        "collision_nudge": { "type": "boolean" }
      }
    },
    "ai": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "engage_x": { "type": "number", "minimum": -1, "maximum": 1 },
        "reaction_factor": { "type": "number", "minimum": 0 },
        "clamp_bottom": { "type": "boolean" }
      }
    },
    "terminal": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "frame_interval_ms": { "type": "integer", "minimum": 0 },
        "key_hold_ms": { "type": "integer", "minimum": 1 }
      }
    }
  }
}`
