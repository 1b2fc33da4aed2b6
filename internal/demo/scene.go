// Package demo loads JSON scene descriptions and drives a physics.World
// from them, filling the role the teacher's scenefile.go played for its
// game world.
package demo

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"corephys/internal/physics"
)

// BodyEntry describes one body in a scene file.
type BodyEntry struct {
	Shape       string     `json:"shape"`
	Radius      float32    `json:"radius,omitempty"`
	HalfExtents rl.Vector3 `json:"half_extents,omitempty"`
	P1          rl.Vector3 `json:"p1,omitempty"`
	P2          rl.Vector3 `json:"p2,omitempty"`
	Mass        float32    `json:"mass"`
	Position    rl.Vector3 `json:"position"`
	Velocity    rl.Vector3 `json:"velocity,omitempty"`
	Friction    float32    `json:"friction"`
	Restitution float32    `json:"restitution"`
}

// Scene is the top-level JSON document a scene file holds.
type Scene struct {
	Gravity  rl.Vector3  `json:"gravity"`
	Timestep float32     `json:"timestep"`
	Substep  uint16      `json:"substep"`
	Frames   int         `json:"frames"`
	LogEvery int         `json:"log_every"`
	Bodies   []BodyEntry `json:"bodies"`
}

// Load reads and parses a scene file from disk.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("demo: reading scene file: %w", err)
	}
	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("demo: parsing scene file: %w", err)
	}
	if scene.Substep == 0 {
		scene.Substep = 1
	}
	if scene.Timestep == 0 {
		scene.Timestep = 1.0 / 60
	}
	return &scene, nil
}

// Build constructs a World from the scene and populates it with bodies.
func (s *Scene) Build() (*physics.World, error) {
	w := physics.NewWorldWithGravity(s.Gravity)
	for i, entry := range s.Bodies {
		def := physics.DefaultBodyDef()
		def.Mass = entry.Mass
		def.Position = entry.Position
		def.Velocity = entry.Velocity
		def.Friction = entry.Friction
		def.Restitution = entry.Restitution

		switch entry.Shape {
		case "sphere":
			def.Shape = physics.NewSphere(entry.Radius)
		case "box":
			def.Shape = physics.NewBox(entry.HalfExtents)
		case "line":
			def.Shape = physics.NewLine(entry.P1, entry.P2)
		default:
			return nil, fmt.Errorf("demo: body %d: unknown shape %q", i, entry.Shape)
		}
		w.CreateBody(def)
	}
	return w, nil
}
