package demo

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"corephys/internal/physics"
)

// Check is the outcome of one conformance scenario.
type Check struct {
	Name   string
	Pass   bool
	Detail string
}

// Bench runs the public-API-reachable conformance scenarios and
// reports a pass/fail per invariant. The pure-geometry scenarios
// (GJK/SAT boolean and separating-axis checks) live as package-level
// tests in internal/physics instead, since they exercise unexported
// functions the core API does not surface.
func Bench() []Check {
	return []Check{
		checkRestingSphere(),
		checkElasticSphereCollision(),
		checkStaticStaticSkipped(),
		checkSphereBoxPenetration(),
	}
}

func checkRestingSphere() Check {
	w := physics.NewWorldWithGravity(rl.Vector3{Y: -9.81})

	floor := physics.DefaultBodyDef()
	floor.Shape = physics.NewBox(rl.Vector3{X: 5, Y: 0.5, Z: 5})
	floor.Position = rl.Vector3{Y: -0.5}
	w.CreateBody(floor)

	ball := physics.DefaultBodyDef()
	ball.Mass = 1
	ball.Shape = physics.NewSphere(0.5)
	ball.Position = rl.Vector3{Y: 3}
	idx := w.CreateBody(ball)

	for i := 0; i < 120; i++ {
		if err := w.Step(1.0/60, 4); err != nil {
			return Check{Name: "resting-sphere", Pass: false, Detail: err.Error()}
		}
	}

	y := w.Bodies[idx].Position.Y
	pass := y >= 0.5 && y <= 0.6
	return Check{Name: "resting-sphere", Pass: pass, Detail: fmt.Sprintf("y=%.4f", y)}
}

func checkElasticSphereCollision() Check {
	w := physics.NewWorldWithGravity(rl.Vector3{})

	a := physics.DefaultBodyDef()
	a.Mass = 1
	a.Shape = physics.NewSphere(1)
	a.Position = rl.Vector3{X: -1.5}
	a.Velocity = rl.Vector3{X: 1}
	a.Restitution = 1
	ai := w.CreateBody(a)

	b := physics.DefaultBodyDef()
	b.Mass = 1
	b.Shape = physics.NewSphere(1)
	b.Position = rl.Vector3{X: 1.5}
	b.Velocity = rl.Vector3{X: -1}
	b.Restitution = 1
	bi := w.CreateBody(b)

	// The spheres start 1 apart surface to surface and close at 2 m/s, so
	// they touch after about 30 frames; step well past that.
	for i := 0; i < 60; i++ {
		if err := w.Step(1.0/60, 1); err != nil {
			return Check{Name: "elastic-sphere-collision", Pass: false, Detail: err.Error()}
		}
	}

	va := w.Bodies[ai].Velocity.X
	vb := w.Bodies[bi].Velocity.X
	pass := va <= 0.05 && vb >= -0.05
	return Check{Name: "elastic-sphere-collision", Pass: pass, Detail: fmt.Sprintf("va=%.4f vb=%.4f", va, vb)}
}

func checkStaticStaticSkipped() Check {
	w := physics.NewWorldWithGravity(rl.Vector3{})

	a := physics.DefaultBodyDef()
	a.Shape = physics.NewSphere(1)
	w.CreateBody(a)

	b := physics.DefaultBodyDef()
	b.Shape = physics.NewSphere(1)
	b.Position = rl.Vector3{X: 0.5}
	bi := w.CreateBody(b)

	posBefore := w.Bodies[bi].Position
	if err := w.Step(1.0/60, 1); err != nil {
		return Check{Name: "static-static-skipped", Pass: false, Detail: err.Error()}
	}
	posAfter := w.Bodies[bi].Position
	pass := posBefore == posAfter
	return Check{Name: "static-static-skipped", Pass: pass, Detail: fmt.Sprintf("moved=%v", posBefore != posAfter)}
}

func checkSphereBoxPenetration() Check {
	w := physics.NewWorldWithGravity(rl.Vector3{})

	sphere := physics.DefaultBodyDef()
	sphere.Mass = 1
	sphere.Shape = physics.NewSphere(0.5)
	sphere.Position = rl.Vector3{}
	si := w.CreateBody(sphere)

	box := physics.DefaultBodyDef()
	box.Shape = physics.NewBox(rl.Vector3{X: 1, Y: 1, Z: 1})
	box.Position = rl.Vector3{X: 1.2}
	w.CreateBody(box)

	if err := w.Step(1.0/60, 1); err != nil {
		return Check{Name: "sphere-box-penetration", Pass: false, Detail: err.Error()}
	}

	// The sphere starts at rest, so the velocity pass applies no impulse;
	// the position pass pushes it back along -X.
	x := w.Bodies[si].Position.X
	pass := x < 0
	return Check{Name: "sphere-box-penetration", Pass: pass, Detail: fmt.Sprintf("x=%.4f", x)}
}
