// Command physdemo drives the corephys engine from the terminal: it
// loads a JSON scene and steps it, or runs the package's canned
// conformance scenarios and prints a pass/fail summary.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"corephys/internal/demo"
	"corephys/internal/physics"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "physdemo",
		Short: "Drive the corephys rigid body engine from the command line",
	}
	root.AddCommand(runCmd(), benchCmd())
	return root
}

func runCmd() *cobra.Command {
	var frames int
	var logEvery int

	cmd := &cobra.Command{
		Use:   "run <scene.json>",
		Short: "Load a scene and step it, logging body positions periodically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := demo.Load(args[0])
			if err != nil {
				return err
			}
			if frames > 0 {
				scene.Frames = frames
			}
			if logEvery > 0 {
				scene.LogEvery = logEvery
			}
			if scene.Frames == 0 {
				scene.Frames = 120
			}
			if scene.LogEvery == 0 {
				scene.LogEvery = 30
			}

			world, err := scene.Build()
			if err != nil {
				return fmt.Errorf("physdemo: building world: %w", err)
			}

			for frame := 0; frame < scene.Frames; frame++ {
				if err := world.Step(scene.Timestep, scene.Substep); err != nil {
					return fmt.Errorf("physdemo: step %d: %w", frame, err)
				}
				if frame%scene.LogEvery == 0 {
					logBodies(frame, world)
				}
			}
			logBodies(scene.Frames, world)
			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 0, "override the scene's frame count")
	cmd.Flags().IntVar(&logEvery, "log-every", 0, "override the scene's log interval")
	return cmd
}

func benchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run the engine's conformance scenarios and report pass/fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := demo.Bench()
			failed := 0
			for _, r := range results {
				status := "PASS"
				if !r.Pass {
					status = "FAIL"
					failed++
				}
				fmt.Printf("[%s] %-28s %s\n", status, r.Name, r.Detail)
			}
			if failed > 0 {
				return fmt.Errorf("physdemo: %d scenario(s) failed", failed)
			}
			return nil
		},
	}
}

func logBodies(frame int, world *physics.World) {
	log.Printf("frame %d: %d bodies", frame, len(world.Bodies))
	for i := range world.Bodies {
		b := &world.Bodies[i]
		if p1, p2, ok := b.LineEndpoints(); ok {
			log.Printf("  body %d: line %v -> %v", i, p1, p2)
			continue
		}
		log.Printf("  body %d: pos=%v vel=%v", i, b.Position, b.Velocity)
	}
}
