package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// satEpsilon inflates |R| terms per Gottschalk, guarding against the
// near-parallel-axes case where cross products degenerate.
const satEpsilon = 1e-6

// satEdgeAxisMinLenSq discards edge-edge axes too close to zero length
// to carry a meaningful direction.
const satEdgeAxisMinLenSq = 1e-8

// satBoxBox runs the 15-axis separating axis test over two OBBs and
// returns the minimum translation vector pointing from A toward B,
// along with its magnitude. ok is false when an axis separates them.
func satBoxBox(centerA rl.Vector3, orientA rl.Quaternion, halfA rl.Vector3, centerB rl.Vector3, orientB rl.Quaternion, halfB rl.Vector3) (axis rl.Vector3, depth float32, ok bool) {
	axesA := worldAxes(orientA)
	axesB := worldAxes(orientB)

	var r, absR [3][3]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = rl.Vector3DotProduct(axesA[i], axesB[j])
			absR[i][j] = absf(r[i][j]) + satEpsilon
		}
	}

	t := rl.Vector3Subtract(centerB, centerA)
	aExt := [3]float32{halfA.X, halfA.Y, halfA.Z}
	bExt := [3]float32{halfB.X, halfB.Y, halfB.Z}

	minDepth := float32(-1)
	var best rl.Vector3
	found := false

	// A's three face axes.
	for i := 0; i < 3; i++ {
		ra := aExt[i]
		rb := bExt[0]*absR[i][0] + bExt[1]*absR[i][1] + bExt[2]*absR[i][2]
		ti := rl.Vector3DotProduct(t, axesA[i])
		overlap := ra + rb - absf(ti)
		if overlap < 0 {
			return rl.Vector3{}, 0, false
		}
		if !found || overlap < minDepth {
			minDepth = overlap
			found = true
			sign := float32(1)
			if ti < 0 {
				sign = -1
			}
			best = rl.Vector3Scale(axesA[i], sign)
		}
	}

	// B's three face axes.
	for j := 0; j < 3; j++ {
		ra := aExt[0]*absR[0][j] + aExt[1]*absR[1][j] + aExt[2]*absR[2][j]
		rb := bExt[j]
		tj := rl.Vector3DotProduct(t, axesB[j])
		overlap := ra + rb - absf(tj)
		if overlap < 0 {
			return rl.Vector3{}, 0, false
		}
		if overlap < minDepth {
			minDepth = overlap
			sign := float32(1)
			if tj < 0 {
				sign = -1
			}
			best = rl.Vector3Scale(axesB[j], sign)
		}
	}

	// Nine edge-edge cross-product axes.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axisRaw := rl.Vector3CrossProduct(axesA[i], axesB[j])
			lenSq := rl.Vector3LengthSqr(axisRaw)
			if lenSq < satEdgeAxisMinLenSq {
				continue
			}
			length := float32(math.Sqrt(float64(lenSq)))
			n := rl.Vector3Scale(axisRaw, 1/length)

			ra := (aExt[(i+1)%3]*absR[(i+2)%3][j] + aExt[(i+2)%3]*absR[(i+1)%3][j]) / length
			rb := (bExt[(j+1)%3]*absR[i][(j+2)%3] + bExt[(j+2)%3]*absR[i][(j+1)%3]) / length
			tn := rl.Vector3DotProduct(t, n)
			overlap := ra + rb - absf(tn)
			if overlap < 0 {
				return rl.Vector3{}, 0, false
			}
			if overlap < minDepth {
				minDepth = overlap
				sign := float32(1)
				if tn < 0 {
					sign = -1
				}
				best = rl.Vector3Scale(n, sign)
			}
		}
	}

	return best, minDepth, true
}
