package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// gjkMaxIterations bounds the simplex-evolution loop. Two convex boxes
// either resolve well inside this bound or are treated as disjoint.
const gjkMaxIterations = 30

type simplex struct {
	points [4]rl.Vector3
	count  int
}

func minkowskiSupport(centerA rl.Vector3, orientA rl.Quaternion, halfA rl.Vector3, centerB rl.Vector3, orientB rl.Quaternion, halfB rl.Vector3, dir rl.Vector3) rl.Vector3 {
	sa := supportBox(centerA, orientA, halfA, dir)
	sb := supportBox(centerB, orientB, halfB, rl.Vector3Scale(dir, -1))
	return rl.Vector3Subtract(sa, sb)
}

// gjkBoxBox reports whether two OBBs intersect, via the boolean form of
// the Gilbert-Johnson-Keerthi algorithm over the Minkowski difference.
func gjkBoxBox(centerA rl.Vector3, orientA rl.Quaternion, halfA rl.Vector3, centerB rl.Vector3, orientB rl.Quaternion, halfB rl.Vector3) bool {
	dir := rl.Vector3Subtract(centerB, centerA)
	if rl.Vector3LengthSqr(dir) < 1e-12 {
		dir = rl.Vector3{X: 1}
	}

	var s simplex
	s.points[0] = minkowskiSupport(centerA, orientA, halfA, centerB, orientB, halfB, dir)
	s.count = 1
	if rl.Vector3DotProduct(s.points[0], dir) <= 0 {
		return false
	}
	dir = rl.Vector3Scale(s.points[0], -1)

	for i := 0; i < gjkMaxIterations; i++ {
		a := minkowskiSupport(centerA, orientA, halfA, centerB, orientB, halfB, dir)
		if rl.Vector3DotProduct(a, dir) <= 0 {
			return false
		}
		s.points[s.count] = a
		s.count++

		var contains bool
		switch s.count {
		case 2:
			contains = processLine(&s, &dir)
		case 3:
			contains = processTriangle(&s, &dir)
		case 4:
			contains = processTetrahedron(&s, &dir)
		}
		if contains {
			return true
		}
	}
	return false
}

func processLine(s *simplex, dir *rl.Vector3) bool {
	a := s.points[1]
	b := s.points[0]
	ab := rl.Vector3Subtract(b, a)
	ao := rl.Vector3Scale(a, -1)

	if rl.Vector3DotProduct(ab, ao) > 0 {
		d := rl.Vector3CrossProduct(rl.Vector3CrossProduct(ab, ao), ab)
		if rl.Vector3LengthSqr(d) < 1e-12 {
			d = rl.Vector3{X: -ab.Y, Y: ab.X, Z: 0}
		}
		*dir = d
	} else {
		s.points[0] = a
		s.count = 1
		*dir = ao
	}
	return false
}

func processTriangle(s *simplex, dir *rl.Vector3) bool {
	a := s.points[2]
	b := s.points[1]
	c := s.points[0]
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)
	ao := rl.Vector3Scale(a, -1)
	abc := rl.Vector3CrossProduct(ab, ac)

	if rl.Vector3DotProduct(rl.Vector3CrossProduct(abc, ac), ao) > 0 {
		if rl.Vector3DotProduct(ac, ao) > 0 {
			s.points[0] = c
			s.points[1] = a
			s.count = 2
			*dir = rl.Vector3CrossProduct(rl.Vector3CrossProduct(ac, ao), ac)
			return false
		}
		s.points[0] = b
		s.points[1] = a
		s.count = 2
		return processLine(s, dir)
	}

	if rl.Vector3DotProduct(rl.Vector3CrossProduct(ab, abc), ao) > 0 {
		s.points[0] = b
		s.points[1] = a
		s.count = 2
		return processLine(s, dir)
	}

	if rl.Vector3DotProduct(abc, ao) > 0 {
		*dir = abc
	} else {
		s.points[0] = b
		s.points[1] = c
		s.points[2] = a
		*dir = rl.Vector3Scale(abc, -1)
	}
	return false
}

func processTetrahedron(s *simplex, dir *rl.Vector3) bool {
	a := s.points[3]
	b := s.points[2]
	c := s.points[1]
	d := s.points[0]
	ao := rl.Vector3Scale(a, -1)

	abc := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
	acd := rl.Vector3CrossProduct(rl.Vector3Subtract(c, a), rl.Vector3Subtract(d, a))
	adb := rl.Vector3CrossProduct(rl.Vector3Subtract(d, a), rl.Vector3Subtract(b, a))

	if rl.Vector3DotProduct(abc, ao) > 0 {
		s.points[0] = c
		s.points[1] = b
		s.points[2] = a
		s.count = 3
		return processTriangle(s, dir)
	}
	if rl.Vector3DotProduct(acd, ao) > 0 {
		s.points[0] = d
		s.points[1] = c
		s.points[2] = a
		s.count = 3
		return processTriangle(s, dir)
	}
	if rl.Vector3DotProduct(adb, ao) > 0 {
		s.points[0] = b
		s.points[1] = d
		s.points[2] = a
		s.count = 3
		return processTriangle(s, dir)
	}
	return true
}
