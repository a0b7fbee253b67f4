package utils

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BoundsVec3 returns component-wise min and max of points. Zero vectors for empty input.
func BoundsVec3(points []mgl32.Vec3) (min, max mgl32.Vec3) {
	if len(points) == 0 {
		return min, max
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
		}
	}
	return min, max
}

func Vec3ToSlice(v mgl32.Vec3) []float32 {
	return []float32{v[0], v[1], v[2]}
}
