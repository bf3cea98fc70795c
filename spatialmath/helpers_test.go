package spatialmath

import (
	"math/rand"

	"github.com/golang/geo/r3"
)

func randomAxis(rng *rand.Rand) r3.Vector {
	for {
		v := r3.Vector{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1, Z: rng.Float64()*2 - 1}
		if n := v.Norm(); n > 0.1 && n <= 1 {
			return v.Mul(1 / n)
		}
	}
}

// randomRotation returns a rotation whose angle stays clear of pi.
func randomRotation(rng *rand.Rand) Rotation {
	return RotationFromAxisAngle(randomAxis(rng), (rng.Float64()*2-1)*3)
}

func randomPosition(rng *rand.Rand) Position3D {
	return NewPosition3D(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
}

func randomTransform(rng *rand.Rand) Transform {
	return NewTransform(randomRotation(rng), randomPosition(rng))
}

func randomVelocity(rng *rand.Rand) Velocity6D {
	return NewVelocity6D(randomPosition(rng).Vector(), randomAxis(rng).Mul(rng.Float64()*3))
}
