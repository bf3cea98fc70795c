package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"
)

func TestRotation(t *testing.T) {
	t.Run("from slice", func(t *testing.T) {
		r, err := NewRotationFromSlice([]float64{0, -1, 0, 1, 0, 0, 0, 0, 1})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, r.IsNear(RotationZ(math.Pi/2), 1e-12), test.ShouldBeTrue)
		test.That(t, r.ToSlice(), test.ShouldResemble, []float64{0, -1, 0, 1, 0, 0, 0, 0, 1})

		_, err = NewRotationFromSlice([]float64{1, 2, 3})
		test.That(t, errors.Is(err, ErrInvalidLength), test.ShouldBeTrue)
	})

	t.Run("rows and columns", func(t *testing.T) {
		r := NewRotationFromRows(r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 4, Y: 5, Z: 6}, r3.Vector{X: 7, Y: 8, Z: 9})
		test.That(t, r.Row(1), test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})
		test.That(t, r.Col(2), test.ShouldResemble, r3.Vector{X: 3, Y: 6, Z: 9})
		test.That(t, r.At(2, 0), test.ShouldEqual, 7)
		test.That(t, r.Trace(), test.ShouldEqual, 15)
		test.That(t, r.Transpose().Row(0), test.ShouldResemble, r3.Vector{X: 1, Y: 4, Z: 7})
	})

	t.Run("axis angle", func(t *testing.T) {
		test.That(t, RotationFromAxisAngle(r3.Vector{Z: 2}, 0.4).IsNear(RotationZ(0.4), 1e-12), test.ShouldBeTrue)
		test.That(t, RotationFromAxisAngle(r3.Vector{X: 1}, -0.4).IsNear(RotationX(-0.4), 1e-12), test.ShouldBeTrue)
		test.That(t, RotationFromAxisAngle(r3.Vector{}, 1), test.ShouldResemble, IdentityRotation())
	})

	t.Run("group", func(t *testing.T) {
		rng := rand.New(rand.NewSource(23))
		for i := 0; i < 20; i++ {
			r := randomRotation(rng)
			test.That(t, r.IsOrthonormal(1e-9), test.ShouldBeTrue)
			test.That(t, r.Determinant(), test.ShouldAlmostEqual, 1, 1e-9)
			test.That(t, r.Mul(r.Inverse()).IsNear(IdentityRotation(), 1e-9), test.ShouldBeTrue)
		}
	})

	t.Run("normalize", func(t *testing.T) {
		r := RotationZ(0.3)
		noisy := r
		noisy.mat[0] += 1e-3
		noisy.mat[5] -= 2e-3
		test.That(t, noisy.IsOrthonormal(1e-6), test.ShouldBeFalse)
		fixed := noisy.Normalize()
		test.That(t, fixed.IsOrthonormal(1e-9), test.ShouldBeTrue)
		test.That(t, fixed.Determinant(), test.ShouldAlmostEqual, 1, 1e-9)
		test.That(t, fixed.IsNear(r, 5e-3), test.ShouldBeTrue)
	})

	t.Run("normalize reflection", func(t *testing.T) {
		reflected := NewRotation(1, 0, 0, 0, 1, 0, 0, 0, -1)
		fixed := reflected.Normalize()
		test.That(t, fixed.Determinant(), test.ShouldAlmostEqual, 1, 1e-9)
	})

	t.Run("mathgl", func(t *testing.T) {
		r := RotationFromRotation3D(Rotation3D{WX: 0.2, WY: -0.4, WZ: 1.3})
		m := r.Mat3()
		test.That(t, m.At(1, 0), test.ShouldEqual, r.At(1, 0))
		test.That(t, m.At(0, 2), test.ShouldEqual, r.At(0, 2))
		test.That(t, RotationFromMat3(m), test.ShouldResemble, r)
		v := m.Mul3x1([3]float64{1, 2, 3})
		test.That(t, Position3D{X: v[0], Y: v[1], Z: v[2]}.IsNear(Position3D(r.Apply(r3.Vector{X: 1, Y: 2, Z: 3})), 1e-12), test.ShouldBeTrue)
	})

	t.Run("dense", func(t *testing.T) {
		r := RotationY(0.9)
		test.That(t, RotationFromDense(r.Dense()), test.ShouldResemble, r)
	})
}

func TestTransform(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	a := randomTransform(rng)
	b := randomTransform(rng)
	c := randomTransform(rng)

	t.Run("identity laws", func(t *testing.T) {
		test.That(t, a.Mul(IdentityTransform()).IsNear(a, 1e-12), test.ShouldBeTrue)
		test.That(t, IdentityTransform().Mul(a).IsNear(a, 1e-12), test.ShouldBeTrue)
		test.That(t, a.Mul(a.Inverse()).IsNear(IdentityTransform(), 1e-9), test.ShouldBeTrue)
		test.That(t, a.Inverse().Mul(a).IsNear(IdentityTransform(), 1e-9), test.ShouldBeTrue)
	})

	t.Run("associative", func(t *testing.T) {
		test.That(t, a.Mul(b).Mul(c).IsNear(a.Mul(b.Mul(c)), 1e-9), test.ShouldBeTrue)
	})

	t.Run("apply", func(t *testing.T) {
		p := randomPosition(rng)
		test.That(t, a.Mul(b).Apply(p).IsNear(a.Apply(b.Apply(p)), 1e-9), test.ShouldBeTrue)
		test.That(t, a.Inverse().Apply(a.Apply(p)).IsNear(p, 1e-9), test.ShouldBeTrue)
	})

	t.Run("matrix entries", func(t *testing.T) {
		tf := NewTransform(RotationZ(math.Pi/2), NewPosition3D(1, 2, 3))
		test.That(t, tf.At(0, 3), test.ShouldEqual, 1)
		test.That(t, tf.At(1, 3), test.ShouldEqual, 2)
		test.That(t, tf.At(2, 3), test.ShouldEqual, 3)
		test.That(t, tf.At(3, 0), test.ShouldEqual, 0)
		test.That(t, tf.At(3, 3), test.ShouldEqual, 1)
		test.That(t, tf.At(1, 0), test.ShouldEqual, 1)
		test.That(t, tf.Determinant(), test.ShouldAlmostEqual, 1)
	})

	t.Run("translate", func(t *testing.T) {
		tf := NewTransform(RotationX(1), NewPosition3D(1, 1, 1))
		moved := tf.Translated(NewPosition3D(1, 2, 3))
		test.That(t, moved.Translation(), test.ShouldResemble, NewPosition3D(2, 3, 4))
		test.That(t, tf.Translation(), test.ShouldResemble, NewPosition3D(1, 1, 1))
		tf.TranslateInPlace(NewPosition3D(1, 2, 3))
		test.That(t, tf, test.ShouldResemble, moved)
	})

	t.Run("distance", func(t *testing.T) {
		x := TransformFromPosition3D(NewPosition3D(1, 2, 3))
		y := NewTransform(RotationY(2), NewPosition3D(4, 6, 3))
		test.That(t, x.DistanceSquared(y), test.ShouldEqual, 25)
		test.That(t, x.Distance(y), test.ShouldEqual, 5)
	})

	t.Run("mathgl", func(t *testing.T) {
		m := a.Mat4()
		test.That(t, m.At(0, 3), test.ShouldEqual, a.Translation().X)
		test.That(t, m.At(3, 3), test.ShouldEqual, 1)
		test.That(t, TransformFromMat4(m), test.ShouldResemble, a)
		test.That(t, TransformFromMat4(a.Mat4().Mul4(b.Mat4())).IsNear(a.Mul(b), 1e-9), test.ShouldBeTrue)
	})

	t.Run("string", func(t *testing.T) {
		s := TransformFromPosition3D(NewPosition3D(1, 2, 3)).String()
		test.That(t, s, test.ShouldContainSubstring, "(1.000000, 2.000000, 3.000000)")
	})
}

func TestTransformValidate(t *testing.T) {
	test.That(t, IdentityTransform().Validate(DefaultTolerance), test.ShouldBeNil)

	t.Run("scaled", func(t *testing.T) {
		tf := NewTransform(NewRotation(2, 0, 0, 0, 1, 0, 0, 0, 1), Position3D{})
		err := tf.Validate(DefaultTolerance)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 2)
		test.That(t, err.Error(), test.ShouldContainSubstring, "not orthonormal")
		test.That(t, err.Error(), test.ShouldContainSubstring, "determinant")
	})

	t.Run("reflection", func(t *testing.T) {
		tf := NewTransform(NewRotation(1, 0, 0, 0, 1, 0, 0, 0, -1), Position3D{})
		err := tf.Validate(DefaultTolerance)
		test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 1)
		test.That(t, err.Error(), test.ShouldContainSubstring, "-1.000000")
	})

	t.Run("non-finite", func(t *testing.T) {
		tf := NewTransform(IdentityRotation(), NewPosition3D(math.NaN(), 0, 0))
		err := tf.Validate(DefaultTolerance)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "non-finite")
	})

	t.Run("zero value is not a rigid transform", func(t *testing.T) {
		var zero Transform
		test.That(t, zero.Validate(DefaultTolerance), test.ShouldNotBeNil)
		test.That(t, zero.Rotation().Determinant(), test.ShouldEqual, 0.)
		test.That(t, zero.Rotation().IsNear(IdentityRotation(), 0.5), test.ShouldBeFalse)
	})

	t.Run("normalize repairs", func(t *testing.T) {
		tf := NewTransform(NewRotation(1.001, 0, 0, 0, 0.999, 0.002, 0, 0, 1), NewPosition3D(1, 2, 3))
		test.That(t, tf.Validate(DefaultTolerance), test.ShouldNotBeNil)
		fixed := tf.Normalize()
		test.That(t, fixed.Validate(DefaultTolerance), test.ShouldBeNil)
		test.That(t, fixed.Translation(), test.ShouldResemble, tf.Translation())
	})
}

func TestPositionTypes(t *testing.T) {
	p := NewPosition3D(3, 4, 0)
	test.That(t, p.Norm(), test.ShouldEqual, 5)
	n, err := p.Normalize()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n.IsNear(NewPosition3D(0.6, 0.8, 0), 1e-12), test.ShouldBeTrue)
	_, err = Position3D{}.Normalize()
	test.That(t, err, test.ShouldBeError, ErrZeroAxis)

	test.That(t, p.Cross(NewPosition3D(0, 0, 1)), test.ShouldResemble, NewPosition3D(4, -3, 0))
	test.That(t, p.Dot(NewPosition3D(1, 1, 1)), test.ShouldEqual, 7)
	test.That(t, p.Distance(NewPosition3D(3, 4, 12)), test.ShouldEqual, 12)

	_, err = Position3DFromSlice([]float64{1, 2})
	test.That(t, errors.Is(err, ErrInvalidLength), test.ShouldBeTrue)
	_, err = Velocity6DFromSlice(make([]float64, 5))
	test.That(t, errors.Is(err, ErrInvalidLength), test.ShouldBeTrue)
	_, err = Position6DFromSlice(make([]float64, 7))
	test.That(t, err.Error(), test.ShouldContainSubstring, "Position6D needs 6 values, got 7")

	v := Velocity6D{XD: 1, YD: 2, ZD: 2, WXD: 0, WYD: 0, WZD: 4}
	test.That(t, v.Norm(), test.ShouldEqual, 5)
	test.That(t, v.Add(v.Neg()), test.ShouldResemble, Velocity6D{})
	test.That(t, v.Sub(v).IsNear(Velocity6D{}, 0), test.ShouldBeTrue)
	test.That(t, v.Mul(2).WZD, test.ShouldEqual, 8)
}
