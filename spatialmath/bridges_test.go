package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	commonpb "go.viam.com/api/common/v1"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

func TestQuaternion(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		test.That(t, IdentityRotation().Quaternion(), test.ShouldResemble, quat.Number{Real: 1})

		q := RotationZ(math.Pi / 2).Quaternion()
		want := quat.Number{Real: math.Sqrt2 / 2, Kmag: math.Sqrt2 / 2}
		test.That(t, QuaternionAlmostEqual(q, want, 1e-12), test.ShouldBeTrue)

		// a half turn takes the off-trace branch of the extraction
		q = RotationX(math.Pi).Quaternion()
		test.That(t, QuaternionAlmostEqual(q, quat.Number{Imag: 1}, 1e-9), test.ShouldBeTrue)
	})

	t.Run("round trip", func(t *testing.T) {
		rng := rand.New(rand.NewSource(31))
		for i := 0; i < 100; i++ {
			r := randomRotation(rng)
			q := r.Quaternion()
			test.That(t, quat.Abs(q), test.ShouldAlmostEqual, 1, 1e-9)
			test.That(t, q.Real, test.ShouldBeGreaterThanOrEqualTo, 0)
			test.That(t, RotationFromQuaternion(q).IsNear(r, 1e-9), test.ShouldBeTrue)
		}
		for _, r := range []Rotation{RotationX(math.Pi), RotationY(math.Pi), RotationZ(math.Pi)} {
			test.That(t, RotationFromQuaternion(r.Quaternion()).IsNear(r, 1e-9), test.ShouldBeTrue)
		}
	})

	t.Run("product", func(t *testing.T) {
		rng := rand.New(rand.NewSource(37))
		a := randomRotation(rng)
		b := randomRotation(rng)
		q := quat.Mul(a.Quaternion(), b.Quaternion())
		test.That(t, RotationFromQuaternion(q).IsNear(a.Mul(b), 1e-9), test.ShouldBeTrue)
	})

	t.Run("unnormalized", func(t *testing.T) {
		q := quat.Scale(3, RotationY(0.4).Quaternion())
		test.That(t, RotationFromQuaternion(q).IsNear(RotationY(0.4), 1e-12), test.ShouldBeTrue)
		test.That(t, RotationFromQuaternion(quat.Number{}), test.ShouldResemble, IdentityRotation())
	})
}

func TestDualQuaternion(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for i := 0; i < 50; i++ {
		a := randomTransform(rng)
		b := randomTransform(rng)

		back := TransformFromDualQuaternion(a.DualQuaternion())
		test.That(t, back.IsNear(a, 1e-9), test.ShouldBeTrue)
		test.That(t, DualQuaternionTranslation(a.DualQuaternion()).IsNear(a.Translation(), 1e-9), test.ShouldBeTrue)

		composed := TransformFromDualQuaternion(ComposeDualQuaternions(a.DualQuaternion(), b.DualQuaternion()))
		test.That(t, composed.IsNear(a.Mul(b), 1e-9), test.ShouldBeTrue)
	}

	t.Run("pure translation", func(t *testing.T) {
		d := TransformFromPosition3D(NewPosition3D(2, 4, 6)).DualQuaternion()
		test.That(t, d, test.ShouldResemble, dualquat.Number{
			Real: quat.Number{Real: 1},
			Dual: quat.Number{Imag: 1, Jmag: 2, Kmag: 3},
		})
	})

	t.Run("scaled input", func(t *testing.T) {
		tf := NewTransform(RotationZ(1), NewPosition3D(1, -1, 2))
		d := dualquat.Scale(2, tf.DualQuaternion())
		test.That(t, TransformFromDualQuaternion(d).IsNear(tf, 1e-9), test.ShouldBeTrue)
		test.That(t, TransformFromDualQuaternion(dualquat.Number{}), test.ShouldResemble, IdentityTransform())
	})
}

func TestAxisAngles(t *testing.T) {
	r4 := RotationFromAxisAngle(r3.Vector{X: 1, Y: 1}, 0.8).AxisAngles()
	test.That(t, r4.Theta, test.ShouldAlmostEqual, 0.8)
	test.That(t, r4.RX, test.ShouldAlmostEqual, math.Sqrt2/2)
	test.That(t, r4.RY, test.ShouldAlmostEqual, math.Sqrt2/2)
	test.That(t, r4.RZ, test.ShouldAlmostEqual, 0)
	test.That(t, r4.Rotation().IsNear(RotationFromAxisAngle(r3.Vector{X: 1, Y: 1}, 0.8), 1e-9), test.ShouldBeTrue)

	test.That(t, IdentityRotation().AxisAngles(), test.ShouldResemble, R4AA{0, 1, 0, 0})

	t.Run("tiny rotation keeps its axis", func(t *testing.T) {
		tiny := RotationZ(1e-7).AxisAngles()
		test.That(t, tiny.ToR3().Distance(r3.Vector{Z: 1e-7}), test.ShouldBeLessThan, 1e-12)
		test.That(t, tiny.RZ, test.ShouldAlmostEqual, 1, 1e-6)
	})

	r3v := r4.ToR3()
	test.That(t, r3v.Norm(), test.ShouldAlmostEqual, 0.8)
	test.That(t, R3ToR4(r3v).Rotation().IsNear(r4.Rotation(), 1e-9), test.ShouldBeTrue)
	test.That(t, R3ToR4(r3.Vector{}), test.ShouldResemble, NewR4AA())

	t.Run("matches logarithm", func(t *testing.T) {
		tf := RotationToTransform(RotationFromRotation3D(Rotation3D{WX: 0.3, WY: -0.2, WZ: 0.9}))
		v, err := TransformLogarithm(tf)
		test.That(t, err, test.ShouldBeNil)
		w := tf.Rotation().AxisAngles().ToR3()
		test.That(t, w.Distance(v.Angular()), test.ShouldBeLessThan, 1e-9)
	})

	t.Run("normalize", func(t *testing.T) {
		n, err := R4AA{Theta: 1, RX: 0, RY: 3, RZ: 4}.Normalize()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldResemble, R4AA{1, 0, 0.6, 0.8})
		_, err = R4AA{Theta: 1}.Normalize()
		test.That(t, err, test.ShouldBeError, ErrZeroAxis)
		test.That(t, R4AA{Theta: 1}.ToQuat(), test.ShouldResemble, quat.Number{Real: 1})
	})
}

func TestOrientationVector(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		ov := IdentityRotation().OrientationVector()
		test.That(t, ov.OZ, test.ShouldAlmostEqual, 1)
		test.That(t, ov.Theta, test.ShouldAlmostEqual, 0)
		test.That(t, NewOrientationVec().Rotation().IsNear(IdentityRotation(), 1e-12), test.ShouldBeTrue)
	})

	t.Run("spin about z", func(t *testing.T) {
		ov := RotationZ(0.7).OrientationVector()
		test.That(t, ov.OZ, test.ShouldAlmostEqual, 1)
		test.That(t, ov.Theta, test.ShouldAlmostEqual, 0.7)
	})

	t.Run("pointing along x", func(t *testing.T) {
		ov := RotationY(math.Pi / 2).OrientationVector()
		test.That(t, ov.OX, test.ShouldAlmostEqual, 1)
		test.That(t, ov.OY, test.ShouldAlmostEqual, 0)
		test.That(t, ov.OZ, test.ShouldAlmostEqual, 0)
		test.That(t, ov.Theta, test.ShouldAlmostEqual, 0)
	})

	t.Run("round trip", func(t *testing.T) {
		rng := rand.New(rand.NewSource(43))
		for i := 0; i < 100; i++ {
			r := randomRotation(rng)
			test.That(t, r.OrientationVector().Rotation().IsNear(r, 1e-9), test.ShouldBeTrue)
			test.That(t, RotationFromQuaternion(QuatToOV(r.Quaternion()).ToQuat()).IsNear(r, 1e-9), test.ShouldBeTrue)
		}
		for _, r := range []Rotation{RotationX(math.Pi), RotationY(math.Pi), RotationX(math.Pi).Mul(RotationZ(0.3))} {
			test.That(t, r.OrientationVector().Rotation().IsNear(r, 1e-9), test.ShouldBeTrue)
		}
	})

	t.Run("degrees", func(t *testing.T) {
		ov := OrientationVec{Theta: math.Pi, OX: 0, OY: 1, OZ: 0}
		deg := ov.Degrees()
		test.That(t, deg.Theta, test.ShouldAlmostEqual, 180)
		back := deg.Radians()
		test.That(t, back.Theta, test.ShouldAlmostEqual, math.Pi)
		test.That(t, back.OY, test.ShouldEqual, 1)
	})

	t.Run("zero direction", func(t *testing.T) {
		test.That(t, OrientationVec{Theta: 1}.Normalize(), test.ShouldResemble, OrientationVec{Theta: 1, OZ: 1})
	})
}

func TestOrientationInterface(t *testing.T) {
	r := RotationFromRotation3D(Rotation3D{WX: 0.1, WY: 0.2, WZ: 0.3})
	orientations := []Orientation{
		r,
		r.AxisAngles(),
		r.OrientationVector(),
		Rotation3DFromRotation(r),
	}
	for _, o := range orientations {
		test.That(t, o.RotationMatrix().IsNear(r, 1e-9), test.ShouldBeTrue)
		test.That(t, OrientationAlmostEqual(o, r), test.ShouldBeTrue)
	}
	test.That(t, OrientationAlmostEqual(NewZeroOrientation(), RotationZ(0.1)), test.ShouldBeFalse)

	between := OrientationBetween(RotationZ(0.2), RotationZ(0.5))
	test.That(t, between.IsNear(RotationZ(0.3), 1e-12), test.ShouldBeTrue)
}

func TestProtobuf(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		p := TransformToProtobuf(IdentityTransform())
		test.That(t, p.OZ, test.ShouldAlmostEqual, 1)
		test.That(t, p.Theta, test.ShouldAlmostEqual, 0)
		test.That(t, TransformFromProtobuf(nil), test.ShouldResemble, IdentityTransform())
	})

	t.Run("degrees", func(t *testing.T) {
		p := TransformToProtobuf(NewTransform(RotationZ(math.Pi/2), NewPosition3D(1, 2, 3)))
		test.That(t, p.X, test.ShouldEqual, 1)
		test.That(t, p.Y, test.ShouldEqual, 2)
		test.That(t, p.Z, test.ShouldEqual, 3)
		test.That(t, p.Theta, test.ShouldAlmostEqual, 90)
	})

	t.Run("from message", func(t *testing.T) {
		tf := TransformFromProtobuf(&commonpb.Pose{X: 4, Y: 5, Z: 6, OX: 0, OY: 0, OZ: 1, Theta: -45})
		want := NewTransform(RotationZ(-math.Pi/4), NewPosition3D(4, 5, 6))
		test.That(t, tf.IsNear(want, 1e-9), test.ShouldBeTrue)
	})

	t.Run("round trip", func(t *testing.T) {
		rng := rand.New(rand.NewSource(47))
		for i := 0; i < 50; i++ {
			tf := randomTransform(rng)
			test.That(t, TransformFromProtobuf(TransformToProtobuf(tf)).IsNear(tf, 1e-9), test.ShouldBeTrue)
		}
	})
}
