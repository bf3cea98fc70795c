package spatialmath

import (
	"testing"

	"go.viam.com/test"
)

func TestParseFloats(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []float64
	}{
		{"0,0,1", []float64{0, 0, 1}},
		{"1 2  3", []float64{1, 2, 3}},
		{" -0.5, 2e3 ,4", []float64{-0.5, 2000, 4}},
		{"", []float64{}},
	} {
		got, err := ParseFloats(tc.in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldResemble, tc.want)
	}

	_, err := ParseFloats("1,x,3")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `cannot parse "1,x,3"`)

	p, err := ParsePosition3D("1,2,3")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldResemble, NewPosition3D(1, 2, 3))

	_, err = ParsePosition3D("1,2")
	test.That(t, err, test.ShouldNotBeNil)
}
