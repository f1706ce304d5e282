package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Ints(t *testing.T) {
	v := Vec3{0.9999, -1.00001, 4e-8}
	got := v.Ints()
	want := [3]int{1, -1, 0}
	if got != want {
		t.Errorf("Vec3.Ints() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestAxisComponent(t *testing.T) {
	v := Vec3{1, 2, 3}
	for axis, want := range map[Axis]float32{AxisX: 1, AxisY: 2, AxisZ: 3} {
		if got := axis.Component(v); got != want {
			t.Errorf("%v.Component() = %v, want %v", axis, got, want)
		}
	}
}
