package services

import (
	"testing"

	"github.com/paulmach/orb"
)

var squareFootprint = orb.Polygon{
	{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}},
}

func TestCollidesTwoPhase(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z float64
		want    bool
	}{
		{"建筑内部", 0, 0, 5, true},
		{"高于建筑顶部", 0, 0, 15, false},
		{"水平投影之外", 2, 2, 5, false},
		{"下边界闭区间", 0, 0, 0, true},
		{"上边界闭区间", 0, 0, 10, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Collides(squareFootprint, 0, 10, tc.x, tc.y, tc.z)
			if got != tc.want {
				t.Fatalf("点(%v, %v, %v): 期望 %v, 实际 %v", tc.x, tc.y, tc.z, tc.want, got)
			}
		})
	}
}

func TestCollidesEmptyFootprint(t *testing.T) {
	if Collides(orb.Polygon{}, 0, 10, 0, 0, 5) {
		t.Fatal("空底面环不应命中")
	}
}

func TestCollidesNegativeGroundZ(t *testing.T) {
	// ECEF 下 ground_z 往往是大的负值
	if !Collides(squareFootprint, -121.374, 40, 0, 0, -100) {
		t.Fatal("位于地面与顶部之间的点应命中")
	}
	if Collides(squareFootprint, -121.374, 40, 0, 0, -122) {
		t.Fatal("低于地面的点不应命中")
	}
}
