package methods

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// 单位盒：中心在原点，三个半轴为标准正交基
var unitBox = []float64{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1}

func TestUnitBoxCorners(t *testing.T) {
	corners, err := BoxCorners(unitBox)
	if err != nil {
		t.Fatal(err)
	}

	// 先底面后顶面，底面从 -x-y 角开始
	expected := [8]mgl64.Vec3{
		{-1, -1, -1},
		{1, -1, -1},
		{1, 1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
		{-1, 1, 1},
	}
	if corners != expected {
		t.Fatalf("单位盒角点顺序错误:\n%v", corners)
	}
}

func TestBoxCornersOriented(t *testing.T) {
	// 半轴不与坐标轴对齐的包围盒
	box := []float64{10, 20, 30, 1, 1, 0, -2, 2, 0, 0, 0, 3}
	corners, err := BoxCorners(box)
	if err != nil {
		t.Fatal(err)
	}
	if corners[0] != (mgl64.Vec3{11, 17, 27}) {
		t.Fatalf("第一个角点错误: %v", corners[0])
	}
	if !DistinctCorners(corners) {
		t.Fatal("非退化包围盒的8个角点应两两不同")
	}
}

func TestBoxCornersWrongLength(t *testing.T) {
	_, err := BoxCorners([]float64{1, 2, 3})
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("期望 ErrDegenerateGeometry, 实际为 %v", err)
	}
}

func TestDistinctCornersDegenerate(t *testing.T) {
	// z 半轴为零向量时底面与顶面重合
	box := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0}
	corners, err := BoxCorners(box)
	if err != nil {
		t.Fatal(err)
	}
	if DistinctCorners(corners) {
		t.Fatal("退化包围盒应检出重复角点")
	}
}

func TestLocalHeight(t *testing.T) {
	box := []float64{0, 0, 100, 1, 0, 0, 0, 1, 0, 0, 0, 5}
	corners, err := BoxCorners(box)
	if err != nil {
		t.Fatal(err)
	}
	if h := LocalHeight(corners); h != 10 {
		t.Fatalf("高度应为z半轴长度的2倍, 实际为 %v", h)
	}
}
