package methods

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/shopspring/decimal"
)

// EcefSRID ECEF 坐标系的空间参考标识（EPSG:4978）
const EcefSRID = 4978

type GeometryMode string

const (
	// GeometryModeSolid 入库封闭的六面体表面（MULTIPOLYGON Z）
	GeometryModeSolid GeometryMode = "solid"
	// GeometryModeFootprint 入库底面投影环 + 高度（POLYGON Z）
	GeometryModeFootprint GeometryMode = "footprint"
)

// 六个面在角点数组中的顶点索引
var boxFaces = [6][4]int{
	{0, 1, 2, 3}, // 底面
	{4, 5, 6, 7}, // 顶面
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// formatCoord 固定6位小数输出，禁止科学计数法，否则下游WKT解析会出错
func formatCoord(p mgl64.Vec3) string {
	x := decimal.NewFromFloat(p.X()).StringFixed(6)
	y := decimal.NewFromFloat(p.Y()).StringFixed(6)
	z := decimal.NewFromFloat(p.Z()).StringFixed(6)
	return x + " " + y + " " + z
}

func checkFinite(corners [8]mgl64.Vec3) error {
	for i, c := range corners {
		for _, v := range []float64{c.X(), c.Y(), c.Z()} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: 角点%d坐标非有限值", ErrGeometrySynthesis, i)
			}
		}
	}
	return nil
}

// MultiPolygonZ 由 8 个世界角点生成封闭六面体的 MULTIPOLYGON Z 文本。
// 每个面环都重复首点闭合。
func MultiPolygonZ(corners [8]mgl64.Vec3) (string, error) {
	if err := checkFinite(corners); err != nil {
		return "", err
	}

	polygons := make([]string, 0, len(boxFaces))
	for _, face := range boxFaces {
		coords := make([]string, 0, 5)
		for _, idx := range face {
			coords = append(coords, formatCoord(corners[idx]))
		}
		// 闭合多边形环
		coords = append(coords, formatCoord(corners[face[0]]))
		polygons = append(polygons, "(("+strings.Join(coords, ", ")+"))")
	}

	return "MULTIPOLYGON Z (" + strings.Join(polygons, ", ") + ")", nil
}

// PolygonZFootprint 取底面 4 个角点生成闭合的 POLYGON Z 底面环
func PolygonZFootprint(corners [8]mgl64.Vec3) (string, error) {
	if err := checkFinite(corners); err != nil {
		return "", err
	}

	coords := make([]string, 0, 5)
	for _, idx := range []int{0, 1, 2, 3, 0} {
		coords = append(coords, formatCoord(corners[idx]))
	}

	return "POLYGON Z ((" + strings.Join(coords, ", ") + "))", nil
}

// EWKT 给WKT文本加上SRID标记
func EWKT(wkt string) string {
	return fmt.Sprintf("SRID=%d;%s", EcefSRID, wkt)
}
