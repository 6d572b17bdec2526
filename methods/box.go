package methods

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// BoxCorners 将 12 元素的包围盒描述（中心 + 三个半轴向量）展开为
// 8 个局部角点。顺序固定：先底面后顶面，底面从 -x-y 角开始逆时针。
// 半轴不要求正交，也不要求与坐标轴对齐。
func BoxCorners(box []float64) ([8]mgl64.Vec3, error) {
	var corners [8]mgl64.Vec3
	if len(box) != 12 {
		return corners, fmt.Errorf("%w: 包围盒描述需要12个数值, 实际为%d个", ErrDegenerateGeometry, len(box))
	}

	center := mgl64.Vec3{box[0], box[1], box[2]}
	xAxis := mgl64.Vec3{box[3], box[4], box[5]}
	yAxis := mgl64.Vec3{box[6], box[7], box[8]}
	zAxis := mgl64.Vec3{box[9], box[10], box[11]}

	corners = [8]mgl64.Vec3{
		center.Sub(xAxis).Sub(yAxis).Sub(zAxis),
		center.Add(xAxis).Sub(yAxis).Sub(zAxis),
		center.Add(xAxis).Add(yAxis).Sub(zAxis),
		center.Sub(xAxis).Add(yAxis).Sub(zAxis),
		center.Sub(xAxis).Sub(yAxis).Add(zAxis),
		center.Add(xAxis).Sub(yAxis).Add(zAxis),
		center.Add(xAxis).Add(yAxis).Add(zAxis),
		center.Sub(xAxis).Add(yAxis).Add(zAxis),
	}
	return corners, nil
}

// DistinctCorners 检查 8 个角点是否两两不同（按精确值比较）。
// 投影后出现重复点说明包围盒或变换退化，该瓦片应被跳过。
func DistinctCorners(corners [8]mgl64.Vec3) bool {
	seen := make(map[mgl64.Vec3]struct{}, 8)
	for _, c := range corners {
		if _, ok := seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

// LocalHeight 取局部角点的 z 向延展作为建筑高度。
// 必须在投影前计算：旋转后的包围盒在世界坐标下的竖向延展
// 不再等于局部半轴长度。
func LocalHeight(corners [8]mgl64.Vec3) float64 {
	minZ := corners[0].Z()
	maxZ := corners[0].Z()
	for _, c := range corners[1:] {
		if c.Z() < minZ {
			minZ = c.Z()
		}
		if c.Z() > maxZ {
			maxZ = c.Z()
		}
	}
	return maxZ - minZ
}
