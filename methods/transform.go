package methods

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MinHomogeneousW 齐次坐标权重的下限，避免透视除法除零
const MinHomogeneousW = 1e-10

// LocalTransform 将瓦片自带的列优先变换数组转为 4x4 矩阵。
// 长度不足 16 的数组按以下规则修复：至少 3 个元素时视为平移向量，
// 否则丢弃该变换。两种修复都返回 ErrMalformedTransform 供调用方记录，
// 遍历不会因此中断。
func LocalTransform(raw []float64) (mgl64.Mat4, error) {
	if raw == nil {
		return mgl64.Ident4(), nil
	}
	if len(raw) == 16 {
		var m mgl64.Mat4
		copy(m[:], raw)
		return m, nil
	}
	if len(raw) >= 3 {
		// 按平移向量修复
		return mgl64.Translate3D(raw[0], raw[1], raw[2]), ErrMalformedTransform
	}
	return mgl64.Ident4(), ErrMalformedTransform
}

// ComposeTransform 计算子瓦片的世界变换：M_c = M_p · M_local
func ComposeTransform(parent mgl64.Mat4, local mgl64.Mat4) mgl64.Mat4 {
	return parent.Mul4(local)
}

// ApplyMatrix 对单点做齐次坐标变换并执行透视除法。
// 权重绝对值小于 MinHomogeneousW 时以该下限代替，返回值第二项标记
// 是否发生了这种退化替换。
func ApplyMatrix(m mgl64.Mat4, p mgl64.Vec3) (mgl64.Vec3, bool) {
	v := m.Mul4x1(mgl64.Vec4{p.X(), p.Y(), p.Z(), 1.0})

	w := v.W()
	degenerate := false
	if math.Abs(w) < MinHomogeneousW {
		w = MinHomogeneousW
		degenerate = true
	}

	return mgl64.Vec3{v.X() / w, v.Y() / w, v.Z() / w}, degenerate
}

// ProjectCorners 将 8 个局部角点变换为世界坐标（ECEF）
func ProjectCorners(m mgl64.Mat4, corners [8]mgl64.Vec3) ([8]mgl64.Vec3, bool) {
	var world [8]mgl64.Vec3
	degenerate := false
	for i, c := range corners {
		p, d := ApplyMatrix(m, c)
		world[i] = p
		degenerate = degenerate || d
	}
	return world, degenerate
}
