package methods

import (
	"errors"
)

// 瓦片级失败只跳过当前瓦片，批次级失败只回滚当前批次
var (
	ErrMalformedTransform = errors.New("瓦片变换矩阵格式错误")
	ErrDegenerateGeometry = errors.New("瓦片包围盒几何退化")
	ErrGeometrySynthesis  = errors.New("WKT几何生成失败")
	ErrPersistenceFailure = errors.New("建筑物数据入库失败")
	ErrQueryFailure       = errors.New("碰撞查询失败")
)
